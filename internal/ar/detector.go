package ar

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

// Marker styles the overlay for one recognized fiducial id.
type Marker struct {
	Label string
	Fill  color.RGBA
}

// Markers maps fiducial ids to furniture. The fills follow the printed
// sheet legend: desk blue, chair red, cabinet yellow.
var Markers = map[int]Marker{
	23: {Label: "Desk", Fill: color.RGBA{B: 255, G: 100, A: 255}},
	24: {Label: "Chair", Fill: color.RGBA{R: 255, A: 255}},
	25: {Label: "Cabinet", Fill: color.RGBA{R: 255, G: 255, A: 255}},
}

var markerGreen = color.RGBA{G: 255, A: 255}

// Detector recognizes ArUco markers and composes the AR overlay.
type Detector struct {
	det gocv.ArucoDetector
}

// NewDetector builds a detector over the 6x6_250 dictionary, the same one
// the generated sheets use.
func NewDetector() *Detector {
	dict := gocv.GetPredefinedDictionary(gocv.ArucoDict6x6_250)
	params := gocv.NewArucoDetectorParameters()
	return &Detector{det: gocv.NewArucoDetectorWithParams(dict, params)}
}

// Close releases the detector.
func (d *Detector) Close() {
	_ = d.det.Close()
}

// Compose mirrors the frame and draws a green border, a half-transparent
// tint, and a label over every recognized marker. It consumes frame and
// returns a new Mat the caller closes.
func (d *Detector) Compose(frame gocv.Mat) gocv.Mat {
	flipped := gocv.NewMat()
	gocv.Flip(frame, &flipped, 1)
	frame.Close()

	corners, ids, _ := d.det.DetectMarkers(flipped)
	for i, id := range ids {
		m, ok := Markers[id]
		if !ok || i >= len(corners) || len(corners[i]) < 4 {
			continue
		}
		quad := make([]image.Point, len(corners[i]))
		for j, c := range corners[i] {
			quad[j] = image.Pt(int(c.X), int(c.Y))
		}
		pts := gocv.NewPointsVectorFromPoints([][]image.Point{quad})

		gocv.Polylines(&flipped, pts, true, markerGreen, 2)

		overlay := flipped.Clone()
		gocv.FillPoly(&overlay, pts, m.Fill)
		gocv.AddWeighted(overlay, 0.5, flipped, 0.5, 0, &flipped)
		overlay.Close()
		pts.Close()

		label := fmt.Sprintf("Object: %s (ID: %d)", m.Label, id)
		gocv.PutText(&flipped, label, image.Pt(quad[0].X, quad[0].Y-15),
			gocv.FontHersheySimplex, 0.6, markerGreen, 2)
	}
	return flipped
}
