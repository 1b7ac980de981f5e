package render

import (
	"image/color"
	"math"

	"classroom-planner/internal/geom"
	"classroom-planner/internal/scene"
)

var (
	plankColor      = color.RGBA{R: 95, G: 75, B: 60, A: 255}
	gridColor       = color.RGBA{R: 70, G: 82, B: 99, A: 255}
	axisColor       = color.RGBA{R: 100, G: 116, B: 139, A: 255}
	wallColor       = color.RGBA{R: 220, G: 220, B: 220, A: 255}
	wallEdgeColor   = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	blackboardColor = color.RGBA{R: 26, G: 26, B: 26, A: 255}
)

const wallHeight = 200

// Line is a world-space segment with a screen paint width.
type Line struct {
	A, B  geom.Point3
	Color color.RGBA
	Width int
}

// FloorPoly returns the room floor slab.
func FloorPoly(b scene.Bounds) Poly {
	hw, hd := b.HalfWidth(), b.HalfDepth()
	return Poly{
		Pts: []geom.Point3{
			geom.Pt(-hw, 0, -hd), geom.Pt(hw, 0, -hd), geom.Pt(hw, 0, hd), geom.Pt(-hw, 0, hd),
		},
		Fill: woodColor,
		Flat: true,
	}
}

// FloorLines returns the plank seams and, when showGrid is set, the snap
// grid and center axes. Lines sit slightly above the floor so they paint
// over it. Seams run at every fourth grid step.
func FloorLines(b scene.Bounds, showGrid bool) []Line {
	hw, hd := b.HalfWidth(), b.HalfDepth()
	var out []Line
	plankWidth := 4 * scene.GridSize
	for i := int(math.Floor(-hw / plankWidth)); i <= int(math.Floor(hw/plankWidth)); i++ {
		x := float64(i) * plankWidth
		if x == 0 {
			continue
		}
		out = append(out, Line{
			A: geom.Pt(x, 0.5, -hd), B: geom.Pt(x, 0.5, hd),
			Color: plankColor, Width: 1,
		})
	}
	if !showGrid {
		return out
	}
	spacing := scene.GridSize
	for i := int(math.Floor(-hw / spacing)); i <= int(math.Floor(hw/spacing)); i++ {
		x := float64(i) * spacing
		if x == 0 {
			continue
		}
		out = append(out, Line{
			A: geom.Pt(x, 1.0, -hd), B: geom.Pt(x, 1.0, hd),
			Color: gridColor, Width: 1,
		})
	}
	for i := int(math.Floor(-hd / spacing)); i <= int(math.Floor(hd/spacing)); i++ {
		z := float64(i) * spacing
		if z == 0 {
			continue
		}
		out = append(out, Line{
			A: geom.Pt(-hw, 1.0, z), B: geom.Pt(hw, 1.0, z),
			Color: gridColor, Width: 1,
		})
	}
	out = append(out,
		Line{A: geom.Pt(-hw, 1.5, 0), B: geom.Pt(hw, 1.5, 0), Color: axisColor, Width: 1},
		Line{A: geom.Pt(0, 1.5, -hd), B: geom.Pt(0, 1.5, hd), Color: axisColor, Width: 1},
	)
	return out
}

// WallPolys returns the back wall and blackboard when the camera is on the
// room side of the wall, nil when the wall would block the view.
func WallPolys(b scene.Bounds, camPos geom.Point3) []Poly {
	hw, hd := b.HalfWidth(), b.HalfDepth()
	if camPos.Z <= -hd+10 {
		return nil
	}
	wall := Poly{
		Pts: []geom.Point3{
			geom.Pt(-hw, 0, -hd), geom.Pt(hw, 0, -hd),
			geom.Pt(hw, wallHeight, -hd), geom.Pt(-hw, wallHeight, -hd),
		},
		Fill: wallColor, Edge: wallEdgeColor, EdgeW: 2,
	}
	boardHW := math.Min(hw*0.8, 400)
	board := Poly{
		Pts: []geom.Point3{
			geom.Pt(-boardHW, 80, -hd+2), geom.Pt(boardHW, 80, -hd+2),
			geom.Pt(boardHW, 160, -hd+2), geom.Pt(-boardHW, 160, -hd+2),
		},
		Fill: blackboardColor, Edge: edgeBlack, EdgeW: 3,
	}
	return []Poly{wall, board}
}
