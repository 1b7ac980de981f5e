package render

import (
	"image/color"
	"math"

	"classroom-planner/internal/catalog"
	"classroom-planner/internal/geom"
	"classroom-planner/internal/scene"
)

var (
	woodColor     = color.RGBA{R: 80, G: 60, B: 45, A: 255}
	darkWoodColor = color.RGBA{R: 65, G: 45, B: 30, A: 255}
	edgeBlack     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// Poly is a filled world-space face. Flat faces are painted with the fill
// color as is; all others are scaled by Shade before painting. EdgeW of
// zero means no outline.
type Poly struct {
	Pts   []geom.Point3
	Fill  color.RGBA
	Edge  color.RGBA
	EdgeW int
	Flat  bool
}

// Leg is a world-space segment painted with a fixed screen width.
type Leg struct {
	Top    geom.Point3
	Bottom geom.Point3
	Width  int
	Color  color.RGBA
}

// Shape holds everything needed to paint one furniture piece. Polys and
// Legs are in paint order. Indicator is the selection ring radius in
// screen pixels, zero when the object is not selected.
type Shape struct {
	Polys     []Poly
	Legs      []Leg
	Indicator float64
}

// Furniture builds the drawable shape for obj, rotated about its position
// and scaled by its scale factor.
func Furniture(obj scene.Object, def catalog.Def) Shape {
	var s Shape
	switch obj.Kind {
	case scene.KindChair:
		s = chairShape(obj)
	case scene.KindDesk:
		s = deskShape(obj)
	case scene.KindTable:
		s = tableShape(obj)
	case scene.KindPodium:
		s = podiumShape(obj)
	case scene.KindCabinet:
		s = cabinetShape(obj)
	}
	if obj.Selected {
		s.Indicator = def.IndicatorRadius * obj.Scale
	}
	return s
}

// placer returns a point builder that rotates x/z about the object's
// position by its rotation and offsets by its position. y passes through.
func placer(obj scene.Object) func(x, y, z float64) geom.Point3 {
	sin, cos := math.Sincos(obj.Rotation * math.Pi / 180)
	pos := obj.Position
	return func(x, y, z float64) geom.Point3 {
		return geom.Pt(pos.X+x*cos-z*sin, pos.Y+y, pos.Z+x*sin+z*cos)
	}
}

func chairShape(obj scene.Object) Shape {
	p := placer(obj)
	sc := obj.Scale
	s := 20 * sc
	seatY := 25 * sc
	seat := Poly{
		Pts: []geom.Point3{
			p(-s, seatY, -s), p(s, seatY, -s), p(s, seatY, s), p(-s, seatY, s),
		},
		Fill: woodColor, Edge: edgeBlack, EdgeW: 2,
	}
	backZ := -22 * sc
	back := Poly{
		Pts: []geom.Point3{
			p(-s, seatY, backZ), p(s, seatY, backZ), p(s, 60*sc, backZ), p(-s, 60*sc, backZ),
		},
		Fill: darkWoodColor, Edge: edgeBlack, EdgeW: 2,
	}
	return Shape{
		Polys: []Poly{seat, back},
		Legs:  legs(p, sc, seatY, 15, 15, 3),
	}
}

func deskShape(obj scene.Object) Shape {
	p := placer(obj)
	sc := obj.Scale
	topY := 35 * sc
	top := Poly{
		Pts: []geom.Point3{
			p(-40*sc, topY, -25*sc), p(40*sc, topY, -25*sc), p(40*sc, topY, 25*sc), p(-40*sc, topY, 25*sc),
		},
		Fill: woodColor, Edge: edgeBlack, EdgeW: 2, Flat: true,
	}
	return Shape{
		Polys: []Poly{top},
		Legs:  legs(p, sc, topY, 35, 20, 4),
	}
}

func tableShape(obj scene.Object) Shape {
	p := placer(obj)
	sc := obj.Scale
	topY := 40 * sc
	top := Poly{
		Pts: []geom.Point3{
			p(-60*sc, topY, -40*sc), p(60*sc, topY, -40*sc), p(60*sc, topY, 40*sc), p(-60*sc, topY, 40*sc),
		},
		Fill: woodColor, Edge: edgeBlack, EdgeW: 2, Flat: true,
	}
	return Shape{
		Polys: []Poly{top},
		Legs:  legs(p, sc, topY, 50, 30, 5),
	}
}

func podiumShape(obj scene.Object) Shape {
	p := placer(obj)
	sc := obj.Scale
	w, d, h := 20*sc, 15*sc, 60*sc
	front := Poly{
		Pts:  []geom.Point3{p(-w, 0, d), p(w, 0, d), p(w, h, d), p(-w, h, d)},
		Fill: darkWoodColor, Edge: edgeBlack, EdgeW: 2,
	}
	left := Poly{
		Pts:  []geom.Point3{p(-w, 0, -d), p(-w, 0, d), p(-w, h, d), p(-w, h, -d)},
		Fill: darkWoodColor, Edge: edgeBlack, EdgeW: 2,
	}
	tw, td := w+5*sc, d+5*sc
	hHigh := h + 12*sc
	hLow := h + 2*sc
	top := Poly{
		Pts:  []geom.Point3{p(-tw, hHigh, -td), p(tw, hHigh, -td), p(tw, hLow, td), p(-tw, hLow, td)},
		Fill: woodColor, Edge: edgeBlack, EdgeW: 2,
	}
	lip := Poly{
		Pts:  []geom.Point3{p(-tw, h, -td), p(tw, h, -td), p(tw, hHigh, -td), p(-tw, hHigh, -td)},
		Fill: darkWoodColor, Edge: edgeBlack, EdgeW: 2,
	}
	return Shape{Polys: []Poly{front, left, top, lip}}
}

func cabinetShape(obj scene.Object) Shape {
	p := placer(obj)
	sc := obj.Scale
	w, d, h := 35*sc, 20*sc, 70*sc
	top := Poly{
		Pts:  []geom.Point3{p(-w, h, -d), p(w, h, -d), p(w, h, d), p(-w, h, d)},
		Fill: darkWoodColor, Edge: edgeBlack, EdgeW: 2,
	}
	front := Poly{
		Pts:  []geom.Point3{p(-w, 0, d), p(w, 0, d), p(w, h, d), p(-w, h, d)},
		Fill: woodColor, Edge: edgeBlack, EdgeW: 2,
	}
	left := Poly{
		Pts:  []geom.Point3{p(-w, 0, -d), p(-w, 0, d), p(-w, h, d), p(-w, h, -d)},
		Fill: darkWoodColor, Edge: edgeBlack, EdgeW: 2,
	}
	right := Poly{
		Pts:  []geom.Point3{p(w, 0, d), p(w, 0, -d), p(w, h, -d), p(w, h, d)},
		Fill: darkWoodColor, Edge: edgeBlack, EdgeW: 2,
	}
	return Shape{Polys: []Poly{top, front, left, right}}
}

// legs builds four legs at (±dx, ±dz) running from topY down to the floor.
func legs(p func(x, y, z float64) geom.Point3, sc, topY, dx, dz float64, width int) []Leg {
	w := int(float64(width) * sc)
	if w < 1 {
		w = 1
	}
	out := make([]Leg, 0, 4)
	for _, off := range [][2]float64{{-dx, -dz}, {dx, -dz}, {-dx, dz}, {dx, dz}} {
		out = append(out, Leg{
			Top:    p(off[0]*sc, topY, off[1]*sc),
			Bottom: p(off[0]*sc, 0, off[1]*sc),
			Width:  w,
			Color:  darkWoodColor,
		})
	}
	return out
}
