package render

import (
	"image/color"
	"math"

	"classroom-planner/internal/camera"
	"classroom-planner/internal/geom"
	"classroom-planner/internal/scene"
)

var (
	groundColor    = color.RGBA{R: 35, G: 45, B: 35, A: 255}
	houseWallColor = color.RGBA{R: 200, G: 190, B: 180, A: 255}
	houseEdgeColor = color.RGBA{R: 50, G: 50, B: 50, A: 255}
	roofSideColor  = color.RGBA{R: 60, G: 60, B: 70, A: 255}
	roofTopColor   = color.RGBA{R: 80, G: 85, B: 95, A: 255}
	doorColor      = color.RGBA{R: 100, G: 70, B: 50, A: 255}
	doorHoverColor = color.RGBA{R: 140, G: 100, B: 80, A: 255}
	doorEdgeColor  = color.RGBA{R: 30, G: 20, B: 10, A: 255}
)

// KnobColor paints the door knob disc on the welcome screen.
var KnobColor = color.RGBA{R: 255, G: 215, B: 0, A: 255}

const (
	doorWidth     = 100.0
	roofOverhang  = 15.0
	roofThickness = 15.0
)

// WelcomeScene is the schoolhouse exterior shown before the planner opens.
// Polys are in paint order. Knob is the door knob position in world space,
// valid while ShowKnob is set. ShowHint asks for the enter prompt.
type WelcomeScene struct {
	Polys    []Poly
	Knob     geom.Point3
	ShowKnob bool
	ShowHint bool
}

// WelcomeCamera returns the fixed exterior viewpoint used while the
// schoolhouse is on screen. The live planner camera is left untouched.
func WelcomeCamera(b scene.Bounds) *camera.Camera {
	c := camera.New()
	c.AngleH = 45
	c.AngleV = 35
	c.Distance = math.Max(1200, b.MaxDim()*2.2)
	return c
}

// doorSize returns the door width and height for the room bounds. The door
// never reaches the roof line.
func doorSize(b scene.Bounds) (w, h float64) {
	return doorWidth, math.Min(160, b.Height-10)
}

// doorHinge returns the hinge post at the left edge of the doorway.
func doorHinge(b scene.Bounds) geom.Point3 {
	return geom.Pt(-doorWidth/2, 0, b.HalfDepth()+2)
}

// swing rotates an offset from the hinge by the door angle, in the floor
// plane.
func swing(hinge geom.Point3, angle, dx, dz float64) geom.Point3 {
	sin, cos := math.Sincos(angle * math.Pi / 180)
	return geom.Pt(hinge.X+dx*cos-dz*sin, 0, hinge.Z+dx*sin+dz*cos)
}

// Welcome builds the schoolhouse scene for the given door angle. hovering
// selects the highlighted door color.
func Welcome(b scene.Bounds, doorAngle float64, hovering bool) WelcomeScene {
	hw, hd, h := b.HalfWidth(), b.HalfDepth(), b.Height
	polys := []Poly{
		{
			Pts: []geom.Point3{
				geom.Pt(-9000, 0, -9000), geom.Pt(9000, 0, -9000),
				geom.Pt(9000, 0, 9000), geom.Pt(-9000, 0, 9000),
			},
			Fill: groundColor,
		},
		{
			Pts: []geom.Point3{
				geom.Pt(hw, 0, -hd), geom.Pt(hw, 0, hd), geom.Pt(hw, h, hd), geom.Pt(hw, h, -hd),
			},
			Fill: houseWallColor, Edge: houseEdgeColor, EdgeW: 2,
		},
		{
			Pts: []geom.Point3{
				geom.Pt(-hw, 0, hd), geom.Pt(hw, 0, hd), geom.Pt(hw, h, hd), geom.Pt(-hw, h, hd),
			},
			Fill: houseWallColor, Edge: houseEdgeColor, EdgeW: 2,
		},
	}
	oh, rt := roofOverhang, roofThickness
	polys = append(polys,
		Poly{
			Pts: []geom.Point3{
				geom.Pt(-hw-oh, h, hd+oh), geom.Pt(hw+oh, h, hd+oh),
				geom.Pt(hw+oh, h+rt, hd+oh), geom.Pt(-hw-oh, h+rt, hd+oh),
			},
			Fill: roofSideColor,
		},
		Poly{
			Pts: []geom.Point3{
				geom.Pt(hw+oh, h, -hd-oh), geom.Pt(hw+oh, h, hd+oh),
				geom.Pt(hw+oh, h+rt, hd+oh), geom.Pt(hw+oh, h+rt, -hd-oh),
			},
			Fill: roofSideColor,
		},
		Poly{
			Pts: []geom.Point3{
				geom.Pt(-hw-oh, h+rt, -hd-oh), geom.Pt(hw+oh, h+rt, -hd-oh),
				geom.Pt(hw+oh, h+rt, hd+oh), geom.Pt(-hw-oh, h+rt, hd+oh),
			},
			Fill: roofTopColor, Edge: edgeBlack, EdgeW: 2,
		},
	)
	dw, dh := doorSize(b)
	frameW, frameH := dw+10, dh+5
	polys = append(polys, Poly{
		Pts: []geom.Point3{
			geom.Pt(-frameW/2, 0, hd+1), geom.Pt(frameW/2, 0, hd+1),
			geom.Pt(frameW/2, frameH, hd+1), geom.Pt(-frameW/2, frameH, hd+1),
		},
		Fill: woodColor, Edge: edgeBlack, EdgeW: 1,
	})
	hinge := doorHinge(b)
	free := swing(hinge, doorAngle, dw, 0)
	freeTop := free
	freeTop.Y = dh
	hingeTop := hinge
	hingeTop.Y = dh
	fill := doorColor
	if hovering {
		fill = doorHoverColor
	}
	polys = append(polys, Poly{
		Pts:  []geom.Point3{hinge, free, freeTop, hingeTop},
		Fill: fill, Edge: doorEdgeColor, EdgeW: 2,
	})
	out := WelcomeScene{
		Polys:    polys,
		ShowKnob: doorAngle < 80,
		ShowHint: doorAngle < 10,
	}
	if out.ShowKnob {
		knob := swing(hinge, doorAngle, dw-15, -5)
		knob.Y = dh / 2
		out.Knob = knob
	}
	return out
}

// DoorHover reports whether the cursor sits inside the screen bounding box
// of the door, spanned by the hinge base and the swung top corner.
func DoorHover(cam *camera.Camera, b scene.Bounds, doorAngle float64, width, height int, mx, my float64) bool {
	hinge := doorHinge(b)
	dw, dh := doorSize(b)
	freeTop := swing(hinge, doorAngle, dw, 0)
	freeTop.Y = dh
	x1, y1 := cam.Project(hinge, width, height)
	x2, y2 := cam.Project(freeTop, width, height)
	minX, maxX := math.Min(float64(x1), float64(x2)), math.Max(float64(x1), float64(x2))
	minY, maxY := math.Min(float64(y1), float64(y2)), math.Max(float64(y1), float64(y2))
	return mx >= minX && mx <= maxX && my >= minY && my <= maxY
}
