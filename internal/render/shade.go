package render

import (
	"image/color"

	"classroom-planner/internal/geom"
)

// Single fixed directional light for the whole scene.
var lightDir = geom.Pt(-0.5, 1.2, -0.8).Normalize()

const ambientLight = 0.4

// Intensity returns the flat-shading factor in [0,1] for a face normal:
// ambient plus diffuse against the fixed light direction.
func Intensity(normal geom.Point3) float64 {
	diffuse := normal.Dot(lightDir)
	if diffuse < 0 {
		diffuse = 0
	}
	v := ambientLight + diffuse*(1.0-ambientLight)
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Shade scales c by the shading intensity of the face spanned by the first
// three points. Alpha is preserved. Fewer than three points return c as is.
func Shade(c color.RGBA, pts []geom.Point3) color.RGBA {
	if len(pts) < 3 {
		return c
	}
	v1 := pts[1].Sub(pts[0])
	v2 := pts[2].Sub(pts[0])
	n := v1.Cross(v2).Normalize()
	i := Intensity(n)
	return color.RGBA{
		R: uint8(float64(c.R) * i),
		G: uint8(float64(c.G) * i),
		B: uint8(float64(c.B) * i),
		A: c.A,
	}
}
