package camera

import (
	"math"

	"classroom-planner/internal/geom"
)

// Zoom and orbit limits. Distance is only clamped by Zoom; room generation
// and the welcome fly-over set it directly to frame large rooms.
const (
	MinDistance = 200
	MaxDistance = 1500
	MaxPitch    = 85

	orbitSensitivityH = 0.5
	orbitSensitivityV = 0.3
	zoomStep          = 40
)

// nearEpsilon is the camera-space depth below which a point counts as behind
// the camera for projection purposes.
const nearEpsilon = 1e-3

// Camera is a spherical-orbit camera around a fixed target. Position and
// basis are derived from the angles on every call rather than cached, since
// the angles change every frame during a drag.
type Camera struct {
	Distance float64
	AngleH   float64 // degrees around Y, kept in [0,360)
	AngleV   float64 // degrees of elevation, kept in [-MaxPitch, MaxPitch]
	Target   geom.Point3
	FOV      float64 // vertical field of view in degrees
}

// New returns a camera at the default home view: distance 700, 45 degrees
// around, 35 degrees up, looking at the origin with a 60 degree FOV.
func New() *Camera {
	return &Camera{
		Distance: 700,
		AngleH:   45,
		AngleV:   35,
		FOV:      60,
	}
}

// Position returns the camera's world position, spherical-to-Cartesian
// around Target.
func (c *Camera) Position() geom.Point3 {
	radH := c.AngleH * math.Pi / 180
	radV := c.AngleV * math.Pi / 180
	return geom.Point3{
		X: c.Target.X + c.Distance*math.Cos(radV)*math.Cos(radH),
		Y: c.Target.Y + c.Distance*math.Sin(radV),
		Z: c.Target.Z + c.Distance*math.Cos(radV)*math.Sin(radH),
	}
}

// Basis returns the camera's orthonormal basis (right, up, forward) and its
// world position. Forward points from the camera toward the target. When the
// camera looks straight up or down the right vector degenerates; its length
// is substituted with 1.0 so the math stays total.
func (c *Camera) Basis() (right, up, forward, pos geom.Point3) {
	pos = c.Position()
	forward = c.Target.Sub(pos).Normalize()

	worldUp := geom.Pt(0, 1, 0)
	right = forward.Cross(worldUp)
	rl := right.Length()
	if rl == 0 {
		rl = 1.0
	}
	right = geom.Point3{X: right.X / rl, Y: right.Y / rl, Z: right.Z / rl}
	up = right.Cross(forward)
	return right, up, forward, pos
}

// Project transforms a world point into pixel coordinates on a w x h screen.
// Points at or behind the near threshold project to the screen center; the
// result is visually meaningless there and callers must tolerate it.
func (c *Camera) Project(p geom.Point3, w, h int) (int, int) {
	right, up, forward, pos := c.Basis()
	rel := p.Sub(pos)
	xCam := rel.Dot(right)
	yCam := rel.Dot(up)
	zCam := rel.Dot(forward)
	if zCam <= nearEpsilon {
		return w / 2, h / 2
	}
	aspect := float64(w) / math.Max(1, float64(h))
	tanHalf := math.Tan(c.FOV * math.Pi / 360)
	nx := (xCam / (zCam * tanHalf)) / aspect
	ny := yCam / (zCam * tanHalf)
	sx := int((nx*0.5 + 0.5) * float64(w))
	sy := int((1.0 - (ny*0.5 + 0.5)) * float64(h))
	return sx, sy
}

// ScreenToRay builds a normalized world-space ray through the given pixel.
func (c *Camera) ScreenToRay(sx, sy, w, h int) (origin, dir geom.Point3) {
	right, up, forward, pos := c.Basis()
	xNDC := float64(sx)/math.Max(1, float64(w))*2 - 1
	yNDC := 1 - float64(sy)/math.Max(1, float64(h))*2
	aspect := float64(w) / math.Max(1, float64(h))
	tanHalf := math.Tan(c.FOV * math.Pi / 360)
	dx := xNDC * aspect * tanHalf
	dy := yNDC * tanHalf
	dir = right.Scale(dx).Add(up.Scale(dy)).Add(forward)
	dl := dir.Length()
	if dl == 0 {
		dl = 1.0
	}
	return pos, geom.Point3{X: dir.X / dl, Y: dir.Y / dl, Z: dir.Z / dl}
}

// Unproject intersects the pixel's ray with the horizontal plane y = planeY.
// Rays near-parallel to the plane return the ray origin's x/z at plane
// height; intersections behind the camera (t <= 0) return a point one unit
// along the ray instead, so dragged objects never jump behind the camera.
func (c *Camera) Unproject(sx, sy, w, h int, planeY float64) geom.Point3 {
	origin, dir := c.ScreenToRay(sx, sy, w, h)
	if math.Abs(dir.Y) < 1e-5 {
		return geom.Point3{X: origin.X, Y: planeY, Z: origin.Z}
	}
	t := (planeY - origin.Y) / dir.Y
	if t <= 0 {
		return geom.Point3{X: origin.X + dir.X, Y: planeY, Z: origin.Z + dir.Z}
	}
	return geom.Point3{X: origin.X + dir.X*t, Y: planeY, Z: origin.Z + dir.Z*t}
}

// Orbit applies a pointer drag of (dx, dy) pixels to the orbit angles.
// Horizontal motion wraps around; vertical motion is inverted and clamped
// so the camera never flips over the pole.
func (c *Camera) Orbit(dx, dy float64) {
	c.AngleH = math.Mod(c.AngleH+dx*orbitSensitivityH, 360)
	if c.AngleH < 0 {
		c.AngleH += 360
	}
	c.AngleV = clamp(c.AngleV-dy*orbitSensitivityV, -MaxPitch, MaxPitch)
}

// Zoom applies a wheel step to the orbit distance, clamped to the zoom range.
func (c *Camera) Zoom(wheel float64) {
	c.Distance = clamp(c.Distance-wheel*zoomStep, MinDistance, MaxDistance)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
