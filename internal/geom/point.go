package geom

import "math"

// Point3 is a point or vector in world space (Y is up). All operations return
// new values; Point3 is never mutated in place.
type Point3 struct {
	X, Y, Z float64
}

// Pt is shorthand for Point3{x, y, z}.
func Pt(x, y, z float64) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

// Add returns p + q.
func (p Point3) Add(q Point3) Point3 {
	return Point3{p.X + q.X, p.Y + q.Y, p.Z + q.Z}
}

// Sub returns p - q.
func (p Point3) Sub(q Point3) Point3 {
	return Point3{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// Scale returns p scaled by s.
func (p Point3) Scale(s float64) Point3 {
	return Point3{p.X * s, p.Y * s, p.Z * s}
}

// Length returns the Euclidean length of p.
func (p Point3) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

// Normalize returns p scaled to unit length. The zero vector normalizes to
// the zero vector rather than dividing by zero.
func (p Point3) Normalize() Point3 {
	l := p.Length()
	if l == 0 {
		return Point3{}
	}
	return Point3{p.X / l, p.Y / l, p.Z / l}
}

// Dot returns the dot product of p and q.
func (p Point3) Dot(q Point3) float64 {
	return p.X*q.X + p.Y*q.Y + p.Z*q.Z
}

// Cross returns the cross product p x q.
func (p Point3) Cross(q Point3) Point3 {
	return Point3{
		p.Y*q.Z - p.Z*q.Y,
		p.Z*q.X - p.X*q.Z,
		p.X*q.Y - p.Y*q.X,
	}
}
