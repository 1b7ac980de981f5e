package scene

import (
	"math"

	"classroom-planner/internal/geom"
)

// World scale: 25 units per foot, and the placement grid is one foot.
const (
	UnitsPerFoot = 25.0
	GridSize     = 25.0
)

// MinRoomFeet is the smallest accepted room dimension during setup.
const MinRoomFeet = 8

// Bounds is the room extent in world units, centered on the origin.
// Width runs along X, Depth along Z, Height along Y.
type Bounds struct {
	Width  float64
	Depth  float64
	Height float64
}

// BoundsFromFeet converts user-entered feet to world units. Extents are
// truncated to whole units, so fractional feet lose the sub-unit remainder.
func BoundsFromFeet(w, d, h float64) Bounds {
	return Bounds{
		Width:  math.Trunc(w * UnitsPerFoot),
		Depth:  math.Trunc(d * UnitsPerFoot),
		Height: math.Trunc(h * UnitsPerFoot),
	}
}

// HalfWidth returns the clamping half-extent along X.
func (b Bounds) HalfWidth() float64 { return b.Width / 2 }

// HalfDepth returns the clamping half-extent along Z.
func (b Bounds) HalfDepth() float64 { return b.Depth / 2 }

// MaxDim returns the largest of the three extents, used to frame the camera.
func (b Bounds) MaxDim() float64 {
	return math.Max(b.Width, math.Max(b.Depth, b.Height))
}

// Scene owns the furniture list and the room bounds. Object identity is the
// monotonically assigned ID; ids are never reused within a session.
type Scene struct {
	Objects []Object
	Bounds  Bounds

	nextID uint64
}

// New returns an empty scene. Bounds stay zero until room setup runs.
func New() *Scene {
	return &Scene{nextID: 1}
}

// Snap rounds p's x/z to the nearest grid cell. Y is untouched.
func Snap(p geom.Point3) geom.Point3 {
	p.X = math.Round(p.X/GridSize) * GridSize
	p.Z = math.Round(p.Z/GridSize) * GridSize
	return p
}

// Clamp limits p's x/z to the room's half extents. Y is untouched.
func (s *Scene) Clamp(p geom.Point3) geom.Point3 {
	hw := s.Bounds.HalfWidth()
	hd := s.Bounds.HalfDepth()
	p.X = math.Max(-hw, math.Min(hw, p.X))
	p.Z = math.Max(-hd, math.Min(hd, p.Z))
	return p
}

// Place appends a new object of the given kind at pos with the given
// rotation and returns its id. Scale starts at 1. The caller snaps and
// clamps pos beforehand; Place stores it as given.
func (s *Scene) Place(kind Kind, pos geom.Point3, rotation float64) uint64 {
	obj := Object{
		ID:       s.nextID,
		Kind:     kind,
		Name:     kind.String(),
		Position: pos,
		Rotation: rotation,
		Scale:    1.0,
	}
	s.nextID++
	s.Objects = append(s.Objects, obj)
	return obj.ID
}

// Remove deletes the object with the given id. Returns false when no such
// object exists.
func (s *Scene) Remove(id uint64) bool {
	for i := range s.Objects {
		if s.Objects[i].ID == id {
			s.Objects = append(s.Objects[:i], s.Objects[i+1:]...)
			return true
		}
	}
	return false
}

// Clear removes every object. The id allocator keeps counting; cleared ids
// are not reused.
func (s *Scene) Clear() {
	s.Objects = s.Objects[:0]
}

// Get returns a pointer to the live object with the given id, or nil. The
// pointer is only valid until the object list next changes.
func (s *Scene) Get(id uint64) *Object {
	for i := range s.Objects {
		if s.Objects[i].ID == id {
			return &s.Objects[i]
		}
	}
	return nil
}

// Select marks the object with the given id as selected and deselects all
// others.
func (s *Scene) Select(id uint64) {
	for i := range s.Objects {
		s.Objects[i].Selected = s.Objects[i].ID == id
	}
}

// DeselectAll clears every selection flag.
func (s *Scene) DeselectAll() {
	for i := range s.Objects {
		s.Objects[i].Selected = false
	}
}

// SetObjects replaces the object list, e.g. from a history snapshot or a
// loaded layout. The allocator is bumped past every id seen so future
// placements stay unique.
func (s *Scene) SetObjects(objs []Object) {
	s.Objects = objs
	for i := range objs {
		s.EnsureID(objs[i].ID)
	}
}

// EnsureID bumps the id allocator so it will never hand out id again.
func (s *Scene) EnsureID(id uint64) {
	if id >= s.nextID {
		s.nextID = id + 1
	}
}

// Len returns the number of placed objects.
func (s *Scene) Len() int {
	return len(s.Objects)
}
