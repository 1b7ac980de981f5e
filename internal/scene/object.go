package scene

import (
	"fmt"

	"classroom-planner/internal/geom"
)

// Kind identifies a furniture type. The zero value is KindChair.
type Kind int

const (
	KindChair Kind = iota
	KindDesk
	KindTable
	KindPodium
	KindCabinet

	kindCount
)

// kindNames are the wire names used in layout files and the catalog.
var kindNames = [kindCount]string{"chair", "desk", "table", "podium", "cabinet"}

// Kinds returns all furniture kinds in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

// String returns the lowercase wire name ("chair", "desk", ...).
func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind maps a wire name back to a Kind. Unknown names are an error so a
// corrupt layout file fails loudly instead of placing mystery furniture.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown furniture kind %q", s)
}

// Object is one piece of placed furniture. It is a plain value type: history
// snapshots and layout round trips copy it structurally, so nothing aliases
// the live scene.
type Object struct {
	ID       uint64
	Kind     Kind
	Name     string
	Position geom.Point3
	Rotation float64 // degrees, unbounded; wraps visually every 360
	Scale    float64 // kept in [MinScale, MaxScale]
	Selected bool
}

// Scale limits for wheel scaling.
const (
	MinScale = 0.5
	MaxScale = 2.0
)

// ClampScale clamps s to the allowed object scale range.
func ClampScale(s float64) float64 {
	if s < MinScale {
		return MinScale
	}
	if s > MaxScale {
		return MaxScale
	}
	return s
}
