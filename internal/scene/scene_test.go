package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classroom-planner/internal/geom"
)

func TestParseKindRoundTrip(t *testing.T) {
	t.Parallel()

	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	_, err := ParseKind("sofa")
	assert.Error(t, err)
}

func TestBoundsFromFeet(t *testing.T) {
	t.Parallel()

	b := BoundsFromFeet(24, 32, 10)
	assert.Equal(t, 600.0, b.Width)
	assert.Equal(t, 800.0, b.Depth)
	assert.Equal(t, 250.0, b.Height)
	assert.Equal(t, 300.0, b.HalfWidth())
	assert.Equal(t, 400.0, b.HalfDepth())
	assert.Equal(t, 800.0, b.MaxDim())

	frac := BoundsFromFeet(8.5, 8.5, 8.5)
	assert.Equal(t, 212.0, frac.Width, "fractional feet truncate to whole units")
}

func TestSnap(t *testing.T) {
	t.Parallel()

	got := Snap(geom.Pt(37, 5, -13))
	assert.Equal(t, geom.Pt(25, 5, -25), got)

	// Exact cell midpoints round away from zero per math.Round.
	got = Snap(geom.Pt(12.5, 0, -12.5))
	assert.Equal(t, 25.0, got.X)
	assert.Equal(t, -25.0, got.Z)
}

func TestClampAtBoundary(t *testing.T) {
	t.Parallel()

	s := New()
	s.Bounds = BoundsFromFeet(24, 24, 10) // half extents 300 x 300

	got := s.Clamp(geom.Pt(10000, 0, -10000))
	assert.Equal(t, geom.Pt(300, 0, -300), got)

	// In-bounds points pass through untouched.
	got = s.Clamp(geom.Pt(-120, 0, 55))
	assert.Equal(t, geom.Pt(-120, 0, 55), got)
}

func TestPlaceAssignsMonotonicIDs(t *testing.T) {
	t.Parallel()

	s := New()
	id1 := s.Place(KindChair, geom.Pt(0, 0, 0), 180)
	id2 := s.Place(KindDesk, geom.Pt(25, 0, 0), 0)
	assert.Equal(t, uint64(1), id1)
	assert.Equal(t, uint64(2), id2)

	require.True(t, s.Remove(id1))
	id3 := s.Place(KindChair, geom.Pt(50, 0, 0), 180)
	assert.Equal(t, uint64(3), id3, "removed ids are never reused")

	obj := s.Get(id3)
	require.NotNil(t, obj)
	assert.Equal(t, KindChair, obj.Kind)
	assert.Equal(t, "chair", obj.Name)
	assert.Equal(t, 1.0, obj.Scale)
	assert.Equal(t, 180.0, obj.Rotation)
}

func TestRemoveMissing(t *testing.T) {
	t.Parallel()

	s := New()
	assert.False(t, s.Remove(42))
}

func TestSelect(t *testing.T) {
	t.Parallel()

	s := New()
	a := s.Place(KindChair, geom.Pt(0, 0, 0), 180)
	b := s.Place(KindDesk, geom.Pt(25, 0, 0), 0)

	s.Select(b)
	assert.False(t, s.Get(a).Selected)
	assert.True(t, s.Get(b).Selected)

	s.Select(a)
	assert.True(t, s.Get(a).Selected)
	assert.False(t, s.Get(b).Selected)

	s.DeselectAll()
	assert.False(t, s.Get(a).Selected)
	assert.False(t, s.Get(b).Selected)
}

func TestSetObjectsBumpsAllocator(t *testing.T) {
	t.Parallel()

	s := New()
	s.SetObjects([]Object{
		{ID: 7, Kind: KindTable, Name: "table", Scale: 1},
		{ID: 3, Kind: KindChair, Name: "chair", Scale: 1},
	})
	id := s.Place(KindPodium, geom.Pt(0, 0, 0), 0)
	assert.Equal(t, uint64(8), id)
}

func TestClampScale(t *testing.T) {
	t.Parallel()

	assert.Equal(t, MinScale, ClampScale(0.1))
	assert.Equal(t, MaxScale, ClampScale(9))
	assert.Equal(t, 1.3, ClampScale(1.3))
}
