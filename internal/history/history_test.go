package history

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classroom-planner/internal/geom"
	"classroom-planner/internal/scene"
)

// snap builds a single-object snapshot whose x position doubles as a label.
func snap(x float64) []scene.Object {
	return []scene.Object{{
		ID:       1,
		Kind:     scene.KindChair,
		Name:     "chair",
		Position: geom.Pt(x, 0, 0),
		Rotation: 180,
		Scale:    1,
	}}
}

func TestUndoRedo(t *testing.T) {
	t.Parallel()

	l := New(10)
	l.Commit(snap(0))
	l.Commit(snap(1))
	l.Commit(snap(2))

	objs, ok := l.Undo()
	require.True(t, ok)
	assert.Equal(t, 1.0, objs[0].Position.X)

	objs, ok = l.Undo()
	require.True(t, ok)
	assert.Equal(t, 0.0, objs[0].Position.X)

	_, ok = l.Undo()
	assert.False(t, ok, "undo stops at the oldest snapshot")

	objs, ok = l.Redo()
	require.True(t, ok)
	assert.Equal(t, 1.0, objs[0].Position.X)

	objs, ok = l.Redo()
	require.True(t, ok)
	assert.Equal(t, 2.0, objs[0].Position.X)

	_, ok = l.Redo()
	assert.False(t, ok, "redo stops at the newest snapshot")
}

func TestCommitAfterUndoDiscardsRedoBranch(t *testing.T) {
	t.Parallel()

	l := New(10)
	l.Commit(snap(0))
	l.Commit(snap(1))
	_, ok := l.Undo()
	require.True(t, ok)

	l.Commit(snap(9))

	_, ok = l.Redo()
	assert.False(t, ok, "the forward branch is gone")
	assert.Equal(t, 2, l.Len())

	objs, ok := l.Undo()
	require.True(t, ok)
	assert.Equal(t, 0.0, objs[0].Position.X)
}

func TestCapacityRollsOffOldest(t *testing.T) {
	t.Parallel()

	const capacity = 50
	l := New(capacity)
	for i := 0; i < capacity+20; i++ {
		l.Commit(snap(float64(i)))
	}
	assert.Equal(t, capacity, l.Len())

	// Undo repeatedly: capacity-1 steps reach the oldest retained snapshot
	// and never go further.
	var last []scene.Object
	steps := 0
	for {
		objs, ok := l.Undo()
		if !ok {
			break
		}
		last = objs
		steps++
		require.LessOrEqual(t, steps, capacity-1)
	}
	assert.Equal(t, capacity-1, steps)
	require.NotNil(t, last)
	assert.Equal(t, 20.0, last[0].Position.X, "snapshots 0..19 rolled off")
}

func TestCursorStopsAdvancingAtCapacity(t *testing.T) {
	t.Parallel()

	l := New(3)
	l.Commit(snap(0))
	l.Commit(snap(1))
	l.Commit(snap(2))
	assert.Equal(t, 2, l.Cursor())

	// Over capacity: oldest rolls off and the cursor stays put, which keeps
	// it on the newest entry after the shift.
	l.Commit(snap(3))
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, 2, l.Cursor())

	objs, ok := l.Undo()
	require.True(t, ok)
	assert.Equal(t, 2.0, objs[0].Position.X)
}

func TestSnapshotsAreDeepCopies(t *testing.T) {
	t.Parallel()

	l := New(10)
	live := snap(5)
	l.Commit(live)

	// Mutating the live slice after the commit must not reach the snapshot.
	live[0].Position.X = 999
	live[0].Rotation = 1

	l.Commit(live)
	objs, ok := l.Undo()
	require.True(t, ok)
	assert.Equal(t, 5.0, objs[0].Position.X)
	assert.Equal(t, 180.0, objs[0].Rotation)

	// And the returned copy is itself detached from the log: mutating it
	// must not corrupt the stored snapshot.
	objs[0].Position.X = -1
	_, ok = l.Redo()
	require.True(t, ok)
	objs, ok = l.Undo()
	require.True(t, ok)
	assert.Equal(t, 5.0, objs[0].Position.X)
}

func TestSelectionIsNotSnapshotted(t *testing.T) {
	t.Parallel()

	l := New(10)
	objs := snap(0)
	objs[0].Selected = true
	l.Commit(objs)
	l.Commit(snap(1))

	restored, ok := l.Undo()
	require.True(t, ok)
	assert.False(t, restored[0].Selected)
}

func TestRestoredSnapshotMatchesCommitted(t *testing.T) {
	t.Parallel()

	l := New(10)
	a := []scene.Object{
		{ID: 1, Kind: scene.KindChair, Name: "chair", Position: geom.Pt(25, 0, 50), Rotation: 180, Scale: 1},
		{ID: 2, Kind: scene.KindDesk, Name: "desk", Position: geom.Pt(-75, 0, 0), Rotation: 45, Scale: 1.5},
	}
	l.Commit(a)
	l.Commit(append(clone(a), scene.Object{ID: 3, Kind: scene.KindTable, Name: "table", Scale: 1}))

	got, ok := l.Undo()
	require.True(t, ok)
	if diff := cmp.Diff(a, got); diff != "" {
		t.Errorf("restored snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestManyCommitSequences(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 49, 50, 51, 120} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()
			l := New(50)
			for i := 0; i < n; i++ {
				l.Commit(snap(float64(i)))
			}
			want := n
			if want > 50 {
				want = 50
			}
			assert.Equal(t, want, l.Len())
			assert.Equal(t, want-1, l.Cursor())
		})
	}
}
