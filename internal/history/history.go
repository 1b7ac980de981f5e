package history

import (
	"github.com/jinzhu/copier"

	"classroom-planner/internal/scene"
)

// DefaultCapacity bounds the undo stack; the oldest snapshot rolls off past
// this many commits.
const DefaultCapacity = 50

// Log is a bounded linear undo/redo stack over full-scene snapshots. Every
// entry is a deep copy, so live edits never reach stored snapshots.
//
// Once the log is full, a commit drops the oldest entry INSTEAD of advancing
// the cursor; only one of the two ever happens per commit. The cursor then
// keeps pointing at the newest entry while history rolls off the back.
type Log struct {
	snapshots [][]scene.Object
	cursor    int // index of the current snapshot, -1 while empty
	capacity  int
}

// New returns an empty log. capacity <= 0 uses DefaultCapacity.
func New(capacity int) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Log{cursor: -1, capacity: capacity}
}

// Commit stores a deep copy of objs as the new current snapshot. Any redo
// branch past the cursor is discarded first. Selection flags are not part of
// a snapshot; restored objects always come back deselected.
func (l *Log) Commit(objs []scene.Object) {
	if l.cursor < len(l.snapshots)-1 {
		l.snapshots = l.snapshots[:l.cursor+1]
	}
	l.snapshots = append(l.snapshots, clone(objs))
	if len(l.snapshots) > l.capacity {
		l.snapshots = l.snapshots[1:]
	} else {
		l.cursor++
	}
}

// Undo steps the cursor back and returns a deep copy of that snapshot.
// Returns false at the oldest entry (or while empty); the scene then stays
// as it is.
func (l *Log) Undo() ([]scene.Object, bool) {
	if l.cursor <= 0 {
		return nil, false
	}
	l.cursor--
	return clone(l.snapshots[l.cursor]), true
}

// Redo steps the cursor forward and returns a deep copy of that snapshot.
// Returns false at the newest entry.
func (l *Log) Redo() ([]scene.Object, bool) {
	if l.cursor >= len(l.snapshots)-1 {
		return nil, false
	}
	l.cursor++
	return clone(l.snapshots[l.cursor]), true
}

// Len returns the number of stored snapshots.
func (l *Log) Len() int {
	return len(l.snapshots)
}

// Cursor returns the current snapshot index (-1 while empty).
func (l *Log) Cursor() int {
	return l.cursor
}

// clone deep-copies a snapshot and strips selection flags.
func clone(objs []scene.Object) []scene.Object {
	out := make([]scene.Object, 0, len(objs))
	_ = copier.CopyWithOption(&out, &objs, copier.Option{DeepCopy: true})
	for i := range out {
		out[i].Selected = false
	}
	return out
}
