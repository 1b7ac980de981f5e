// Package ui lays out the planner's screen chrome: the tool and action
// buttons along the top bar, the view toggles in the corner, and the setup
// form. It owns geometry and palette only; drawing happens elsewhere.
package ui

import "math"

// TopBarHeight is the scene cutoff in pixels. Clicks above it never reach
// the floor.
const TopBarHeight = 70

// Action identifies a chrome button.
type Action int

const (
	ActionNone Action = iota
	ActionChair
	ActionDesk
	ActionTable
	ActionPodium
	ActionCabinet
	ActionRows
	ActionSave
	ActionScreenshot
	ActionLoad
	ActionClear
	ActionRedo
	ActionUndo
	ActionARView
	ActionGenMarker
	ActionToggleGrid
	ActionToggleSnap
	ActionToggleHelp
)

// Rect is an axis-aligned screen rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether the point falls inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// CenterX returns the horizontal midpoint.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical midpoint.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// ButtonSpec pairs an action with its rectangle and label.
type ButtonSpec struct {
	Action Action
	Rect   Rect
	Label  string
}

// Chrome holds the laid-out buttons for one window size. Buttons sit in
// the top bar, Toggles in the lower right corner. Rebuild with Layout on
// every resize.
type Chrome struct {
	Buttons []ButtonSpec
	Toggles []ButtonSpec
}

// Layout positions the chrome for a window. scale shrinks the bar on
// small windows and matches the font scale used by the drawing layer.
func Layout(width, height int, scale float64) Chrome {
	pad := math.Trunc(10 * scale)
	bw := math.Trunc(80 * scale)
	bh := math.Trunc(40 * scale)
	gap := math.Trunc(10 * scale)
	w := float64(width)
	h := float64(height)

	var c Chrome
	x := pad
	for _, t := range []struct {
		a     Action
		label string
	}{
		{ActionChair, "Chair"},
		{ActionDesk, "Desk"},
		{ActionTable, "Table"},
		{ActionPodium, "Podium"},
		{ActionCabinet, "Cabinet"},
	} {
		c.Buttons = append(c.Buttons, ButtonSpec{t.a, Rect{x, pad, bw, bh}, t.label})
		x += bw + gap
	}
	x += gap * 2
	c.Buttons = append(c.Buttons, ButtonSpec{ActionRows, Rect{x, pad, bw, bh}, "Rows"})

	x = w - pad - bw
	c.Buttons = append(c.Buttons, ButtonSpec{ActionSave, Rect{x, pad, bw, bh}, "Save"})
	x -= bw + gap
	c.Buttons = append(c.Buttons, ButtonSpec{ActionScreenshot, Rect{x, pad, bw, bh}, "Shot"})
	x -= bw + gap
	c.Buttons = append(c.Buttons, ButtonSpec{ActionLoad, Rect{x, pad, bw, bh}, "Load"})
	x -= bw + gap
	c.Buttons = append(c.Buttons, ButtonSpec{ActionClear, Rect{x, pad, bw, bh}, "Clear"})
	x -= bw + gap*3
	c.Buttons = append(c.Buttons, ButtonSpec{ActionRedo, Rect{x, pad, bw, bh}, "Redo"})
	x -= bw + gap
	c.Buttons = append(c.Buttons, ButtonSpec{ActionUndo, Rect{x, pad, bw, bh}, "Undo"})
	x -= bw + gap*2
	c.Buttons = append(c.Buttons, ButtonSpec{ActionARView, Rect{x, pad, bw, bh}, "AR Cam"})
	x -= bw + gap
	c.Buttons = append(c.Buttons, ButtonSpec{ActionGenMarker, Rect{x, pad, bw, bh}, "Gen Marker"})

	tw := math.Trunc(90 * scale)
	th := math.Trunc(35 * scale)
	tx := w - tw - pad
	c.Toggles = []ButtonSpec{
		{ActionToggleGrid, Rect{tx, h - 140*scale, tw, th}, "Grid"},
		{ActionToggleSnap, Rect{tx, h - 100*scale, tw, th}, "Snap"},
		{ActionToggleHelp, Rect{tx, h - 60*scale, tw, th}, "Help"},
	}
	return c
}

// Hit returns the action under the point, checking buttons before
// toggles.
func (c Chrome) Hit(x, y float64) (Action, bool) {
	for _, b := range c.Buttons {
		if b.Rect.Contains(x, y) {
			return b.Action, true
		}
	}
	for _, b := range c.Toggles {
		if b.Rect.Contains(x, y) {
			return b.Action, true
		}
	}
	return ActionNone, false
}

// ButtonRect returns the rectangle of an action, if laid out.
func (c Chrome) ButtonRect(a Action) (Rect, bool) {
	for _, b := range c.Buttons {
		if b.Action == a {
			return b.Rect, true
		}
	}
	for _, b := range c.Toggles {
		if b.Action == a {
			return b.Rect, true
		}
	}
	return Rect{}, false
}

// SetupRects holds the geometry of the room dimension form.
type SetupRects struct {
	Width  Rect
	Depth  Rect
	Height Rect
	Start  Rect
}

// SetupLayout centers the three dimension inputs and the start button.
func SetupLayout(width, height int) SetupRects {
	cx := float64(width / 2)
	cy := float64(height / 2)
	const inputW, inputH = 400, 50
	return SetupRects{
		Width:  Rect{cx - inputW/2, cy - 160, inputW, inputH},
		Depth:  Rect{cx - inputW/2, cy - 50, inputW, inputH},
		Height: Rect{cx - inputW/2, cy + 60, inputW, inputH},
		Start:  Rect{cx - inputW/2, cy + 160, inputW, 50},
	}
}
