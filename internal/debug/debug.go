// Package debug draws the F3 diagnostics overlay: frame rate, scene and
// history counters, camera parameters, and the newest log lines.
package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"

	"classroom-planner/internal/logger"
	"classroom-planner/internal/session"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// Only refresh the text every N frames to reduce allocations.
	updateInterval = 30
	tailLines      = 3
)

// Overlay renders runtime diagnostics in the top-right corner. Hidden by
// default; flip with Toggle.
type Overlay struct {
	visible    bool
	s          *session.Session
	log        *logger.Logger
	frameCount uint32
	lines      []string
	memStats   runtime.MemStats
}

// New returns a hidden overlay reading from the given session and logger.
func New(s *session.Session, log *logger.Logger) *Overlay {
	return &Overlay{s: s, log: log}
}

// Toggle flips visibility.
func (o *Overlay) Toggle() {
	o.visible = !o.visible
}

// Visible reports whether the overlay draws.
func (o *Overlay) Visible() bool { return o.visible }

// Draw renders the overlay when visible. Call last in the draw loop so the
// text sits over every screen. Text is recomputed every updateInterval
// frames.
func (o *Overlay) Draw() {
	if !o.visible {
		return
	}
	o.frameCount++
	if len(o.lines) == 0 || o.frameCount%updateInterval == 0 {
		o.refresh()
	}
	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	for _, line := range o.lines {
		w := rl.MeasureText(line, fontSize)
		rl.DrawText(line, screenW-w-padding, y, fontSize, rl.Green)
		y += lineHeight
	}
}

func (o *Overlay) refresh() {
	runtime.ReadMemStats(&o.memStats)
	mb := float64(o.memStats.Alloc) / (1024 * 1024)
	cam := o.s.Cam
	o.lines = o.lines[:0]
	o.lines = append(o.lines,
		fmt.Sprintf("FPS: %d", rl.GetFPS()),
		fmt.Sprintf("Mem: %.2f MiB", mb),
		fmt.Sprintf("Mode: %s", o.s.Mode()),
		fmt.Sprintf("Objects: %d", o.s.Scene.Len()),
		fmt.Sprintf("History: %d", o.s.HistoryLen()),
		fmt.Sprintf("Camera: h=%.1f v=%.1f d=%.0f", cam.AngleH, cam.AngleV, cam.Distance),
	)
	o.lines = append(o.lines, o.log.Tail(tailLines)...)
}
