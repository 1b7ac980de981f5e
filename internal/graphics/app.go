package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"classroom-planner/internal/ar"
	"classroom-planner/internal/debug"
	"classroom-planner/internal/session"
)

// App binds one session to the window. Update polls input into the session,
// Draw paints the screen the session is on. The cached AR texture holds the
// last camera frame uploaded to the GPU.
type App struct {
	S   *session.Session
	Cap *ar.Capture
	Det *ar.Detector
	Dbg *debug.Overlay

	arTexture rl.Texture2D
	arW, arH  int
	pixBuf    []rl.Color
}

// New wires the app together. All four collaborators are required.
func New(s *session.Session, cap *ar.Capture, det *ar.Detector, dbg *debug.Overlay) *App {
	return &App{S: s, Cap: cap, Det: det, Dbg: dbg}
}

// Font sizes track the window scale the way the chrome rectangles do, with
// floors that keep text legible on small windows.
func fontPx(scale float64) int32  { return scaledFont(28, 18, scale) }
func smallPx(scale float64) int32 { return scaledFont(22, 14, scale) }
func tinyPx(scale float64) int32  { return scaledFont(18, 12, scale) }
func largePx(scale float64) int32 { return scaledFont(42, 24, scale) }

func scaledFont(base, min int, scale float64) int32 {
	px := int32(float64(base) * scale)
	if px < int32(min) {
		px = int32(min)
	}
	return px
}
