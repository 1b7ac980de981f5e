package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"classroom-planner/internal/render"
	"classroom-planner/internal/session"
)

var pointerButtons = [...]struct {
	btn rl.MouseButton
	to  session.Button
}{
	{rl.MouseButtonLeft, session.ButtonLeft},
	{rl.MouseButtonMiddle, session.ButtonMiddle},
	{rl.MouseButtonRight, session.ButtonRight},
}

// Update polls raylib input and forwards it to the session. Call once per
// frame before drawing.
func (a *App) Update() {
	if rl.IsWindowResized() {
		a.S.Resize(rl.GetScreenWidth(), rl.GetScreenHeight())
	}
	if rl.IsKeyPressed(rl.KeyF3) {
		a.Dbg.Toggle()
	}
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}
	switch a.S.Mode() {
	case session.ModeSetup:
		a.updateSetup()
	case session.ModeWelcome, session.ModeOpening:
		a.updateWelcome()
	case session.ModeRunning:
		a.updateRunning()
	}
}

func (a *App) updateSetup() {
	for {
		c := rl.GetCharPressed()
		if c == 0 {
			break
		}
		a.S.SetupChar(rune(c))
	}
	switch {
	case rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter):
		a.S.SetupEnter()
	case rl.IsKeyPressed(rl.KeyTab):
		a.S.SetupTab()
	case rl.IsKeyPressed(rl.KeyBackspace):
		a.S.SetupBackspace()
	}
	mp := rl.GetMousePosition()
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		a.S.SetupMouseDown(float64(mp.X), float64(mp.Y))
	}
	if rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
		a.S.SetupMouseUp(float64(mp.X), float64(mp.Y))
	}
}

// updateWelcome tracks the cursor against the door and advances the opening
// swing. The fixed exterior camera is rebuilt here because hover testing
// happens in screen space.
func (a *App) updateWelcome() {
	if a.S.Mode() == session.ModeWelcome {
		w, h := a.S.Size()
		cam := render.WelcomeCamera(a.S.Scene.Bounds)
		mp := rl.GetMousePosition()
		hover := render.DoorHover(cam, a.S.Scene.Bounds, a.S.DoorAngle(), w, h, float64(mp.X), float64(mp.Y))
		a.S.SetDoorHover(hover)
		if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
			a.S.ClickDoor()
		}
	}
	a.S.AdvanceDoor()
}

func (a *App) updateRunning() {
	mp := rl.GetMousePosition()
	mx, my := float64(mp.X), float64(mp.Y)

	for _, b := range pointerButtons {
		if rl.IsMouseButtonPressed(b.btn) {
			a.S.MouseDown(b.to, mx, my)
		}
		if rl.IsMouseButtonReleased(b.btn) {
			a.S.MouseUp(b.to, mx, my)
		}
	}
	if d := rl.GetMouseDelta(); d.X != 0 || d.Y != 0 {
		a.S.MouseMove(mx, my)
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		shift := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
		a.S.Wheel(float64(wheel), shift)
	}

	ctrl := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
	switch {
	case ctrl && rl.IsKeyPressed(rl.KeyZ):
		a.S.Undo()
	case ctrl && rl.IsKeyPressed(rl.KeyY):
		a.S.Redo()
	case rl.IsKeyPressed(rl.KeyDelete):
		a.S.DeleteSelected()
	case rl.IsKeyPressed(rl.KeyR):
		a.S.RotateSelected()
	case rl.IsKeyPressed(rl.KeyG):
		a.S.ToggleSnap()
	case rl.IsKeyPressed(rl.KeyH):
		a.S.ToggleHelp()
	}
}
