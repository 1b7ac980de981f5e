package graphics

import (
	"fmt"
	"image/color"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"classroom-planner/internal/camera"
	"classroom-planner/internal/geom"
	"classroom-planner/internal/render"
	"classroom-planner/internal/scene"
	"classroom-planner/internal/session"
	"classroom-planner/internal/ui"
)

// Draw paints the frame for the session's current screen. The debug overlay
// goes on top of everything.
func (a *App) Draw() {
	switch a.S.Mode() {
	case session.ModeSetup:
		a.drawSetup()
	case session.ModeWelcome, session.ModeOpening:
		a.drawWelcome()
	case session.ModeRunning:
		if a.S.ARActive() {
			a.drawARView()
		} else {
			a.drawEditor()
		}
	}
	a.Dbg.Draw()
}

func rlRect(r ui.Rect) rl.Rectangle {
	return rl.NewRectangle(float32(r.X), float32(r.Y), float32(r.W), float32(r.H))
}

func drawCentered(text string, cx, cy, size int32, col color.RGBA) {
	w := rl.MeasureText(text, size)
	rl.DrawText(text, cx-w/2, cy-size/2, size, col)
}

func drawCenteredShadow(text string, cx, cy, size, off int32, col color.RGBA) {
	drawCentered(text, cx+off, cy+off, size, ui.Black)
	drawCentered(text, cx, cy, size, col)
}

// drawPoly projects a world face and fills it as a triangle fan, then
// strokes the outline when EdgeW is set. raylib culls fans wound clockwise
// on screen, so the ring is flipped when the projection comes out that way.
func drawPoly(cam *camera.Camera, w, h int, p render.Poly) {
	n := len(p.Pts)
	if n < 3 {
		return
	}
	pts := make([]rl.Vector2, n)
	for i, wp := range p.Pts {
		sx, sy := cam.Project(wp, w, h)
		pts[i] = rl.NewVector2(float32(sx), float32(sy))
	}
	if signedArea(pts) > 0 {
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}
	fill := p.Fill
	if !p.Flat {
		fill = render.Shade(p.Fill, p.Pts)
	}
	rl.DrawTriangleFan(pts, fill)
	if p.EdgeW > 0 {
		for i := 0; i < n; i++ {
			rl.DrawLineEx(pts[i], pts[(i+1)%n], float32(p.EdgeW), p.Edge)
		}
	}
}

// signedArea returns twice the polygon's signed area in screen coordinates.
// Positive means clockwise winding with y pointing down.
func signedArea(pts []rl.Vector2) float32 {
	var sum float32
	for i := range pts {
		j := (i + 1) % len(pts)
		sum += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return sum
}

func drawLine(cam *camera.Camera, w, h int, l render.Line) {
	x1, y1 := cam.Project(l.A, w, h)
	x2, y2 := cam.Project(l.B, w, h)
	rl.DrawLineEx(
		rl.NewVector2(float32(x1), float32(y1)),
		rl.NewVector2(float32(x2), float32(y2)),
		float32(l.Width), l.Color)
}

// drawShape paints one furniture piece: faces, then legs, then the selection
// ring around the projected anchor.
func drawShape(cam *camera.Camera, w, h int, s render.Shape, at geom.Point3) {
	for _, p := range s.Polys {
		drawPoly(cam, w, h, p)
	}
	for _, l := range s.Legs {
		x1, y1 := cam.Project(l.Top, w, h)
		x2, y2 := cam.Project(l.Bottom, w, h)
		rl.DrawLineEx(
			rl.NewVector2(float32(x1), float32(y1)),
			rl.NewVector2(float32(x2), float32(y2)),
			float32(l.Width), l.Color)
	}
	if s.Indicator > 0 {
		sx, sy := cam.Project(at, w, h)
		r := float32(int(s.Indicator))
		for i := 0; i < 3; i++ {
			rl.DrawCircleLines(int32(sx), int32(sy), r+float32(i*2), ui.Glow)
		}
		rl.DrawRing(rl.NewVector2(float32(sx), float32(sy)), r-1, r+1, 0, 360, 0, ui.Selection)
	}
}

func (a *App) drawEditor() {
	rl.ClearBackground(ui.Background)
	w, h := a.S.Size()
	cam := a.S.Cam
	b := a.S.Scene.Bounds

	drawPoly(cam, w, h, render.FloorPoly(b))
	for _, l := range render.FloorLines(b, a.S.GridVisible()) {
		drawLine(cam, w, h, l)
	}
	for _, p := range render.WallPolys(b, cam.Position()) {
		drawPoly(cam, w, h, p)
	}
	for _, obj := range render.SortBackToFront(a.S.Scene.Objects, cam) {
		drawShape(cam, w, h, render.Furniture(obj, a.S.Catalog().Get(obj.Kind)), obj.Position)
	}

	a.drawChrome()
	a.drawInfoPanel()
	a.drawHelp()
	drawVignette(w, h)
}

// drawChrome paints the top bar with its buttons, the corner toggles, and
// the object counter. Drawn in both editor and AR views.
func (a *App) drawChrome() {
	w, h := a.S.Size()
	sc := a.S.UIScale()
	mp := rl.GetMousePosition()
	mx, my := float64(mp.X), float64(mp.Y)

	barH := int32(70 * sc)
	base := uint8(20 + barH/2)
	rl.DrawRectangleGradientV(0, 0, int32(w), barH,
		rl.NewColor(20, 20, 30, 235), rl.NewColor(base, base, base+10, 235))

	chrome := a.S.Chrome()
	active := a.S.ActiveAction()
	palette := kindAction(a.S.Palette())
	for _, btn := range chrome.Buttons {
		if btn.Action == palette {
			rl.DrawRectangleRounded(rlRect(inflate(btn.Rect, 4)), 0.5, 8, ui.Glow)
		}
		col := buttonColor(btn.Action, active == btn.Action, btn.Rect.Contains(mx, my), palette, a.S.ARActive())
		rl.DrawRectangleRounded(rlRect(btn.Rect), 0.4, 8, col)
		drawCentered(btn.Label, int32(btn.Rect.CenterX()), int32(btn.Rect.CenterY()), smallPx(sc), ui.White)
	}

	for _, tog := range chrome.Toggles {
		col := ui.ButtonInactive
		switch {
		case active == tog.Action:
			col = ui.ButtonPressed
		case a.toggleOn(tog.Action):
			col = ui.ButtonActive
		case tog.Rect.Contains(mx, my):
			col = ui.ButtonHover
		}
		rl.DrawRectangleRounded(rlRect(tog.Rect), 0.4, 8, col)
		drawCentered(tog.Label, int32(tog.Rect.CenterX()), int32(tog.Rect.CenterY()), tinyPx(sc), ui.White)
	}

	counter := fmt.Sprintf("Objects: %d", a.S.Scene.Len())
	rl.DrawText(counter, int32(10*sc), int32(h)-int32(35*sc), smallPx(sc), ui.White)
}

// buttonColor picks the shade for a top bar button from its press, hover,
// palette, and AR state.
func buttonColor(act ui.Action, pressed, hover bool, palette ui.Action, arOn bool) color.RGBA {
	if isKindAction(act) {
		switch {
		case pressed:
			return ui.ButtonPressed
		case act == palette:
			return ui.ButtonActive
		case hover:
			return ui.ButtonHover
		default:
			return ui.ButtonInactive
		}
	}
	baseCol, hoverCol, pressedCol := ui.Styles(act)
	switch {
	case pressed:
		return pressedCol
	case act == ui.ActionARView && arOn:
		return ui.ButtonActive
	case hover:
		return hoverCol
	default:
		return baseCol
	}
}

func isKindAction(a ui.Action) bool {
	return a >= ui.ActionChair && a <= ui.ActionCabinet
}

// kindAction maps the palette kind back to its toolbar button.
func kindAction(k scene.Kind) ui.Action {
	switch k {
	case scene.KindChair:
		return ui.ActionChair
	case scene.KindDesk:
		return ui.ActionDesk
	case scene.KindTable:
		return ui.ActionTable
	case scene.KindPodium:
		return ui.ActionPodium
	case scene.KindCabinet:
		return ui.ActionCabinet
	default:
		return ui.ActionNone
	}
}

func (a *App) toggleOn(act ui.Action) bool {
	switch act {
	case ui.ActionToggleGrid:
		return a.S.GridVisible()
	case ui.ActionToggleSnap:
		return a.S.SnapEnabled()
	case ui.ActionToggleHelp:
		return a.S.HelpVisible()
	}
	return false
}

func inflate(r ui.Rect, by float64) ui.Rect {
	return ui.Rect{X: r.X - by/2, Y: r.Y - by/2, W: r.W + by, H: r.H + by}
}

// drawInfoPanel lists the selected object's parameters under the top bar.
func (a *App) drawInfoPanel() {
	obj := a.S.Selected()
	if obj == nil {
		return
	}
	size := tinyPx(a.S.UIScale())
	lines := []string{
		fmt.Sprintf("Selected: %s (ID: %d)", a.S.Catalog().Get(obj.Kind).Label, obj.ID),
		fmt.Sprintf("Position: %.1f' , %.1f'", obj.Position.X/scene.GridSize, obj.Position.Z/scene.GridSize),
		fmt.Sprintf("Rotation: %.0f degrees", obj.Rotation),
		fmt.Sprintf("Scale: %.1fx", obj.Scale),
	}
	y := int32(80)
	for _, line := range lines {
		rl.DrawText(line, 11, y+1, size, ui.Black)
		rl.DrawText(line, 10, y, size, ui.White)
		y += 20
	}
}

var helpLines = []string{
	"",
	"MOUSE CONTROLS:",
	" Left Click: Place/Select object",
	" Left Drag: Move selected object",
	" Right Click: Delete object / Rotate view",
	" Right Drag: Rotate camera 360 degrees",
	" Mouse Wheel: Zoom in/out",
	" Shift + Wheel: Scale selected object",
	"",
	"KEYBOARD SHORTCUTS:",
	" Delete: Remove selected object",
	" R: Rotate selected object 45 degrees",
	" G: Toggle grid snap (1 ft)",
	" H: Toggle this help",
	" Ctrl+Z: Undo",
	" Ctrl+Y: Redo",
}

// drawHelp paints the controls card in the middle of the screen.
func (a *App) drawHelp() {
	if !a.S.HelpVisible() {
		return
	}
	w, h := a.S.Size()
	sc := a.S.UIScale()
	const cardW, cardH = 500, 500
	x := int32(w/2 - cardW/2)
	y := int32(h/2 - cardH/2)
	card := rl.NewRectangle(float32(x), float32(y), cardW, cardH)
	rl.DrawRectangleRounded(card, 0.04, 8, rl.NewColor(30, 30, 30, 240))
	rl.DrawRectangleLinesEx(card, 3, ui.Blue)
	rl.DrawText("Keyboard & Mouse Controls", x+100, y+20, fontPx(sc), ui.White)
	ly := y + 60
	for _, line := range helpLines {
		if strings.HasSuffix(line, ":") {
			rl.DrawText(line, x+30, ly, smallPx(sc), ui.Yellow)
		} else {
			rl.DrawText(line, x+30, ly, tinyPx(sc), ui.White)
		}
		ly += 25
	}
}

// drawVignette darkens a band along each screen edge: transparent at the
// outer edge, darkest 150 pixels in.
func drawVignette(w, h int) {
	const edge = 150
	dark := rl.NewColor(0, 0, 0, 80)
	none := rl.NewColor(0, 0, 0, 0)
	wi, hi := int32(w), int32(h)
	rl.DrawRectangleGradientV(0, 0, wi, edge, none, dark)
	rl.DrawRectangleGradientV(0, hi-edge, wi, edge, dark, none)
	rl.DrawRectangleGradientH(0, 0, edge, hi, none, dark)
	rl.DrawRectangleGradientH(wi-edge, 0, edge, hi, dark, none)
}

// drawSetup paints the room dimension form.
func (a *App) drawSetup() {
	rl.ClearBackground(ui.Background)
	w, _ := a.S.Size()
	sc := a.S.UIScale()
	r := a.S.SetupRects()
	form := a.S.Setup()

	drawCentered("Enter Room Dimensions", int32(w/2), int32(r.Width.Y-80), largePx(sc), ui.White)

	a.drawSetupInput(r.Width, "Width (ft):", form.Width, form.Active == session.FieldWidth)
	a.drawSetupInput(r.Depth, "Depth (ft):", form.Depth, form.Active == session.FieldDepth)
	a.drawSetupInput(r.Height, "Height (ft):", form.Height, form.Active == session.FieldHeight)

	mp := rl.GetMousePosition()
	col := ui.Green
	switch {
	case a.S.StartPressed():
		col = ui.GreenPressed
	case r.Start.Contains(float64(mp.X), float64(mp.Y)):
		col = ui.GreenHover
	}
	rl.DrawRectangleRounded(rlRect(r.Start), 0.4, 8, col)
	drawCentered("Generate Room", int32(r.Start.CenterX()), int32(r.Start.CenterY()), fontPx(sc), ui.White)

	if form.Error != "" {
		drawCentered(form.Error, int32(w/2), int32(r.Start.Y+r.Start.H+30), smallPx(sc), ui.Red)
	}
}

// drawSetupInput paints one labeled text box. The focused box gets a blue
// border and a blinking cursor.
func (a *App) drawSetupInput(r ui.Rect, label, value string, active bool) {
	sc := a.S.UIScale()
	rl.DrawText(label, int32(r.X), int32(r.Y-45), fontPx(sc), ui.White)
	rl.DrawRectangleRec(rlRect(r), rl.NewColor(240, 240, 240, 255))
	border := rl.NewColor(100, 100, 100, 255)
	if active {
		border = ui.Blue
	}
	rl.DrawRectangleLinesEx(rlRect(r), 3, border)
	text := value
	if active && int(rl.GetTime()*2)%2 == 0 {
		text += "|"
	}
	size := fontPx(sc)
	rl.DrawText(text, int32(r.X+10), int32(r.Y)+(int32(r.H)-size)/2, size, ui.Black)
}

// drawWelcome paints the schoolhouse exterior with the door swing.
func (a *App) drawWelcome() {
	rl.ClearBackground(ui.Background)
	w, h := a.S.Size()
	b := a.S.Scene.Bounds
	cam := render.WelcomeCamera(b)
	ws := render.Welcome(b, a.S.DoorAngle(), a.S.DoorHovering())
	for _, p := range ws.Polys {
		drawPoly(cam, w, h, p)
	}
	if ws.ShowKnob {
		sx, sy := cam.Project(ws.Knob, w, h)
		rl.DrawCircle(int32(sx), int32(sy), float32(5*a.S.UIScale()), render.KnobColor)
	}
	if ws.ShowHint {
		drawCenteredShadow("Click the door to enter", int32(w/2), int32(h-120), largePx(a.S.UIScale()), 2, ui.White)
	}
}
