// Package session owns the planner's interaction state: the mode machine
// from room setup through the welcome door to the running editor, the
// pointer state machine for placing and manipulating furniture, and the
// dispatch of chrome button actions. It never touches the window or GPU;
// the graphics layer feeds it input and reads its state back each frame.
package session

import (
	"math"
	"time"

	"classroom-planner/internal/camera"
	"classroom-planner/internal/catalog"
	"classroom-planner/internal/config"
	"classroom-planner/internal/geom"
	"classroom-planner/internal/history"
	"classroom-planner/internal/layout"
	"classroom-planner/internal/logger"
	"classroom-planner/internal/preset"
	"classroom-planner/internal/render"
	"classroom-planner/internal/scene"
	"classroom-planner/internal/ui"
)

// Mode is the top-level application state.
type Mode int

const (
	// ModeSetup collects room dimensions.
	ModeSetup Mode = iota
	// ModeWelcome shows the schoolhouse and waits for a door click.
	ModeWelcome
	// ModeOpening animates the door before the editor appears.
	ModeOpening
	// ModeRunning is the furniture editor.
	ModeRunning
)

// String names the mode for diagnostics.
func (m Mode) String() string {
	switch m {
	case ModeSetup:
		return "setup"
	case ModeWelcome:
		return "welcome"
	case ModeOpening:
		return "opening"
	case ModeRunning:
		return "running"
	default:
		return "unknown"
	}
}

// Button identifies a pointer button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
)

// ARControl drives the live capture feed behind the AR view.
type ARControl interface {
	Start()
	Stop()
	Running() bool
}

// Markers 23 through 25 map to furniture in the AR overlay, so generated
// sheets start there.
const firstMarkerID = 23

const rotateStep = 45

// Session is the single owner of camera, scene, history, and interaction
// state. All methods run on the main loop goroutine.
type Session struct {
	Cam   *camera.Camera
	Scene *scene.Scene

	prefs config.Prefs
	cat   catalog.Catalog
	log   *logger.Logger
	hist  *history.Log

	mode      Mode
	doorAngle float64
	doorHover bool

	setup      Setup
	setupRects ui.SetupRects

	width, height int
	uiScale       float64
	chrome        ui.Chrome

	palette    scene.Kind
	selectedID uint64

	draggingCamera bool
	draggingObject bool
	rotatingObject bool
	lastX, lastY   float64

	rightDown                bool
	rightStartX, rightStartY float64

	activeAction ui.Action

	snapToGrid bool
	showGrid   bool
	showHelp   bool

	ar       ARControl
	arActive bool

	nextMarkerID int
	writeMarker  func(dir string, id int) error
	screenshot   func() error
}

// New builds a session in setup mode sized to the configured window.
func New(prefs config.Prefs, cat catalog.Catalog, log *logger.Logger, ar ARControl) *Session {
	s := &Session{
		Cam:          camera.New(),
		Scene:        scene.New(),
		prefs:        prefs,
		cat:          cat,
		log:          log,
		hist:         history.New(history.DefaultCapacity),
		mode:         ModeSetup,
		setup:        Setup{Active: FieldWidth},
		palette:      scene.KindChair,
		snapToGrid:   true,
		showGrid:     true,
		ar:           ar,
		nextMarkerID: firstMarkerID,
	}
	s.Resize(prefs.WindowWidth, prefs.WindowHeight)
	return s
}

// SetMarkerWriter installs the fiducial sheet generator invoked by the
// Gen Marker button.
func (s *Session) SetMarkerWriter(fn func(dir string, id int) error) {
	s.writeMarker = fn
}

// SetScreenshotFunc installs the frame capture invoked by the Shot button.
func (s *Session) SetScreenshotFunc(fn func() error) {
	s.screenshot = fn
}

// Resize records the window size and relays out the chrome.
func (s *Session) Resize(width, height int) {
	s.width = width
	s.height = height
	s.uiScale = math.Min(float64(width)/1600, float64(height)/900)
	s.chrome = ui.Layout(width, height, s.uiScale)
	s.setupRects = ui.SetupLayout(width, height)
}

// MouseDown handles a pointer press while the editor runs.
func (s *Session) MouseDown(b Button, x, y float64) {
	switch b {
	case ButtonLeft:
		if a, ok := s.chrome.Hit(x, y); ok {
			s.activeAction = a
			return
		}
		if y > ui.TopBarHeight && !s.arActive {
			if id, ok := s.hit(x, y); ok {
				s.selectedID = id
				s.Scene.Select(id)
				s.draggingObject = true
			} else {
				s.selectedID = 0
				s.Scene.DeselectAll()
				s.place(x, y)
			}
		}
	case ButtonMiddle:
		if s.selectedID != 0 && !s.arActive {
			s.rotatingObject = true
			s.lastX, s.lastY = x, y
		}
	case ButtonRight:
		s.draggingCamera = true
		s.rightDown = true
		s.rightStartX, s.rightStartY = x, y
		s.lastX, s.lastY = x, y
	}
}

// MouseUp handles a pointer release while the editor runs. A left release
// over the pressed chrome button fires its action; a right release that
// never moved past the click threshold deletes the object under it.
func (s *Session) MouseUp(b Button, x, y float64) {
	switch b {
	case ButtonLeft:
		if s.activeAction != ui.ActionNone {
			if a, ok := s.chrome.Hit(x, y); ok && a == s.activeAction {
				s.apply(a)
			}
		}
		if s.draggingObject {
			s.commit()
		}
		s.draggingObject = false
		s.activeAction = ui.ActionNone
	case ButtonMiddle:
		if s.rotatingObject {
			s.commit()
		}
		s.rotatingObject = false
	case ButtonRight:
		wasDrag := false
		if s.rightDown {
			dx := x - s.rightStartX
			dy := y - s.rightStartY
			wasDrag = dx*dx+dy*dy > 9
		}
		s.draggingCamera = false
		s.rightDown = false
		if !wasDrag {
			if id, ok := s.hit(x, y); ok {
				s.Scene.Remove(id)
				s.selectedID = 0
				s.commit()
			}
		}
	}
}

// MouseMove routes pointer motion into whichever drag is live.
func (s *Session) MouseMove(x, y float64) {
	switch {
	case s.draggingCamera:
		s.Cam.Orbit(x-s.lastX, y-s.lastY)
		s.lastX, s.lastY = x, y
	case s.draggingObject && !s.arActive:
		obj := s.Scene.Get(s.selectedID)
		if obj == nil {
			return
		}
		wp := s.dropPoint(x, y)
		obj.Position.X = wp.X
		obj.Position.Z = wp.Z
	case s.rotatingObject && !s.arActive:
		obj := s.Scene.Get(s.selectedID)
		if obj == nil {
			return
		}
		obj.Rotation += (x - s.lastX) * 0.5
		s.lastX, s.lastY = x, y
	}
}

// Wheel zooms the camera, or scales the selection when shift is held.
// Scale changes are transient: they do not commit history.
func (s *Session) Wheel(dy float64, shift bool) {
	if shift && s.selectedID != 0 && !s.arActive {
		if obj := s.Scene.Get(s.selectedID); obj != nil {
			obj.Scale = scene.ClampScale(obj.Scale + dy*0.1)
		}
		return
	}
	s.Cam.Zoom(dy)
}

// DeleteSelected removes the selection and commits.
func (s *Session) DeleteSelected() {
	if s.selectedID == 0 {
		return
	}
	s.Scene.Remove(s.selectedID)
	s.selectedID = 0
	s.commit()
}

// RotateSelected turns the selection a step clockwise and commits.
func (s *Session) RotateSelected() {
	obj := s.Scene.Get(s.selectedID)
	if obj == nil {
		return
	}
	obj.Rotation += rotateStep
	s.commit()
}

// Undo steps the scene back one snapshot and drops the selection.
func (s *Session) Undo() {
	objs, ok := s.hist.Undo()
	if !ok {
		return
	}
	s.Scene.SetObjects(objs)
	s.selectedID = 0
}

// Redo steps the scene forward one snapshot and drops the selection.
func (s *Session) Redo() {
	objs, ok := s.hist.Redo()
	if !ok {
		return
	}
	s.Scene.SetObjects(objs)
	s.selectedID = 0
}

// ClearAll empties the room and commits.
func (s *Session) ClearAll() {
	s.Scene.Clear()
	s.selectedID = 0
	s.commit()
}

// PlaceRows fills the room with the standard desk and chair block as one
// undoable step. A room too small for a single pair is a no-op.
func (s *Session) PlaceRows() {
	n := preset.GenerateRows(s.Scene, preset.DefaultRowOptions())
	if n == 0 {
		return
	}
	s.commit()
	s.log.Logf("row fill placed %d desk/chair pairs", n)
}

// ToggleSnap flips grid snapping. View preferences never commit history.
func (s *Session) ToggleSnap() { s.snapToGrid = !s.snapToGrid }

// ToggleGrid flips grid line display.
func (s *Session) ToggleGrid() { s.showGrid = !s.showGrid }

// ToggleHelp flips the shortcut overlay.
func (s *Session) ToggleHelp() { s.showHelp = !s.showHelp }

// ToggleAR switches the AR view and starts or stops the capture feed.
func (s *Session) ToggleAR() {
	s.arActive = !s.arActive
	if s.arActive {
		s.ar.Start()
		s.log.Log("ar view on")
	} else {
		s.ar.Stop()
		s.log.Log("ar view off")
	}
}

// SaveLayout writes the current arrangement to the layouts directory.
func (s *Session) SaveLayout() {
	doc := layout.Snapshot(s.Cam, s.Scene, time.Now())
	path, err := layout.Save(s.prefs.LayoutsDir, doc)
	if err != nil {
		s.log.Logf("save layout: %v", err)
		return
	}
	s.log.Logf("layout saved to %s", path)
}

// LoadLayout restores the newest saved arrangement and commits it as a new
// history entry. A bad or missing document leaves the scene untouched.
func (s *Session) LoadLayout() {
	doc, path, err := layout.LoadLatest(s.prefs.LayoutsDir)
	if err != nil {
		s.log.Logf("load layout: %v", err)
		return
	}
	if err := layout.Apply(doc, s.Cam, s.Scene); err != nil {
		s.log.Logf("load layout: %v", err)
		return
	}
	s.selectedID = 0
	s.commit()
	s.log.Logf("layout loaded from %s", path)
}

// GenerateMarker writes the next fiducial sheet and advances the id only
// when the write succeeds.
func (s *Session) GenerateMarker() {
	if s.writeMarker == nil {
		return
	}
	if err := s.writeMarker(s.prefs.MarkersDir, s.nextMarkerID); err != nil {
		s.log.Logf("generate marker %d: %v", s.nextMarkerID, err)
		return
	}
	s.log.Logf("marker %d saved to %s", s.nextMarkerID, s.prefs.MarkersDir)
	s.nextMarkerID++
}

// Screenshot captures the window through the installed hook.
func (s *Session) Screenshot() {
	if s.screenshot == nil {
		return
	}
	if err := s.screenshot(); err != nil {
		s.log.Logf("screenshot: %v", err)
		return
	}
	s.log.Log("screenshot saved")
}

// ClickDoor opens the door when the pointer is over it.
func (s *Session) ClickDoor() {
	if (s.mode == ModeWelcome || s.mode == ModeOpening) && s.doorHover {
		s.mode = ModeOpening
	}
}

// AdvanceDoor eases the door open one frame and enters the editor once it
// has swung wide.
func (s *Session) AdvanceDoor() {
	if s.mode != ModeOpening {
		return
	}
	s.doorAngle += (100 - s.doorAngle) * 0.06
	if s.doorAngle > 95 {
		s.mode = ModeRunning
	}
}

// SetDoorHover records whether the pointer is over the welcome door. The
// draw pass computes this with the welcome camera.
func (s *Session) SetDoorHover(hover bool) { s.doorHover = hover }

// apply dispatches a released chrome button.
func (s *Session) apply(a ui.Action) {
	switch a {
	case ui.ActionChair:
		s.palette = scene.KindChair
	case ui.ActionDesk:
		s.palette = scene.KindDesk
	case ui.ActionTable:
		s.palette = scene.KindTable
	case ui.ActionPodium:
		s.palette = scene.KindPodium
	case ui.ActionCabinet:
		s.palette = scene.KindCabinet
	case ui.ActionRows:
		s.PlaceRows()
	case ui.ActionClear:
		s.ClearAll()
	case ui.ActionSave:
		s.SaveLayout()
	case ui.ActionScreenshot:
		s.Screenshot()
	case ui.ActionLoad:
		s.LoadLayout()
	case ui.ActionUndo:
		s.Undo()
	case ui.ActionRedo:
		s.Redo()
	case ui.ActionARView:
		s.ToggleAR()
	case ui.ActionGenMarker:
		s.GenerateMarker()
	case ui.ActionToggleGrid:
		s.ToggleGrid()
	case ui.ActionToggleSnap:
		s.ToggleSnap()
	case ui.ActionToggleHelp:
		s.ToggleHelp()
	}
}

// place drops a new object of the palette kind at the unprojected pointer
// position and commits.
func (s *Session) place(x, y float64) {
	wp := s.dropPoint(x, y)
	rot := s.cat.Get(s.palette).DefaultRotation
	s.Scene.Place(s.palette, wp, rot)
	s.commit()
}

// dropPoint unprojects the pointer to the floor, snapped and clamped.
func (s *Session) dropPoint(x, y float64) geom.Point3 {
	wp := s.Cam.Unproject(int(x), int(y), s.width, s.height, 0)
	if s.snapToGrid {
		wp = scene.Snap(wp)
	}
	return s.Scene.Clamp(wp)
}

func (s *Session) hit(x, y float64) (uint64, bool) {
	return render.HitTest(s.Scene.Objects, s.cat, s.Cam, s.width, s.height, x, y)
}

func (s *Session) commit() {
	s.hist.Commit(s.Scene.Objects)
}

// Mode returns the current application mode.
func (s *Session) Mode() Mode { return s.mode }

// DoorAngle returns the welcome door's swing in degrees.
func (s *Session) DoorAngle() float64 { return s.doorAngle }

// DoorHovering reports whether the pointer was over the door last frame.
func (s *Session) DoorHovering() bool { return s.doorHover }

// Palette returns the furniture kind the next placement uses.
func (s *Session) Palette() scene.Kind { return s.palette }

// Selected returns the selected object, or nil.
func (s *Session) Selected() *scene.Object {
	if s.selectedID == 0 {
		return nil
	}
	return s.Scene.Get(s.selectedID)
}

// SnapEnabled reports whether placements snap to the grid.
func (s *Session) SnapEnabled() bool { return s.snapToGrid }

// GridVisible reports whether grid lines draw.
func (s *Session) GridVisible() bool { return s.showGrid }

// HelpVisible reports whether the shortcut overlay draws.
func (s *Session) HelpVisible() bool { return s.showHelp }

// ARActive reports whether the AR view is up.
func (s *Session) ARActive() bool { return s.arActive }

// ActiveAction returns the chrome button currently held down.
func (s *Session) ActiveAction() ui.Action { return s.activeAction }

// Chrome returns the laid-out buttons for the current window size.
func (s *Session) Chrome() ui.Chrome { return s.chrome }

// SetupRects returns the setup form geometry for the current window size.
func (s *Session) SetupRects() ui.SetupRects { return s.setupRects }

// Size returns the window size the session was last told about.
func (s *Session) Size() (int, int) { return s.width, s.height }

// UIScale returns the chrome scale for the current window size.
func (s *Session) UIScale() float64 { return s.uiScale }

// Catalog returns the furniture definitions in use.
func (s *Session) Catalog() catalog.Catalog { return s.cat }

// HistoryLen returns the number of stored snapshots.
func (s *Session) HistoryLen() int { return s.hist.Len() }
