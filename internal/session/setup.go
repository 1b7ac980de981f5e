package session

import (
	"math"
	"strconv"

	"classroom-planner/internal/scene"
)

// Field identifies a setup form input.
type Field int

const (
	FieldNone Field = iota
	FieldWidth
	FieldDepth
	FieldHeight
)

const maxFieldLen = 10

// Setup is the room dimension form shown before the editor opens.
type Setup struct {
	Width  string
	Depth  string
	Height string
	Active Field
	Error  string

	startPressed bool
}

// Setup returns the form state for drawing.
func (s *Session) Setup() Setup { return s.setup }

// SetupMouseDown focuses the input under the pointer or arms the start
// button. Any press clears the error line.
func (s *Session) SetupMouseDown(x, y float64) {
	r := s.setupRects
	switch {
	case r.Width.Contains(x, y):
		s.setup.Active = FieldWidth
	case r.Depth.Contains(x, y):
		s.setup.Active = FieldDepth
	case r.Height.Contains(x, y):
		s.setup.Active = FieldHeight
	case r.Start.Contains(x, y):
		s.setup.startPressed = true
	default:
		s.setup.Active = FieldNone
	}
	s.setup.Error = ""
}

// SetupMouseUp fires the start button when the release lands on it.
func (s *Session) SetupMouseUp(x, y float64) {
	if s.setup.startPressed && s.setupRects.Start.Contains(x, y) {
		s.validateAndStart()
	}
	s.setup.startPressed = false
}

// StartPressed reports whether the start button is held, for the pressed
// shade.
func (s *Session) StartPressed() bool { return s.setup.startPressed }

// SetupChar appends a typed character to the focused field. Only digits
// and the decimal point are accepted, up to the field length cap.
func (s *Session) SetupChar(r rune) {
	if (r < '0' || r > '9') && r != '.' {
		return
	}
	f := s.activeField()
	if f == nil || len(*f) >= maxFieldLen {
		return
	}
	*f += string(r)
}

// SetupBackspace trims the focused field.
func (s *Session) SetupBackspace() {
	f := s.activeField()
	if f == nil || len(*f) == 0 {
		return
	}
	*f = (*f)[:len(*f)-1]
}

// SetupTab cycles focus width, depth, height, and back around.
func (s *Session) SetupTab() {
	switch s.setup.Active {
	case FieldWidth:
		s.setup.Active = FieldDepth
	case FieldDepth:
		s.setup.Active = FieldHeight
	default:
		s.setup.Active = FieldWidth
	}
}

// SetupEnter submits the form.
func (s *Session) SetupEnter() {
	s.validateAndStart()
}

func (s *Session) activeField() *string {
	switch s.setup.Active {
	case FieldWidth:
		return &s.setup.Width
	case FieldDepth:
		return &s.setup.Depth
	case FieldHeight:
		return &s.setup.Height
	}
	return nil
}

// validateAndStart parses the three dimensions, builds the room, frames
// the camera to fit it, and moves to the welcome screen. Bad input sets
// the error line and stays in setup.
func (s *Session) validateAndStart() {
	w, errW := strconv.ParseFloat(s.setup.Width, 64)
	d, errD := strconv.ParseFloat(s.setup.Depth, 64)
	h, errH := strconv.ParseFloat(s.setup.Height, 64)
	if errW != nil || errD != nil || errH != nil {
		s.setup.Error = "Please enter valid numbers."
		return
	}
	if w < scene.MinRoomFeet || d < scene.MinRoomFeet || h < scene.MinRoomFeet {
		s.setup.Error = "Dimensions must be at least 8 feet"
		return
	}
	s.Scene.Bounds = scene.BoundsFromFeet(w, d, h)
	s.Cam.Distance = math.Max(1100, s.Scene.Bounds.MaxDim()*2.0)
	s.mode = ModeWelcome
	s.log.Logf("room created %gx%gx%g ft", w, d, h)
}
