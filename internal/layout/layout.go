// Package layout saves and restores classroom arrangements as timestamped
// JSON documents.
package layout

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"classroom-planner/internal/camera"
	"classroom-planner/internal/geom"
	"classroom-planner/internal/scene"
)

// Version is written into every saved document.
const Version = "2.1"

const (
	filePrefix = "classroom_layout_"
	fileSuffix = ".json"
)

// ErrNoLayouts is returned when the layouts directory holds no documents.
var ErrNoLayouts = errors.New("layout: no saved layouts found")

// Document is the on-disk form of a saved arrangement.
type Document struct {
	Version   string        `json:"version"`
	Timestamp string        `json:"timestamp"`
	Camera    CameraState   `json:"camera"`
	Grid      GridState     `json:"grid"`
	Objects   []ObjectState `json:"objects"`
}

// CameraState captures the orbit parameters worth restoring.
type CameraState struct {
	Distance float64 `json:"distance"`
	AngleH   float64 `json:"angle_h"`
	AngleV   float64 `json:"angle_v"`
}

// GridState captures the floor extents. Room height is not part of the
// document and survives a load unchanged.
type GridState struct {
	Width float64 `json:"width"`
	Depth float64 `json:"depth"`
}

// ObjectState is one placed furniture piece.
type ObjectState struct {
	ID       uint64   `json:"id"`
	Type     string   `json:"type"`
	Name     string   `json:"name"`
	Position Position `json:"position"`
	Rotation float64  `json:"rotation"`
	Scale    float64  `json:"scale"`
}

// Position mirrors a world-space point.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Stamp formats a time the way document filenames expect it.
func Stamp(at time.Time) string {
	return at.Format("20060102_150405")
}

// Snapshot captures the camera and scene into a document stamped at the
// given time.
func Snapshot(cam *camera.Camera, sc *scene.Scene, at time.Time) Document {
	doc := Document{
		Version:   Version,
		Timestamp: Stamp(at),
		Camera: CameraState{
			Distance: cam.Distance,
			AngleH:   cam.AngleH,
			AngleV:   cam.AngleV,
		},
		Grid: GridState{
			Width: sc.Bounds.Width,
			Depth: sc.Bounds.Depth,
		},
		Objects: make([]ObjectState, 0, sc.Len()),
	}
	for _, obj := range sc.Objects {
		doc.Objects = append(doc.Objects, ObjectState{
			ID:   obj.ID,
			Type: obj.Kind.String(),
			Name: obj.Name,
			Position: Position{
				X: obj.Position.X,
				Y: obj.Position.Y,
				Z: obj.Position.Z,
			},
			Rotation: obj.Rotation,
			Scale:    obj.Scale,
		})
	}
	return doc
}

// Save writes the document under dir, creating the directory as needed,
// and returns the path written.
func Save(dir string, doc Document) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("layout: create %s: %w", dir, err)
	}
	path := filepath.Join(dir, filePrefix+doc.Timestamp+fileSuffix)
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("layout: encode: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("layout: write %s: %w", path, err)
	}
	return path, nil
}

// LoadLatest reads the lexically newest document under dir. Camera and
// grid fields missing from the file fall back to the startup defaults, as
// does a zero object scale. A document without an objects list is
// rejected.
func LoadLatest(dir string) (Document, string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Document{}, "", ErrNoLayouts
	}
	latest := ""
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileSuffix) {
			continue
		}
		if name > latest {
			latest = name
		}
	}
	if latest == "" {
		return Document{}, "", ErrNoLayouts
	}
	path := filepath.Join(dir, latest)
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, "", fmt.Errorf("layout: read %s: %w", path, err)
	}
	doc := Document{
		Camera: CameraState{Distance: 700, AngleH: 45, AngleV: 35},
		Grid:   GridState{Width: 600, Depth: 600},
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, "", fmt.Errorf("layout: parse %s: %w", path, err)
	}
	if doc.Objects == nil {
		return Document{}, "", fmt.Errorf("layout: %s has no objects list", path)
	}
	for i := range doc.Objects {
		if doc.Objects[i].Scale == 0 {
			doc.Objects[i].Scale = 1.0
		}
	}
	return doc, path, nil
}

// Apply restores the document into the camera and scene. Unknown object
// types reject the whole document and leave both untouched. The restored
// scene carries no selection and the ID allocator moves past the highest
// loaded ID.
func Apply(doc Document, cam *camera.Camera, sc *scene.Scene) error {
	objs := make([]scene.Object, 0, len(doc.Objects))
	for _, st := range doc.Objects {
		kind, err := scene.ParseKind(st.Type)
		if err != nil {
			return fmt.Errorf("layout: object %d: %w", st.ID, err)
		}
		objs = append(objs, scene.Object{
			ID:       st.ID,
			Kind:     kind,
			Name:     st.Name,
			Position: geomPoint(st.Position),
			Rotation: st.Rotation,
			Scale:    st.Scale,
		})
	}
	cam.Distance = doc.Camera.Distance
	cam.AngleH = doc.Camera.AngleH
	cam.AngleV = doc.Camera.AngleV
	sc.Bounds.Width = doc.Grid.Width
	sc.Bounds.Depth = doc.Grid.Depth
	sc.SetObjects(objs)
	return nil
}

func geomPoint(p Position) geom.Point3 {
	return geom.Pt(p.X, p.Y, p.Z)
}
