package layout

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classroom-planner/internal/camera"
	"classroom-planner/internal/geom"
	"classroom-planner/internal/scene"
)

func testScene(t *testing.T) *scene.Scene {
	t.Helper()
	sc := scene.New()
	sc.Bounds = scene.BoundsFromFeet(24, 32, 10)
	sc.Place(scene.KindDesk, geom.Pt(100, 0, -50), 0)
	sc.Place(scene.KindChair, geom.Pt(100, 0, 25), 180)
	return sc
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cam := camera.New()
	cam.Distance = 900
	cam.AngleH = 120
	sc := testScene(t)
	at := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

	doc := Snapshot(cam, sc, at)
	path, err := Save(dir, doc)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "classroom_layout_20260314_150926.json"), path)

	loaded, loadedPath, err := LoadLatest(dir)
	require.NoError(t, err)
	assert.Equal(t, path, loadedPath)
	assert.Empty(t, cmp.Diff(doc, loaded))
}

func TestApplyRestoresSceneAndCamera(t *testing.T) {
	t.Parallel()

	srcCam := camera.New()
	srcCam.Distance = 1100
	srcCam.AngleH = 200
	srcCam.AngleV = -10
	src := testScene(t)
	doc := Snapshot(srcCam, src, time.Now())

	cam := camera.New()
	sc := scene.New()
	sc.Bounds = scene.BoundsFromFeet(8, 8, 12)
	require.NoError(t, Apply(doc, cam, sc))

	assert.InDelta(t, 1100.0, cam.Distance, 1e-9)
	assert.InDelta(t, 200.0, cam.AngleH, 1e-9)
	assert.InDelta(t, -10.0, cam.AngleV, 1e-9)
	assert.InDelta(t, 600.0, sc.Bounds.Width, 1e-9)
	assert.InDelta(t, 800.0, sc.Bounds.Depth, 1e-9)
	assert.InDelta(t, 300.0, sc.Bounds.Height, 1e-9, "room height is not stored and must survive")

	require.Equal(t, src.Len(), sc.Len())
	assert.Equal(t, scene.KindDesk, sc.Objects[0].Kind)
	assert.Equal(t, 180.0, sc.Objects[1].Rotation)

	// The allocator moves past loaded IDs so new pieces never collide.
	id := sc.Place(scene.KindTable, geom.Pt(0, 0, 0), 0)
	assert.Greater(t, id, sc.Objects[1].ID)
}

func TestLoadLatestPicksNewestFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cam := camera.New()
	sc := testScene(t)

	older := Snapshot(cam, sc, time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC))
	_, err := Save(dir, older)
	require.NoError(t, err)

	cam.Distance = 1400
	newer := Snapshot(cam, sc, time.Date(2026, 1, 2, 11, 0, 0, 0, time.UTC))
	_, err = Save(dir, newer)
	require.NoError(t, err)

	loaded, _, err := LoadLatest(dir)
	require.NoError(t, err)
	assert.InDelta(t, 1400.0, loaded.Camera.Distance, 1e-9)
}

func TestLoadLatestDefaultsMissingSections(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	raw := `{"objects": [{"id": 3, "type": "chair", "name": "Chair", "position": {"x": 25, "y": 0, "z": -25}, "rotation": 180}]}`
	writeRaw(t, dir, "classroom_layout_20260101_000000.json", raw)

	doc, _, err := LoadLatest(dir)
	require.NoError(t, err)

	assert.InDelta(t, 700.0, doc.Camera.Distance, 1e-9)
	assert.InDelta(t, 45.0, doc.Camera.AngleH, 1e-9)
	assert.InDelta(t, 35.0, doc.Camera.AngleV, 1e-9)
	assert.InDelta(t, 600.0, doc.Grid.Width, 1e-9)
	assert.InDelta(t, 600.0, doc.Grid.Depth, 1e-9)
	require.Len(t, doc.Objects, 1)
	assert.InDelta(t, 1.0, doc.Objects[0].Scale, 1e-9, "omitted scale falls back to natural size")
}

func TestLoadLatestRejectsMissingObjects(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeRaw(t, dir, "classroom_layout_20260101_000000.json", `{"version": "2.1"}`)

	_, _, err := LoadLatest(dir)
	assert.Error(t, err)
}

func TestLoadLatestEmptyDir(t *testing.T) {
	t.Parallel()

	_, _, err := LoadLatest(t.TempDir())
	assert.ErrorIs(t, err, ErrNoLayouts)

	_, _, err = LoadLatest(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, ErrNoLayouts)
}

func TestLoadLatestIgnoresForeignFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeRaw(t, dir, "screenshot_20991231_235959.jpg", "not json")
	writeRaw(t, dir, "classroom_layout_20260101_000000.json", `{"objects": []}`)

	doc, _, err := LoadLatest(dir)
	require.NoError(t, err)
	assert.Empty(t, doc.Objects)
}

func TestApplyRejectsUnknownType(t *testing.T) {
	t.Parallel()

	doc := Document{
		Camera:  CameraState{Distance: 800, AngleH: 90, AngleV: 20},
		Grid:    GridState{Width: 600, Depth: 600},
		Objects: []ObjectState{{ID: 1, Type: "sofa", Scale: 1}},
	}
	cam := camera.New()
	sc := scene.New()
	sc.Place(scene.KindChair, geom.Pt(0, 0, 0), 0)

	err := Apply(doc, cam, sc)
	require.Error(t, err)
	assert.InDelta(t, 700.0, cam.Distance, 1e-9, "a rejected document changes nothing")
	assert.Equal(t, 1, sc.Len())
}

func writeRaw(t *testing.T, dir, name, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(contents), 0644))
}
