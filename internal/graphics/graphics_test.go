package graphics

import (
	"image"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classroom-planner/internal/scene"
	"classroom-planner/internal/ui"
)

func TestSignedAreaWinding(t *testing.T) {
	fanReady := []rl.Vector2{{X: 600, Y: 80}, {X: 540, Y: 150}, {X: 660, Y: 150}}
	assert.Negative(t, signedArea(fanReady))

	flipped := []rl.Vector2{{X: 600, Y: 80}, {X: 660, Y: 150}, {X: 540, Y: 150}}
	assert.Positive(t, signedArea(flipped))
}

func TestScaledFontFloors(t *testing.T) {
	assert.Equal(t, int32(28), fontPx(1.0))
	assert.Equal(t, int32(18), fontPx(0.3))
	assert.Equal(t, int32(14), smallPx(0.1))
	assert.Equal(t, int32(12), tinyPx(0.1))
	assert.Equal(t, int32(33), largePx(0.8))
	assert.Equal(t, int32(24), largePx(0.5))
}

func TestButtonColorStates(t *testing.T) {
	assert.Equal(t, ui.ButtonActive, buttonColor(ui.ActionChair, false, false, ui.ActionChair, false))
	assert.Equal(t, ui.ButtonHover, buttonColor(ui.ActionChair, false, true, ui.ActionDesk, false))
	assert.Equal(t, ui.ButtonPressed, buttonColor(ui.ActionChair, true, true, ui.ActionChair, false))
	assert.Equal(t, ui.ButtonInactive, buttonColor(ui.ActionChair, false, false, ui.ActionDesk, false))

	base, hover, pressed := ui.Styles(ui.ActionSave)
	assert.Equal(t, base, buttonColor(ui.ActionSave, false, false, ui.ActionNone, false))
	assert.Equal(t, hover, buttonColor(ui.ActionSave, false, true, ui.ActionNone, false))
	assert.Equal(t, pressed, buttonColor(ui.ActionSave, true, true, ui.ActionNone, false))

	assert.Equal(t, ui.ButtonActive, buttonColor(ui.ActionARView, false, false, ui.ActionNone, true),
		"AR button advertises the live feed")
	assert.Equal(t, ui.PurplePressed, buttonColor(ui.ActionARView, true, false, ui.ActionNone, true))
}

func TestKindActionCoversPalette(t *testing.T) {
	kinds := []scene.Kind{
		scene.KindChair, scene.KindDesk, scene.KindTable, scene.KindPodium, scene.KindCabinet,
	}
	for _, k := range kinds {
		assert.True(t, isKindAction(kindAction(k)), k.String())
	}
	assert.False(t, isKindAction(ui.ActionRows))
	assert.False(t, isKindAction(ui.ActionSave))
}

func TestInflateGrowsAroundCenter(t *testing.T) {
	r := inflate(ui.Rect{X: 10, Y: 20, W: 80, H: 40}, 4)
	assert.Equal(t, ui.Rect{X: 8, Y: 18, W: 84, H: 44}, r)
}

func TestPixelsHonorsStride(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := range img.Pix {
		img.Pix[i] = uint8(i)
	}
	sub := img.SubImage(image.Rect(1, 1, 3, 3)).(*image.RGBA)

	var a App
	px := a.pixels(sub)
	require.Len(t, px, 4)

	off := img.PixOffset(1, 1)
	assert.Equal(t, rl.Color{R: img.Pix[off], G: img.Pix[off+1], B: img.Pix[off+2], A: img.Pix[off+3]}, px[0])
	off = img.PixOffset(2, 2)
	assert.Equal(t, rl.Color{R: img.Pix[off], G: img.Pix[off+1], B: img.Pix[off+2], A: img.Pix[off+3]}, px[3])
}
