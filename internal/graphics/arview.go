package graphics

import (
	"image"

	rl "github.com/gen2brain/raylib-go/raylib"

	"classroom-planner/internal/ui"
)

// drawARView stretches the latest annotated camera frame over the window
// and keeps the chrome on top so the bar stays usable. Until the capture
// goroutine delivers a frame, a waiting note is shown instead.
func (a *App) drawARView() {
	rl.ClearBackground(rl.NewColor(10, 10, 10, 255))
	w, h := a.S.Size()
	sc := a.S.UIScale()

	frame, ok := a.Cap.Frame()
	if !ok {
		drawCentered("Starting Camera...", int32(w/2), int32(h/2), fontPx(sc), ui.White)
		a.drawChrome()
		return
	}
	composed := a.Det.Compose(frame)
	img, err := composed.ToImage()
	composed.Close()
	if err == nil {
		a.drawFrame(img, w, h)
	}
	a.drawChrome()
	drawCenteredShadow("AR View Active (Using Marker ID 23-25)", int32(w/2), int32(h-30), fontPx(sc), 2, ui.White)
}

// drawFrame uploads the frame into the cached texture, recreating it when
// the capture size changes, and draws it scaled to the window.
func (a *App) drawFrame(img image.Image, w, h int) {
	rgba, ok := img.(*image.RGBA)
	if !ok {
		return
	}
	fw := rgba.Bounds().Dx()
	fh := rgba.Bounds().Dy()
	if fw == 0 || fh == 0 {
		return
	}
	if a.arTexture.ID == 0 || fw != a.arW || fh != a.arH {
		rimg := rl.NewImageFromImage(rgba)
		tex := rl.LoadTextureFromImage(rimg)
		if a.arTexture.ID != 0 {
			rl.UnloadTexture(a.arTexture)
		}
		a.arTexture = tex
		a.arW, a.arH = fw, fh
	} else {
		rl.UpdateTexture(a.arTexture, a.pixels(rgba))
	}
	src := rl.NewRectangle(0, 0, float32(fw), float32(fh))
	dst := rl.NewRectangle(0, 0, float32(w), float32(h))
	rl.DrawTexturePro(a.arTexture, src, dst, rl.NewVector2(0, 0), 0, rl.White)
}

// pixels flattens the image rows into the contiguous slice UpdateTexture
// wants, reusing the app buffer. The image stride can be wider than the row.
func (a *App) pixels(img *image.RGBA) []rl.Color {
	b := img.Bounds()
	a.pixBuf = a.pixBuf[:0]
	for y := b.Min.Y; y < b.Max.Y; y++ {
		off := img.PixOffset(b.Min.X, y)
		row := img.Pix[off : off+b.Dx()*4]
		for i := 0; i < len(row); i += 4 {
			a.pixBuf = append(a.pixBuf, rl.Color{R: row[i], G: row[i+1], B: row[i+2], A: row[i+3]})
		}
	}
	return a.pixBuf
}
