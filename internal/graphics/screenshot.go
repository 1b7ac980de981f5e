package graphics

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/anthonynsimon/bild/imgio"
	rl "github.com/gen2brain/raylib-go/raylib"

	"classroom-planner/internal/layout"
)

const screenshotQuality = 90

// SaveScreenshot grabs the frame currently on screen and writes it under
// dir as a timestamped JPEG. Must run on the main loop thread.
func SaveScreenshot(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("screenshot dir: %w", err)
	}
	img := rl.LoadImageFromScreen()
	defer rl.UnloadImage(img)
	name := "screenshot_" + layout.Stamp(time.Now()) + ".jpg"
	path := filepath.Join(dir, name)
	if err := imgio.Save(path, img.ToImage(), imgio.JPEGEncoder(screenshotQuality)); err != nil {
		return fmt.Errorf("save screenshot %s: %w", path, err)
	}
	return nil
}
