package ar

import (
	"fmt"
	"os"
	"path/filepath"

	"gocv.io/x/gocv"
)

const markerSize = 400

// WriteMarker renders the fiducial with the given id to
// <dir>/marker_<id>.png for printing.
func WriteMarker(dir string, id int) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("marker dir: %w", err)
	}
	img := gocv.NewMatWithSize(markerSize, markerSize, gocv.MatTypeCV8UC1)
	defer img.Close()
	gocv.ArucoGenerateImageMarker(gocv.ArucoDict6x6_250, id, markerSize, img, 1)

	path := filepath.Join(dir, fmt.Sprintf("marker_%d.png", id))
	if !gocv.IMWrite(path, img) {
		return fmt.Errorf("write %s: encode failed", path)
	}
	return nil
}
