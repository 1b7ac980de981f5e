// Package graphics owns the window, the frame loop, and every raylib call.
// It polls input into the session each frame and paints whichever screen the
// session reports. Scene math lives in render; this layer only projects and
// rasterizes.
package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Window floor. Below this the top bar buttons start to overlap.
const (
	minWidth  = 1024
	minHeight = 640
)

// Run starts the window and main loop. Each frame it calls update (input),
// then clears the screen and calls draw. The window is resizable; close via
// the window button.
func Run(width, height, fps int, title string, update, draw func()) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagVsyncHint)
	rl.InitWindow(int32(width), int32(height), title)
	defer rl.CloseWindow()

	rl.SetWindowMinSize(minWidth, minHeight)
	rl.SetExitKey(rl.KeyNull) // ESC does nothing; close via window button
	rl.SetTargetFPS(int32(fps))

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
}
