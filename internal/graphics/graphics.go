package graphics

import (
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrNoWindow is returned by Run when raylib could not open a window with a GL context.
var ErrNoWindow = errors.New("graphics: window could not be created")

// Options configures the window.
type Options struct {
	Title      string
	Fullscreen bool
	Width      int // used when not fullscreen
	Height     int
	VSync      bool
}

// Scene receives the host's notifications. All calls happen on the main thread.
type Scene interface {
	Resize()
	PointerMove(x, y float32)
	Frame(timestampMillis float64)
	Close()
}

// Window is the raylib window the scene draws into.
type Window struct{}

// Size returns the window's drawable size in screen pixels.
func (Window) Size() (int, int) {
	return rl.GetScreenWidth(), rl.GetScreenHeight()
}

// Run opens the window and calls open once its GL context is current. Each display
// refresh it delivers a resize (if the window changed size), a pointer move (if the
// mouse moved), then one Frame between BeginDrawing and EndDrawing, followed by overlay.
// The loop has no frame cap of its own; with VSync it runs at the display's rate.
// The scene is closed before the window, so its GL objects are deleted on a live context.
func Run(opts Options, open func(Window) Scene, overlay func()) error {
	flags := uint32(rl.FlagWindowResizable)
	if opts.VSync {
		flags |= rl.FlagVsyncHint
	}
	if opts.Fullscreen {
		flags |= rl.FlagFullscreenMode
	}
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.SetConfigFlags(flags)

	w, h := int32(opts.Width), int32(opts.Height)
	if opts.Fullscreen {
		w, h = 0, 0 // raylib sizes the window to the monitor
	}
	rl.InitWindow(w, h, opts.Title)
	if !rl.IsWindowReady() {
		return ErrNoWindow
	}
	defer rl.CloseWindow()

	scene := open(Window{})
	defer scene.Close()

	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			scene.Resize()
		}
		if d := rl.GetMouseDelta(); d.X != 0 || d.Y != 0 {
			pos := rl.GetMousePosition()
			scene.PointerMove(pos.X, pos.Y)
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		scene.Frame(rl.GetTime() * 1000)
		if overlay != nil {
			overlay()
		}
		rl.EndDrawing()
	}
	return nil
}
