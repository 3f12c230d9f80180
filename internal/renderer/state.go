package renderer

import (
	"shader-background/internal/gpu"
)

// Surface is the drawable region the background fills.
type Surface interface {
	// Size reports the current drawable size in pixels.
	Size() (width, height int)
}

// Viewport mirrors the surface size as of the last resize.
type Viewport struct {
	Width, Height int
}

// Pointer is the normalized pointer position, origin at the bottom-left.
type Pointer struct {
	X, Y float32
}

// State is the mutable input shared by the event handlers and the render step.
// Each field has a single writer: Resize owns Viewport, PointerMove owns Pointer,
// and the render step owns Time. All access happens on the host's main thread.
type State struct {
	Viewport Viewport
	Pointer  Pointer
	Time     float32
}

// NewState returns a State with a zero viewport and the pointer at the center.
func NewState() State {
	return State{Pointer: Pointer{X: 0.5, Y: 0.5}}
}

// Resize copies the surface size into the viewport and points the context's drawable
// region at it. ctx may be nil when no context could be acquired.
func (s *State) Resize(ctx gpu.Context, surf Surface) {
	w, h := surf.Size()
	s.Viewport = Viewport{Width: max(w, 0), Height: max(h, 0)}
	if ctx != nil {
		ctx.Viewport(0, 0, int32(s.Viewport.Width), int32(s.Viewport.Height))
	}
}

// PointerMove normalizes surface coordinates (origin top-left) against the viewport
// and flips y. Until the viewport has a non-zero size the pointer stays where it is.
func (s *State) PointerMove(x, y float32) {
	if s.Viewport.Width == 0 || s.Viewport.Height == 0 {
		return
	}
	s.Pointer = Pointer{
		X: x / float32(s.Viewport.Width),
		Y: 1 - y/float32(s.Viewport.Height),
	}
}
