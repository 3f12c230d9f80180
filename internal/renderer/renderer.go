// Package renderer draws the animated full-viewport background: it builds the shader
// program and quad once, tracks viewport and pointer input, and pushes per-frame
// uniforms before a single triangle-strip draw.
//
// A Renderer that could not acquire a context, compile, or link reports the failure
// once through the logger and then stays inert: Frame never issues a draw.
package renderer

import (
	"errors"

	"shader-background/internal/gpu"
	"shader-background/internal/logger"
	"shader-background/internal/pattern"
)

// Renderer owns the program and quad buffer it creates on ctx.
type Renderer struct {
	ctx     gpu.Context
	surface Surface
	log     *logger.Logger

	prog  programInfo
	quad  gpu.Buffer
	state State

	uniforms pattern.Uniforms
	frames   uint64
	err      error
	closed   bool
}

type options struct {
	sources Sources
}

// Option configures New.
type Option func(*options)

// WithSources replaces the built-in shader pair.
func WithSources(src Sources) Option {
	return func(o *options) { o.sources = src }
}

// New builds the program and quad on ctx, then sizes the viewport from surface so the
// first frame already has the right dimensions. A nil ctx or surface means no
// rendering surface was available. Check Err to see whether the renderer is live.
func New(ctx gpu.Context, surface Surface, log *logger.Logger, opts ...Option) *Renderer {
	o := options{sources: DefaultSources()}
	for _, opt := range opts {
		opt(&o)
	}
	r := &Renderer{ctx: ctx, surface: surface, log: log, state: NewState()}

	if ctx == nil || surface == nil {
		r.fail(ErrContextUnavailable)
		return r
	}

	prog, err := buildProgram(ctx, o.sources)
	if err != nil {
		r.fail(err)
	} else {
		r.prog = prog
		r.quad = uploadQuad(ctx)
	}
	r.Resize()
	return r
}

func (r *Renderer) fail(err error) {
	r.err = err
	var ce *CompileError
	switch {
	case errors.As(err, &ce):
		r.log.Errorf("an error occurred compiling the %s shader: %s", ce.Stage, ce.Log)
	case errors.Is(err, ErrLink):
		r.log.Errorf("unable to initialize the shader program: %v", err)
	default:
		r.log.Errorf("background disabled: %v", err)
	}
}

// Err returns the terminal setup error, or nil when the renderer is live.
func (r *Renderer) Err() error {
	return r.err
}

// Resize re-reads the surface size and reconfigures the drawable region. It runs
// synchronously on every notification.
func (r *Renderer) Resize() {
	if r.surface == nil {
		return
	}
	r.state.Resize(r.ctx, r.surface)
}

// PointerMove records a pointer position in surface coordinates, origin top-left.
func (r *Renderer) PointerMove(x, y float32) {
	r.state.PointerMove(x, y)
}

// Frame renders one frame for a refresh tick. timestampMillis is the host's
// monotonically increasing clock in milliseconds. The host schedules the next call.
func (r *Renderer) Frame(timestampMillis float64) {
	if r.err != nil || r.closed {
		return
	}
	r.state.Time = float32(timestampMillis / 1000)

	ctx, p := r.ctx, r.prog
	ctx.UseProgram(p.program)
	ctx.BindBuffer(r.quad)
	ctx.VertexAttribPointer(p.positionLoc, quadComponents, false, 0, 0)
	ctx.EnableVertexAttribArray(p.positionLoc)

	u := pattern.Uniforms{
		Width:  float32(r.state.Viewport.Width),
		Height: float32(r.state.Viewport.Height),
		Time:   r.state.Time,
		MouseX: r.state.Pointer.X,
		MouseY: r.state.Pointer.Y,
	}
	ctx.Uniform2f(p.resolutionLoc, u.Width, u.Height)
	ctx.Uniform1f(p.timeLoc, u.Time)
	ctx.Uniform2f(p.mouseLoc, u.MouseX, u.MouseY)
	r.uniforms = u

	ctx.DrawArrays(gpu.TriangleStrip, 0, quadVertexCount)
	r.frames++
}

// State returns a copy of the current input state.
func (r *Renderer) State() State {
	return r.state
}

// Uniforms returns the values pushed by the most recent frame.
func (r *Renderer) Uniforms() pattern.Uniforms {
	return r.uniforms
}

// Frames returns how many frames have been drawn.
func (r *Renderer) Frames() uint64 {
	return r.frames
}

// Close deletes the program and quad buffer. Frame is a no-op afterwards.
func (r *Renderer) Close() {
	if r.closed {
		return
	}
	r.closed = true
	if r.ctx == nil {
		return
	}
	if r.prog.program != 0 {
		r.ctx.DeleteProgram(r.prog.program)
	}
	if r.quad != 0 {
		r.ctx.DeleteBuffer(r.quad)
	}
}
