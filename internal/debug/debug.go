package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"

	"shader-background/internal/pattern"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh overlay text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug draws optional readouts in the top-right corner on top of the background.
// All overlays are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowUniforms bool

	// Uniforms, if set, reports the values the last frame pushed to the shader.
	Uniforms func() pattern.Uniforms

	frameCount uint32
	texts      []string
	memStats   runtime.MemStats
}

// New returns a Debug overlay with all readouts hidden.
func New() *Debug {
	return &Debug{}
}

// Enabled reports whether any readout is on.
func (d *Debug) Enabled() bool {
	return d.ShowFPS || d.ShowMemAlloc || (d.ShowUniforms && d.Uniforms != nil)
}

// Lines builds the readout text for fps frames per second.
func (d *Debug) Lines(fps int32) []string {
	var out []string
	if d.ShowFPS {
		out = append(out, fmt.Sprintf("FPS: %d", fps))
	}
	if d.ShowMemAlloc {
		runtime.ReadMemStats(&d.memStats)
		out = append(out, fmt.Sprintf("Mem: %.2f MiB", float64(d.memStats.Alloc)/(1024*1024)))
	}
	if d.ShowUniforms && d.Uniforms != nil {
		u := d.Uniforms()
		out = append(out,
			fmt.Sprintf("res: %.0fx%.0f", u.Width, u.Height),
			fmt.Sprintf("time: %.2fs", u.Time),
			fmt.Sprintf("mouse: %.3f, %.3f", u.MouseX, u.MouseY),
		)
	}
	return out
}

// Draw renders the enabled readouts, right-aligned. Call after the background frame.
// Text is only recomputed every updateInterval frames.
func (d *Debug) Draw() {
	if !d.Enabled() {
		return
	}
	if d.frameCount%updateInterval == 0 || d.texts == nil {
		d.texts = d.Lines(rl.GetFPS())
	}
	d.frameCount++

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	for _, text := range d.texts {
		w := rl.MeasureText(text, fontSize)
		rl.DrawText(text, screenW-w-padding, y, fontSize, rl.Green)
		y += lineHeight
	}
}
