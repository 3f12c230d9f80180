// Package pattern evaluates the background's fragment-stage color on the CPU.
//
// The arithmetic mirrors the GLSL in internal/renderer step for step, in float32,
// so reference renders and tests agree with the GPU output up to driver precision.
package pattern

import (
	"image"
	"image/color"

	"github.com/chewxy/math32"
)

// Uniforms are the per-frame inputs shared by every pixel.
type Uniforms struct {
	Width, Height float32 // resolution in pixels
	Time          float32 // seconds since the loop started
	MouseX        float32 // normalized pointer, 0 at the left edge
	MouseY        float32 // normalized pointer, 0 at the bottom edge
}

// RGB is a linear color. Components may leave [0,1] before Clamp.
type RGB struct {
	R, G, B float32
}

var (
	baseColor = RGB{0.05, 0.05, 0.07}
	blue      = RGB{0.2, 0.3, 0.5}
	purple    = RGB{0.3, 0.2, 0.4}
	grey      = RGB{0.4, 0.45, 0.5}
)

const (
	timeScale  = 0.2
	warpLayers = 3
)

// Shade returns the color of the pixel whose center lies at fragment coordinate
// (fx, fy), with the origin at the bottom-left of the viewport.
func Shade(u Uniforms, fx, fy float32) RGB {
	aspect := u.Width / u.Height
	uvx := fx/u.Width*2 - 1
	uvy := fy/u.Height*2 - 1
	uvx *= aspect
	return ShadeUV(u, uvx, uvy)
}

// ShadeUV evaluates the pattern at an aspect-corrected, centered coordinate.
func ShadeUV(u Uniforms, uvx, uvy float32) RGB {
	aspect := u.Width / u.Height
	t := u.Time * timeScale

	mx := (u.MouseX*2 - 1) * aspect
	my := u.MouseY*2 - 1
	dist := length(uvx-mx, uvy-my)

	px, py := uvx, uvy
	a, f := float32(0.5), float32(1.0)
	for i := 0; i < warpLayers; i++ {
		px += math32.Sin(py*f+t) * a
		py += math32.Cos(px*f+t) * a
		a *= 0.5
		f *= 2.0
	}

	// Same offset on both axes.
	w := 0.1 / (dist + 0.2) * math32.Sin(t)
	px += w
	py += w

	val := math32.Sin(px*3 + t)
	grad := mix(blue, purple, py+0.5)
	v := smoothstep(0, 1, val*0.5+0.5)

	col := mix(baseColor, grad, v*0.6)
	g := 0.1 * math32.Sin(py*10+t)
	col = RGB{col.R + grey.R*g, col.G + grey.G*g, col.B + grey.B*g}

	vign := smoothstep(0, 1.2, 1-length(uvx*0.6, uvy*0.6))
	return RGB{col.R * vign, col.G * vign, col.B * vign}
}

// Clamp limits every component to [0,1], as a write to an 8-bit framebuffer does.
func (c RGB) Clamp() RGB {
	return RGB{clamp01(c.R), clamp01(c.G), clamp01(c.B)}
}

// RGBA converts to an opaque 8-bit color.
func (c RGB) RGBA() color.RGBA {
	c = c.Clamp()
	return color.RGBA{
		R: uint8(c.R*255 + 0.5),
		G: uint8(c.G*255 + 0.5),
		B: uint8(c.B*255 + 0.5),
		A: 255,
	}
}

// Render shades every pixel of a Width x Height image. Row 0 of the image is the top
// of the viewport, so fragment y is flipped.
func Render(u Uniforms) *image.RGBA {
	w, h := int(u.Width), int(u.Height)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		fy := float32(h-1-y) + 0.5
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, Shade(u, float32(x)+0.5, fy).RGBA())
		}
	}
	return img
}

func length(x, y float32) float32 {
	return math32.Sqrt(x*x + y*y)
}

// mix is GLSL mix: t is not clamped.
func mix(a, b RGB, t float32) RGB {
	return RGB{
		a.R*(1-t) + b.R*t,
		a.G*(1-t) + b.G*t,
		a.B*(1-t) + b.B*t,
	}
}

func smoothstep(e0, e1, x float32) float32 {
	t := clamp01((x - e0) / (e1 - e0))
	return t * t * (3 - 2*t)
}

func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
