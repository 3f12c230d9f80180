package pattern

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reference64 walks the documented algorithm in float64 with no shared helpers.
func reference64(w, h, time, mouseX, mouseY, uvx, uvy float64) [3]float64 {
	aspect := w / h
	t := time * 0.2
	mx, my := (mouseX*2-1)*aspect, mouseY*2-1
	dist := math.Hypot(uvx-mx, uvy-my)
	px, py := uvx, uvy
	a, f := 0.5, 1.0
	for i := 0; i < 3; i++ {
		px += math.Sin(py*f+t) * a
		py += math.Cos(px*f+t) * a
		a *= 0.5
		f *= 2
	}
	px += 0.1 / (dist + 0.2) * math.Sin(t)
	py += 0.1 / (dist + 0.2) * math.Sin(t)
	ss := func(e0, e1, x float64) float64 {
		k := math.Max(0, math.Min(1, (x-e0)/(e1-e0)))
		return k * k * (3 - 2*k)
	}
	val := math.Sin(px*3 + t)
	v := ss(0, 1, val*0.5+0.5)
	base := [3]float64{0.05, 0.05, 0.07}
	bl := [3]float64{0.2, 0.3, 0.5}
	pu := [3]float64{0.3, 0.2, 0.4}
	gr := [3]float64{0.4, 0.45, 0.5}
	vign := ss(0, 1.2, 1-math.Hypot(uvx*0.6, uvy*0.6))
	var out [3]float64
	for i := range out {
		m1 := bl[i]*(1-(py+0.5)) + pu[i]*(py+0.5)
		c := base[i]*(1-v*0.6) + m1*v*0.6
		c += gr[i] * 0.1 * math.Sin(py*10+t)
		out[i] = c * vign
	}
	return out
}

func assertClose(t *testing.T, want [3]float64, got RGB, tol float64) {
	t.Helper()
	assert.InDelta(t, want[0], float64(got.R), tol, "R")
	assert.InDelta(t, want[1], float64(got.G), tol, "G")
	assert.InDelta(t, want[2], float64(got.B), tol, "B")
}

func TestCenterPixelFixture(t *testing.T) {
	u := Uniforms{Width: 200, Height: 100, Time: 0, MouseX: 0.5, MouseY: 0.5}

	got := Shade(u, 100, 50)

	// Hand-evaluated: p ends near (0.2387, 0.8004), v ~ 0.9216, vignette ~ 0.9259.
	assertClose(t, [3]float64{0.2263, 0.1489, 0.2642}, got, 5e-3)
	assertClose(t, reference64(200, 100, 0, 0.5, 0.5, 0, 0), got, 1e-5)
	assert.Equal(t, got, ShadeUV(u, 0, 0))
}

func TestShadeMatchesReference(t *testing.T) {
	cases := []struct {
		name string
		u    Uniforms
		fx   float32
		fy   float32
	}{
		{"corner", Uniforms{Width: 640, Height: 480, Time: 3.5, MouseX: 0.1, MouseY: 0.9}, 0.5, 0.5},
		{"pointer under pixel", Uniforms{Width: 800, Height: 600, Time: 12, MouseX: 0.25, MouseY: 0.75}, 200, 450},
		{"portrait", Uniforms{Width: 300, Height: 900, Time: 100, MouseX: 1, MouseY: 0}, 150, 10},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, h := float64(c.u.Width), float64(c.u.Height)
			uvx := (float64(c.fx)/w*2 - 1) * w / h
			uvy := float64(c.fy)/h*2 - 1
			want := reference64(w, h, float64(c.u.Time), float64(c.u.MouseX), float64(c.u.MouseY), uvx, uvy)
			assertClose(t, want, Shade(c.u, c.fx, c.fy), 1e-3)
		})
	}
}

func TestShadeIsPure(t *testing.T) {
	u := Uniforms{Width: 1920, Height: 1080, Time: 42.25, MouseX: 0.3, MouseY: 0.6}
	first := Shade(u, 321, 123)
	for i := 0; i < 100; i++ {
		require.Equal(t, first, Shade(u, 321, 123))
	}
}

func TestVignetteBlacksOutCorners(t *testing.T) {
	// length(uv*0.6) >= 1 past |uv| = 1.67, so the far corners of a wide viewport are black.
	u := Uniforms{Width: 1600, Height: 400, Time: 7, MouseX: 0.5, MouseY: 0.5}
	assert.Equal(t, RGB{}, Shade(u, 0, 0))
	assert.Equal(t, RGB{}, Shade(u, 1600, 400))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, RGB{0, 0.5, 1}, RGB{-0.2, 0.5, 3}.Clamp())
	c := RGB{-1, 0.5, 2}.RGBA()
	assert.Equal(t, uint8(0), c.R)
	assert.Equal(t, uint8(128), c.G)
	assert.Equal(t, uint8(255), c.B)
	assert.Equal(t, uint8(255), c.A)
}

func TestRenderFlipsRows(t *testing.T) {
	u := Uniforms{Width: 8, Height: 4, Time: 1, MouseX: 0.2, MouseY: 0.8}
	img := Render(u)
	require.Equal(t, 8, img.Bounds().Dx())
	require.Equal(t, 4, img.Bounds().Dy())

	// Top row of the image is the highest fragment row.
	assert.Equal(t, Shade(u, 2.5, 3.5).RGBA(), img.RGBAAt(2, 0))
	assert.Equal(t, Shade(u, 2.5, 0.5).RGBA(), img.RGBAAt(2, 3))
}
