// Package glctx implements gpu.Context on top of the OpenGL 3.3 core context that is
// current on the calling thread (the raylib window's context in cmd/background).
package glctx

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"

	"shader-background/internal/gpu"
)

// Context issues GL calls through go-gl. It owns one vertex array object, because the
// core profile refuses attribute setup while VAO 0 is bound.
type Context struct {
	vao uint32
}

var _ gpu.Context = (*Context)(nil)

// New loads GL function pointers for the current context. Call after the window exists.
func New() (*Context, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("glctx: init: %w", err)
	}
	c := &Context{}
	gl.GenVertexArrays(1, &c.vao)
	return c, nil
}

// Version returns the driver's GL_VERSION string.
func (c *Context) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

// Close deletes the vertex array object owned by c.
func (c *Context) Close() {
	if c.vao != 0 {
		gl.DeleteVertexArrays(1, &c.vao)
		c.vao = 0
	}
}

func (c *Context) CreateShader(kind gpu.StageKind) gpu.Shader {
	t := uint32(gl.VERTEX_SHADER)
	if kind == gpu.FragmentStage {
		t = gl.FRAGMENT_SHADER
	}
	return gpu.Shader(gl.CreateShader(t))
}

func (c *Context) ShaderSource(s gpu.Shader, src string) {
	csrc, free := gl.Strs(src + "\x00")
	defer free()
	gl.ShaderSource(uint32(s), 1, csrc, nil)
}

func (c *Context) CompileShader(s gpu.Shader) {
	gl.CompileShader(uint32(s))
}

func (c *Context) ShaderCompiled(s gpu.Shader) bool {
	var status int32
	gl.GetShaderiv(uint32(s), gl.COMPILE_STATUS, &status)
	return status == gl.TRUE
}

func (c *Context) ShaderInfoLog(s gpu.Shader) string {
	var n int32
	gl.GetShaderiv(uint32(s), gl.INFO_LOG_LENGTH, &n)
	if n <= 0 {
		return ""
	}
	buf := strings.Repeat("\x00", int(n+1))
	gl.GetShaderInfoLog(uint32(s), n, nil, gl.Str(buf))
	return strings.TrimRight(buf, "\x00\n")
}

func (c *Context) DeleteShader(s gpu.Shader) {
	gl.DeleteShader(uint32(s))
}

func (c *Context) CreateProgram() gpu.Program {
	return gpu.Program(gl.CreateProgram())
}

func (c *Context) AttachShader(p gpu.Program, s gpu.Shader) {
	gl.AttachShader(uint32(p), uint32(s))
}

func (c *Context) LinkProgram(p gpu.Program) {
	gl.LinkProgram(uint32(p))
}

func (c *Context) ProgramLinked(p gpu.Program) bool {
	var status int32
	gl.GetProgramiv(uint32(p), gl.LINK_STATUS, &status)
	return status == gl.TRUE
}

func (c *Context) ProgramInfoLog(p gpu.Program) string {
	var n int32
	gl.GetProgramiv(uint32(p), gl.INFO_LOG_LENGTH, &n)
	if n <= 0 {
		return ""
	}
	buf := strings.Repeat("\x00", int(n+1))
	gl.GetProgramInfoLog(uint32(p), n, nil, gl.Str(buf))
	return strings.TrimRight(buf, "\x00\n")
}

func (c *Context) DeleteProgram(p gpu.Program) {
	gl.DeleteProgram(uint32(p))
}

func (c *Context) UseProgram(p gpu.Program) {
	gl.UseProgram(uint32(p))
}

func (c *Context) AttribLocation(p gpu.Program, name string) int32 {
	return gl.GetAttribLocation(uint32(p), gl.Str(name+"\x00"))
}

func (c *Context) UniformLocation(p gpu.Program, name string) int32 {
	return gl.GetUniformLocation(uint32(p), gl.Str(name+"\x00"))
}

func (c *Context) CreateBuffer() gpu.Buffer {
	var b uint32
	gl.GenBuffers(1, &b)
	return gpu.Buffer(b)
}

func (c *Context) BindBuffer(b gpu.Buffer) {
	gl.BindVertexArray(c.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(b))
}

func (c *Context) BufferStaticData(data []float32) {
	if len(data) == 0 {
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
}

func (c *Context) DeleteBuffer(b gpu.Buffer) {
	id := uint32(b)
	gl.DeleteBuffers(1, &id)
}

func (c *Context) VertexAttribPointer(loc int32, size int32, normalized bool, stride, offset int32) {
	gl.VertexAttribPointer(uint32(loc), size, gl.FLOAT, normalized, stride, gl.PtrOffset(int(offset)))
}

func (c *Context) EnableVertexAttribArray(loc int32) {
	gl.EnableVertexAttribArray(uint32(loc))
}

func (c *Context) Uniform1f(loc int32, v float32) {
	gl.Uniform1f(loc, v)
}

func (c *Context) Uniform2f(loc int32, x, y float32) {
	gl.Uniform2f(loc, x, y)
}

func (c *Context) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (c *Context) DrawArrays(mode gpu.DrawMode, first, count int32) {
	m := uint32(gl.TRIANGLES)
	if mode == gpu.TriangleStrip {
		m = gl.TRIANGLE_STRIP
	}
	gl.DrawArrays(m, first, count)
	// raylib rebinds its own VAO before batching, but leave no stray binding behind.
	gl.BindVertexArray(0)
}
