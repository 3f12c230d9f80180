package renderer

import (
	"fmt"
	"strings"

	"shader-background/internal/gpu"
)

// call is one recorded driver call.
type call struct {
	name string
	args []any
}

type fakeShader struct {
	kind     gpu.StageKind
	src      string
	compiled bool
}

// fakeContext records every call and "compiles" anything that does not contain #error.
// A program links when it has one compiled shader of each kind; uniforms resolve
// when their name appears in the fragment source.
type fakeContext struct {
	calls   []call
	next    uint32
	shaders map[gpu.Shader]*fakeShader
	progs   map[gpu.Program][]gpu.Shader
	linked  map[gpu.Program]bool
	buffers map[gpu.Buffer][]float32
	bound   gpu.Buffer

	// frozen copies of sources, kept after the shader objects are deleted
	progSrc map[gpu.Program]string

	failLink bool
}

func newFakeContext() *fakeContext {
	return &fakeContext{
		shaders: map[gpu.Shader]*fakeShader{},
		progs:   map[gpu.Program][]gpu.Shader{},
		linked:  map[gpu.Program]bool{},
		buffers: map[gpu.Buffer][]float32{},
		progSrc: map[gpu.Program]string{},
	}
}

func (f *fakeContext) record(name string, args ...any) {
	f.calls = append(f.calls, call{name: name, args: args})
}

func (f *fakeContext) count(name string) int {
	n := 0
	for _, c := range f.calls {
		if c.name == name {
			n++
		}
	}
	return n
}

func (f *fakeContext) names() []string {
	out := make([]string, len(f.calls))
	for i, c := range f.calls {
		out[i] = c.name
	}
	return out
}

func (f *fakeContext) last(name string) call {
	for i := len(f.calls) - 1; i >= 0; i-- {
		if f.calls[i].name == name {
			return f.calls[i]
		}
	}
	return call{}
}

func (f *fakeContext) id() uint32 {
	f.next++
	return f.next
}

func (f *fakeContext) CreateShader(kind gpu.StageKind) gpu.Shader {
	s := gpu.Shader(f.id())
	f.shaders[s] = &fakeShader{kind: kind}
	f.record("CreateShader", kind)
	return s
}

func (f *fakeContext) ShaderSource(s gpu.Shader, src string) {
	f.shaders[s].src = src
	f.record("ShaderSource", s)
}

func (f *fakeContext) CompileShader(s gpu.Shader) {
	sh := f.shaders[s]
	sh.compiled = !strings.Contains(sh.src, "#error")
	f.record("CompileShader", s)
}

func (f *fakeContext) ShaderCompiled(s gpu.Shader) bool {
	return f.shaders[s].compiled
}

func (f *fakeContext) ShaderInfoLog(s gpu.Shader) string {
	if f.shaders[s].compiled {
		return ""
	}
	return "0:1(1): error: #error directive"
}

func (f *fakeContext) DeleteShader(s gpu.Shader) {
	delete(f.shaders, s)
	f.record("DeleteShader", s)
}

func (f *fakeContext) CreateProgram() gpu.Program {
	p := gpu.Program(f.id())
	f.progs[p] = nil
	f.record("CreateProgram")
	return p
}

func (f *fakeContext) AttachShader(p gpu.Program, s gpu.Shader) {
	f.progs[p] = append(f.progs[p], s)
	f.record("AttachShader", p, s)
}

func (f *fakeContext) LinkProgram(p gpu.Program) {
	var kinds [2]bool
	var src strings.Builder
	for _, s := range f.progs[p] {
		if sh := f.shaders[s]; sh != nil && sh.compiled {
			kinds[sh.kind] = true
			src.WriteString(sh.src)
		}
	}
	f.linked[p] = kinds[0] && kinds[1] && !f.failLink
	f.progSrc[p] = src.String()
	f.record("LinkProgram", p)
}

func (f *fakeContext) ProgramLinked(p gpu.Program) bool { return f.linked[p] }

func (f *fakeContext) ProgramInfoLog(p gpu.Program) string {
	if f.linked[p] {
		return ""
	}
	return "error: linking failed"
}

func (f *fakeContext) DeleteProgram(p gpu.Program) {
	delete(f.progs, p)
	f.record("DeleteProgram", p)
}

func (f *fakeContext) UseProgram(p gpu.Program) { f.record("UseProgram", p) }

func (f *fakeContext) location(p gpu.Program, decl string) int32 {
	if !strings.Contains(f.progSrc[p], decl) {
		return -1
	}
	return int32(strings.Index(f.progSrc[p], decl))
}

func (f *fakeContext) AttribLocation(p gpu.Program, name string) int32 {
	return f.location(p, "in vec4 "+name+";")
}

func (f *fakeContext) UniformLocation(p gpu.Program, name string) int32 {
	for _, typ := range []string{"float", "vec2"} {
		if loc := f.location(p, fmt.Sprintf("uniform %s %s;", typ, name)); loc >= 0 {
			return loc
		}
	}
	return -1
}

func (f *fakeContext) CreateBuffer() gpu.Buffer {
	b := gpu.Buffer(f.id())
	f.buffers[b] = nil
	f.record("CreateBuffer")
	return b
}

func (f *fakeContext) BindBuffer(b gpu.Buffer) {
	f.bound = b
	f.record("BindBuffer", b)
}

func (f *fakeContext) BufferStaticData(data []float32) {
	f.buffers[f.bound] = append([]float32(nil), data...)
	f.record("BufferStaticData", len(data))
}

func (f *fakeContext) DeleteBuffer(b gpu.Buffer) {
	delete(f.buffers, b)
	f.record("DeleteBuffer", b)
}

func (f *fakeContext) VertexAttribPointer(loc int32, size int32, normalized bool, stride, offset int32) {
	f.record("VertexAttribPointer", loc, size, normalized, stride, offset)
}

func (f *fakeContext) EnableVertexAttribArray(loc int32) {
	f.record("EnableVertexAttribArray", loc)
}

func (f *fakeContext) Uniform1f(loc int32, v float32) {
	f.record("Uniform1f", loc, v)
}

func (f *fakeContext) Uniform2f(loc int32, x, y float32) {
	f.record("Uniform2f", loc, x, y)
}

func (f *fakeContext) Viewport(x, y, width, height int32) {
	f.record("Viewport", x, y, width, height)
}

func (f *fakeContext) DrawArrays(mode gpu.DrawMode, first, count int32) {
	f.record("DrawArrays", mode, first, count)
}

// fakeSurface is a resizable drawable region.
type fakeSurface struct {
	w, h int
}

func (s *fakeSurface) Size() (int, int) { return s.w, s.h }
