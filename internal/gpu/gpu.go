package gpu

// StageKind selects which pipeline stage a shader object compiles for.
type StageKind int

const (
	VertexStage StageKind = iota
	FragmentStage
)

func (k StageKind) String() string {
	switch k {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	}
	return "unknown"
}

// DrawMode is the primitive topology used by DrawArrays.
type DrawMode int

const (
	Triangles DrawMode = iota
	TriangleStrip
)

// Shader, Program and Buffer are driver object names. Zero is never a valid object.
type (
	Shader  uint32
	Program uint32
	Buffer  uint32
)

// Context is the slice of a graphics driver the background renderer needs.
// Calls are only valid on the thread that owns the underlying context.
// Locations follow GL conventions: -1 means the name is not active in the program.
type Context interface {
	CreateShader(kind StageKind) Shader
	ShaderSource(s Shader, src string)
	CompileShader(s Shader)
	ShaderCompiled(s Shader) bool
	ShaderInfoLog(s Shader) string
	DeleteShader(s Shader)

	CreateProgram() Program
	AttachShader(p Program, s Shader)
	LinkProgram(p Program)
	ProgramLinked(p Program) bool
	ProgramInfoLog(p Program) string
	DeleteProgram(p Program)
	UseProgram(p Program)

	AttribLocation(p Program, name string) int32
	UniformLocation(p Program, name string) int32

	CreateBuffer() Buffer
	BindBuffer(b Buffer)
	// BufferStaticData uploads data into the bound buffer with write-once, read-many usage.
	BufferStaticData(data []float32)
	DeleteBuffer(b Buffer)

	// VertexAttribPointer describes float attributes read from the bound buffer.
	VertexAttribPointer(loc int32, size int32, normalized bool, stride, offset int32)
	EnableVertexAttribArray(loc int32)

	Uniform1f(loc int32, v float32)
	Uniform2f(loc int32, x, y float32)

	Viewport(x, y, width, height int32)
	DrawArrays(mode DrawMode, first, count int32)
}
