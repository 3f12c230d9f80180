package renderer

import (
	"shader-background/internal/gpu"
)

// programInfo is a linked program plus every location the render step touches.
type programInfo struct {
	program       gpu.Program
	positionLoc   int32
	resolutionLoc int32
	timeLoc       int32
	mouseLoc      int32
}

// compileStage compiles one stage. On failure the shader object is deleted and the
// driver's info log is returned in a *CompileError.
func compileStage(ctx gpu.Context, kind gpu.StageKind, src string) (gpu.Shader, error) {
	s := ctx.CreateShader(kind)
	ctx.ShaderSource(s, src)
	ctx.CompileShader(s)
	if !ctx.ShaderCompiled(s) {
		info := ctx.ShaderInfoLog(s)
		ctx.DeleteShader(s)
		return 0, &CompileError{Stage: kind, Log: info}
	}
	return s, nil
}

// linkProgram links vs and fs and resolves the attribute and uniform locations.
// A name that does not resolve is reported as a *LinkError, the same as a failed link.
// The stage objects are released either way; the program keeps what it needs.
func linkProgram(ctx gpu.Context, vs, fs gpu.Shader) (programInfo, error) {
	p := ctx.CreateProgram()
	ctx.AttachShader(p, vs)
	ctx.AttachShader(p, fs)
	ctx.LinkProgram(p)
	ctx.DeleteShader(vs)
	ctx.DeleteShader(fs)

	if !ctx.ProgramLinked(p) {
		info := ctx.ProgramInfoLog(p)
		ctx.DeleteProgram(p)
		return programInfo{}, &LinkError{Log: info}
	}

	pi := programInfo{
		program:       p,
		positionLoc:   ctx.AttribLocation(p, attribPosition),
		resolutionLoc: ctx.UniformLocation(p, uniformResolution),
		timeLoc:       ctx.UniformLocation(p, uniformTime),
		mouseLoc:      ctx.UniformLocation(p, uniformMouse),
	}
	var missing []string
	for _, l := range []struct {
		name string
		loc  int32
	}{
		{attribPosition, pi.positionLoc},
		{uniformResolution, pi.resolutionLoc},
		{uniformTime, pi.timeLoc},
		{uniformMouse, pi.mouseLoc},
	} {
		if l.loc < 0 {
			missing = append(missing, l.name)
		}
	}
	if len(missing) > 0 {
		ctx.DeleteProgram(p)
		return programInfo{}, &LinkError{Missing: missing}
	}
	return pi, nil
}

// buildProgram runs the whole compile/link sequence for a source pair.
func buildProgram(ctx gpu.Context, src Sources) (programInfo, error) {
	vs, err := compileStage(ctx, gpu.VertexStage, src.Vertex)
	if err != nil {
		return programInfo{}, err
	}
	fs, err := compileStage(ctx, gpu.FragmentStage, src.Fragment)
	if err != nil {
		ctx.DeleteShader(vs)
		return programInfo{}, err
	}
	return linkProgram(ctx, vs, fs)
}
