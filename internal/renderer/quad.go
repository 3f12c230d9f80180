package renderer

import "shader-background/internal/gpu"

// quadVertices is a clip-space triangle strip covering [-1,1]x[-1,1].
var quadVertices = [8]float32{
	-1, 1,
	1, 1,
	-1, -1,
	1, -1,
}

const (
	quadComponents  = 2
	quadVertexCount = int32(len(quadVertices) / quadComponents)
)

// uploadQuad creates the static vertex buffer for the full-screen quad.
func uploadQuad(ctx gpu.Context) gpu.Buffer {
	b := ctx.CreateBuffer()
	ctx.BindBuffer(b)
	ctx.BufferStaticData(quadVertices[:])
	return b
}
