package indexbuffer

import (
	_ "embed"

	"github.com/hulkholden/webgpu-lessons/common/vmath"
)

//go:embed indexbuffer.wgsl
var shaderCode string

// quadVertices are the four corners of a square; quadIndices reuses them for
// the two triangles covering it.
var (
	quadVertices = []vmath.V2{
		vmath.NewV2(0.5, 0.5),
		vmath.NewV2(-0.5, -0.5),
		vmath.NewV2(0.5, -0.5),
		vmath.NewV2(-0.5, 0.5),
	}
	quadIndices = []uint32{
		0, 1, 2,
		0, 3, 1,
	}
)
