package transform

import (
	_ "embed"

	"github.com/hulkholden/webgpu-lessons/common/mat3"
	"github.com/hulkholden/webgpu-lessons/common/math32"
	"github.com/hulkholden/webgpu-lessons/common/vmath"
	"github.com/hulkholden/webgpu-lessons/common/wgsltypes"
)

//go:embed transform.wgsl
var shaderCode string

// uniforms places the F in pixels; the shader converts to clip space with
// resolution.
type uniforms struct {
	color      vmath.V4
	resolution vmath.V2
	pad0       float32
	pad1       float32
	matrix     mat3.M3
}

var uniformsStruct = wgsltypes.MustNewStruct[uniforms]("Uniforms")

// pivot is the center of the F, which it rotates and scales about.
var pivot = vmath.NewV2(50, 75)

// letterVertices are the corners of the F's three rectangles in pixels, Y
// down: the left column, the top rung and the middle rung.
var letterVertices = []vmath.V2{
	vmath.NewV2(0, 0),
	vmath.NewV2(30, 0),
	vmath.NewV2(0, 150),
	vmath.NewV2(30, 150),

	vmath.NewV2(30, 0),
	vmath.NewV2(100, 0),
	vmath.NewV2(30, 30),
	vmath.NewV2(100, 30),

	vmath.NewV2(30, 60),
	vmath.NewV2(70, 60),
	vmath.NewV2(30, 90),
	vmath.NewV2(70, 90),
}

var letterIndices = []uint32{
	0, 1, 2, 2, 1, 3,
	4, 5, 6, 6, 5, 7,
	8, 9, 10, 10, 9, 11,
}

type placement struct {
	translation vmath.V2
	rotation    float32
	scale       vmath.V2
}

// animatedPlacement spins the F in the middle of a width x height canvas
// while it pulses in size.
func animatedPlacement(seconds float32, width, height int) placement {
	s := 1 + 0.25*math32.Sin(seconds*2)
	return placement{
		translation: vmath.NewV2(float32(width)/2, float32(height)/2).Sub(pivot),
		rotation:    seconds,
		scale:       vmath.NewV2(s, s),
	}
}

// matrix moves the pivot to the origin, scales, rotates, moves it back and
// then translates.
func (p placement) matrix() mat3.M3 {
	return mat3.Translation(p.translation.X, p.translation.Y).
		Translate(pivot.X, pivot.Y).
		Rotate(p.rotation).
		Scale(p.scale.X, p.scale.Y).
		Translate(-pivot.X, -pivot.Y)
}
