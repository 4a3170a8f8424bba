package orthographic

import (
	_ "embed"

	"github.com/hulkholden/webgpu-lessons/common/camera"
	"github.com/hulkholden/webgpu-lessons/common/mat4"
	"github.com/hulkholden/webgpu-lessons/common/vmath"
	"github.com/hulkholden/webgpu-lessons/common/wgsltypes"
)

//go:embed orthographic.wgsl
var shaderCode string

type uniforms struct {
	color  vmath.V4
	matrix mat4.M4
}

var uniformsStruct = wgsltypes.MustNewStruct[uniforms]("Uniforms")

const (
	// viewHeight world units fit the canvas height; the width follows the
	// aspect ratio.
	viewHeight = 500
	viewDepth  = 400

	// The F is 100 wide, 150 tall and 30 deep, hanging down from the origin.
	letterWidth  = 100
	letterHeight = 150
	letterDepth  = 30
)

// letterPositions are the front (z = 0) then back (z = 30) corners of the F's
// three quads: the left column, the top rung and the middle rung.
var letterPositions = []vmath.V3{
	// left column
	vmath.NewV3(0, 0, 0),
	vmath.NewV3(0, -150, 0),
	vmath.NewV3(30, 0, 0),
	vmath.NewV3(30, -150, 0),
	// top rung
	vmath.NewV3(30, 0, 0),
	vmath.NewV3(30, -30, 0),
	vmath.NewV3(100, 0, 0),
	vmath.NewV3(100, -30, 0),
	// middle rung
	vmath.NewV3(30, -60, 0),
	vmath.NewV3(30, -90, 0),
	vmath.NewV3(70, -60, 0),
	vmath.NewV3(70, -90, 0),

	vmath.NewV3(0, 0, 30),
	vmath.NewV3(0, -150, 30),
	vmath.NewV3(30, 0, 30),
	vmath.NewV3(30, -150, 30),
	vmath.NewV3(30, 0, 30),
	vmath.NewV3(30, -30, 30),
	vmath.NewV3(100, 0, 30),
	vmath.NewV3(100, -30, 30),
	vmath.NewV3(30, -60, 30),
	vmath.NewV3(30, -90, 30),
	vmath.NewV3(70, -60, 30),
	vmath.NewV3(70, -90, 30),
}

var letterIndices = []uint16{
	// front
	0, 1, 2, 2, 1, 3,
	4, 5, 6, 6, 5, 7,
	8, 9, 10, 10, 9, 11,

	// back
	12, 14, 13, 14, 15, 13,
	16, 18, 17, 18, 19, 17,
	20, 22, 21, 22, 23, 21,

	// sides
	0, 12, 13, 0, 13, 1, // left
	1, 13, 15, 1, 15, 3, // bottom
	3, 15, 21, 3, 21, 9, // right below the middle rung
	9, 21, 23, 9, 23, 11, // middle rung bottom
	11, 23, 22, 11, 22, 10, // middle rung right
	10, 22, 20, 10, 20, 8, // middle rung top
	8, 20, 17, 8, 17, 5, // right between the rungs
	5, 17, 19, 5, 19, 7, // top rung bottom
	7, 19, 18, 7, 18, 6, // top rung right
	6, 18, 16, 6, 16, 4, // top rung top
	4, 16, 12, 4, 12, 0, // left column top
}

// pose is the F's placement; rotations are in radians.
type pose struct {
	translation vmath.V3
	rotation    vmath.V3
	scale       vmath.V2
}

// animatedPose tumbles the F about its center as seconds pass.
func animatedPose(seconds float32) pose {
	return pose{
		rotation: vmath.NewV3(seconds*0.7, seconds, seconds*0.3),
		scale:    vmath.NewV2(1, 1),
	}
}

// modelViewProjection places the F's center at p.translation and projects it
// orthographically, viewHeight units tall.
func modelViewProjection(aspect float32, p pose) mat4.M4 {
	halfHeight := float32(viewHeight) / 2
	halfWidth := halfHeight * aspect
	halfDepth := float32(viewDepth) / 2
	// near > far so that +Z faces the viewer.
	cam := camera.NewOrtho(-halfWidth, halfWidth, -halfHeight, halfHeight, halfDepth, -halfDepth)
	return cam.ViewProjection().
		Translate(p.translation.X, p.translation.Y, p.translation.Z).
		RotateX(p.rotation.X).
		RotateY(p.rotation.Y).
		RotateZ(p.rotation.Z).
		Scale(p.scale.X, p.scale.Y, 1).
		Translate(-letterWidth/2, letterHeight/2, -letterDepth/2)
}
