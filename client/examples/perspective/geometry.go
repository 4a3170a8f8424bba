package perspective

import (
	_ "embed"

	"github.com/hulkholden/webgpu-lessons/common/camera"
	"github.com/hulkholden/webgpu-lessons/common/mat4"
	"github.com/hulkholden/webgpu-lessons/common/math32"
	"github.com/hulkholden/webgpu-lessons/common/vmath"
	"github.com/hulkholden/webgpu-lessons/common/wgsltypes"
)

type vertex struct {
	position vmath.V3
	pad      float32
	color    vmath.V4
}

type uniforms struct {
	matrix mat4.M4
}

var (
	vertexStruct   = wgsltypes.MustNewStruct[vertex]("Vertex")
	uniformsStruct = wgsltypes.MustNewStruct[uniforms]("Uniforms")
)

//go:embed perspective.wgsl
var shaderCode string

const (
	fieldOfView = math32.Pi / 3
	zNear       = 10
	zFar        = 1000
	distance    = 200
)

// The letter F: a column with two rungs, 30 units deep.
var fPositions = [][3]float32{
	// left column front
	{0, 0, 0}, {0, -150, 0}, {30, -150, 0}, {30, 0, 0},
	// top rung front
	{30, 0, 0}, {30, -30, 0}, {90, -30, 0}, {90, 0, 0},
	// middle rung front
	{30, -50, 0}, {30, -80, 0}, {60, -80, 0}, {60, -50, 0},
	// left column back
	{0, 0, 30}, {0, -150, 30}, {30, -150, 30}, {30, 0, 30},
	// top rung back
	{30, 0, 30}, {30, -30, 30}, {90, -30, 30}, {90, 0, 30},
	// middle rung back
	{30, -50, 30}, {30, -80, 30}, {60, -80, 30}, {60, -50, 30},
}

// fIndices lists two counter-clockwise triangles per quad.
var fIndices = []int{
	// front
	0, 1, 2, 2, 3, 0,
	4, 5, 6, 6, 7, 4,
	8, 9, 10, 10, 11, 8,

	// back
	12, 15, 14, 14, 13, 12,
	16, 19, 18, 18, 17, 16,
	20, 23, 22, 22, 21, 20,

	// sides
	12, 13, 1, 1, 0, 12,
	0, 7, 19, 19, 12, 0,
	2, 1, 13, 13, 14, 2,
	3, 2, 14, 14, 15, 3,
	7, 6, 18, 18, 19, 7,
	6, 5, 17, 17, 18, 6,
	8, 11, 23, 23, 20, 8,
	10, 9, 21, 21, 22, 10,
	11, 10, 22, 22, 23, 11,
}

// fQuadColors has one RGB color per quad in fIndices.
var fQuadColors = [][3]uint8{
	{200, 70, 120}, {200, 70, 120}, {200, 70, 120},
	{80, 70, 200}, {80, 70, 200}, {80, 70, 200},
	{140, 210, 80},
	{76, 210, 100},
	{100, 70, 210},
	{70, 180, 210},
	{210, 160, 70},
	{210, 100, 70},
	{200, 200, 70},
	{90, 130, 110},
	{160, 160, 220},
}

// fCenter is the middle of the F's bounding box.
var fCenter = vmath.NewV3(45, -75, 15)

// fVertices expands the indexed F into a flat triangle list colored per quad.
func fVertices() []vertex {
	vs := make([]vertex, len(fIndices))
	for i, idx := range fIndices {
		p := fPositions[idx]
		c := fQuadColors[i/6]
		vs[i] = vertex{
			position: vmath.NewV3(p[0], p[1], p[2]),
			color:    vmath.NewV4(float32(c[0])/255, float32(c[1])/255, float32(c[2])/255, 1),
		}
	}
	return vs
}

// modelViewProjection places the F distance units in front of the camera,
// spinning about its own center by angle radians.
func modelViewProjection(aspect, angle float32) mat4.M4 {
	cam := camera.NewPerspective(fieldOfView, aspect, zNear, zFar)
	cam.SetPosition(0, 0, -distance)
	return cam.ViewProjection().
		RotateX(angle * 0.5).
		RotateY(angle).
		Translate(-fCenter.X, -fCenter.Y, -fCenter.Z)
}
