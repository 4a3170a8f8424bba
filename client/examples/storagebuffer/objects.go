package storagebuffer

import (
	_ "embed"
	"fmt"
	"math/rand"

	"github.com/hulkholden/webgpu-lessons/common/math32"
	"github.com/hulkholden/webgpu-lessons/common/vmath"
	"github.com/hulkholden/webgpu-lessons/common/wgsltypes"
	"github.com/mroth/weightedrand/v2"
)

const numObjects = 100

// objectStatic is written once at startup.
type objectStatic struct {
	color  vmath.V4
	offset vmath.V2
	pad0   float32
	pad1   float32
}

// objectScale is rewritten whenever the canvas aspect ratio changes.
type objectScale struct {
	scale vmath.V2
}

type vertex struct {
	position vmath.V2
}

var (
	objectStaticStruct = wgsltypes.MustNewStruct[objectStatic]("ObjectStatic")
	objectScaleStruct  = wgsltypes.MustNewStruct[objectScale]("ObjectScale")
	vertexStruct       = wgsltypes.MustNewStruct[vertex]("Vertex")

	structDefinitions = []wgsltypes.Struct{
		objectStaticStruct,
		objectScaleStruct,
		vertexStruct,
	}
)

//go:embed storagebuffer.wgsl
var shaderCode string

var triangle = []vertex{
	{position: vmath.NewV2(0.0, 0.5)},
	{position: vmath.NewV2(0.5, -0.5)},
	{position: vmath.NewV2(-0.5, -0.5)},
}

// palette weights common colors above rare ones.
var palette = []weightedrand.Choice[vmath.V4, int]{
	weightedrand.NewChoice(vmath.NewV4(0.90, 0.30, 0.30, 1), 40),
	weightedrand.NewChoice(vmath.NewV4(0.30, 0.60, 0.90, 1), 40),
	weightedrand.NewChoice(vmath.NewV4(0.95, 0.85, 0.30, 1), 15),
	weightedrand.NewChoice(vmath.NewV4(1.00, 1.00, 1.00, 1), 5),
}

var (
	offsetRange = math32.UniformRangedValue{Min: -0.9, Max: 0.9}
	scaleRange  = math32.UniformRangedValue{Min: 0.2, Max: 0.5}
)

// newObjects returns the static data and base scale of n objects.
func newObjects(r *rand.Rand, n int) ([]objectStatic, []float32, error) {
	chooser, err := weightedrand.NewChooser(palette...)
	if err != nil {
		return nil, nil, fmt.Errorf("building palette: %w", err)
	}
	statics := make([]objectStatic, n)
	scales := make([]float32, n)
	for i := range statics {
		statics[i].color = chooser.Pick()
		statics[i].offset = vmath.NewV2(offsetRange.Get(r), offsetRange.Get(r))
		scales[i] = scaleRange.Get(r)
	}
	return statics, scales, nil
}

// aspectScales squashes each base scale horizontally so the objects keep
// their shape on a canvas with the given aspect ratio.
func aspectScales(base []float32, aspect float32) []objectScale {
	out := make([]objectScale, len(base))
	for i, s := range base {
		out[i].scale = vmath.NewV2(s/aspect, s)
	}
	return out
}
