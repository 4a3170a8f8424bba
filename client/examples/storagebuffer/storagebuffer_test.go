package storagebuffer

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hulkholden/webgpu-lessons/common/vmath"
	"github.com/hulkholden/webgpu-lessons/common/wgslcheck"
	"github.com/hulkholden/webgpu-lessons/common/wgsltypes"
)

func TestNewObjects(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	statics, scales, err := newObjects(r, numObjects)
	if err != nil {
		t.Fatalf("newObjects() = %v", err)
	}
	if len(statics) != numObjects || len(scales) != numObjects {
		t.Fatalf("newObjects() returned %d statics and %d scales, want %d", len(statics), len(scales), numObjects)
	}

	colors := map[vmath.V4]bool{}
	for _, c := range palette {
		colors[c.Item] = true
	}
	for i, s := range statics {
		if !colors[s.color] {
			t.Errorf("object %d has color %v, which is not in the palette", i, s.color)
		}
		for _, v := range []float32{s.offset.X, s.offset.Y} {
			if v < offsetRange.Min || v >= offsetRange.Max {
				t.Errorf("object %d offset %v out of range", i, s.offset)
			}
		}
		if scales[i] < scaleRange.Min || scales[i] >= scaleRange.Max {
			t.Errorf("object %d scale %v out of range", i, scales[i])
		}
	}
}

func TestAspectScales(t *testing.T) {
	got := aspectScales([]float32{0.5, 0.2}, 2)
	want := []objectScale{
		{scale: vmath.NewV2(0.25, 0.5)},
		{scale: vmath.NewV2(0.1, 0.2)},
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(objectScale{})); diff != "" {
		t.Errorf("aspectScales() mismatch (-want +got):\n%s", diff)
	}
}

func TestStructLayout(t *testing.T) {
	for _, s := range structDefinitions {
		if s.Size != s.WGSLSize {
			t.Errorf("struct %s is %d bytes in Go but has a stride of %d in WGSL", s.Name, s.Size, s.WGSLSize)
		}
	}
}

func TestShader(t *testing.T) {
	got, err := wgslcheck.EntryPoints(wgsltypes.Prologue(structDefinitions...) + shaderCode)
	if err != nil {
		if wgslcheck.Unsupported(err) {
			t.Skipf("compiler limitation: %v", err)
		}
		t.Fatalf("compiling shader: %v", err)
	}
	want := map[string]string{"vs": wgslcheck.StageVertex, "fs": wgslcheck.StageFragment}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("entry points mismatch (-want +got):\n%s", diff)
	}
}
