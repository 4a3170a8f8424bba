package transform

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/hulkholden/webgpu-lessons/common/math32"
	"github.com/hulkholden/webgpu-lessons/common/vmath"
	"github.com/hulkholden/webgpu-lessons/common/wgslcheck"
	"github.com/hulkholden/webgpu-lessons/common/wgsltypes"
)

var approx = cmpopts.EquateApprox(0, 1e-4)

func TestLetterIndices(t *testing.T) {
	if got, want := len(letterIndices), 3*6; got != want {
		t.Errorf("len(letterIndices) = %d, want %d", got, want)
	}
	for i, idx := range letterIndices {
		if int(idx) >= len(letterVertices) {
			t.Errorf("letterIndices[%d] = %d, out of range", i, idx)
		}
	}
}

func TestPlacementMatrix(t *testing.T) {
	tests := []struct {
		name  string
		p     placement
		point vmath.V2
		want  vmath.V2
	}{
		{
			name:  "identity",
			p:     placement{scale: vmath.NewV2(1, 1)},
			point: vmath.NewV2(30, 60),
			want:  vmath.NewV2(30, 60),
		},
		{
			name:  "translate",
			p:     placement{translation: vmath.NewV2(10, -5), scale: vmath.NewV2(1, 1)},
			point: vmath.NewV2(0, 0),
			want:  vmath.NewV2(10, -5),
		},
		{
			name:  "pivot is fixed",
			p:     placement{rotation: 2.1, scale: vmath.NewV2(0.5, 3)},
			point: pivot,
			want:  pivot,
		},
		{
			name:  "scale about pivot",
			p:     placement{scale: vmath.NewV2(2, 2)},
			point: vmath.NewV2(0, 0),
			want:  vmath.NewV2(-50, -75),
		},
		{
			name:  "half turn about pivot",
			p:     placement{rotation: math32.Pi, scale: vmath.NewV2(1, 1)},
			point: vmath.NewV2(0, 0),
			want:  vmath.NewV2(100, 150),
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, tc.p.matrix().MulPoint(tc.point), approx); diff != "" {
				t.Errorf("matrix().MulPoint() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAnimatedPlacementCentersLetter(t *testing.T) {
	for _, seconds := range []float32{0, 1, 4.2} {
		got := animatedPlacement(seconds, 640, 480).matrix().MulPoint(pivot)
		if diff := cmp.Diff(vmath.NewV2(320, 240), got, approx); diff != "" {
			t.Errorf("at %vs: pivot mismatch (-want +got):\n%s", seconds, diff)
		}
	}
}

func TestUniformsLayout(t *testing.T) {
	if got, want := uniformsStruct.MustOffsetOf("matrix"), 32; got != want {
		t.Errorf("offset of matrix = %d, want %d", got, want)
	}
	if got, want := uniformsStruct.WGSLSize, 80; got != want {
		t.Errorf("WGSLSize = %d, want %d", got, want)
	}
}

func TestShader(t *testing.T) {
	got, err := wgslcheck.EntryPoints(wgsltypes.Prologue(uniformsStruct) + shaderCode)
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
