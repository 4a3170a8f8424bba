package mipmaps

import (
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hulkholden/webgpu-lessons/common/vmath"
	"github.com/hulkholden/webgpu-lessons/common/wgslcheck"
)

func TestHSL(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float32
		want    color.RGBA
	}{
		{"red", 0, 1, 0.5, color.RGBA{R: 255, A: 255}},
		{"green", 1.0 / 3, 1, 0.5, color.RGBA{G: 255, A: 255}},
		{"blue", 2.0 / 3, 1, 0.5, color.RGBA{B: 255, A: 255}},
		{"hue wraps", 1.5, 1, 0.5, color.RGBA{G: 255, B: 255, A: 255}},
		{"negative hue wraps", -0.5, 1, 0.5, color.RGBA{G: 255, B: 255, A: 255}},
		{"black", 0.3, 1, 0, color.RGBA{A: 255}},
		{"white", 0.3, 1, 1, color.RGBA{R: 255, G: 255, B: 255, A: 255}},
		{"grey", 0.7, 0, 0.5, color.RGBA{R: 128, G: 128, B: 128, A: 255}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, hsl(tc.h, tc.s, tc.l)); diff != "" {
				t.Errorf("hsl(%v, %v, %v) mismatch (-want +got):\n%s", tc.h, tc.s, tc.l, diff)
			}
		})
	}
}

// within1 tolerates the rounding of antialiased coverage.
var within1 = cmp.Comparer(func(a, b uint8) bool {
	return a-b <= 1 || b-a <= 1
})

func TestSpiral(t *testing.T) {
	img := newSpiral(textureSize).Draw(0)
	if got, want := img.Bounds().Dx(), textureSize; got != want {
		t.Fatalf("width = %d, want %d", got, want)
	}
	// The outermost square is black and fills the image; the next one is
	// shifted right, leaving a black band on the left.
	if diff := cmp.Diff(color.RGBA{A: 255}, img.RGBAAt(2, textureSize/2), within1); diff != "" {
		t.Errorf("left edge mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(hsl(0.2/spiralSquares, 1, 0.5), img.RGBAAt(40, textureSize/2), within1); diff != "" {
		t.Errorf("second square mismatch (-want +got):\n%s", diff)
	}
}

func TestSpiralAnimates(t *testing.T) {
	s := newSpiral(64)
	first := append([]uint8(nil), s.Draw(0).Pix...)
	second := s.Draw(30).Pix
	if cmp.Equal(first, second) {
		t.Errorf("Draw(30) produced the same pixels as Draw(0)")
	}
	// Drawing is a function of time only.
	again := newSpiral(64).Draw(30).Pix
	if diff := cmp.Diff(again, second); diff != "" {
		t.Errorf("Draw(30) on a reused spiral mismatch (-want +got):\n%s", diff)
	}
}

func TestTileMatrices(t *testing.T) {
	ms := tileMatrices(16.0 / 9)
	if got, want := len(ms), numTiles; got != want {
		t.Fatalf("len(tileMatrices()) = %d, want %d", got, want)
	}

	center := vmath.NewV3(0, 0, 0)
	prevDepth := float32(0)
	for row := 0; row < tileRows; row++ {
		// Middle column.
		p := ms[row*tileColumns+tileColumns/2].MulPoint(center)
		if p.Z <= prevDepth || p.Z >= 1 {
			t.Errorf("row %d: depth = %v, want in (%v, 1)", row, p.Z, prevDepth)
		}
		if p.X < -1e-4 || p.X > 1e-4 {
			t.Errorf("row %d: middle tile x = %v, want 0", row, p.X)
		}
		if p.Y >= 0 || p.Y < -1 {
			t.Errorf("row %d: tile y = %v, want below the horizon and on screen", row, p.Y)
		}
		prevDepth = p.Z
	}
}

func TestShader(t *testing.T) {
	got, err := wgslcheck.EntryPoints(shaderCode)
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
