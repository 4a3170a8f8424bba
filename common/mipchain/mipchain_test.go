package mipchain

import (
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNumLevels(t *testing.T) {
	tests := []struct {
		sizes []int
		want  int
	}{
		{sizes: []int{1}, want: 1},
		{sizes: []int{1, 1}, want: 1},
		{sizes: []int{2, 1}, want: 2},
		{sizes: []int{3, 3}, want: 2},
		{sizes: []int{4, 4}, want: 3},
		{sizes: []int{5, 7}, want: 3},
		{sizes: []int{256, 256}, want: 9},
		{sizes: []int{255, 1}, want: 8},
		{sizes: []int{1, 1024}, want: 11},
		{sizes: []int{0, 0}, want: 1},
		{sizes: []int{-4}, want: 1},
		{sizes: nil, want: 1},
	}

	for _, tc := range tests {
		if got := NumLevels(tc.sizes...); got != tc.want {
			t.Errorf("NumLevels(%v) = %d, want %d", tc.sizes, got, tc.want)
		}
	}
}

func TestLevelSize(t *testing.T) {
	type size struct{ W, H int }
	tests := []struct {
		name          string
		width, height int
		want          []size
	}{
		{
			name:  "square",
			width: 8, height: 8,
			want: []size{{8, 8}, {4, 4}, {2, 2}, {1, 1}},
		},
		{
			name:  "odd",
			width: 5, height: 7,
			want: []size{{5, 7}, {2, 3}, {1, 1}},
		},
		{
			name:  "wide",
			width: 16, height: 2,
			want: []size{{16, 2}, {8, 1}, {4, 1}, {2, 1}, {1, 1}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got []size
			for level := 0; level < NumLevels(tc.width, tc.height); level++ {
				w, h := LevelSize(tc.width, tc.height, level)
				got = append(got, size{w, h})
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("level sizes mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func uniformImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestGenerateDimensions(t *testing.T) {
	src := image.NewNRGBA(image.Rect(10, 20, 10+37, 20+12))
	levels := Generate(src)

	if got, want := len(levels), NumLevels(37, 12); got != want {
		t.Fatalf("Generate() returned %d levels, want %d", got, want)
	}
	for i, img := range levels {
		w, h := LevelSize(37, 12, i)
		if diff := cmp.Diff(image.Rect(0, 0, w, h), img.Bounds()); diff != "" {
			t.Errorf("level %d bounds mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestGenerateUniform(t *testing.T) {
	c := color.RGBA{R: 200, G: 100, B: 50, A: 255}
	levels := Generate(uniformImage(13, 6, c))

	near := func(a, b uint8) bool { return int(a)-int(b) <= 1 && int(b)-int(a) <= 1 }
	for i, img := range levels {
		b := img.Bounds()
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				got := img.RGBAAt(x, y)
				if !near(got.R, c.R) || !near(got.G, c.G) || !near(got.B, c.B) || !near(got.A, c.A) {
					t.Fatalf("level %d pixel (%d, %d) = %v, want %v", i, x, y, got, c)
				}
			}
		}
	}
}

func TestGenerateAveragesCheckerboard(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if (x+y)%2 == 0 {
				img.SetRGBA(x, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
			} else {
				img.SetRGBA(x, y, color.RGBA{A: 255})
			}
		}
	}

	levels := Generate(img)
	last := levels[len(levels)-1]
	if diff := cmp.Diff(image.Rect(0, 0, 1, 1), last.Bounds()); diff != "" {
		t.Fatalf("last level bounds mismatch (-want +got):\n%s", diff)
	}
	// A one pixel checkerboard filters down to mid grey.
	got := last.RGBAAt(0, 0)
	if got.R < 96 || got.R > 160 {
		t.Errorf("last level = %v, want a grey close to 128", got)
	}
}

func TestGenerateHalvesWithBoxAverage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 1))
	for x := 0; x < 8; x++ {
		img.SetRGBA(x, 0, color.RGBA{R: uint8(x * 32), A: 255})
	}

	levels := Generate(img)
	var got []uint8
	for x := 0; x < 4; x++ {
		got = append(got, levels[1].RGBAAt(x, 0).R)
	}
	want := []uint8{16, 80, 144, 208}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("level 1 red mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateHalvesTwoDimensions(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(16*x + 32*y), G: uint8(60 * (x % 2)), A: 255})
		}
	}

	level := Generate(img)[1]
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			var r, g int
			for _, p := range []image.Point{{2 * x, 2 * y}, {2*x + 1, 2 * y}, {2 * x, 2*y + 1}, {2*x + 1, 2*y + 1}} {
				c := img.RGBAAt(p.X, p.Y)
				r += int(c.R)
				g += int(c.G)
			}
			want := color.RGBA{R: uint8(r / 4), G: uint8(g / 4), A: 255}
			got := level.RGBAAt(x, y)
			if diff := cmp.Diff(want, got, cmp.Comparer(func(a, b uint8) bool {
				return int(a)-int(b) <= 1 && int(b)-int(a) <= 1
			})); diff != "" {
				t.Errorf("level 1 pixel (%d, %d) mismatch (-want +got):\n%s", x, y, diff)
			}
		}
	}
}
