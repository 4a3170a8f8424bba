// Package mipchain computes mip level dimensions and builds reference mip
// chains on the CPU.
package mipchain

import (
	"image"
	"math/bits"

	"golang.org/x/image/draw"
)

// NumLevels returns the number of levels in a full mip chain for a texture
// with the given dimensions: 1 + floor(log2(max(sizes))). Sizes below 1 count
// as 1.
func NumLevels(sizes ...int) int {
	m := 1
	for _, s := range sizes {
		m = max(m, s)
	}
	return bits.Len(uint(m))
}

// LevelSize returns the dimensions of the given level.
func LevelSize(width, height, level int) (int, int) {
	return max(1, width>>level), max(1, height>>level)
}

// Generate returns a full mip chain for img. Level 0 is a copy of img and
// every further level is scaled from the one before it with a bilinear filter
// sampling at target texel centers, so halving an even dimension averages
// pairs of source texels as a linear GPU sampler does.
func Generate(img image.Image) []*image.RGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	n := NumLevels(w, h)

	levels := make([]*image.RGBA, n)
	levels[0] = image.NewRGBA(image.Rect(0, 0, max(1, w), max(1, h)))
	draw.Copy(levels[0], image.Point{}, img, b, draw.Src, nil)

	for level := 1; level < n; level++ {
		lw, lh := LevelSize(w, h, level)
		dst := image.NewRGBA(image.Rect(0, 0, lw, lh))
		src := levels[level-1]
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
		levels[level] = dst
	}
	return levels
}
