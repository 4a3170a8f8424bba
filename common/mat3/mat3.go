// Package mat3 implements 2D affine transforms as 3x3 float32 matrices in the
// layout WGSL uses for mat3x3f in buffers: three columns, each padded to four
// floats.
package mat3

import (
	"fmt"
	"strings"

	"github.com/hulkholden/webgpu-lessons/common/math32"
	"github.com/hulkholden/webgpu-lessons/common/vmath"
)

// M3 stores padded columns one after another: element (row r, column c) is
// at index c*4+r, so indices 8 and 9 hold the translation. Indices 3, 7 and
// 11 are padding.
type M3 [12]float32

func Identity() M3 {
	return M3{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
	}
}

func Translation(tx, ty float32) M3 {
	m := Identity()
	m[8], m[9] = tx, ty
	return m
}

func Scaling(sx, sy float32) M3 {
	return M3{
		sx, 0, 0, 0,
		0, sy, 0, 0,
		0, 0, 1, 0,
	}
}

// Rotation rotates counterclockwise when Y points up.
func Rotation(radians float32) M3 {
	s, c := math32.SinCos(radians)
	return M3{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
	}
}

// At returns the element in row r and column c.
func (m M3) At(r, c int) float32 { return m[c*4+r] }

// Multiply returns m*n, i.e. the transform that applies n first and then m.
func (m M3) Multiply(n M3) M3 {
	var dst M3
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			var sum float32
			for k := 0; k < 3; k++ {
				sum += m.At(r, k) * n.At(k, c)
			}
			dst[c*4+r] = sum
		}
	}
	return dst
}

func (m M3) Translate(tx, ty float32) M3 { return m.Multiply(Translation(tx, ty)) }
func (m M3) Scale(sx, sy float32) M3     { return m.Multiply(Scaling(sx, sy)) }
func (m M3) Rotate(radians float32) M3   { return m.Multiply(Rotation(radians)) }

// MulPoint transforms p with w = 1.
func (m M3) MulPoint(p vmath.V2) vmath.V2 {
	return vmath.NewV2(
		m.At(0, 0)*p.X+m.At(0, 1)*p.Y+m.At(0, 2),
		m.At(1, 0)*p.X+m.At(1, 1)*p.Y+m.At(1, 2),
	)
}

func (m M3) String() string {
	var sb strings.Builder
	for r := 0; r < 3; r++ {
		if r > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "[%g %g %g]", m.At(r, 0), m.At(r, 1), m.At(r, 2))
	}
	return sb.String()
}
