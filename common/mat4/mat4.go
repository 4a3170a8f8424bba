// Package mat4 implements 4x4 float32 matrices in the column-major layout
// WGSL uses for mat4x4f, with clip space depth in [0, 1].
package mat4

import (
	"fmt"
	"strings"

	"github.com/hulkholden/webgpu-lessons/common/math32"
	"github.com/hulkholden/webgpu-lessons/common/vmath"
)

// M4 stores columns one after another: element (row r, column c) is at
// index c*4+r, so indices 12..14 hold the translation.
type M4 [16]float32

func Identity() M4 {
	return M4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Ortho maps the box [left,right]x[bottom,top]x[near,far] onto clip space.
func Ortho(left, right, bottom, top, near, far float32) M4 {
	w := right - left
	h := top - bottom
	d := far - near
	return M4{
		2 / w, 0, 0, 0,
		0, 2 / h, 0, 0,
		0, 0, 1 / d, 0,
		-(right + left) / w, -(top + bottom) / h, -near / d, 1,
	}
}

// Perspective returns a projection with the given vertical field of view in
// radians. The camera looks down +Z; points at near map to depth 0 and points
// at far to depth 1.
func Perspective(fov, aspect, near, far float32) M4 {
	f := math32.Tan(fov * 0.5)
	rangeInv := 1 / (far - near)
	return M4{
		1 / (f * aspect), 0, 0, 0,
		0, 1 / f, 0, 0,
		0, 0, far * rangeInv, 1,
		0, 0, -near * far * rangeInv, 0,
	}
}

func Translation(tx, ty, tz float32) M4 {
	m := Identity()
	m[12], m[13], m[14] = tx, ty, tz
	return m
}

func Scaling(sx, sy, sz float32) M4 {
	return M4{
		sx, 0, 0, 0,
		0, sy, 0, 0,
		0, 0, sz, 0,
		0, 0, 0, 1,
	}
}

func RotationX(radians float32) M4 {
	s, c := math32.SinCos(radians)
	return M4{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

func RotationY(radians float32) M4 {
	s, c := math32.SinCos(radians)
	return M4{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

func RotationZ(radians float32) M4 {
	s, c := math32.SinCos(radians)
	return M4{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// At returns the element in row r and column c.
func (m M4) At(r, c int) float32 { return m[c*4+r] }

// Multiply returns m*n, i.e. the transform that applies n first and then m.
func (m M4) Multiply(n M4) M4 {
	var dst M4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m.At(r, k) * n.At(k, c)
			}
			dst[c*4+r] = sum
		}
	}
	return dst
}

func (m M4) Translate(tx, ty, tz float32) M4 { return m.Multiply(Translation(tx, ty, tz)) }
func (m M4) Scale(sx, sy, sz float32) M4     { return m.Multiply(Scaling(sx, sy, sz)) }
func (m M4) RotateX(radians float32) M4      { return m.Multiply(RotationX(radians)) }
func (m M4) RotateY(radians float32) M4      { return m.Multiply(RotationY(radians)) }
func (m M4) RotateZ(radians float32) M4      { return m.Multiply(RotationZ(radians)) }

// MulV4 transforms the column vector v.
func (m M4) MulV4(v vmath.V4) vmath.V4 {
	in := v.Slice()
	var out [4]float32
	for r := 0; r < 4; r++ {
		for k := 0; k < 4; k++ {
			out[r] += m.At(r, k) * in[k]
		}
	}
	return vmath.NewV4(out[0], out[1], out[2], out[3])
}

// MulPoint transforms p with w = 1 and divides by the resulting w.
func (m M4) MulPoint(p vmath.V3) vmath.V3 {
	v := m.MulV4(p.V4(1))
	return v.XYZ().Scale(1 / v.W)
}

func (m M4) String() string {
	var sb strings.Builder
	for r := 0; r < 4; r++ {
		if r > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "[%g %g %g %g]", m.At(r, 0), m.At(r, 1), m.At(r, 2), m.At(r, 3))
	}
	return sb.String()
}
