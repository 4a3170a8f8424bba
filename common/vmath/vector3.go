package vmath

import (
	"fmt"

	"github.com/hulkholden/webgpu-lessons/common/math32"
)

// normalizeCutoff is the length below which Normalize returns the zero vector.
const normalizeCutoff = 1e-5

type V3 struct {
	X, Y, Z float32
}

func NewV3(x, y, z float32) V3 { return V3{X: x, Y: y, Z: z} }

func (v V3) String() string {
	return fmt.Sprintf("{%f, %f, %f}", v.X, v.Y, v.Z)
}

func (v V3) Add(w V3) V3        { return V3{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z} }
func (v V3) Sub(w V3) V3        { return V3{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z} }
func (v V3) Negate() V3         { return V3{X: -v.X, Y: -v.Y, Z: -v.Z} }
func (v V3) Scale(s float32) V3 { return V3{X: v.X * s, Y: v.Y * s, Z: v.Z * s} }
func (v V3) Dot(w V3) float32   { return v.X*w.X + v.Y*w.Y + v.Z*w.Z }
func (v V3) LengthSq() float32  { return v.Dot(v) }
func (v V3) Length() float32    { return math32.Sqrt(v.LengthSq()) }

func (v V3) Cross(w V3) V3 {
	return V3{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Normalize returns v scaled to unit length, or the zero vector if v is too
// short to have a meaningful direction.
func (v V3) Normalize() V3 {
	l := v.Length()
	if l <= normalizeCutoff {
		return V3{}
	}
	return v.Scale(1 / l)
}

// V4 returns v extended with w.
func (v V3) V4(w float32) V4 { return V4{X: v.X, Y: v.Y, Z: v.Z, W: w} }
