// Package vmath provides small float32 vectors laid out the way WGSL expects
// vec2f, vec3f and vec4f.
package vmath

import (
	"fmt"

	"github.com/hulkholden/webgpu-lessons/common/math32"
)

type V2 struct {
	X, Y float32
}

func NewV2(x, y float32) V2 { return V2{X: x, Y: y} }

func (v V2) String() string {
	return fmt.Sprintf("{%f, %f}", v.X, v.Y)
}

func (v V2) Add(w V2) V2             { return V2{X: v.X + w.X, Y: v.Y + w.Y} }
func (v V2) Sub(w V2) V2             { return V2{X: v.X - w.X, Y: v.Y - w.Y} }
func (v V2) Scale(s float32) V2      { return V2{X: v.X * s, Y: v.Y * s} }
func (v V2) Mul(w V2) V2             { return V2{X: v.X * w.X, Y: v.Y * w.Y} }
func (v V2) Dot(w V2) float32        { return v.X*w.X + v.Y*w.Y }
func (v V2) Length() float32         { return math32.Hypot(v.X, v.Y) }
func (v V2) Lerp(w V2, f float32) V2 { return v.Scale(1 - f).Add(w.Scale(f)) }

func (v V2) Rotate(a float32) V2 {
	s, c := math32.SinCos(a)
	return V2{X: c*v.X - s*v.Y, Y: s*v.X + c*v.Y}
}
