package vmath

import "fmt"

type V4 struct {
	X, Y, Z, W float32
}

func NewV4(x, y, z, w float32) V4 { return V4{X: x, Y: y, Z: z, W: w} }

func (v V4) String() string {
	return fmt.Sprintf("{%f, %f, %f, %f}", v.X, v.Y, v.Z, v.W)
}

func (v V4) Add(w V4) V4        { return V4{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z, W: v.W + w.W} }
func (v V4) Scale(s float32) V4 { return V4{X: v.X * s, Y: v.Y * s, Z: v.Z * s, W: v.W * s} }
func (v V4) Dot(w V4) float32   { return v.X*w.X + v.Y*w.Y + v.Z*w.Z + v.W*w.W }
func (v V4) XYZ() V3            { return V3{X: v.X, Y: v.Y, Z: v.Z} }

// Slice returns the components in memory order.
func (v V4) Slice() [4]float32 { return [4]float32{v.X, v.Y, v.Z, v.W} }
