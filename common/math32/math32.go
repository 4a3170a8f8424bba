// Package math32 provides float32 versions of the math functions the lessons
// need for building transforms.
package math32

import (
	"math"
	"math/rand"
)

const (
	Pi     = float32(math.Pi)
	TwoPi  = float32(2. * Pi)
	HalfPi = float32(Pi / 2)
)

func Abs(x float32) float32 {
	return float32(math.Abs(float64(x)))
}

func Sqrt(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

func Hypot(x, y float32) float32 {
	return float32(math.Hypot(float64(x), float64(y)))
}

func Sin(x float32) float32 {
	return float32(math.Sin(float64(x)))
}

func Cos(x float32) float32 {
	return float32(math.Cos(float64(x)))
}

func Tan(x float32) float32 {
	return float32(math.Tan(float64(x)))
}

func SinCos(x float32) (float32, float32) {
	return Sin(x), Cos(x)
}

func Atan2(y, x float32) float32 {
	return float32(math.Atan2(float64(y), float64(x)))
}

func Mod(x, y float32) float32 {
	return float32(math.Mod(float64(x), float64(y)))
}

func Min(x, y float32) float32 {
	if x < y {
		return x
	}
	return y
}

func Max(x, y float32) float32 {
	if x > y {
		return x
	}
	return y
}

func Clamp(x, min, max float32) float32 {
	return Max(Min(x, max), min)
}

func Lerp(a, b, f float32) float32 {
	return a*(1-f) + b*f
}

func RadiansFromDegrees(degrees float32) float32 {
	return (degrees * TwoPi) / 360
}

func DegreesFromRadians(radians float32) float32 {
	return (radians * 360) / TwoPi
}

// NormalizeAngle wraps an angle into the range [-Pi,+Pi].
func NormalizeAngle(a float32) float32 {
	n := Mod(a+Pi, TwoPi)
	// Mod keeps the sign of its first argument.
	if n < 0 {
		n += TwoPi
	}
	return n - Pi
}

// UniformRangedValue draws values uniformly from [Min, Max).
type UniformRangedValue struct {
	Min, Max float32
}

func (v UniformRangedValue) Get(r *rand.Rand) float32 {
	return v.Min + r.Float32()*(v.Max-v.Min)
}
