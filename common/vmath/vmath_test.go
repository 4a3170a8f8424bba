package vmath

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/hulkholden/webgpu-lessons/common/math32"
)

var approx = cmpopts.EquateApprox(0, 1e-5)

func TestV2(t *testing.T) {
	tests := []struct {
		name string
		got  V2
		want V2
	}{
		{name: "add", got: NewV2(1, 2).Add(NewV2(3, 4)), want: NewV2(4, 6)},
		{name: "sub", got: NewV2(5, 7).Sub(NewV2(3, 4)), want: NewV2(2, 3)},
		{name: "scale", got: NewV2(3, 4).Scale(2), want: NewV2(6, 8)},
		{name: "mul", got: NewV2(3, 4).Mul(NewV2(2, -1)), want: NewV2(6, -4)},
		{name: "lerp half", got: NewV2(0, 0).Lerp(NewV2(10, 20), 0.5), want: NewV2(5, 10)},
		{name: "rotate quarter", got: NewV2(1, 0).Rotate(math32.HalfPi), want: NewV2(0, 1)},
		{name: "rotate half", got: NewV2(1, 0).Rotate(math32.Pi), want: NewV2(-1, 0)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, tc.got, approx); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if got := NewV2(2, 3).Dot(NewV2(4, 5)); got != 23 {
		t.Errorf("Dot() = %v, want 23", got)
	}
	if got := NewV2(3, 4).Length(); got != 5 {
		t.Errorf("Length() = %v, want 5", got)
	}
}

func TestV3Cross(t *testing.T) {
	tests := []struct {
		name string
		v, w V3
		want V3
	}{
		{name: "x cross y", v: NewV3(1, 0, 0), w: NewV3(0, 1, 0), want: NewV3(0, 0, 1)},
		{name: "y cross x", v: NewV3(0, 1, 0), w: NewV3(1, 0, 0), want: NewV3(0, 0, -1)},
		{name: "y cross z", v: NewV3(0, 1, 0), w: NewV3(0, 0, 1), want: NewV3(1, 0, 0)},
		{name: "parallel", v: NewV3(1, 2, 3), w: NewV3(2, 4, 6), want: NewV3(0, 0, 0)},
		{name: "general", v: NewV3(1, 2, 3), w: NewV3(4, 5, 6), want: NewV3(-3, 6, -3)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.v.Cross(tc.w)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("(%v).Cross(%v) mismatch (-want +got):\n%s", tc.v, tc.w, diff)
			}
			if d := got.Dot(tc.v); d != 0 {
				t.Errorf("cross product is not perpendicular to v: dot = %v", d)
			}
		})
	}
}

func TestV3Dot(t *testing.T) {
	if got := NewV3(1, 2, 3).Dot(NewV3(4, -5, 6)); got != 12 {
		t.Errorf("Dot() = %v, want 12", got)
	}
	if got := NewV3(2, 3, 6).Length(); got != 7 {
		t.Errorf("Length() = %v, want 7", got)
	}
}

func TestV3Normalize(t *testing.T) {
	tests := []struct {
		name string
		v    V3
		want V3
	}{
		{name: "axis", v: NewV3(0, 0, -5), want: NewV3(0, 0, -1)},
		{name: "general", v: NewV3(2, 3, 6), want: NewV3(2./7, 3./7, 6./7)},
		{name: "zero", v: V3{}, want: V3{}},
		{name: "below cutoff", v: NewV3(1e-6, 0, 0), want: V3{}},
		{name: "above cutoff", v: NewV3(1e-4, 0, 0), want: NewV3(1, 0, 0)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, tc.v.Normalize(), approx); diff != "" {
				t.Errorf("(%v).Normalize() mismatch (-want +got):\n%s", tc.v, diff)
			}
		})
	}
}

func TestV4(t *testing.T) {
	v := NewV3(1, 2, 3).V4(1)
	if diff := cmp.Diff(NewV4(1, 2, 3, 1), v); diff != "" {
		t.Errorf("V4() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(NewV3(1, 2, 3), v.XYZ()); diff != "" {
		t.Errorf("XYZ() mismatch (-want +got):\n%s", diff)
	}
	if got := v.Dot(NewV4(1, 1, 1, 1)); got != 7 {
		t.Errorf("Dot() = %v, want 7", got)
	}
	if diff := cmp.Diff([4]float32{2, 4, 6, 2}, v.Scale(2).Slice()); diff != "" {
		t.Errorf("Scale().Slice() mismatch (-want +got):\n%s", diff)
	}
	if got, want := NewV4(1, 0, 0, 0).Add(NewV4(0, 1, 0, 0)), NewV4(1, 1, 0, 0); got != want {
		t.Errorf("Add() = %v, want %v", got, want)
	}
}
