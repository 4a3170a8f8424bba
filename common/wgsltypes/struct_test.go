package wgsltypes

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hulkholden/webgpu-lessons/common/mat3"
	"github.com/hulkholden/webgpu-lessons/common/mat4"
	"github.com/hulkholden/webgpu-lessons/common/vmath"
)

type testStruct struct {
	vec4 vmath.V4

	vec3 vmath.V3
	pad0 uint32

	vec2 vmath.V2

	f32Val    float32
	int32Val  int32
	uint32Val uint32
}

func TestNewStruct(t *testing.T) {
	got, err := NewStruct[testStruct]("testStruct")
	if err != nil {
		t.Fatalf("NewStruct() = %v, want nil error", err)
	}
	want := Struct{
		Name:     "testStruct",
		Size:     52,
		WGSLSize: 64,
		Fields: []string{
			"vec4",
			"vec3",
			"pad0",
			"vec2",
			"f32Val",
			"int32Val",
			"uint32Val",
		},
		FieldMap: map[string]Field{
			"vec4": {
				Name:     "vec4",
				Offset:   0,
				WGSLType: Type{Name: "vec4<f32>", AlignOf: 16, SizeOf: 16},
			},
			"vec3": {
				Name:     "vec3",
				Offset:   16,
				WGSLType: Type{Name: "vec3<f32>", AlignOf: 16, SizeOf: 12},
			},
			"pad0": {
				Name:     "pad0",
				Offset:   28,
				WGSLType: Type{Name: "u32", AlignOf: 4, SizeOf: 4},
			},
			"vec2": {
				Name:     "vec2",
				Offset:   32,
				WGSLType: Type{Name: "vec2<f32>", AlignOf: 8, SizeOf: 8},
			},
			"f32Val": {
				Name:     "f32Val",
				Offset:   40,
				WGSLType: Type{Name: "f32", AlignOf: 4, SizeOf: 4},
			},
			"int32Val": {
				Name:     "int32Val",
				Offset:   44,
				WGSLType: Type{Name: "i32", AlignOf: 4, SizeOf: 4},
			},
			"uint32Val": {
				Name:     "uint32Val",
				Offset:   48,
				WGSLType: Type{Name: "u32", AlignOf: 4, SizeOf: 4},
			},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NewStruct() mismatch (-want +got):\n%s", diff)
	}
}

func TestToWGSL(t *testing.T) {
	s, err := NewStruct[testStruct]("testStruct")
	if err != nil {
		t.Fatalf("NewStruct() failed unexpectedly: %v", err)
	}

	got := s.ToWGSL()
	want := `struct testStruct {
  vec4 : vec4<f32>,
  vec3 : vec3<f32>,
  pad0 : u32,
  vec2 : vec2<f32>,
  f32Val : f32,
  int32Val : i32,
  uint32Val : u32,
}
`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("diff mismatch (-want +got):\n%s", diff)
	}
}

type uniforms struct {
	Matrix mat4.M4
	Color  vmath.V4
	Scale  float32
}

func TestMustRegisterStruct(t *testing.T) {
	s := MustRegisterStruct[uniforms]()
	if got, want := s.Name, "uniforms"; got != want {
		t.Errorf("Name = %q, want %q", got, want)
	}
	if got, want := s.MustOffsetOf("Color"), 64; got != want {
		t.Errorf("MustOffsetOf(Color) = %d, want %d", got, want)
	}
	if got, want := s.WGSLSize, 96; got != want {
		t.Errorf("WGSLSize = %d, want %d", got, want)
	}
}

type transform2D struct {
	Color      vmath.V4
	Resolution vmath.V2
	pad0, pad1 float32
	Matrix     mat3.M3
}

func TestMat3Field(t *testing.T) {
	s := MustRegisterStruct[transform2D]()
	if got, want := s.MustOffsetOf("Matrix"), 32; got != want {
		t.Errorf("MustOffsetOf(Matrix) = %d, want %d", got, want)
	}
	if got, want := s.WGSLSize, 80; got != want {
		t.Errorf("WGSLSize = %d, want %d", got, want)
	}
}

func TestNewStructErrors(t *testing.T) {
	type misaligned struct {
		F float32
		V vmath.V2
	}
	type unsupported struct {
		F float64
	}

	if _, err := NewStruct[misaligned]("misaligned"); err == nil {
		t.Errorf("NewStruct[misaligned]() = nil error, want alignment error")
	}
	if _, err := NewStruct[unsupported]("unsupported"); err == nil {
		t.Errorf("NewStruct[unsupported]() = nil error, want type error")
	}
	if _, err := NewStruct[int32]("int32"); err == nil {
		t.Errorf("NewStruct[int32]() = nil error, want error for non-struct type")
	}
}

func TestPrologue(t *testing.T) {
	type a struct{ X float32 }
	type b struct{ Y vmath.V4 }

	got := Prologue(MustNewStruct[a]("A"), MustNewStruct[b]("B"))
	want := `struct A {
  X : f32,
}

struct B {
  Y : vec4<f32>,
}

`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Prologue() mismatch (-want +got):\n%s", diff)
	}
}
