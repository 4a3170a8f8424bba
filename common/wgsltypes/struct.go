// Package wgsltypes describes Go structs as WGSL structs so the same layout
// can be shared by buffer uploads and shader source.
package wgsltypes

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/hulkholden/webgpu-lessons/common/mat3"
	"github.com/hulkholden/webgpu-lessons/common/mat4"
	"github.com/hulkholden/webgpu-lessons/common/vmath"
)

// TypeName is the name of a WGSL type.
type TypeName string

// goToTypeMap maps Go types to WGSL types.
var goToTypeMap = map[reflect.Type]TypeName{
	reflect.TypeFor[float32](): "f32",
	reflect.TypeFor[int32]():   "i32",
	reflect.TypeFor[uint32]():  "u32",

	reflect.TypeFor[vmath.V2](): "vec2<f32>",
	reflect.TypeFor[vmath.V3](): "vec3<f32>",
	reflect.TypeFor[vmath.V4](): "vec4<f32>",
	reflect.TypeFor[mat3.M3]():  "mat3x3<f32>",
	reflect.TypeFor[mat4.M4]():  "mat4x4<f32>",
}

var typeMap = map[TypeName]Type{
	"f32":         {Name: "f32", AlignOf: 4, SizeOf: 4},
	"i32":         {Name: "i32", AlignOf: 4, SizeOf: 4},
	"u32":         {Name: "u32", AlignOf: 4, SizeOf: 4},
	"vec2<f32>":   {Name: "vec2<f32>", AlignOf: 8, SizeOf: 8},
	"vec3<f32>":   {Name: "vec3<f32>", AlignOf: 16, SizeOf: 12},
	"vec4<f32>":   {Name: "vec4<f32>", AlignOf: 16, SizeOf: 16},
	"mat3x3<f32>": {Name: "mat3x3<f32>", AlignOf: 16, SizeOf: 48},
	"mat4x4<f32>": {Name: "mat4x4<f32>", AlignOf: 16, SizeOf: 64},
}

type Type struct {
	// Name of the WGSL type.
	Name TypeName
	// Alignment of the WGSL type (see https://www.w3.org/TR/WGSL/#alignof).
	AlignOf int
	// Size of the WGSL type (see https://www.w3.org/TR/WGSL/#sizeof).
	SizeOf int
}

// A Struct provides information about a Go struct.
type Struct struct {
	// Name is the name of the struct as it appears in WGSL.
	Name string
	// Size of the Go struct, in bytes.
	Size int
	// WGSLSize is the size of the struct in WGSL, i.e. the stride of an array
	// of it. It is Size rounded up to the largest field alignment.
	WGSLSize int

	// Fields is a slice of the struct's fields, in declaration order.
	Fields []string
	// FieldMap maps field names to Fields.
	FieldMap map[string]Field
}

// A Field provides information about a particular field in a Go struct.
type Field struct {
	// Name is the name of the field in the Go struct.
	Name string

	// Offset is the offset (in bytes) of the field in the Go struct.
	Offset uintptr

	// WGSLType is the corresponding WGSL type to use.
	WGSLType Type
}

// MustRegisterStruct describes T under its Go type name. It panics if T
// cannot be expressed in WGSL, so it is meant for package level variables.
func MustRegisterStruct[T any]() Struct {
	return MustNewStruct[T](reflect.TypeFor[T]().Name())
}

func MustNewStruct[T any](name string) Struct {
	s, err := NewStruct[T](name)
	if err != nil {
		panic(fmt.Sprintf("exporting %q: %v", name, err))
	}
	return s
}

// NewStruct describes T as a WGSL struct called name. Every field must map
// to a WGSL type and sit at an offset that satisfies the WGSL alignment of
// that type; insert explicit padding fields where Go packs tighter.
func NewStruct[T any](name string) (Struct, error) {
	structType := reflect.TypeFor[T]()
	if structType.Kind() != reflect.Struct {
		return Struct{}, fmt.Errorf("provided type is not a struct")
	}

	s := Struct{
		Name:     name,
		Size:     int(structType.Size()),
		FieldMap: make(map[string]Field),
	}

	maxAlign := 1
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		wgslTypeName, ok := goToTypeMap[field.Type]
		if !ok {
			return Struct{}, fmt.Errorf("field %s: unhandled Go type: %q", field.Name, field.Type)
		}
		wgslType, ok := typeMap[wgslTypeName]
		if !ok {
			return Struct{}, fmt.Errorf("field %s: unhandled WGSL type: %q", field.Name, wgslTypeName)
		}
		if int(field.Offset)%wgslType.AlignOf != 0 {
			return Struct{}, fmt.Errorf("field %s: offset %d is not aligned to %d for %s", field.Name, field.Offset, wgslType.AlignOf, wgslType.Name)
		}
		maxAlign = max(maxAlign, wgslType.AlignOf)
		s.Fields = append(s.Fields, field.Name)
		s.FieldMap[field.Name] = Field{
			Name:     field.Name,
			Offset:   field.Offset,
			WGSLType: wgslType,
		}
	}
	s.WGSLSize = roundUp(s.Size, maxAlign)
	return s, nil
}

func roundUp(n, align int) int {
	return (n + align - 1) / align * align
}

func (s Struct) String() string {
	var output strings.Builder
	fmt.Fprintf(&output, "struct %q, size %d (%d in WGSL)\n", s.Name, s.Size, s.WGSLSize)
	for idx, fName := range s.Fields {
		f := s.FieldMap[fName]
		fmt.Fprintf(&output, "  %d: %s at offset %d\n", idx, f.Name, f.Offset)
	}
	return output.String()
}

// ToWGSL returns a string representing the Go struct as a WGSL struct definition.
func (s Struct) ToWGSL() string {
	var output strings.Builder
	fmt.Fprintf(&output, "struct %s {\n", s.Name)
	for _, fieldName := range s.Fields {
		f := s.FieldMap[fieldName]
		fmt.Fprintf(&output, "  %s : %s,\n", fieldName, f.WGSLType.Name)
	}
	output.WriteString("}\n")
	return output.String()
}

// Prologue returns the WGSL definitions of structs, to be prepended to
// shader code that refers to them.
func Prologue(structs ...Struct) string {
	var output strings.Builder
	for _, s := range structs {
		output.WriteString(s.ToWGSL())
		output.WriteString("\n")
	}
	return output.String()
}

// MustOffsetOf returns the offset of the specified field.
// Panics if the field is not found.
func (s *Struct) MustOffsetOf(fieldName string) int {
	field, ok := s.FieldMap[fieldName]
	if !ok {
		panic("unknown field: " + fieldName)
	}
	return int(field.Offset)
}
