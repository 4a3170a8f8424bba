//go:build js && wasm

package engine

import (
	"fmt"

	"github.com/hulkholden/webgpu-lessons/common/wgsltypes"
	"github.com/mokiat/gog/opt"
	"github.com/mokiat/wasmgpu"
)

var vertexFormatTypeMap = map[wgsltypes.TypeName]wasmgpu.GPUVertexFormat{
	"f32":       wasmgpu.GPUVertexFormatFloat32,
	"i32":       wasmgpu.GPUVertexFormatSint32,
	"u32":       wasmgpu.GPUVertexFormatUint32,
	"vec2<f32>": wasmgpu.GPUVertexFormatFloat32x2,
	"vec3<f32>": wasmgpu.GPUVertexFormatFloat32x3,
	"vec4<f32>": wasmgpu.GPUVertexFormatFloat32x4,
}

func makeGPUVertexAttribute(shaderLocation int, s wgsltypes.Struct, fieldName string) wasmgpu.GPUVertexAttribute {
	field, ok := s.FieldMap[fieldName]
	if !ok {
		panic(fmt.Sprintf("field %s.%s does not exist", s.Name, fieldName))
	}
	return wasmgpu.GPUVertexAttribute{
		ShaderLocation: wasmgpu.GPUIndex32(shaderLocation),
		Format:         mustFormatFromFieldType(field.WGSLType.Name),
		Offset:         wasmgpu.GPUSize64(s.MustOffsetOf(fieldName)),
	}
}

func mustFormatFromFieldType(fieldType wgsltypes.TypeName) wasmgpu.GPUVertexFormat {
	format, ok := vertexFormatTypeMap[fieldType]
	if !ok {
		panic("unhandled wgsltype: " + fieldType)
	}
	return format
}

// MakeGPUBindingGroupEntries binds resources to consecutive binding indices
// starting at 0.
func MakeGPUBindingGroupEntries(resources ...wasmgpu.GPUBindingResource) []wasmgpu.GPUBindGroupEntry {
	entries := make([]wasmgpu.GPUBindGroupEntry, len(resources))
	for idx, resource := range resources {
		entries[idx] = wasmgpu.GPUBindGroupEntry{
			Binding:  wasmgpu.GPUIndex32(idx),
			Resource: resource,
		}
	}
	return entries
}

type BufferDescriptor struct {
	Struct *wgsltypes.Struct
	// Instanced specifies whether the buffer is stepped per vertex or per instance.
	Instanced bool
}

// VertexAttribute feeds a struct field of a buffer to the shader location
// given by the attribute's position in the list.
type VertexAttribute struct {
	BufferIndex int
	FieldName   string
}

type VertexBuffers struct {
	Layout  []wasmgpu.GPUVertexBufferLayout
	Buffers []wasmgpu.GPUBuffer
}

func NewVertexBuffers(bufDefs []BufferDescriptor, vtxAttrs []VertexAttribute) *VertexBuffers {
	result := make([]wasmgpu.GPUVertexBufferLayout, len(bufDefs))
	for idx, bd := range bufDefs {
		stepMode := wasmgpu.GPUVertexStepModeVertex
		if bd.Instanced {
			stepMode = wasmgpu.GPUVertexStepModeInstance
		}
		result[idx] = wasmgpu.GPUVertexBufferLayout{
			ArrayStride: wasmgpu.GPUSize64(bd.Struct.Size),
			StepMode:    opt.V(stepMode),
		}
	}

	for idx, a := range vtxAttrs {
		if a.BufferIndex >= len(result) {
			panic(fmt.Sprintf("vertex attribute %d: buffer index %d out of bounds", idx, a.BufferIndex))
		}
		attribute := makeGPUVertexAttribute(idx, *bufDefs[a.BufferIndex].Struct, a.FieldName)
		result[a.BufferIndex].Attributes = append(result[a.BufferIndex].Attributes, attribute)
	}

	return &VertexBuffers{
		Layout:  result,
		Buffers: make([]wasmgpu.GPUBuffer, len(result)),
	}
}

func (v *VertexBuffers) Bind(passEncoder wasmgpu.GPURenderPassEncoder) {
	unspecified := opt.Unspecified[wasmgpu.GPUSize64]()
	for idx, buffer := range v.Buffers {
		passEncoder.SetVertexBuffer(wasmgpu.GPUIndex32(idx), buffer, unspecified, unspecified)
	}
}
