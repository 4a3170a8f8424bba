//go:build js && wasm

package engine

import (
	"syscall/js"

	"github.com/hulkholden/webgpu-lessons/common/gpu"
	"github.com/mokiat/gog/opt"
	"github.com/mokiat/wasmgpu"
)

// GPUBuffer is a GPU buffer holding one T or a slice of T.
type GPUBuffer[T any] struct {
	device wasmgpu.GPUDevice
	buffer wasmgpu.GPUBuffer
	size   int
}

func (b GPUBuffer[T]) Buffer() wasmgpu.GPUBuffer {
	return b.buffer
}

func (b GPUBuffer[T]) BufferSize() wasmgpu.GPUSize64 {
	return wasmgpu.GPUSize64(b.size)
}

// Binding returns the buffer as a bind group resource.
func (b GPUBuffer[T]) Binding() wasmgpu.GPUBufferBinding {
	return wasmgpu.GPUBufferBinding{Buffer: b.buffer}
}

// UpdateBuffer writes raw bytes at the start of the buffer. The buffer needs
// CopyDst usage.
func (b GPUBuffer[T]) UpdateBuffer(bytes []byte) {
	b.device.Queue().WriteBuffer(b.buffer, 0, bytes)
}

// UpdateBufferStruct replaces the contents of a single value buffer.
func (b GPUBuffer[T]) UpdateBufferStruct(value T) {
	b.UpdateBuffer(gpu.StructBytes(&value))
}

// UpdateBufferSlice replaces the leading elements of a slice buffer.
func (b GPUBuffer[T]) UpdateBufferSlice(values []T) {
	b.UpdateBuffer(gpu.SliceBytes(values))
}

func initBuffer(device wasmgpu.GPUDevice, usage wasmgpu.GPUBufferUsageFlags, data []byte, opts ...BufferOption) wasmgpu.GPUBuffer {
	desc := wasmgpu.GPUBufferDescriptor{
		Size:             wasmgpu.GPUSize64(len(data)),
		Usage:            usage,
		MappedAtCreation: opt.V(true),
	}
	for _, opt := range opts {
		opt(&desc)
	}
	buffer := device.CreateBuffer(desc)
	js.CopyBytesToJS(uint8ArrayCtor.New(buffer.GetMappedRange(0, 0)), data)
	buffer.Unmap()
	return buffer
}

func newBuffer[T any](device wasmgpu.GPUDevice, usage wasmgpu.GPUBufferUsageFlags, data []byte, opts ...BufferOption) GPUBuffer[T] {
	return GPUBuffer[T]{
		device: device,
		buffer: initBuffer(device, usage, data, opts...),
		size:   len(data),
	}
}

func InitStorageBufferSlice[T any](device wasmgpu.GPUDevice, values []T, opts ...BufferOption) GPUBuffer[T] {
	return newBuffer[T](device, wasmgpu.GPUBufferUsageFlagsStorage, gpu.SliceBytes(values), opts...)
}

func InitVertexBufferSlice[T any](device wasmgpu.GPUDevice, values []T, opts ...BufferOption) GPUBuffer[T] {
	return newBuffer[T](device, wasmgpu.GPUBufferUsageFlagsVertex, gpu.SliceBytes(values), opts...)
}

func InitUniformBuffer[T any](device wasmgpu.GPUDevice, value T, opts ...BufferOption) GPUBuffer[T] {
	return newBuffer[T](device, wasmgpu.GPUBufferUsageFlagsUniform, gpu.StructBytes(&value), opts...)
}
