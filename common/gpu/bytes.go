package gpu

import (
	"runtime"
	"unsafe"
)

// SliceBytes reinterprets data as a []byte for buffer uploads. T must have
// the memory layout the shader expects.
// See https://github.com/golang/go/issues/32402.
func SliceBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	bytePtr := (*byte)(unsafe.Pointer(&data[0]))
	byteLen := len(data) * int(unsafe.Sizeof(zero))
	bytes := unsafe.Slice(bytePtr, byteLen)
	runtime.KeepAlive(data)
	return bytes
}

// StructBytes reinterprets *data as a []byte.
func StructBytes[T any](data *T) []byte {
	bytePtr := (*byte)(unsafe.Pointer(data))
	byteLen := unsafe.Sizeof(*data)
	return unsafe.Slice(bytePtr, byteLen)
}
