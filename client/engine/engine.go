//go:build js && wasm

// Package engine holds the buffer, shader and frame helpers shared by the
// lessons, over both the wasmgpu and the cogentcore/webgpu bindings.
package engine

import (
	"fmt"
	"io"
	"net/http"
	"syscall/js"

	"github.com/hulkholden/webgpu-lessons/client/browser"
	"github.com/hulkholden/webgpu-lessons/common/wgsltypes"
	"github.com/mokiat/wasmgpu"
)

// InitRenderCallback calls update once per animation frame, forever.
func InitRenderCallback(update func()) {
	var frame js.Func
	frame = js.FuncOf(func(this js.Value, args []js.Value) any {
		update()
		browser.Window().RequestAnimationFrame(frame)
		return nil
	})
	browser.Window().RequestAnimationFrame(frame)
}

func LoadShaderModule(device wasmgpu.GPUDevice, url string, structs []wgsltypes.Struct) (wasmgpu.GPUShaderModule, error) {
	bytes, err := loadFile(url)
	if err != nil {
		return wasmgpu.GPUShaderModule{}, fmt.Errorf("loading shader: %w", err)
	}
	return InitShaderModule(device, string(bytes), structs), nil
}

// InitShaderModule compiles code with the WGSL definitions of structs
// prepended to it.
func InitShaderModule(device wasmgpu.GPUDevice, code string, structs []wgsltypes.Struct) wasmgpu.GPUShaderModule {
	return device.CreateShaderModule(wasmgpu.GPUShaderModuleDescriptor{
		Code: wgsltypes.Prologue(structs...) + code,
	})
}

func loadFile(url string) ([]byte, error) {
	res, err := http.DefaultClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("get failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 300 {
		return nil, fmt.Errorf("request failed: %q", res.Status)
	}

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	return data, nil
}
