//go:build js && wasm

package browser

import (
	"syscall/js"

	"github.com/cogentcore/webgpu/wgpu"
)

// Format is the format the bootstrap script configures the canvas with.
const Format = wgpu.TextureFormatBGRA8Unorm

// Canvas is the page's canvas element and its WebGPU context.
type Canvas struct {
	element js.Value
	context wgpu.CanvasContext
}

// CurrentCanvas returns the canvas context configured by the bootstrap script.
func CurrentCanvas() *Canvas {
	context := js.Global().Call("getContext")
	return &Canvas{
		element: context.Get("canvas"),
		context: wgpu.NewCanvasContext(context),
	}
}

func (c *Canvas) Size() (int, int) {
	return c.element.Get("width").Int(), c.element.Get("height").Int()
}

// CurrentTextureView returns a view of the texture to draw the next frame
// into.
func (c *Canvas) CurrentTextureView() (*wgpu.TextureView, error) {
	return c.context.GetCurrentTexture().CreateView(nil)
}
