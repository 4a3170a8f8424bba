//go:build js && wasm

package engine

import (
	"github.com/mokiat/gog/opt"
	"github.com/mokiat/wasmgpu"
)

// PresentationFormat is the format the bootstrap script configures the
// canvas with.
const PresentationFormat = wasmgpu.GPUTextureFormatBGRA8Unorm

// Canvas renders frames into the page's canvas, one render pass per frame.
type Canvas struct {
	device  wasmgpu.GPUDevice
	context wasmgpu.GPUCanvasContext

	renderPassDescriptor wasmgpu.GPURenderPassDescriptor
}

// Frame is the encoder and render pass of a frame in progress.
type Frame struct {
	Encoder wasmgpu.GPUCommandEncoder
	Pass    wasmgpu.GPURenderPassEncoder
}

func NewCanvas(device wasmgpu.GPUDevice, context wasmgpu.GPUCanvasContext, clear wasmgpu.GPUColor) *Canvas {
	return &Canvas{
		device:  device,
		context: context,
		renderPassDescriptor: wasmgpu.GPURenderPassDescriptor{
			ColorAttachments: []wasmgpu.GPURenderPassColorAttachment{
				{
					ClearValue: opt.V(clear),
					LoadOp:     wasmgpu.GPULoadOpClear,
					StoreOp:    wasmgpu.GPUStoreOPStore,
				},
			},
		},
	}
}

// BeginFrame starts a render pass that clears the current canvas texture.
func (c *Canvas) BeginFrame() Frame {
	c.renderPassDescriptor.ColorAttachments[0].View = c.context.GetCurrentTexture().CreateView()
	encoder := c.device.CreateCommandEncoder()
	return Frame{
		Encoder: encoder,
		Pass:    encoder.BeginRenderPass(c.renderPassDescriptor),
	}
}

// EndFrame ends the pass and submits the frame.
func (c *Canvas) EndFrame(f Frame) {
	f.Pass.End()
	c.device.Queue().Submit([]wasmgpu.GPUCommandBuffer{
		f.Encoder.Finish(),
	})
}
