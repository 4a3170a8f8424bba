//go:build js && wasm

// Package triangle draws a triangle whose vertex colors are interpolated
// across its surface.
package triangle

import (
	"github.com/hulkholden/webgpu-lessons/client/engine"
	"github.com/mokiat/gog/opt"
	"github.com/mokiat/wasmgpu"
)

func Run(env engine.Env) error {
	device := env.Device
	module := engine.InitShaderModule(device, shaderCode, nil)
	pipeline := device.CreateRenderPipeline(wasmgpu.GPURenderPipelineDescriptor{
		Vertex: wasmgpu.GPUVertexState{
			Module:     module,
			EntryPoint: "vs",
		},
		Fragment: opt.V(wasmgpu.GPUFragmentState{
			Module:     module,
			EntryPoint: "fs",
			Targets: []wasmgpu.GPUColorTargetState{
				{Format: engine.PresentationFormat},
			},
		}),
		Primitive: opt.V(wasmgpu.GPUPrimitiveState{
			Topology: opt.V(wasmgpu.GPUPrimitiveTopologyTriangleList),
		}),
	})

	canvas := engine.NewCanvas(device, env.Context, wasmgpu.GPUColor{R: 0.3, G: 0.3, B: 0.3, A: 1.0})
	engine.InitRenderCallback(func() {
		frame := canvas.BeginFrame()
		frame.Pass.SetPipeline(pipeline)
		frame.Pass.Draw(3, opt.Unspecified[wasmgpu.GPUSize32](), opt.Unspecified[wasmgpu.GPUSize32](), opt.Unspecified[wasmgpu.GPUSize32]())
		canvas.EndFrame(frame)
	})
	return nil
}
