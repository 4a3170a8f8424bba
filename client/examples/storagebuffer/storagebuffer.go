//go:build js && wasm

// Package storagebuffer draws many instances of one triangle, reading the
// per-instance data from storage buffers.
package storagebuffer

import (
	"math/rand"
	"time"

	"github.com/hulkholden/webgpu-lessons/client/engine"
	"github.com/mokiat/gog/opt"
	"github.com/mokiat/wasmgpu"
)

func Run(env engine.Env) error {
	device := env.Device
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	statics, baseScales, err := newObjects(r, numObjects)
	if err != nil {
		return err
	}
	aspect := env.Aspect()
	staticBuffer := engine.InitStorageBufferSlice(device, statics)
	scaleBuffer := engine.InitStorageBufferSlice(device, aspectScales(baseScales, aspect), engine.WithCopyDstUsage())
	vertexBuffer := engine.InitStorageBufferSlice(device, triangle)

	module := engine.InitShaderModule(device, shaderCode, structDefinitions)
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
	bindGroup := device.CreateBindGroup(wasmgpu.GPUBindGroupDescriptor{
		Layout: pipeline.GetBindGroupLayout(0),
		Entries: engine.MakeGPUBindingGroupEntries(
			staticBuffer.Binding(),
			scaleBuffer.Binding(),
			vertexBuffer.Binding(),
		),
	})

	canvas := engine.NewCanvas(device, env.Context, wasmgpu.GPUColor{R: 0.3, G: 0.3, B: 0.3, A: 1.0})
	engine.InitRenderCallback(func() {
		if a := env.Aspect(); a != aspect {
			aspect = a
			scaleBuffer.UpdateBufferSlice(aspectScales(baseScales, aspect))
		}
		frame := canvas.BeginFrame()
		frame.Pass.SetPipeline(pipeline)
		frame.Pass.SetBindGroup(0, bindGroup, nil)
		frame.Pass.Draw(3, opt.V(wasmgpu.GPUSize32(numObjects)), opt.Unspecified[wasmgpu.GPUSize32](), opt.Unspecified[wasmgpu.GPUSize32]())
		canvas.EndFrame(frame)
	})
	return nil
}
