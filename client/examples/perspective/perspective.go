//go:build js && wasm

// Package perspective spins a solid letter F under a perspective projection.
package perspective

import (
	"time"

	"github.com/hulkholden/webgpu-lessons/client/engine"
	"github.com/hulkholden/webgpu-lessons/common/wgsltypes"
	"github.com/mokiat/gog/opt"
	"github.com/mokiat/wasmgpu"
)

// radiansPerSecond is the spin speed of the F.
const radiansPerSecond = 0.8

func Run(env engine.Env) error {
	device := env.Device

	vertices := fVertices()
	vertexBuffers := engine.NewVertexBuffers([]engine.BufferDescriptor{
		{Struct: &vertexStruct},
	}, []engine.VertexAttribute{
		{BufferIndex: 0, FieldName: "position"},
		{BufferIndex: 0, FieldName: "color"},
	})
	vertexBuffers.Buffers[0] = engine.InitVertexBufferSlice(device, vertices).Buffer()

	uniformBuffer := engine.InitUniformBuffer(device, uniforms{matrix: modelViewProjection(env.Aspect(), 0)}, engine.WithCopyDstUsage())

	module := engine.InitShaderModule(device, shaderCode, []wgsltypes.Struct{vertexStruct, uniformsStruct})
	pipeline := device.CreateRenderPipeline(wasmgpu.GPURenderPipelineDescriptor{
		Vertex: wasmgpu.GPUVertexState{
			Module:     module,
			EntryPoint: "vs",
			Buffers:    vertexBuffers.Layout,
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
		Layout:  pipeline.GetBindGroupLayout(0),
		Entries: engine.MakeGPUBindingGroupEntries(uniformBuffer.Binding()),
	})

	start := time.Now()
	canvas := engine.NewCanvas(device, env.Context, wasmgpu.GPUColor{R: 0.3, G: 0.3, B: 0.3, A: 1.0})
	engine.InitRenderCallback(func() {
		angle := float32(time.Since(start).Seconds()) * radiansPerSecond
		uniformBuffer.UpdateBufferStruct(uniforms{matrix: modelViewProjection(env.Aspect(), angle)})

		frame := canvas.BeginFrame()
		frame.Pass.SetPipeline(pipeline)
		frame.Pass.SetBindGroup(0, bindGroup, nil)
		vertexBuffers.Bind(frame.Pass)
		frame.Pass.Draw(wasmgpu.GPUSize32(len(vertices)), opt.Unspecified[wasmgpu.GPUSize32](), opt.Unspecified[wasmgpu.GPUSize32](), opt.Unspecified[wasmgpu.GPUSize32]())
		canvas.EndFrame(frame)
	})
	return nil
}
