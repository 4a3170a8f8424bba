//go:build js && wasm

// Package indexbuffer draws a square from four vertices, with an index buffer
// naming the corners of its two triangles.
package indexbuffer

import (
	"log"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/hulkholden/webgpu-lessons/client/engine"
	"github.com/hulkholden/webgpu-lessons/common/gpu"
)

func Run(env engine.Env) error {
	device := env.GPU
	vertices, err := device.CreateBufferInit("quad vertices", wgpu.BufferUsageVertex, gpu.SliceBytes(quadVertices))
	if err != nil {
		return err
	}
	indices, err := device.CreateBufferInit("quad indices", wgpu.BufferUsageIndex, gpu.SliceBytes(quadIndices))
	if err != nil {
		return err
	}

	module, err := env.CompileShader("indexbuffer shader", shaderCode)
	if err != nil {
		return err
	}
	pipeline, err := env.CreatePipeline("indexbuffer pipeline", module, wgpu.VertexBufferLayout{
		ArrayStride: 8,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{Format: wgpu.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
		},
	})
	if err != nil {
		return err
	}

	engine.InitRenderCallback(func() {
		pass, err := env.BeginPass("indexbuffer pass", engine.Background)
		if err != nil {
			log.Printf("starting frame: %v", err)
			return
		}
		pass.SetPipeline(pipeline)
		pass.SetVertexBuffer(0, vertices, 0, wgpu.WholeSize)
		pass.SetIndexBuffer(indices, wgpu.IndexFormatUint32, 0, wgpu.WholeSize)
		pass.DrawIndexed(uint32(len(quadIndices)), 1, 0, 0, 0)
		if err := env.EndPass(pass); err != nil {
			log.Printf("ending frame: %v", err)
		}
	})
	return nil
}
