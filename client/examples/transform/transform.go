//go:build js && wasm

// Package transform spins and scales a flat letter F with 3x3 matrices,
// positioned in pixels.
package transform

import (
	"log"
	"time"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/hulkholden/webgpu-lessons/client/engine"
	"github.com/hulkholden/webgpu-lessons/common/gpu"
	"github.com/hulkholden/webgpu-lessons/common/vmath"
)

func Run(env engine.Env) error {
	device := env.GPU
	vertices, err := device.CreateBufferInit("F vertices", wgpu.BufferUsageVertex, gpu.SliceBytes(letterVertices))
	if err != nil {
		return err
	}
	indices, err := device.CreateBufferInit("F indices", wgpu.BufferUsageIndex, gpu.SliceBytes(letterIndices))
	if err != nil {
		return err
	}
	u := uniforms{color: vmath.NewV4(0.95, 0.55, 0.2, 1)}
	update := func(seconds float32) {
		w, h := env.Canvas.Size()
		u.resolution = vmath.NewV2(float32(w), float32(h))
		u.matrix = animatedPlacement(seconds, w, h).matrix()
	}
	update(0)
	uniformBuffer, err := device.CreateBufferInit("F uniforms", wgpu.BufferUsageUniform, gpu.StructBytes(&u))
	if err != nil {
		return err
	}

	module, err := env.CompileShader("transform shader", shaderCode, uniformsStruct)
	if err != nil {
		return err
	}
	pipeline, err := env.CreatePipeline("transform pipeline", module, wgpu.VertexBufferLayout{
		ArrayStride: 8,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{Format: wgpu.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
		},
	})
	if err != nil {
		return err
	}
	bindGroup, err := env.CreateBindGroup("transform bind group", pipeline, engine.BufferEntry(0, uniformBuffer))
	if err != nil {
		return err
	}

	start := time.Now()
	engine.InitRenderCallback(func() {
		update(float32(time.Since(start).Seconds()))
		if err := device.WriteBuffer(uniformBuffer, gpu.StructBytes(&u)); err != nil {
			log.Printf("updating uniforms: %v", err)
			return
		}

		pass, err := env.BeginPass("transform pass", engine.Background)
		if err != nil {
			log.Printf("starting frame: %v", err)
			return
		}
		pass.SetPipeline(pipeline)
		pass.SetBindGroup(0, bindGroup, nil)
		pass.SetVertexBuffer(0, vertices, 0, wgpu.WholeSize)
		pass.SetIndexBuffer(indices, wgpu.IndexFormatUint32, 0, wgpu.WholeSize)
		pass.DrawIndexed(uint32(len(letterIndices)), 1, 0, 0, 0)
		if err := env.EndPass(pass); err != nil {
			log.Printf("ending frame: %v", err)
		}
	})
	return nil
}
