//go:build js && wasm

// Package orthographic tumbles a solid letter F under an orthographic
// projection, drawn from a uint16 index buffer.
package orthographic

import (
	"log"
	"math/rand"
	"time"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/hulkholden/webgpu-lessons/client/engine"
	"github.com/hulkholden/webgpu-lessons/common/gpu"
	"github.com/hulkholden/webgpu-lessons/common/math32"
	"github.com/hulkholden/webgpu-lessons/common/vmath"
)

var channelRange = math32.UniformRangedValue{Min: 0.2, Max: 1}

func Run(env engine.Env) error {
	device := env.GPU
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	vertices, err := device.CreateBufferInit("F vertices", wgpu.BufferUsageVertex, gpu.SliceBytes(letterPositions))
	if err != nil {
		return err
	}
	indices, err := device.CreateBufferInit("F indices", wgpu.BufferUsageIndex, gpu.SliceBytes(letterIndices))
	if err != nil {
		return err
	}
	u := uniforms{
		color:  vmath.NewV4(channelRange.Get(r), channelRange.Get(r), channelRange.Get(r), 1),
		matrix: modelViewProjection(env.Aspect(), animatedPose(0)),
	}
	uniformBuffer, err := device.CreateBufferInit("F uniforms", wgpu.BufferUsageUniform, gpu.StructBytes(&u))
	if err != nil {
		return err
	}

	module, err := env.CompileShader("orthographic shader", shaderCode, uniformsStruct)
	if err != nil {
		return err
	}
	pipeline, err := env.CreatePipeline("orthographic pipeline", module, wgpu.VertexBufferLayout{
		ArrayStride: 12,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
		},
	})
	if err != nil {
		return err
	}
	bindGroup, err := env.CreateBindGroup("orthographic bind group", pipeline, engine.BufferEntry(0, uniformBuffer))
	if err != nil {
		return err
	}

	start := time.Now()
	engine.InitRenderCallback(func() {
		u.matrix = modelViewProjection(env.Aspect(), animatedPose(float32(time.Since(start).Seconds())))
		if err := device.WriteBuffer(uniformBuffer, gpu.StructBytes(&u)); err != nil {
			log.Printf("updating uniforms: %v", err)
			return
		}

		pass, err := env.BeginPass("orthographic pass", engine.Background)
		if err != nil {
			log.Printf("starting frame: %v", err)
			return
		}
		pass.SetPipeline(pipeline)
		pass.SetBindGroup(0, bindGroup, nil)
		pass.SetVertexBuffer(0, vertices, 0, wgpu.WholeSize)
		pass.SetIndexBuffer(indices, wgpu.IndexFormatUint16, 0, wgpu.WholeSize)
		pass.DrawIndexed(uint32(len(letterIndices)), 1, 0, 0, 0)
		if err := env.EndPass(pass); err != nil {
			log.Printf("ending frame: %v", err)
		}
	})
	return nil
}
