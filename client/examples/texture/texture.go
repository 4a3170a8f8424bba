//go:build js && wasm

// Package texture samples a tiny texture, built from bytes, across a quad.
package texture

import (
	"fmt"
	"log"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/hulkholden/webgpu-lessons/client/engine"
	"github.com/hulkholden/webgpu-lessons/common/mipmap"
)

func Run(env engine.Env) error {
	device := env.GPU
	img := letterImage()
	tex, err := device.CreateTexture("letter F", img.Rect.Dx(), img.Rect.Dy(), 1, mipmap.TextureFormatRGBA8Unorm)
	if err != nil {
		return err
	}
	if err := tex.Upload(img); err != nil {
		return fmt.Errorf("uploading texture: %w", err)
	}
	view, err := tex.View("letter F view")
	if err != nil {
		return fmt.Errorf("creating texture view: %w", err)
	}
	sampler, err := device.WGPU().CreateSampler(&wgpu.SamplerDescriptor{
		Label:         "letter F sampler",
		AddressModeU:  wgpu.AddressModeRepeat,
		AddressModeV:  wgpu.AddressModeRepeat,
		AddressModeW:  wgpu.AddressModeRepeat,
		MagFilter:     wgpu.FilterModeLinear,
		MinFilter:     wgpu.FilterModeNearest,
		MipmapFilter:  wgpu.MipmapFilterModeNearest,
		LodMaxClamp:   32,
		MaxAnisotropy: 1,
	})
	if err != nil {
		return fmt.Errorf("creating sampler: %w", err)
	}

	module, err := env.CompileShader("texture shader", shaderCode)
	if err != nil {
		return err
	}
	pipeline, err := env.CreatePipeline("texture pipeline", module)
	if err != nil {
		return err
	}
	bindGroup, err := env.CreateBindGroup("texture bind group", pipeline,
		wgpu.BindGroupEntry{Binding: 0, Sampler: sampler},
		wgpu.BindGroupEntry{Binding: 1, TextureView: view},
	)
	if err != nil {
		return err
	}

	engine.InitRenderCallback(func() {
		pass, err := env.BeginPass("texture pass", engine.Background)
		if err != nil {
			log.Printf("starting frame: %v", err)
			return
		}
		pass.SetPipeline(pipeline)
		pass.SetBindGroup(0, bindGroup, nil)
		pass.Draw(6, 1, 0, 0)
		if err := env.EndPass(pass); err != nil {
			log.Printf("ending frame: %v", err)
		}
	})
	return nil
}
