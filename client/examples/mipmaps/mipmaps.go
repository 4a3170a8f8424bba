//go:build js && wasm

// Package mipmaps fills the mip chain of a texture on the GPU and draws a
// floor of tiles receding into the distance, so each row samples a smaller
// level. The base level is an animated spiral, so the chain is regenerated
// every frame, unless the page names an image to show instead.
package mipmaps

import (
	"fmt"
	"image"
	"log"
	"time"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/hulkholden/webgpu-lessons/client/browser"
	"github.com/hulkholden/webgpu-lessons/client/engine"
	"github.com/hulkholden/webgpu-lessons/common/gpu"
	"github.com/hulkholden/webgpu-lessons/common/mipchain"
	"github.com/hulkholden/webgpu-lessons/common/mipmap"
)

const textureFormat = mipmap.TextureFormatRGBA8Unorm

func Run(env engine.Env) error {
	device := env.GPU

	var (
		base   *image.RGBA
		frames *spiral
	)
	if url, ok := browser.Window().Param("getImageURL"); ok {
		img, err := engine.LoadImage(url)
		if err != nil {
			return err
		}
		base = img
	} else {
		frames = newSpiral(textureSize)
		base = frames.Draw(0)
	}

	w, h := base.Rect.Dx(), base.Rect.Dy()
	texture, err := device.CreateTexture("mipmaps texture", w, h, mipchain.NumLevels(w, h), textureFormat)
	if err != nil {
		return err
	}
	if err := texture.Upload(base); err != nil {
		return fmt.Errorf("uploading base level: %w", err)
	}
	if err := mipmap.Generate(device, texture); err != nil {
		return fmt.Errorf("generating mipmaps: %w", err)
	}

	module, err := env.CompileShader("mipmaps shader", shaderCode)
	if err != nil {
		return err
	}
	pipeline, err := env.CreatePipeline("mipmaps pipeline", module)
	if err != nil {
		return err
	}
	sampler, err := device.WGPU().CreateSampler(&wgpu.SamplerDescriptor{
		Label:         "mipmaps sampler",
		AddressModeU:  wgpu.AddressModeRepeat,
		AddressModeV:  wgpu.AddressModeRepeat,
		AddressModeW:  wgpu.AddressModeRepeat,
		MagFilter:     wgpu.FilterModeNearest,
		MinFilter:     wgpu.FilterModeLinear,
		MipmapFilter:  wgpu.MipmapFilterModeLinear,
		LodMaxClamp:   32,
		MaxAnisotropy: 1,
	})
	if err != nil {
		return fmt.Errorf("creating sampler: %w", err)
	}
	view, err := texture.View("mipmaps texture view")
	if err != nil {
		return fmt.Errorf("creating texture view: %w", err)
	}
	aspect := env.Aspect()
	matrices, err := device.CreateBufferInit("tile matrices", wgpu.BufferUsageStorage, gpu.SliceBytes(tileMatrices(aspect)))
	if err != nil {
		return err
	}
	bindGroup, err := env.CreateBindGroup("mipmaps bind group", pipeline,
		engine.BufferEntry(0, matrices),
		wgpu.BindGroupEntry{Binding: 1, Sampler: sampler},
		wgpu.BindGroupEntry{Binding: 2, TextureView: view},
	)
	if err != nil {
		return err
	}

	start := time.Now()
	engine.InitRenderCallback(func() {
		if frames != nil {
			// The views and bind groups cached on the texture are reused.
			img := frames.Draw(float32(time.Since(start).Seconds()))
			if err := texture.Upload(img); err != nil {
				log.Printf("uploading base level: %v", err)
				return
			}
			if err := mipmap.Generate(device, texture); err != nil {
				log.Printf("generating mipmaps: %v", err)
				return
			}
		}
		if a := env.Aspect(); a != aspect {
			aspect = a
			if err := device.WriteBuffer(matrices, gpu.SliceBytes(tileMatrices(aspect))); err != nil {
				log.Printf("updating tile matrices: %v", err)
			}
		}

		pass, err := env.BeginPass("mipmaps pass", engine.Background)
		if err != nil {
			log.Printf("starting frame: %v", err)
			return
		}
		pass.SetPipeline(pipeline)
		pass.SetBindGroup(0, bindGroup, nil)
		pass.Draw(6, numTiles, 0, 0)
		if err := env.EndPass(pass); err != nil {
			log.Printf("ending frame: %v", err)
		}
	})
	return nil
}
