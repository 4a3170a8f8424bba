// Package mipmap fills the mip chain of a texture on the GPU.
//
// Each level is rendered from the previous one with a fullscreen quad whose
// fragment shader samples the source level through a linear filtering sampler.
// The quad's V coordinate is flipped because clip space Y points up while
// texture V points down; without the flip every level would be upside down.
// The shader module, sampler and one pipeline per output format are cached on
// the device; the per-level views and bind groups are cached on the texture.
// None of this state is safe for concurrent use.
package mipmap

import "fmt"

// Generate renders levels 1..N-1 of texture from level 0 and submits the work
// as a single command buffer. Textures with a single level are left untouched.
func Generate(device Device, texture Texture) error {
	if texture.MipLevelCount() <= 1 {
		return nil
	}

	entry, err := CachedEntry(device, texture)
	if err != nil {
		return err
	}

	encoder, err := device.CreateCommandEncoder("mipmap generator encoder")
	if err != nil {
		return fmt.Errorf("creating command encoder: %w", err)
	}
	attachment := &entry.pass.ColorAttachments[0]
	for level := 1; level < entry.MipLevelCount; level++ {
		attachment.View = entry.Views[level]

		pass := encoder.BeginRenderPass(&entry.pass)
		pass.SetPipeline(entry.Pipeline)
		pass.SetBindGroup(0, entry.BindGroups[level])
		pass.Draw(verticesPerPass)
		pass.End()
	}
	attachment.View = nil

	commandBuffer, err := encoder.Finish()
	if err != nil {
		return fmt.Errorf("finishing command encoder: %w", err)
	}
	if err := device.Submit(commandBuffer); err != nil {
		return fmt.Errorf("submitting mipmap passes: %w", err)
	}
	return nil
}
