package mipmap

import (
	_ "embed"
	"fmt"
)

const (
	vertexEntryPoint   = "vs"
	fragmentEntryPoint = "fs"

	// verticesPerPass is the two triangles of the fullscreen quad.
	verticesPerPass = 6
)

//go:embed mipmap.wgsl
var shaderCode string

// ShaderCode returns the WGSL source of the downsample program.
func ShaderCode() string {
	return shaderCode
}

// DeviceCache holds the per-device generator state. Embed it in the type that
// implements Device; the zero value is ready to use.
type DeviceCache struct {
	module    ShaderModule
	sampler   Sampler
	pipelines map[TextureFormat]RenderPipeline
}

func (c *DeviceCache) deviceCache() *DeviceCache { return c }

// TextureCache holds the per-texture generator state. Embed it in the type
// that implements Texture; the zero value is ready to use.
type TextureCache struct {
	entry *Entry
}

func (c *TextureCache) textureCache() *TextureCache { return c }

// Entry is the set of objects needed to fill the mip chain of one texture.
type Entry struct {
	Format        TextureFormat
	MipLevelCount int
	Pipeline      RenderPipeline

	// Views has one single-level view per mip level.
	Views []TextureView
	// BindGroups[i] samples Views[i-1]. BindGroups[0] is always nil.
	BindGroups []BindGroup

	// pass is reused for every level; only its attachment view changes.
	pass RenderPassDescriptor
}

func (e *Entry) matches(texture Texture, pipeline RenderPipeline) bool {
	return e.Format == texture.Format() &&
		e.MipLevelCount == texture.MipLevelCount() &&
		e.Pipeline == pipeline
}

func (e *Entry) release() {
	for _, bg := range e.BindGroups {
		release(bg)
	}
	for _, v := range e.Views {
		release(v)
	}
}

// CachedShaderModule returns the downsample shader module for device,
// compiling it on first use.
func CachedShaderModule(device Device) (ShaderModule, error) {
	c := device.deviceCache()
	if c.module != nil {
		return c.module, nil
	}
	module, err := device.CreateShaderModule("mipmap generator shader", shaderCode)
	if err != nil {
		return nil, fmt.Errorf("creating shader module: %w", err)
	}
	c.module = module
	return module, nil
}

// CachedSampler returns the linear minification sampler for device.
func CachedSampler(device Device) (Sampler, error) {
	c := device.deviceCache()
	if c.sampler != nil {
		return c.sampler, nil
	}
	sampler, err := device.CreateSampler(SamplerDescriptor{
		Label:     "mipmap generator sampler",
		MagFilter: FilterModeNearest,
		MinFilter: FilterModeLinear,
	})
	if err != nil {
		return nil, fmt.Errorf("creating sampler: %w", err)
	}
	c.sampler = sampler
	return sampler, nil
}

// CachedPipeline returns the pipeline rendering into format for device.
// At most one pipeline is created per format.
func CachedPipeline(device Device, format TextureFormat) (RenderPipeline, error) {
	c := device.deviceCache()
	if p, ok := c.pipelines[format]; ok {
		return p, nil
	}
	module, err := CachedShaderModule(device)
	if err != nil {
		return nil, err
	}
	pipeline, err := device.CreateRenderPipeline(RenderPipelineDescriptor{
		Label:              fmt.Sprintf("mipmap generator pipeline (%s)", format),
		Module:             module,
		VertexEntryPoint:   vertexEntryPoint,
		FragmentEntryPoint: fragmentEntryPoint,
		TargetFormat:       format,
	})
	if err != nil {
		return nil, fmt.Errorf("creating pipeline for %s: %w", format, err)
	}
	if c.pipelines == nil {
		c.pipelines = make(map[TextureFormat]RenderPipeline)
	}
	c.pipelines[format] = pipeline
	return pipeline, nil
}

// CachedEntry returns the entry for texture, rebuilding it if the texture's
// format, level count or pipeline no longer match the cached one.
func CachedEntry(device Device, texture Texture) (*Entry, error) {
	pipeline, err := CachedPipeline(device, texture.Format())
	if err != nil {
		return nil, err
	}
	tc := texture.textureCache()
	if tc.entry != nil && tc.entry.matches(texture, pipeline) {
		return tc.entry, nil
	}
	if tc.entry != nil {
		tc.entry.release()
		tc.entry = nil
	}

	entry, err := buildEntry(device, texture, pipeline)
	if err != nil {
		return nil, err
	}
	tc.entry = entry
	return entry, nil
}

func buildEntry(device Device, texture Texture, pipeline RenderPipeline) (*Entry, error) {
	sampler, err := CachedSampler(device)
	if err != nil {
		return nil, err
	}

	n := texture.MipLevelCount()
	e := &Entry{
		Format:        texture.Format(),
		MipLevelCount: n,
		Pipeline:      pipeline,
		Views:         make([]TextureView, 0, n),
		BindGroups:    make([]BindGroup, 1, n),
	}
	for level := 0; level < n; level++ {
		view, err := texture.CreateMipView(fmt.Sprintf("mip level %d", level), level)
		if err != nil {
			e.release()
			return nil, fmt.Errorf("creating view of level %d: %w", level, err)
		}
		e.Views = append(e.Views, view)
	}
	for level := 1; level < n; level++ {
		bg, err := device.CreateBindGroup(BindGroupDescriptor{
			Label:    fmt.Sprintf("mip level %d from %d", level, level-1),
			Pipeline: pipeline,
			Group:    0,
			Entries: []BindGroupEntry{
				{Binding: 0, Sampler: sampler},
				{Binding: 1, TextureView: e.Views[level-1]},
			},
		})
		if err != nil {
			e.release()
			return nil, fmt.Errorf("creating bind group for level %d: %w", level, err)
		}
		e.BindGroups = append(e.BindGroups, bg)
	}
	e.pass = RenderPassDescriptor{
		Label: "mipmap generator pass",
		ColorAttachments: []RenderPassColorAttachment{
			{LoadOp: LoadOpClear, StoreOp: StoreOpStore},
		},
	}
	return e, nil
}

// Forget releases and drops the cached entry of texture. Backends call it
// when the texture is destroyed.
func Forget(texture Texture) {
	tc := texture.textureCache()
	if tc.entry == nil {
		return
	}
	tc.entry.release()
	tc.entry = nil
}

// ForgetDevice releases and drops the shader module, sampler and pipelines
// cached on device. Entries cached on textures still refer to the released
// pipelines, so textures must be forgotten before their device.
func ForgetDevice(device Device) {
	c := device.deviceCache()
	for _, p := range c.pipelines {
		release(p)
	}
	release(c.sampler, c.module)
	*c = DeviceCache{}
}
