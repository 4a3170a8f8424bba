package mipmap

// TextureFormat is a WebGPU texture format name, e.g. "rgba8unorm".
type TextureFormat string

const (
	TextureFormatRGBA8Unorm     TextureFormat = "rgba8unorm"
	TextureFormatRGBA8UnormSRGB TextureFormat = "rgba8unorm-srgb"
	TextureFormatBGRA8Unorm     TextureFormat = "bgra8unorm"
	TextureFormatBGRA8UnormSRGB TextureFormat = "bgra8unorm-srgb"
	TextureFormatRGBA16Float    TextureFormat = "rgba16float"
	TextureFormatRGBA32Float    TextureFormat = "rgba32float"
)

type FilterMode string

const (
	FilterModeNearest FilterMode = "nearest"
	FilterModeLinear  FilterMode = "linear"
)

type LoadOp string

const (
	LoadOpClear LoadOp = "clear"
	LoadOpLoad  LoadOp = "load"
)

type StoreOp string

const (
	StoreOpStore   StoreOp = "store"
	StoreOpDiscard StoreOp = "discard"
)

// Handles to backend objects. Backends must use comparable types (in practice
// pointers) because cache validity is checked with ==.
type (
	ShaderModule   any
	Sampler        any
	RenderPipeline any
	BindGroup      any
	TextureView    any
	CommandBuffer  any
)

// SamplerDescriptor leaves unset filters to the backend default, nearest.
type SamplerDescriptor struct {
	Label        string
	MagFilter    FilterMode
	MinFilter    FilterMode
	MipmapFilter FilterMode
}

// RenderPipelineDescriptor describes a pipeline with an automatically inferred
// layout, a triangle list topology and a single color target.
type RenderPipelineDescriptor struct {
	Label              string
	Module             ShaderModule
	VertexEntryPoint   string
	FragmentEntryPoint string
	TargetFormat       TextureFormat
}

type BindGroupEntry struct {
	Binding     int
	Sampler     Sampler
	TextureView TextureView
}

// BindGroupDescriptor uses the layout of bind group Group of Pipeline.
type BindGroupDescriptor struct {
	Label    string
	Pipeline RenderPipeline
	Group    int
	Entries  []BindGroupEntry
}

type Color struct {
	R, G, B, A float64
}

type RenderPassColorAttachment struct {
	View       TextureView
	ClearValue Color
	LoadOp     LoadOp
	StoreOp    StoreOp
}

type RenderPassDescriptor struct {
	Label            string
	ColorAttachments []RenderPassColorAttachment
}

// Device creates GPU objects and submits work. Implementations embed a
// DeviceCache so the generator state is owned by the device wrapper.
type Device interface {
	CreateShaderModule(label, code string) (ShaderModule, error)
	CreateSampler(desc SamplerDescriptor) (Sampler, error)
	CreateRenderPipeline(desc RenderPipelineDescriptor) (RenderPipeline, error)
	CreateBindGroup(desc BindGroupDescriptor) (BindGroup, error)
	CreateCommandEncoder(label string) (CommandEncoder, error)
	Submit(buffers ...CommandBuffer) error

	deviceCache() *DeviceCache
}

// Texture is a 2D texture with a fixed format and number of mip levels.
// Implementations embed a TextureCache.
type Texture interface {
	Format() TextureFormat
	MipLevelCount() int
	// CreateMipView returns a view restricted to the single mip level.
	CreateMipView(label string, level int) (TextureView, error)

	textureCache() *TextureCache
}

type CommandEncoder interface {
	// BeginRenderPass starts a pass. The descriptor is not retained after the
	// call returns.
	BeginRenderPass(desc *RenderPassDescriptor) RenderPassEncoder
	Finish() (CommandBuffer, error)
}

type RenderPassEncoder interface {
	SetPipeline(pipeline RenderPipeline)
	SetBindGroup(index int, group BindGroup)
	Draw(vertexCount int)
	End()
}

type releaser interface {
	Release()
}

func release(objs ...any) {
	for _, o := range objs {
		if r, ok := o.(releaser); ok {
			r.Release()
		}
	}
}
