// Package gpu runs the mipmap generator on cogentcore/webgpu devices: natively
// through wgpu-native, and in the browser through the JS WebGPU API when built
// for js/wasm.
package gpu

import (
	"context"
	"errors"
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/hulkholden/webgpu-lessons/common/mipmap"
)

// Options selects the adapter.
type Options struct {
	// ForceFallbackAdapter requests a software adapter.
	ForceFallbackAdapter bool
	// LowPower prefers an integrated GPU over a discrete one.
	LowPower bool
}

// Device is a wgpu device and its queue. It implements mipmap.Device.
type Device struct {
	mipmap.DeviceCache

	// instance and adapter are nil for wrapped devices.
	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue
	owned    bool
}

// Wrap returns a Device for a wgpu device owned by the caller, such as the
// one the browser bootstrap script requests. Closing it only drops the
// generator state cached on it.
func Wrap(device *wgpu.Device) *Device {
	return &Device{device: device, queue: device.GetQueue()}
}

// Open requests an adapter and a device from it. In the browser it waits on
// JS promises, so it must not be called from a JS callback.
func Open(ctx context.Context, opts Options) (*Device, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	instance := wgpu.CreateInstance(nil)
	if instance == nil {
		return nil, errors.New("WebGPU is not available")
	}

	power := wgpu.PowerPreferenceHighPerformance
	if opts.LowPower {
		power = wgpu.PowerPreferenceLowPower
	}
	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: opts.ForceFallbackAdapter,
		PowerPreference:      power,
	})
	if err != nil {
		instance.Release()
		return nil, fmt.Errorf("requesting adapter: %w", err)
	}
	if err := ctx.Err(); err != nil {
		adapter.Release()
		instance.Release()
		return nil, err
	}

	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "mipmap device",
	})
	if err != nil {
		adapter.Release()
		instance.Release()
		return nil, fmt.Errorf("requesting device: %w", err)
	}
	return &Device{
		instance: instance,
		adapter:  adapter,
		device:   device,
		queue:    device.GetQueue(),
		owned:    true,
	}, nil
}

// Close releases the generator state cached on the device and, for opened
// devices, the device itself. Textures created from the device must be
// released first.
func (d *Device) Close() {
	mipmap.ForgetDevice(d)
	if !d.owned {
		return
	}
	d.queue.Release()
	d.device.Release()
	d.adapter.Release()
	d.instance.Release()
}

// WGPU returns the underlying device, for objects the generator does not
// manage.
func (d *Device) WGPU() *wgpu.Device { return d.device }

func (d *Device) Queue() *wgpu.Queue { return d.queue }

// CreateBufferInit creates a buffer holding contents. CopyDst is added to
// usage so the buffer can be rewritten with WriteBuffer.
func (d *Device) CreateBufferInit(label string, usage wgpu.BufferUsage, contents []byte) (*wgpu.Buffer, error) {
	buf, err := d.device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    label,
		Contents: contents,
		Usage:    usage | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("creating buffer %q: %w", label, err)
	}
	return buf, nil
}

// WriteBuffer replaces the leading bytes of buf.
func (d *Device) WriteBuffer(buf *wgpu.Buffer, data []byte) error {
	if len(data) == 0 {
		return nil
	}
	return d.queue.WriteBuffer(buf, 0, data)
}

// wait blocks until the queue has finished all submitted work.
func (d *Device) wait() {
	d.device.Poll(true, nil)
}

var filterModes = map[mipmap.FilterMode]wgpu.FilterMode{
	"":                       wgpu.FilterModeNearest,
	mipmap.FilterModeNearest: wgpu.FilterModeNearest,
	mipmap.FilterModeLinear:  wgpu.FilterModeLinear,
}

var mipmapFilterModes = map[mipmap.FilterMode]wgpu.MipmapFilterMode{
	"":                       wgpu.MipmapFilterModeNearest,
	mipmap.FilterModeNearest: wgpu.MipmapFilterModeNearest,
	mipmap.FilterModeLinear:  wgpu.MipmapFilterModeLinear,
}

func (d *Device) CreateShaderModule(label, code string) (mipmap.ShaderModule, error) {
	return d.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: label,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: code,
		},
	})
}

func (d *Device) CreateSampler(desc mipmap.SamplerDescriptor) (mipmap.Sampler, error) {
	magnify, ok := filterModes[desc.MagFilter]
	if !ok {
		return nil, fmt.Errorf("unknown filter mode %q", desc.MagFilter)
	}
	minify, ok := filterModes[desc.MinFilter]
	if !ok {
		return nil, fmt.Errorf("unknown filter mode %q", desc.MinFilter)
	}
	mip, ok := mipmapFilterModes[desc.MipmapFilter]
	if !ok {
		return nil, fmt.Errorf("unknown filter mode %q", desc.MipmapFilter)
	}
	return d.device.CreateSampler(&wgpu.SamplerDescriptor{
		Label:         desc.Label,
		AddressModeU:  wgpu.AddressModeClampToEdge,
		AddressModeV:  wgpu.AddressModeClampToEdge,
		AddressModeW:  wgpu.AddressModeClampToEdge,
		MagFilter:     magnify,
		MinFilter:     minify,
		MipmapFilter:  mip,
		LodMinClamp:   0,
		LodMaxClamp:   32,
		MaxAnisotropy: 1,
	})
}

func (d *Device) CreateRenderPipeline(desc mipmap.RenderPipelineDescriptor) (mipmap.RenderPipeline, error) {
	module, ok := desc.Module.(*wgpu.ShaderModule)
	if !ok {
		return nil, fmt.Errorf("shader module is %T, not *wgpu.ShaderModule", desc.Module)
	}
	format, err := textureFormat(desc.TargetFormat)
	if err != nil {
		return nil, err
	}
	// A nil layout is inferred from the shader.
	return d.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label: desc.Label,
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: desc.VertexEntryPoint,
		},
		Fragment: &wgpu.FragmentState{
			Module:     module,
			EntryPoint: desc.FragmentEntryPoint,
			Targets: []wgpu.ColorTargetState{
				{
					Format:    format,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
}

func (d *Device) CreateBindGroup(desc mipmap.BindGroupDescriptor) (mipmap.BindGroup, error) {
	pipeline, ok := desc.Pipeline.(*wgpu.RenderPipeline)
	if !ok {
		return nil, fmt.Errorf("pipeline is %T, not *wgpu.RenderPipeline", desc.Pipeline)
	}
	entries := make([]wgpu.BindGroupEntry, len(desc.Entries))
	for i, e := range desc.Entries {
		entries[i] = wgpu.BindGroupEntry{Binding: uint32(e.Binding)}
		switch {
		case e.Sampler != nil:
			s, ok := e.Sampler.(*wgpu.Sampler)
			if !ok {
				return nil, fmt.Errorf("binding %d: sampler is %T, not *wgpu.Sampler", e.Binding, e.Sampler)
			}
			entries[i].Sampler = s
		case e.TextureView != nil:
			v, ok := e.TextureView.(*wgpu.TextureView)
			if !ok {
				return nil, fmt.Errorf("binding %d: view is %T, not *wgpu.TextureView", e.Binding, e.TextureView)
			}
			entries[i].TextureView = v
		default:
			return nil, fmt.Errorf("binding %d: no resource", e.Binding)
		}
	}

	layout := pipeline.GetBindGroupLayout(uint32(desc.Group))
	defer layout.Release()
	return d.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:   desc.Label,
		Layout:  layout,
		Entries: entries,
	})
}

func (d *Device) CreateCommandEncoder(label string) (mipmap.CommandEncoder, error) {
	enc, err := d.device.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{Label: label})
	if err != nil {
		return nil, err
	}
	return &commandEncoder{enc: enc}, nil
}

// Submit queues buffers for execution and releases them.
func (d *Device) Submit(buffers ...mipmap.CommandBuffer) error {
	cbs := make([]*wgpu.CommandBuffer, len(buffers))
	for i, b := range buffers {
		cb, ok := b.(*wgpu.CommandBuffer)
		if !ok {
			return fmt.Errorf("command buffer is %T, not *wgpu.CommandBuffer", b)
		}
		cbs[i] = cb
	}
	d.queue.Submit(cbs...)
	for _, cb := range cbs {
		cb.Release()
	}
	return nil
}

type commandEncoder struct {
	enc *wgpu.CommandEncoder
}

func (e *commandEncoder) BeginRenderPass(desc *mipmap.RenderPassDescriptor) mipmap.RenderPassEncoder {
	attachments := make([]wgpu.RenderPassColorAttachment, len(desc.ColorAttachments))
	for i, a := range desc.ColorAttachments {
		attachments[i] = wgpu.RenderPassColorAttachment{
			View:       a.View.(*wgpu.TextureView),
			LoadOp:     loadOps[a.LoadOp],
			StoreOp:    storeOps[a.StoreOp],
			ClearValue: wgpu.Color{R: a.ClearValue.R, G: a.ClearValue.G, B: a.ClearValue.B, A: a.ClearValue.A},
		}
	}
	return &renderPass{pass: e.enc.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label:            desc.Label,
		ColorAttachments: attachments,
	})}
}

func (e *commandEncoder) Finish() (mipmap.CommandBuffer, error) {
	defer e.enc.Release()
	return e.enc.Finish(nil)
}

var loadOps = map[mipmap.LoadOp]wgpu.LoadOp{
	mipmap.LoadOpClear: wgpu.LoadOpClear,
	mipmap.LoadOpLoad:  wgpu.LoadOpLoad,
}

var storeOps = map[mipmap.StoreOp]wgpu.StoreOp{
	mipmap.StoreOpStore:   wgpu.StoreOpStore,
	mipmap.StoreOpDiscard: wgpu.StoreOpDiscard,
}

type renderPass struct {
	pass *wgpu.RenderPassEncoder
}

func (p *renderPass) SetPipeline(pipeline mipmap.RenderPipeline) {
	p.pass.SetPipeline(pipeline.(*wgpu.RenderPipeline))
}

func (p *renderPass) SetBindGroup(index int, group mipmap.BindGroup) {
	p.pass.SetBindGroup(uint32(index), group.(*wgpu.BindGroup), nil)
}

func (p *renderPass) Draw(vertexCount int) {
	p.pass.Draw(uint32(vertexCount), 1, 0, 0)
}

func (p *renderPass) End() {
	p.pass.End()
	p.pass.Release()
}
