//go:build js && wasm

package engine

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/hulkholden/webgpu-lessons/client/browser"
	"github.com/hulkholden/webgpu-lessons/common/gpu"
	"github.com/hulkholden/webgpu-lessons/common/wgsltypes"
	"github.com/mokiat/wasmgpu"
)

// Env is what a lesson gets to work with: the device and canvas context set
// up by the bootstrap script, through both wasmgpu and cogentcore/webgpu.
type Env struct {
	Device  wasmgpu.GPUDevice
	Context wasmgpu.GPUCanvasContext

	GPU    *gpu.Device
	Canvas *browser.Canvas
}

// Aspect returns the width to height ratio of the canvas.
func (e Env) Aspect() float32 {
	w, h := e.Canvas.Size()
	if h == 0 {
		return 1
	}
	return float32(w) / float32(h)
}

// CompileShader compiles code with the WGSL definitions of structs prepended
// to it.
func (e Env) CompileShader(label, code string, structs ...wgsltypes.Struct) (*wgpu.ShaderModule, error) {
	module, err := e.GPU.WGPU().CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: label,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: wgsltypes.Prologue(structs...) + code,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("compiling %s: %w", label, err)
	}
	return module, nil
}

// CreatePipeline creates a triangle list pipeline drawing into the canvas
// with the module's "vs" and "fs" entry points. Its bind group layouts are
// inferred from the shader.
func (e Env) CreatePipeline(label string, module *wgpu.ShaderModule, buffers ...wgpu.VertexBufferLayout) (*wgpu.RenderPipeline, error) {
	pipeline, err := e.GPU.WGPU().CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label: label,
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: "vs",
			Buffers:    buffers,
		},
		Fragment: &wgpu.FragmentState{
			Module:     module,
			EntryPoint: "fs",
			Targets: []wgpu.ColorTargetState{
				{Format: browser.Format, WriteMask: wgpu.ColorWriteMaskAll},
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
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", label, err)
	}
	return pipeline, nil
}

// CreateBindGroup binds entries to group 0 of pipeline.
func (e Env) CreateBindGroup(label string, pipeline *wgpu.RenderPipeline, entries ...wgpu.BindGroupEntry) (*wgpu.BindGroup, error) {
	group, err := e.GPU.WGPU().CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:   label,
		Layout:  pipeline.GetBindGroupLayout(0),
		Entries: entries,
	})
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", label, err)
	}
	return group, nil
}

// BufferEntry binds the whole of buf.
func BufferEntry(binding uint32, buf *wgpu.Buffer) wgpu.BindGroupEntry {
	return wgpu.BindGroupEntry{Binding: binding, Buffer: buf, Size: wgpu.WholeSize}
}

// Pass is a render pass into the current canvas texture.
type Pass struct {
	*wgpu.RenderPassEncoder
	encoder *wgpu.CommandEncoder
}

// BeginPass starts a render pass that clears the current canvas texture.
func (e Env) BeginPass(label string, clear wgpu.Color) (*Pass, error) {
	view, err := e.Canvas.CurrentTextureView()
	if err != nil {
		return nil, fmt.Errorf("getting canvas view: %w", err)
	}
	encoder, err := e.GPU.WGPU().CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{Label: label})
	if err != nil {
		return nil, fmt.Errorf("creating encoder: %w", err)
	}
	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: label,
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: clear,
			},
		},
	})
	return &Pass{RenderPassEncoder: pass, encoder: encoder}, nil
}

// EndPass ends p and submits its commands.
func (e Env) EndPass(p *Pass) error {
	p.End()
	cb, err := p.encoder.Finish(nil)
	if err != nil {
		return fmt.Errorf("finishing frame: %w", err)
	}
	e.GPU.Queue().Submit(cb)
	return nil
}

// Background is the clear color shared by the lessons.
var Background = wgpu.Color{R: 0.3, G: 0.3, B: 0.3, A: 1}
