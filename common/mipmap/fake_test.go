package mipmap

import (
	"errors"
	"fmt"
)

var errFake = errors.New("fake backend failure")

type fakeObject struct {
	kind     string
	label    string
	released bool
}

func (o *fakeObject) Release() { o.released = true }

type fakeView struct {
	fakeObject
	texture *fakeTexture
	level   int
}

type fakeBindGroup struct {
	fakeObject
	desc BindGroupDescriptor
}

type fakePipeline struct {
	fakeObject
	desc RenderPipelineDescriptor
}

type fakeSampler struct {
	fakeObject
	desc SamplerDescriptor
}

type fakeCommandBuffer struct {
	encoder *fakeEncoder
}

// fakeDevice records every object it creates and every submission.
type fakeDevice struct {
	DeviceCache

	// failOn makes the named kind of creation fail.
	failOn string

	created     map[string]int
	encoders    []*fakeEncoder
	submissions [][]CommandBuffer
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{created: make(map[string]int)}
}

func (d *fakeDevice) record(kind string) error {
	if d.failOn == kind {
		return fmt.Errorf("creating %s: %w", kind, errFake)
	}
	d.created[kind]++
	return nil
}

func (d *fakeDevice) CreateShaderModule(label, code string) (ShaderModule, error) {
	if err := d.record("shader"); err != nil {
		return nil, err
	}
	return &fakeObject{kind: "shader", label: label}, nil
}

func (d *fakeDevice) CreateSampler(desc SamplerDescriptor) (Sampler, error) {
	if err := d.record("sampler"); err != nil {
		return nil, err
	}
	return &fakeSampler{fakeObject: fakeObject{kind: "sampler", label: desc.Label}, desc: desc}, nil
}

func (d *fakeDevice) CreateRenderPipeline(desc RenderPipelineDescriptor) (RenderPipeline, error) {
	if err := d.record("pipeline"); err != nil {
		return nil, err
	}
	return &fakePipeline{fakeObject: fakeObject{kind: "pipeline", label: desc.Label}, desc: desc}, nil
}

func (d *fakeDevice) CreateBindGroup(desc BindGroupDescriptor) (BindGroup, error) {
	if err := d.record("bindgroup"); err != nil {
		return nil, err
	}
	return &fakeBindGroup{fakeObject: fakeObject{kind: "bindgroup", label: desc.Label}, desc: desc}, nil
}

func (d *fakeDevice) CreateCommandEncoder(label string) (CommandEncoder, error) {
	if err := d.record("encoder"); err != nil {
		return nil, err
	}
	e := &fakeEncoder{}
	d.encoders = append(d.encoders, e)
	return e, nil
}

func (d *fakeDevice) Submit(buffers ...CommandBuffer) error {
	if d.failOn == "submit" {
		return errFake
	}
	d.submissions = append(d.submissions, buffers)
	return nil
}

type fakeTexture struct {
	TextureCache

	device *fakeDevice
	format TextureFormat
	levels int

	// views is every view ever created on the texture.
	views []*fakeView
}

func newFakeTexture(device *fakeDevice, format TextureFormat, levels int) *fakeTexture {
	return &fakeTexture{device: device, format: format, levels: levels}
}

func (t *fakeTexture) Format() TextureFormat { return t.format }
func (t *fakeTexture) MipLevelCount() int    { return t.levels }

func (t *fakeTexture) CreateMipView(label string, level int) (TextureView, error) {
	if err := t.device.record("view"); err != nil {
		return nil, err
	}
	v := &fakeView{fakeObject: fakeObject{kind: "view", label: label}, texture: t, level: level}
	t.views = append(t.views, v)
	return v, nil
}

type fakePass struct {
	label     string
	target    TextureView
	loadOp    LoadOp
	storeOp   StoreOp
	pipeline  RenderPipeline
	bindGroup BindGroup
	groupIdx  int
	vertices  int
	draws     int
	ended     bool
}

type fakeEncoder struct {
	passes   []*fakePass
	finished bool
}

func (e *fakeEncoder) BeginRenderPass(desc *RenderPassDescriptor) RenderPassEncoder {
	a := desc.ColorAttachments[0]
	p := &fakePass{label: desc.Label, target: a.View, loadOp: a.LoadOp, storeOp: a.StoreOp}
	e.passes = append(e.passes, p)
	return p
}

func (e *fakeEncoder) Finish() (CommandBuffer, error) {
	e.finished = true
	return &fakeCommandBuffer{encoder: e}, nil
}

func (p *fakePass) SetPipeline(pipeline RenderPipeline) { p.pipeline = pipeline }

func (p *fakePass) SetBindGroup(index int, group BindGroup) {
	p.groupIdx = index
	p.bindGroup = group
}

func (p *fakePass) Draw(vertexCount int) {
	p.vertices = vertexCount
	p.draws++
}

func (p *fakePass) End() { p.ended = true }
