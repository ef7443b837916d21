//go:build !nogpu

package gpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/colorlut"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

var (
	errNoDevice   = errors.New("gpu: no device")
	errSameTarget = errors.New("gpu: source and destination are the same target")
)

// material owns the GPU objects of the grading pass: the shader, one
// pipeline per color space variant, the clamp sampler, the uniform buffer
// and the packed table texture.
//
// Bind group layout:
//
//	Binding 0: LutParams (uniform buffer, fragment)
//	Binding 1: packed table (texture_2d, fragment)
//	Binding 2: clamp-to-edge linear sampler (fragment)
//	Binding 3: source frame (texture_2d, fragment, loaded per texel)
type material struct {
	device hal.Device
	queue  hal.Queue

	shader     hal.ShaderModule
	layout     hal.BindGroupLayout
	pipeLayout hal.PipelineLayout
	pipelines  [2]hal.RenderPipeline
	sampler    hal.Sampler
	uniforms   hal.Buffer
	lutTex     hal.Texture
	lutView    hal.TextureView

	// tableID is the ID of the table currently in lutTex; 0 if none.
	tableID uint64

	bindGroup hal.BindGroup
	boundSrc  hal.TextureView

	released bool
}

func newMaterial(device hal.Device, queue hal.Queue) (*material, error) {
	m := &material{device: device, queue: queue}
	if err := m.create(); err != nil {
		m.Release()
		return nil, err
	}
	return m, nil
}

func (m *material) create() error {
	spirv, err := compileSPIRV(colorLUTShaderSource)
	if err != nil {
		return err
	}
	shader, err := m.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "colorlut_shader",
		Source: hal.ShaderSource{WGSL: colorLUTShaderSource, SPIRV: spirv},
	})
	if err != nil {
		return fmt.Errorf("create colorlut shader: %w", err)
	}
	m.shader = shader

	layout, err := m.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "colorlut_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageFragment,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
			{
				Binding:    1,
				Visibility: gputypes.ShaderStageFragment,
				Texture: &gputypes.TextureBindingLayout{
					SampleType:    gputypes.TextureSampleTypeFloat,
					ViewDimension: gputypes.TextureViewDimension2D,
				},
			},
			{
				Binding:    2,
				Visibility: gputypes.ShaderStageFragment,
				Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
			},
			{
				Binding:    3,
				Visibility: gputypes.ShaderStageFragment,
				Texture: &gputypes.TextureBindingLayout{
					SampleType:    gputypes.TextureSampleTypeFloat,
					ViewDimension: gputypes.TextureViewDimension2D,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create colorlut layout: %w", err)
	}
	m.layout = layout

	pipeLayout, err := m.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "colorlut_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{m.layout},
	})
	if err != nil {
		return fmt.Errorf("create colorlut pipeline layout: %w", err)
	}
	m.pipeLayout = pipeLayout

	// Repeat or mirror addressing would bleed neighbouring tiles into the
	// table edges.
	sampler, err := m.device.CreateSampler(&hal.SamplerDescriptor{
		Label:        "colorlut_sampler",
		AddressModeU: gputypes.AddressModeClampToEdge,
		AddressModeV: gputypes.AddressModeClampToEdge,
		AddressModeW: gputypes.AddressModeClampToEdge,
		MagFilter:    gputypes.FilterModeLinear,
		MinFilter:    gputypes.FilterModeLinear,
		MipmapFilter: gputypes.FilterModeNearest,
	})
	if err != nil {
		return fmt.Errorf("create colorlut sampler: %w", err)
	}
	m.sampler = sampler

	for variant, entry := range fragmentEntryPoints {
		pipeline, err := m.createPipeline(entry)
		if err != nil {
			return err
		}
		m.pipelines[variant] = pipeline
	}

	uniforms, err := m.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "colorlut_uniforms",
		Size:  colorlut.UniformSize,
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create colorlut uniforms: %w", err)
	}
	m.uniforms = uniforms

	lutTex, err := m.device.CreateTexture(&hal.TextureDescriptor{
		Label:         "colorlut_table",
		Size:          hal.Extent3D{Width: colorlut.Side, Height: colorlut.Side, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        targetFormat,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create colorlut table texture: %w", err)
	}
	m.lutTex = lutTex

	lutView, err := m.device.CreateTextureView(lutTex, &hal.TextureViewDescriptor{
		Label:         "colorlut_table_view",
		Format:        targetFormat,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		return fmt.Errorf("create colorlut table view: %w", err)
	}
	m.lutView = lutView
	return nil
}

func (m *material) createPipeline(entryPoint string) (hal.RenderPipeline, error) {
	pipeline, err := m.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  "colorlut_pipeline_" + entryPoint,
		Layout: m.pipeLayout,
		Vertex: hal.VertexState{
			Module:     m.shader,
			EntryPoint: "vs_main",
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
		Fragment: &hal.FragmentState{
			Module:     m.shader,
			EntryPoint: entryPoint,
			Targets: []gputypes.ColorTargetState{
				{
					Format:    targetFormat,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create colorlut pipeline %s: %w", entryPoint, err)
	}
	return pipeline, nil
}

// Blit implements colorlut.Material.
func (m *material) Blit(src, dst colorlut.Frame, table *colorlut.Table, params colorlut.Params, cs colorlut.ColorSpace) error {
	if m.released {
		return colorlut.ErrMaterialReleased
	}
	if table == nil || table.Released() {
		return colorlut.ErrTableReleased
	}
	s, d, err := targets(src, dst)
	if err != nil {
		return err
	}
	if s == d {
		return fmt.Errorf("%w: %w", errSameTarget, colorlut.ErrUnsupportedFrame)
	}

	if err := m.uploadTable(table); err != nil {
		return err
	}
	if err := m.queue.WriteBuffer(m.uniforms, 0, params.Uniform()); err != nil {
		return fmt.Errorf("write colorlut uniforms: %w", err)
	}
	if err := m.bind(s.view); err != nil {
		return err
	}

	pipeline := m.pipelines[cs.Variant()]
	return submit(m.device, m.queue, "colorlut_grade", func(enc hal.CommandEncoder) {
		rp := enc.BeginRenderPass(&hal.RenderPassDescriptor{
			Label: "colorlut_pass",
			ColorAttachments: []hal.RenderPassColorAttachment{
				{
					View:       d.view,
					LoadOp:     gputypes.LoadOpClear,
					StoreOp:    gputypes.StoreOpStore,
					ClearValue: gputypes.Color{R: 0, G: 0, B: 0, A: 0},
				},
			},
		})
		rp.SetPipeline(pipeline)
		rp.SetBindGroup(0, m.bindGroup, nil)
		rp.Draw(3, 1, 0, 0)
		rp.End()
	})
}

// uploadTable copies the table into the LUT texture unless it is already
// resident.
func (m *material) uploadTable(table *colorlut.Table) error {
	if table.ID() == m.tableID {
		return nil
	}
	data, err := table.RGBA8()
	if err != nil {
		return err
	}
	if err := writeTexture(m.queue, m.lutTex, data, colorlut.Side, colorlut.Side, colorlut.Side*4); err != nil {
		return fmt.Errorf("upload colorlut table: %w", err)
	}
	m.tableID = table.ID()
	colorlut.Logger().Debug("gpu: table uploaded", "id", table.ID(), "source", table.BasedOn())
	return nil
}

// bind (re)creates the bind group when the source frame changes.
func (m *material) bind(src hal.TextureView) error {
	if m.bindGroup != nil && m.boundSrc == src {
		return nil
	}
	if m.bindGroup != nil {
		m.device.DestroyBindGroup(m.bindGroup)
		m.bindGroup = nil
	}
	group, err := m.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "colorlut_bind_group",
		Layout: m.layout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{Buffer: m.uniforms.NativeHandle(), Size: colorlut.UniformSize}},
			{Binding: 1, Resource: gputypes.TextureViewBinding{TextureView: m.lutView.NativeHandle()}},
			{Binding: 2, Resource: gputypes.SamplerBinding{Sampler: m.sampler.NativeHandle()}},
			{Binding: 3, Resource: gputypes.TextureViewBinding{TextureView: src.NativeHandle()}},
		},
	})
	if err != nil {
		return fmt.Errorf("create colorlut bind group: %w", err)
	}
	m.bindGroup = group
	m.boundSrc = src
	return nil
}

// Release implements colorlut.Material. Safe to call more than once.
func (m *material) Release() {
	if m.released {
		return
	}
	m.released = true

	if m.bindGroup != nil {
		m.device.DestroyBindGroup(m.bindGroup)
		m.bindGroup = nil
	}
	if m.lutView != nil {
		m.device.DestroyTextureView(m.lutView)
		m.lutView = nil
	}
	if m.lutTex != nil {
		m.device.DestroyTexture(m.lutTex)
		m.lutTex = nil
	}
	if m.uniforms != nil {
		m.device.DestroyBuffer(m.uniforms)
		m.uniforms = nil
	}
	for i, p := range m.pipelines {
		if p != nil {
			m.device.DestroyRenderPipeline(p)
			m.pipelines[i] = nil
		}
	}
	if m.sampler != nil {
		m.device.DestroySampler(m.sampler)
		m.sampler = nil
	}
	if m.pipeLayout != nil {
		m.device.DestroyPipelineLayout(m.pipeLayout)
		m.pipeLayout = nil
	}
	if m.layout != nil {
		m.device.DestroyBindGroupLayout(m.layout)
		m.layout = nil
	}
	if m.shader != nil {
		m.device.DestroyShaderModule(m.shader)
		m.shader = nil
	}
	m.tableID = 0
	m.boundSrc = nil
}
