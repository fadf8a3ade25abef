// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/affine"
)

var (
	// ErrNilDevice is returned when NewPipeline receives a nil device or queue.
	ErrNilDevice = errors.New("gpu: device and queue must not be nil")

	// ErrDestroyed is returned when a destroyed pipeline is used.
	ErrDestroyed = errors.New("gpu: pipeline destroyed")

	// ErrInvalidVertices is returned for empty or odd-length vertex data.
	ErrInvalidVertices = errors.New("gpu: vertex data must be non-empty x, y pairs")
)

// Pipeline owns the shader module, layouts and render pipeline that draw
// affine-transformed triangles. Per-object state lives in Object values
// created by PrepareObject.
//
// Pipeline is not safe for concurrent use.
type Pipeline struct {
	device hal.Device
	queue  hal.Queue
	opts   pipelineOptions

	shader        hal.ShaderModule
	uniformLayout hal.BindGroupLayout
	pipeLayout    hal.PipelineLayout
	pipeline      hal.RenderPipeline

	destroyed bool
}

// NewPipeline compiles TransformShaderWGSL with naga and creates the
// render pipeline on device.
func NewPipeline(device hal.Device, queue hal.Queue, opts ...PipelineOption) (*Pipeline, error) {
	if device == nil || queue == nil {
		return nil, ErrNilDevice
	}

	o := defaultPipelineOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p := &Pipeline{device: device, queue: queue, opts: o}
	if err := p.createPipeline(); err != nil {
		p.Destroy()
		return nil, err
	}

	affine.Logger().Info("gpu: pipeline created",
		"label", o.label,
		"format", o.format.String())
	return p, nil
}

// createPipeline builds the shader module, the uniform bind group layout,
// the pipeline layout and the render pipeline, in that order.
func (p *Pipeline) createPipeline() error {
	spirv, err := CompileShaderToSPIRV(TransformShaderWGSL)
	if err != nil {
		return err
	}

	shader, err := p.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  p.opts.label + "_shader",
		Source: hal.ShaderSource{SPIRV: spirv},
	})
	if err != nil {
		return fmt.Errorf("create shader module: %w", err)
	}
	p.shader = shader

	uniformLayout, err := p.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: p.opts.label + "_uniform_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create uniform layout: %w", err)
	}
	p.uniformLayout = uniformLayout

	pipeLayout, err := p.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            p.opts.label + "_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{p.uniformLayout},
	})
	if err != nil {
		return fmt.Errorf("create pipeline layout: %w", err)
	}
	p.pipeLayout = pipeLayout

	blend := gputypes.BlendStateAlpha()
	pipeline, err := p.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  p.opts.label + "_pipeline",
		Layout: p.pipeLayout,
		Vertex: hal.VertexState{
			Module:     p.shader,
			EntryPoint: vertexEntryPoint,
			Buffers:    VertexLayout(),
		},
		Fragment: &hal.FragmentState{
			Module:     p.shader,
			EntryPoint: fragmentEntryPoint,
			Targets: []gputypes.ColorTargetState{
				{
					Format:    p.opts.format,
					Blend:     &blend,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return fmt.Errorf("create render pipeline: %w", err)
	}
	p.pipeline = pipeline

	return nil
}

// RenderPipeline returns the underlying render pipeline, or nil after
// Destroy.
func (p *Pipeline) RenderPipeline() hal.RenderPipeline {
	return p.pipeline
}

// UniformLayout returns the bind group layout of the per-object uniform.
func (p *Pipeline) UniformLayout() hal.BindGroupLayout {
	return p.uniformLayout
}

// Upload creates a vertex buffer holding interleaved x, y positions.
func (p *Pipeline) Upload(xy []float32) (*VertexBuffer, error) {
	if p.destroyed {
		return nil, ErrDestroyed
	}
	if len(xy) == 0 || len(xy)%2 != 0 {
		return nil, fmt.Errorf("%w: got %d floats", ErrInvalidVertices, len(xy))
	}

	data := PackVertices(xy)
	buf, err := p.createAndUploadBuffer(p.opts.label+"_vertices", data,
		gputypes.BufferUsageVertex|gputypes.BufferUsageCopyDst)
	if err != nil {
		return nil, fmt.Errorf("create vertex buffer: %w", err)
	}

	affine.Logger().Debug("gpu: vertices uploaded", "vertices", len(xy)/2, "bytes", len(data))
	return &VertexBuffer{
		device: p.device,
		buffer: buf,
		count:  uint32(len(xy) / 2), //nolint:gosec // vertex count fits uint32
	}, nil
}

// PrepareObject creates the uniform buffer and bind group for one object
// drawn with matrix m on a width×height target.
func (p *Pipeline) PrepareObject(m affine.Matrix, width, height float32, c color.Color) (*Object, error) {
	if p.destroyed {
		return nil, ErrDestroyed
	}

	uniformBuf, err := p.createAndUploadBuffer(p.opts.label+"_uniform", PackUniform(m, width, height, c),
		gputypes.BufferUsageUniform|gputypes.BufferUsageCopyDst)
	if err != nil {
		return nil, fmt.Errorf("create uniform buffer: %w", err)
	}

	bindGroup, err := p.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  p.opts.label + "_bind",
		Layout: p.uniformLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{
				Buffer: uniformBuf.NativeHandle(), Offset: 0, Size: UniformSize,
			}},
		},
	})
	if err != nil {
		p.device.DestroyBuffer(uniformBuf)
		return nil, fmt.Errorf("create bind group: %w", err)
	}

	affine.Logger().Debug("gpu: object prepared", "matrix", m.String())
	return &Object{
		device:    p.device,
		queue:     p.queue,
		uniform:   uniformBuf,
		bindGroup: bindGroup,
	}, nil
}

// Destroy releases all GPU resources held by the pipeline. Safe to call
// multiple times.
func (p *Pipeline) Destroy() {
	p.destroyed = true
	if p.device == nil {
		return
	}
	if p.pipeline != nil {
		p.device.DestroyRenderPipeline(p.pipeline)
		p.pipeline = nil
	}
	if p.pipeLayout != nil {
		p.device.DestroyPipelineLayout(p.pipeLayout)
		p.pipeLayout = nil
	}
	if p.uniformLayout != nil {
		p.device.DestroyBindGroupLayout(p.uniformLayout)
		p.uniformLayout = nil
	}
	if p.shader != nil {
		p.device.DestroyShaderModule(p.shader)
		p.shader = nil
	}
}

func (p *Pipeline) createAndUploadBuffer(label string, data []byte, usage gputypes.BufferUsage) (hal.Buffer, error) {
	buf, err := p.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  uint64(len(data)),
		Usage: usage,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", label, err)
	}
	if err := p.queue.WriteBuffer(buf, 0, data); err != nil {
		p.device.DestroyBuffer(buf)
		return nil, fmt.Errorf("write %s: %w", label, err)
	}
	return buf, nil
}

// VertexBuffer is an uploaded triangle list.
type VertexBuffer struct {
	device hal.Device
	buffer hal.Buffer
	count  uint32
}

// Buffer returns the GPU buffer, or nil after Destroy.
func (v *VertexBuffer) Buffer() hal.Buffer { return v.buffer }

// Count returns the number of vertices in the buffer.
func (v *VertexBuffer) Count() uint32 { return v.count }

// Destroy releases the buffer. Safe to call multiple times.
func (v *VertexBuffer) Destroy() {
	if v.buffer != nil {
		v.device.DestroyBuffer(v.buffer)
		v.buffer = nil
	}
}

// Object is the per-object pipeline state: a uniform buffer holding the
// object's matrix and colour, and the bind group exposing it to the shader.
type Object struct {
	device    hal.Device
	queue     hal.Queue
	uniform   hal.Buffer
	bindGroup hal.BindGroup
}

// BindGroup returns the bind group to set at group 0, or nil after Destroy.
func (o *Object) BindGroup() hal.BindGroup { return o.bindGroup }

// Update rewrites the uniform buffer in place, typically once per frame.
func (o *Object) Update(m affine.Matrix, width, height float32, c color.Color) error {
	if o.uniform == nil {
		return ErrDestroyed
	}
	if err := o.queue.WriteBuffer(o.uniform, 0, PackUniform(m, width, height, c)); err != nil {
		return fmt.Errorf("update uniform: %w", err)
	}
	return nil
}

// Destroy releases the bind group and uniform buffer. Safe to call
// multiple times.
func (o *Object) Destroy() {
	if o.bindGroup != nil {
		o.device.DestroyBindGroup(o.bindGroup)
		o.bindGroup = nil
	}
	if o.uniform != nil {
		o.device.DestroyBuffer(o.uniform)
		o.uniform = nil
	}
}
