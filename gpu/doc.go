// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gpu hands affine matrices to a WebGPU render pipeline.
//
// The package compiles a small WGSL shader with naga, creates the render
// pipeline through the gogpu/wgpu HAL, and packs each object's matrix,
// the target resolution and a fill colour into a uniform buffer:
//
//	p, err := gpu.NewPipeline(device, queue)
//	if err != nil {
//	    return err
//	}
//	defer p.Destroy()
//
//	verts, err := p.Upload(raster.FGeometry().Floats())
//	...
//	obj, err := p.PrepareObject(m, width, height, color.White)
//	...
//	// bind p.RenderPipeline(), obj.BindGroup() and verts.Buffer(), then
//	// draw verts.Count() vertices.
//
// Issuing the draw itself belongs to the caller's render pass.
package gpu
