// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/naga"
)

// ErrShaderCompile is returned when WGSL fails to compile to SPIR-V.
var ErrShaderCompile = errors.New("gpu: shader compilation failed")

// TransformShaderWGSL positions 2D triangles with an affine matrix and
// fills them with a solid colour.
//
// The uniform holds the matrix as mat3x3<f32>. The rows of affine.Matrix
// are uploaded as the WGSL columns, so transform * vec3(p, 1) equals the
// row-vector product (p, 1) × M computed by affine.Matrix.TransformPoint.
// The result is in pixels and is remapped to clip space with y pointing
// down.
const TransformShaderWGSL = `
struct Uniforms {
    transform: mat3x3<f32>,
    resolution: vec2<f32>,
    fill_color: vec4<f32>,
}

@group(0) @binding(0) var<uniform> u: Uniforms;

@vertex
fn vs_main(@location(0) position: vec2<f32>) -> @builtin(position) vec4<f32> {
    let pixel = (u.transform * vec3<f32>(position, 1.0)).xy;
    let zero_to_one = pixel / u.resolution;
    let zero_to_two = zero_to_one * 2.0;
    let clip = (zero_to_two - vec2<f32>(1.0, 1.0)) * vec2<f32>(1.0, -1.0);
    return vec4<f32>(clip, 0.0, 1.0);
}

@fragment
fn fs_main() -> @location(0) vec4<f32> {
    return u.fill_color;
}
`

// Shader entry points in TransformShaderWGSL.
const (
	vertexEntryPoint   = "vs_main"
	fragmentEntryPoint = "fs_main"
)

// CompileShaderToSPIRV compiles WGSL source to SPIR-V words.
func CompileShaderToSPIRV(wgslSource string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgslSource)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrShaderCompile, err)
	}
	if len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("%w: SPIR-V length %d is not a multiple of 4", ErrShaderCompile, len(spirvBytes))
	}

	// SPIR-V is little-endian 32-bit words
	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}

	return spirvCode, nil
}
