// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"encoding/binary"
	"image/color"
	"math"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/affine"
)

// Uniform buffer layout of TransformShaderWGSL, in bytes.
//
//	[0:48)   transform  mat3x3<f32>, three columns padded to 16 bytes
//	[48:56)  resolution vec2<f32>
//	[56:64)  padding
//	[64:80)  fill_color vec4<f32>, straight alpha
const (
	matrixColumnStride = 16
	resolutionOffset   = 48
	colorOffset        = 64

	// UniformSize is the size of the per-object uniform buffer.
	UniformSize = 80
)

// vertexStride is the size of one float32x2 position.
const vertexStride = 8

// PackUniform encodes the per-object uniform block: the matrix, the
// canvas resolution in pixels and the fill colour.
func PackUniform(m affine.Matrix, width, height float32, c color.Color) []byte {
	buf := make([]byte, UniformSize)
	f := m.Float32()
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			putFloat32(buf, row*matrixColumnStride+col*4, f[row*3+col])
		}
	}

	putFloat32(buf, resolutionOffset, width)
	putFloat32(buf, resolutionOffset+4, height)

	if c == nil {
		c = color.Black
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	putFloat32(buf, colorOffset, float32(n.R)/255)
	putFloat32(buf, colorOffset+4, float32(n.G)/255)
	putFloat32(buf, colorOffset+8, float32(n.B)/255)
	putFloat32(buf, colorOffset+12, float32(n.A)/255)
	return buf
}

// PackVertices encodes interleaved x, y positions as little-endian
// float32 values for a vertex buffer.
func PackVertices(xy []float32) []byte {
	buf := make([]byte, 4*len(xy))
	for i, v := range xy {
		putFloat32(buf, 4*i, v)
	}
	return buf
}

// VertexLayout returns the vertex buffer layout of TransformShaderWGSL:
// one float32x2 position at location 0.
func VertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: vertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{
					Format:         gputypes.VertexFormatFloat32x2,
					Offset:         0,
					ShaderLocation: 0,
				},
			},
		},
	}
}

// Projection returns the pixel to clip-space remap performed by the
// vertex shader as an affine matrix. Composing it after an object matrix,
// Multiply(Projection(w, h), m), gives the full vertex transform.
func Projection(width, height float64) affine.Matrix {
	return affine.Multiply(affine.Translation(-1, 1), affine.Scaling(2/width, -2/height))
}

// ToClipSpace mirrors the remap in TransformShaderWGSL for a single point.
func ToClipSpace(p affine.Point, width, height float64) affine.Point {
	return affine.Point{
		X: p.X/width*2 - 1,
		Y: -(p.Y/height*2 - 1),
	}
}

func putFloat32(buf []byte, off int, v float32) {
	binary.LittleEndian.PutUint32(buf[off:off+4], math.Float32bits(v))
}
