// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster is a CPU reference renderer for affine-transformed
// triangle geometry.
//
// It plays the part a GPU pipeline plays in production: it receives
// geometry plus one matrix per object and fills the transformed triangles
// into an image. Its output is used to check matrices visually and in
// tests.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/vector"

	"github.com/gogpu/affine"
)

// ErrInvalidSize is returned by NewCanvas for non-positive dimensions.
var ErrInvalidSize = errors.New("raster: canvas size must be positive")

// maxCoord bounds the transformed vertex coordinates handed to the
// rasterizer. Its fixed-point path overflows beyond this range.
const maxCoord = 1 << 20

// Canvas is an RGBA image that transformed geometry is filled into.
//
// Canvas is not safe for concurrent use.
type Canvas struct {
	width  int
	height int
	img    *image.RGBA
	rast   *vector.Rasterizer
	opts   canvasOptions
}

// NewCanvas creates a canvas cleared to the background colour.
func NewCanvas(width, height int, opts ...CanvasOption) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	o := defaultCanvasOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Canvas{
		width:  width,
		height: height,
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		rast:   vector.NewRasterizer(width, height),
		opts:   o,
	}
	c.Clear()
	return c, nil
}

// Width returns the width of the canvas in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the height of the canvas in pixels.
func (c *Canvas) Height() int { return c.height }

// Image returns the underlying image. It is shared, not copied.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Clear fills the canvas with the background colour.
func (c *Canvas) Clear() {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(c.opts.background), image.Point{}, draw.Src)
}

// Fill transforms every vertex of g by m and fills the resulting triangles
// with col.
//
// Triangles are normalized to the same winding before rasterization so
// that mirroring transforms and mixed input winding do not cancel
// coverage. Triangles that collapse to zero area, or that contain
// non-finite or out-of-range vertices, are skipped.
func (c *Canvas) Fill(g Geometry, m affine.Matrix, col color.Color) error {
	if err := g.Validate(); err != nil {
		return err
	}

	c.rast.Reset(c.width, c.height)
	drawn := 0
	for i := 0; i+2 < len(g); i += 3 {
		a := m.TransformPoint(g[i])
		b := m.TransformPoint(g[i+1])
		d := m.TransformPoint(g[i+2])
		if !drawable(a) || !drawable(b) || !drawable(d) {
			continue
		}

		area := (b.X-a.X)*(d.Y-a.Y) - (b.Y-a.Y)*(d.X-a.X)
		if area == 0 {
			continue
		}
		if area < 0 {
			b, d = d, b
		}

		c.rast.MoveTo(float32(a.X), float32(a.Y))
		c.rast.LineTo(float32(b.X), float32(b.Y))
		c.rast.LineTo(float32(d.X), float32(d.Y))
		c.rast.ClosePath()
		drawn++
	}

	if drawn > 0 {
		c.rast.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
	}

	affine.Logger().Debug("raster: fill",
		"triangles", g.Triangles(),
		"drawn", drawn,
		"matrix", m.String())
	return nil
}

// FillRepeated fills g n times. Copy i (starting at 1) is transformed by
// m composed with itself i times, so each copy is placed relative to the
// previous one.
func (c *Canvas) FillRepeated(g Geometry, m affine.Matrix, n int, col color.Color) error {
	cur := m
	for i := 0; i < n; i++ {
		if err := c.Fill(g, cur, col); err != nil {
			return fmt.Errorf("copy %d: %w", i, err)
		}
		cur = affine.Multiply(cur, m)
	}
	return nil
}

// EncodePNG writes the canvas to w in PNG format.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

// SavePNG saves the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := c.EncodePNG(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

func drawable(p affine.Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) &&
		math.Abs(p.X) <= maxCoord && math.Abs(p.Y) <= maxCoord
}
