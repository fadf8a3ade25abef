// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/affine"
)

var (
	// ErrEmptyGeometry is returned when a geometry has no triangles.
	ErrEmptyGeometry = errors.New("raster: geometry is empty")

	// ErrIncompleteTriangle is returned when the vertex count of a
	// geometry is not a multiple of three.
	ErrIncompleteTriangle = errors.New("raster: vertex count is not a multiple of 3")
)

// Geometry is a triangle list in pixel coordinates. Every three
// consecutive points form one triangle.
type Geometry []affine.Point

// FGeometry returns the classic letter "F" test shape: a left
// column and two rungs, 100 pixels wide and 150 tall, anchored at (0, 0).
func FGeometry() Geometry {
	return Geometry{
		// left column
		{X: 0, Y: 0}, {X: 30, Y: 0}, {X: 0, Y: 150},
		{X: 0, Y: 150}, {X: 30, Y: 0}, {X: 30, Y: 150},

		// top rung
		{X: 30, Y: 0}, {X: 100, Y: 0}, {X: 30, Y: 30},
		{X: 30, Y: 30}, {X: 100, Y: 0}, {X: 100, Y: 30},

		// middle rung
		{X: 30, Y: 60}, {X: 67, Y: 60}, {X: 30, Y: 90},
		{X: 30, Y: 90}, {X: 67, Y: 60}, {X: 67, Y: 90},
	}
}

// GeometryFromFloats builds a geometry from interleaved x, y pairs, the
// layout used by vertex buffers.
func GeometryFromFloats(xy []float32) (Geometry, error) {
	if len(xy)%2 != 0 {
		return nil, fmt.Errorf("raster: odd coordinate count %d", len(xy))
	}
	g := make(Geometry, len(xy)/2)
	for i := range g {
		g[i] = affine.Pt(float64(xy[2*i]), float64(xy[2*i+1]))
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Validate checks that g holds at least one complete triangle.
func (g Geometry) Validate() error {
	if len(g) == 0 {
		return ErrEmptyGeometry
	}
	if len(g)%3 != 0 {
		return fmt.Errorf("%w: got %d vertices", ErrIncompleteTriangle, len(g))
	}
	return nil
}

// Triangles returns the number of complete triangles in g.
func (g Geometry) Triangles() int {
	return len(g) / 3
}

// Floats returns the vertices as interleaved float32 x, y pairs.
func (g Geometry) Floats() []float32 {
	out := make([]float32, 0, 2*len(g))
	for _, p := range g {
		out = append(out, float32(p.X), float32(p.Y))
	}
	return out
}

// Transformed returns a copy of g with every vertex transformed by m.
func (g Geometry) Transformed(m affine.Matrix) Geometry {
	out := make(Geometry, len(g))
	for i, p := range g {
		out[i] = m.TransformPoint(p)
	}
	return out
}

// Bounds returns the axis-aligned bounding box of g after transforming it
// by m. An empty geometry yields zero points.
func (g Geometry) Bounds(m affine.Matrix) (lo, hi affine.Point) {
	if len(g) == 0 {
		return lo, hi
	}
	lo = affine.Pt(math.Inf(1), math.Inf(1))
	hi = affine.Pt(math.Inf(-1), math.Inf(-1))
	for _, p := range g {
		q := m.TransformPoint(p)
		lo.X = math.Min(lo.X, q.X)
		lo.Y = math.Min(lo.Y, q.Y)
		hi.X = math.Max(hi.X, q.X)
		hi.Y = math.Max(hi.Y, q.Y)
	}
	return lo, hi
}
