// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/affine"
)

func TestFGeometry(t *testing.T) {
	g := FGeometry()
	require.NoError(t, g.Validate())
	assert.Equal(t, 6, g.Triangles())

	lo, hi := g.Bounds(affine.Identity())
	assert.Equal(t, affine.Pt(0, 0), lo)
	assert.Equal(t, affine.Pt(100, 150), hi)
}

func TestGeometryValidate(t *testing.T) {
	tests := []struct {
		name string
		g    Geometry
		want error
	}{
		{"empty", nil, ErrEmptyGeometry},
		{"one vertex", Geometry{{X: 1, Y: 1}}, ErrIncompleteTriangle},
		{"four vertices", FGeometry()[:4], ErrIncompleteTriangle},
		{"one triangle", FGeometry()[:3], nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.g.Validate()
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestGeometryFloatsRoundTrip(t *testing.T) {
	g := FGeometry()
	xy := g.Floats()
	require.Len(t, xy, 36)
	assert.Equal(t, []float32{0, 0, 30, 0, 0, 150}, xy[:6])

	back, err := GeometryFromFloats(xy)
	require.NoError(t, err)
	assert.Equal(t, g, back)
}

func TestGeometryFromFloatsErrors(t *testing.T) {
	_, err := GeometryFromFloats([]float32{1, 2, 3})
	assert.Error(t, err)

	_, err = GeometryFromFloats([]float32{1, 2, 3, 4})
	assert.ErrorIs(t, err, ErrIncompleteTriangle)

	_, err = GeometryFromFloats(nil)
	assert.ErrorIs(t, err, ErrEmptyGeometry)
}

func TestGeometryBoundsTransformed(t *testing.T) {
	g := FGeometry()

	lo, hi := g.Bounds(affine.Translation(150, 150))
	assert.Equal(t, affine.Pt(150, 150), lo)
	assert.Equal(t, affine.Pt(250, 300), hi)

	lo, hi = g.Bounds(affine.Scaling(-1, 2))
	assert.Equal(t, affine.Pt(-100, 0), lo)
	assert.Equal(t, affine.Pt(0, 300), hi)

	lo, hi = Geometry(nil).Bounds(affine.Identity())
	assert.Equal(t, affine.Point{}, lo)
	assert.Equal(t, affine.Point{}, hi)
}

func TestGeometryTransformed(t *testing.T) {
	g := FGeometry()[:3]
	got := g.Transformed(affine.Translation(5, 7))
	assert.Equal(t, Geometry{{X: 5, Y: 7}, {X: 35, Y: 7}, {X: 5, Y: 157}}, got)
	assert.Equal(t, affine.Pt(0, 0), g[0], "source geometry must not change")
}
