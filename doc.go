// Package affine provides 2D affine transforms for positioning geometry
// before it is rendered.
//
// # Overview
//
// A [Matrix] is a 3x3 homogeneous matrix held as nine float64 values in
// row-major order. Constructors build the elementary transforms and
// [Multiply] composes them:
//
//	m := affine.Compose(
//	    affine.Translation(150, 150),
//	    affine.Rotation(angle),
//	    affine.Scaling(0.2, 1.5),
//	)
//	p := m.TransformPoint(affine.Pt(30, 0))
//
// # Conventions
//
// Points are row vectors (x, y, 1) multiplied on the left of the matrix, so
// the translation lives in the bottom row. Multiply(a, b) applies b first
// and a second, which lets a translate-rotate-scale chain be written in
// reading order while the scale is applied first.
//
// The last column of every matrix built from finite values is (0, 0, 1).
//
// # Rendering
//
// The package computes matrices only. Sub-package raster draws geometry on
// the CPU and sub-package gpu packs matrices into WGSL uniform buffers. A
// GPU shader that reads the nine values as mat3x3<f32> columns and
// evaluates matrix * vec3(p, 1) reproduces TransformPoint exactly.
//
// # Concurrency
//
// All functions are pure and every Matrix is a value, so no
// synchronization is needed. The package logger (see [SetLogger]) is the
// only shared state.
package affine
