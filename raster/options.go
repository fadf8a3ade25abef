// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "image/color"

// CanvasOption configures a Canvas during creation.
//
// Example:
//
//	c, err := raster.NewCanvas(400, 300,
//	    raster.WithBackground(color.White),
//	    raster.WithLabelSize(14),
//	)
type CanvasOption func(*canvasOptions)

// canvasOptions holds optional configuration for Canvas creation.
type canvasOptions struct {
	background color.Color
	labelSize  float64
}

// defaultCanvasOptions returns the default canvas options: a transparent
// background, matching a cleared WebGL canvas, and 12pt labels.
func defaultCanvasOptions() canvasOptions {
	return canvasOptions{
		background: color.Transparent,
		labelSize:  12,
	}
}

// WithBackground sets the colour the canvas is cleared to.
func WithBackground(c color.Color) CanvasOption {
	return func(o *canvasOptions) {
		if c != nil {
			o.background = c
		}
	}
}

// WithLabelSize sets the font size in points used by DrawLabel.
// Non-positive sizes are ignored.
func WithLabelSize(size float64) CanvasOption {
	return func(o *canvasOptions) {
		if size > 0 {
			o.labelSize = size
		}
	}
}
