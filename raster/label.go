// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// labelFont parses the embedded Go Regular font once.
var labelFont = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(goregular.TTF)
})

// newLabelFace creates a face for the given size in points at 72 DPI, so
// one point is one pixel.
func newLabelFace(size float64) (font.Face, error) {
	f, err := labelFont()
	if err != nil {
		return nil, fmt.Errorf("raster: parse label font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("raster: create label face: %w", err)
	}
	return face, nil
}

// DrawLabel draws text with its baseline starting at (x, y). Labels are
// not transformed; they annotate the canvas in pixel space.
func (c *Canvas) DrawLabel(text string, x, y int, col color.Color) error {
	face, err := newLabelFace(c.opts.labelSize)
	if err != nil {
		return err
	}
	defer func() {
		_ = face.Close()
	}()

	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
	return nil
}

// MeasureLabel returns the advance width of text in pixels, rounded up.
func (c *Canvas) MeasureLabel(text string) (int, error) {
	face, err := newLabelFace(c.opts.labelSize)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = face.Close()
	}()
	return font.MeasureString(face, text).Ceil(), nil
}
