// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import "github.com/gogpu/gputypes"

// PipelineOption configures a Pipeline during creation.
type PipelineOption func(*pipelineOptions)

type pipelineOptions struct {
	format gputypes.TextureFormat
	label  string
}

func defaultPipelineOptions() pipelineOptions {
	return pipelineOptions{
		format: gputypes.TextureFormatBGRA8Unorm,
		label:  "affine",
	}
}

// WithTargetFormat sets the colour target format of the render pipeline.
func WithTargetFormat(f gputypes.TextureFormat) PipelineOption {
	return func(o *pipelineOptions) {
		o.format = f
	}
}

// WithLabel sets the prefix of every debug label the pipeline creates.
func WithLabel(label string) PipelineOption {
	return func(o *pipelineOptions) {
		if label != "" {
			o.label = label
		}
	}
}
