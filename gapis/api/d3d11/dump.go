// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package d3d11

import (
	"context"

	"github.com/dromanov/apitrace/core/image"
	"github.com/dromanov/apitrace/core/log"
)

// JSONWriter is the streaming JSON output of a state dump.
type JSONWriter interface {
	BeginObject()
	EndObject()
	BeginMember(name string)
	EndMember()
	// WriteImage writes img as an image value, labelled with format.
	WriteImage(img *image.Image, format string)
}

// ImageFormatLabel is the format label written with every dumped image.
const ImageFormatLabel = "UNKNOWN"

// Member names of the dumped state.
const (
	TexturesMember    = "textures"
	FramebufferMember = "framebuffer"
)

// DumpOptions control which bindings are dumped.
type DumpOptions struct {
	// Stages are walked in order. Nil walks all of Stages.
	Stages []Stage
	// MaxShaderResources is the number of slots walked per stage. Zero
	// walks SamplerSlotCount slots.
	MaxShaderResources uint32
	// MaxRenderTargets is the number of render target slots walked. Zero
	// walks SimultaneousRenderTargetCount slots.
	MaxRenderTargets uint32
}

func (o DumpOptions) withDefaults() DumpOptions {
	if o.Stages == nil {
		o.Stages = Stages
	}
	if o.MaxShaderResources == 0 {
		o.MaxShaderResources = SamplerSlotCount
	}
	if o.MaxRenderTargets == 0 {
		o.MaxRenderTargets = SimultaneousRenderTargetCount
	}
	return o
}

func writeImageMember(w JSONWriter, label string, img *image.Image) {
	w.BeginMember(label)
	w.WriteImage(img, ImageFormatLabel)
	w.EndMember()
}

// DumpStageTextures writes the images of all the views bound to stage.
// views holds one entry per slot, nil for empty slots. The caller's
// reference to each view is released.
func DumpStageTextures(ctx context.Context, w JSONWriter, c DeviceContext, stage Stage, views []ShaderResourceView, stats *Stats) {
	ctx = log.Enter(ctx, stage.String())
	for slot, view := range views {
		if view == nil {
			continue
		}
		DumpShaderResourceViewImage(ctx, w, c, view, stage, uint32(slot), stats)
		view.Release()
	}
}

// DumpTextures writes the "textures" member, holding the images of the
// shader resources bound to each stage in opts.
func DumpTextures(ctx context.Context, w JSONWriter, c DeviceContext, opts DumpOptions) Stats {
	ctx = log.Enter(ctx, "DumpTextures")
	opts = opts.withDefaults()
	stats := Stats{}
	w.BeginMember(TexturesMember)
	w.BeginObject()
	for _, stage := range opts.Stages {
		views := c.GetShaderResources(stage, 0, opts.MaxShaderResources)
		DumpStageTextures(ctx, w, c, stage, views, &stats)
	}
	w.EndObject()
	w.EndMember()
	log.D(ctx, "Dumped %d textures, skipped %d", stats.Images, len(stats.Skipped))
	return stats
}

// DumpFramebuffer writes the "framebuffer" member, holding the images of the
// bound render targets and depth-stencil target.
func DumpFramebuffer(ctx context.Context, w JSONWriter, c DeviceContext, opts DumpOptions) Stats {
	ctx = log.Enter(ctx, "DumpFramebuffer")
	opts = opts.withDefaults()
	stats := Stats{}
	w.BeginMember(FramebufferMember)
	w.BeginObject()

	rtvs, dsv := c.OMGetRenderTargets(opts.MaxRenderTargets)
	for i, rtv := range rtvs {
		if rtv == nil {
			continue
		}
		label := RenderTargetLabel(uint32(i))
		img, err := GetRenderTargetViewImage(ctx, c, rtv)
		stats.add(ctx, label, img, err)
		if img != nil {
			writeImageMember(w, label, img)
		}
		rtv.Release()
	}

	if dsv != nil {
		img, err := GetDepthStencilViewImage(ctx, c, dsv)
		stats.add(ctx, DepthStencilLabel, img, err)
		if img != nil {
			writeImageMember(w, DepthStencilLabel, img)
		}
		dsv.Release()
	}

	w.EndObject()
	w.EndMember()
	log.D(ctx, "Dumped %d framebuffer images, skipped %d", stats.Images, len(stats.Skipped))
	return stats
}

// DumpState writes an object holding the "textures" and "framebuffer"
// members.
func DumpState(ctx context.Context, w JSONWriter, c DeviceContext, opts DumpOptions) Stats {
	w.BeginObject()
	textures := DumpTextures(ctx, w, c, opts)
	framebuffer := DumpFramebuffer(ctx, w, c, opts)
	w.EndObject()
	return Stats{
		Images:  textures.Images + framebuffer.Images,
		Skipped: append(textures.Skipped, framebuffer.Skipped...),
	}
}

// GetRenderTargetImage returns the image of the render target bound to slot
// 0, or nil if there is none.
func GetRenderTargetImage(ctx context.Context, c DeviceContext) (*image.Image, error) {
	rtvs, dsv := c.OMGetRenderTargets(1)
	if dsv != nil {
		dsv.Release()
	}
	if len(rtvs) == 0 || rtvs[0] == nil {
		return nil, nil
	}
	defer rtvs[0].Release()
	return GetRenderTargetViewImage(ctx, c, rtvs[0])
}
