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
	"fmt"

	"github.com/dromanov/apitrace/core/fault"
	"github.com/dromanov/apitrace/core/image"
	"github.com/dromanov/apitrace/core/log"
	"github.com/pkg/errors"
)

// cubeFaces is the number of array slices of each cube in a cube map.
const cubeFaces = 6

// ShaderResourceViewSlices returns the mip level and the range of array
// slices visible through a shader resource view described by desc.
// It panics if the view has an unknown shape.
func ShaderResourceViewSlices(desc ShaderResourceViewDesc) (mip, first, count uint32) {
	switch v := desc.View.(type) {
	case SRVBuffer, SRVBufferEx, SRVTexture2DMS:
		return 0, 0, 1
	case SRVTexture1D:
		return v.MostDetailedMip, 0, 1
	case SRVTexture1DArray:
		return v.MostDetailedMip, v.FirstArraySlice, v.ArraySize
	case SRVTexture2D:
		return v.MostDetailedMip, 0, 1
	case SRVTexture2DArray:
		return v.MostDetailedMip, v.FirstArraySlice, v.ArraySize
	case SRVTexture2DMSArray:
		return 0, v.FirstArraySlice, v.ArraySize
	case SRVTexture3D:
		return v.MostDetailedMip, 0, 1
	case SRVTextureCube:
		return v.MostDetailedMip, 0, cubeFaces
	case SRVTextureCubeArray:
		return v.MostDetailedMip, v.First2DArrayFace, cubeFaces * v.NumCubes
	default:
		panic(fmt.Errorf("Unknown shader resource view shape %T", desc.View))
	}
}

// RenderTargetViewMip returns the mip level addressed by a render target
// view described by desc. It panics if the view has an unknown shape.
func RenderTargetViewMip(desc RenderTargetViewDesc) uint32 {
	switch v := desc.View.(type) {
	case RTVBuffer, RTVTexture2DMS, RTVTexture2DMSArray:
		return 0
	case RTVTexture1D:
		return v.MipSlice
	case RTVTexture1DArray:
		return v.MipSlice
	case RTVTexture2D:
		return v.MipSlice
	case RTVTexture2DArray:
		return v.MipSlice
	case RTVTexture3D:
		return v.MipSlice
	default:
		panic(fmt.Errorf("Unknown render target view shape %T", desc.View))
	}
}

// DepthStencilViewMip returns the mip level addressed by a depth-stencil view
// described by desc. It panics if the view has an unknown shape.
func DepthStencilViewMip(desc DepthStencilViewDesc) uint32 {
	switch v := desc.View.(type) {
	case DSVTexture2DMS, DSVTexture2DMSArray:
		return 0
	case DSVTexture1D:
		return v.MipSlice
	case DSVTexture1DArray:
		return v.MipSlice
	case DSVTexture2D:
		return v.MipSlice
	case DSVTexture2DArray:
		return v.MipSlice
	default:
		panic(fmt.Errorf("Unknown depth-stencil view shape %T", desc.View))
	}
}

// ResourceLabel returns the trace label of a slice of a shader resource.
func ResourceLabel(stage Stage, slot, arraySlice, mipSlice uint32) string {
	return fmt.Sprintf("%v_RESOURCE_%d_ARRAY_%d_LEVEL_%d", stage, slot, arraySlice, mipSlice)
}

// RenderTargetLabel returns the trace label of the render target at index.
func RenderTargetLabel(index uint32) string {
	return fmt.Sprintf("RENDER_TARGET_%d", index)
}

// DepthStencilLabel is the trace label of the depth-stencil target.
const DepthStencilLabel = "DEPTH_STENCIL"

// DumpShaderResourceViewImage writes one image member per array slice
// visible through view, bound to slot of stage. Slices that cannot be
// extracted are skipped and added to stats.
func DumpShaderResourceViewImage(ctx context.Context, w JSONWriter, c DeviceContext, view ShaderResourceView, stage Stage, slot uint32, stats *Stats) {
	if view == nil {
		return
	}
	r := view.Resource()
	if r == nil {
		panic(fmt.Errorf("%v shader resource view in slot %d has no resource", stage, slot))
	}
	defer r.Release()

	desc := view.Desc()
	mip, first, count := ShaderResourceViewSlices(desc)
	for slice := first; slice < first+count; slice++ {
		label := ResourceLabel(stage, slot, slice, mip)
		img, err := GetSubresourceImage(ctx, c, r, desc.Format, slice, mip)
		stats.add(ctx, label, img, err)
		if img != nil {
			writeImageMember(w, label, img)
		}
	}
}

// GetRenderTargetViewImage returns the image of the resource viewed by view.
// Only array slice 0 of array views is extracted. A nil view returns a nil
// image and no error.
func GetRenderTargetViewImage(ctx context.Context, c DeviceContext, view RenderTargetView) (*image.Image, error) {
	if view == nil {
		return nil, nil
	}
	r := view.Resource()
	if r == nil {
		panic(fmt.Errorf("Render target view has no resource"))
	}
	defer r.Release()
	desc := view.Desc()
	// TODO: extract the view's FirstArraySlice rather than slice 0.
	return GetSubresourceImage(ctx, c, r, desc.Format, 0, RenderTargetViewMip(desc))
}

// GetDepthStencilViewImage returns the image of the resource viewed by view.
// Only array slice 0 of array views is extracted. A nil view returns a nil
// image and no error.
func GetDepthStencilViewImage(ctx context.Context, c DeviceContext, view DepthStencilView) (*image.Image, error) {
	if view == nil {
		return nil, nil
	}
	r := view.Resource()
	if r == nil {
		panic(fmt.Errorf("Depth-stencil view has no resource"))
	}
	defer r.Release()
	desc := view.Desc()
	// TODO: extract the view's FirstArraySlice rather than slice 0.
	return GetSubresourceImage(ctx, c, r, desc.Format, 0, DepthStencilViewMip(desc))
}

// Stats counts the images written by the dump functions and collects the
// reasons for the ones that were skipped.
type Stats struct {
	Images  int
	Skipped fault.List
}

func (s *Stats) add(ctx context.Context, label string, img *image.Image, err error) {
	if err != nil {
		log.D(ctx, "Skipping %s: %v", label, err)
	}
	if s == nil {
		return
	}
	switch {
	case err != nil:
		s.Skipped.Collect(errors.Wrap(err, label))
	case img != nil:
		s.Images++
	}
}
