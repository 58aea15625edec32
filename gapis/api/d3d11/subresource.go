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

	"github.com/dromanov/apitrace/core/image"
	"github.com/dromanov/apitrace/core/log"
	"github.com/dromanov/apitrace/core/math/u32"
	"github.com/dromanov/apitrace/gapis/api/dxgi"
)

// resolvedDesc returns the description of a single-sampled copy of the mip
// level mipSlice of a resource described by d.
func resolvedDesc(d ResourceDesc, mipSlice uint32) ResourceDesc {
	out := d
	out.Width = u32.MipSize(d.Width, mipSlice)
	out.Height = u32.MipSize(d.Height, mipSlice)
	out.Depth = u32.MipSize(d.Depth, mipSlice)
	out.ArraySize = 1
	out.MipLevels = 1
	out.SampleDesc = SampleDesc{Count: 1, Quality: 0}
	out.Usage = UsageDefault
	out.BindFlags = 0
	out.CPUAccessFlags = 0
	out.MiscFlags &= ResolvedMiscMask
	return out
}

// stagingDesc returns the description of a CPU readable copy of a resource
// described by d.
func stagingDesc(d ResourceDesc) ResourceDesc {
	d.Usage = UsageStaging
	d.CPUAccessFlags = CPUAccessRead
	// A single slice cannot be a cube.
	d.MiscFlags &^= MiscTextureCube
	return d
}

// GetSubresourceImage returns a host copy of the subresource at arraySlice
// and mipSlice of r, interpreted as format.
//
// Multisampled resources are resolved to a single sample first. The
// subresource is then copied to a staging resource, which is mapped and
// converted. All intermediate resources are released before returning.
//
// A nil resource returns a nil image and no error. GetSubresourceImage panics
// if arraySlice or mipSlice are out of range for r, before any call is made
// to the device.
func GetSubresourceImage(ctx context.Context, c DeviceContext, r Resource, format dxgi.Format, arraySlice, mipSlice uint32) (*image.Image, error) {
	if r == nil {
		return nil, nil
	}

	desc := GetResourceDesc(r)
	if arraySlice >= desc.ArraySize {
		panic(fmt.Errorf("Array slice %d out of range for %v of array size %d", arraySlice, desc.Dimension, desc.ArraySize))
	}
	if mipSlice >= desc.MipLevels {
		panic(fmt.Errorf("Mip slice %d out of range for %v of %d mip levels", mipSlice, desc.Dimension, desc.MipLevels))
	}
	if desc.SampleDesc.Count == 0 {
		panic(fmt.Errorf("%v has a sample count of 0", desc.Dimension))
	}

	ctx = log.V{
		"format":     format,
		"arraySlice": arraySlice,
		"mipSlice":   mipSlice,
	}.Bind(ctx)

	dev := c.Device()
	defer dev.Release()

	sub := desc.Subresource(arraySlice, mipSlice)
	shape := resolvedDesc(desc, mipSlice)

	src := r
	if desc.SampleDesc.Count > 1 {
		resolved, err := CreateResource(dev, shape)
		if err != nil {
			return nil, log.Err(ctx, err, "Creating resolved resource")
		}
		defer resolved.Release()
		log.D(ctx, "Resolving %d samples of subresource %d", desc.SampleDesc.Count, sub)
		c.ResolveSubresource(resolved, 0, r, sub, format)
		src, sub = resolved, 0
	}

	staged := stagingDesc(shape)
	staging, err := CreateResource(dev, staged)
	if err != nil {
		return nil, log.Err(ctx, err, "Creating staging resource")
	}
	defer staging.Release()

	c.CopySubresourceRegion(staging, 0, 0, 0, 0, src, sub, nil)

	mapped, err := c.Map(staging, 0, MapRead, 0)
	if err != nil {
		return nil, log.Err(ctx, err, "Mapping staging resource")
	}
	defer c.Unmap(staging, 0)

	img, err := dxgi.ConvertImage(format, mapped.Data, mapped.RowPitch, staged.Width, staged.Height)
	if err != nil {
		return nil, log.Err(ctx, err, "Converting subresource")
	}
	return img, nil
}
