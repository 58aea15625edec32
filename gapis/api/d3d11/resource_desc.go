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
	"fmt"

	"github.com/dromanov/apitrace/core/fault"
	"github.com/dromanov/apitrace/gapis/api/dxgi"
	"github.com/pkg/errors"
)

// ErrNotImplemented is returned when asked to create a resource of a
// dimension that has no creation descriptor.
const ErrNotImplemented = fault.Const("Not implemented")

// ResourceDesc is the description of a resource of any dimension.
// Fields that do not apply to the resource's dimension hold their defaults:
// Height, Depth, MipLevels and ArraySize of 1, a single sample and no flags.
type ResourceDesc struct {
	Dimension      ResourceDimension
	Width          uint32
	Height         uint32
	Depth          uint32
	MipLevels      uint32
	ArraySize      uint32
	Format         dxgi.Format
	SampleDesc     SampleDesc
	Usage          Usage
	BindFlags      BindFlags
	CPUAccessFlags CPUAccessFlags
	MiscFlags      MiscFlags
}

// defaultResourceDesc returns a ResourceDesc of dimension d holding the
// defaults of every field.
func defaultResourceDesc(d ResourceDimension) ResourceDesc {
	return ResourceDesc{
		Dimension:  d,
		Height:     1,
		Depth:      1,
		MipLevels:  1,
		ArraySize:  1,
		Format:     dxgi.Format_UNKNOWN,
		SampleDesc: SampleDesc{Count: 1},
		Usage:      UsageDefault,
	}
}

// Subresource returns the linear index of the subresource at the array slice
// and mip level.
func (d ResourceDesc) Subresource(arraySlice, mipSlice uint32) uint32 {
	return arraySlice*d.MipLevels + mipSlice
}

// NewResourceDesc returns the ResourceDesc holding the fields of the native
// descriptor n. It panics if n is not one of the native descriptor types.
func NewResourceDesc(n NativeDesc) ResourceDesc {
	out := defaultResourceDesc(ResourceDimensionUnknown)
	switch n := n.(type) {
	case BufferDesc:
		out.Dimension = ResourceDimensionBuffer
		out.Width = n.ByteWidth
		out.Usage, out.BindFlags, out.CPUAccessFlags, out.MiscFlags = n.Usage, n.BindFlags, n.CPUAccessFlags, n.MiscFlags
	case Texture1DDesc:
		out.Dimension = ResourceDimensionTexture1D
		out.Width = n.Width
		out.MipLevels, out.ArraySize, out.Format = n.MipLevels, n.ArraySize, n.Format
		out.Usage, out.BindFlags, out.CPUAccessFlags, out.MiscFlags = n.Usage, n.BindFlags, n.CPUAccessFlags, n.MiscFlags
	case Texture2DDesc:
		out.Dimension = ResourceDimensionTexture2D
		out.Width, out.Height = n.Width, n.Height
		out.MipLevels, out.ArraySize, out.Format = n.MipLevels, n.ArraySize, n.Format
		out.SampleDesc = n.SampleDesc
		out.Usage, out.BindFlags, out.CPUAccessFlags, out.MiscFlags = n.Usage, n.BindFlags, n.CPUAccessFlags, n.MiscFlags
	case Texture3DDesc:
		out.Dimension = ResourceDimensionTexture3D
		out.Width, out.Height, out.Depth = n.Width, n.Height, n.Depth
		out.MipLevels, out.Format = n.MipLevels, n.Format
		out.Usage, out.BindFlags, out.CPUAccessFlags, out.MiscFlags = n.Usage, n.BindFlags, n.CPUAccessFlags, n.MiscFlags
	default:
		panic(fmt.Errorf("Unknown native resource descriptor %T", n))
	}
	return out
}

// GetResourceDesc returns the description of the resource r.
// It panics if r reports a descriptor of an unknown type.
func GetResourceDesc(r Resource) ResourceDesc {
	return NewResourceDesc(r.Desc())
}

// Native returns the native creation descriptor for d. Fields that do not
// apply to d's dimension are dropped. ErrNotImplemented is returned for
// unknown dimensions.
func (d ResourceDesc) Native() (NativeDesc, error) {
	switch d.Dimension {
	case ResourceDimensionBuffer:
		return BufferDesc{
			ByteWidth:      d.Width,
			Usage:          d.Usage,
			BindFlags:      d.BindFlags,
			CPUAccessFlags: d.CPUAccessFlags,
			MiscFlags:      d.MiscFlags,
		}, nil
	case ResourceDimensionTexture1D:
		return Texture1DDesc{
			Width:          d.Width,
			MipLevels:      d.MipLevels,
			ArraySize:      d.ArraySize,
			Format:         d.Format,
			Usage:          d.Usage,
			BindFlags:      d.BindFlags,
			CPUAccessFlags: d.CPUAccessFlags,
			MiscFlags:      d.MiscFlags,
		}, nil
	case ResourceDimensionTexture2D:
		return Texture2DDesc{
			Width:          d.Width,
			Height:         d.Height,
			MipLevels:      d.MipLevels,
			ArraySize:      d.ArraySize,
			Format:         d.Format,
			SampleDesc:     d.SampleDesc,
			Usage:          d.Usage,
			BindFlags:      d.BindFlags,
			CPUAccessFlags: d.CPUAccessFlags,
			MiscFlags:      d.MiscFlags,
		}, nil
	case ResourceDimensionTexture3D:
		return Texture3DDesc{
			Width:          d.Width,
			Height:         d.Height,
			Depth:          d.Depth,
			MipLevels:      d.MipLevels,
			Format:         d.Format,
			Usage:          d.Usage,
			BindFlags:      d.BindFlags,
			CPUAccessFlags: d.CPUAccessFlags,
			MiscFlags:      d.MiscFlags,
		}, nil
	default:
		return nil, errors.Wrapf(ErrNotImplemented, "Creating resource of dimension %v", d.Dimension)
	}
}

// CreateResource asks dev to allocate a new resource described by d.
func CreateResource(dev Device, d ResourceDesc) (Resource, error) {
	n, err := d.Native()
	if err != nil {
		return nil, err
	}
	switch n := n.(type) {
	case BufferDesc:
		return dev.CreateBuffer(n)
	case Texture1DDesc:
		return dev.CreateTexture1D(n)
	case Texture2DDesc:
		return dev.CreateTexture2D(n)
	case Texture3DDesc:
		return dev.CreateTexture3D(n)
	}
	return nil, errors.Wrapf(ErrNotImplemented, "Creating resource from %T", n)
}
