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

package soft

import (
	"github.com/dromanov/apitrace/gapis/api/d3d11"
	"github.com/pkg/errors"
)

// view holds a reference to the viewed resource for its lifetime.
type view struct {
	object
	res *Resource
}

func (d *Device) newView(v *view, kind Kind, res *Resource) {
	res.AddRef()
	v.res = res
	d.track(&v.object, kind, func() {
		v.res.Release()
		v.res = nil
	})
}

func (v *view) Resource() d3d11.Resource {
	v.res.AddRef()
	return v.res
}

// ShaderResourceView is an in-memory d3d11.ShaderResourceView.
type ShaderResourceView struct {
	view
	desc d3d11.ShaderResourceViewDesc
}

func (v *ShaderResourceView) Desc() d3d11.ShaderResourceViewDesc { return v.desc }

// RenderTargetView is an in-memory d3d11.RenderTargetView.
type RenderTargetView struct {
	view
	desc d3d11.RenderTargetViewDesc
}

func (v *RenderTargetView) Desc() d3d11.RenderTargetViewDesc { return v.desc }

// DepthStencilView is an in-memory d3d11.DepthStencilView.
type DepthStencilView struct {
	view
	desc d3d11.DepthStencilViewDesc
}

func (v *DepthStencilView) Desc() d3d11.DepthStencilViewDesc { return v.desc }

var (
	_ d3d11.ShaderResourceView = &ShaderResourceView{}
	_ d3d11.RenderTargetView   = &RenderTargetView{}
	_ d3d11.DepthStencilView   = &DepthStencilView{}
)

// viewRange is the part of a resource a view can address.
type viewRange struct {
	dim         d3d11.ResourceDimension
	multisample bool
	cube        bool
	mip         uint32
	first       uint32
	count       uint32
}

func (v viewRange) check(r d3d11.ResourceDesc) error {
	switch {
	case r.Dimension != v.dim:
		return errors.Wrapf(ErrInvalidArg, "View of a %v on a %v", v.dim, r.Dimension)
	case (r.SampleDesc.Count > 1) != v.multisample:
		return errors.Wrapf(ErrInvalidArg, "View multisampling does not match %d samples", r.SampleDesc.Count)
	case v.cube && r.MiscFlags&d3d11.MiscTextureCube == 0:
		return errors.Wrap(ErrInvalidArg, "Cube view of a texture without the cube flag")
	case v.mip >= r.MipLevels:
		return errors.Wrapf(ErrInvalidArg, "Mip %d out of range for %d mip levels", v.mip, r.MipLevels)
	case v.count == 0 || v.first+v.count > r.ArraySize:
		return errors.Wrapf(ErrInvalidArg, "Array slices [%d, %d) out of range for array size %d",
			v.first, v.first+v.count, r.ArraySize)
	}
	return nil
}

func checkSRV(r d3d11.ResourceDesc, desc d3d11.ShaderResourceViewDesc) error {
	const (
		buf = d3d11.ResourceDimensionBuffer
		t1d = d3d11.ResourceDimensionTexture1D
		t2d = d3d11.ResourceDimensionTexture2D
		t3d = d3d11.ResourceDimensionTexture3D
	)
	var v viewRange
	switch s := desc.View.(type) {
	case d3d11.SRVBuffer, d3d11.SRVBufferEx:
		v = viewRange{dim: buf, count: 1}
	case d3d11.SRVTexture1D:
		v = viewRange{dim: t1d, mip: s.MostDetailedMip, count: 1}
	case d3d11.SRVTexture1DArray:
		v = viewRange{dim: t1d, mip: s.MostDetailedMip, first: s.FirstArraySlice, count: s.ArraySize}
	case d3d11.SRVTexture2D:
		v = viewRange{dim: t2d, mip: s.MostDetailedMip, count: 1}
	case d3d11.SRVTexture2DArray:
		v = viewRange{dim: t2d, mip: s.MostDetailedMip, first: s.FirstArraySlice, count: s.ArraySize}
	case d3d11.SRVTexture2DMS:
		v = viewRange{dim: t2d, multisample: true, count: 1}
	case d3d11.SRVTexture2DMSArray:
		v = viewRange{dim: t2d, multisample: true, first: s.FirstArraySlice, count: s.ArraySize}
	case d3d11.SRVTexture3D:
		v = viewRange{dim: t3d, mip: s.MostDetailedMip, count: 1}
	case d3d11.SRVTextureCube:
		v = viewRange{dim: t2d, cube: true, mip: s.MostDetailedMip, count: 6}
	case d3d11.SRVTextureCubeArray:
		v = viewRange{dim: t2d, cube: true, mip: s.MostDetailedMip, first: s.First2DArrayFace, count: 6 * s.NumCubes}
	default:
		return errors.Wrapf(ErrInvalidArg, "Shader resource view shape %T", desc.View)
	}
	return v.check(r)
}

func checkRTV(r d3d11.ResourceDesc, desc d3d11.RenderTargetViewDesc) error {
	const (
		buf = d3d11.ResourceDimensionBuffer
		t1d = d3d11.ResourceDimensionTexture1D
		t2d = d3d11.ResourceDimensionTexture2D
		t3d = d3d11.ResourceDimensionTexture3D
	)
	var v viewRange
	switch s := desc.View.(type) {
	case d3d11.RTVBuffer:
		v = viewRange{dim: buf, count: 1}
	case d3d11.RTVTexture1D:
		v = viewRange{dim: t1d, mip: s.MipSlice, count: 1}
	case d3d11.RTVTexture1DArray:
		v = viewRange{dim: t1d, mip: s.MipSlice, first: s.FirstArraySlice, count: s.ArraySize}
	case d3d11.RTVTexture2D:
		v = viewRange{dim: t2d, mip: s.MipSlice, count: 1}
	case d3d11.RTVTexture2DArray:
		v = viewRange{dim: t2d, mip: s.MipSlice, first: s.FirstArraySlice, count: s.ArraySize}
	case d3d11.RTVTexture2DMS:
		v = viewRange{dim: t2d, multisample: true, count: 1}
	case d3d11.RTVTexture2DMSArray:
		v = viewRange{dim: t2d, multisample: true, first: s.FirstArraySlice, count: s.ArraySize}
	case d3d11.RTVTexture3D:
		v = viewRange{dim: t3d, mip: s.MipSlice, count: 1}
	default:
		return errors.Wrapf(ErrInvalidArg, "Render target view shape %T", desc.View)
	}
	if r.BindFlags&d3d11.BindRenderTarget == 0 {
		return errors.Wrap(ErrInvalidArg, "Render target view of a resource without the render target bind flag")
	}
	return v.check(r)
}

func checkDSV(r d3d11.ResourceDesc, desc d3d11.DepthStencilViewDesc) error {
	const (
		t1d = d3d11.ResourceDimensionTexture1D
		t2d = d3d11.ResourceDimensionTexture2D
	)
	var v viewRange
	switch s := desc.View.(type) {
	case d3d11.DSVTexture1D:
		v = viewRange{dim: t1d, mip: s.MipSlice, count: 1}
	case d3d11.DSVTexture1DArray:
		v = viewRange{dim: t1d, mip: s.MipSlice, first: s.FirstArraySlice, count: s.ArraySize}
	case d3d11.DSVTexture2D:
		v = viewRange{dim: t2d, mip: s.MipSlice, count: 1}
	case d3d11.DSVTexture2DArray:
		v = viewRange{dim: t2d, mip: s.MipSlice, first: s.FirstArraySlice, count: s.ArraySize}
	case d3d11.DSVTexture2DMS:
		v = viewRange{dim: t2d, multisample: true, count: 1}
	case d3d11.DSVTexture2DMSArray:
		v = viewRange{dim: t2d, multisample: true, first: s.FirstArraySlice, count: s.ArraySize}
	default:
		return errors.Wrapf(ErrInvalidArg, "Depth-stencil view shape %T", desc.View)
	}
	if r.BindFlags&d3d11.BindDepthStencil == 0 {
		return errors.Wrap(ErrInvalidArg, "Depth-stencil view of a resource without the depth-stencil bind flag")
	}
	return v.check(r)
}
