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

// Package native implements the d3d11 device interfaces over a Direct3D 11
// device, calling the COM interfaces of d3d11.dll directly.
//
// The structures in this file match the memory layout of the D3D11
// descriptors and are shared by all platforms so that their conversions can
// be tested anywhere.
package native

import (
	"github.com/dromanov/apitrace/core/math/u32"
	"github.com/dromanov/apitrace/gapis/api/d3d11"
	"github.com/dromanov/apitrace/gapis/api/dxgi"
)

// bufferDesc matches D3D11_BUFFER_DESC.
type bufferDesc struct {
	ByteWidth           uint32
	Usage               uint32
	BindFlags           uint32
	CPUAccessFlags      uint32
	MiscFlags           uint32
	StructureByteStride uint32
}

// texture1DDesc matches D3D11_TEXTURE1D_DESC.
type texture1DDesc struct {
	Width          uint32
	MipLevels      uint32
	ArraySize      uint32
	Format         uint32
	Usage          uint32
	BindFlags      uint32
	CPUAccessFlags uint32
	MiscFlags      uint32
}

// texture2DDesc matches D3D11_TEXTURE2D_DESC.
type texture2DDesc struct {
	Width          uint32
	Height         uint32
	MipLevels      uint32
	ArraySize      uint32
	Format         uint32
	SampleCount    uint32
	SampleQuality  uint32
	Usage          uint32
	BindFlags      uint32
	CPUAccessFlags uint32
	MiscFlags      uint32
}

// texture3DDesc matches D3D11_TEXTURE3D_DESC.
type texture3DDesc struct {
	Width          uint32
	Height         uint32
	Depth          uint32
	MipLevels      uint32
	Format         uint32
	Usage          uint32
	BindFlags      uint32
	CPUAccessFlags uint32
	MiscFlags      uint32
}

// srvDesc matches D3D11_SHADER_RESOURCE_VIEW_DESC. U holds the largest
// member of the dimension union.
type srvDesc struct {
	Format    uint32
	Dimension uint32
	U         [4]uint32
}

// rtvDesc matches D3D11_RENDER_TARGET_VIEW_DESC.
type rtvDesc struct {
	Format    uint32
	Dimension uint32
	U         [3]uint32
}

// dsvDesc matches D3D11_DEPTH_STENCIL_VIEW_DESC.
type dsvDesc struct {
	Format    uint32
	Dimension uint32
	Flags     uint32
	U         [3]uint32
}

// box matches D3D11_BOX.
type box struct {
	Left, Top, Front, Right, Bottom, Back uint32
}

func toBufferDesc(d d3d11.BufferDesc) bufferDesc {
	return bufferDesc{
		ByteWidth:           d.ByteWidth,
		Usage:               uint32(d.Usage),
		BindFlags:           uint32(d.BindFlags),
		CPUAccessFlags:      uint32(d.CPUAccessFlags),
		MiscFlags:           uint32(d.MiscFlags),
		StructureByteStride: d.StructureByteStride,
	}
}

func (c bufferDesc) desc() d3d11.BufferDesc {
	return d3d11.BufferDesc{
		ByteWidth:           c.ByteWidth,
		Usage:               d3d11.Usage(c.Usage),
		BindFlags:           d3d11.BindFlags(c.BindFlags),
		CPUAccessFlags:      d3d11.CPUAccessFlags(c.CPUAccessFlags),
		MiscFlags:           d3d11.MiscFlags(c.MiscFlags),
		StructureByteStride: c.StructureByteStride,
	}
}

func toTexture1DDesc(d d3d11.Texture1DDesc) texture1DDesc {
	return texture1DDesc{
		Width:          d.Width,
		MipLevels:      d.MipLevels,
		ArraySize:      d.ArraySize,
		Format:         uint32(d.Format),
		Usage:          uint32(d.Usage),
		BindFlags:      uint32(d.BindFlags),
		CPUAccessFlags: uint32(d.CPUAccessFlags),
		MiscFlags:      uint32(d.MiscFlags),
	}
}

func (c texture1DDesc) desc() d3d11.Texture1DDesc {
	return d3d11.Texture1DDesc{
		Width:          c.Width,
		MipLevels:      c.MipLevels,
		ArraySize:      c.ArraySize,
		Format:         dxgi.Format(c.Format),
		Usage:          d3d11.Usage(c.Usage),
		BindFlags:      d3d11.BindFlags(c.BindFlags),
		CPUAccessFlags: d3d11.CPUAccessFlags(c.CPUAccessFlags),
		MiscFlags:      d3d11.MiscFlags(c.MiscFlags),
	}
}

func toTexture2DDesc(d d3d11.Texture2DDesc) texture2DDesc {
	return texture2DDesc{
		Width:          d.Width,
		Height:         d.Height,
		MipLevels:      d.MipLevels,
		ArraySize:      d.ArraySize,
		Format:         uint32(d.Format),
		SampleCount:    d.SampleDesc.Count,
		SampleQuality:  d.SampleDesc.Quality,
		Usage:          uint32(d.Usage),
		BindFlags:      uint32(d.BindFlags),
		CPUAccessFlags: uint32(d.CPUAccessFlags),
		MiscFlags:      uint32(d.MiscFlags),
	}
}

func (c texture2DDesc) desc() d3d11.Texture2DDesc {
	return d3d11.Texture2DDesc{
		Width:          c.Width,
		Height:         c.Height,
		MipLevels:      c.MipLevels,
		ArraySize:      c.ArraySize,
		Format:         dxgi.Format(c.Format),
		SampleDesc:     d3d11.SampleDesc{Count: c.SampleCount, Quality: c.SampleQuality},
		Usage:          d3d11.Usage(c.Usage),
		BindFlags:      d3d11.BindFlags(c.BindFlags),
		CPUAccessFlags: d3d11.CPUAccessFlags(c.CPUAccessFlags),
		MiscFlags:      d3d11.MiscFlags(c.MiscFlags),
	}
}

func toTexture3DDesc(d d3d11.Texture3DDesc) texture3DDesc {
	return texture3DDesc{
		Width:          d.Width,
		Height:         d.Height,
		Depth:          d.Depth,
		MipLevels:      d.MipLevels,
		Format:         uint32(d.Format),
		Usage:          uint32(d.Usage),
		BindFlags:      uint32(d.BindFlags),
		CPUAccessFlags: uint32(d.CPUAccessFlags),
		MiscFlags:      uint32(d.MiscFlags),
	}
}

func (c texture3DDesc) desc() d3d11.Texture3DDesc {
	return d3d11.Texture3DDesc{
		Width:          c.Width,
		Height:         c.Height,
		Depth:          c.Depth,
		MipLevels:      c.MipLevels,
		Format:         dxgi.Format(c.Format),
		Usage:          d3d11.Usage(c.Usage),
		BindFlags:      d3d11.BindFlags(c.BindFlags),
		CPUAccessFlags: d3d11.CPUAccessFlags(c.CPUAccessFlags),
		MiscFlags:      d3d11.MiscFlags(c.MiscFlags),
	}
}

// desc returns the view description held by c. Views of an unknown
// dimension have a nil shape.
func (c srvDesc) desc() d3d11.ShaderResourceViewDesc {
	out := d3d11.ShaderResourceViewDesc{Format: dxgi.Format(c.Format)}
	u := c.U
	switch d3d11.SRVDimension(c.Dimension) {
	case d3d11.SRVDimensionBuffer:
		out.View = d3d11.SRVBuffer{FirstElement: u[0], NumElements: u[1]}
	case d3d11.SRVDimensionBufferEx:
		out.View = d3d11.SRVBufferEx{FirstElement: u[0], NumElements: u[1], Flags: u[2]}
	case d3d11.SRVDimensionTexture1D:
		out.View = d3d11.SRVTexture1D{MostDetailedMip: u[0], MipLevels: u[1]}
	case d3d11.SRVDimensionTexture1DArray:
		out.View = d3d11.SRVTexture1DArray{MostDetailedMip: u[0], MipLevels: u[1], FirstArraySlice: u[2], ArraySize: u[3]}
	case d3d11.SRVDimensionTexture2D:
		out.View = d3d11.SRVTexture2D{MostDetailedMip: u[0], MipLevels: u[1]}
	case d3d11.SRVDimensionTexture2DArray:
		out.View = d3d11.SRVTexture2DArray{MostDetailedMip: u[0], MipLevels: u[1], FirstArraySlice: u[2], ArraySize: u[3]}
	case d3d11.SRVDimensionTexture2DMS:
		out.View = d3d11.SRVTexture2DMS{}
	case d3d11.SRVDimensionTexture2DMSArray:
		out.View = d3d11.SRVTexture2DMSArray{FirstArraySlice: u[0], ArraySize: u[1]}
	case d3d11.SRVDimensionTexture3D:
		out.View = d3d11.SRVTexture3D{MostDetailedMip: u[0], MipLevels: u[1]}
	case d3d11.SRVDimensionTextureCube:
		out.View = d3d11.SRVTextureCube{MostDetailedMip: u[0], MipLevels: u[1]}
	case d3d11.SRVDimensionTextureCubeArray:
		out.View = d3d11.SRVTextureCubeArray{MostDetailedMip: u[0], MipLevels: u[1], First2DArrayFace: u[2], NumCubes: u[3]}
	}
	return out
}

func toSRVDesc(d d3d11.ShaderResourceViewDesc) srvDesc {
	out := srvDesc{Format: uint32(d.Format)}
	if d.View == nil {
		return out
	}
	out.Dimension = uint32(d.View.Dimension())
	switch v := d.View.(type) {
	case d3d11.SRVBuffer:
		out.U = [4]uint32{v.FirstElement, v.NumElements}
	case d3d11.SRVBufferEx:
		out.U = [4]uint32{v.FirstElement, v.NumElements, v.Flags}
	case d3d11.SRVTexture1D:
		out.U = [4]uint32{v.MostDetailedMip, v.MipLevels}
	case d3d11.SRVTexture1DArray:
		out.U = [4]uint32{v.MostDetailedMip, v.MipLevels, v.FirstArraySlice, v.ArraySize}
	case d3d11.SRVTexture2D:
		out.U = [4]uint32{v.MostDetailedMip, v.MipLevels}
	case d3d11.SRVTexture2DArray:
		out.U = [4]uint32{v.MostDetailedMip, v.MipLevels, v.FirstArraySlice, v.ArraySize}
	case d3d11.SRVTexture2DMSArray:
		out.U = [4]uint32{v.FirstArraySlice, v.ArraySize}
	case d3d11.SRVTexture3D:
		out.U = [4]uint32{v.MostDetailedMip, v.MipLevels}
	case d3d11.SRVTextureCube:
		out.U = [4]uint32{v.MostDetailedMip, v.MipLevels}
	case d3d11.SRVTextureCubeArray:
		out.U = [4]uint32{v.MostDetailedMip, v.MipLevels, v.First2DArrayFace, v.NumCubes}
	}
	return out
}

// desc returns the view description held by c. Views of an unknown
// dimension have a nil shape.
func (c rtvDesc) desc() d3d11.RenderTargetViewDesc {
	out := d3d11.RenderTargetViewDesc{Format: dxgi.Format(c.Format)}
	u := c.U
	switch d3d11.RTVDimension(c.Dimension) {
	case d3d11.RTVDimensionBuffer:
		out.View = d3d11.RTVBuffer{FirstElement: u[0], NumElements: u[1]}
	case d3d11.RTVDimensionTexture1D:
		out.View = d3d11.RTVTexture1D{MipSlice: u[0]}
	case d3d11.RTVDimensionTexture1DArray:
		out.View = d3d11.RTVTexture1DArray{MipSlice: u[0], FirstArraySlice: u[1], ArraySize: u[2]}
	case d3d11.RTVDimensionTexture2D:
		out.View = d3d11.RTVTexture2D{MipSlice: u[0]}
	case d3d11.RTVDimensionTexture2DArray:
		out.View = d3d11.RTVTexture2DArray{MipSlice: u[0], FirstArraySlice: u[1], ArraySize: u[2]}
	case d3d11.RTVDimensionTexture2DMS:
		out.View = d3d11.RTVTexture2DMS{}
	case d3d11.RTVDimensionTexture2DMSArray:
		out.View = d3d11.RTVTexture2DMSArray{FirstArraySlice: u[0], ArraySize: u[1]}
	case d3d11.RTVDimensionTexture3D:
		out.View = d3d11.RTVTexture3D{MipSlice: u[0], FirstWSlice: u[1], WSize: u[2]}
	}
	return out
}

func toRTVDesc(d d3d11.RenderTargetViewDesc) rtvDesc {
	out := rtvDesc{Format: uint32(d.Format)}
	if d.View == nil {
		return out
	}
	out.Dimension = uint32(d.View.Dimension())
	switch v := d.View.(type) {
	case d3d11.RTVBuffer:
		out.U = [3]uint32{v.FirstElement, v.NumElements}
	case d3d11.RTVTexture1D:
		out.U = [3]uint32{v.MipSlice}
	case d3d11.RTVTexture1DArray:
		out.U = [3]uint32{v.MipSlice, v.FirstArraySlice, v.ArraySize}
	case d3d11.RTVTexture2D:
		out.U = [3]uint32{v.MipSlice}
	case d3d11.RTVTexture2DArray:
		out.U = [3]uint32{v.MipSlice, v.FirstArraySlice, v.ArraySize}
	case d3d11.RTVTexture2DMSArray:
		out.U = [3]uint32{v.FirstArraySlice, v.ArraySize}
	case d3d11.RTVTexture3D:
		out.U = [3]uint32{v.MipSlice, v.FirstWSlice, v.WSize}
	}
	return out
}

// desc returns the view description held by c. Views of an unknown
// dimension have a nil shape.
func (c dsvDesc) desc() d3d11.DepthStencilViewDesc {
	out := d3d11.DepthStencilViewDesc{Format: dxgi.Format(c.Format), Flags: c.Flags}
	u := c.U
	switch d3d11.DSVDimension(c.Dimension) {
	case d3d11.DSVDimensionTexture1D:
		out.View = d3d11.DSVTexture1D{MipSlice: u[0]}
	case d3d11.DSVDimensionTexture1DArray:
		out.View = d3d11.DSVTexture1DArray{MipSlice: u[0], FirstArraySlice: u[1], ArraySize: u[2]}
	case d3d11.DSVDimensionTexture2D:
		out.View = d3d11.DSVTexture2D{MipSlice: u[0]}
	case d3d11.DSVDimensionTexture2DArray:
		out.View = d3d11.DSVTexture2DArray{MipSlice: u[0], FirstArraySlice: u[1], ArraySize: u[2]}
	case d3d11.DSVDimensionTexture2DMS:
		out.View = d3d11.DSVTexture2DMS{}
	case d3d11.DSVDimensionTexture2DMSArray:
		out.View = d3d11.DSVTexture2DMSArray{FirstArraySlice: u[0], ArraySize: u[1]}
	}
	return out
}

func toDSVDesc(d d3d11.DepthStencilViewDesc) dsvDesc {
	out := dsvDesc{Format: uint32(d.Format), Flags: d.Flags}
	if d.View == nil {
		return out
	}
	out.Dimension = uint32(d.View.Dimension())
	switch v := d.View.(type) {
	case d3d11.DSVTexture1D:
		out.U = [3]uint32{v.MipSlice}
	case d3d11.DSVTexture1DArray:
		out.U = [3]uint32{v.MipSlice, v.FirstArraySlice, v.ArraySize}
	case d3d11.DSVTexture2D:
		out.U = [3]uint32{v.MipSlice}
	case d3d11.DSVTexture2DArray:
		out.U = [3]uint32{v.MipSlice, v.FirstArraySlice, v.ArraySize}
	case d3d11.DSVTexture2DMSArray:
		out.U = [3]uint32{v.FirstArraySlice, v.ArraySize}
	}
	return out
}

func toBox(b *d3d11.Box) *box {
	if b == nil {
		return nil
	}
	return &box{b.Left, b.Top, b.Front, b.Right, b.Bottom, b.Back}
}

// mappedSize returns the number of bytes addressable through a mapping of
// the subresource sub of a resource described by d, with the given pitches.
func mappedSize(d d3d11.ResourceDesc, sub, rowPitch, depthPitch uint32) int {
	if d.Dimension == d3d11.ResourceDimensionBuffer {
		return int(d.Width)
	}
	mip := sub % d.MipLevels
	h := u32.MipSize(d.Height, mip)
	depth := u32.MipSize(d.Depth, mip)
	row := u32.MipSize(d.Width, mip) * uint32(d.Format.BytesPerPixel())
	if row == 0 {
		// Block compressed rows hold four rows of texels.
		h = u32.DivUp(h, 4)
		row = rowPitch
	}
	return int(depthPitch*(depth-1) + rowPitch*(h-1) + row)
}
