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

import "github.com/dromanov/apitrace/gapis/api/dxgi"

// SRVDimension is the shape of a shader resource view.
type SRVDimension uint32

const (
	SRVDimensionUnknown          SRVDimension = 0
	SRVDimensionBuffer           SRVDimension = 1
	SRVDimensionTexture1D        SRVDimension = 2
	SRVDimensionTexture1DArray   SRVDimension = 3
	SRVDimensionTexture2D        SRVDimension = 4
	SRVDimensionTexture2DArray   SRVDimension = 5
	SRVDimensionTexture2DMS      SRVDimension = 6
	SRVDimensionTexture2DMSArray SRVDimension = 7
	SRVDimensionTexture3D        SRVDimension = 8
	SRVDimensionTextureCube      SRVDimension = 9
	SRVDimensionTextureCubeArray SRVDimension = 10
	SRVDimensionBufferEx         SRVDimension = 11
)

// ShaderResourceViewDesc describes a shader resource view.
type ShaderResourceViewDesc struct {
	Format dxgi.Format
	// View is one of the SRV* shape types.
	View SRVShape
}

// SRVShape is the dimension specific part of a ShaderResourceViewDesc.
type SRVShape interface {
	Dimension() SRVDimension
	isSRVShape()
}

type (
	SRVBuffer struct {
		FirstElement uint32
		NumElements  uint32
	}
	SRVBufferEx struct {
		FirstElement uint32
		NumElements  uint32
		Flags        uint32
	}
	SRVTexture1D struct {
		MostDetailedMip uint32
		MipLevels       uint32
	}
	SRVTexture1DArray struct {
		MostDetailedMip uint32
		MipLevels       uint32
		FirstArraySlice uint32
		ArraySize       uint32
	}
	SRVTexture2D struct {
		MostDetailedMip uint32
		MipLevels       uint32
	}
	SRVTexture2DArray struct {
		MostDetailedMip uint32
		MipLevels       uint32
		FirstArraySlice uint32
		ArraySize       uint32
	}
	SRVTexture2DMS      struct{}
	SRVTexture2DMSArray struct {
		FirstArraySlice uint32
		ArraySize       uint32
	}
	SRVTexture3D struct {
		MostDetailedMip uint32
		MipLevels       uint32
	}
	SRVTextureCube struct {
		MostDetailedMip uint32
		MipLevels       uint32
	}
	SRVTextureCubeArray struct {
		MostDetailedMip  uint32
		MipLevels        uint32
		First2DArrayFace uint32
		NumCubes         uint32
	}
)

func (SRVBuffer) Dimension() SRVDimension           { return SRVDimensionBuffer }
func (SRVBufferEx) Dimension() SRVDimension         { return SRVDimensionBufferEx }
func (SRVTexture1D) Dimension() SRVDimension        { return SRVDimensionTexture1D }
func (SRVTexture1DArray) Dimension() SRVDimension   { return SRVDimensionTexture1DArray }
func (SRVTexture2D) Dimension() SRVDimension        { return SRVDimensionTexture2D }
func (SRVTexture2DArray) Dimension() SRVDimension   { return SRVDimensionTexture2DArray }
func (SRVTexture2DMS) Dimension() SRVDimension      { return SRVDimensionTexture2DMS }
func (SRVTexture2DMSArray) Dimension() SRVDimension { return SRVDimensionTexture2DMSArray }
func (SRVTexture3D) Dimension() SRVDimension        { return SRVDimensionTexture3D }
func (SRVTextureCube) Dimension() SRVDimension      { return SRVDimensionTextureCube }
func (SRVTextureCubeArray) Dimension() SRVDimension { return SRVDimensionTextureCubeArray }

func (SRVBuffer) isSRVShape()           {}
func (SRVBufferEx) isSRVShape()         {}
func (SRVTexture1D) isSRVShape()        {}
func (SRVTexture1DArray) isSRVShape()   {}
func (SRVTexture2D) isSRVShape()        {}
func (SRVTexture2DArray) isSRVShape()   {}
func (SRVTexture2DMS) isSRVShape()      {}
func (SRVTexture2DMSArray) isSRVShape() {}
func (SRVTexture3D) isSRVShape()        {}
func (SRVTextureCube) isSRVShape()      {}
func (SRVTextureCubeArray) isSRVShape() {}

// RTVDimension is the shape of a render target view.
type RTVDimension uint32

const (
	RTVDimensionUnknown          RTVDimension = 0
	RTVDimensionBuffer           RTVDimension = 1
	RTVDimensionTexture1D        RTVDimension = 2
	RTVDimensionTexture1DArray   RTVDimension = 3
	RTVDimensionTexture2D        RTVDimension = 4
	RTVDimensionTexture2DArray   RTVDimension = 5
	RTVDimensionTexture2DMS      RTVDimension = 6
	RTVDimensionTexture2DMSArray RTVDimension = 7
	RTVDimensionTexture3D        RTVDimension = 8
)

// RenderTargetViewDesc describes a render target view.
type RenderTargetViewDesc struct {
	Format dxgi.Format
	// View is one of the RTV* shape types.
	View RTVShape
}

// RTVShape is the dimension specific part of a RenderTargetViewDesc.
type RTVShape interface {
	Dimension() RTVDimension
	isRTVShape()
}

type (
	RTVBuffer struct {
		FirstElement uint32
		NumElements  uint32
	}
	RTVTexture1D struct {
		MipSlice uint32
	}
	RTVTexture1DArray struct {
		MipSlice        uint32
		FirstArraySlice uint32
		ArraySize       uint32
	}
	RTVTexture2D struct {
		MipSlice uint32
	}
	RTVTexture2DArray struct {
		MipSlice        uint32
		FirstArraySlice uint32
		ArraySize       uint32
	}
	RTVTexture2DMS      struct{}
	RTVTexture2DMSArray struct {
		FirstArraySlice uint32
		ArraySize       uint32
	}
	RTVTexture3D struct {
		MipSlice    uint32
		FirstWSlice uint32
		WSize       uint32
	}
)

func (RTVBuffer) Dimension() RTVDimension           { return RTVDimensionBuffer }
func (RTVTexture1D) Dimension() RTVDimension        { return RTVDimensionTexture1D }
func (RTVTexture1DArray) Dimension() RTVDimension   { return RTVDimensionTexture1DArray }
func (RTVTexture2D) Dimension() RTVDimension        { return RTVDimensionTexture2D }
func (RTVTexture2DArray) Dimension() RTVDimension   { return RTVDimensionTexture2DArray }
func (RTVTexture2DMS) Dimension() RTVDimension      { return RTVDimensionTexture2DMS }
func (RTVTexture2DMSArray) Dimension() RTVDimension { return RTVDimensionTexture2DMSArray }
func (RTVTexture3D) Dimension() RTVDimension        { return RTVDimensionTexture3D }

func (RTVBuffer) isRTVShape()           {}
func (RTVTexture1D) isRTVShape()        {}
func (RTVTexture1DArray) isRTVShape()   {}
func (RTVTexture2D) isRTVShape()        {}
func (RTVTexture2DArray) isRTVShape()   {}
func (RTVTexture2DMS) isRTVShape()      {}
func (RTVTexture2DMSArray) isRTVShape() {}
func (RTVTexture3D) isRTVShape()        {}

// DSVDimension is the shape of a depth-stencil view.
type DSVDimension uint32

const (
	DSVDimensionUnknown          DSVDimension = 0
	DSVDimensionTexture1D        DSVDimension = 1
	DSVDimensionTexture1DArray   DSVDimension = 2
	DSVDimensionTexture2D        DSVDimension = 3
	DSVDimensionTexture2DArray   DSVDimension = 4
	DSVDimensionTexture2DMS      DSVDimension = 5
	DSVDimensionTexture2DMSArray DSVDimension = 6
)

// DepthStencilViewDesc describes a depth-stencil view.
type DepthStencilViewDesc struct {
	Format dxgi.Format
	// Flags mark the depth or stencil plane as read only.
	Flags uint32
	// View is one of the DSV* shape types.
	View DSVShape
}

// DSVShape is the dimension specific part of a DepthStencilViewDesc.
type DSVShape interface {
	Dimension() DSVDimension
	isDSVShape()
}

type (
	DSVTexture1D struct {
		MipSlice uint32
	}
	DSVTexture1DArray struct {
		MipSlice        uint32
		FirstArraySlice uint32
		ArraySize       uint32
	}
	DSVTexture2D struct {
		MipSlice uint32
	}
	DSVTexture2DArray struct {
		MipSlice        uint32
		FirstArraySlice uint32
		ArraySize       uint32
	}
	DSVTexture2DMS      struct{}
	DSVTexture2DMSArray struct {
		FirstArraySlice uint32
		ArraySize       uint32
	}
)

func (DSVTexture1D) Dimension() DSVDimension        { return DSVDimensionTexture1D }
func (DSVTexture1DArray) Dimension() DSVDimension   { return DSVDimensionTexture1DArray }
func (DSVTexture2D) Dimension() DSVDimension        { return DSVDimensionTexture2D }
func (DSVTexture2DArray) Dimension() DSVDimension   { return DSVDimensionTexture2DArray }
func (DSVTexture2DMS) Dimension() DSVDimension      { return DSVDimensionTexture2DMS }
func (DSVTexture2DMSArray) Dimension() DSVDimension { return DSVDimensionTexture2DMSArray }

func (DSVTexture1D) isDSVShape()        {}
func (DSVTexture1DArray) isDSVShape()   {}
func (DSVTexture2D) isDSVShape()        {}
func (DSVTexture2DArray) isDSVShape()   {}
func (DSVTexture2DMS) isDSVShape()      {}
func (DSVTexture2DMSArray) isDSVShape() {}
