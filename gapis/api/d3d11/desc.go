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

// NativeDesc is the creation descriptor of a resource, one type per resource
// dimension: BufferDesc, Texture1DDesc, Texture2DDesc or Texture3DDesc.
type NativeDesc interface {
	Dimension() ResourceDimension
	isNativeDesc()
}

// BufferDesc describes a buffer.
type BufferDesc struct {
	ByteWidth           uint32
	Usage               Usage
	BindFlags           BindFlags
	CPUAccessFlags      CPUAccessFlags
	MiscFlags           MiscFlags
	StructureByteStride uint32
}

// Texture1DDesc describes a 1D texture or 1D texture array.
type Texture1DDesc struct {
	Width          uint32
	MipLevels      uint32
	ArraySize      uint32
	Format         dxgi.Format
	Usage          Usage
	BindFlags      BindFlags
	CPUAccessFlags CPUAccessFlags
	MiscFlags      MiscFlags
}

// Texture2DDesc describes a 2D texture, 2D texture array or cube map.
type Texture2DDesc struct {
	Width          uint32
	Height         uint32
	MipLevels      uint32
	ArraySize      uint32
	Format         dxgi.Format
	SampleDesc     SampleDesc
	Usage          Usage
	BindFlags      BindFlags
	CPUAccessFlags CPUAccessFlags
	MiscFlags      MiscFlags
}

// Texture3DDesc describes a volume texture.
type Texture3DDesc struct {
	Width          uint32
	Height         uint32
	Depth          uint32
	MipLevels      uint32
	Format         dxgi.Format
	Usage          Usage
	BindFlags      BindFlags
	CPUAccessFlags CPUAccessFlags
	MiscFlags      MiscFlags
}

func (BufferDesc) Dimension() ResourceDimension    { return ResourceDimensionBuffer }
func (Texture1DDesc) Dimension() ResourceDimension { return ResourceDimensionTexture1D }
func (Texture2DDesc) Dimension() ResourceDimension { return ResourceDimensionTexture2D }
func (Texture3DDesc) Dimension() ResourceDimension { return ResourceDimensionTexture3D }

func (BufferDesc) isNativeDesc()    {}
func (Texture1DDesc) isNativeDesc() {}
func (Texture2DDesc) isNativeDesc() {}
func (Texture3DDesc) isNativeDesc() {}
