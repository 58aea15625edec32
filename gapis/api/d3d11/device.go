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

// Unknown is the reference counting shared by all device objects.
// Objects returned by the interfaces in this file carry a reference owned by
// the caller, which must be given up with Release.
type Unknown interface {
	AddRef() uint32
	Release() uint32
}

// Resource is a buffer or texture.
type Resource interface {
	Unknown
	// Type returns the dimension of the resource.
	Type() ResourceDimension
	// Desc returns the creation descriptor of the resource.
	Desc() NativeDesc
}

// View is a typed window onto a resource.
type View interface {
	Unknown
	// Resource returns the viewed resource.
	Resource() Resource
}

// ShaderResourceView is a view bound to a shader stage for reading.
type ShaderResourceView interface {
	View
	Desc() ShaderResourceViewDesc
}

// RenderTargetView is a view bound to the output merger as a color target.
type RenderTargetView interface {
	View
	Desc() RenderTargetViewDesc
}

// DepthStencilView is a view bound to the output merger as the depth-stencil
// target.
type DepthStencilView interface {
	View
	Desc() DepthStencilViewDesc
}

// Device allocates resources and views.
type Device interface {
	Unknown
	CreateBuffer(desc BufferDesc) (Resource, error)
	CreateTexture1D(desc Texture1DDesc) (Resource, error)
	CreateTexture2D(desc Texture2DDesc) (Resource, error)
	CreateTexture3D(desc Texture3DDesc) (Resource, error)
	CreateShaderResourceView(r Resource, desc ShaderResourceViewDesc) (ShaderResourceView, error)
	CreateRenderTargetView(r Resource, desc RenderTargetViewDesc) (RenderTargetView, error)
	CreateDepthStencilView(r Resource, desc DepthStencilViewDesc) (DepthStencilView, error)
}

// MappedSubresource is the CPU visible memory of a mapped subresource.
// Data is only valid until the subresource is unmapped.
type MappedSubresource struct {
	Data       []byte
	RowPitch   uint32
	DepthPitch uint32
}

// DeviceContext records and executes commands on a device, and holds the
// pipeline bindings.
type DeviceContext interface {
	Unknown
	// Device returns the device owning the context.
	Device() Device
	// ResolveSubresource resolves the multisampled subresource srcSub of src
	// into the single-sampled subresource dstSub of dst.
	ResolveSubresource(dst Resource, dstSub uint32, src Resource, srcSub uint32, format dxgi.Format)
	// CopySubresourceRegion copies the region box of srcSub in src to
	// (x, y, z) of dstSub in dst. A nil box copies the whole subresource.
	CopySubresourceRegion(dst Resource, dstSub, x, y, z uint32, src Resource, srcSub uint32, box *Box)
	// UpdateSubresource replaces the region box of dstSub in dst with data.
	// A nil box updates the whole subresource.
	UpdateSubresource(dst Resource, dstSub uint32, box *Box, data []byte, rowPitch, depthPitch uint32)
	// Map gives the CPU access to the subresource sub of r.
	Map(r Resource, sub uint32, t MapType, flags uint32) (MappedSubresource, error)
	// Unmap ends a successful Map.
	Unmap(r Resource, sub uint32)
	// GetShaderResources returns n views bound to stage, starting at slot
	// start. Empty slots are nil.
	GetShaderResources(stage Stage, start, n uint32) []ShaderResourceView
	// SetShaderResources binds views to stage, starting at slot start.
	SetShaderResources(stage Stage, start uint32, views []ShaderResourceView)
	// OMGetRenderTargets returns the first n render targets and the
	// depth-stencil target. Empty slots are nil.
	OMGetRenderTargets(n uint32) ([]RenderTargetView, DepthStencilView)
	// OMSetRenderTargets binds render targets and the depth-stencil target.
	OMSetRenderTargets(rtvs []RenderTargetView, dsv DepthStencilView)
}
