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

//go:build windows

package native

import (
	"unsafe"

	"github.com/dromanov/apitrace/gapis/api/d3d11"
)

// view wraps an ID3D11View.
type view struct {
	object
}

func (v view) Resource() d3d11.Resource {
	var out uintptr
	call(v.ptr, viewGetResource, uintptr(unsafe.Pointer(&out)))
	if out == 0 {
		return nil
	}
	return newResource(out)
}

// ShaderResourceView wraps an ID3D11ShaderResourceView.
type ShaderResourceView struct{ view }

func (v *ShaderResourceView) Desc() d3d11.ShaderResourceViewDesc {
	var c srvDesc
	call(v.ptr, viewGetDesc, uintptr(unsafe.Pointer(&c)))
	return c.desc()
}

// RenderTargetView wraps an ID3D11RenderTargetView.
type RenderTargetView struct{ view }

func (v *RenderTargetView) Desc() d3d11.RenderTargetViewDesc {
	var c rtvDesc
	call(v.ptr, viewGetDesc, uintptr(unsafe.Pointer(&c)))
	return c.desc()
}

// DepthStencilView wraps an ID3D11DepthStencilView.
type DepthStencilView struct{ view }

func (v *DepthStencilView) Desc() d3d11.DepthStencilViewDesc {
	var c dsvDesc
	call(v.ptr, viewGetDesc, uintptr(unsafe.Pointer(&c)))
	return c.desc()
}

var (
	_ d3d11.ShaderResourceView = &ShaderResourceView{}
	_ d3d11.RenderTargetView   = &RenderTargetView{}
	_ d3d11.DepthStencilView   = &DepthStencilView{}
)

// viewPtr returns the COM pointer of v, or 0 for nil.
func viewPtr(v d3d11.View) uintptr {
	switch v := v.(type) {
	case *ShaderResourceView:
		return v.ptr
	case *RenderTargetView:
		return v.ptr
	case *DepthStencilView:
		return v.ptr
	}
	return 0
}
