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
	"fmt"
	"unsafe"

	"github.com/dromanov/apitrace/gapis/api/d3d11"
	"github.com/dromanov/apitrace/gapis/api/dxgi"
	"github.com/pkg/errors"
)

// Context is a d3d11.DeviceContext wrapping an ID3D11DeviceContext.
type Context struct {
	object
}

var _ d3d11.DeviceContext = &Context{}

var (
	getShaderResources = map[d3d11.Stage]int{
		d3d11.StagePS: contextPSGetShaderResources,
		d3d11.StageVS: contextVSGetShaderResources,
		d3d11.StageGS: contextGSGetShaderResources,
		d3d11.StageHS: contextHSGetShaderResources,
		d3d11.StageDS: contextDSGetShaderResources,
		d3d11.StageCS: contextCSGetShaderResources,
	}
	setShaderResources = map[d3d11.Stage]int{
		d3d11.StagePS: contextPSSetShaderResources,
		d3d11.StageVS: contextVSSetShaderResources,
		d3d11.StageGS: contextGSSetShaderResources,
		d3d11.StageHS: contextHSSetShaderResources,
		d3d11.StageDS: contextDSSetShaderResources,
		d3d11.StageCS: contextCSSetShaderResources,
	}
)

func stageMethod(methods map[d3d11.Stage]int, stage d3d11.Stage) int {
	m, ok := methods[stage]
	if !ok {
		panic(fmt.Errorf("Unknown shader stage %v", stage))
	}
	return m
}

func (c *Context) Device() d3d11.Device {
	var out uintptr
	call(c.ptr, childGetDevice, uintptr(unsafe.Pointer(&out)))
	return &Device{object{out}}
}

func (c *Context) ResolveSubresource(dst d3d11.Resource, dstSub uint32, src d3d11.Resource, srcSub uint32, format dxgi.Format) {
	call(c.ptr, contextResolveSubresource, resourcePtr(dst), uintptr(dstSub), resourcePtr(src), uintptr(srcSub), uintptr(format))
}

func (c *Context) CopySubresourceRegion(dst d3d11.Resource, dstSub, x, y, z uint32, src d3d11.Resource, srcSub uint32, b *d3d11.Box) {
	cb := toBox(b)
	call(c.ptr, contextCopySubresourceRegion,
		resourcePtr(dst), uintptr(dstSub), uintptr(x), uintptr(y), uintptr(z),
		resourcePtr(src), uintptr(srcSub), uintptr(unsafe.Pointer(cb)))
}

func (c *Context) UpdateSubresource(dst d3d11.Resource, dstSub uint32, b *d3d11.Box, data []byte, rowPitch, depthPitch uint32) {
	if len(data) == 0 {
		return
	}
	cb := toBox(b)
	call(c.ptr, contextUpdateSubresource,
		resourcePtr(dst), uintptr(dstSub), uintptr(unsafe.Pointer(cb)),
		uintptr(unsafe.Pointer(&data[0])), uintptr(rowPitch), uintptr(depthPitch))
}

// mappedSubresource matches D3D11_MAPPED_SUBRESOURCE.
type mappedSubresource struct {
	Data       uintptr
	RowPitch   uint32
	DepthPitch uint32
}

func (c *Context) Map(r d3d11.Resource, sub uint32, t d3d11.MapType, flags uint32) (d3d11.MappedSubresource, error) {
	var m mappedSubresource
	hr := call(c.ptr, contextMap, resourcePtr(r), uintptr(sub), uintptr(t), uintptr(flags), uintptr(unsafe.Pointer(&m)))
	if err := check(hr, "Map"); err != nil {
		return d3d11.MappedSubresource{}, errors.Wrapf(err, "Mapping subresource %d", sub)
	}
	size := mappedSize(d3d11.GetResourceDesc(r), sub, m.RowPitch, m.DepthPitch)
	return d3d11.MappedSubresource{
		Data:       unsafe.Slice((*byte)(unsafe.Pointer(m.Data)), size),
		RowPitch:   m.RowPitch,
		DepthPitch: m.DepthPitch,
	}, nil
}

func (c *Context) Unmap(r d3d11.Resource, sub uint32) {
	call(c.ptr, contextUnmap, resourcePtr(r), uintptr(sub))
}

func (c *Context) GetShaderResources(stage d3d11.Stage, start, n uint32) []d3d11.ShaderResourceView {
	out := make([]d3d11.ShaderResourceView, n)
	if n == 0 {
		return out
	}
	ptrs := make([]uintptr, n)
	call(c.ptr, stageMethod(getShaderResources, stage), uintptr(start), uintptr(n), uintptr(unsafe.Pointer(&ptrs[0])))
	for i, p := range ptrs {
		if p != 0 {
			out[i] = &ShaderResourceView{view{object{p}}}
		}
	}
	return out
}

func (c *Context) SetShaderResources(stage d3d11.Stage, start uint32, views []d3d11.ShaderResourceView) {
	if len(views) == 0 {
		return
	}
	ptrs := make([]uintptr, len(views))
	for i, v := range views {
		if v != nil {
			ptrs[i] = viewPtr(v)
		}
	}
	call(c.ptr, stageMethod(setShaderResources, stage), uintptr(start), uintptr(len(ptrs)), uintptr(unsafe.Pointer(&ptrs[0])))
}

func (c *Context) OMGetRenderTargets(n uint32) ([]d3d11.RenderTargetView, d3d11.DepthStencilView) {
	out := make([]d3d11.RenderTargetView, n)
	ptrs := make([]uintptr, n+1)
	var dsv uintptr
	call(c.ptr, contextOMGetRenderTargets, uintptr(n), uintptr(unsafe.Pointer(&ptrs[0])), uintptr(unsafe.Pointer(&dsv)))
	for i := range out {
		if ptrs[i] != 0 {
			out[i] = &RenderTargetView{view{object{ptrs[i]}}}
		}
	}
	if dsv == 0 {
		return out, nil
	}
	return out, &DepthStencilView{view{object{dsv}}}
}

func (c *Context) OMSetRenderTargets(rtvs []d3d11.RenderTargetView, dsv d3d11.DepthStencilView) {
	ptrs := make([]uintptr, len(rtvs)+1)
	for i, v := range rtvs {
		if v != nil {
			ptrs[i] = viewPtr(v)
		}
	}
	var dsvPtr uintptr
	if dsv != nil {
		dsvPtr = viewPtr(dsv)
	}
	call(c.ptr, contextOMSetRenderTargets, uintptr(len(rtvs)), uintptr(unsafe.Pointer(&ptrs[0])), dsvPtr)
}
