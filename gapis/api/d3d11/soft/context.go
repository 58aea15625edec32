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
	"fmt"

	"github.com/dromanov/apitrace/gapis/api/d3d11"
	"github.com/dromanov/apitrace/gapis/api/dxgi"
	"github.com/pkg/errors"
)

// ShaderResourceSlotCount is the number of shader resource slots of each
// stage.
const ShaderResourceSlotCount = 128

// Context is the in-memory immediate d3d11.DeviceContext of a Device.
// Commands execute as soon as they are called.
type Context struct {
	object
	dev  *Device
	srvs map[d3d11.Stage]map[uint32]*ShaderResourceView
	rtvs [d3d11.SimultaneousRenderTargetCount]*RenderTargetView
	dsv  *DepthStencilView
}

var _ d3d11.DeviceContext = &Context{}

func (c *Context) unbindAll() {
	for _, slots := range c.srvs {
		for _, v := range slots {
			v.Release()
		}
	}
	c.srvs = map[d3d11.Stage]map[uint32]*ShaderResourceView{}
	for i, v := range c.rtvs {
		if v != nil {
			v.Release()
			c.rtvs[i] = nil
		}
	}
	if c.dsv != nil {
		c.dsv.Release()
		c.dsv = nil
	}
}

func (c *Context) Device() d3d11.Device {
	c.dev.record("GetDevice")
	c.dev.AddRef()
	return c.dev
}

func (c *Context) ResolveSubresource(dst d3d11.Resource, dstSub uint32, src d3d11.Resource, srcSub uint32, format dxgi.Format) {
	c.dev.record("ResolveSubresource")
	d, s := c.dev.resource(dst), c.dev.resource(src)
	d.check(dstSub)
	s.check(srcSub)
	dw, dh, dd := d.Extent(dstSub)
	sw, sh, sd := s.Extent(srcSub)
	samples := s.shape.SampleDesc.Count
	switch {
	case samples < 2:
		panic(fmt.Errorf("Resolve source has %d samples", samples))
	case d.shape.SampleDesc.Count != 1:
		panic(fmt.Errorf("Resolve destination has %d samples", d.shape.SampleDesc.Count))
	case dw != sw || dh != sh || dd != sd:
		panic(fmt.Errorf("Resolve of %dx%d into %dx%d", sw, sh, dw, dh))
	case d.bpp != s.bpp:
		panic(fmt.Errorf("Resolve of %d byte elements into %d byte elements", s.bpp, d.bpp))
	}

	out := d.Data(dstSub, 0)
	f, err := dxgi.ImageFormat(format)
	if err != nil || uint32(f.Layout.Stride()) != s.bpp {
		// Formats without a layout are resolved by taking the first sample.
		copy(out, s.Data(srcSub, 0))
		return
	}
	layout := f.Layout
	count := int(sw * sh * sd)
	for el := 0; el < count; el++ {
		var sum []float64
		for i := uint32(0); i < samples; i++ {
			values := layout.Decode(s.Data(srcSub, i), el)
			if sum == nil {
				sum = make([]float64, len(values))
			}
			for j, v := range values {
				sum[j] += v
			}
		}
		for j := range sum {
			sum[j] /= float64(samples)
		}
		layout.Encode(out, el, sum)
	}
}

func (c *Context) CopySubresourceRegion(dst d3d11.Resource, dstSub, x, y, z uint32, src d3d11.Resource, srcSub uint32, box *d3d11.Box) {
	c.dev.record("CopySubresourceRegion")
	d, s := c.dev.resource(dst), c.dev.resource(src)
	d.check(dstSub)
	s.check(srcSub)
	sw, sh, sd := s.Extent(srcSub)
	dw, dh, dd := d.Extent(dstSub)
	b := d3d11.Box{Right: sw, Bottom: sh, Back: sd}
	if box != nil {
		b = *box
	}
	w, h, depth := b.Right-b.Left, b.Bottom-b.Top, b.Back-b.Front
	samples := s.shape.SampleDesc.Count
	switch {
	case d.mapped[dstSub] != nil || s.mapped[srcSub] != nil:
		panic(fmt.Errorf("Copy between mapped subresources"))
	case samples != d.shape.SampleDesc.Count:
		panic(fmt.Errorf("Copy of %d samples into %d samples", samples, d.shape.SampleDesc.Count))
	case d.bpp != s.bpp:
		panic(fmt.Errorf("Copy of %d byte elements into %d byte elements", s.bpp, d.bpp))
	case b.Right < b.Left || b.Bottom < b.Top || b.Back < b.Front ||
		b.Right > sw || b.Bottom > sh || b.Back > sd:
		panic(fmt.Errorf("Copy box %+v out of range for %dx%dx%d", b, sw, sh, sd))
	case x+w > dw || y+h > dh || z+depth > dd:
		panic(fmt.Errorf("Copy of %dx%dx%d to (%d, %d, %d) out of range for %dx%dx%d", w, h, depth, x, y, z, dw, dh, dd))
	}

	bpp := s.bpp
	for i := uint32(0); i < samples; i++ {
		from, to := s.Data(srcSub, i), d.Data(dstSub, i)
		for k := uint32(0); k < depth; k++ {
			for j := uint32(0); j < h; j++ {
				so := (((b.Front+k)*sh+b.Top+j)*sw + b.Left) * bpp
				do := (((z+k)*dh+y+j)*dw + x) * bpp
				copy(to[do:do+w*bpp], from[so:so+w*bpp])
			}
		}
	}
}

func (c *Context) UpdateSubresource(dst d3d11.Resource, dstSub uint32, box *d3d11.Box, data []byte, rowPitch, depthPitch uint32) {
	c.dev.record("UpdateSubresource")
	d := c.dev.resource(dst)
	d.check(dstSub)
	dw, dh, dd := d.Extent(dstSub)
	b := d3d11.Box{Right: dw, Bottom: dh, Back: dd}
	if box != nil {
		b = *box
	}
	switch {
	case d.shape.SampleDesc.Count > 1:
		panic(fmt.Errorf("Update of a multisampled resource"))
	case d.mapped[dstSub] != nil:
		panic(fmt.Errorf("Update of a mapped subresource"))
	case b.Right < b.Left || b.Bottom < b.Top || b.Back < b.Front ||
		b.Right > dw || b.Bottom > dh || b.Back > dd:
		panic(fmt.Errorf("Update box %+v out of range for %dx%dx%d", b, dw, dh, dd))
	}
	bpp := d.bpp
	row := (b.Right - b.Left) * bpp
	to := d.Data(dstSub, 0)
	for k := uint32(0); k < b.Back-b.Front; k++ {
		for j := uint32(0); j < b.Bottom-b.Top; j++ {
			so := k*depthPitch + j*rowPitch
			do := (((b.Front+k)*dh+b.Top+j)*dw + b.Left) * bpp
			copy(to[do:do+row], data[so:so+row])
		}
	}
}

func (c *Context) Map(r d3d11.Resource, sub uint32, t d3d11.MapType, flags uint32) (d3d11.MappedSubresource, error) {
	c.dev.record("Map")
	res := c.dev.resource(r)
	res.check(sub)
	if c.dev.FailMap != nil {
		if err := c.dev.FailMap(res, sub); err != nil {
			return d3d11.MappedSubresource{}, err
		}
	}
	access := res.shape.CPUAccessFlags
	switch {
	case res.mapped[sub] != nil:
		return d3d11.MappedSubresource{}, errors.Wrapf(ErrMapFailed, "Subresource %d is already mapped", sub)
	case t&d3d11.MapRead != 0 && access&d3d11.CPUAccessRead == 0:
		return d3d11.MappedSubresource{}, errors.Wrap(ErrMapFailed, "Read of a resource without CPU read access")
	case t&d3d11.MapWrite != 0 && access&d3d11.CPUAccessWrite == 0:
		return d3d11.MappedSubresource{}, errors.Wrap(ErrMapFailed, "Write of a resource without CPU write access")
	}
	return res.mapSubresource(sub, t, c.dev.RowPitchAlignment), nil
}

func (c *Context) Unmap(r d3d11.Resource, sub uint32) {
	c.dev.record("Unmap")
	res := c.dev.resource(r)
	res.check(sub)
	res.unmapSubresource(sub)
}

func checkSlots(start, n, count uint32) {
	if start+n > count {
		panic(fmt.Errorf("Slots [%d, %d) out of range for %d slots", start, start+n, count))
	}
}

func (c *Context) GetShaderResources(stage d3d11.Stage, start, n uint32) []d3d11.ShaderResourceView {
	c.dev.record("GetShaderResources")
	checkSlots(start, n, ShaderResourceSlotCount)
	out := make([]d3d11.ShaderResourceView, n)
	slots := c.srvs[stage]
	for i := range out {
		if v := slots[start+uint32(i)]; v != nil {
			v.AddRef()
			out[i] = v
		}
	}
	return out
}

func (c *Context) SetShaderResources(stage d3d11.Stage, start uint32, views []d3d11.ShaderResourceView) {
	c.dev.record("SetShaderResources")
	checkSlots(start, uint32(len(views)), ShaderResourceSlotCount)
	slots := c.srvs[stage]
	if slots == nil {
		slots = map[uint32]*ShaderResourceView{}
		c.srvs[stage] = slots
	}
	for i, v := range views {
		slot := start + uint32(i)
		var next *ShaderResourceView
		if v != nil {
			next = c.ownView(v).(*ShaderResourceView)
			next.AddRef()
		}
		if prev := slots[slot]; prev != nil {
			prev.Release()
		}
		if next != nil {
			slots[slot] = next
		} else {
			delete(slots, slot)
		}
	}
}

func (c *Context) OMGetRenderTargets(n uint32) ([]d3d11.RenderTargetView, d3d11.DepthStencilView) {
	c.dev.record("OMGetRenderTargets")
	checkSlots(0, n, d3d11.SimultaneousRenderTargetCount)
	out := make([]d3d11.RenderTargetView, n)
	for i := range out {
		if v := c.rtvs[i]; v != nil {
			v.AddRef()
			out[i] = v
		}
	}
	var dsv d3d11.DepthStencilView
	if c.dsv != nil {
		c.dsv.AddRef()
		dsv = c.dsv
	}
	return out, dsv
}

func (c *Context) OMSetRenderTargets(rtvs []d3d11.RenderTargetView, dsv d3d11.DepthStencilView) {
	c.dev.record("OMSetRenderTargets")
	checkSlots(0, uint32(len(rtvs)), d3d11.SimultaneousRenderTargetCount)
	var next [d3d11.SimultaneousRenderTargetCount]*RenderTargetView
	for i, v := range rtvs {
		if v != nil {
			next[i] = c.ownView(v).(*RenderTargetView)
			next[i].AddRef()
		}
	}
	var nextDSV *DepthStencilView
	if dsv != nil {
		nextDSV = c.ownView(dsv).(*DepthStencilView)
		nextDSV.AddRef()
	}
	for _, v := range c.rtvs {
		if v != nil {
			v.Release()
		}
	}
	if c.dsv != nil {
		c.dsv.Release()
	}
	c.rtvs, c.dsv = next, nextDSV
}

// ownView panics if v was not created by the context's device.
func (c *Context) ownView(v d3d11.View) d3d11.View {
	var res *Resource
	switch v := v.(type) {
	case *ShaderResourceView:
		res = v.res
	case *RenderTargetView:
		res = v.res
	case *DepthStencilView:
		res = v.res
	}
	if res == nil || res.dev != c.dev {
		panic(fmt.Errorf("%T is not a view of this device", v))
	}
	return v
}
