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

package soft_test

import (
	"testing"

	"github.com/dromanov/apitrace/core/assert"
	"github.com/dromanov/apitrace/gapis/api/d3d11"
	"github.com/dromanov/apitrace/gapis/api/d3d11/soft"
	"github.com/dromanov/apitrace/gapis/api/dxgi"
	"github.com/pkg/errors"
)

func panics(f func()) (panicked bool) {
	defer func() { panicked = recover() != nil }()
	f()
	return false
}

func rgba8(w, h, mips, array, samples uint32) d3d11.Texture2DDesc {
	return d3d11.Texture2DDesc{
		Width:      w,
		Height:     h,
		MipLevels:  mips,
		ArraySize:  array,
		Format:     dxgi.Format_R8G8B8A8_UNORM,
		SampleDesc: d3d11.SampleDesc{Count: samples},
		BindFlags:  d3d11.BindShaderResource | d3d11.BindRenderTarget,
	}
}

func staging(w, h uint32) d3d11.Texture2DDesc {
	return d3d11.Texture2DDesc{
		Width:          w,
		Height:         h,
		MipLevels:      1,
		ArraySize:      1,
		Format:         dxgi.Format_R8G8B8A8_UNORM,
		SampleDesc:     d3d11.SampleDesc{Count: 1},
		Usage:          d3d11.UsageStaging,
		CPUAccessFlags: d3d11.CPUAccessRead | d3d11.CPUAccessWrite,
	}
}

func TestCreateValidation(t *testing.T) {
	ctx := assert.To(t)
	dev, c := soft.New()
	defer c.Release()
	for _, test := range []struct {
		name string
		desc d3d11.NativeDesc
		ok   bool
	}{
		{"plain", rgba8(4, 4, 1, 1, 1), true},
		{"zero width", rgba8(0, 4, 1, 1, 1), false},
		{"zero array", rgba8(4, 4, 1, 0, 1), false},
		{"too many mips", rgba8(4, 4, 4, 1, 1), false},
		{"zero samples", rgba8(4, 4, 1, 1, 0), false},
		{"multisampled mips", rgba8(4, 4, 2, 1, 4), false},
		{"staging", staging(4, 4), true},
		{"staging with binds", func() d3d11.Texture2DDesc {
			d := staging(4, 4)
			d.BindFlags = d3d11.BindShaderResource
			return d
		}(), false},
		{"compressed", func() d3d11.Texture2DDesc {
			d := rgba8(4, 4, 1, 1, 1)
			d.Format = dxgi.Format_BC1_UNORM
			return d
		}(), false},
		{"cube", func() d3d11.Texture2DDesc {
			d := rgba8(4, 4, 1, 6, 1)
			d.MiscFlags = d3d11.MiscTextureCube
			return d
		}(), true},
		{"bad cube", func() d3d11.Texture2DDesc {
			d := rgba8(4, 4, 1, 4, 1)
			d.MiscFlags = d3d11.MiscTextureCube
			return d
		}(), false},
		{"buffer", d3d11.BufferDesc{ByteWidth: 64}, true},
		{"1D", d3d11.Texture1DDesc{Width: 4, MipLevels: 1, ArraySize: 1, Format: dxgi.Format_R8_UNORM}, true},
		{"volume", d3d11.Texture3DDesc{Width: 4, Height: 4, Depth: 4, MipLevels: 3, Format: dxgi.Format_R32_FLOAT}, true},
	} {
		r, err := d3d11.CreateResource(dev, d3d11.NewResourceDesc(test.desc))
		if test.ok {
			ctx.For("%s", test.name).ThatError(err).Succeeded()
			r.Release()
		} else {
			ctx.For("%s", test.name).ThatError(err).HasCause(soft.ErrInvalidArg)
		}
	}
	ctx.For("live").ThatInteger(dev.Live(soft.KindResource)).Equals(0)
}

func TestFullMipChain(t *testing.T) {
	ctx := assert.To(t)
	dev, c := soft.New()
	defer c.Release()
	r, err := dev.CreateTexture2D(rgba8(16, 4, 0, 2, 1))
	ctx.For("err").ThatError(err).Succeeded()
	defer r.Release()
	ctx.For("mips").That(d3d11.GetResourceDesc(r).MipLevels).Equals(uint32(5))
	ctx.For("subresources").That(r.(*soft.Resource).Subresources()).Equals(uint32(10))
	w, h, _ := r.(*soft.Resource).Extent(3)
	ctx.For("mip 3 width").That(w).Equals(uint32(2))
	ctx.For("mip 3 height").That(h).Equals(uint32(1))
}

func TestReferenceCounting(t *testing.T) {
	ctx := assert.To(t)
	dev, c := soft.New()
	r, _ := dev.CreateTexture2D(rgba8(4, 4, 1, 1, 1))
	srv, err := dev.CreateShaderResourceView(r, d3d11.ShaderResourceViewDesc{View: d3d11.SRVTexture2D{MipLevels: 1}})
	ctx.For("srv err").ThatError(err).Succeeded()
	ctx.For("srv format").That(srv.Desc().Format).Equals(dxgi.Format_R8G8B8A8_UNORM)
	r.Release()
	ctx.For("resource kept by view").ThatInteger(dev.Live(soft.KindResource)).Equals(1)

	c.SetShaderResources(d3d11.StagePS, 3, []d3d11.ShaderResourceView{srv})
	srv.Release()
	ctx.For("view kept by binding").ThatInteger(dev.Live(soft.KindShaderResourceView)).Equals(1)

	got := c.GetShaderResources(d3d11.StagePS, 0, 4)
	ctx.For("slots").ThatSlice(got).IsLength(4)
	ctx.For("empty slot").That(got[0]).IsNil()
	ctx.For("bound slot").That(got[3]).IsNotNil()
	res := got[3].Resource()
	ctx.For("view resource").That(res).Equals(r)
	res.Release()
	got[3].Release()

	c.SetShaderResources(d3d11.StagePS, 3, []d3d11.ShaderResourceView{nil})
	ctx.For("views after unbind").ThatInteger(dev.Live(soft.KindShaderResourceView)).Equals(0)
	ctx.For("resources after unbind").ThatInteger(dev.Live(soft.KindResource)).Equals(0)
	ctx.For("double release").ThatBoolean(panics(func() { r.Release() })).IsTrue()
	c.Release()
}

func TestContextReleaseUnbinds(t *testing.T) {
	ctx := assert.To(t)
	dev, c := soft.New()
	r, _ := dev.CreateTexture2D(rgba8(4, 4, 1, 1, 1))
	rtv, err := dev.CreateRenderTargetView(r, d3d11.RenderTargetViewDesc{View: d3d11.RTVTexture2D{}})
	ctx.For("rtv err").ThatError(err).Succeeded()
	c.OMSetRenderTargets([]d3d11.RenderTargetView{nil, rtv}, nil)
	rtv.Release()
	r.Release()

	rtvs, dsv := c.OMGetRenderTargets(2)
	ctx.For("slot 0").That(rtvs[0]).IsNil()
	ctx.For("slot 1").That(rtvs[1]).IsNotNil()
	ctx.For("dsv").That(dsv).IsNil()
	rtvs[1].Release()

	c.Release()
	ctx.For("live views").ThatInteger(dev.Live(soft.KindRenderTargetView)).Equals(0)
	ctx.For("live resources").ThatInteger(dev.Live(soft.KindResource)).Equals(0)
}

func TestViewValidation(t *testing.T) {
	ctx := assert.To(t)
	dev, c := soft.New()
	defer c.Release()
	r, _ := dev.CreateTexture2D(rgba8(4, 4, 2, 3, 1))
	defer r.Release()
	_, err := dev.CreateShaderResourceView(r, d3d11.ShaderResourceViewDesc{View: d3d11.SRVTexture2DArray{FirstArraySlice: 2, ArraySize: 2}})
	ctx.For("array range").ThatError(err).HasCause(soft.ErrInvalidArg)
	_, err = dev.CreateShaderResourceView(r, d3d11.ShaderResourceViewDesc{View: d3d11.SRVTexture2DMS{}})
	ctx.For("multisample mismatch").ThatError(err).HasCause(soft.ErrInvalidArg)
	_, err = dev.CreateShaderResourceView(r, d3d11.ShaderResourceViewDesc{View: d3d11.SRVTextureCube{}})
	ctx.For("cube flag").ThatError(err).HasCause(soft.ErrInvalidArg)
	_, err = dev.CreateDepthStencilView(r, d3d11.DepthStencilViewDesc{View: d3d11.DSVTexture2D{}})
	ctx.For("depth bind flag").ThatError(err).HasCause(soft.ErrInvalidArg)
	ctx.For("live views").ThatInteger(dev.Live(soft.KindShaderResourceView)).Equals(0)
}

func TestUpdateMapRoundTrip(t *testing.T) {
	ctx := assert.To(t)
	dev, c := soft.New()
	defer c.Release()
	dev.RowPitchAlignment = 16

	src, _ := dev.CreateTexture2D(rgba8(3, 2, 1, 1, 1))
	defer src.Release()
	data := make([]byte, 3*2*4)
	for i := range data {
		data[i] = byte(i)
	}
	c.UpdateSubresource(src, 0, nil, data, 12, 0)
	ctx.For("update").ThatSlice(src.(*soft.Resource).Data(0, 0)).Equals(data)

	dst, _ := dev.CreateTexture2D(staging(3, 2))
	defer dst.Release()
	c.CopySubresourceRegion(dst, 0, 0, 0, 0, src, 0, nil)

	mapped, err := c.Map(dst, 0, d3d11.MapRead, 0)
	ctx.For("map").ThatError(err).Succeeded()
	ctx.For("row pitch").That(mapped.RowPitch).Equals(uint32(16))
	ctx.For("row 1").ThatSlice(mapped.Data[16:28]).Equals(data[12:24])
	_, err = c.Map(dst, 0, d3d11.MapRead, 0)
	ctx.For("double map").ThatError(err).HasCause(soft.ErrMapFailed)
	c.Unmap(dst, 0)
	ctx.For("unmapped").ThatInteger(dst.(*soft.Resource).Mapped()).Equals(0)
	ctx.For("double unmap").ThatBoolean(panics(func() { c.Unmap(dst, 0) })).IsTrue()

	mapped, err = c.Map(dst, 0, d3d11.MapWrite, 0)
	ctx.For("map write").ThatError(err).Succeeded()
	mapped.Data[16] = 0xff
	c.Unmap(dst, 0)
	ctx.For("written back").That(dst.(*soft.Resource).Data(0, 0)[12]).Equals(byte(0xff))

	_, err = c.Map(src, 0, d3d11.MapRead, 0)
	ctx.For("no cpu access").ThatError(err).HasCause(soft.ErrMapFailed)
}

func TestCopyRegion(t *testing.T) {
	ctx := assert.To(t)
	dev, c := soft.New()
	defer c.Release()
	desc := d3d11.Texture2DDesc{
		Width: 4, Height: 4, MipLevels: 1, ArraySize: 1,
		Format:     dxgi.Format_R8_UNORM,
		SampleDesc: d3d11.SampleDesc{Count: 1},
	}
	src, _ := dev.CreateTexture2D(desc)
	defer src.Release()
	data := make([]byte, 16)
	for i := range data {
		data[i] = byte(i)
	}
	c.UpdateSubresource(src, 0, nil, data, 4, 0)

	dst, _ := dev.CreateTexture2D(desc)
	defer dst.Release()
	c.CopySubresourceRegion(dst, 0, 0, 2, 0, src, 0, &d3d11.Box{Left: 1, Top: 1, Right: 3, Bottom: 3, Back: 1})
	ctx.For("copied").ThatSlice(dst.(*soft.Resource).Data(0, 0)).Equals([]byte{
		0, 0, 0, 0,
		0, 0, 0, 0,
		5, 6, 0, 0,
		9, 10, 0, 0,
	})
	ctx.For("out of range").ThatBoolean(panics(func() {
		c.CopySubresourceRegion(dst, 0, 3, 3, 0, src, 0, &d3d11.Box{Right: 2, Bottom: 2, Back: 1})
	})).IsTrue()
}

func TestResolveAveragesSamples(t *testing.T) {
	ctx := assert.To(t)
	dev, c := soft.New()
	defer c.Release()
	ms, err := dev.CreateTexture2D(rgba8(1, 1, 1, 1, 4))
	ctx.For("ms err").ThatError(err).Succeeded()
	defer ms.Release()
	for i, px := range [][]byte{{0, 0, 0, 255}, {100, 0, 0, 255}, {200, 0, 0, 255}, {100, 40, 0, 255}} {
		copy(ms.(*soft.Resource).Data(0, uint32(i)), px)
	}
	dst, _ := dev.CreateTexture2D(rgba8(1, 1, 1, 1, 1))
	defer dst.Release()
	c.ResolveSubresource(dst, 0, ms, 0, dxgi.Format_R8G8B8A8_UNORM)
	ctx.For("resolved").ThatSlice(dst.(*soft.Resource).Data(0, 0)).Equals([]byte{100, 10, 0, 255})
	ctx.For("calls").ThatSlice(dev.Calls).Equals([]string{"CreateTexture2D", "CreateTexture2D", "ResolveSubresource"})
	ctx.For("single sampled source").ThatBoolean(panics(func() {
		c.ResolveSubresource(dst, 0, dst, 0, dxgi.Format_R8G8B8A8_UNORM)
	})).IsTrue()
}

func TestFaultInjection(t *testing.T) {
	ctx := assert.To(t)
	dev, c := soft.New()
	defer c.Release()
	injected := errors.New("out of memory")
	dev.FailCreate = func(desc d3d11.NativeDesc) error {
		if d, ok := desc.(d3d11.Texture2DDesc); ok && d.Usage == d3d11.UsageStaging {
			return injected
		}
		return nil
	}
	r, err := dev.CreateTexture2D(rgba8(2, 2, 1, 1, 1))
	ctx.For("default").ThatError(err).Succeeded()
	r.Release()
	r, err = dev.CreateTexture2D(staging(2, 2))
	ctx.For("staging").ThatError(err).Equals(injected)
	ctx.For("no resource").That(r).IsNil()

	dev.FailCreate = nil
	dev.FailMap = func(*soft.Resource, uint32) error { return injected }
	r, _ = dev.CreateTexture2D(staging(2, 2))
	defer r.Release()
	_, err = c.Map(r, 0, d3d11.MapRead, 0)
	ctx.For("map").ThatError(err).Equals(injected)
	ctx.For("map calls").ThatInteger(dev.Count("Map")).Equals(1)
}
