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

package d3d11_test

import (
	"testing"

	"github.com/dromanov/apitrace/core/assert"
	"github.com/dromanov/apitrace/core/log"
	"github.com/dromanov/apitrace/gapis/api/d3d11"
	"github.com/dromanov/apitrace/gapis/api/d3d11/soft"
	"github.com/dromanov/apitrace/gapis/api/dxgi"
)

func TestShaderResourceViewSlices(t *testing.T) {
	ctx := assert.To(t)
	for _, test := range []struct {
		name              string
		view              d3d11.SRVShape
		mip, first, count uint32
	}{
		{"buffer", d3d11.SRVBuffer{FirstElement: 4, NumElements: 8}, 0, 0, 1},
		{"bufferex", d3d11.SRVBufferEx{NumElements: 8}, 0, 0, 1},
		{"1D", d3d11.SRVTexture1D{MostDetailedMip: 2}, 2, 0, 1},
		{"1D array", d3d11.SRVTexture1DArray{MostDetailedMip: 1, FirstArraySlice: 3, ArraySize: 2}, 1, 3, 2},
		{"2D", d3d11.SRVTexture2D{MostDetailedMip: 3}, 3, 0, 1},
		{"2D array", d3d11.SRVTexture2DArray{MostDetailedMip: 1, FirstArraySlice: 2, ArraySize: 4}, 1, 2, 4},
		{"2DMS", d3d11.SRVTexture2DMS{}, 0, 0, 1},
		{"2DMS array", d3d11.SRVTexture2DMSArray{FirstArraySlice: 1, ArraySize: 3}, 0, 1, 3},
		{"3D", d3d11.SRVTexture3D{MostDetailedMip: 1}, 1, 0, 1},
		{"cube", d3d11.SRVTextureCube{MostDetailedMip: 2}, 2, 0, 6},
		{"cube array", d3d11.SRVTextureCubeArray{MostDetailedMip: 1, First2DArrayFace: 6, NumCubes: 2}, 1, 6, 12},
	} {
		mip, first, count := d3d11.ShaderResourceViewSlices(d3d11.ShaderResourceViewDesc{View: test.view})
		ctx.For("%s mip", test.name).That(mip).Equals(test.mip)
		ctx.For("%s first", test.name).That(first).Equals(test.first)
		ctx.For("%s count", test.name).That(count).Equals(test.count)
	}
	ctx.For("unknown").ThatBoolean(panics(func() {
		d3d11.ShaderResourceViewSlices(d3d11.ShaderResourceViewDesc{})
	})).IsTrue()
}

func TestOutputViewMips(t *testing.T) {
	ctx := assert.To(t)
	ctx.For("rtv 2D").That(d3d11.RenderTargetViewMip(d3d11.RenderTargetViewDesc{View: d3d11.RTVTexture2D{MipSlice: 2}})).Equals(uint32(2))
	ctx.For("rtv 2D array").That(d3d11.RenderTargetViewMip(d3d11.RenderTargetViewDesc{
		View: d3d11.RTVTexture2DArray{MipSlice: 1, FirstArraySlice: 3, ArraySize: 1},
	})).Equals(uint32(1))
	ctx.For("rtv 3D").That(d3d11.RenderTargetViewMip(d3d11.RenderTargetViewDesc{View: d3d11.RTVTexture3D{MipSlice: 3, WSize: 2}})).Equals(uint32(3))
	ctx.For("rtv 2DMS").That(d3d11.RenderTargetViewMip(d3d11.RenderTargetViewDesc{View: d3d11.RTVTexture2DMS{}})).Equals(uint32(0))
	ctx.For("dsv 1D array").That(d3d11.DepthStencilViewMip(d3d11.DepthStencilViewDesc{
		View: d3d11.DSVTexture1DArray{MipSlice: 4},
	})).Equals(uint32(4))
	ctx.For("dsv 2DMS array").That(d3d11.DepthStencilViewMip(d3d11.DepthStencilViewDesc{View: d3d11.DSVTexture2DMSArray{ArraySize: 2}})).Equals(uint32(0))
	ctx.For("unknown rtv").ThatBoolean(panics(func() { d3d11.RenderTargetViewMip(d3d11.RenderTargetViewDesc{}) })).IsTrue()
	ctx.For("unknown dsv").ThatBoolean(panics(func() { d3d11.DepthStencilViewMip(d3d11.DepthStencilViewDesc{}) })).IsTrue()
}

func TestLabels(t *testing.T) {
	ctx := assert.To(t)
	ctx.For("resource").ThatString(d3d11.ResourceLabel(d3d11.StageGS, 3, 11, 2)).Equals("GS_RESOURCE_3_ARRAY_11_LEVEL_2")
	ctx.For("render target").ThatString(d3d11.RenderTargetLabel(5)).Equals("RENDER_TARGET_5")
	ctx.For("depth stencil").ThatString(d3d11.DepthStencilLabel).Equals("DEPTH_STENCIL")
}

func TestCubeArrayViewDumpsEverySlice(t *testing.T) {
	ctx := log.Testing(t)
	dev, c := soft.New()
	defer c.Release()

	desc := texture2D(2, 2, 2, 12, 1, dxgi.Format_B8G8R8A8_UNORM)
	desc.MiscFlags = d3d11.MiscTextureCube
	r, _ := dev.CreateTexture2D(desc)
	shape := d3d11.GetResourceDesc(r)
	for slice := uint32(0); slice < 12; slice++ {
		fill(r, shape.Subresource(slice, 1), byte(slice))
	}
	view, err := dev.CreateShaderResourceView(r, d3d11.ShaderResourceViewDesc{
		View: d3d11.SRVTextureCubeArray{MostDetailedMip: 1, MipLevels: 1, NumCubes: 2},
	})
	assert.For(ctx, "view").ThatError(err).Succeeded()
	r.Release()

	w := newRecorder()
	stats := d3d11.Stats{}
	d3d11.DumpShaderResourceViewImage(ctx, w, c, view, d3d11.StagePS, 0, &stats)
	view.Release()

	want := make([]string, 12)
	for i := range want {
		want[i] = d3d11.ResourceLabel(d3d11.StagePS, 0, uint32(i), 1)
	}
	assert.For(ctx, "members").ThatSlice(w.members).Equals(want)
	assert.For(ctx, "images").ThatInteger(stats.Images).Equals(12)
	if slice7 := w.images["PS_RESOURCE_0_ARRAY_7_LEVEL_1"]; assert.For(ctx, "slice 7 image").That(slice7).IsNotNil() {
		assert.For(ctx, "slice 7").That(slice7.Data[0]).Equals(byte(7))
		assert.For(ctx, "slice 7 size").That(slice7.Width).Equals(uint32(1))
	}
	assert.For(ctx, "format label").ThatString(w.formats["PS_RESOURCE_0_ARRAY_11_LEVEL_1"]).Equals(d3d11.ImageFormatLabel)
	assert.For(ctx, "live resources").ThatInteger(dev.Live(soft.KindResource)).Equals(0)
	assert.For(ctx, "live views").ThatInteger(dev.Live(soft.KindShaderResourceView)).Equals(0)
}

func TestArrayViewDumpsItsRange(t *testing.T) {
	ctx := log.Testing(t)
	dev, c := soft.New()
	defer c.Release()
	r, _ := dev.CreateTexture2D(texture2D(4, 4, 1, 6, 1, dxgi.Format_R8G8B8A8_UNORM))
	defer r.Release()
	view, _ := dev.CreateShaderResourceView(r, d3d11.ShaderResourceViewDesc{
		View: d3d11.SRVTexture2DArray{MipLevels: 1, FirstArraySlice: 2, ArraySize: 3},
	})
	defer view.Release()

	w := newRecorder()
	d3d11.DumpShaderResourceViewImage(ctx, w, c, view, d3d11.StageCS, 4, nil)
	assert.For(ctx, "members").ThatSlice(w.members).Equals([]string{
		"CS_RESOURCE_4_ARRAY_2_LEVEL_0",
		"CS_RESOURCE_4_ARRAY_3_LEVEL_0",
		"CS_RESOURCE_4_ARRAY_4_LEVEL_0",
	})
}

func TestOutputViewsExtractSliceZero(t *testing.T) {
	ctx := log.Testing(t)
	dev, c := soft.New()
	defer c.Release()

	color, _ := dev.CreateTexture2D(texture2D(2, 2, 2, 3, 1, dxgi.Format_R8G8B8A8_UNORM))
	defer color.Release()
	shape := d3d11.GetResourceDesc(color)
	for slice := uint32(0); slice < 3; slice++ {
		fill(color, shape.Subresource(slice, 1), byte(0x10+slice))
	}
	rtv, err := dev.CreateRenderTargetView(color, d3d11.RenderTargetViewDesc{
		View: d3d11.RTVTexture2DArray{MipSlice: 1, FirstArraySlice: 2, ArraySize: 1},
	})
	assert.For(ctx, "rtv").ThatError(err).Succeeded()
	defer rtv.Release()
	img, err := d3d11.GetRenderTargetViewImage(ctx, c, rtv)
	assert.For(ctx, "rtv err").ThatError(err).Succeeded()
	assert.For(ctx, "rtv slice").That(img.Data[0]).Equals(byte(0x10))
	assert.For(ctx, "rtv mip").That(img.Width).Equals(uint32(1))

	depth, _ := dev.CreateTexture2D(d3d11.Texture2DDesc{
		Width: 4, Height: 4, MipLevels: 1, ArraySize: 2,
		Format:     dxgi.Format_D32_FLOAT,
		SampleDesc: d3d11.SampleDesc{Count: 1},
		BindFlags:  d3d11.BindDepthStencil,
	})
	defer depth.Release()
	fill(depth, 0, 0)
	fill(depth, 1, 0x3f)
	dsv, err := dev.CreateDepthStencilView(depth, d3d11.DepthStencilViewDesc{
		View: d3d11.DSVTexture2DArray{FirstArraySlice: 1, ArraySize: 1},
	})
	assert.For(ctx, "dsv").ThatError(err).Succeeded()
	defer dsv.Release()
	img, err = d3d11.GetDepthStencilViewImage(ctx, c, dsv)
	assert.For(ctx, "dsv err").ThatError(err).Succeeded()
	assert.For(ctx, "dsv slice").ThatFloat(img.Pixel(0, 0)[0]).Equals(0, 0)

	img, err = d3d11.GetRenderTargetViewImage(ctx, c, nil)
	assert.For(ctx, "nil rtv").That(img).IsNil()
	assert.For(ctx, "nil rtv err").ThatError(err).Succeeded()
}
