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
	"github.com/dromanov/apitrace/gapis/api/d3d11"
	"github.com/dromanov/apitrace/gapis/api/d3d11/soft"
	"github.com/dromanov/apitrace/gapis/api/dxgi"
)

func TestNewResourceDescDefaults(t *testing.T) {
	ctx := assert.To(t)
	for _, test := range []struct {
		name string
		desc d3d11.NativeDesc
		want d3d11.ResourceDesc
	}{
		{"buffer", d3d11.BufferDesc{ByteWidth: 256, BindFlags: d3d11.BindVertexBuffer, StructureByteStride: 16},
			d3d11.ResourceDesc{
				Dimension: d3d11.ResourceDimensionBuffer, Width: 256, Height: 1, Depth: 1,
				MipLevels: 1, ArraySize: 1, SampleDesc: d3d11.SampleDesc{Count: 1},
				BindFlags: d3d11.BindVertexBuffer,
			}},
		{"1D", d3d11.Texture1DDesc{Width: 64, MipLevels: 7, ArraySize: 2, Format: dxgi.Format_R16_UNORM},
			d3d11.ResourceDesc{
				Dimension: d3d11.ResourceDimensionTexture1D, Width: 64, Height: 1, Depth: 1,
				MipLevels: 7, ArraySize: 2, Format: dxgi.Format_R16_UNORM, SampleDesc: d3d11.SampleDesc{Count: 1},
			}},
		{"3D", d3d11.Texture3DDesc{Width: 4, Height: 5, Depth: 6, MipLevels: 1, Format: dxgi.Format_R8_UINT, Usage: d3d11.UsageImmutable},
			d3d11.ResourceDesc{
				Dimension: d3d11.ResourceDimensionTexture3D, Width: 4, Height: 5, Depth: 6,
				MipLevels: 1, ArraySize: 1, Format: dxgi.Format_R8_UINT, SampleDesc: d3d11.SampleDesc{Count: 1},
				Usage: d3d11.UsageImmutable,
			}},
	} {
		got := d3d11.NewResourceDesc(test.desc)
		ctx.For("%s", test.name).That(got).DeepEquals(test.want)
		native, err := got.Native()
		ctx.For("%s native err", test.name).ThatError(err).Succeeded()
		ctx.For("%s native dimension", test.name).That(native.Dimension()).Equals(test.desc.Dimension())
	}
}

func TestNativeRoundTrip(t *testing.T) {
	ctx := assert.To(t)
	// StructureByteStride has no ResourceDesc field and is left zero.
	for _, test := range []struct {
		name string
		desc d3d11.NativeDesc
	}{
		{"buffer", d3d11.BufferDesc{
			ByteWidth: 1024, Usage: d3d11.UsageDynamic, BindFlags: d3d11.BindVertexBuffer,
			CPUAccessFlags: d3d11.CPUAccessWrite, MiscFlags: d3d11.MiscShared,
		}},
		{"1D", d3d11.Texture1DDesc{
			Width: 64, MipLevels: 7, ArraySize: 3, Format: dxgi.Format_R16_UNORM,
			Usage: d3d11.UsageDynamic, BindFlags: d3d11.BindShaderResource,
			CPUAccessFlags: d3d11.CPUAccessWrite, MiscFlags: d3d11.MiscShared,
		}},
		{"2D", d3d11.Texture2DDesc{
			Width: 32, Height: 16, MipLevels: 1, ArraySize: 2, Format: dxgi.Format_R8G8B8A8_UNORM,
			SampleDesc: d3d11.SampleDesc{Count: 4, Quality: 1}, Usage: d3d11.UsageDynamic,
			BindFlags: d3d11.BindShaderResource | d3d11.BindRenderTarget,
			CPUAccessFlags: d3d11.CPUAccessWrite, MiscFlags: d3d11.MiscShared,
		}},
		{"3D", d3d11.Texture3DDesc{
			Width: 4, Height: 5, Depth: 6, MipLevels: 3, Format: dxgi.Format_R8_UINT,
			Usage: d3d11.UsageDynamic, BindFlags: d3d11.BindShaderResource,
			CPUAccessFlags: d3d11.CPUAccessWrite, MiscFlags: d3d11.MiscShared,
		}},
	} {
		native, err := d3d11.NewResourceDesc(test.desc).Native()
		ctx.For("%s err", test.name).ThatError(err).Succeeded()
		ctx.For("%s", test.name).That(native).DeepEquals(test.desc)
	}
}

func TestNativeDropsInapplicableFields(t *testing.T) {
	ctx := assert.To(t)
	d := d3d11.ResourceDesc{
		Dimension: d3d11.ResourceDimensionTexture1D, Width: 8, Height: 8, Depth: 8,
		MipLevels: 1, ArraySize: 4, SampleDesc: d3d11.SampleDesc{Count: 4},
	}
	native, err := d.Native()
	ctx.For("err").ThatError(err).Succeeded()
	ctx.For("native").That(native).DeepEquals(d3d11.Texture1DDesc{Width: 8, MipLevels: 1, ArraySize: 4})
}

func TestUnknownDimensionNotImplemented(t *testing.T) {
	ctx := assert.To(t)
	d := d3d11.ResourceDesc{Dimension: d3d11.ResourceDimensionUnknown, Width: 1}
	_, err := d.Native()
	ctx.For("native").ThatError(err).HasCause(d3d11.ErrNotImplemented)

	dev, c := soft.New()
	defer c.Release()
	r, err := d3d11.CreateResource(dev, d)
	ctx.For("create").ThatError(err).HasCause(d3d11.ErrNotImplemented)
	ctx.For("resource").That(r).IsNil()
	ctx.For("device calls").ThatSlice(dev.Calls).IsEmpty()
}

func TestUnknownNativeDescPanics(t *testing.T) {
	assert.To(t).For("nil desc").ThatBoolean(panics(func() { d3d11.NewResourceDesc(nil) })).IsTrue()
}
