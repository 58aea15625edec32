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

import (
	"testing"

	"github.com/dromanov/apitrace/core/assert"
	"github.com/dromanov/apitrace/gapis/api/dxgi"
)

func TestShadowDescs(t *testing.T) {
	ctx := assert.To(t)
	src := NewResourceDesc(Texture2DDesc{
		Width:          13,
		Height:         6,
		MipLevels:      1,
		ArraySize:      12,
		Format:         dxgi.Format_R16G16B16A16_FLOAT,
		SampleDesc:     SampleDesc{Count: 8, Quality: 3},
		Usage:          UsageDynamic,
		BindFlags:      BindShaderResource | BindRenderTarget,
		CPUAccessFlags: CPUAccessWrite,
		MiscFlags:      MiscTextureCube | MiscShared | MiscGenerateMips,
	})
	resolved := resolvedDesc(src, 0)
	ctx.For("resolved").That(resolved).DeepEquals(ResourceDesc{
		Dimension:  ResourceDimensionTexture2D,
		Width:      13,
		Height:     6,
		Depth:      1,
		MipLevels:  1,
		ArraySize:  1,
		Format:     dxgi.Format_R16G16B16A16_FLOAT,
		SampleDesc: SampleDesc{Count: 1},
		Usage:      UsageDefault,
		MiscFlags:  MiscTextureCube,
	})

	staging := stagingDesc(resolved)
	ctx.For("staging usage").That(staging.Usage).Equals(UsageStaging)
	ctx.For("staging access").That(staging.CPUAccessFlags).Equals(CPUAccessRead)
	ctx.For("staging binds").That(staging.BindFlags).Equals(BindFlags(0))
	ctx.For("staging misc").That(staging.MiscFlags).Equals(MiscFlags(0))

	mip := resolvedDesc(NewResourceDesc(Texture3DDesc{Width: 16, Height: 5, Depth: 3, MipLevels: 4}), 2)
	ctx.For("mip width").That(mip.Width).Equals(uint32(4))
	ctx.For("mip height").That(mip.Height).Equals(uint32(1))
	ctx.For("mip depth").That(mip.Depth).Equals(uint32(1))
}

func TestSubresourceIndex(t *testing.T) {
	ctx := assert.To(t)
	d := NewResourceDesc(Texture2DDesc{Width: 8, Height: 8, MipLevels: 4, ArraySize: 3, SampleDesc: SampleDesc{Count: 1}})
	ctx.For("0,0").That(d.Subresource(0, 0)).Equals(uint32(0))
	ctx.For("0,3").That(d.Subresource(0, 3)).Equals(uint32(3))
	ctx.For("2,1").That(d.Subresource(2, 1)).Equals(uint32(9))
}
