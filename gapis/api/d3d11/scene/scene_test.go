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

package scene_test

import (
	"strings"
	"testing"

	"github.com/dromanov/apitrace/core/assert"
	"github.com/dromanov/apitrace/core/log"
	"github.com/dromanov/apitrace/gapis/api/d3d11"
	"github.com/dromanov/apitrace/gapis/api/d3d11/scene"
	"github.com/dromanov/apitrace/gapis/api/d3d11/soft"
	"github.com/dromanov/apitrace/gapis/api/dxgi"
)

const sample = `
textures:
  - name: albedo
    width: 4
    height: 4
    mips: 3
    format: R8G8B8A8_UNORM
    bind: [shader_resource]
    fill: [0, 0, 0, 1]
    level_fills:
      - [1, 0, 0, 1]
      - [0, 1, 0, 1]
  - name: color
    width: 8
    height: 8
    mips: 1
    samples: 4
    format: R8G8B8A8_UNORM
    bind: [render_target]
    fill: [0.2, 0.4, 0.6, 1]
  - name: depth
    width: 8
    height: 8
    mips: 1
    format: D32_FLOAT
    bind: [depth_stencil]
    fill: [0.5]
  - name: sky
    dimension: cube
    width: 2
    height: 2
    mips: 1
    array: 2
    format: R8_UNORM
    bind: [shader_resource]
views:
  - {name: albedo, texture: albedo, kind: srv}
  - {name: albedo_mip1, texture: albedo, kind: srv, mip: 1}
  - {name: sky, texture: sky}
  - {name: color, texture: color, kind: rtv}
  - {name: depth, texture: depth, kind: dsv}
shader_resources:
  - {stage: ps, slot: 0, view: albedo}
  - {stage: ps, slot: 3, view: albedo_mip1}
  - {stage: cs, slot: 1, view: sky}
render_targets: [color]
depth_stencil: depth
`

func load(t *testing.T, src string) *scene.Scene {
	s, err := scene.Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return s
}

func TestLoad(t *testing.T) {
	ctx := log.Testing(t)
	s := load(t, sample)
	assert.For(ctx, "textures").ThatSlice(s.Textures).IsLength(4)
	assert.For(ctx, "views").ThatSlice(s.Views).IsLength(5)
	assert.For(ctx, "level fills").ThatSlice(s.Textures[0].LevelFills).IsLength(2)
	assert.For(ctx, "cube").That(s.Textures[3].Dimension).Equals(scene.DimensionCube)
	assert.For(ctx, "binding").That(s.ShaderResources[2]).Equals(scene.Binding{Stage: "cs", Slot: 1, View: "sky"})
	assert.For(ctx, "depth").That(s.DepthStencil).Equals("depth")

	_, err := scene.Load(strings.NewReader("textures:\n  - name: a\n    colour: red\n"))
	assert.For(ctx, "unknown field").ThatError(err).Failed()

	empty, err := scene.Load(strings.NewReader(""))
	assert.For(ctx, "empty").ThatError(err).Succeeded()
	assert.For(ctx, "empty textures").ThatSlice(empty.Textures).IsEmpty()
}

func TestBuild(t *testing.T) {
	ctx := log.Testing(t)
	dev, c := soft.New()
	state, err := scene.Build(ctx, c, load(t, sample))
	assert.For(ctx, "build").ThatError(err).Succeeded()
	assert.For(ctx, "resources").ThatInteger(len(state.Resources)).Equals(4)
	assert.For(ctx, "views").ThatInteger(len(state.Views)).Equals(5)

	albedo := state.Resources["albedo"]
	for _, test := range []struct {
		mip    uint32
		expect []byte
	}{
		{0, []byte{255, 0, 0, 255}},
		{1, []byte{0, 255, 0, 255}},
		{2, []byte{0, 0, 0, 255}},
	} {
		img, err := d3d11.GetSubresourceImage(ctx, c, albedo, dxgi.Format_R8G8B8A8_UNORM, 0, test.mip)
		assert.For(ctx, "mip %d", test.mip).ThatError(err).Succeeded()
		assert.For(ctx, "mip %d texel", test.mip).ThatSlice(img.Data[len(img.Data)-4:]).Equals(test.expect)
	}

	color, err := d3d11.GetSubresourceImage(ctx, c, state.Resources["color"], dxgi.Format_R8G8B8A8_UNORM, 0, 0)
	assert.For(ctx, "resolved").ThatError(err).Succeeded()
	assert.For(ctx, "resolved texel").ThatSlice(color.Data[:4]).Equals([]byte{51, 102, 153, 255})

	depth, err := d3d11.GetSubresourceImage(ctx, c, state.Resources["depth"], dxgi.Format_D32_FLOAT, 0, 0)
	assert.For(ctx, "depth").ThatError(err).Succeeded()
	assert.For(ctx, "depth texel").ThatSlice(depth.Pixel(7, 7)).Equals([]float64{0.5})

	ps := c.GetShaderResources(d3d11.StagePS, 0, 4)
	assert.For(ctx, "ps 0").That(ps[0]).Equals(state.Views["albedo"])
	assert.For(ctx, "ps 1").That(ps[1]).IsNil()
	assert.For(ctx, "ps 3 mip").That(ps[3].Desc().View).Equals(d3d11.SRVTexture2D{MostDetailedMip: 1, MipLevels: 2})
	for _, v := range ps {
		if v != nil {
			v.Release()
		}
	}
	cs := c.GetShaderResources(d3d11.StageCS, 1, 1)
	assert.For(ctx, "cube array").That(cs[0].Desc().View).Equals(d3d11.SRVTextureCubeArray{MipLevels: 1, NumCubes: 2})
	cs[0].Release()

	rtvs, dsv := c.OMGetRenderTargets(1)
	assert.For(ctx, "rtv").That(rtvs[0]).Equals(state.Views["color"])
	assert.For(ctx, "rtv shape").That(rtvs[0].Desc().View).Equals(d3d11.RTVTexture2DMS{})
	assert.For(ctx, "dsv").That(dsv).Equals(state.Views["depth"])
	rtvs[0].Release()
	dsv.Release()

	state.Release()
	assert.For(ctx, "bound views alive").ThatInteger(dev.Live(soft.KindShaderResourceView)).Equals(3)
	c.Release()
	assert.For(ctx, "views").ThatInteger(dev.Live(soft.KindShaderResourceView)).Equals(0)
	assert.For(ctx, "resources").ThatInteger(dev.Live(soft.KindResource)).Equals(0)
}

func TestBuildFailureReleases(t *testing.T) {
	ctx := log.Testing(t)
	for _, test := range []struct {
		name  string
		src   string
		cause error
	}{
		{"unknown texture", `
textures:
  - {name: a, width: 2, height: 2, mips: 1, format: R8_UNORM, bind: [shader_resource]}
views:
  - {name: v, texture: b}
`, scene.ErrUnknownName},
		{"unknown view", `
textures:
  - {name: a, width: 2, height: 2, mips: 1, format: R8_UNORM, bind: [shader_resource]}
views:
  - {name: v, texture: a}
shader_resources:
  - {stage: ps, slot: 0, view: w}
`, scene.ErrUnknownName},
		{"wrong view kind", `
textures:
  - {name: a, width: 2, height: 2, mips: 1, format: R8_UNORM, bind: [shader_resource]}
views:
  - {name: v, texture: a}
render_targets: [v]
`, scene.ErrUnknownName},
		{"bad dimension", `
textures:
  - {name: a, dimension: texture4d, width: 2}
`, scene.ErrInvalid},
		{"bad fill", `
textures:
  - {name: a, width: 2, height: 2, mips: 1, format: R8_UNORM, fill: [1, 1]}
`, scene.ErrInvalid},
		{"duplicate", `
textures:
  - {name: a, width: 2, height: 2, mips: 1, format: R8_UNORM}
  - {name: a, width: 2, height: 2, mips: 1, format: R8_UNORM}
`, scene.ErrInvalid},
		{"bad bind", `
textures:
  - {name: a, width: 2, height: 2, format: R8_UNORM, bind: [everything]}
`, scene.ErrInvalid},
		{"unsupported view", `
textures:
  - {name: a, dimension: texture3d, width: 2, height: 2, depth: 2, format: D32_FLOAT, bind: [depth_stencil]}
views:
  - {name: v, texture: a, kind: dsv}
`, scene.ErrInvalid},
	} {
		dev, c := soft.New()
		state, err := scene.Build(ctx, c, load(t, test.src))
		assert.For(ctx, "%s", test.name).ThatError(err).HasCause(test.cause)
		assert.For(ctx, "%s state", test.name).That(state).IsNil()
		assert.For(ctx, "%s resources", test.name).ThatInteger(dev.Live(soft.KindResource)).Equals(0)
		assert.For(ctx, "%s views", test.name).ThatInteger(dev.Live(soft.KindShaderResourceView)).Equals(0)
		assert.For(ctx, "%s device refs", test.name).That(dev.Refs()).Equals(uint32(1))
		c.Release()
	}
}

func TestFullMipChainByDefault(t *testing.T) {
	ctx := log.Testing(t)
	_, c := soft.New()
	defer c.Release()
	state, err := scene.Build(ctx, c, load(t, `
textures:
  - {name: a, dimension: texture1d, width: 8, format: R8_UNORM, fill: [1]}
`))
	assert.For(ctx, "build").ThatError(err).Succeeded()
	defer state.Release()
	d := d3d11.GetResourceDesc(state.Resources["a"])
	assert.For(ctx, "mips").That(d.MipLevels).Equals(uint32(4))
	img, err := d3d11.GetSubresourceImage(ctx, c, state.Resources["a"], dxgi.Format_R8_UNORM, 0, 3)
	assert.For(ctx, "last mip").ThatError(err).Succeeded()
	assert.For(ctx, "last mip data").ThatSlice(img.Data).Equals([]byte{255})
}
