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

package scene

import (
	"context"
	"fmt"

	"github.com/dromanov/apitrace/core/log"
	"github.com/dromanov/apitrace/core/math/u32"
	"github.com/dromanov/apitrace/gapis/api/d3d11"
	"github.com/dromanov/apitrace/gapis/api/dxgi"
	"github.com/pkg/errors"
)

// State holds the objects created by Build.
type State struct {
	Resources map[string]d3d11.Resource
	Views     map[string]d3d11.View
	owned     []d3d11.Unknown
}

// Release releases every object held by the state. Objects still bound to
// the pipeline stay alive until they are unbound.
func (s *State) Release() {
	for i := len(s.owned) - 1; i >= 0; i-- {
		s.owned[i].Release()
	}
	s.owned = nil
	s.Resources, s.Views = nil, nil
}

func (s *State) own(name string, o d3d11.Unknown) {
	s.owned = append(s.owned, o)
	switch o := o.(type) {
	case d3d11.Resource:
		s.Resources[name] = o
	case d3d11.View:
		s.Views[name] = o
	}
}

// sampleWriter is implemented by resources whose samples can be written
// directly. Multisampled textures of other devices are left uninitialized.
type sampleWriter interface {
	Data(sub, sample uint32) []byte
}

// Build creates the textures and views of s on the device of c, fills them
// and binds them to c. On failure every object created so far is released.
func Build(ctx context.Context, c d3d11.DeviceContext, s *Scene) (*State, error) {
	ctx = log.Enter(ctx, "scene.Build")
	dev := c.Device()
	defer dev.Release()

	out := &State{Resources: map[string]d3d11.Resource{}, Views: map[string]d3d11.View{}}
	if err := build(ctx, dev, c, s, out); err != nil {
		out.Release()
		return nil, err
	}
	return out, nil
}

func build(ctx context.Context, dev d3d11.Device, c d3d11.DeviceContext, s *Scene, out *State) error {
	for i := range s.Textures {
		t := &s.Textures[i]
		if _, dup := out.Resources[t.Name]; dup {
			return errors.Wrapf(ErrInvalid, "Texture %q declared twice", t.Name)
		}
		desc, err := t.desc()
		if err != nil {
			return err
		}
		res, err := d3d11.CreateResource(dev, desc)
		if err != nil {
			return errors.Wrapf(err, "Creating texture %q", t.Name)
		}
		out.own(t.Name, res)
		if err := fill(ctx, c, res, t); err != nil {
			return err
		}
		log.D(ctx, "Created %v %q", desc.Dimension, t.Name)
	}

	for i := range s.Views {
		v := &s.Views[i]
		if _, dup := out.Views[v.Name]; dup {
			return errors.Wrapf(ErrInvalid, "View %q declared twice", v.Name)
		}
		t, err := s.texture(v.Texture)
		if err != nil {
			return errors.Wrapf(err, "View %q", v.Name)
		}
		view, err := createView(dev, out.Resources[t.Name], v)
		if err != nil {
			return errors.Wrapf(err, "Creating view %q", v.Name)
		}
		out.own(v.Name, view)
	}

	for _, b := range s.ShaderResources {
		stage, err := d3d11.ParseStage(b.Stage)
		if err != nil {
			return errors.Wrap(ErrInvalid, err.Error())
		}
		srv, ok := out.Views[b.View].(d3d11.ShaderResourceView)
		if !ok {
			return errors.Wrapf(ErrUnknownName, "Shader resource view %q", b.View)
		}
		c.SetShaderResources(stage, b.Slot, []d3d11.ShaderResourceView{srv})
	}

	if len(s.RenderTargets) > 0 || s.DepthStencil != "" {
		if len(s.RenderTargets) > d3d11.SimultaneousRenderTargetCount {
			return errors.Wrapf(ErrInvalid, "%d render targets", len(s.RenderTargets))
		}
		rtvs := make([]d3d11.RenderTargetView, len(s.RenderTargets))
		for i, name := range s.RenderTargets {
			if name == "" {
				continue
			}
			rtv, ok := out.Views[name].(d3d11.RenderTargetView)
			if !ok {
				return errors.Wrapf(ErrUnknownName, "Render target view %q", name)
			}
			rtvs[i] = rtv
		}
		var dsv d3d11.DepthStencilView
		if s.DepthStencil != "" {
			v, ok := out.Views[s.DepthStencil].(d3d11.DepthStencilView)
			if !ok {
				return errors.Wrapf(ErrUnknownName, "Depth-stencil view %q", s.DepthStencil)
			}
			dsv = v
		}
		c.OMSetRenderTargets(rtvs, dsv)
	}
	return nil
}

func parseFormat(name string) (dxgi.Format, error) {
	if name == "" {
		return dxgi.Format_UNKNOWN, nil
	}
	return dxgi.ParseFormat(name)
}

func parseBind(names []string) (d3d11.BindFlags, error) {
	var out d3d11.BindFlags
	for _, n := range names {
		switch n {
		case "shader_resource":
			out |= d3d11.BindShaderResource
		case "render_target":
			out |= d3d11.BindRenderTarget
		case "depth_stencil":
			out |= d3d11.BindDepthStencil
		case "unordered_access":
			out |= d3d11.BindUnorderedAccess
		case "vertex_buffer":
			out |= d3d11.BindVertexBuffer
		case "index_buffer":
			out |= d3d11.BindIndexBuffer
		case "constant_buffer":
			out |= d3d11.BindConstantBuffer
		default:
			return 0, errors.Wrapf(ErrInvalid, "Unknown bind flag %q", n)
		}
	}
	return out, nil
}

func orOne(v uint32) uint32 {
	if v == 0 {
		return 1
	}
	return v
}

func (t *Texture) desc() (d3d11.ResourceDesc, error) {
	format, err := parseFormat(t.Format)
	if err != nil {
		return d3d11.ResourceDesc{}, errors.Wrapf(err, "Texture %q", t.Name)
	}
	bind, err := parseBind(t.Bind)
	if err != nil {
		return d3d11.ResourceDesc{}, errors.Wrapf(err, "Texture %q", t.Name)
	}
	d := d3d11.ResourceDesc{
		Width:      t.Width,
		Height:     1,
		Depth:      1,
		MipLevels:  t.Mips,
		ArraySize:  orOne(t.Array),
		Format:     format,
		SampleDesc: d3d11.SampleDesc{Count: orOne(t.Samples)},
		Usage:      d3d11.UsageDefault,
		BindFlags:  bind,
	}
	switch t.Dimension {
	case DimensionBuffer:
		d.Dimension = d3d11.ResourceDimensionBuffer
	case DimensionTexture1D:
		d.Dimension = d3d11.ResourceDimensionTexture1D
	case DimensionTexture2D, "":
		d.Dimension = d3d11.ResourceDimensionTexture2D
		d.Height = t.Height
	case DimensionCube:
		d.Dimension = d3d11.ResourceDimensionTexture2D
		d.Height = t.Height
		d.ArraySize *= 6
		d.MiscFlags |= d3d11.MiscTextureCube
	case DimensionTexture3D:
		d.Dimension = d3d11.ResourceDimensionTexture3D
		d.Height, d.Depth = t.Height, t.Depth
	default:
		return d3d11.ResourceDesc{}, errors.Wrapf(ErrInvalid, "Texture %q has unknown dimension %q", t.Name, t.Dimension)
	}
	return d, nil
}

func (t *Texture) levelFill(mip uint32) []float64 {
	if int(mip) < len(t.LevelFills) && t.LevelFills[mip] != nil {
		return t.LevelFills[mip]
	}
	return t.Fill
}

// fill writes the fill values of t to every subresource of res.
func fill(ctx context.Context, c d3d11.DeviceContext, res d3d11.Resource, t *Texture) error {
	if t.Fill == nil && t.LevelFills == nil {
		return nil
	}
	d := d3d11.GetResourceDesc(res)
	if d.Dimension == d3d11.ResourceDimensionBuffer {
		log.W(ctx, "Buffer %q is not filled", t.Name)
		return nil
	}
	format, err := dxgi.ImageFormat(d.Format)
	if err != nil {
		return errors.Wrapf(err, "Filling texture %q", t.Name)
	}
	layout := format.Layout
	bpp := uint32(layout.Stride())
	writer, direct := res.(sampleWriter)
	if d.SampleDesc.Count > 1 && !direct {
		log.W(ctx, "Multisampled texture %q is not filled", t.Name)
		return nil
	}
	for slice := uint32(0); slice < d.ArraySize; slice++ {
		for mip := uint32(0); mip < d.MipLevels; mip++ {
			values := t.levelFill(mip)
			if values == nil {
				continue
			}
			if len(values) != len(layout.Components) {
				return errors.Wrapf(ErrInvalid, "Texture %q fill has %d values for %d components of %v",
					t.Name, len(values), len(layout.Components), d.Format)
			}
			w, h, depth := u32.MipSize(d.Width, mip), u32.MipSize(d.Height, mip), u32.MipSize(d.Depth, mip)
			count := int(w * h * depth)
			data := make([]byte, layout.Size(count))
			for el := 0; el < count; el++ {
				layout.Encode(data, el, values)
			}
			sub := d.Subresource(slice, mip)
			if d.SampleDesc.Count > 1 {
				for s := uint32(0); s < d.SampleDesc.Count; s++ {
					copy(writer.Data(sub, s), data)
				}
				continue
			}
			c.UpdateSubresource(res, sub, nil, data, w*bpp, w*h*bpp)
		}
	}
	return nil
}

// orAll returns n, or the count of the items from first to total when n is 0.
func orAll(n, first, total uint32) uint32 {
	if n != 0 {
		return n
	}
	if first >= total {
		return 0
	}
	return total - first
}

func createView(dev d3d11.Device, res d3d11.Resource, v *View) (d3d11.View, error) {
	format, err := parseFormat(v.Format)
	if err != nil {
		return nil, err
	}
	d := d3d11.GetResourceDesc(res)
	switch v.Kind {
	case KindSRV, "":
		shape, err := srvShape(d, v)
		if err != nil {
			return nil, err
		}
		return dev.CreateShaderResourceView(res, d3d11.ShaderResourceViewDesc{Format: format, View: shape})
	case KindRTV:
		shape, err := rtvShape(d, v)
		if err != nil {
			return nil, err
		}
		return dev.CreateRenderTargetView(res, d3d11.RenderTargetViewDesc{Format: format, View: shape})
	case KindDSV:
		shape, err := dsvShape(d, v)
		if err != nil {
			return nil, err
		}
		return dev.CreateDepthStencilView(res, d3d11.DepthStencilViewDesc{Format: format, View: shape})
	}
	return nil, errors.Wrapf(ErrInvalid, "Unknown view kind %q", v.Kind)
}

func unsupported(kind string, d d3d11.ResourceDesc) error {
	return errors.Wrap(ErrInvalid, fmt.Sprintf("No %s of a %v", kind, d.Dimension))
}

func srvShape(d d3d11.ResourceDesc, v *View) (d3d11.SRVShape, error) {
	mips := orAll(v.Mips, v.Mip, d.MipLevels)
	slices := orAll(v.Slices, v.FirstSlice, d.ArraySize)
	array := d.ArraySize > 1
	switch d.Dimension {
	case d3d11.ResourceDimensionBuffer:
		return d3d11.SRVBuffer{FirstElement: v.FirstSlice, NumElements: orAll(v.Slices, v.FirstSlice, d.Width)}, nil
	case d3d11.ResourceDimensionTexture1D:
		if array {
			return d3d11.SRVTexture1DArray{MostDetailedMip: v.Mip, MipLevels: mips, FirstArraySlice: v.FirstSlice, ArraySize: slices}, nil
		}
		return d3d11.SRVTexture1D{MostDetailedMip: v.Mip, MipLevels: mips}, nil
	case d3d11.ResourceDimensionTexture2D:
		switch {
		case d.MiscFlags&d3d11.MiscTextureCube != 0 && d.ArraySize > 6:
			return d3d11.SRVTextureCubeArray{MostDetailedMip: v.Mip, MipLevels: mips,
				First2DArrayFace: v.FirstSlice, NumCubes: slices / 6}, nil
		case d.MiscFlags&d3d11.MiscTextureCube != 0:
			return d3d11.SRVTextureCube{MostDetailedMip: v.Mip, MipLevels: mips}, nil
		case d.SampleDesc.Count > 1 && array:
			return d3d11.SRVTexture2DMSArray{FirstArraySlice: v.FirstSlice, ArraySize: slices}, nil
		case d.SampleDesc.Count > 1:
			return d3d11.SRVTexture2DMS{}, nil
		case array:
			return d3d11.SRVTexture2DArray{MostDetailedMip: v.Mip, MipLevels: mips, FirstArraySlice: v.FirstSlice, ArraySize: slices}, nil
		}
		return d3d11.SRVTexture2D{MostDetailedMip: v.Mip, MipLevels: mips}, nil
	case d3d11.ResourceDimensionTexture3D:
		return d3d11.SRVTexture3D{MostDetailedMip: v.Mip, MipLevels: mips}, nil
	}
	return nil, unsupported("shader resource view", d)
}

func rtvShape(d d3d11.ResourceDesc, v *View) (d3d11.RTVShape, error) {
	slices := orAll(v.Slices, v.FirstSlice, d.ArraySize)
	array := d.ArraySize > 1
	switch d.Dimension {
	case d3d11.ResourceDimensionBuffer:
		return d3d11.RTVBuffer{FirstElement: v.FirstSlice, NumElements: orAll(v.Slices, v.FirstSlice, d.Width)}, nil
	case d3d11.ResourceDimensionTexture1D:
		if array {
			return d3d11.RTVTexture1DArray{MipSlice: v.Mip, FirstArraySlice: v.FirstSlice, ArraySize: slices}, nil
		}
		return d3d11.RTVTexture1D{MipSlice: v.Mip}, nil
	case d3d11.ResourceDimensionTexture2D:
		switch {
		case d.SampleDesc.Count > 1 && array:
			return d3d11.RTVTexture2DMSArray{FirstArraySlice: v.FirstSlice, ArraySize: slices}, nil
		case d.SampleDesc.Count > 1:
			return d3d11.RTVTexture2DMS{}, nil
		case array:
			return d3d11.RTVTexture2DArray{MipSlice: v.Mip, FirstArraySlice: v.FirstSlice, ArraySize: slices}, nil
		}
		return d3d11.RTVTexture2D{MipSlice: v.Mip}, nil
	case d3d11.ResourceDimensionTexture3D:
		depth := u32.MipSize(d.Depth, v.Mip)
		return d3d11.RTVTexture3D{MipSlice: v.Mip, FirstWSlice: v.FirstSlice, WSize: orAll(v.Slices, v.FirstSlice, depth)}, nil
	}
	return nil, unsupported("render target view", d)
}

func dsvShape(d d3d11.ResourceDesc, v *View) (d3d11.DSVShape, error) {
	slices := orAll(v.Slices, v.FirstSlice, d.ArraySize)
	array := d.ArraySize > 1
	switch d.Dimension {
	case d3d11.ResourceDimensionTexture1D:
		if array {
			return d3d11.DSVTexture1DArray{MipSlice: v.Mip, FirstArraySlice: v.FirstSlice, ArraySize: slices}, nil
		}
		return d3d11.DSVTexture1D{MipSlice: v.Mip}, nil
	case d3d11.ResourceDimensionTexture2D:
		switch {
		case d.SampleDesc.Count > 1 && array:
			return d3d11.DSVTexture2DMSArray{FirstArraySlice: v.FirstSlice, ArraySize: slices}, nil
		case d.SampleDesc.Count > 1:
			return d3d11.DSVTexture2DMS{}, nil
		case array:
			return d3d11.DSVTexture2DArray{MipSlice: v.Mip, FirstArraySlice: v.FirstSlice, ArraySize: slices}, nil
		}
		return d3d11.DSVTexture2D{MipSlice: v.Mip}, nil
	}
	return nil, unsupported("depth-stencil view", d)
}
