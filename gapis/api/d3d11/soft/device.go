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

	"github.com/dromanov/apitrace/core/math/u32"
	"github.com/dromanov/apitrace/gapis/api/d3d11"
	"github.com/dromanov/apitrace/gapis/api/dxgi"
	"github.com/pkg/errors"
)

// Device is an in-memory d3d11.Device.
type Device struct {
	object

	// Calls lists the names of the device and context methods called, in
	// call order. Reference counting calls are not recorded.
	Calls []string

	// FailCreate, if not nil, is called before every resource creation.
	// A non-nil error fails the creation.
	FailCreate func(desc d3d11.NativeDesc) error

	// FailMap, if not nil, is called before every Map. A non-nil error
	// fails the Map.
	FailMap func(r *Resource, sub uint32) error

	// RowPitchAlignment is the byte alignment of the rows of mapped
	// subresources. Zero packs rows tightly.
	RowPitchAlignment uint32

	live map[*object]struct{}
}

var _ d3d11.Device = &Device{}

// New returns a new device and its immediate context, each holding a
// reference owned by the caller.
func New() (*Device, *Context) {
	d := &Device{live: map[*object]struct{}{}}
	d.init(KindDevice, nil)
	c := &Context{dev: d, srvs: map[d3d11.Stage]map[uint32]*ShaderResourceView{}}
	c.init(KindContext, c.unbindAll)
	return d, c
}

func (d *Device) record(name string) { d.Calls = append(d.Calls, name) }

// Count returns the number of times the method name has been called.
func (d *Device) Count(name string) int {
	n := 0
	for _, c := range d.Calls {
		if c == name {
			n++
		}
	}
	return n
}

// ResetCalls clears Calls.
func (d *Device) ResetCalls() { d.Calls = nil }

// Live returns the number of objects of kind that hold references.
func (d *Device) Live(kind Kind) int {
	n := 0
	for o := range d.live {
		if o.kind == kind {
			n++
		}
	}
	return n
}

func (d *Device) track(o *object, kind Kind, free func()) {
	o.init(kind, func() {
		delete(d.live, o)
		if free != nil {
			free()
		}
	})
	d.live[o] = struct{}{}
}

func (d *Device) CreateBuffer(desc d3d11.BufferDesc) (d3d11.Resource, error) {
	d.record("CreateBuffer")
	return d.create(desc)
}

func (d *Device) CreateTexture1D(desc d3d11.Texture1DDesc) (d3d11.Resource, error) {
	d.record("CreateTexture1D")
	return d.create(desc)
}

func (d *Device) CreateTexture2D(desc d3d11.Texture2DDesc) (d3d11.Resource, error) {
	d.record("CreateTexture2D")
	return d.create(desc)
}

func (d *Device) CreateTexture3D(desc d3d11.Texture3DDesc) (d3d11.Resource, error) {
	d.record("CreateTexture3D")
	return d.create(desc)
}

func (d *Device) create(desc d3d11.NativeDesc) (d3d11.Resource, error) {
	if d.FailCreate != nil {
		if err := d.FailCreate(desc); err != nil {
			return nil, err
		}
	}
	desc = withMipChain(desc)
	shape := d3d11.NewResourceDesc(desc)
	bpp, err := validate(shape)
	if err != nil {
		return nil, errors.Wrapf(err, "Creating %v", shape.Dimension)
	}
	return newResource(d, desc, shape, bpp), nil
}

// mipChain returns the number of levels in a full mip chain of a resource
// of the given size.
func mipChain(w, h, d uint32) uint32 {
	n := uint32(1)
	for size := u32.Max(w, u32.Max(h, d)); size > 1; size >>= 1 {
		n++
	}
	return n
}

// withMipChain returns desc with a MipLevels of 0 replaced with the length of
// the full mip chain.
func withMipChain(desc d3d11.NativeDesc) d3d11.NativeDesc {
	switch d := desc.(type) {
	case d3d11.Texture1DDesc:
		if d.MipLevels == 0 {
			d.MipLevels = mipChain(d.Width, 1, 1)
		}
		return d
	case d3d11.Texture2DDesc:
		if d.MipLevels == 0 {
			d.MipLevels = mipChain(d.Width, d.Height, 1)
		}
		return d
	case d3d11.Texture3DDesc:
		if d.MipLevels == 0 {
			d.MipLevels = mipChain(d.Width, d.Height, d.Depth)
		}
		return d
	}
	return desc
}

// validate returns the element size of a resource described by d, or an
// error if the device cannot create it.
func validate(d d3d11.ResourceDesc) (uint32, error) {
	switch {
	case d.Width == 0 || d.Height == 0 || d.Depth == 0:
		return 0, errors.Wrapf(ErrInvalidArg, "Empty %dx%dx%d resource", d.Width, d.Height, d.Depth)
	case d.ArraySize == 0:
		return 0, errors.Wrap(ErrInvalidArg, "Array size of 0")
	case d.MipLevels > mipChain(d.Width, d.Height, d.Depth):
		return 0, errors.Wrapf(ErrInvalidArg, "%d mip levels for %dx%dx%d", d.MipLevels, d.Width, d.Height, d.Depth)
	case d.SampleDesc.Count == 0:
		return 0, errors.Wrap(ErrInvalidArg, "Sample count of 0")
	}
	if d.SampleDesc.Count > 1 {
		switch {
		case d.Dimension != d3d11.ResourceDimensionTexture2D:
			return 0, errors.Wrapf(ErrInvalidArg, "Multisampled %v", d.Dimension)
		case d.MipLevels > 1:
			return 0, errors.Wrap(ErrInvalidArg, "Multisampled texture with mip levels")
		case d.Usage == d3d11.UsageStaging:
			return 0, errors.Wrap(ErrInvalidArg, "Multisampled staging texture")
		}
	}
	if d.Usage == d3d11.UsageStaging {
		if d.BindFlags != 0 {
			return 0, errors.Wrapf(ErrInvalidArg, "Staging resource with bind flags 0x%x", uint32(d.BindFlags))
		}
		if d.CPUAccessFlags == 0 {
			return 0, errors.Wrap(ErrInvalidArg, "Staging resource without CPU access")
		}
	}
	if d.MiscFlags&d3d11.MiscTextureCube != 0 {
		if d.Dimension != d3d11.ResourceDimensionTexture2D || d.ArraySize%6 != 0 {
			return 0, errors.Wrapf(ErrInvalidArg, "Cube %v of array size %d", d.Dimension, d.ArraySize)
		}
	}
	if d.Dimension == d3d11.ResourceDimensionBuffer {
		return 1, nil
	}
	bpp := uint32(d.Format.BytesPerPixel())
	if bpp == 0 {
		return 0, errors.Wrapf(ErrInvalidArg, "Unsupported format %v", d.Format)
	}
	return bpp, nil
}

func (d *Device) resource(r d3d11.Resource) *Resource {
	out, ok := r.(*Resource)
	if !ok || out.dev != d {
		panic(fmt.Errorf("%T is not a resource of this device", r))
	}
	if out.refs == 0 {
		panic(fmt.Errorf("Use of released resource"))
	}
	return out
}

func (d *Device) CreateShaderResourceView(r d3d11.Resource, desc d3d11.ShaderResourceViewDesc) (d3d11.ShaderResourceView, error) {
	d.record("CreateShaderResourceView")
	res := d.resource(r)
	if err := checkSRV(res.shape, desc); err != nil {
		return nil, err
	}
	if desc.Format == dxgi.Format_UNKNOWN {
		desc.Format = res.shape.Format
	}
	v := &ShaderResourceView{desc: desc}
	d.newView(&v.view, KindShaderResourceView, res)
	return v, nil
}

func (d *Device) CreateRenderTargetView(r d3d11.Resource, desc d3d11.RenderTargetViewDesc) (d3d11.RenderTargetView, error) {
	d.record("CreateRenderTargetView")
	res := d.resource(r)
	if err := checkRTV(res.shape, desc); err != nil {
		return nil, err
	}
	if desc.Format == dxgi.Format_UNKNOWN {
		desc.Format = res.shape.Format
	}
	v := &RenderTargetView{desc: desc}
	d.newView(&v.view, KindRenderTargetView, res)
	return v, nil
}

func (d *Device) CreateDepthStencilView(r d3d11.Resource, desc d3d11.DepthStencilViewDesc) (d3d11.DepthStencilView, error) {
	d.record("CreateDepthStencilView")
	res := d.resource(r)
	if err := checkDSV(res.shape, desc); err != nil {
		return nil, err
	}
	if desc.Format == dxgi.Format_UNKNOWN {
		desc.Format = res.shape.Format
	}
	v := &DepthStencilView{desc: desc}
	d.newView(&v.view, KindDepthStencilView, res)
	return v, nil
}
