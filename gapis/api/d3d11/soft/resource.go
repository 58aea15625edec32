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
)

// Resource is an in-memory buffer or texture.
// Each subresource holds one tightly packed plane per sample.
type Resource struct {
	object
	dev    *Device
	desc   d3d11.NativeDesc
	shape  d3d11.ResourceDesc
	bpp    uint32
	subs   [][]byte
	mapped map[uint32]*mapping
}

var _ d3d11.Resource = &Resource{}

// mapping is the CPU copy of a mapped subresource.
type mapping struct {
	t      d3d11.MapType
	mapped d3d11.MappedSubresource
}

func newResource(d *Device, desc d3d11.NativeDesc, shape d3d11.ResourceDesc, bpp uint32) *Resource {
	r := &Resource{
		dev:    d,
		desc:   desc,
		shape:  shape,
		bpp:    bpp,
		mapped: map[uint32]*mapping{},
	}
	count := shape.ArraySize * shape.MipLevels
	r.subs = make([][]byte, count)
	for sub := range r.subs {
		r.subs[sub] = make([]byte, r.planeSize(uint32(sub))*shape.SampleDesc.Count)
	}
	d.track(&r.object, KindResource, func() { r.subs = nil })
	return r
}

func (r *Resource) Type() d3d11.ResourceDimension { return r.shape.Dimension }

func (r *Resource) Desc() d3d11.NativeDesc { return r.desc }

// Shape returns the normalized description of the resource.
func (r *Resource) Shape() d3d11.ResourceDesc { return r.shape }

// Subresources returns the number of subresources of the resource.
func (r *Resource) Subresources() uint32 { return uint32(len(r.subs)) }

// Extent returns the size in elements of the subresource sub.
func (r *Resource) Extent(sub uint32) (w, h, d uint32) {
	mip := sub % r.shape.MipLevels
	return u32.MipSize(r.shape.Width, mip), u32.MipSize(r.shape.Height, mip), u32.MipSize(r.shape.Depth, mip)
}

func (r *Resource) rowPitch(sub uint32) uint32 {
	w, _, _ := r.Extent(sub)
	return w * r.bpp
}

func (r *Resource) planeSize(sub uint32) uint32 {
	w, h, d := r.Extent(sub)
	return w * h * d * r.bpp
}

func (r *Resource) check(sub uint32) {
	if sub >= uint32(len(r.subs)) {
		panic(fmt.Errorf("Subresource %d out of range for %v with %d subresources", sub, r.shape.Dimension, len(r.subs)))
	}
}

// Data returns the tightly packed elements of sample of the subresource sub.
// The returned slice aliases the resource memory.
func (r *Resource) Data(sub, sample uint32) []byte {
	r.check(sub)
	if sample >= r.shape.SampleDesc.Count {
		panic(fmt.Errorf("Sample %d out of range for %d samples", sample, r.shape.SampleDesc.Count))
	}
	size := r.planeSize(sub)
	return r.subs[sub][sample*size : (sample+1)*size]
}

// Mapped returns the number of currently mapped subresources.
func (r *Resource) Mapped() int { return len(r.mapped) }

func (r *Resource) mapSubresource(sub uint32, t d3d11.MapType, align uint32) d3d11.MappedSubresource {
	w, h, d := r.Extent(sub)
	tight := w * r.bpp
	pitch := tight
	if align > 1 {
		pitch = u32.DivUp(tight, align) * align
	}
	out := d3d11.MappedSubresource{
		Data:       make([]byte, pitch*h*d),
		RowPitch:   pitch,
		DepthPitch: pitch * h,
	}
	src := r.Data(sub, 0)
	for row := uint32(0); row < h*d; row++ {
		copy(out.Data[row*pitch:row*pitch+tight], src[row*tight:])
	}
	r.mapped[sub] = &mapping{t: t, mapped: out}
	return out
}

func (r *Resource) unmapSubresource(sub uint32) {
	m, ok := r.mapped[sub]
	if !ok {
		panic(fmt.Errorf("Unmap of subresource %d, which is not mapped", sub))
	}
	delete(r.mapped, sub)
	if m.t == d3d11.MapRead {
		return
	}
	w, h, d := r.Extent(sub)
	tight := w * r.bpp
	dst := r.Data(sub, 0)
	for row := uint32(0); row < h*d; row++ {
		copy(dst[row*tight:(row+1)*tight], m.mapped.Data[row*m.mapped.RowPitch:])
	}
}
