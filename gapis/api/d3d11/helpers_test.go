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
	"github.com/dromanov/apitrace/core/image"
	"github.com/dromanov/apitrace/gapis/api/d3d11"
	"github.com/dromanov/apitrace/gapis/api/d3d11/soft"
	"github.com/dromanov/apitrace/gapis/api/dxgi"
)

func panics(f func()) (panicked bool) {
	defer func() { panicked = recover() != nil }()
	f()
	return false
}

func texture2D(w, h, mips, array, samples uint32, format dxgi.Format) d3d11.Texture2DDesc {
	return d3d11.Texture2DDesc{
		Width:      w,
		Height:     h,
		MipLevels:  mips,
		ArraySize:  array,
		Format:     format,
		SampleDesc: d3d11.SampleDesc{Count: samples},
		BindFlags:  d3d11.BindShaderResource | d3d11.BindRenderTarget,
	}
}

// fill writes a single byte value to every byte of the subresource sub of r,
// for every sample.
func fill(r d3d11.Resource, sub uint32, v byte) {
	res := r.(*soft.Resource)
	for s := uint32(0); s < res.Shape().SampleDesc.Count; s++ {
		data := res.Data(sub, s)
		for i := range data {
			data[i] = v
		}
	}
}

// recorder is a JSONWriter that records the members and images written.
type recorder struct {
	depth   int
	path    []string
	members []string
	images  map[string]*image.Image
	formats map[string]string
}

func newRecorder() *recorder {
	return &recorder{images: map[string]*image.Image{}, formats: map[string]string{}}
}

func (r *recorder) BeginObject() { r.depth++ }
func (r *recorder) EndObject()   { r.depth-- }

func (r *recorder) BeginMember(name string) {
	r.path = append(r.path, name)
	r.members = append(r.members, name)
}

func (r *recorder) EndMember() { r.path = r.path[:len(r.path)-1] }

func (r *recorder) WriteImage(img *image.Image, format string) {
	label := r.path[len(r.path)-1]
	r.images[label] = img
	r.formats[label] = format
}

var _ d3d11.JSONWriter = &recorder{}
