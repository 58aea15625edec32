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

//go:build windows

package native

import (
	"fmt"
	"unsafe"

	"github.com/dromanov/apitrace/gapis/api/d3d11"
	ole "github.com/go-ole/go-ole"
)

// Resource is a d3d11.Resource wrapping an ID3D11Resource.
// Resource is a d3d11.Resource wrapping an ID3D11Resource.
type Resource struct {
	object
}

var _ d3d11.Resource = &Resource{}

func newResource(ptr uintptr) *Resource { return &Resource{object{ptr}} }

// resourcePtr returns the COM pointer of r, which must be a Resource.
func resourcePtr(r d3d11.Resource) uintptr {
	if r == nil {
		return 0
	}
	res, ok := r.(*Resource)
	if !ok {
		panic(fmt.Errorf("%T is not a native resource", r))
	}
	return res.ptr
}

func (r *Resource) Type() d3d11.ResourceDimension {
	var dim uint32
	call(r.ptr, resourceGetType, uintptr(unsafe.Pointer(&dim)))
	return d3d11.ResourceDimension(dim)
}

// Desc returns the creation descriptor of the resource, read through the
// interface of its dimension. It panics if the resource has an unknown
// dimension.
func (r *Resource) Desc() d3d11.NativeDesc {
	dim := r.Type()
	switch dim {
	case d3d11.ResourceDimensionBuffer:
		var c bufferDesc
		r.getDesc(iidBuffer, unsafe.Pointer(&c))
		return c.desc()
	case d3d11.ResourceDimensionTexture1D:
		var c texture1DDesc
		r.getDesc(iidTexture1D, unsafe.Pointer(&c))
		return c.desc()
	case d3d11.ResourceDimensionTexture2D:
		var c texture2DDesc
		r.getDesc(iidTexture2D, unsafe.Pointer(&c))
		return c.desc()
	case d3d11.ResourceDimensionTexture3D:
		var c texture3DDesc
		r.getDesc(iidTexture3D, unsafe.Pointer(&c))
		return c.desc()
	}
	panic(fmt.Errorf("Resource of unknown dimension %v", dim))
}

func (r *Resource) getDesc(iid *ole.GUID, out unsafe.Pointer) {
	typed, err := r.query(iid)
	if err != nil {
		panic(err)
	}
	defer object{typed}.Release()
	call(typed, resourceGetDesc, uintptr(out))
}
