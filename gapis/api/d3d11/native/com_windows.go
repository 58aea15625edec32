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
	"syscall"
	"unsafe"

	ole "github.com/go-ole/go-ole"
	"github.com/pkg/errors"
)

// Interface identifiers of the resource interfaces that carry GetDesc.
var (
	iidBuffer    = ole.NewGUID("{48570B85-D1EE-4FCD-A250-EB350722B037}")
	iidTexture1D = ole.NewGUID("{F8FB5C27-C6B3-4F75-A4C8-439AF2EF564C}")
	iidTexture2D = ole.NewGUID("{6F15AAF2-D208-4E89-9AB4-489535D34F9C}")
	iidTexture3D = ole.NewGUID("{037E866E-F56D-4357-A8AF-9DABBE6E250E}")
)

// Vtable indices of the methods called. IUnknown takes 0 to 2 and
// ID3D11DeviceChild 3 to 6.
const (
	deviceCreateBuffer             = 3
	deviceCreateTexture1D          = 4
	deviceCreateTexture2D          = 5
	deviceCreateTexture3D          = 6
	deviceCreateShaderResourceView = 7
	deviceCreateRenderTargetView   = 9
	deviceCreateDepthStencilView   = 10

	childGetDevice = 3

	resourceGetType = 7
	resourceGetDesc = 10

	viewGetResource = 7
	viewGetDesc     = 8

	contextPSSetShaderResources   = 8
	contextMap                    = 14
	contextUnmap                  = 15
	contextVSSetShaderResources   = 25
	contextGSSetShaderResources   = 31
	contextOMSetRenderTargets     = 33
	contextCopySubresourceRegion  = 46
	contextUpdateSubresource      = 48
	contextResolveSubresource     = 57
	contextHSSetShaderResources   = 59
	contextDSSetShaderResources   = 63
	contextCSSetShaderResources   = 67
	contextPSGetShaderResources   = 73
	contextVSGetShaderResources   = 84
	contextGSGetShaderResources   = 87
	contextOMGetRenderTargets     = 89
	contextHSGetShaderResources   = 97
	contextDSGetShaderResources   = 101
	contextCSGetShaderResources   = 105
)

// call invokes the method at index method of the vtable of the COM object
// obj and returns its raw result.
func call(obj uintptr, method int, args ...uintptr) uintptr {
	vtbl := *(*uintptr)(unsafe.Pointer(obj))
	fn := *(*uintptr)(unsafe.Pointer(vtbl + uintptr(method)*unsafe.Sizeof(uintptr(0))))
	ret, _, _ := syscall.SyscallN(fn, append([]uintptr{obj}, args...)...)
	return ret
}

// check returns an error for a failed HRESULT.
func check(hr uintptr, method string) error {
	if int32(hr) < 0 {
		return errors.Wrap(ole.NewError(hr), method)
	}
	return nil
}

// object is a reference to a COM object.
type object struct {
	ptr uintptr
}

func (o object) unknown() *ole.IUnknown {
	return (*ole.IUnknown)(unsafe.Pointer(o.ptr))
}

func (o object) AddRef() uint32 { return uint32(o.unknown().AddRef()) }

func (o object) Release() uint32 { return uint32(o.unknown().Release()) }

// query returns the interface iid of o, holding a new reference.
func (o object) query(iid *ole.GUID) (uintptr, error) {
	disp, err := o.unknown().QueryInterface(iid)
	if err != nil {
		return 0, errors.Wrapf(err, "QueryInterface %v", iid)
	}
	return uintptr(unsafe.Pointer(disp)), nil
}
