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
	"unsafe"

	"github.com/dromanov/apitrace/core/fault"
	"github.com/dromanov/apitrace/gapis/api/d3d11"
	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

// ErrCreateDevice is the cause of failures to create a device.
const ErrCreateDevice = fault.Const("Failed to create a Direct3D 11 device")

var (
	d3d11DLL              = windows.NewLazySystemDLL("d3d11.dll")
	procD3D11CreateDevice = d3d11DLL.NewProc("D3D11CreateDevice")
)

// DriverType selects the implementation behind a device.
type DriverType uint32

const (
	DriverHardware  DriverType = 1
	DriverReference DriverType = 2
	DriverWARP      DriverType = 5
)

const (
	createDeviceDebug = 0x2
	featureLevel11_0  = 0xb000
	sdkVersion        = 7
)

// Options control the creation of a device.
type Options struct {
	Driver DriverType
	// Debug enables the Direct3D debug layer.
	Debug bool
}

// Device is a d3d11.Device wrapping an ID3D11Device.
type Device struct {
	object
}

var _ d3d11.Device = &Device{}

// New creates a device and returns it with its immediate context.
func New(opts Options) (*Device, *Context, error) {
	if opts.Driver == 0 {
		opts.Driver = DriverHardware
	}
	flags := uintptr(0)
	if opts.Debug {
		flags |= createDeviceDebug
	}
	if err := procD3D11CreateDevice.Find(); err != nil {
		return nil, nil, errors.Wrap(ErrCreateDevice, err.Error())
	}
	levels := []uint32{featureLevel11_0}
	var dev, ctx uintptr
	var level uint32
	hr, _, _ := procD3D11CreateDevice.Call(
		0,
		uintptr(opts.Driver),
		0,
		flags,
		uintptr(unsafe.Pointer(&levels[0])),
		uintptr(len(levels)),
		sdkVersion,
		uintptr(unsafe.Pointer(&dev)),
		uintptr(unsafe.Pointer(&level)),
		uintptr(unsafe.Pointer(&ctx)),
	)
	if err := check(hr, "D3D11CreateDevice"); err != nil {
		return nil, nil, errors.Wrap(ErrCreateDevice, err.Error())
	}
	return &Device{object{dev}}, &Context{object{ctx}}, nil
}

func (d *Device) create(method int, desc unsafe.Pointer, name string) (d3d11.Resource, error) {
	var out uintptr
	hr := call(d.ptr, method, uintptr(desc), 0, uintptr(unsafe.Pointer(&out)))
	if err := check(hr, name); err != nil {
		return nil, err
	}
	return newResource(out), nil
}

func (d *Device) CreateBuffer(desc d3d11.BufferDesc) (d3d11.Resource, error) {
	c := toBufferDesc(desc)
	return d.create(deviceCreateBuffer, unsafe.Pointer(&c), "CreateBuffer")
}

func (d *Device) CreateTexture1D(desc d3d11.Texture1DDesc) (d3d11.Resource, error) {
	c := toTexture1DDesc(desc)
	return d.create(deviceCreateTexture1D, unsafe.Pointer(&c), "CreateTexture1D")
}

func (d *Device) CreateTexture2D(desc d3d11.Texture2DDesc) (d3d11.Resource, error) {
	c := toTexture2DDesc(desc)
	return d.create(deviceCreateTexture2D, unsafe.Pointer(&c), "CreateTexture2D")
}

func (d *Device) CreateTexture3D(desc d3d11.Texture3DDesc) (d3d11.Resource, error) {
	c := toTexture3DDesc(desc)
	return d.create(deviceCreateTexture3D, unsafe.Pointer(&c), "CreateTexture3D")
}

func (d *Device) CreateShaderResourceView(r d3d11.Resource, desc d3d11.ShaderResourceViewDesc) (d3d11.ShaderResourceView, error) {
	c := toSRVDesc(desc)
	var out uintptr
	hr := call(d.ptr, deviceCreateShaderResourceView, resourcePtr(r), uintptr(unsafe.Pointer(&c)), uintptr(unsafe.Pointer(&out)))
	if err := check(hr, "CreateShaderResourceView"); err != nil {
		return nil, err
	}
	return &ShaderResourceView{view{object{out}}}, nil
}

func (d *Device) CreateRenderTargetView(r d3d11.Resource, desc d3d11.RenderTargetViewDesc) (d3d11.RenderTargetView, error) {
	c := toRTVDesc(desc)
	var out uintptr
	hr := call(d.ptr, deviceCreateRenderTargetView, resourcePtr(r), uintptr(unsafe.Pointer(&c)), uintptr(unsafe.Pointer(&out)))
	if err := check(hr, "CreateRenderTargetView"); err != nil {
		return nil, err
	}
	return &RenderTargetView{view{object{out}}}, nil
}

func (d *Device) CreateDepthStencilView(r d3d11.Resource, desc d3d11.DepthStencilViewDesc) (d3d11.DepthStencilView, error) {
	c := toDSVDesc(desc)
	var out uintptr
	hr := call(d.ptr, deviceCreateDepthStencilView, resourcePtr(r), uintptr(unsafe.Pointer(&c)), uintptr(unsafe.Pointer(&out)))
	if err := check(hr, "CreateDepthStencilView"); err != nil {
		return nil, err
	}
	return &DepthStencilView{view{object{out}}}, nil
}
