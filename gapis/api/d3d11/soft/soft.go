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

// Package soft is an in-memory implementation of the d3d11 device
// interfaces.
//
// It supports the subset of Direct3D 11 needed to build pipeline state and
// read it back: resource and view creation, multisample resolves, subresource
// copies and updates, mapping of staging resources, and shader resource and
// output merger bindings. Every call made to the device or its context is
// recorded, reference counts are tracked for every object, and resource
// creation and mapping failures can be injected.
package soft

import (
	"fmt"

	"github.com/dromanov/apitrace/core/fault"
)

const (
	// ErrInvalidArg is returned for descriptors the device rejects.
	ErrInvalidArg = fault.Const("Invalid argument")
	// ErrMapFailed is the cause of failed Maps.
	ErrMapFailed = fault.Const("Map failed")
)

// Kind identifies the type of a device object.
type Kind string

const (
	KindDevice             = Kind("Device")
	KindContext            = Kind("DeviceContext")
	KindResource           = Kind("Resource")
	KindShaderResourceView = Kind("ShaderResourceView")
	KindRenderTargetView   = Kind("RenderTargetView")
	KindDepthStencilView   = Kind("DepthStencilView")
)

// object is the reference count of a device object.
type object struct {
	kind Kind
	refs uint32
	free func()
}

func (o *object) init(kind Kind, free func()) {
	o.kind, o.refs, o.free = kind, 1, free
}

func (o *object) AddRef() uint32 {
	if o.refs == 0 {
		panic(fmt.Errorf("AddRef of released %v", o.kind))
	}
	o.refs++
	return o.refs
}

func (o *object) Release() uint32 {
	if o.refs == 0 {
		panic(fmt.Errorf("Release of released %v", o.kind))
	}
	o.refs--
	if o.refs == 0 && o.free != nil {
		o.free()
	}
	return o.refs
}

// Refs returns the number of outstanding references to the object.
func (o *object) Refs() uint32 { return o.refs }
