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

// Package d3d11 extracts host images of Direct3D 11 resources and views bound
// to a device context, and dumps them into JSON state traces.
//
// The device, its context and its resources are consumed through the
// interfaces in device.go. The soft package provides an in-memory
// implementation and the native package wraps a real Windows device.
package d3d11

import (
	"fmt"
	"strings"
)

// ResourceDimension is the kind of a resource.
type ResourceDimension uint32

const (
	ResourceDimensionUnknown   ResourceDimension = 0
	ResourceDimensionBuffer    ResourceDimension = 1
	ResourceDimensionTexture1D ResourceDimension = 2
	ResourceDimensionTexture2D ResourceDimension = 3
	ResourceDimensionTexture3D ResourceDimension = 4
)

func (d ResourceDimension) String() string {
	switch d {
	case ResourceDimensionUnknown:
		return "Unknown"
	case ResourceDimensionBuffer:
		return "Buffer"
	case ResourceDimensionTexture1D:
		return "Texture1D"
	case ResourceDimensionTexture2D:
		return "Texture2D"
	case ResourceDimensionTexture3D:
		return "Texture3D"
	default:
		return fmt.Sprintf("ResourceDimension<%d>", uint32(d))
	}
}

// Usage is the expected read and write pattern of a resource.
type Usage uint32

const (
	UsageDefault   Usage = 0
	UsageImmutable Usage = 1
	UsageDynamic   Usage = 2
	UsageStaging   Usage = 3
)

func (u Usage) String() string {
	switch u {
	case UsageDefault:
		return "Default"
	case UsageImmutable:
		return "Immutable"
	case UsageDynamic:
		return "Dynamic"
	case UsageStaging:
		return "Staging"
	default:
		return fmt.Sprintf("Usage<%d>", uint32(u))
	}
}

// BindFlags identify the pipeline stages a resource can be bound to.
type BindFlags uint32

const (
	BindVertexBuffer    BindFlags = 0x1
	BindIndexBuffer     BindFlags = 0x2
	BindConstantBuffer  BindFlags = 0x4
	BindShaderResource  BindFlags = 0x8
	BindStreamOutput    BindFlags = 0x10
	BindRenderTarget    BindFlags = 0x20
	BindDepthStencil    BindFlags = 0x40
	BindUnorderedAccess BindFlags = 0x80
)

// CPUAccessFlags identify the CPU access allowed to a resource.
type CPUAccessFlags uint32

const (
	CPUAccessWrite CPUAccessFlags = 0x10000
	CPUAccessRead  CPUAccessFlags = 0x20000
)

// MiscFlags are the less common resource options.
type MiscFlags uint32

const (
	MiscGenerateMips MiscFlags = 0x1
	MiscShared       MiscFlags = 0x2
	MiscTextureCube  MiscFlags = 0x4
)

// ResolvedMiscMask is the set of misc flags a resolved copy of a
// multisampled resource keeps from its source.
const ResolvedMiscMask = MiscTextureCube

// MapType is the CPU access requested by a Map.
type MapType uint32

const (
	MapRead      MapType = 1
	MapWrite     MapType = 2
	MapReadWrite MapType = 3
)

const (
	// SamplerSlotCount is the number of shader resource slots walked per
	// stage.
	SamplerSlotCount = 16
	// SimultaneousRenderTargetCount is the number of render target slots.
	SimultaneousRenderTargetCount = 8
)

// SampleDesc is the multisampling of a texture.
type SampleDesc struct {
	Count   uint32
	Quality uint32
}

// Box is a region of a subresource. Right, Bottom and Back are exclusive.
type Box struct {
	Left, Top, Front, Right, Bottom, Back uint32
}

// Stage is a programmable pipeline stage.
type Stage int

const (
	StagePS Stage = iota
	StageVS
	StageGS
	StageHS
	StageDS
	StageCS
)

var stageNames = []string{"PS", "VS", "GS", "HS", "DS", "CS"}

// Stages is the default order in which stages are dumped.
var Stages = []Stage{StagePS, StageVS, StageGS, StageHS, StageDS, StageCS}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return fmt.Sprintf("Stage<%d>", int(s))
	}
	return stageNames[s]
}

// ParseStage returns the stage with the given short name, such as "ps".
func ParseStage(name string) (Stage, error) {
	for i, n := range stageNames {
		if strings.EqualFold(n, name) {
			return Stage(i), nil
		}
	}
	return 0, fmt.Errorf("Unknown shader stage '%s'", name)
}
