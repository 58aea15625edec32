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

// Package scene describes a set of D3D11 resources, views and pipeline
// bindings, and builds them on a device.
//
// A scene is usually loaded from YAML:
//
//	textures:
//	  - name: albedo
//	    dimension: texture2d
//	    width: 4
//	    height: 4
//	    format: R8G8B8A8_UNORM
//	    bind: [shader_resource]
//	    fill: [1, 0, 0, 1]
//	views:
//	  - name: albedo
//	    texture: albedo
//	    kind: srv
//	shader_resources:
//	  - {stage: ps, slot: 0, view: albedo}
package scene

import (
	"io"

	"github.com/dromanov/apitrace/core/fault"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	// ErrUnknownName is returned when a scene refers to a texture or view
	// that it does not declare.
	ErrUnknownName = fault.Const("Unknown name")
	// ErrInvalid is returned for a scene entry that cannot be built.
	ErrInvalid = fault.Const("Invalid scene")
)

// Texture dimensions.
const (
	DimensionBuffer    = "buffer"
	DimensionTexture1D = "texture1d"
	DimensionTexture2D = "texture2d"
	DimensionTexture3D = "texture3d"
	DimensionCube      = "cube"
)

// View kinds.
const (
	KindSRV = "srv"
	KindRTV = "rtv"
	KindDSV = "dsv"
)

// Scene is a description of device state.
type Scene struct {
	Textures        []Texture `yaml:"textures" mapstructure:"textures"`
	Views           []View    `yaml:"views" mapstructure:"views"`
	ShaderResources []Binding `yaml:"shader_resources" mapstructure:"shader_resources"`
	// RenderTargets names the view bound to each render target slot.
	// Empty names leave the slot unbound.
	RenderTargets []string `yaml:"render_targets" mapstructure:"render_targets"`
	DepthStencil  string   `yaml:"depth_stencil" mapstructure:"depth_stencil"`
}

// Texture describes a resource and its initial content.
type Texture struct {
	Name      string `yaml:"name" mapstructure:"name"`
	Dimension string `yaml:"dimension" mapstructure:"dimension"`
	Width     uint32 `yaml:"width" mapstructure:"width"`
	Height    uint32 `yaml:"height" mapstructure:"height"`
	Depth     uint32 `yaml:"depth" mapstructure:"depth"`
	// Mips of 0 allocates the full mip chain.
	Mips uint32 `yaml:"mips" mapstructure:"mips"`
	// Array is the number of array slices, or of cubes for cube textures.
	Array   uint32   `yaml:"array" mapstructure:"array"`
	Samples uint32   `yaml:"samples" mapstructure:"samples"`
	Format  string   `yaml:"format" mapstructure:"format"`
	Bind    []string `yaml:"bind" mapstructure:"bind"`
	// Fill holds the channel values written to every texel.
	Fill []float64 `yaml:"fill" mapstructure:"fill"`
	// LevelFills overrides Fill per mip level.
	LevelFills [][]float64 `yaml:"level_fills" mapstructure:"level_fills"`
}

// View describes a view of a texture.
type View struct {
	Name    string `yaml:"name" mapstructure:"name"`
	Texture string `yaml:"texture" mapstructure:"texture"`
	Kind    string `yaml:"kind" mapstructure:"kind"`
	// Format defaults to the texture format.
	Format string `yaml:"format" mapstructure:"format"`
	// Mip is the most detailed mip of shader resource views, and the
	// target mip of render target and depth-stencil views.
	Mip uint32 `yaml:"mip" mapstructure:"mip"`
	// Mips of 0 views every mip from Mip on.
	Mips       uint32 `yaml:"mips" mapstructure:"mips"`
	FirstSlice uint32 `yaml:"first_slice" mapstructure:"first_slice"`
	// Slices of 0 views every slice from FirstSlice on.
	Slices uint32 `yaml:"slices" mapstructure:"slices"`
}

// Binding binds a shader resource view to a stage slot.
type Binding struct {
	Stage string `yaml:"stage" mapstructure:"stage"`
	Slot  uint32 `yaml:"slot" mapstructure:"slot"`
	View  string `yaml:"view" mapstructure:"view"`
}

// Load decodes a YAML scene from r.
func Load(r io.Reader) (*Scene, error) {
	s := &Scene{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "Decoding scene")
	}
	return s, nil
}

func (s *Scene) texture(name string) (*Texture, error) {
	for i := range s.Textures {
		if s.Textures[i].Name == name {
			return &s.Textures[i], nil
		}
	}
	return nil, errors.Wrapf(ErrUnknownName, "Texture %q", name)
}
