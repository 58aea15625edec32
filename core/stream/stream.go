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

// Package stream describes the memory layout of packed texel elements and
// decodes and encodes them component by component.
package stream

import (
	"fmt"
	"strings"
)

// Channel is the semantic meaning of a component.
type Channel int

const (
	Channel_Undefined Channel = iota
	Channel_Red
	Channel_Green
	Channel_Blue
	Channel_Alpha
	Channel_Luminance
	Channel_Depth
	Channel_Stencil
)

var channelNames = map[Channel]string{
	Channel_Undefined: "X",
	Channel_Red:       "R",
	Channel_Green:     "G",
	Channel_Blue:      "B",
	Channel_Alpha:     "A",
	Channel_Luminance: "L",
	Channel_Depth:     "D",
	Channel_Stencil:   "S",
}

func (c Channel) String() string {
	if n, ok := channelNames[c]; ok {
		return n
	}
	return "?"
}

// IsColor returns true if the channel holds color information.
func (c Channel) IsColor() bool {
	switch c {
	case Channel_Red, Channel_Green, Channel_Blue, Channel_Alpha, Channel_Luminance:
		return true
	}
	return false
}

// Channels is a list of channels.
type Channels []Channel

// Contains returns true if l holds c.
func (l Channels) Contains(c Channel) bool {
	for _, t := range l {
		if t == c {
			return true
		}
	}
	return false
}

// Curve is the transfer function applied to a normalized component.
type Curve int

const (
	// Curve_Linear stores values unchanged.
	Curve_Linear Curve = iota
	// Curve_sRGB stores values gamma encoded with the sRGB curve.
	Curve_sRGB
)

// Sampling describes how the stored bits of a component are interpreted.
type Sampling struct {
	// Normalized integers map their full range to [0, 1] or [-1, 1].
	Normalized bool
	Curve      Curve
}

var (
	// Linear is the sampling of plain integer and floating-point components.
	Linear = &Sampling{}
	// LinearNormalized is the sampling of normalized, linear components.
	LinearNormalized = &Sampling{Normalized: true}
	// SRGBNormalized is the sampling of normalized, sRGB encoded components.
	SRGBNormalized = &Sampling{Normalized: true, Curve: Curve_sRGB}
)

func (s Sampling) String() string {
	parts := []string{}
	if s.Normalized {
		parts = append(parts, "NORM")
	}
	if s.Curve == Curve_sRGB {
		parts = append(parts, "sRGB")
	}
	return strings.Join(parts, "_")
}

// Component is a single packed field of an element.
type Component struct {
	DataType *DataType
	Sampling *Sampling
	Channel  Channel
}

func (c Component) String() string {
	s := fmt.Sprintf("%v%v", c.Channel, c.DataType)
	if c.Sampling != nil && *c.Sampling != (Sampling{}) {
		s += "_" + c.Sampling.String()
	}
	return s
}

// Format is the layout of a single element, as a sequence of components
// packed from least significant bit upwards.
type Format struct {
	Components []*Component
}

func (f Format) String() string {
	parts := make([]string, len(f.Components))
	for i, c := range f.Components {
		parts[i] = c.String()
	}
	return strings.Join(parts, ":")
}

// Stride returns the number of bytes between each element.
func (f *Format) Stride() int {
	bits := uint32(0)
	for _, c := range f.Components {
		bits += c.DataType.Bits()
	}
	return int((bits + 7) / 8)
}

// Size returns the size in bytes of count elements.
func (f *Format) Size(count int) int {
	return count * f.Stride()
}

// Channels returns the channels of the components, in order.
func (f *Format) Channels() Channels {
	out := make(Channels, len(f.Components))
	for i, c := range f.Components {
		out[i] = c.Channel
	}
	return out
}

// Component returns the first component with the channel c, or nil.
func (f *Format) Component(c Channel) *Component {
	for _, t := range f.Components {
		if t.Channel == c {
			return t
		}
	}
	return nil
}

// BitOffsets returns the bit-offsets of the components of the format.
func (f *Format) BitOffsets() map[*Component]uint32 {
	out := make(map[*Component]uint32, len(f.Components))
	offset := uint32(0)
	for _, c := range f.Components {
		out[c] = offset
		offset += c.DataType.Bits()
	}
	return out
}
