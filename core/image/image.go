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

// Package image holds host-side copies of texture subresources and converts
// them to Go images for encoding.
package image

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/dromanov/apitrace/core/fault"
	"github.com/dromanov/apitrace/core/stream"
	"github.com/pkg/errors"
)

// ErrDataSizeMismatch is returned when the pixel data of an image is smaller
// than its dimensions and row pitch require.
const ErrDataSizeMismatch = fault.Const("Image data size does not match its dimensions")

// Image is a two dimensional, row-major block of pixels.
// Rows are RowPitch bytes apart, each starting with Width tightly packed
// elements of Format.
type Image struct {
	Width    uint32
	Height   uint32
	RowPitch uint32
	Format   *Format
	Data     []byte
}

// New returns a zero-filled, tightly packed image.
func New(f *Format, w, h uint32) *Image {
	pitch := uint32(f.Layout.Stride()) * w
	return &Image{Width: w, Height: h, RowPitch: pitch, Format: f, Data: make([]byte, pitch*h)}
}

func (i *Image) String() string {
	return fmt.Sprintf("%dx%d %v", i.Width, i.Height, i.Format)
}

// Check returns an error if Data is too small for the image.
func (i *Image) Check() error {
	if i.Height == 0 || i.Width == 0 {
		return nil
	}
	row := uint64(i.Format.Layout.Stride()) * uint64(i.Width)
	if uint64(i.RowPitch) < row {
		return errors.Wrapf(ErrDataSizeMismatch, "row pitch %d < %d", i.RowPitch, row)
	}
	need := uint64(i.RowPitch)*uint64(i.Height-1) + row
	if uint64(len(i.Data)) < need {
		return errors.Wrapf(ErrDataSizeMismatch, "got %d bytes, need %d", len(i.Data), need)
	}
	return nil
}

// Row returns the tightly packed elements of row y.
func (i *Image) Row(y uint32) []byte {
	start := y * i.RowPitch
	return i.Data[start : start+uint32(i.Format.Layout.Stride())*i.Width]
}

// Pixel returns the decoded component values of the pixel at (x, y).
func (i *Image) Pixel(x, y uint32) []float64 {
	return i.Format.Layout.Decode(i.Row(y), int(x))
}

// SetPixel encodes values, one per component, into the pixel at (x, y).
func (i *Image) SetPixel(x, y uint32, values []float64) {
	i.Format.Layout.Encode(i.Row(y), int(x), values)
}

// Image converts the image to a Go image.
// Depth and stencil only formats become 16 bit gray images, everything else
// is expanded to non-premultiplied RGBA.
func (i *Image) Image() (image.Image, error) {
	if err := i.Check(); err != nil {
		return nil, err
	}
	rect := image.Rect(0, 0, int(i.Width), int(i.Height))
	m := newMapping(i.Format.Layout)
	if i.Format.IsDepth() {
		out := image.NewGray16(rect)
		for y := uint32(0); y < i.Height; y++ {
			for x := uint32(0); x < i.Width; x++ {
				v := m.gray(i.Pixel(x, y))
				out.SetGray16(int(x), int(y), color.Gray16{Y: uint16(math.Round(v * 0xffff))})
			}
		}
		return out, nil
	}
	out := image.NewNRGBA(rect)
	for y := uint32(0); y < i.Height; y++ {
		for x := uint32(0); x < i.Width; x++ {
			r, g, b, a := m.rgba(i.Pixel(x, y))
			out.SetNRGBA(int(x), int(y), color.NRGBA{R: to8(r), G: to8(g), B: to8(b), A: to8(a)})
		}
	}
	return out, nil
}

func to8(v float64) uint8 {
	return uint8(math.Round(clamp(v) * 0xff))
}

func clamp(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(math.Min(v, 1), 0)
}

// mapping holds the component indices that feed each output channel, or -1.
type mapping struct {
	r, g, b, a, l, d, s int
	scale               []float64
}

func newMapping(f *stream.Format) mapping {
	m := mapping{r: -1, g: -1, b: -1, a: -1, l: -1, d: -1, s: -1}
	m.scale = make([]float64, len(f.Components))
	for i, c := range f.Components {
		m.scale[i] = 1
		if c.Sampling == nil || !c.Sampling.Normalized {
			if !c.DataType.Float {
				// Unnormalized integers are displayed over their full range.
				m.scale[i] = 1 / float64(uint64(1)<<c.DataType.IntegerBits-1)
			}
		}
		idx := map[stream.Channel]*int{
			stream.Channel_Red:       &m.r,
			stream.Channel_Green:     &m.g,
			stream.Channel_Blue:      &m.b,
			stream.Channel_Alpha:     &m.a,
			stream.Channel_Luminance: &m.l,
			stream.Channel_Depth:     &m.d,
			stream.Channel_Stencil:   &m.s,
		}[c.Channel]
		if idx != nil && *idx < 0 {
			*idx = i
		}
	}
	return m
}

func (m mapping) get(values []float64, idx int, def float64) float64 {
	if idx < 0 {
		return def
	}
	return values[idx] * m.scale[idx]
}

func (m mapping) rgba(values []float64) (r, g, b, a float64) {
	a = m.get(values, m.a, 1)
	switch {
	case m.r >= 0:
		return m.get(values, m.r, 0), m.get(values, m.g, 0), m.get(values, m.b, 0), a
	case m.l >= 0:
		l := m.get(values, m.l, 0)
		return l, l, l, a
	case m.a >= 0:
		// Alpha only formats are shown as white with alpha.
		return 1, 1, 1, a
	}
	return 0, 0, 0, a
}

func (m mapping) gray(values []float64) float64 {
	if m.d >= 0 {
		return clamp(m.get(values, m.d, 0))
	}
	return clamp(m.get(values, m.s, 0))
}
