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

// Package dxgi describes DXGI pixel formats and converts mapped texture data
// in those formats to host images.
package dxgi

import (
	"fmt"
	"strings"

	"github.com/dromanov/apitrace/core/fault"
	"github.com/dromanov/apitrace/core/image"
	"github.com/dromanov/apitrace/core/stream"
	"github.com/dromanov/apitrace/core/stream/fmts"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
)

const (
	// ErrUnsupportedFormat is the cause of conversion failures for formats
	// without a host image layout.
	ErrUnsupportedFormat = fault.Const("Unsupported DXGI format")
	// ErrTypelessFormat is the cause of conversion failures for typeless
	// formats, which need a typed view format to be interpreted.
	ErrTypelessFormat = fault.Const("Typeless DXGI format")
)

const namePrefix = "DXGI_FORMAT_"

func (f Format) String() string {
	if n, ok := formatNames[f]; ok {
		return n
	}
	return fmt.Sprintf("DXGI_FORMAT<%d>", uint32(f))
}

// ParseFormat returns the format with the given name. The DXGI_FORMAT_ prefix
// is optional and case is ignored.
func ParseFormat(name string) (Format, error) {
	want := strings.ToUpper(name)
	if !strings.HasPrefix(want, namePrefix) {
		want = namePrefix + want
	}
	for f, n := range formatNames {
		if n == want {
			return f, nil
		}
	}
	return Format_UNKNOWN, errors.Wrapf(ErrUnsupportedFormat, "Unknown format name '%s'", name)
}

// IsTypeless returns true if f only describes the size of its components.
func (f Format) IsTypeless() bool {
	if f == Format_R24_UNORM_X8_TYPELESS || f == Format_X24_TYPELESS_G8_UINT ||
		f == Format_R32_FLOAT_X8X24_TYPELESS || f == Format_X32_TYPELESS_G8X24_UINT {
		// Typed views of the depth or stencil plane of a depth-stencil format.
		return false
	}
	return strings.HasSuffix(f.String(), "_TYPELESS")
}

// IsDepthStencil returns true if f is a depth or depth-stencil format.
func (f Format) IsDepthStencil() bool {
	switch f {
	case Format_D32_FLOAT_S8X24_UINT, Format_D24_UNORM_S8_UINT, Format_D32_FLOAT, Format_D16_UNORM:
		return true
	}
	return false
}

var layouts = map[Format]*stream.Format{
	Format_R32G32B32A32_FLOAT:  fmts.RGBA_F32,
	Format_R32G32B32A32_UINT:   fmts.RGBA_U32,
	Format_R32G32B32A32_SINT:   fmts.RGBA_S32,
	Format_R32G32B32_FLOAT:     fmts.RGB_F32,
	Format_R32G32B32_UINT:      fmts.RGB_U32,
	Format_R32G32B32_SINT:      fmts.RGB_S32,
	Format_R16G16B16A16_FLOAT:  fmts.RGBA_F16,
	Format_R16G16B16A16_UNORM:  fmts.RGBA_U16_NORM,
	Format_R16G16B16A16_UINT:   fmts.RGBA_U16,
	Format_R16G16B16A16_SNORM:  fmts.RGBA_S16_NORM,
	Format_R16G16B16A16_SINT:   fmts.RGBA_S16,
	Format_R32G32_FLOAT:        fmts.RG_F32,
	Format_R32G32_UINT:         fmts.RG_U32,
	Format_R32G32_SINT:         fmts.RG_S32,
	Format_R10G10B10A2_UNORM:   fmts.RGBA_U10U10U10U2_NORM,
	Format_R10G10B10A2_UINT:    fmts.RGBA_U10U10U10U2,
	Format_R11G11B10_FLOAT:     fmts.RGB_F11F11F10,
	Format_R8G8B8A8_UNORM:      fmts.RGBA_U8_NORM,
	Format_R8G8B8A8_UNORM_SRGB: fmts.SRGBA_U8_NORM,
	Format_R8G8B8A8_UINT:       fmts.RGBA_U8,
	Format_R8G8B8A8_SNORM:      fmts.RGBA_S8_NORM,
	Format_R8G8B8A8_SINT:       fmts.RGBA_S8,
	Format_R16G16_FLOAT:        fmts.RG_F16,
	Format_R16G16_UNORM:        fmts.RG_U16_NORM,
	Format_R16G16_UINT:         fmts.RG_U16,
	Format_R16G16_SNORM:        fmts.RG_S16_NORM,
	Format_R16G16_SINT:         fmts.RG_S16,
	Format_R32_FLOAT:           fmts.R_F32,
	Format_R32_UINT:            fmts.R_U32,
	Format_R32_SINT:            fmts.R_S32,
	Format_R8G8_UNORM:          fmts.RG_U8_NORM,
	Format_R8G8_UINT:           fmts.RG_U8,
	Format_R8G8_SNORM:          fmts.RG_S8_NORM,
	Format_R8G8_SINT:           fmts.RG_S8,
	Format_R16_FLOAT:           fmts.R_F16,
	Format_R16_UNORM:           fmts.R_U16_NORM,
	Format_R16_UINT:            fmts.R_U16,
	Format_R16_SNORM:           fmts.R_S16_NORM,
	Format_R16_SINT:            fmts.R_S16,
	Format_R8_UNORM:            fmts.R_U8_NORM,
	Format_R8_UINT:             fmts.R_U8,
	Format_R8_SNORM:            fmts.R_S8_NORM,
	Format_R8_SINT:             fmts.R_S8,
	Format_A8_UNORM:            fmts.A_U8_NORM,
	Format_B5G6R5_UNORM:        fmts.BGR_U5U6U5_NORM,
	Format_B5G5R5A1_UNORM:      fmts.BGRA_U5U5U5U1_NORM,
	Format_B4G4R4A4_UNORM:      fmts.BGRA_U4_NORM,
	Format_B8G8R8A8_UNORM:      fmts.BGRA_U8_NORM,
	Format_B8G8R8A8_UNORM_SRGB: fmts.SBGRA_U8_NORM,
	Format_B8G8R8X8_UNORM:      fmts.BGRX_U8_NORM,
	Format_B8G8R8X8_UNORM_SRGB: fmts.SBGRX_U8_NORM,

	Format_D32_FLOAT_S8X24_UINT:     fmts.DSX_F32U8U24,
	Format_R32_FLOAT_X8X24_TYPELESS: fmts.RXX_F32U8U24,
	Format_X32_TYPELESS_G8X24_UINT:  fmts.XSX_U32U8U24,
	Format_D32_FLOAT:                fmts.D_F32,
	Format_D24_UNORM_S8_UINT:        fmts.DS_NU24U8,
	Format_R24_UNORM_X8_TYPELESS:    fmts.RX_NU24U8,
	Format_X24_TYPELESS_G8_UINT:     fmts.XS_U24U8,
	Format_D16_UNORM:                fmts.D_U16_NORM,
}

var imageFormats, _ = lru.New[Format, *image.Format](32)

// ImageFormat returns the host image format of f. The returned format is
// shared and must not be modified.
func ImageFormat(f Format) (*image.Format, error) {
	if out, ok := imageFormats.Get(f); ok {
		return out, nil
	}
	if f.IsTypeless() {
		return nil, errors.Wrap(ErrTypelessFormat, f.String())
	}
	layout, ok := layouts[f]
	if !ok {
		return nil, errors.Wrap(ErrUnsupportedFormat, f.String())
	}
	out := image.NewUncompressed(f.String(), layout)
	imageFormats.Add(f, out)
	return out, nil
}

// typelessSizes holds the element sizes of the typeless formats, which have
// no host image layout of their own.
var typelessSizes = map[Format]int{
	Format_R32G32B32A32_TYPELESS: 16,
	Format_R32G32B32_TYPELESS:    12,
	Format_R16G16B16A16_TYPELESS: 8,
	Format_R32G32_TYPELESS:       8,
	Format_R32G8X24_TYPELESS:     8,
	Format_R10G10B10A2_TYPELESS:  4,
	Format_R8G8B8A8_TYPELESS:     4,
	Format_R16G16_TYPELESS:       4,
	Format_R32_TYPELESS:          4,
	Format_R24G8_TYPELESS:        4,
	Format_R8G8_TYPELESS:         2,
	Format_R16_TYPELESS:          2,
	Format_R8_TYPELESS:           1,
	Format_B8G8R8A8_TYPELESS:     4,
	Format_B8G8R8X8_TYPELESS:     4,
}

// BytesPerPixel returns the size of a single element of f, or 0 if f is a
// block compressed, packed or video format.
func (f Format) BytesPerPixel() int {
	if layout, ok := layouts[f]; ok {
		return layout.Stride()
	}
	return typelessSizes[f]
}

// ConvertImage copies the w by h pixels in data, whose rows are rowPitch bytes
// apart, into a new tightly packed image of format f.
func ConvertImage(f Format, data []byte, rowPitch, w, h uint32) (*image.Image, error) {
	format, err := ImageFormat(f)
	if err != nil {
		return nil, err
	}
	src := &image.Image{Width: w, Height: h, RowPitch: rowPitch, Format: format, Data: data}
	if err := src.Check(); err != nil {
		return nil, errors.Wrapf(err, "Converting %v", f)
	}
	out := image.New(format, w, h)
	for y := uint32(0); y < h; y++ {
		copy(out.Row(y), src.Row(y))
	}
	return out, nil
}
