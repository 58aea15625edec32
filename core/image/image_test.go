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

package image_test

import (
	"bytes"
	goimage "image"
	"image/color"
	"image/png"
	"testing"

	"github.com/dromanov/apitrace/core/assert"
	"github.com/dromanov/apitrace/core/image"
	"github.com/dromanov/apitrace/core/stream/fmts"
)

func TestCheck(t *testing.T) {
	ctx := assert.To(t)
	img := image.New(image.RGBA_U8_NORM, 4, 2)
	ctx.For("tight").ThatError(img.Check()).Succeeded()
	ctx.For("tight pitch").That(img.RowPitch).Equals(uint32(16))

	img.RowPitch = 8
	ctx.For("short pitch").ThatError(img.Check()).HasCause(image.ErrDataSizeMismatch)

	img = &image.Image{Width: 4, Height: 2, RowPitch: 64, Format: image.RGBA_U8_NORM, Data: make([]byte, 64+16)}
	ctx.For("padded rows").ThatError(img.Check()).Succeeded()
	img.Data = img.Data[:64+15]
	ctx.For("truncated").ThatError(img.Check()).HasCause(image.ErrDataSizeMismatch)
}

func TestPitchedPixels(t *testing.T) {
	ctx := assert.To(t)
	img := &image.Image{Width: 1, Height: 2, RowPitch: 8, Format: image.RGBA_U8_NORM, Data: []byte{
		0x10, 0x20, 0x30, 0x40, 0xde, 0xad, 0xbe, 0xef,
		0x50, 0x60, 0x70, 0x80,
	}}
	ctx.For("row 1").ThatSlice(img.Row(1)).Equals([]byte{0x50, 0x60, 0x70, 0x80})
	got, err := img.Image()
	ctx.For("err").ThatError(err).Succeeded()
	ctx.For("pixel").That(got.(*goimage.NRGBA).NRGBAAt(0, 1)).Equals(color.NRGBA{0x50, 0x60, 0x70, 0x80})
}

func TestColorExpansion(t *testing.T) {
	ctx := assert.To(t)
	for _, test := range []struct {
		name   string
		format *image.Format
		values []float64
		expect color.NRGBA
	}{
		{"bgra", image.NewUncompressed("B8G8R8A8", fmts.BGRA_U8_NORM), []float64{1, 0, 0, 1}, color.NRGBA{0, 0, 0xff, 0xff}},
		{"red only", image.NewUncompressed("R8", fmts.R_U8_NORM), []float64{0.5}, color.NRGBA{0x80, 0, 0, 0xff}},
		{"alpha only", image.NewUncompressed("A8", fmts.A_U8_NORM), []float64{0.25}, color.NRGBA{0xff, 0xff, 0xff, 0x40}},
		{"float clamp", image.RGBA_F32, []float64{2, -1, 0.5, 1}, color.NRGBA{0xff, 0, 0x80, 0xff}},
		{"uint full range", image.NewUncompressed("R8G8B8A8_UINT", fmts.RGBA_U8), []float64{255, 0, 0, 255}, color.NRGBA{0xff, 0, 0, 0xff}},
	} {
		img := image.New(test.format, 1, 1)
		img.SetPixel(0, 0, test.values)
		got, err := img.Image()
		ctx.For("%s err", test.name).ThatError(err).Succeeded()
		ctx.For("%s", test.name).That(got.(*goimage.NRGBA).NRGBAAt(0, 0)).Equals(test.expect)
	}
}

func TestDepthToGray(t *testing.T) {
	ctx := assert.To(t)
	ds := image.NewUncompressed("D24_UNORM_S8_UINT", fmts.DS_NU24U8)
	ctx.For("depth").ThatBoolean(ds.IsDepth()).IsTrue()
	ctx.For("color").ThatBoolean(image.RGBA_U8_NORM.IsDepth()).IsFalse()

	img := image.New(ds, 2, 1)
	img.SetPixel(0, 0, []float64{1, 3})
	img.SetPixel(1, 0, []float64{0, 0})
	got, err := img.Image()
	ctx.For("err").ThatError(err).Succeeded()
	gray := got.(*goimage.Gray16)
	ctx.For("far").That(gray.Gray16At(0, 0).Y).Equals(uint16(0xffff))
	ctx.For("near").That(gray.Gray16At(1, 0).Y).Equals(uint16(0))

	stencil := image.New(image.NewUncompressed("X24_TYPELESS_G8_UINT", fmts.XS_U24U8), 1, 1)
	stencil.SetPixel(0, 0, []float64{0, 255})
	got, err = stencil.Image()
	ctx.For("stencil err").ThatError(err).Succeeded()
	ctx.For("stencil").That(got.(*goimage.Gray16).Gray16At(0, 0).Y).Equals(uint16(0xffff))
}

func TestPNGRoundTrip(t *testing.T) {
	ctx := assert.To(t)
	img := image.New(image.RGBA_U8_NORM, 3, 2)
	for i := range img.Data {
		img.Data[i] = byte(i * 10)
	}
	data, err := img.PNG()
	ctx.For("encode").ThatError(err).Succeeded()
	decoded, err := png.Decode(bytes.NewReader(data))
	ctx.For("decode").ThatError(err).Succeeded()
	ctx.For("bounds").That(decoded.Bounds()).Equals(goimage.Rect(0, 0, 3, 2))
	nrgba, ok := decoded.(*goimage.NRGBA)
	ctx.For("nrgba").That(ok).Equals(true)
	if ok {
		ctx.For("pixel").That(nrgba.NRGBAAt(2, 1)).Equals(color.NRGBA{R: 200, G: 210, B: 220, A: 230})
	}
}

func TestThumbnail(t *testing.T) {
	ctx := assert.To(t)
	img := image.New(image.RGBA_U8_NORM, 64, 16)
	thumb, err := img.Thumbnail(32)
	ctx.For("err").ThatError(err).Succeeded()
	ctx.For("bounds").That(thumb.Bounds()).Equals(goimage.Rect(0, 0, 32, 8))

	small := goimage.NewNRGBA(goimage.Rect(0, 0, 4, 4))
	ctx.For("unchanged").That(image.Thumbnail(small, 32)).Equals(goimage.Image(small))
	ctx.For("tall").That(image.Thumbnail(goimage.NewNRGBA(goimage.Rect(0, 0, 10, 100)), 20).Bounds()).Equals(goimage.Rect(0, 0, 2, 20))
}
