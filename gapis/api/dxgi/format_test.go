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

package dxgi_test

import (
	"testing"

	"github.com/dromanov/apitrace/core/assert"
	"github.com/dromanov/apitrace/gapis/api/dxgi"
)

func TestNames(t *testing.T) {
	ctx := assert.To(t)
	ctx.For("string").ThatString(dxgi.Format_R8G8B8A8_UNORM.String()).Equals("DXGI_FORMAT_R8G8B8A8_UNORM")
	ctx.For("unknown value").ThatString(dxgi.Format(200).String()).Equals("DXGI_FORMAT<200>")
	for _, name := range []string{"DXGI_FORMAT_B8G8R8A8_UNORM", "b8g8r8a8_unorm"} {
		f, err := dxgi.ParseFormat(name)
		ctx.For("parse %s", name).ThatError(err).Succeeded()
		ctx.For("parse %s", name).That(f).Equals(dxgi.Format_B8G8R8A8_UNORM)
	}
	_, err := dxgi.ParseFormat("R8G8B8A8_FANCY")
	ctx.For("bad name").ThatError(err).HasCause(dxgi.ErrUnsupportedFormat)
}

func TestClassification(t *testing.T) {
	ctx := assert.To(t)
	ctx.For("typeless").ThatBoolean(dxgi.Format_R8G8B8A8_TYPELESS.IsTypeless()).IsTrue()
	ctx.For("typed").ThatBoolean(dxgi.Format_R8G8B8A8_UNORM.IsTypeless()).IsFalse()
	ctx.For("depth plane view").ThatBoolean(dxgi.Format_R24_UNORM_X8_TYPELESS.IsTypeless()).IsFalse()
	ctx.For("depth").ThatBoolean(dxgi.Format_D24_UNORM_S8_UINT.IsDepthStencil()).IsTrue()
	ctx.For("color").ThatBoolean(dxgi.Format_R32_FLOAT.IsDepthStencil()).IsFalse()
	ctx.For("bpp").ThatInteger(dxgi.Format_R16G16B16A16_FLOAT.BytesPerPixel()).Equals(8)
	ctx.For("bpp bc1").ThatInteger(dxgi.Format_BC1_UNORM.BytesPerPixel()).Equals(0)
	ctx.For("bpp typeless").ThatInteger(dxgi.Format_R24G8_TYPELESS.BytesPerPixel()).Equals(4)
}

func TestImageFormat(t *testing.T) {
	ctx := assert.To(t)
	f, err := dxgi.ImageFormat(dxgi.Format_D32_FLOAT)
	ctx.For("depth err").ThatError(err).Succeeded()
	ctx.For("depth name").ThatString(f.Name).Equals("DXGI_FORMAT_D32_FLOAT")
	ctx.For("is depth").ThatBoolean(f.IsDepth()).IsTrue()
	again, _ := dxgi.ImageFormat(dxgi.Format_D32_FLOAT)
	ctx.For("shared").That(again).Equals(f)

	_, err = dxgi.ImageFormat(dxgi.Format_R32_TYPELESS)
	ctx.For("typeless").ThatError(err).HasCause(dxgi.ErrTypelessFormat)
	_, err = dxgi.ImageFormat(dxgi.Format_BC3_UNORM)
	ctx.For("compressed").ThatError(err).HasCause(dxgi.ErrUnsupportedFormat)
	_, err = dxgi.ImageFormat(dxgi.Format_UNKNOWN)
	ctx.For("unknown").ThatError(err).HasCause(dxgi.ErrUnsupportedFormat)
}

func TestConvertImage(t *testing.T) {
	ctx := assert.To(t)
	// Two rows of two B8G8R8A8 pixels, padded to a 16 byte row pitch.
	data := []byte{
		1, 2, 3, 4, 5, 6, 7, 8, 0xcc, 0xcc, 0xcc, 0xcc, 0xcc, 0xcc, 0xcc, 0xcc,
		9, 10, 11, 12, 13, 14, 15, 16,
	}
	img, err := dxgi.ConvertImage(dxgi.Format_B8G8R8A8_UNORM, data, 16, 2, 2)
	ctx.For("err").ThatError(err).Succeeded()
	ctx.For("pitch").That(img.RowPitch).Equals(uint32(8))
	ctx.For("data").ThatSlice(img.Data).Equals([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16})
	ctx.For("format").ThatString(img.Format.Name).Equals("DXGI_FORMAT_B8G8R8A8_UNORM")

	_, err = dxgi.ConvertImage(dxgi.Format_B8G8R8A8_UNORM, data[:20], 16, 2, 2)
	ctx.For("short").ThatError(err).Failed()
	_, err = dxgi.ConvertImage(dxgi.Format_B8G8R8A8_TYPELESS, data, 16, 2, 2)
	ctx.For("typeless").ThatError(err).HasCause(dxgi.ErrTypelessFormat)
}

func TestEveryLayoutConverts(t *testing.T) {
	ctx := assert.To(t)
	for f := dxgi.Format(0); f < 128; f++ {
		bpp := f.BytesPerPixel()
		if bpp == 0 || f.IsTypeless() {
			continue
		}
		img, err := dxgi.ConvertImage(f, make([]byte, bpp*4), uint32(bpp*2), 2, 2)
		ctx.For("%v", f).ThatError(err).Succeeded()
		_, err = img.PNG()
		ctx.For("%v png", f).ThatError(err).Succeeded()
	}
}
