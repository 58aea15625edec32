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

package image

import (
	"image"

	"golang.org/x/image/draw"
)

// Thumbnail returns src scaled so that neither dimension exceeds size,
// preserving the aspect ratio. Images already small enough are returned
// unchanged.
func Thumbnail(src image.Image, size int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if size <= 0 || (w <= size && h <= size) {
		return src
	}
	if w >= h {
		w, h = size, max(h*size/w, 1)
	} else {
		w, h = max(w*size/h, 1), size
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// Thumbnail returns the image converted and scaled down to fit size.
func (i *Image) Thumbnail(size int) (image.Image, error) {
	img, err := i.Image()
	if err != nil {
		return nil, err
	}
	return Thumbnail(img, size), nil
}
