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
	"bytes"
	"image/png"
	"io"
)

// EncodePNG writes the image to w as a PNG.
func (i *Image) EncodePNG(w io.Writer) error {
	img, err := i.Image()
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// PNG returns the image encoded as a PNG.
func (i *Image) PNG() ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := i.EncodePNG(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
