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
	"github.com/dromanov/apitrace/core/stream"
	"github.com/dromanov/apitrace/core/stream/fmts"
)

// Format is a named, uncompressed texel layout.
type Format struct {
	Name   string
	Layout *stream.Format
}

// NewUncompressed returns a new uncompressed format wrapping layout.
func NewUncompressed(name string, layout *stream.Format) *Format {
	return &Format{Name: name, Layout: layout}
}

func (f *Format) String() string { return f.Name }

// Size returns the number of bytes of a tightly packed w by h image.
func (f *Format) Size(w, h int) int { return f.Layout.Size(w * h) }

// IsDepth returns true if the format holds depth or stencil data and no color.
func (f *Format) IsDepth() bool {
	channels := f.Layout.Channels()
	for _, c := range channels {
		if c.IsColor() {
			return false
		}
	}
	return channels.Contains(stream.Channel_Depth) || channels.Contains(stream.Channel_Stencil)
}

var (
	RGBA_U8_NORM = NewUncompressed("RGBA_U8_NORM", fmts.RGBA_U8_NORM)
	RGBA_F32     = NewUncompressed("RGBA_F32", fmts.RGBA_F32)
	D_F32        = NewUncompressed("D_F32", fmts.D_F32)
)
