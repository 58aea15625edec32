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

// Package fmts holds the stream formats of common texel layouts.
// Formats are named by their channels in memory order, followed by the
// component data type and sampling.
package fmts

import "github.com/dromanov/apitrace/core/stream"

func uniform(dt *stream.DataType, s *stream.Sampling, channels ...stream.Channel) *stream.Format {
	f := &stream.Format{Components: make([]*stream.Component, len(channels))}
	for i, c := range channels {
		f.Components[i] = &stream.Component{DataType: dt, Sampling: s, Channel: c}
	}
	return f
}

func mixed(components ...*stream.Component) *stream.Format {
	return &stream.Format{Components: components}
}

func c(dt *stream.DataType, s *stream.Sampling, ch stream.Channel) *stream.Component {
	return &stream.Component{DataType: dt, Sampling: s, Channel: ch}
}

const (
	r = stream.Channel_Red
	g = stream.Channel_Green
	b = stream.Channel_Blue
	a = stream.Channel_Alpha
	x = stream.Channel_Undefined
	d = stream.Channel_Depth
	s = stream.Channel_Stencil
)

var (
	norm = stream.LinearNormalized
	srgb = stream.SRGBNormalized
	lin  = stream.Linear
)

var (
	RGBA_F32      = uniform(&stream.F32, lin, r, g, b, a)
	RGBA_U32      = uniform(&stream.U32, lin, r, g, b, a)
	RGBA_S32      = uniform(&stream.S32, lin, r, g, b, a)
	RGB_F32       = uniform(&stream.F32, lin, r, g, b)
	RGB_U32       = uniform(&stream.U32, lin, r, g, b)
	RGB_S32       = uniform(&stream.S32, lin, r, g, b)
	RGBA_F16      = uniform(&stream.F16, lin, r, g, b, a)
	RGBA_U16_NORM = uniform(&stream.U16, norm, r, g, b, a)
	RGBA_U16      = uniform(&stream.U16, lin, r, g, b, a)
	RGBA_S16_NORM = uniform(&stream.S16, norm, r, g, b, a)
	RGBA_S16      = uniform(&stream.S16, lin, r, g, b, a)
	RG_F32        = uniform(&stream.F32, lin, r, g)
	RG_U32        = uniform(&stream.U32, lin, r, g)
	RG_S32        = uniform(&stream.S32, lin, r, g)
	RGBA_U8_NORM  = uniform(&stream.U8, norm, r, g, b, a)
	SRGBA_U8_NORM = mixed(c(&stream.U8, srgb, r), c(&stream.U8, srgb, g), c(&stream.U8, srgb, b), c(&stream.U8, norm, a))
	RGBA_U8       = uniform(&stream.U8, lin, r, g, b, a)
	RGBA_S8_NORM  = uniform(&stream.S8, norm, r, g, b, a)
	RGBA_S8       = uniform(&stream.S8, lin, r, g, b, a)
	RG_F16        = uniform(&stream.F16, lin, r, g)
	RG_U16_NORM   = uniform(&stream.U16, norm, r, g)
	RG_U16        = uniform(&stream.U16, lin, r, g)
	RG_S16_NORM   = uniform(&stream.S16, norm, r, g)
	RG_S16        = uniform(&stream.S16, lin, r, g)
	RG_U8_NORM    = uniform(&stream.U8, norm, r, g)
	RG_U8         = uniform(&stream.U8, lin, r, g)
	RG_S8_NORM    = uniform(&stream.S8, norm, r, g)
	RG_S8         = uniform(&stream.S8, lin, r, g)
	R_F32         = uniform(&stream.F32, lin, r)
	R_U32         = uniform(&stream.U32, lin, r)
	R_S32         = uniform(&stream.S32, lin, r)
	R_F16         = uniform(&stream.F16, lin, r)
	R_U16_NORM    = uniform(&stream.U16, norm, r)
	R_U16         = uniform(&stream.U16, lin, r)
	R_S16_NORM    = uniform(&stream.S16, norm, r)
	R_S16         = uniform(&stream.S16, lin, r)
	R_U8_NORM     = uniform(&stream.U8, norm, r)
	R_U8          = uniform(&stream.U8, lin, r)
	R_S8_NORM     = uniform(&stream.S8, norm, r)
	R_S8          = uniform(&stream.S8, lin, r)
	A_U8_NORM     = uniform(&stream.U8, norm, a)
	BGRA_U8_NORM  = uniform(&stream.U8, norm, b, g, r, a)
	SBGRA_U8_NORM = mixed(c(&stream.U8, srgb, b), c(&stream.U8, srgb, g), c(&stream.U8, srgb, r), c(&stream.U8, norm, a))
	BGRX_U8_NORM  = uniform(&stream.U8, norm, b, g, r, x)
	SBGRX_U8_NORM = uniform(&stream.U8, srgb, b, g, r, x)

	RGBA_U10U10U10U2_NORM = mixed(c(&stream.U10, norm, r), c(&stream.U10, norm, g), c(&stream.U10, norm, b), c(&stream.U2, norm, a))
	RGBA_U10U10U10U2      = mixed(c(&stream.U10, lin, r), c(&stream.U10, lin, g), c(&stream.U10, lin, b), c(&stream.U2, lin, a))
	RGB_F11F11F10         = mixed(c(&stream.F11, lin, r), c(&stream.F11, lin, g), c(&stream.F10, lin, b))
	BGR_U5U6U5_NORM       = mixed(c(&stream.U5, norm, b), c(&stream.U6, norm, g), c(&stream.U5, norm, r))
	BGRA_U5U5U5U1_NORM    = mixed(c(&stream.U5, norm, b), c(&stream.U5, norm, g), c(&stream.U5, norm, r), c(&stream.U1, norm, a))
	BGRA_U4_NORM          = uniform(&stream.U4, norm, b, g, r, a)

	D_F32           = uniform(&stream.F32, lin, d)
	D_U16_NORM      = uniform(&stream.U16, norm, d)
	DS_NU24U8       = mixed(c(&stream.U24, norm, d), c(&stream.U8, lin, s))
	DSX_F32U8U24    = mixed(c(&stream.F32, lin, d), c(&stream.U8, lin, s), c(&stream.U24, lin, x))
	XS_U24U8        = mixed(c(&stream.U24, lin, x), c(&stream.U8, lin, s))
	XSX_U32U8U24    = mixed(c(&stream.U32, lin, x), c(&stream.U8, lin, s), c(&stream.U24, lin, x))
	RX_NU24U8       = mixed(c(&stream.U24, norm, r), c(&stream.U8, lin, x))
	RXX_F32U8U24    = mixed(c(&stream.F32, lin, r), c(&stream.U8, lin, x), c(&stream.U24, lin, x))
)
