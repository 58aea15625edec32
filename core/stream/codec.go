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

package stream

import (
	"math"

	"github.com/dromanov/apitrace/core/data/binary"
	"github.com/dromanov/apitrace/core/math/f16"
)

// Decode returns the values of each component of the element at index el in
// data. Normalized components are returned in [0, 1] (or [-1, 1] if signed),
// other integer components as their integer value. Values of sRGB components
// are returned gamma encoded.
func (f *Format) Decode(data []byte, el int) []float64 {
	bs := binary.BitStream{Data: data, ReadPos: uint32(el*f.Stride()) * 8}
	out := make([]float64, len(f.Components))
	for i, c := range f.Components {
		out[i] = c.decode(bs.Read(c.DataType.Bits()))
	}
	return out
}

// Encode writes values, one per component, as the element at index el in
// data. data must be large enough to hold the element.
func (f *Format) Encode(data []byte, el int, values []float64) {
	bs := binary.BitStream{Data: data, WritePos: uint32(el*f.Stride()) * 8}
	for i, c := range f.Components {
		bs.Write(c.encode(values[i]), c.DataType.Bits())
	}
}

func (c *Component) normalized() bool {
	return c.Sampling != nil && c.Sampling.Normalized
}

func (c *Component) decode(raw uint64) float64 {
	t := c.DataType
	switch {
	case t.Float:
		return decodeFloat(t, raw)
	case t.Signed:
		bits := t.Bits()
		v := int64(raw<<(64-bits)) >> (64 - bits)
		if c.normalized() {
			return math.Max(float64(v)/float64(uint64(1)<<t.IntegerBits-1), -1)
		}
		return float64(v)
	default:
		if c.normalized() {
			return float64(raw) / float64(maxUnsigned(t.IntegerBits))
		}
		return float64(raw)
	}
}

func (c *Component) encode(v float64) uint64 {
	t := c.DataType
	switch {
	case t.Float:
		return encodeFloat(t, v)
	case t.Signed:
		limit := float64(uint64(1)<<t.IntegerBits - 1)
		if c.normalized() {
			v *= limit
		}
		v = math.Max(math.Min(math.Round(v), limit), -limit-1)
		return uint64(int64(v)) & maxUnsigned(t.Bits())
	default:
		limit := float64(maxUnsigned(t.IntegerBits))
		if c.normalized() {
			v *= limit
		}
		if math.IsNaN(v) {
			return 0
		}
		return uint64(math.Max(math.Min(math.Round(v), limit), 0))
	}
}

func maxUnsigned(bits uint32) uint64 {
	if bits >= 64 {
		return math.MaxUint64
	}
	return uint64(1)<<bits - 1
}

func decodeFloat(t *DataType, raw uint64) float64 {
	switch *t {
	case F32:
		return float64(math.Float32frombits(uint32(raw)))
	case F16:
		return float64(f16.Number(raw).Float32())
	}
	e, m := t.ExponentBits, t.MantissaBits
	exp := (raw >> m) & maxUnsigned(e)
	mant := float64(raw&maxUnsigned(m)) / float64(uint64(1)<<m)
	sign := 1.0
	if t.Signed && raw>>(e+m)&1 == 1 {
		sign = -1
	}
	bias := int(uint64(1)<<(e-1)) - 1
	switch exp {
	case 0:
		return sign * math.Ldexp(mant, 1-bias)
	case maxUnsigned(e):
		if mant != 0 {
			return math.NaN()
		}
		return math.Inf(int(sign))
	default:
		return sign * math.Ldexp(1+mant, int(exp)-bias)
	}
}

func encodeFloat(t *DataType, v float64) uint64 {
	switch *t {
	case F32:
		return uint64(math.Float32bits(float32(v)))
	case F16:
		return uint64(f16.From(float32(v)))
	}
	e, m := t.ExponentBits, t.MantissaBits
	maxExp := maxUnsigned(e)
	sign := uint64(0)
	if v < 0 || math.Signbit(v) {
		if !t.Signed {
			return 0
		}
		sign, v = uint64(1)<<(e+m), -v
	}
	switch {
	case math.IsNaN(v):
		return maxExp<<m | 1
	case math.IsInf(v, 0):
		return sign | maxExp<<m
	case v == 0:
		return sign
	}
	bias := int(uint64(1)<<(e-1)) - 1
	frac, exp := math.Frexp(v)
	biased := exp - 1 + bias
	if biased <= 0 {
		mant := uint64(math.Round(math.Ldexp(v, bias-1+int(m))))
		// Rounding may promote a denormal to the smallest normal.
		return sign | mant
	}
	mant := uint64(math.Round((2*frac - 1) * float64(uint64(1)<<m)))
	if mant == uint64(1)<<m {
		mant, biased = 0, biased+1
	}
	if uint64(biased) >= maxExp {
		return sign | maxExp<<m
	}
	return sign | uint64(biased)<<m | mant
}
