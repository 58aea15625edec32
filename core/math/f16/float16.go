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

// Package f16 implements the IEEE 754 half precision floating-point format.
package f16

import "math"

// Number is a 16 bit floating-point number: 1 sign bit, 5 exponent bits and
// 10 mantissa bits.
type Number uint16

const (
	signMask     = 0x8000
	exponentMask = 0x7c00
	mantissaMask = 0x03ff
	exponentBias = 15
)

// Inf returns positive infinity if sign >= 0, negative infinity otherwise.
func Inf(sign int) Number {
	if sign >= 0 {
		return exponentMask
	}
	return signMask | exponentMask
}

// NaN returns a quiet NaN.
func NaN() Number { return exponentMask | 0x0200 }

// IsInf reports whether f is an infinity, according to sign.
// If sign > 0, IsInf reports whether f is positive infinity.
// If sign < 0, IsInf reports whether f is negative infinity.
// If sign == 0, IsInf reports whether f is either infinity.
func (f Number) IsInf(sign int) bool {
	if f&^signMask != exponentMask {
		return false
	}
	negative := f&signMask != 0
	return sign == 0 || (sign > 0 && !negative) || (sign < 0 && negative)
}

// IsNaN reports whether f is a not-a-number value.
func (f Number) IsNaN() bool {
	return f&exponentMask == exponentMask && f&mantissaMask != 0
}

// Float32 returns f expanded to a float32.
func (f Number) Float32() float32 {
	sign := uint32(f&signMask) << 16
	exp := uint32(f&exponentMask) >> 10
	mant := uint32(f & mantissaMask)
	switch {
	case exp == 0x1f:
		return math.Float32frombits(sign | 0x7f800000 | mant<<13)
	case exp == 0 && mant == 0:
		return math.Float32frombits(sign)
	case exp == 0:
		// Denormal. Normalize the mantissa for the wider exponent range.
		e := uint32(127 - exponentBias + 1)
		for mant&0x0400 == 0 {
			mant <<= 1
			e--
		}
		mant &= mantissaMask
		return math.Float32frombits(sign | e<<23 | mant<<13)
	default:
		return math.Float32frombits(sign | (exp+127-exponentBias)<<23 | mant<<13)
	}
}

// From returns the Number nearest to f, rounding to nearest even.
// Values too large to be represented become infinities, values too small
// become zero.
func From(f float32) Number {
	bits := math.Float32bits(f)
	sign := Number(bits>>16) & signMask
	exp := int32(bits>>23) & 0xff
	mant := bits & 0x007fffff

	switch {
	case exp == 0xff && mant != 0:
		return sign | NaN()
	case exp == 0xff:
		return sign | exponentMask
	}

	e := exp - 127 + exponentBias
	switch {
	case e >= 0x1f:
		return sign | exponentMask
	case e <= 0:
		if e < -10 {
			return sign
		}
		// Denormal. Shift in the implicit leading bit.
		m := mant | 0x00800000
		shift := uint32(14 - e)
		half := uint32(1) << (shift - 1)
		out := m >> shift
		rem := m & (1<<shift - 1)
		if rem > half || (rem == half && out&1 == 1) {
			out++
		}
		return sign | Number(out)
	default:
		out := uint32(e)<<10 | mant>>13
		rem := mant & 0x1fff
		if rem > 0x1000 || (rem == 0x1000 && out&1 == 1) {
			// May carry into the exponent, which correctly rounds up to infinity.
			out++
		}
		return sign | Number(out)
	}
}
