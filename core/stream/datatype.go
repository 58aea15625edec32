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

import "fmt"

// DataType is the storage type of a component.
// Integer types use IntegerBits, floating-point types use ExponentBits and
// MantissaBits. A signed type has one extra bit for the sign.
type DataType struct {
	Signed       bool
	Float        bool
	IntegerBits  uint32
	ExponentBits uint32
	MantissaBits uint32
}

func integer(signed bool, bits uint32) DataType {
	if signed {
		bits--
	}
	return DataType{Signed: signed, IntegerBits: bits}
}

func float(signed bool, exp, mant uint32) DataType {
	return DataType{Signed: signed, Float: true, ExponentBits: exp, MantissaBits: mant}
}

var (
	U1  = integer(false, 1)
	U2  = integer(false, 2)
	U4  = integer(false, 4)
	U5  = integer(false, 5)
	U6  = integer(false, 6)
	U8  = integer(false, 8)
	U10 = integer(false, 10)
	U16 = integer(false, 16)
	U24 = integer(false, 24)
	U32 = integer(false, 32)
	S8  = integer(true, 8)
	S16 = integer(true, 16)
	S32 = integer(true, 32)
	// F10 is an unsigned 10-bit float with a 5-bit exponent.
	F10 = float(false, 5, 5)
	// F11 is an unsigned 11-bit float with a 5-bit exponent.
	F11 = float(false, 5, 6)
	F16 = float(true, 5, 10)
	F32 = float(true, 8, 23)
)

// Bits returns the size of the data type in bits.
func (t *DataType) Bits() uint32 {
	bits := t.IntegerBits
	if t.Float {
		bits = t.ExponentBits + t.MantissaBits
	}
	if t.Signed {
		bits++
	}
	return bits
}

// Is returns true if t is equivalent to o.
func (t DataType) Is(o DataType) bool { return t == o }

func (t DataType) String() string {
	switch {
	case t.Float && t.Signed:
		return fmt.Sprintf("F%d", t.Bits())
	case t.Float:
		return fmt.Sprintf("UF%d", t.Bits())
	case t.Signed:
		return fmt.Sprintf("S%d", t.Bits())
	default:
		return fmt.Sprintf("U%d", t.Bits())
	}
}
