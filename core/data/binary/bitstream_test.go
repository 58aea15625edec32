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

package binary_test

import (
	"testing"

	"github.com/dromanov/apitrace/core/assert"
	"github.com/dromanov/apitrace/core/data/binary"
)

var testByteSequence = []byte{
	//        LSB        MSB
	0x00, // (0) 00000000
	0x01, // (1) 10000000
	0x02, // (2) 01000000
	0x10, // (3) 00001000
	0x80, // (4) 00000001
	0x3A, // (5) 01011100
	0x02, // (6) 01000000
	0x3C, // (7) 00111100
}

var testBitSequence = []struct {
	bits       uint64
	count, pos uint32
}{
	{bits: 0, count: 2, pos: 2},
	{bits: 0, count: 3, pos: 5},
	{bits: 0, count: 3, pos: 8},
	{bits: 1, count: 3, pos: 11},
	{bits: 64, count: 10, pos: 21},
	{bits: 128, count: 10, pos: 31},
	{bits: 1280, count: 11, pos: 42},
	{bits: 142, count: 11, pos: 53},
	{bits: 0, count: 5, pos: 58},
	{bits: 7, count: 3, pos: 61},
	{bits: 1, count: 3, pos: 64},
}

func TestBitStreamRead(t *testing.T) {
	ctx := assert.To(t)
	bs := binary.BitStream{Data: testByteSequence}
	for i, test := range testBitSequence {
		ctx.For("can read %d", i).ThatBoolean(bs.CanRead(test.count)).IsTrue()
		ctx.For("bits %d", i).That(bs.Read(test.count)).Equals(test.bits)
		ctx.For("pos %d", i).That(bs.ReadPos).Equals(test.pos)
	}
	ctx.For("exhausted").ThatBoolean(bs.CanRead(1)).IsFalse()
}

func TestBitStreamWrite(t *testing.T) {
	ctx := assert.To(t)
	bs := binary.BitStream{}
	for i, test := range testBitSequence {
		bs.Write(test.bits, test.count)
		ctx.For("pos %d", i).That(bs.WritePos).Equals(test.pos)
	}
	ctx.For("data").ThatSlice(bs.Data).Equals(testByteSequence)
}

func TestBitStreamWide(t *testing.T) {
	ctx := assert.To(t)
	bs := binary.BitStream{}
	bs.Write(0x5, 3)
	bs.Write(0x0123456789abcdef, 64)
	bs.Write(0xffffff, 24)
	ctx.For("length").ThatSlice(bs.Data).IsLength(12)
	ctx.For("first").That(bs.Read(3)).Equals(uint64(0x5))
	ctx.For("wide").That(bs.Read(64)).Equals(uint64(0x0123456789abcdef))
	ctx.For("depth").That(bs.Read(24)).Equals(uint64(0xffffff))
}

func TestBitStreamOverwrite(t *testing.T) {
	ctx := assert.To(t)
	bs := binary.BitStream{Data: []byte{0xff, 0xff}}
	bs.WritePos = 4
	bs.Write(0, 8)
	ctx.For("data").ThatSlice(bs.Data).Equals([]byte{0x0f, 0xf0})
}
