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

// Package binary provides bit-level access to packed texel data.
package binary

import "github.com/dromanov/apitrace/core/math/u32"

// BitStream reads and writes bit fields in a byte slice.
// Bits are packed from the least significant bit of each byte to the most
// significant, with earlier bytes holding lower bits of multi-byte fields.
type BitStream struct {
	Data     []byte // The packed bits.
	ReadPos  uint32 // The read offset from the start of Data, in bits.
	WritePos uint32 // The write offset from the start of Data, in bits.
}

// CanRead returns true if count bits can be read from the stream.
func (s *BitStream) CanRead(count uint32) bool {
	return uint64(s.ReadPos)+uint64(count) <= uint64(len(s.Data))*8
}

// Read reads count bits, at most 64, advancing ReadPos.
// The first bit read is the least significant bit of the returned value.
func (s *BitStream) Read(count uint32) uint64 {
	out := uint64(0)
	for done := uint32(0); done < count; {
		pos := s.ReadPos
		shift := pos & 7
		n := u32.Min(8-shift, count-done)
		bits := (uint64(s.Data[pos/8]) >> shift) & (1<<n - 1)
		out |= bits << done
		done += n
		s.ReadPos += n
	}
	return out
}

// Write writes the low count bits of bits, at most 64, advancing WritePos.
// Data grows as required.
func (s *BitStream) Write(bits uint64, count uint32) {
	if need := int(u32.DivUp(s.WritePos+count, 8)); need > len(s.Data) {
		s.Data = append(s.Data, make([]byte, need-len(s.Data))...)
	}
	for done := uint32(0); done < count; {
		pos := s.WritePos
		shift := pos & 7
		n := u32.Min(8-shift, count-done)
		mask := byte((1<<n - 1) << shift)
		v := byte((bits>>done)<<shift) & mask
		s.Data[pos/8] = s.Data[pos/8]&^mask | v
		done += n
		s.WritePos += n
	}
}
