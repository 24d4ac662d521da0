// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hwy

import "encoding/binary"

// Uint8x16 is a 128-bit vector of sixteen byte lanes.
type Uint8x16 struct {
	v [16]uint8
}

// Uint8x32 is a 256-bit vector of thirty-two byte lanes, organised as two
// independent 128-bit blocks like a YMM register.
type Uint8x32 struct {
	lo, hi Uint8x16
}

// LoadUint8x16Slice loads the first 16 bytes of s.
func LoadUint8x16Slice(s []uint8) Uint8x16 {
	var r Uint8x16
	copy(r.v[:], s[:16])
	return r
}

// LoadUint8x16SlicePart loads min(len(s), 16) bytes of s into the low lanes
// and zeroes the rest. This covers the MOVD/MOVQ style partial loads.
func LoadUint8x16SlicePart(s []uint8) Uint8x16 {
	var r Uint8x16
	copy(r.v[:], s)
	return r
}

// LoadUint8x32Slice loads the first 32 bytes of s.
func LoadUint8x32Slice(s []uint8) Uint8x32 {
	_ = s[31]
	return Uint8x32{
		lo: LoadUint8x16Slice(s[:16]),
		hi: LoadUint8x16Slice(s[16:32]),
	}
}

// CombineUint8x32 builds a 256-bit vector from two 128-bit halves.
func CombineUint8x32(lo, hi Uint8x16) Uint8x32 {
	return Uint8x32{lo: lo, hi: hi}
}

// GetLo returns the low 128-bit block.
func (a Uint8x32) GetLo() Uint8x16 {
	return a.lo
}

// GetHi returns the high 128-bit block.
func (a Uint8x32) GetHi() Uint8x16 {
	return a.hi
}

// Shuffle rearranges bytes with PSHUFB semantics: output byte i is
// a[tbl[i]&15], or zero when tbl[i] is negative.
func (a Uint8x16) Shuffle(tbl *[16]int8) Uint8x16 {
	var r Uint8x16
	for i, idx := range tbl {
		if idx >= 0 {
			r.v[i] = a.v[idx&15]
		}
	}
	return r
}

// Shuffle rearranges bytes with VPSHUFB semantics. Indices address bytes
// within the same 128-bit block only: tbl[0:16] shuffles the low block and
// tbl[16:32] the high block.
func (a Uint8x32) Shuffle(tbl *[32]int8) Uint8x32 {
	return Uint8x32{
		lo: a.lo.Shuffle((*[16]int8)(tbl[:16])),
		hi: a.hi.Shuffle((*[16]int8)(tbl[16:])),
	}
}

// AsInt64x2 reinterprets the sixteen bytes as two little-endian int64 lanes.
func (a Uint8x16) AsInt64x2() Int64x2 {
	return Int64x2{v: [2]int64{
		int64(binary.LittleEndian.Uint64(a.v[0:8])),
		int64(binary.LittleEndian.Uint64(a.v[8:16])),
	}}
}

// AsInt64x4 reinterprets the thirty-two bytes as four little-endian int64
// lanes; lanes 0-1 come from the low block and lanes 2-3 from the high block.
func (a Uint8x32) AsInt64x4() Int64x4 {
	lo := a.lo.AsInt64x2()
	hi := a.hi.AsInt64x2()
	return Int64x4{v: [4]int64{lo.v[0], lo.v[1], hi.v[0], hi.v[1]}}
}

// GetElem returns byte lane i.
func (a Uint8x16) GetElem(i int) uint8 {
	return a.v[i]
}
