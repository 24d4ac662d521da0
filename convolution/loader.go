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

package convolution

import (
	"github.com/ajroetker/go-resample/hwy"
	"github.com/ajroetker/go-resample/pixel"
)

// Tap-group loaders move a group of consecutive source samples into 64-bit
// lanes. Sample k of a group is zero-extended into the lane the convolution
// loops pair with weight k:
//
//	256-bit, 16 taps: [0 1 8 9] [2 3 10 11] [4 5 12 13] [6 7 14 15]
//	256-bit,  8 taps: [0 1 4 5] [2 3 6 7]
//	256-bit,  4 taps: [0 1 2 3]
//	128-bit:          [0 1] [2 3] [4 5] ...
//
// Each 128-bit block of a load holds consecutive samples; pair table j moves
// samples 2j and 2j+1 of a block into its two lanes. A 256-bit shuffle does
// the same in both blocks, so a 256-bit group with samples a..b in the low
// block and c..d in the high block yields [a+2j a+2j+1 c+2j c+2j+1].

// u8Pairs128 moves bytes 2j and 2j+1 into the low byte of 64-bit lanes 0
// and 1. z marks a -1 index, which zeroes the byte.
//
//	lane 0: 2j   z z z z z z z
//	lane 1: 2j+1 z z z z z z z
var u8Pairs128 = [8][16]int8{
	{0, -1, -1, -1, -1, -1, -1, -1, 1, -1, -1, -1, -1, -1, -1, -1},
	{2, -1, -1, -1, -1, -1, -1, -1, 3, -1, -1, -1, -1, -1, -1, -1},
	{4, -1, -1, -1, -1, -1, -1, -1, 5, -1, -1, -1, -1, -1, -1, -1},
	{6, -1, -1, -1, -1, -1, -1, -1, 7, -1, -1, -1, -1, -1, -1, -1},
	{8, -1, -1, -1, -1, -1, -1, -1, 9, -1, -1, -1, -1, -1, -1, -1},
	{10, -1, -1, -1, -1, -1, -1, -1, 11, -1, -1, -1, -1, -1, -1, -1},
	{12, -1, -1, -1, -1, -1, -1, -1, 13, -1, -1, -1, -1, -1, -1, -1},
	{14, -1, -1, -1, -1, -1, -1, -1, 15, -1, -1, -1, -1, -1, -1, -1},
}

// u16Pairs128 moves 16-bit samples 2j and 2j+1 into the low two bytes of
// 64-bit lanes 0 and 1.
//
//	lane 0: 4j   4j+1 z z z z z z
//	lane 1: 4j+2 4j+3 z z z z z z
var u16Pairs128 = [4][16]int8{
	{0, 1, -1, -1, -1, -1, -1, -1, 2, 3, -1, -1, -1, -1, -1, -1},
	{4, 5, -1, -1, -1, -1, -1, -1, 6, 7, -1, -1, -1, -1, -1, -1},
	{8, 9, -1, -1, -1, -1, -1, -1, 10, 11, -1, -1, -1, -1, -1, -1},
	{12, 13, -1, -1, -1, -1, -1, -1, 14, 15, -1, -1, -1, -1, -1, -1},
}

var (
	u8Pairs256  = pairTables256(u8Pairs128[:4])
	u16Pairs256 = pairTables256(u16Pairs128[:])
)

// pairTables256 repeats the first four 128-bit tables in both blocks.
func pairTables256(t [][16]int8) [4][32]int8 {
	var r [4][32]int8
	for j := range r {
		copy(r[j][:16], t[j][:])
		copy(r[j][16:], t[j][:])
	}
	return r
}

type loader256[P pixel.Pixel] interface {
	load16(s []P) [4]hwy.Int64x4
	load8(s []P) [2]hwy.Int64x4
	load4(s []P) hwy.Int64x4
}

type loader128[P pixel.Pixel] interface {
	load16(s []P) [8]hwy.Int64x2
	load8(s []P) [4]hwy.Int64x2
	load4(s []P) [2]hwy.Int64x2
}

func newLoader256[P pixel.Pixel]() loader256[P] {
	var zero P
	switch any(zero).(type) {
	case pixel.U8:
		return any(u8Loader256{}).(loader256[P])
	default:
		return any(u16Loader256{}).(loader256[P])
	}
}

func newLoader128[P pixel.Pixel]() loader128[P] {
	var zero P
	switch any(zero).(type) {
	case pixel.U8:
		return any(u8Loader128{}).(loader128[P])
	default:
		return any(u16Loader128{}).(loader128[P])
	}
}

func shuffle4x4(v hwy.Uint8x32, t *[4][32]int8) [4]hwy.Int64x4 {
	return [4]hwy.Int64x4{
		v.Shuffle(&t[0]).AsInt64x4(),
		v.Shuffle(&t[1]).AsInt64x4(),
		v.Shuffle(&t[2]).AsInt64x4(),
		v.Shuffle(&t[3]).AsInt64x4(),
	}
}

func shuffle2x4(v hwy.Uint8x32, t *[4][32]int8) [2]hwy.Int64x4 {
	return [2]hwy.Int64x4{
		v.Shuffle(&t[0]).AsInt64x4(),
		v.Shuffle(&t[1]).AsInt64x4(),
	}
}

// u8Loader256 splits each group into halves, one per 128-bit block.
type u8Loader256 struct{}

func (u8Loader256) load16(s []pixel.U8) [4]hwy.Int64x4 {
	b := hwy.AsBytes(s[:16])
	v := hwy.CombineUint8x32(hwy.LoadUint8x16SlicePart(b[:8]), hwy.LoadUint8x16SlicePart(b[8:]))
	return shuffle4x4(v, &u8Pairs256)
}

func (u8Loader256) load8(s []pixel.U8) [2]hwy.Int64x4 {
	b := hwy.AsBytes(s[:8])
	v := hwy.CombineUint8x32(hwy.LoadUint8x16SlicePart(b[:4]), hwy.LoadUint8x16SlicePart(b[4:]))
	return shuffle2x4(v, &u8Pairs256)
}

func (u8Loader256) load4(s []pixel.U8) hwy.Int64x4 {
	b := hwy.AsBytes(s[:4])
	v := hwy.CombineUint8x32(hwy.LoadUint8x16SlicePart(b[:2]), hwy.LoadUint8x16SlicePart(b[2:]))
	return v.Shuffle(&u8Pairs256[0]).AsInt64x4()
}

// u16Loader256 loads 16 taps as one full vector, samples 0-7 in the low
// block and 8-15 in the high block.
type u16Loader256 struct{}

func (u16Loader256) load16(s []pixel.U16) [4]hwy.Int64x4 {
	v := hwy.LoadUint8x32Slice(hwy.AsBytes(s[:16]))
	return shuffle4x4(v, &u16Pairs256)
}

func (u16Loader256) load8(s []pixel.U16) [2]hwy.Int64x4 {
	b := hwy.AsBytes(s[:8])
	v := hwy.CombineUint8x32(hwy.LoadUint8x16SlicePart(b[:8]), hwy.LoadUint8x16SlicePart(b[8:]))
	return shuffle2x4(v, &u16Pairs256)
}

func (u16Loader256) load4(s []pixel.U16) hwy.Int64x4 {
	b := hwy.AsBytes(s[:4])
	v := hwy.CombineUint8x32(hwy.LoadUint8x16SlicePart(b[:4]), hwy.LoadUint8x16SlicePart(b[4:]))
	return v.Shuffle(&u16Pairs256[0]).AsInt64x4()
}

type u8Loader128 struct{}

func (u8Loader128) load16(s []pixel.U8) [8]hwy.Int64x2 {
	v := hwy.LoadUint8x16Slice(hwy.AsBytes(s[:16]))
	var r [8]hwy.Int64x2
	for j := range r {
		r[j] = v.Shuffle(&u8Pairs128[j]).AsInt64x2()
	}
	return r
}

func (u8Loader128) load8(s []pixel.U8) [4]hwy.Int64x2 {
	v := hwy.LoadUint8x16SlicePart(hwy.AsBytes(s[:8]))
	var r [4]hwy.Int64x2
	for j := range r {
		r[j] = v.Shuffle(&u8Pairs128[j]).AsInt64x2()
	}
	return r
}

func (u8Loader128) load4(s []pixel.U8) [2]hwy.Int64x2 {
	v := hwy.LoadUint8x16SlicePart(hwy.AsBytes(s[:4]))
	return [2]hwy.Int64x2{
		v.Shuffle(&u8Pairs128[0]).AsInt64x2(),
		v.Shuffle(&u8Pairs128[1]).AsInt64x2(),
	}
}

type u16Loader128 struct{}

func (l u16Loader128) load16(s []pixel.U16) [8]hwy.Int64x2 {
	lo := l.load8(s[:8])
	hi := l.load8(s[8:16])
	return [8]hwy.Int64x2{lo[0], lo[1], lo[2], lo[3], hi[0], hi[1], hi[2], hi[3]}
}

func (u16Loader128) load8(s []pixel.U16) [4]hwy.Int64x2 {
	v := hwy.LoadUint8x16Slice(hwy.AsBytes(s[:8]))
	var r [4]hwy.Int64x2
	for j := range r {
		r[j] = v.Shuffle(&u16Pairs128[j]).AsInt64x2()
	}
	return r
}

func (u16Loader128) load4(s []pixel.U16) [2]hwy.Int64x2 {
	v := hwy.LoadUint8x16SlicePart(hwy.AsBytes(s[:4]))
	return [2]hwy.Int64x2{
		v.Shuffle(&u16Pairs128[0]).AsInt64x2(),
		v.Shuffle(&u16Pairs128[1]).AsInt64x2(),
	}
}
