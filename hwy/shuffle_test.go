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

import "testing"

func iota16() []uint8 {
	b := make([]uint8, 32)
	for i := range b {
		b[i] = uint8(i)
	}
	return b
}

func TestShuffleZeroesNegativeIndices(t *testing.T) {
	src := LoadUint8x16Slice(iota16())
	tbl := [16]int8{3, -1, 15, 0, -1, -1, -1, -1, 8, 9, -1, -1, -1, -1, -1, 1}
	got := src.Shuffle(&tbl)
	want := [16]uint8{3, 0, 15, 0, 0, 0, 0, 0, 8, 9, 0, 0, 0, 0, 0, 1}
	for i := range want {
		if got.GetElem(i) != want[i] {
			t.Errorf("Shuffle: lane %d: got %d, want %d", i, got.GetElem(i), want[i])
		}
	}
}

func TestShuffle256StaysInBlock(t *testing.T) {
	src := LoadUint8x32Slice(iota16())
	var tbl [32]int8 // every byte selects index 0 of its block
	got := src.Shuffle(&tbl)
	if got.GetLo().GetElem(5) != 0 {
		t.Errorf("low block: got %d, want 0", got.GetLo().GetElem(5))
	}
	// Index 0 in the high block refers to byte 16 of the source.
	if got.GetHi().GetElem(5) != 16 {
		t.Errorf("high block: got %d, want 16", got.GetHi().GetElem(5))
	}
}

func TestAsInt64LittleEndian(t *testing.T) {
	src := LoadUint8x32Slice(iota16())
	// Keep byte 0/1 in lane 0, byte 2 in lane 1 of each block.
	tbl := [32]int8{
		0, 1, -1, -1, -1, -1, -1, -1, 2, -1, -1, -1, -1, -1, -1, -1,
		0, 1, -1, -1, -1, -1, -1, -1, 2, -1, -1, -1, -1, -1, -1, -1,
	}
	v := src.Shuffle(&tbl).AsInt64x4()
	want := [4]int64{0x0100, 2, 0x1110, 18}
	var got [4]int64
	v.Store(&got)
	if got != want {
		t.Errorf("AsInt64x4: got %#v, want %#v", got, want)
	}
}

func TestLoadPart(t *testing.T) {
	v := LoadUint8x16SlicePart([]uint8{9, 8, 7})
	if v.GetElem(0) != 9 || v.GetElem(2) != 7 || v.GetElem(3) != 0 || v.GetElem(15) != 0 {
		t.Errorf("LoadUint8x16SlicePart: got %v", v)
	}
	w := CombineUint8x32(v, LoadUint8x16SlicePart([]uint8{1}))
	if w.GetHi().GetElem(0) != 1 || w.GetLo().GetElem(1) != 8 {
		t.Errorf("CombineUint8x32: got %v", w)
	}
}
