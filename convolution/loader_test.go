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
	"testing"

	"github.com/ajroetker/go-resample/hwy"
	"github.com/ajroetker/go-resample/pixel"
)

// Lane layouts of the 256-bit tap groups.
var (
	layout16x4 = [4][4]int{{0, 1, 8, 9}, {2, 3, 10, 11}, {4, 5, 12, 13}, {6, 7, 14, 15}}
	layout8x4  = [2][4]int{{0, 1, 4, 5}, {2, 3, 6, 7}}
	layout4x4  = [4]int{0, 1, 2, 3}
)

func samplesOf[P pixel.Pixel](n int, f func(k int) int) []P {
	s := make([]P, n)
	for k := range s {
		s[k] = P(f(k))
	}
	return s
}

func checkLanes4(t *testing.T, name string, v hwy.Int64x4, want [4]int, values []int64) {
	t.Helper()
	for lane, k := range want {
		if got := v.GetElem(lane); got != values[k] {
			t.Errorf("%s lane %d: got %d, want sample %d = %d", name, lane, got, k, values[k])
		}
	}
}

func checkPairs(t *testing.T, name string, vs []hwy.Int64x2, values []int64) {
	t.Helper()
	for j, v := range vs {
		for lane := range 2 {
			if got, want := v.GetElem(lane), values[2*j+lane]; got != want {
				t.Errorf("%s pair %d lane %d: got %d, want %d", name, j, lane, got, want)
			}
		}
	}
}

func TestLoader256(t *testing.T) {
	t.Run("u8", func(t *testing.T) {
		testLoader256(t, samplesOf[pixel.U8](16, func(k int) int { return 200 + k }))
	})
	t.Run("u16", func(t *testing.T) {
		// Both bytes of every sample differ so a swapped byte shows up.
		testLoader256(t, samplesOf[pixel.U16](16, func(k int) int { return 0x0101*(k+1) + 0x8000 }))
	})
}

func testLoader256[P pixel.Pixel](t *testing.T, s []P) {
	values := make([]int64, len(s))
	for k, v := range s {
		values[k] = int64(v)
	}
	l := newLoader256[P]()

	g16 := l.load16(s)
	for j, want := range layout16x4 {
		checkLanes4(t, "load16", g16[j], want, values)
	}
	g8 := l.load8(s[:8])
	for j, want := range layout8x4 {
		checkLanes4(t, "load8", g8[j], want, values)
	}
	checkLanes4(t, "load4", l.load4(s[:4]), layout4x4, values)
}

func TestLoader128(t *testing.T) {
	t.Run("u8", func(t *testing.T) {
		testLoader128(t, samplesOf[pixel.U8](16, func(k int) int { return 255 - k }))
	})
	t.Run("u16", func(t *testing.T) {
		testLoader128(t, samplesOf[pixel.U16](16, func(k int) int { return 0xFFFF - 0x0102*k }))
	})
}

func testLoader128[P pixel.Pixel](t *testing.T, s []P) {
	values := make([]int64, len(s))
	for k, v := range s {
		values[k] = int64(v)
	}
	l := newLoader128[P]()

	g16 := l.load16(s)
	checkPairs(t, "load16", g16[:], values)
	g8 := l.load8(s[:8])
	checkPairs(t, "load8", g8[:], values)
	g4 := l.load4(s[:4])
	checkPairs(t, "load4", g4[:], values)
}

func TestPairTables256(t *testing.T) {
	for j := range u16Pairs256 {
		for i := range 16 {
			if u16Pairs256[j][i] != u16Pairs128[j][i] || u16Pairs256[j][16+i] != u16Pairs128[j][i] {
				t.Fatalf("u16Pairs256[%d] does not repeat u16Pairs128[%d]", j, j)
			}
			if u8Pairs256[j][i] != u8Pairs128[j][i] || u8Pairs256[j][16+i] != u8Pairs128[j][i] {
				t.Fatalf("u8Pairs256[%d] does not repeat u8Pairs128[%d]", j, j)
			}
		}
	}
}
