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
	"github.com/ajroetker/go-resample/imageview"
	"github.com/ajroetker/go-resample/pixel"
)

// lanes128Kernel runs on two int64 lanes per vector. It serves both SSE4.1
// and NEON.
type lanes128Kernel[P pixel.Pixel] struct {
	ext  CPUExtension
	load loader128[P]
}

func (k lanes128Kernel[P]) Extension() CPUExtension {
	return k.ext
}

func (k lanes128Kernel[P]) Horizontal(src imageview.View[P], dst imageview.ViewMut[P], offset int, n *Normalizer[P]) {
	chunks := n.Chunks()
	height := dst.Height()

	y := 0
	for ; y+imageview.BatchRows <= height; y += imageview.BatchRows {
		s, d := src.FourRows(y+offset), dst.FourRows(y)
		k.rows(s[:], d[:], chunks, n)
	}
	for ; y < height; y++ {
		k.rows([][]P{src.Row(y + offset)}, [][]P{dst.Row(y)}, chunks, n)
	}
}

func (k lanes128Kernel[P]) rows(src, dst [][]P, chunks []Chunk, n *Normalizer[P]) {
	var buf [imageview.BatchRows]hwy.Int64x2
	acc := buf[:len(src)]
	half := n.HalfError()
	for x, c := range chunks {
		clear(acc)
		k.dot(src, c, acc)
		for r := range acc {
			dst[r][x] = n.Clip(acc[r].ReduceSum() + half)
		}
	}
}

// pairCoefs sets coefs[j] to weights 2j and 2j+1 of w.
func pairCoefs(w []int32, coefs []hwy.Int64x2) {
	for j := range coefs {
		coefs[j] = hwy.SetInt64x2(int64(w[2*j]), int64(w[2*j+1]))
	}
}

func (k lanes128Kernel[P]) dot(rows [][]P, c Chunk, acc []hwy.Int64x2) {
	w := c.Values
	taps := len(w)
	var coefs [8]hwy.Int64x2

	i := 0
	for ; i+16 <= taps; i += 16 {
		pairCoefs(w[i:i+16], coefs[:])
		for r, row := range rows {
			s := k.load.load16(row[c.Start+i:])
			a := acc[r]
			for j := range s {
				a = a.Add(s[j].Mul(coefs[j]))
			}
			acc[r] = a
		}
	}
	if i+8 <= taps {
		pairCoefs(w[i:i+8], coefs[:4])
		for r, row := range rows {
			s := k.load.load8(row[c.Start+i:])
			acc[r] = acc[r].Add(s[0].Mul(coefs[0])).Add(s[1].Mul(coefs[1])).
				Add(s[2].Mul(coefs[2])).Add(s[3].Mul(coefs[3]))
		}
		i += 8
	}
	if i+4 <= taps {
		pairCoefs(w[i:i+4], coefs[:2])
		for r, row := range rows {
			s := k.load.load4(row[c.Start+i:])
			acc[r] = acc[r].Add(s[0].Mul(coefs[0])).Add(s[1].Mul(coefs[1]))
		}
		i += 4
	}
	if i+2 <= taps {
		c0 := hwy.WidenInt32x2(w[i : i+2])
		for r, row := range rows {
			acc[r] = acc[r].Add(hwy.PromoteToInt64x2(row[c.Start+i:]).Mul(c0))
		}
		i += 2
	}
	if i < taps {
		c0 := hwy.WidenInt32x2(w[i:])
		for r, row := range rows {
			s := hwy.PromotePartialToInt64x2(row[c.Start+i : c.Start+taps])
			acc[r] = acc[r].Add(s.Mul(c0))
		}
	}
}
