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

// lanes256Kernel runs on four int64 lanes per vector.
type lanes256Kernel[P pixel.Pixel] struct {
	load loader256[P]
}

func (lanes256Kernel[P]) Extension() CPUExtension {
	return AVX2
}

func (k lanes256Kernel[P]) Horizontal(src imageview.View[P], dst imageview.ViewMut[P], offset int, n *Normalizer[P]) {
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

// rows convolves up to four rows, sharing each chunk's weight vectors
// between them.
func (k lanes256Kernel[P]) rows(src, dst [][]P, chunks []Chunk, n *Normalizer[P]) {
	var buf [imageview.BatchRows]hwy.Int64x4
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

// dot adds the products of chunk c with the window of every row to acc.
func (k lanes256Kernel[P]) dot(rows [][]P, c Chunk, acc []hwy.Int64x4) {
	w := c.Values
	taps := len(w)

	i := 0
	for ; i+16 <= taps; i += 16 {
		c0 := hwy.SetInt64x4(int64(w[i]), int64(w[i+1]), int64(w[i+8]), int64(w[i+9]))
		c1 := hwy.SetInt64x4(int64(w[i+2]), int64(w[i+3]), int64(w[i+10]), int64(w[i+11]))
		c2 := hwy.SetInt64x4(int64(w[i+4]), int64(w[i+5]), int64(w[i+12]), int64(w[i+13]))
		c3 := hwy.SetInt64x4(int64(w[i+6]), int64(w[i+7]), int64(w[i+14]), int64(w[i+15]))
		for r, row := range rows {
			s := k.load.load16(row[c.Start+i:])
			acc[r] = acc[r].Add(s[0].Mul(c0)).Add(s[1].Mul(c1)).Add(s[2].Mul(c2)).Add(s[3].Mul(c3))
		}
	}
	if i+8 <= taps {
		c0 := hwy.SetInt64x4(int64(w[i]), int64(w[i+1]), int64(w[i+4]), int64(w[i+5]))
		c1 := hwy.SetInt64x4(int64(w[i+2]), int64(w[i+3]), int64(w[i+6]), int64(w[i+7]))
		for r, row := range rows {
			s := k.load.load8(row[c.Start+i:])
			acc[r] = acc[r].Add(s[0].Mul(c0)).Add(s[1].Mul(c1))
		}
		i += 8
	}
	if i+4 <= taps {
		c0 := hwy.WidenInt32x4(w[i : i+4])
		for r, row := range rows {
			acc[r] = acc[r].Add(k.load.load4(row[c.Start+i:]).Mul(c0))
		}
		i += 4
	}
	if i < taps {
		c0 := hwy.WidenInt32x4(w[i:])
		for r, row := range rows {
			s := hwy.PromotePartialToInt64x4(row[c.Start+i : c.Start+taps])
			acc[r] = acc[r].Add(s.Mul(c0))
		}
	}
}
