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

func (lanes256Kernel[P]) Vertical(src imageview.View[P], dst imageview.ViewMut[P], n *Normalizer[P]) {
	half := n.HalfError()
	width := dst.Width()

	for y, c := range n.Chunks() {
		dstRow := dst.Row(y)

		x := 0
		for ; x+8 <= width; x += 8 {
			lo, hi := hwy.BroadcastInt64x4(half), hwy.BroadcastInt64x4(half)
			for k, w := range c.Values {
				row := src.Row(c.Start + k)[x : x+8]
				coef := hwy.BroadcastInt64x4(int64(w))
				lo = lo.Add(hwy.PromoteToInt64x4(row).Mul(coef))
				hi = hi.Add(hwy.PromoteToInt64x4(row[4:]).Mul(coef))
			}
			clip4(n, lo, dstRow[x:x+4])
			clip4(n, hi, dstRow[x+4:x+8])
		}
		if x+4 <= width {
			acc := hwy.BroadcastInt64x4(half)
			for k, w := range c.Values {
				row := src.Row(c.Start + k)[x : x+4]
				acc = acc.Add(hwy.PromoteToInt64x4(row).Mul(hwy.BroadcastInt64x4(int64(w))))
			}
			clip4(n, acc, dstRow[x:x+4])
			x += 4
		}
		vertNativeColumns(src, dstRow, c, x, n)
	}
}

func clip4[P pixel.Pixel](n *Normalizer[P], v hwy.Int64x4, dst []P) {
	var sums [4]int64
	v.Store(&sums)
	_ = dst[3]
	for i, s := range sums {
		dst[i] = n.Clip(s)
	}
}
