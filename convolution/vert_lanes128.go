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

func (lanes128Kernel[P]) Vertical(src imageview.View[P], dst imageview.ViewMut[P], n *Normalizer[P]) {
	half := n.HalfError()
	width := dst.Width()

	for y, c := range n.Chunks() {
		dstRow := dst.Row(y)

		x := 0
		for ; x+4 <= width; x += 4 {
			lo, hi := hwy.BroadcastInt64x2(half), hwy.BroadcastInt64x2(half)
			for k, w := range c.Values {
				row := src.Row(c.Start + k)[x : x+4]
				coef := hwy.BroadcastInt64x2(int64(w))
				lo = lo.Add(hwy.PromoteToInt64x2(row).Mul(coef))
				hi = hi.Add(hwy.PromoteToInt64x2(row[2:]).Mul(coef))
			}
			clip2(n, lo, dstRow[x:x+2])
			clip2(n, hi, dstRow[x+2:x+4])
		}
		if x+2 <= width {
			acc := hwy.BroadcastInt64x2(half)
			for k, w := range c.Values {
				row := src.Row(c.Start + k)[x : x+2]
				acc = acc.Add(hwy.PromoteToInt64x2(row).Mul(hwy.BroadcastInt64x2(int64(w))))
			}
			clip2(n, acc, dstRow[x:x+2])
			x += 2
		}
		vertNativeColumns(src, dstRow, c, x, n)
	}
}

func clip2[P pixel.Pixel](n *Normalizer[P], v hwy.Int64x2, dst []P) {
	var sums [2]int64
	v.Store(&sums)
	_ = dst[1]
	dst[0] = n.Clip(sums[0])
	dst[1] = n.Clip(sums[1])
}
