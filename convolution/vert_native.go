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
	"github.com/ajroetker/go-resample/imageview"
	"github.com/ajroetker/go-resample/pixel"
)

func (nativeKernel[P]) Vertical(src imageview.View[P], dst imageview.ViewMut[P], n *Normalizer[P]) {
	for y, c := range n.Chunks() {
		vertNativeColumns(src, dst.Row(y), c, 0, n)
	}
}

// vertNativeColumns computes dstRow[x0:] from the source rows of chunk c.
// The lane kernels use it for columns left over after their widest steps.
func vertNativeColumns[P pixel.Pixel](src imageview.View[P], dstRow []P, c Chunk, x0 int, n *Normalizer[P]) {
	half := n.HalfError()
	width := len(dstRow)

	x := x0
	for ; x+4 <= width; x += 4 {
		sum0, sum1, sum2, sum3 := half, half, half, half
		for k, w := range c.Values {
			row := src.Row(c.Start + k)[x : x+4]
			k64 := int64(w)
			sum0 += int64(row[0]) * k64
			sum1 += int64(row[1]) * k64
			sum2 += int64(row[2]) * k64
			sum3 += int64(row[3]) * k64
		}
		dstRow[x] = n.Clip(sum0)
		dstRow[x+1] = n.Clip(sum1)
		dstRow[x+2] = n.Clip(sum2)
		dstRow[x+3] = n.Clip(sum3)
	}
	for ; x < width; x++ {
		sum := half
		for k, w := range c.Values {
			sum += int64(src.Row(c.Start + k)[x]) * int64(w)
		}
		dstRow[x] = n.Clip(sum)
	}
}
