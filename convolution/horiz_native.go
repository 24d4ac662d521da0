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

func (nativeKernel[P]) Horizontal(src imageview.View[P], dst imageview.ViewMut[P], offset int, n *Normalizer[P]) {
	chunks := n.Chunks()
	height := dst.Height()

	y := 0
	for ; y+imageview.BatchRows <= height; y += imageview.BatchRows {
		horizNativeFourRows(src.FourRows(y+offset), dst.FourRows(y), chunks, n)
	}
	for ; y < height; y++ {
		horizNativeRow(src.Row(y+offset), dst.Row(y), chunks, n)
	}
}

// horizNativeFourRows applies every chunk to four rows at once so each weight
// is loaded once per batch.
func horizNativeFourRows[P pixel.Pixel](src, dst imageview.FourRows[P], chunks []Chunk, n *Normalizer[P]) {
	half := n.HalfError()
	s0, s1, s2, s3 := src[0], src[1], src[2], src[3]
	for x, c := range chunks {
		ss0 := s0[c.Start : c.Start+len(c.Values)]
		ss1 := s1[c.Start : c.Start+len(c.Values)]
		ss2 := s2[c.Start : c.Start+len(c.Values)]
		ss3 := s3[c.Start : c.Start+len(c.Values)]
		sum0, sum1, sum2, sum3 := half, half, half, half
		for k, w := range c.Values {
			k64 := int64(w)
			sum0 += int64(ss0[k]) * k64
			sum1 += int64(ss1[k]) * k64
			sum2 += int64(ss2[k]) * k64
			sum3 += int64(ss3[k]) * k64
		}
		dst[0][x] = n.Clip(sum0)
		dst[1][x] = n.Clip(sum1)
		dst[2][x] = n.Clip(sum2)
		dst[3][x] = n.Clip(sum3)
	}
}

func horizNativeRow[P pixel.Pixel](src, dst []P, chunks []Chunk, n *Normalizer[P]) {
	half := n.HalfError()
	for x, c := range chunks {
		ss := src[c.Start : c.Start+len(c.Values)]
		sum := half
		for k, w := range c.Values {
			sum += int64(ss[k]) * int64(w)
		}
		dst[x] = n.Clip(sum)
	}
}
