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

//go:build amd64 && goexperiment.simd

package convolution

import (
	"simd/archsimd"

	"github.com/ajroetker/go-resample/imageview"
	"github.com/ajroetker/go-resample/pixel"
)

// avx2Kernel accumulates in float64 lanes. Samples are widened once per
// source row and weights once per pass; the inner loops are four-lane
// multiply-adds.
//
// The normalizer keeps every partial sum below 2^53, so the lanes hold exact
// integers and the output matches the native kernel bit for bit. AVX2 has no
// 64-bit integer multiply, which rules out int64 lanes.
type avx2Kernel[P pixel.Pixel] struct{}

func (avx2Kernel[P]) Extension() CPUExtension {
	return AVX2
}

func (avx2Kernel[P]) Horizontal(src imageview.View[P], dst imageview.ViewMut[P], offset int, n *Normalizer[P]) {
	chunks := n.Chunks()
	if len(chunks) == 0 {
		return
	}
	weights := float64Chunks(chunks)
	first, last := chunkSpan(chunks)
	span := last - first

	buf := make([]float64, imageview.BatchRows*span)
	var rows [imageview.BatchRows][]float64
	for r := range rows {
		rows[r] = buf[r*span : (r+1)*span]
	}

	height := dst.Height()
	y := 0
	for ; y+imageview.BatchRows <= height; y += imageview.BatchRows {
		s, d := src.FourRows(y+offset), dst.FourRows(y)
		for r := range rows {
			widen(rows[r], s[r][first:last])
		}
		horizAVX2Rows(rows[:], d[:], chunks, weights, first, n)
	}
	for ; y < height; y++ {
		widen(rows[0], src.Row(y + offset)[first:last])
		horizAVX2Rows(rows[:1], [][]P{dst.Row(y)}, chunks, weights, first, n)
	}
}

// horizAVX2Rows writes every chunk of up to four widened rows. Row samples
// are indexed from source column first.
func horizAVX2Rows[P pixel.Pixel](src [][]float64, dst [][]P, chunks []Chunk, weights [][]float64, first int, n *Normalizer[P]) {
	half := n.HalfError()
	zero := archsimd.BroadcastFloat64x4(0)
	var acc [imageview.BatchRows]archsimd.Float64x4
	var lanes [4]float64

	for x, c := range chunks {
		w := weights[x]
		start := c.Start - first
		taps := len(w)
		for r := range src {
			acc[r] = zero
		}

		i := 0
		for ; i+4 <= taps; i += 4 {
			cw := archsimd.LoadFloat64x4Slice(w[i:])
			for r, row := range src {
				acc[r] = acc[r].Add(archsimd.LoadFloat64x4Slice(row[start+i:]).Mul(cw))
			}
		}
		for r, row := range src {
			acc[r].StoreSlice(lanes[:])
			sum := lanes[0] + lanes[1] + lanes[2] + lanes[3]
			for k := i; k < taps; k++ {
				sum += row[start+k] * w[k]
			}
			dst[r][x] = n.Clip(int64(sum) + half)
		}
	}
}

func (avx2Kernel[P]) Vertical(src imageview.View[P], dst imageview.ViewMut[P], n *Normalizer[P]) {
	chunks := n.Chunks()
	if len(chunks) == 0 {
		return
	}
	first, last := chunkSpan(chunks)
	width := dst.Width()

	rows := make([]float64, (last-first)*width)
	for y := first; y < last; y++ {
		widen(rows[(y-first)*width:(y-first+1)*width], src.Row(y))
	}

	half := n.HalfError()
	zero := archsimd.BroadcastFloat64x4(0)
	var lanes [4]float64
	for y, c := range chunks {
		dstRow := dst.Row(y)
		base := (c.Start - first) * width

		x := 0
		for ; x+8 <= width; x += 8 {
			lo, hi := zero, zero
			for k, w := range c.Values {
				row := rows[base+k*width+x:]
				cw := archsimd.BroadcastFloat64x4(float64(w))
				lo = lo.Add(archsimd.LoadFloat64x4Slice(row).Mul(cw))
				hi = hi.Add(archsimd.LoadFloat64x4Slice(row[4:]).Mul(cw))
			}
			lo.StoreSlice(lanes[:])
			clipLanes(n, &lanes, half, dstRow[x:x+4])
			hi.StoreSlice(lanes[:])
			clipLanes(n, &lanes, half, dstRow[x+4:x+8])
		}
		if x+4 <= width {
			acc := zero
			for k, w := range c.Values {
				row := rows[base+k*width+x:]
				acc = acc.Add(archsimd.LoadFloat64x4Slice(row).Mul(archsimd.BroadcastFloat64x4(float64(w))))
			}
			acc.StoreSlice(lanes[:])
			clipLanes(n, &lanes, half, dstRow[x:x+4])
			x += 4
		}
		for ; x < width; x++ {
			sum := 0.0
			for k, w := range c.Values {
				sum += rows[base+k*width+x] * float64(w)
			}
			dstRow[x] = n.Clip(int64(sum) + half)
		}
	}
}

func clipLanes[P pixel.Pixel](n *Normalizer[P], lanes *[4]float64, half int64, dst []P) {
	_ = dst[3]
	for i, s := range lanes {
		dst[i] = n.Clip(int64(s) + half)
	}
}

// float64Chunks converts the weights of every chunk, sharing one backing
// array.
func float64Chunks(chunks []Chunk) [][]float64 {
	total := 0
	for _, c := range chunks {
		total += len(c.Values)
	}
	flat := make([]float64, total)
	out := make([][]float64, len(chunks))
	for i, c := range chunks {
		w := flat[:len(c.Values):len(c.Values)]
		for k, v := range c.Values {
			w[k] = float64(v)
		}
		out[i] = w
		flat = flat[len(c.Values):]
	}
	return out
}

// chunkSpan returns the source range [first, last) read by chunks.
func chunkSpan(chunks []Chunk) (first, last int) {
	first, last = chunks[0].Start, chunks[0].Start+len(chunks[0].Values)
	for _, c := range chunks[1:] {
		first = min(first, c.Start)
		last = max(last, c.Start+len(c.Values))
	}
	return first, last
}

func widen[P pixel.Pixel](dst []float64, src []P) {
	dst = dst[:len(src)]
	for i, v := range src {
		dst[i] = float64(v)
	}
}
