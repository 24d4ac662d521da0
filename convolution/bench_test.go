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
	"fmt"
	"math/rand"
	"testing"

	"github.com/ajroetker/go-resample/imageview"
	"github.com/ajroetker/go-resample/pixel"
)

func BenchmarkHorizontal(b *testing.B) {
	benchmarkPass[pixel.U8](b, true)
}

func BenchmarkVertical(b *testing.B) {
	benchmarkPass[pixel.U8](b, false)
}

func BenchmarkHorizontalU16(b *testing.B) {
	benchmarkPass[pixel.U16](b, true)
}

func benchmarkPass[P pixel.Pixel](b *testing.B, horizontal bool) {
	const srcSize, dstSize = 1024, 256
	rng := rand.New(rand.NewSource(7))
	src := randomImage[P](rng, srcSize, srcSize)
	c, _ := BuildCoefficients(srcSize, dstSize, Lanczos3)
	n, _ := NewNormalizer[P](c)

	for _, k := range allKernels[P]() {
		b.Run(fmt.Sprintf("%s/%s", pixel.Name[P](), kernelName(k)), func(b *testing.B) {
			var dst *imageview.Image[P]
			if horizontal {
				dst = imageview.New[P](dstSize, srcSize)
			} else {
				dst = imageview.New[P](srcSize, dstSize)
			}
			b.SetBytes(int64(srcSize * srcSize * pixel.Size[P]()))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if horizontal {
					k.Horizontal(src.View(), dst.ViewMut(), 0, n)
				} else {
					k.Vertical(src.View(), dst.ViewMut(), n)
				}
			}
		})
	}
}
