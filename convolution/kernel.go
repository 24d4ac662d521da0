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

// Kernel runs the horizontal and vertical passes on one backend.
//
// Kernel methods do not validate their arguments. Use the checked entry
// points or ValidateHorizontal and ValidateVertical first.
type Kernel[P pixel.Pixel] interface {
	// Extension returns the backend the kernel runs on.
	Extension() CPUExtension

	// Horizontal writes dst row y from source row y+offset, one chunk per
	// destination column.
	Horizontal(src imageview.View[P], dst imageview.ViewMut[P], offset int, n *Normalizer[P])

	// Vertical writes dst row y from the source rows of chunk y.
	Vertical(src imageview.View[P], dst imageview.ViewMut[P], n *Normalizer[P])
}

// KernelFor returns the kernel for pixel type P on extension ext, after
// Resolve.
func KernelFor[P pixel.Pixel](ext CPUExtension) Kernel[P] {
	if Resolve(ext) == AVX2 {
		return wideKernel[P]()
	}
	return nativeKernel[P]{}
}

type nativeKernel[P pixel.Pixel] struct{}

func (nativeKernel[P]) Extension() CPUExtension {
	return Native
}
