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
	"github.com/ajroetker/go-resample/hwy"
	"github.com/ajroetker/go-resample/pixel"
)

// compiledFor reports AVX2 when the running CPU has it. The 128-bit tiers
// have no archsimd lowering and resolve to Native.
func compiledFor(e CPUExtension) bool {
	if e != AVX2 {
		return false
	}
	switch hwy.CurrentLevel() {
	case hwy.DispatchAVX2, hwy.DispatchAVX512:
		return true
	default:
		return false
	}
}

func wideKernel[P pixel.Pixel]() Kernel[P] {
	return avx2Kernel[P]{}
}
