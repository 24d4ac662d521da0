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

// Package hwy provides CPU capability detection and the fixed-width lane
// vectors used by the resampling kernels.
//
// The lane types mirror the shape of hardware vector registers: Int64x2 and
// Uint8x16 are 128 bits wide (SSE4.1, NEON), Int64x4 and Uint8x32 are 256 bits
// wide (AVX2). Byte shuffles follow PSHUFB semantics, including the per
// 128-bit block restriction of the 256-bit form, so kernels written against
// these types keep the lane layout of their register counterparts.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-resample/hwy"
//
//	src := hwy.LoadUint8x16Slice(bytes)
//	lanes := src.Shuffle(&table).AsInt64x2()
//	sum := acc.Add(lanes.Mul(weights))
//	total := sum.ReduceSum()
package hwy

// Samples is a constraint for the sample types a lane loader can widen.
type Samples interface {
	~uint8 | ~uint16
}
