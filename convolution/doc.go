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

// Package convolution implements separable resampling by fixed-point
// convolution.
//
// A resize along one axis is a set of per-destination-pixel weight windows
// (Coefficients) built from a Filter. The windows are converted once into
// integer weights by a Normalizer and then applied to every row
// (HorizontalConvolve) or every column (VerticalConvolve) of an image.
//
// # Backends
//
// Every pass runs on a Kernel chosen by KernelFor from a CPUExtension:
//
//   - Native computes one tap at a time with scalar int64 arithmetic.
//   - SSE41 and NEON map to a 128-bit lane kernel: pairs of taps per
//     hwy.Int64x2, samples placed by byte shuffles.
//   - AVX2 maps to a 256-bit lane kernel: four taps per hwy.Int64x4, in
//     groups of 16, 8 and 4 taps.
//
// All backends produce bit-identical output. Extensions not compiled for the
// current GOARCH resolve to Native (see Resolve).
//
// # Example
//
//	c, err := convolution.BuildCoefficients(src.Width(), dst.Width(), convolution.Lanczos3)
//	if err != nil {
//	    return err
//	}
//	err = convolution.HorizontalConvolve(src, dst, 0, c, convolution.DetectCPUExtension())
//
// The package never allocates image memory and never logs. A single call is
// single-threaded; callers may run disjoint destination row ranges
// concurrently with HorizontalConvolveNormalized and VerticalConvolveNormalized.
package convolution
