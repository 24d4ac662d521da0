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
	"math"
)

// Bound is the window of source pixels contributing to one destination pixel.
type Bound struct {
	Start int
	Size  int
}

// End returns the index one past the last source pixel of the window.
func (b Bound) End() int {
	return b.Start + b.Size
}

// Coefficients holds the weight windows of a one-dimensional resample.
//
// Values is laid out with stride WindowSize: the weights of destination
// index i start at Values[i*WindowSize] and Bounds[i].Size of them are used.
// The weights of every window sum to 1.
type Coefficients struct {
	WindowSize int
	Bounds     []Bound
	Values     []float64
}

// Len returns the number of destination pixels.
func (c *Coefficients) Len() int {
	return len(c.Bounds)
}

// Weights returns the weights of destination index i.
func (c *Coefficients) Weights(i int) []float64 {
	start := i * c.WindowSize
	return c.Values[start : start+c.Bounds[i].Size]
}

// Validate checks the layout of c: every window has between one and
// WindowSize taps and Values holds WindowSize weights per window.
func (c *Coefficients) Validate() error {
	if len(c.Bounds) > 0 && c.WindowSize < 1 {
		return fmt.Errorf("%w: window size %d", ErrContractViolation, c.WindowSize)
	}
	if need := len(c.Bounds) * c.WindowSize; len(c.Values) < need {
		return fmt.Errorf("%w: %d weights for %d windows of %d",
			ErrContractViolation, len(c.Values), len(c.Bounds), c.WindowSize)
	}
	for i, b := range c.Bounds {
		if b.Size < 1 || b.Size > c.WindowSize {
			return fmt.Errorf("%w: window %d has %d taps, want 1..%d",
				ErrContractViolation, i, b.Size, c.WindowSize)
		}
	}
	return nil
}

// Span returns the range [first, last) of source indices read by any window.
func (c *Coefficients) Span() (first, last int) {
	if len(c.Bounds) == 0 {
		return 0, 0
	}
	first, last = c.Bounds[0].Start, c.Bounds[0].End()
	for _, b := range c.Bounds[1:] {
		first = min(first, b.Start)
		last = max(last, b.End())
	}
	return first, last
}

// Shifted returns a copy of c with every window start moved by delta.
// Values are shared with c.
func (c *Coefficients) Shifted(delta int) *Coefficients {
	bounds := make([]Bound, len(c.Bounds))
	for i, b := range c.Bounds {
		bounds[i] = Bound{Start: b.Start + delta, Size: b.Size}
	}
	return &Coefficients{WindowSize: c.WindowSize, Bounds: bounds, Values: c.Values}
}

// BuildCoefficients computes the windows resampling srcLen pixels to dstLen
// pixels with filter f.
func BuildCoefficients(srcLen, dstLen int, f Filter) (*Coefficients, error) {
	return BuildCroppedCoefficients(srcLen, dstLen, 0, float64(srcLen), f)
}

// BuildCroppedCoefficients computes the windows resampling the source region
// [cropStart, cropStart+cropSize) to dstLen pixels. The crop may be
// fractional; windows are still clipped to the whole source [0, srcLen).
func BuildCroppedCoefficients(srcLen, dstLen int, cropStart, cropSize float64, f Filter) (*Coefficients, error) {
	if srcLen <= 0 || dstLen <= 0 {
		return nil, fmt.Errorf("%w: resample %d to %d pixels", ErrInvalidSize, srcLen, dstLen)
	}
	if !(cropSize > 0) || cropStart < 0 || cropStart+cropSize > float64(srcLen) {
		return nil, fmt.Errorf("%w: crop [%g, %g) outside source of %d pixels",
			ErrInvalidSize, cropStart, cropStart+cropSize, srcLen)
	}
	if f.Kernel == nil {
		return nil, fmt.Errorf("%w: filter %q has no kernel", ErrUnknownFilter, f.Name)
	}
	if f.Support < 0 || math.IsNaN(f.Support) || math.IsInf(f.Support, 0) {
		return nil, fmt.Errorf("%w: filter %q support %g", ErrInvalidSize, f.Name, f.Support)
	}

	scale := cropSize / float64(dstLen)
	filterScale := max(scale, 1)
	// No window is wider than the source, so the radius is clamped there
	// before it is converted to an int.
	radius := min(f.Support*filterScale, float64(srcLen))

	// Each window spans at most ceil(2*radius)+1 source pixels before clipping.
	capacity := min(int(math.Ceil(2*radius))+2, srcLen)
	scratch := make([]float64, dstLen*capacity)
	bounds := make([]Bound, dstLen)
	windowSize := 0

	for i := range dstLen {
		center := cropStart + (float64(i)+0.5)*scale
		lo := max(int(math.Floor(center-radius)), 0)
		hi := min(int(math.Ceil(center+radius)), srcLen)
		hi = min(hi, lo+capacity)

		w := scratch[i*capacity : i*capacity+capacity]
		sum := 0.0
		for x := lo; x < hi; x++ {
			v := f.Kernel((float64(x) - center + 0.5) / filterScale)
			w[x-lo] = v
			sum += v
		}

		if hi <= lo || sum == 0 {
			start := min(max(int(math.Floor(center)), 0), srcLen-1)
			clear(w)
			w[0] = 1
			bounds[i] = Bound{Start: start, Size: 1}
			windowSize = max(windowSize, 1)
			continue
		}

		n := hi - lo
		for k := range n {
			w[k] /= sum
		}

		// Trim zero weights at both ends.
		first, last := 0, n
		for first < last && w[first] == 0 {
			first++
		}
		for last > first && w[last-1] == 0 {
			last--
		}
		if first > 0 {
			copy(w, w[first:last])
		}
		size := last - first
		bounds[i] = Bound{Start: lo + first, Size: size}
		windowSize = max(windowSize, size)
	}

	values := make([]float64, dstLen*windowSize)
	for i, b := range bounds {
		copy(values[i*windowSize:], scratch[i*capacity:i*capacity+b.Size])
	}
	return &Coefficients{WindowSize: windowSize, Bounds: bounds, Values: values}, nil
}
