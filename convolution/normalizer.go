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

	"github.com/ajroetker/go-resample/pixel"
)

// MaxPrecision is the largest number of fractional bits a Normalizer uses.
const MaxPrecision = 30

// accumulatorLimit bounds the magnitude of any per-pixel accumulator and of
// every partial sum. Below 2^53 the sums are exact in float64 lanes as well
// as in int64.
const accumulatorLimit = 1 << 53

// Chunk holds the fixed-point weights of one destination pixel.
type Chunk struct {
	Start  int
	Values []int32
}

// Normalizer is the fixed-point form of a Coefficients value for pixel type P.
// Weights are scaled by 2^Precision; a dot product of samples with a chunk
// plus HalfError, shifted right by Precision, is the rounded result.
//
// A Normalizer is immutable and may be shared by concurrent passes.
type Normalizer[P pixel.Pixel] struct {
	precision  uint
	windowSize int
	chunks     []Chunk
	bounds     []Bound
}

// NewNormalizer converts c to fixed point at the highest precision for which
// no accumulator over P can overflow.
func NewNormalizer[P pixel.Pixel](c *Coefficients) (*Normalizer[P], error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	maxAbs := maxAbsWeight(c)
	for p := MaxPrecision; p > 0; p-- {
		if precisionFits[P](maxAbs, c.WindowSize, p) {
			return newNormalizer[P](c, p), nil
		}
	}
	return nil, fmt.Errorf("%w: weights up to %g over %d taps do not fit %s fixed point",
		ErrContractViolation, maxAbs, c.WindowSize, pixel.Name[P]())
}

// NewNormalizerWithPrecision converts c to fixed point with the given number
// of fractional bits, which must be in [1, MaxPrecision] and must not allow
// the accumulator to overflow.
func NewNormalizerWithPrecision[P pixel.Pixel](c *Coefficients, precision int) (*Normalizer[P], error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if precision < 1 || precision > MaxPrecision {
		return nil, fmt.Errorf("%w: precision %d outside [1, %d]", ErrContractViolation, precision, MaxPrecision)
	}
	if !precisionFits[P](maxAbsWeight(c), c.WindowSize, precision) {
		return nil, fmt.Errorf("%w: precision %d overflows the %s accumulator",
			ErrContractViolation, precision, pixel.Name[P]())
	}
	return newNormalizer[P](c, precision), nil
}

func maxAbsWeight(c *Coefficients) float64 {
	m := 0.0
	for i := range c.Bounds {
		for _, w := range c.Weights(i) {
			m = max(m, math.Abs(w))
		}
	}
	return m
}

// precisionFits reports whether every rounded weight fits an int32 and the
// worst case accumulator stays below accumulatorLimit. Rounding moves a
// weight by at most one unit.
func precisionFits[P pixel.Pixel](maxAbs float64, windowSize, precision int) bool {
	unit := math.Ldexp(1, precision)
	maxWeight := maxAbs*unit + 1
	if maxWeight > math.MaxInt32 {
		return false
	}
	worst := float64(pixel.Max[P]())*maxWeight*float64(windowSize) + unit/2
	return worst < accumulatorLimit
}

func newNormalizer[P pixel.Pixel](c *Coefficients, precision int) *Normalizer[P] {
	unit := math.Ldexp(1, precision)
	values := make([]int32, len(c.Values))
	chunks := make([]Chunk, len(c.Bounds))
	for i, b := range c.Bounds {
		dst := values[i*c.WindowSize : i*c.WindowSize+b.Size]
		// Round prefix sums so the rounding error does not accumulate.
		prefix, prev := 0.0, 0.0
		for k, w := range c.Weights(i) {
			prefix += w
			cur := math.Round(prefix * unit)
			dst[k] = int32(cur - prev)
			prev = cur
		}
		chunks[i] = Chunk{Start: b.Start, Values: dst}
	}
	bounds := make([]Bound, len(c.Bounds))
	copy(bounds, c.Bounds)
	return &Normalizer[P]{
		precision:  uint(precision),
		windowSize: c.WindowSize,
		chunks:     chunks,
		bounds:     bounds,
	}
}

// Precision returns the number of fractional bits of the weights.
func (n *Normalizer[P]) Precision() int {
	return int(n.precision)
}

// WindowSize returns the largest number of taps in any chunk.
func (n *Normalizer[P]) WindowSize() int {
	return n.windowSize
}

// Len returns the number of chunks, one per destination pixel.
func (n *Normalizer[P]) Len() int {
	return len(n.chunks)
}

// Chunks returns the fixed-point weights. The result must not be modified.
func (n *Normalizer[P]) Chunks() []Chunk {
	return n.chunks
}

// Bounds returns the source window of every chunk.
func (n *Normalizer[P]) Bounds() []Bound {
	return n.bounds
}

// HalfError is the rounding bias added to every accumulator before Clip.
func (n *Normalizer[P]) HalfError() int64 {
	return 1 << (n.precision - 1)
}

// Clip converts an accumulator to a sample, saturating to the range of P.
func (n *Normalizer[P]) Clip(sum int64) P {
	v := sum >> n.precision
	if v < 0 {
		return 0
	}
	if m := pixel.Max[P](); v > m {
		return P(m)
	}
	return P(v)
}

// Rows returns n restricted to destination indices [lo, hi). It is the
// normalizer of a vertical pass over that row range.
func (n *Normalizer[P]) Rows(lo, hi int) *Normalizer[P] {
	return &Normalizer[P]{
		precision:  n.precision,
		windowSize: n.windowSize,
		chunks:     n.chunks[lo:hi],
		bounds:     n.bounds[lo:hi],
	}
}
