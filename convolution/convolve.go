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

	"github.com/ajroetker/go-resample/imageview"
	"github.com/ajroetker/go-resample/pixel"
)

// HorizontalConvolve resamples the rows of src into dst. Destination row y
// is computed from source row y+offset; destination column x from the window
// c.Bounds[x].
func HorizontalConvolve[P pixel.Pixel](src imageview.View[P], dst imageview.ViewMut[P], offset int, c *Coefficients, ext CPUExtension) error {
	if err := ValidateHorizontal(src, dst, offset, c.Bounds); err != nil {
		return err
	}
	n, err := NewNormalizer[P](c)
	if err != nil {
		return err
	}
	KernelFor[P](ext).Horizontal(src, dst, offset, n)
	return nil
}

// VerticalConvolve resamples the columns of src into dst. Destination row y
// is computed from the source rows c.Bounds[y].
func VerticalConvolve[P pixel.Pixel](src imageview.View[P], dst imageview.ViewMut[P], c *Coefficients, ext CPUExtension) error {
	if err := ValidateVertical(src, dst, c.Bounds); err != nil {
		return err
	}
	n, err := NewNormalizer[P](c)
	if err != nil {
		return err
	}
	KernelFor[P](ext).Vertical(src, dst, n)
	return nil
}

// HorizontalConvolveNormalized is HorizontalConvolve with a prebuilt
// normalizer and kernel. Callers splitting dst into row ranges share n and k
// between the ranges and pass offset plus the range start.
func HorizontalConvolveNormalized[P pixel.Pixel](src imageview.View[P], dst imageview.ViewMut[P], offset int, n *Normalizer[P], k Kernel[P]) error {
	if err := ValidateHorizontal(src, dst, offset, n.Bounds()); err != nil {
		return err
	}
	k.Horizontal(src, dst, offset, n)
	return nil
}

// VerticalConvolveNormalized is VerticalConvolve with a prebuilt normalizer
// and kernel. For a row range [lo, hi) of dst pass n.Rows(lo, hi).
func VerticalConvolveNormalized[P pixel.Pixel](src imageview.View[P], dst imageview.ViewMut[P], n *Normalizer[P], k Kernel[P]) error {
	if err := ValidateVertical(src, dst, n.Bounds()); err != nil {
		return err
	}
	k.Vertical(src, dst, n)
	return nil
}

// ValidateHorizontal checks that a horizontal pass of src into dst with the
// given windows stays inside both views.
func ValidateHorizontal[P pixel.Pixel](src imageview.View[P], dst imageview.ViewMut[P], offset int, bounds []Bound) error {
	if len(bounds) != dst.Width() {
		return fmt.Errorf("%w: %d windows for destination width %d", ErrContractViolation, len(bounds), dst.Width())
	}
	if offset < 0 || offset > src.Height()-dst.Height() {
		return fmt.Errorf("%w: %d rows at offset %d outside source height %d",
			ErrContractViolation, dst.Height(), offset, src.Height())
	}
	if err := checkBounds(bounds, src.Width(), "width"); err != nil {
		return err
	}
	return checkAliasing(src, dst)
}

// ValidateVertical checks that a vertical pass of src into dst with the
// given windows stays inside both views.
func ValidateVertical[P pixel.Pixel](src imageview.View[P], dst imageview.ViewMut[P], bounds []Bound) error {
	if len(bounds) != dst.Height() {
		return fmt.Errorf("%w: %d windows for destination height %d", ErrContractViolation, len(bounds), dst.Height())
	}
	if dst.Width() != src.Width() {
		return fmt.Errorf("%w: destination width %d, source width %d", ErrContractViolation, dst.Width(), src.Width())
	}
	if err := checkBounds(bounds, src.Height(), "height"); err != nil {
		return err
	}
	return checkAliasing(src, dst)
}

func checkBounds(bounds []Bound, extent int, axis string) error {
	for i, b := range bounds {
		// Written without b.End so that a Start near MaxInt cannot wrap.
		if b.Start < 0 || b.Size < 1 || b.Start > extent || b.Size > extent-b.Start {
			return fmt.Errorf("%w: window %d of %d pixels at %d outside source %s %d",
				ErrContractViolation, i, b.Size, b.Start, axis, extent)
		}
	}
	return nil
}

func checkAliasing[P pixel.Pixel](src imageview.View[P], dst imageview.ViewMut[P]) error {
	if imageview.Overlaps(src, dst) {
		return fmt.Errorf("%w: source and destination overlap", ErrContractViolation)
	}
	return nil
}
