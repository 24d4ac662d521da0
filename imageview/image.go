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

// Package imageview provides row-major pixel buffers and the zero-copy views
// the convolution kernels read from and write to.
//
// An Image owns a buffer whose rows are padded to the widest vector width.
// A View is a read-only window over a rectangular region; a ViewMut is an
// exclusive writable window. Views never copy pixels.
//
// Example usage:
//
//	img := imageview.New[pixel.U8](640, 480)
//	src := img.View()
//	for y := 0; y < src.Height(); y++ {
//	    row := src.Row(y)
//	    // row has exactly src.Width() samples
//	}
//
// # Aliasing
//
// A ViewMut must not overlap any other live view over the same rows while a
// pass runs. Use ViewMut.SplitRows to hand disjoint row ranges to workers and
// Overlaps to check a source/destination pair.
package imageview

import (
	"errors"
	"fmt"

	"github.com/ajroetker/go-resample/pixel"
)

// ErrInvalidBuffer reports a buffer too small for the requested geometry.
var ErrInvalidBuffer = errors.New("imageview: invalid buffer")

// rowAlignBytes is the row padding granularity: one 256-bit vector.
const rowAlignBytes = 32

// Image is a single-channel 2D pixel buffer with padded rows.
type Image[P pixel.Pixel] struct {
	pix    []P
	width  int
	height int
	stride int // elements per row (includes padding)
}

// New creates a zeroed image with the specified dimensions.
// Rows are padded to a multiple of 32 bytes.
func New[P pixel.Pixel](width, height int) *Image[P] {
	if width <= 0 || height <= 0 {
		return &Image[P]{}
	}

	lanes := rowAlignBytes / pixel.Size[P]()
	stride := ((width + lanes - 1) / lanes) * lanes

	return &Image[P]{
		pix:    make([]P, stride*height),
		width:  width,
		height: height,
		stride: stride,
	}
}

// NewFromBuffer wraps an existing buffer without copying.
// stride is the distance in elements between the starts of two rows.
func NewFromBuffer[P pixel.Pixel](pix []P, width, height, stride int) (*Image[P], error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: negative size %dx%d", ErrInvalidBuffer, width, height)
	}
	if width == 0 || height == 0 {
		return &Image[P]{}, nil
	}
	if stride < width {
		return nil, fmt.Errorf("%w: stride %d < width %d", ErrInvalidBuffer, stride, width)
	}
	if need := (height-1)*stride + width; len(pix) < need {
		return nil, fmt.Errorf("%w: %d elements, need %d for %dx%d stride %d",
			ErrInvalidBuffer, len(pix), need, width, height, stride)
	}
	return &Image[P]{pix: pix, width: width, height: height, stride: stride}, nil
}

// Width returns the image width in pixels.
func (img *Image[P]) Width() int {
	return img.width
}

// Height returns the image height in pixels.
func (img *Image[P]) Height() int {
	return img.height
}

// Stride returns the number of elements per row (including padding).
func (img *Image[P]) Stride() int {
	return img.stride
}

// Pix returns the underlying buffer.
func (img *Image[P]) Pix() []P {
	return img.pix
}

// Row returns a mutable slice for row y, limited to the image width.
func (img *Image[P]) Row(y int) []P {
	if y < 0 || y >= img.height {
		return nil
	}
	start := y * img.stride
	return img.pix[start : start+img.width]
}

// At returns the value at position (x, y), or zero out of bounds.
func (img *Image[P]) At(x, y int) P {
	if x < 0 || x >= img.width || y < 0 || y >= img.height {
		var zero P
		return zero
	}
	return img.pix[y*img.stride+x]
}

// Set sets the value at position (x, y). Out of bounds is a no-op.
func (img *Image[P]) Set(x, y int, value P) {
	if x < 0 || x >= img.width || y < 0 || y >= img.height {
		return
	}
	img.pix[y*img.stride+x] = value
}

// Fill sets all pixels to value.
func (img *Image[P]) Fill(value P) {
	for y := range img.height {
		row := img.Row(y)
		for i := range row {
			row[i] = value
		}
	}
}

// Clone creates a deep copy of the image.
func (img *Image[P]) Clone() *Image[P] {
	clone := &Image[P]{
		pix:    make([]P, len(img.pix)),
		width:  img.width,
		height: img.height,
		stride: img.stride,
	}
	copy(clone.pix, img.pix)
	return clone
}

// View returns a read-only view of the whole image.
func (img *Image[P]) View() View[P] {
	return View[P]{pix: img.pix, width: img.width, height: img.height, stride: img.stride}
}

// ViewMut returns an exclusive writable view of the whole image.
func (img *Image[P]) ViewMut() ViewMut[P] {
	return ViewMut[P]{pix: img.pix, width: img.width, height: img.height, stride: img.stride}
}

// Bounds returns the bounding rectangle of the image.
func (img *Image[P]) Bounds() Rect {
	return Rect{X0: 0, Y0: 0, X1: img.width, Y1: img.height}
}

// Rect defines a rectangular region within an image.
type Rect struct {
	X0, Y0 int // Top-left corner (inclusive)
	X1, Y1 int // Bottom-right corner (exclusive)
}

// Width returns the rectangle width.
func (r Rect) Width() int {
	return r.X1 - r.X0
}

// Height returns the rectangle height.
func (r Rect) Height() int {
	return r.Y1 - r.Y0
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.X1 <= r.X0 || r.Y1 <= r.Y0
}

// In reports whether r lies inside a w x h image.
func (r Rect) In(w, h int) bool {
	return r.X0 >= 0 && r.Y0 >= 0 && r.X1 <= w && r.Y1 <= h && r.X0 <= r.X1 && r.Y0 <= r.Y1
}
