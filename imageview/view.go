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

package imageview

import (
	"fmt"
	"unsafe"

	"github.com/ajroetker/go-resample/pixel"
)

// BatchRows is the number of rows a FourRows batch carries.
const BatchRows = 4

// FourRows holds BatchRows consecutive rows of a view, indexed from the top.
// Every row has the same length.
type FourRows[P pixel.Pixel] [BatchRows][]P

// View is a read-only window over a rectangular pixel region.
//
// Go cannot forbid writes through the slices a View returns; callers treat
// them as immutable for as long as any ViewMut over the same rows exists.
type View[P pixel.Pixel] struct {
	pix    []P
	width  int
	height int
	stride int
}

// ViewMut is an exclusive writable window over a rectangular pixel region.
type ViewMut[P pixel.Pixel] struct {
	pix    []P
	width  int
	height int
	stride int
}

// subSlice returns the span of pix covered by r, from its first to its last
// pixel inclusive.
func subSlice[P pixel.Pixel](pix []P, stride int, r Rect) []P {
	if r.IsEmpty() {
		return nil
	}
	start := r.Y0*stride + r.X0
	end := (r.Y1-1)*stride + r.X1
	return pix[start:end:end]
}

// Width returns the number of pixels per row.
func (v View[P]) Width() int {
	return v.width
}

// Height returns the number of rows.
func (v View[P]) Height() int {
	return v.height
}

// Row returns row y, exactly Width() samples long.
func (v View[P]) Row(y int) []P {
	start := y * v.stride
	end := start + v.width
	return v.pix[start:end:end]
}

// FourRows returns rows y..y+3.
func (v View[P]) FourRows(y int) FourRows[P] {
	return FourRows[P]{v.Row(y), v.Row(y + 1), v.Row(y + 2), v.Row(y + 3)}
}

// SubRows returns the view of rows [y0, y1).
func (v View[P]) SubRows(y0, y1 int) View[P] {
	r := Rect{X0: 0, Y0: y0, X1: v.width, Y1: y1}
	return View[P]{pix: subSlice(v.pix, v.stride, r), width: v.width, height: max(y1-y0, 0), stride: v.stride}
}

// SubView returns the view of r, which must lie inside v.
func (v View[P]) SubView(r Rect) (View[P], error) {
	if !r.In(v.width, v.height) {
		return View[P]{}, fmt.Errorf("%w: rect %+v outside %dx%d view", ErrInvalidBuffer, r, v.width, v.height)
	}
	if r.IsEmpty() {
		return View[P]{}, nil
	}
	return View[P]{pix: subSlice(v.pix, v.stride, r), width: r.Width(), height: r.Height(), stride: v.stride}, nil
}

// Width returns the number of pixels per row.
func (v ViewMut[P]) Width() int {
	return v.width
}

// Height returns the number of rows.
func (v ViewMut[P]) Height() int {
	return v.height
}

// Row returns writable row y, exactly Width() samples long.
func (v ViewMut[P]) Row(y int) []P {
	start := y * v.stride
	end := start + v.width
	return v.pix[start:end:end]
}

// FourRows returns writable rows y..y+3.
func (v ViewMut[P]) FourRows(y int) FourRows[P] {
	return FourRows[P]{v.Row(y), v.Row(y + 1), v.Row(y + 2), v.Row(y + 3)}
}

// SubRows returns the writable view of rows [y0, y1). The receiver must not
// be used for those rows while the result is live.
func (v ViewMut[P]) SubRows(y0, y1 int) ViewMut[P] {
	r := Rect{X0: 0, Y0: y0, X1: v.width, Y1: y1}
	return ViewMut[P]{pix: subSlice(v.pix, v.stride, r), width: v.width, height: max(y1-y0, 0), stride: v.stride}
}

// SplitRows partitions v into rows [0, at) and [at, Height()). The halves
// never alias, so they can be written concurrently.
func (v ViewMut[P]) SplitRows(at int) (ViewMut[P], ViewMut[P]) {
	at = min(max(at, 0), v.height)
	return v.SubRows(0, at), v.SubRows(at, v.height)
}

// View returns a read-only view of the same region. The caller gives up
// writing through v while the returned view is in use.
func (v ViewMut[P]) View() View[P] {
	return View[P]{pix: v.pix, width: v.width, height: v.height, stride: v.stride}
}

// CopyFrom copies src into v. Both must have the same size.
func (v ViewMut[P]) CopyFrom(src View[P]) error {
	if src.width != v.width || src.height != v.height {
		return fmt.Errorf("%w: copy %dx%d into %dx%d", ErrInvalidBuffer, src.width, src.height, v.width, v.height)
	}
	for y := range v.height {
		copy(v.Row(y), src.Row(y))
	}
	return nil
}

// Fill sets every pixel of v to value.
func (v ViewMut[P]) Fill(value P) {
	for y := range v.height {
		row := v.Row(y)
		for i := range row {
			row[i] = value
		}
	}
}

// Overlaps reports whether the memory spanned by a and b intersects.
// Views interleaved by stride (side-by-side columns) count as overlapping.
func Overlaps[P pixel.Pixel](a View[P], b ViewMut[P]) bool {
	if len(a.pix) == 0 || len(b.pix) == 0 {
		return false
	}
	size := uintptr(pixel.Size[P]())
	aStart := uintptr(unsafe.Pointer(unsafe.SliceData(a.pix)))
	aEnd := aStart + uintptr(len(a.pix))*size
	bStart := uintptr(unsafe.Pointer(unsafe.SliceData(b.pix)))
	bEnd := bStart + uintptr(len(b.pix))*size
	return aStart < bEnd && bStart < aEnd
}
