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
	"encoding/binary"
	"image"
	"unsafe"

	"github.com/ajroetker/go-resample/pixel"
)

// FromGray wraps the pixels of img without copying.
func FromGray(img *image.Gray) *Image[pixel.U8] {
	r := img.Rect
	if r.Empty() {
		return &Image[pixel.U8]{}
	}
	off := img.PixOffset(r.Min.X, r.Min.Y)
	raw := img.Pix[off:]
	pix := unsafe.Slice((*pixel.U8)(unsafe.Pointer(unsafe.SliceData(raw))), len(raw))
	return &Image[pixel.U8]{pix: pix, width: r.Dx(), height: r.Dy(), stride: img.Stride}
}

// ToGray copies v into a new *image.Gray anchored at the origin.
func ToGray(v View[pixel.U8]) *image.Gray {
	dst := image.NewGray(image.Rect(0, 0, v.Width(), v.Height()))
	for y := range v.Height() {
		row := dst.Pix[y*dst.Stride : y*dst.Stride+v.Width()]
		for x, p := range v.Row(y) {
			row[x] = uint8(p)
		}
	}
	return dst
}

// FromGray16 copies img into a new 16-bit image. image.Gray16 stores
// big-endian samples, so it cannot be wrapped in place.
func FromGray16(img *image.Gray16) *Image[pixel.U16] {
	r := img.Rect
	dst := New[pixel.U16](r.Dx(), r.Dy())
	for y := range dst.Height() {
		off := img.PixOffset(r.Min.X, r.Min.Y+y)
		row := dst.Row(y)
		for x := range row {
			row[x] = pixel.U16(binary.BigEndian.Uint16(img.Pix[off+2*x:]))
		}
	}
	return dst
}

// ToGray16 copies v into a new *image.Gray16 anchored at the origin.
func ToGray16(v View[pixel.U16]) *image.Gray16 {
	dst := image.NewGray16(image.Rect(0, 0, v.Width(), v.Height()))
	for y := range v.Height() {
		off := y * dst.Stride
		for x, p := range v.Row(y) {
			binary.BigEndian.PutUint16(dst.Pix[off+2*x:], uint16(p))
		}
	}
	return dst
}
