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
	"image"
	"image/color"
	"testing"

	"github.com/ajroetker/go-resample/pixel"
)

func TestFromGray(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 6, 4))
	for y := range 4 {
		for x := range 6 {
			src.SetGray(x, y, color.Gray{Y: uint8(10*y + x)})
		}
	}

	img := FromGray(src)
	if img.Width() != 6 || img.Height() != 4 {
		t.Fatalf("size: got %dx%d, want 6x4", img.Width(), img.Height())
	}
	if got := img.At(5, 3); got != 35 {
		t.Errorf("At(5, 3): got %d, want 35", got)
	}

	// Wrapping is zero copy.
	img.Set(0, 0, 200)
	if src.GrayAt(0, 0).Y != 200 {
		t.Error("FromGray copied the pixels")
	}

	// A sub-image keeps its offset and stride.
	sub := FromGray(src.SubImage(image.Rect(2, 1, 5, 3)).(*image.Gray))
	if sub.Width() != 3 || sub.Height() != 2 {
		t.Fatalf("sub size: got %dx%d, want 3x2", sub.Width(), sub.Height())
	}
	if got := sub.At(0, 1); got != 22 {
		t.Errorf("sub At(0, 1): got %d, want 22", got)
	}

	back := ToGray(sub.View())
	if back.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Errorf("ToGray bounds: got %v", back.Bounds())
	}
	if got := back.GrayAt(2, 0).Y; got != 14 {
		t.Errorf("ToGray(2, 0): got %d, want 14", got)
	}
}

func TestGray16RoundTrip(t *testing.T) {
	src := image.NewGray16(image.Rect(0, 0, 3, 2))
	src.SetGray16(2, 1, color.Gray16{Y: 0xBEEF})
	src.SetGray16(0, 0, color.Gray16{Y: 0x0102})

	img := FromGray16(src)
	if got := img.At(2, 1); got != pixel.U16(0xBEEF) {
		t.Errorf("At(2, 1): got %#x, want 0xbeef", got)
	}
	if got := img.At(0, 0); got != pixel.U16(0x0102) {
		t.Errorf("At(0, 0): got %#x, want 0x102", got)
	}

	back := ToGray16(img.View())
	if got := back.Gray16At(2, 1).Y; got != 0xBEEF {
		t.Errorf("ToGray16(2, 1): got %#x, want 0xbeef", got)
	}
}
