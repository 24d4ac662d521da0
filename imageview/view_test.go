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
	"errors"
	"testing"

	"github.com/ajroetker/go-resample/pixel"
)

func newRamp(w, h int) *Image[pixel.U8] {
	img := New[pixel.U8](w, h)
	for y := range h {
		for x := range w {
			img.Set(x, y, pixel.U8(y*w+x))
		}
	}
	return img
}

func TestView_Rows(t *testing.T) {
	img := newRamp(6, 5)
	v := img.View()

	if v.Width() != 6 || v.Height() != 5 {
		t.Fatalf("size: got %dx%d, want 6x5", v.Width(), v.Height())
	}
	for y := range 5 {
		row := v.Row(y)
		if len(row) != 6 || cap(row) != 6 {
			t.Errorf("Row(%d): len %d cap %d, want 6 6", y, len(row), cap(row))
		}
		if row[0] != pixel.U8(y*6) {
			t.Errorf("Row(%d)[0]: got %d, want %d", y, row[0], y*6)
		}
	}

	rows := v.FourRows(1)
	for i, row := range rows {
		if row[2] != pixel.U8((1+i)*6+2) {
			t.Errorf("FourRows(1)[%d][2]: got %d, want %d", i, row[2], (1+i)*6+2)
		}
	}
}

func TestView_SubRows(t *testing.T) {
	img := newRamp(4, 6)
	sub := img.View().SubRows(2, 5)

	if sub.Height() != 3 {
		t.Fatalf("Height: got %d, want 3", sub.Height())
	}
	if got := sub.Row(0)[1]; got != 2*4+1 {
		t.Errorf("Row(0)[1]: got %d, want %d", got, 2*4+1)
	}
	if got := sub.Row(2)[3]; got != 4*4+3 {
		t.Errorf("Row(2)[3]: got %d, want %d", got, 4*4+3)
	}

	empty := img.View().SubRows(3, 3)
	if empty.Height() != 0 {
		t.Errorf("empty SubRows height: got %d, want 0", empty.Height())
	}
}

func TestView_SubView(t *testing.T) {
	img := newRamp(8, 8)
	v, err := img.View().SubView(Rect{X0: 2, Y0: 3, X1: 6, Y1: 5})
	if err != nil {
		t.Fatalf("SubView: %v", err)
	}
	if v.Width() != 4 || v.Height() != 2 {
		t.Fatalf("size: got %dx%d, want 4x2", v.Width(), v.Height())
	}
	if got := v.Row(1)[0]; got != 4*8+2 {
		t.Errorf("Row(1)[0]: got %d, want %d", got, 4*8+2)
	}

	if _, err := img.View().SubView(Rect{X0: 0, Y0: 0, X1: 9, Y1: 1}); !errors.Is(err, ErrInvalidBuffer) {
		t.Errorf("out of range SubView: got %v, want ErrInvalidBuffer", err)
	}
}

func TestViewMut_SplitRows(t *testing.T) {
	img := New[pixel.U16](5, 9)
	top, bottom := img.ViewMut().SplitRows(4)

	if top.Height() != 4 || bottom.Height() != 5 {
		t.Fatalf("heights: got %d/%d, want 4/5", top.Height(), bottom.Height())
	}
	if Overlaps(top.View(), bottom) {
		t.Error("split halves overlap")
	}

	top.Fill(1)
	bottom.Fill(2)
	for y := range 9 {
		want := pixel.U16(1)
		if y >= 4 {
			want = 2
		}
		for x := range 5 {
			if img.At(x, y) != want {
				t.Fatalf("At(%d, %d): got %d, want %d", x, y, img.At(x, y), want)
			}
		}
	}

	all, none := img.ViewMut().SplitRows(100)
	if all.Height() != 9 || none.Height() != 0 {
		t.Errorf("clamped split: got %d/%d, want 9/0", all.Height(), none.Height())
	}
}

func TestViewMut_CopyFrom(t *testing.T) {
	src := newRamp(5, 3)
	dst := New[pixel.U8](5, 3)

	if err := dst.ViewMut().CopyFrom(src.View()); err != nil {
		t.Fatalf("CopyFrom: %v", err)
	}
	for y := range 3 {
		for x := range 5 {
			if dst.At(x, y) != src.At(x, y) {
				t.Errorf("At(%d, %d): got %d, want %d", x, y, dst.At(x, y), src.At(x, y))
			}
		}
	}

	other := New[pixel.U8](4, 3)
	if err := other.ViewMut().CopyFrom(src.View()); !errors.Is(err, ErrInvalidBuffer) {
		t.Errorf("mismatched CopyFrom: got %v, want ErrInvalidBuffer", err)
	}
}

func TestOverlaps(t *testing.T) {
	a := New[pixel.U8](10, 10)
	b := New[pixel.U8](10, 10)

	if Overlaps(a.View(), b.ViewMut()) {
		t.Error("distinct images overlap")
	}
	if !Overlaps(a.View(), a.ViewMut()) {
		t.Error("image does not overlap itself")
	}

	// Side-by-side columns share rows in memory.
	left, _ := a.View().SubView(Rect{X0: 0, Y0: 0, X1: 5, Y1: 10})
	right := a.ViewMut().SubRows(0, 10)
	if !Overlaps(left, right) {
		t.Error("interleaved views should overlap")
	}

	var empty View[pixel.U8]
	if Overlaps(empty, a.ViewMut()) {
		t.Error("empty view overlaps")
	}
}
