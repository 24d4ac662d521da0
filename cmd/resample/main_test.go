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

package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/ajroetker/go-resample/convolution"
)

func writeTestPNG(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, color.RGBA{R: uint8(x * 4), G: uint8(y * 4), B: 128, A: 255})
		}
	}
	path := filepath.Join(t.TempDir(), "in.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func decodeFile(t *testing.T, path string, dec func(*os.File) (image.Image, error)) image.Image {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := dec(f)
	require.NoError(t, err)
	return img
}

func TestRun_PNG(t *testing.T) {
	in := writeTestPNG(t, 64, 32)
	out := filepath.Join(t.TempDir(), "out.png")

	var stderr bytes.Buffer
	require.NoError(t, run([]string{"-in", in, "-out", out, "-width", "16", "-v", "-cpu", "native"}, &stderr))

	img := decodeFile(t, out, func(f *os.File) (image.Image, error) { return png.Decode(f) })
	require.Equal(t, image.Rect(0, 0, 16, 8), img.Bounds(), "height follows the aspect ratio")
	require.IsType(t, &image.Gray{}, img)
	require.Contains(t, stderr.String(), "cpu=native")
}

func TestRun_Depth16(t *testing.T) {
	in := writeTestPNG(t, 40, 40)
	out := filepath.Join(t.TempDir(), "out.png")

	require.NoError(t, run([]string{"-in", in, "-out", out, "-width", "10", "-height", "20",
		"-depth", "16", "-filter", "mitchell", "-workers", "2"}, &bytes.Buffer{}))

	img := decodeFile(t, out, func(f *os.File) (image.Image, error) { return png.Decode(f) })
	require.Equal(t, image.Rect(0, 0, 10, 20), img.Bounds())
	require.IsType(t, &image.Gray16{}, img)
}

func TestRun_OutputFormats(t *testing.T) {
	in := writeTestPNG(t, 30, 30)
	dir := t.TempDir()

	bmpOut := filepath.Join(dir, "out.bmp")
	require.NoError(t, run([]string{"-in", in, "-out", bmpOut, "-height", "15"}, &bytes.Buffer{}))
	img := decodeFile(t, bmpOut, func(f *os.File) (image.Image, error) { return bmp.Decode(f) })
	require.Equal(t, image.Rect(0, 0, 15, 15), img.Bounds())

	tiffOut := filepath.Join(dir, "out.tiff")
	require.NoError(t, run([]string{"-in", bmpOut, "-out", tiffOut, "-width", "5"}, &bytes.Buffer{}))
	img = decodeFile(t, tiffOut, func(f *os.File) (image.Image, error) { return tiff.Decode(f) })
	require.Equal(t, image.Rect(0, 0, 5, 5), img.Bounds())
}

func TestRun_Errors(t *testing.T) {
	in := writeTestPNG(t, 8, 8)
	out := filepath.Join(t.TempDir(), "out.png")

	tests := []struct {
		name string
		args []string
		is   error
	}{
		{"missing in", []string{"-out", out, "-width", "4"}, nil},
		{"no size", []string{"-in", in, "-out", out}, nil},
		{"bad depth", []string{"-in", in, "-out", out, "-width", "4", "-depth", "12"}, nil},
		{"bad filter", []string{"-in", in, "-out", out, "-width", "4", "-filter", "gauss"}, convolution.ErrUnknownFilter},
		{"bad cpu", []string{"-in", in, "-out", out, "-width", "4", "-cpu", "avx512"}, convolution.ErrUnknownCPUExtension},
		{"missing file", []string{"-in", in + ".missing", "-out", out, "-width", "4"}, os.ErrNotExist},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(tt.args, &bytes.Buffer{})
			require.Error(t, err)
			if tt.is != nil {
				require.ErrorIs(t, err, tt.is)
			}
		})
	}
}

func TestTargetSize(t *testing.T) {
	b := image.Rect(0, 0, 300, 100)

	w, h, err := targetSize(b, 30, 0)
	require.NoError(t, err)
	require.Equal(t, [2]int{30, 10}, [2]int{w, h})

	w, h, err = targetSize(b, 0, 1)
	require.NoError(t, err)
	require.Equal(t, [2]int{3, 1}, [2]int{w, h})

	w, h, err = targetSize(b, 1, 0)
	require.NoError(t, err)
	require.Equal(t, [2]int{1, 1}, [2]int{w, h}, "never rounds to zero")

	_, _, err = targetSize(b, -1, 5)
	require.Error(t, err)
}
