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

// Command resample resizes an image to grayscale with the separable
// convolution engine.
//
// Usage:
//
//	resample -in photo.jpg -out thumb.png -width 320
//	resample -in scan.tiff -out small.tiff -width 800 -height 600 -filter mitchell -depth 16
//	resample -in a.webp -out b.png -width 64 -cpu native -v
//
// PNG, JPEG, GIF, BMP, TIFF and WebP inputs are decoded. The output format
// follows the extension of -out: .png (default), .jpg/.jpeg, .bmp or .tif/.tiff.
// When only one of -width and -height is given the aspect ratio is kept.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/ajroetker/go-resample/convolution"
	"github.com/ajroetker/go-resample/imageview"
	"github.com/ajroetker/go-resample/resize"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("resample", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		inFile     = fs.String("in", "", "Input image (required)")
		outFile    = fs.String("out", "", "Output image (required)")
		width      = fs.Int("width", 0, "Output width in pixels (0 keeps the aspect ratio)")
		height     = fs.Int("height", 0, "Output height in pixels (0 keeps the aspect ratio)")
		filterName = fs.String("filter", "lanczos3", "Filter: box, bilinear, hamming, catmullrom, mitchell, lanczos3")
		cpu        = fs.String("cpu", "auto", "CPU extension: auto, native, sse4.1, avx2, neon")
		depth      = fs.Int("depth", 8, "Sample depth in bits: 8 or 16")
		workers    = fs.Int("workers", 1, "Goroutines per pass (0 uses GOMAXPROCS)")
		verbose    = fs.Bool("v", false, "Log the resize plan to stderr")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *inFile == "" || *outFile == "" {
		fs.Usage()
		return errors.New("-in and -out flags are required")
	}
	if *depth != 8 && *depth != 16 {
		return fmt.Errorf("unsupported -depth %d, want 8 or 16", *depth)
	}
	filter, err := convolution.FilterByName(*filterName)
	if err != nil {
		return err
	}
	ext := convolution.DetectCPUExtension()
	if *cpu != "auto" {
		if ext, err = convolution.ParseCPUExtension(*cpu); err != nil {
			return err
		}
	}
	if *verbose {
		resize.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer resize.SetLogger(nil)
	}

	src, err := decode(*inFile)
	if err != nil {
		return err
	}
	w, h, err := targetSize(src.Bounds(), *width, *height)
	if err != nil {
		return err
	}

	r := resize.New(resize.WithFilter(filter), resize.WithCPUExtension(ext), resize.WithWorkers(*workers))
	defer r.Close()

	var result image.Image
	if *depth == 8 {
		gray := image.NewGray(src.Bounds())
		draw.Draw(gray, gray.Bounds(), src, src.Bounds().Min, draw.Src)
		out, err := resize.ResizeImage(r, imageview.FromGray(gray), w, h)
		if err != nil {
			return err
		}
		result = imageview.ToGray(out.View())
	} else {
		gray := image.NewGray16(src.Bounds())
		draw.Draw(gray, gray.Bounds(), src, src.Bounds().Min, draw.Src)
		out, err := resize.ResizeImage(r, imageview.FromGray16(gray), w, h)
		if err != nil {
			return err
		}
		result = imageview.ToGray16(out.View())
	}

	return encode(*outFile, result)
}

// targetSize fills in a zero width or height from the source aspect ratio.
func targetSize(b image.Rectangle, width, height int) (int, int, error) {
	if width < 0 || height < 0 || (width == 0 && height == 0) {
		return 0, 0, fmt.Errorf("invalid output size %dx%d", width, height)
	}
	if b.Empty() {
		return 0, 0, errors.New("empty input image")
	}
	switch {
	case width == 0:
		width = max(1, int(math.Round(float64(b.Dx())*float64(height)/float64(b.Dy()))))
	case height == 0:
		height = max(1, int(math.Round(float64(b.Dy())*float64(width)/float64(b.Dx()))))
	}
	return width, height, nil
}

func decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	resize.Logger().Debug("decoded", "path", path, "format", format)
	return img, nil
}

func encode(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
	case ".bmp":
		return bmp.Encode(f, img)
	case ".tif", ".tiff":
		return tiff.Encode(f, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return png.Encode(f, img)
	}
}
