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

// Package resize resizes single-channel images with the separable
// convolution engine.
//
// A Resizer runs the horizontal pass into an intermediate buffer that covers
// only the source rows the vertical pass reads, then the vertical pass into
// the destination. A pass whose dimension does not change is skipped.
//
//	r := resize.New(resize.WithFilter(convolution.Mitchell))
//	defer r.Close()
//	dst := imageview.New[pixel.U8](320, 240)
//	if err := r.ResizeU8(src.View(), dst.ViewMut()); err != nil {
//	    return err
//	}
package resize

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ajroetker/go-resample/convolution"
	"github.com/ajroetker/go-resample/hwy/contrib/workerpool"
	"github.com/ajroetker/go-resample/imageview"
	"github.com/ajroetker/go-resample/pixel"
)

// Resizer holds the configuration and scratch memory of repeated resizes.
// The intermediate buffer is reused between calls, so a Resizer must not be
// used by more than one goroutine at a time.
type Resizer struct {
	opts options
	ext  convolution.CPUExtension
	pool *workerpool.Pool

	u8  []pixel.U8
	u16 []pixel.U16
}

// New creates a Resizer. Without WithCPUExtension the backend is detected
// from the running CPU.
func New(opts ...Option) *Resizer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := &Resizer{opts: o}
	if o.extSet {
		r.ext = convolution.Resolve(o.ext)
		if r.ext != o.ext {
			Logger().Warn("resize: cpu extension not available, using native",
				"requested", o.ext.String())
		}
	} else {
		r.ext = convolution.DetectCPUExtension()
	}
	if o.workers != 1 {
		r.pool = workerpool.New(o.workers)
	}
	return r
}

// CPUExtension returns the backend the Resizer runs on.
func (r *Resizer) CPUExtension() convolution.CPUExtension {
	return r.ext
}

// Filter returns the configured filter.
func (r *Resizer) Filter() convolution.Filter {
	return r.opts.filter
}

// Close releases the worker pool. The Resizer keeps working on the calling
// goroutine afterwards.
func (r *Resizer) Close() {
	if r.pool != nil {
		r.pool.Close()
	}
}

// ResizeU8 resizes src into dst.
func (r *Resizer) ResizeU8(src imageview.View[pixel.U8], dst imageview.ViewMut[pixel.U8]) error {
	return Resize(r, src, dst)
}

// ResizeU16 resizes src into dst.
func (r *Resizer) ResizeU16(src imageview.View[pixel.U16], dst imageview.ViewMut[pixel.U16]) error {
	return Resize(r, src, dst)
}

// ResizeImage resizes src into a new width x height image.
func ResizeImage[P pixel.Pixel](r *Resizer, src *imageview.Image[P], width, height int) (*imageview.Image[P], error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: destination %dx%d", ErrInvalidDimensions, width, height)
	}
	dst := imageview.New[P](width, height)
	if err := Resize(r, src.View(), dst.ViewMut()); err != nil {
		return nil, err
	}
	return dst, nil
}

// Resize resizes src (or its crop) into dst.
func Resize[P pixel.Pixel](r *Resizer, src imageview.View[P], dst imageview.ViewMut[P]) error {
	srcW, srcH := src.Width(), src.Height()
	dstW, dstH := dst.Width(), dst.Height()
	if srcW <= 0 || srcH <= 0 || dstW <= 0 || dstH <= 0 {
		return fmt.Errorf("%w: %dx%d to %dx%d", ErrInvalidDimensions, srcW, srcH, dstW, dstH)
	}

	crop := Crop{Width: float64(srcW), Height: float64(srcH)}
	if r.opts.crop != nil {
		crop = *r.opts.crop
	}
	if !(crop.Width > 0 && crop.Height > 0) || crop.X < 0 || crop.Y < 0 ||
		crop.X+crop.Width > float64(srcW) || crop.Y+crop.Height > float64(srcH) {
		return fmt.Errorf("%w: crop %+v outside %dx%d source", ErrInvalidDimensions, crop, srcW, srcH)
	}

	needH := dstW != srcW || crop.X != 0 || crop.Width != float64(srcW)
	needV := dstH != srcH || crop.Y != 0 || crop.Height != float64(srcH)

	log := Logger()
	log.Debug("resize",
		"pixel", pixel.Name[P](),
		"src_width", srcW, "src_height", srcH,
		"dst_width", dstW, "dst_height", dstH,
		"filter", r.opts.filter.Name,
		"cpu", r.ext.String(),
		"horizontal", needH,
		"vertical", needV)

	if !needH && !needV {
		return dst.CopyFrom(src)
	}

	kernel := convolution.KernelFor[P](r.ext)
	f := r.opts.filter

	if !needH {
		cv, err := convolution.BuildCroppedCoefficients(srcH, dstH, crop.Y, crop.Height, f)
		if err != nil {
			return err
		}
		return vertical(r, src, dst, cv, kernel)
	}

	ch, err := convolution.BuildCroppedCoefficients(srcW, dstW, crop.X, crop.Width, f)
	if err != nil {
		return err
	}
	nh, err := convolution.NewNormalizer[P](ch)
	if err != nil {
		return err
	}

	if !needV {
		return horizontal(r, src, dst, 0, nh, kernel)
	}

	cv, err := convolution.BuildCroppedCoefficients(srcH, dstH, crop.Y, crop.Height, f)
	if err != nil {
		return err
	}
	first, last := cv.Span()
	log.Debug("resize: intermediate", "rows", last-first, "offset", first)

	tmp, err := imageview.NewFromBuffer(scratch[P](r, dstW*(last-first)), dstW, last-first, dstW)
	if err != nil {
		return err
	}
	if err := horizontal(r, src, tmp.ViewMut(), first, nh, kernel); err != nil {
		return err
	}
	return vertical(r, tmp.View(), dst, cv.Shifted(-first), kernel)
}

// scratch returns the reusable intermediate buffer for P, grown to n.
func scratch[P pixel.Pixel](r *Resizer, n int) []P {
	var zero P
	switch any(zero).(type) {
	case pixel.U8:
		if cap(r.u8) < n {
			r.u8 = make([]pixel.U8, n)
		}
		return any(r.u8[:n]).([]P)
	default:
		if cap(r.u16) < n {
			r.u16 = make([]pixel.U16, n)
		}
		return any(r.u16[:n]).([]P)
	}
}

// horizontal runs the horizontal pass over row ranges of dst.
func horizontal[P pixel.Pixel](r *Resizer, src imageview.View[P], dst imageview.ViewMut[P], offset int,
	n *convolution.Normalizer[P], k convolution.Kernel[P]) error {
	return r.parallel(dst.Height(), func(lo, hi int) error {
		return convolution.HorizontalConvolveNormalized(src, dst.SubRows(lo, hi), offset+lo, n, k)
	})
}

// vertical runs the vertical pass over row ranges of dst.
func vertical[P pixel.Pixel](r *Resizer, src imageview.View[P], dst imageview.ViewMut[P],
	c *convolution.Coefficients, k convolution.Kernel[P]) error {
	n, err := convolution.NewNormalizer[P](c)
	if err != nil {
		return err
	}
	return r.parallel(dst.Height(), func(lo, hi int) error {
		return convolution.VerticalConvolveNormalized(src, dst.SubRows(lo, hi), n.Rows(lo, hi), k)
	})
}

// parallel calls fn on disjoint row ranges of [0, n), on the pool if there
// is one.
func (r *Resizer) parallel(n int, fn func(lo, hi int) error) error {
	if r.pool == nil {
		return fn(0, n)
	}
	var (
		mu   sync.Mutex
		errs []error
	)
	r.pool.ParallelRows(n, imageview.BatchRows, func(lo, hi int) {
		if err := fn(lo, hi); err != nil {
			mu.Lock()
			errs = append(errs, err)
			mu.Unlock()
		}
	})
	return errors.Join(errs...)
}
