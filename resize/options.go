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

package resize

import "github.com/ajroetker/go-resample/convolution"

// Option configures a Resizer.
//
// Example:
//
//	r := resize.New(
//	    resize.WithFilter(convolution.CatmullRom),
//	    resize.WithWorkers(runtime.GOMAXPROCS(0)),
//	)
//	defer r.Close()
type Option func(*options)

// Crop selects the source region to resize, in source pixels. Coordinates may
// be fractional.
type Crop struct {
	X, Y          float64
	Width, Height float64
}

type options struct {
	filter  convolution.Filter
	ext     convolution.CPUExtension
	extSet  bool
	workers int
	crop    *Crop
}

func defaultOptions() options {
	return options{
		filter:  convolution.Lanczos3,
		workers: 1,
	}
}

// WithFilter sets the reconstruction filter. The default is Lanczos3.
func WithFilter(f convolution.Filter) Option {
	return func(o *options) {
		o.filter = f
	}
}

// WithCPUExtension pins the backend instead of detecting it. An extension
// not compiled for the current architecture falls back to native.
func WithCPUExtension(ext convolution.CPUExtension) Option {
	return func(o *options) {
		o.ext = ext
		o.extSet = true
	}
}

// WithWorkers sets the number of goroutines that convolve row ranges.
// n <= 0 uses GOMAXPROCS; the default of 1 runs on the calling goroutine.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithCrop resizes only the given region of the source.
func WithCrop(c Crop) Option {
	return func(o *options) {
		o.crop = &c
	}
}
