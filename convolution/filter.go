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
	"math"
	"strings"

	"golang.org/x/image/draw"
)

// Filter is a reconstruction kernel: a weight function of the distance in
// source pixels from the sample center, zero outside [-Support, Support].
type Filter struct {
	Name    string
	Support float64
	Kernel  func(x float64) float64
}

var (
	// Box averages the source pixels covered by each destination pixel.
	Box = Filter{Name: "box", Support: 0.5, Kernel: box}

	// Bilinear is the triangle filter.
	Bilinear = FromDrawKernel("bilinear", draw.BiLinear)

	// CatmullRom is the Catmull-Rom cubic spline.
	CatmullRom = FromDrawKernel("catmullrom", draw.CatmullRom)

	// Hamming is a Hamming-windowed sinc with a support of one pixel.
	Hamming = Filter{Name: "hamming", Support: 1, Kernel: hamming}

	// Mitchell is the Mitchell-Netravali cubic with B = C = 1/3.
	Mitchell = Filter{Name: "mitchell", Support: 2, Kernel: mitchell}

	// Lanczos3 is a three-lobed Lanczos-windowed sinc.
	Lanczos3 = Filter{Name: "lanczos3", Support: 3, Kernel: lanczos3}
)

// Filters returns the built-in filters.
func Filters() []Filter {
	return []Filter{Box, Bilinear, Hamming, CatmullRom, Mitchell, Lanczos3}
}

// FilterByName returns the built-in filter with the given case-insensitive
// name. "linear", "cubic" and "lanczos" are accepted as aliases.
func FilterByName(name string) (Filter, error) {
	switch n := strings.ToLower(strings.TrimSpace(name)); n {
	case "linear", "triangle":
		return Bilinear, nil
	case "cubic", "catmull-rom":
		return CatmullRom, nil
	case "lanczos":
		return Lanczos3, nil
	default:
		for _, f := range Filters() {
			if f.Name == n {
				return f, nil
			}
		}
	}
	return Filter{}, fmt.Errorf("%w: %q", ErrUnknownFilter, name)
}

// FromDrawKernel adapts a golang.org/x/image/draw kernel, which is evaluated
// on [0, Support), to a symmetric Filter.
func FromDrawKernel(name string, k *draw.Kernel) Filter {
	return Filter{
		Name:    name,
		Support: k.Support,
		Kernel: func(x float64) float64 {
			x = math.Abs(x)
			if x >= k.Support {
				return 0
			}
			return k.At(x)
		},
	}
}

func box(x float64) float64 {
	if x >= -0.5 && x < 0.5 {
		return 1
	}
	return 0
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	x *= math.Pi
	return math.Sin(x) / x
}

func hamming(x float64) float64 {
	x = math.Abs(x)
	if x >= 1 {
		return 0
	}
	return (0.54 + 0.46*math.Cos(math.Pi*x)) * sinc(x)
}

func mitchell(x float64) float64 {
	const b, c = 1.0 / 3, 1.0 / 3
	x = math.Abs(x)
	switch {
	case x < 1:
		return ((12-9*b-6*c)*x*x*x + (-18+12*b+6*c)*x*x + (6 - 2*b)) / 6
	case x < 2:
		return ((-b-6*c)*x*x*x + (6*b+30*c)*x*x + (-12*b-48*c)*x + (8*b + 24*c)) / 6
	}
	return 0
}

func lanczos3(x float64) float64 {
	if x <= -3 || x >= 3 {
		return 0
	}
	return sinc(x) * sinc(x/3)
}
