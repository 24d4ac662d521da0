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

// Package pixel defines the sample element types the resampler operates on.
//
// Each type is a newtype over an unsigned integer of fixed width with no
// behaviour beyond storage. The valid range of a type is [0, Max[P]()].
package pixel

import "unsafe"

// U8 is an 8-bit single-channel sample.
type U8 uint8

// U16 is a 16-bit single-channel sample.
type U16 uint16

// Pixel is the set of supported sample element types.
type Pixel interface {
	U8 | U16
}

// Size returns the storage width of P in bytes.
func Size[P Pixel]() int {
	var zero P
	return int(unsafe.Sizeof(zero))
}

// Bits returns the storage width of P in bits.
func Bits[P Pixel]() int {
	return Size[P]() * 8
}

// Max returns the largest valid value of P.
func Max[P Pixel]() int64 {
	return 1<<Bits[P]() - 1
}

// Name returns a short name for P, such as "u8".
func Name[P Pixel]() string {
	switch Size[P]() {
	case 1:
		return "u8"
	default:
		return "u16"
	}
}
