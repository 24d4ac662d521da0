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
	"strings"

	"github.com/ajroetker/go-resample/hwy"
)

// CPUExtension selects the backend a pass runs on.
type CPUExtension uint8

const (
	// Native is the portable scalar backend.
	Native CPUExtension = iota
	// SSE41 is the 128-bit x86 backend.
	SSE41
	// AVX2 is the 256-bit x86 backend.
	AVX2
	// NEON is the 128-bit ARM backend.
	NEON
)

// String returns the extension name as accepted by ParseCPUExtension.
func (e CPUExtension) String() string {
	switch e {
	case Native:
		return "native"
	case SSE41:
		return "sse4.1"
	case AVX2:
		return "avx2"
	case NEON:
		return "neon"
	default:
		return fmt.Sprintf("CPUExtension(%d)", uint8(e))
	}
}

// Width returns the vector width of the extension in bytes, or 0 for Native.
func (e CPUExtension) Width() int {
	switch e {
	case SSE41, NEON:
		return 16
	case AVX2:
		return 32
	default:
		return 0
	}
}

// ParseCPUExtension parses an extension name, ignoring case.
func ParseCPUExtension(s string) (CPUExtension, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "native", "none", "scalar":
		return Native, nil
	case "sse4.1", "sse41", "sse4":
		return SSE41, nil
	case "avx2":
		return AVX2, nil
	case "neon", "asimd":
		return NEON, nil
	}
	return Native, fmt.Errorf("%w: %q", ErrUnknownCPUExtension, s)
}

// Resolve returns the extension a request for e actually runs on: e itself
// when it is compiled for the current architecture, Native otherwise.
func Resolve(e CPUExtension) CPUExtension {
	if e != Native && compiledFor(e) {
		return e
	}
	return Native
}

// DetectCPUExtension returns the widest extension the running CPU supports.
// Setting HWY_NO_SIMD makes it return Native.
func DetectCPUExtension() CPUExtension {
	switch hwy.CurrentLevel() {
	case hwy.DispatchAVX512, hwy.DispatchAVX2:
		return Resolve(AVX2)
	case hwy.DispatchSSE4:
		return Resolve(SSE41)
	case hwy.DispatchNEON:
		return Resolve(NEON)
	default:
		return Native
	}
}
