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

//go:build !amd64 || !goexperiment.simd

package convolution

import (
	"testing"

	"github.com/ajroetker/go-resample/pixel"
)

func TestResolve_NoVectorBuild(t *testing.T) {
	for _, ext := range allExtensions {
		if got := Resolve(ext); got != Native {
			t.Errorf("Resolve(%v): got %v, want native", ext, got)
		}
		if _, ok := KernelFor[pixel.U8](ext).(nativeKernel[pixel.U8]); !ok {
			t.Errorf("KernelFor[U8](%v) is %T, want the native kernel", ext, KernelFor[pixel.U8](ext))
		}
		if _, ok := KernelFor[pixel.U16](ext).(nativeKernel[pixel.U16]); !ok {
			t.Errorf("KernelFor[U16](%v) is %T, want the native kernel", ext, KernelFor[pixel.U16](ext))
		}
	}
	if got := DetectCPUExtension(); got != Native {
		t.Errorf("DetectCPUExtension(): got %v, want native", got)
	}
}
