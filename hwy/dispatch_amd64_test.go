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

//go:build amd64 && !goexperiment.simd

package hwy

import "testing"

// Lane types are plain arrays in this build, so no vector tier is reported.
func TestCurrentLevel_NoSimdExperiment(t *testing.T) {
	if got := CurrentLevel(); got != DispatchScalar {
		t.Errorf("CurrentLevel() = %v, want scalar", got)
	}
	if got := CurrentWidth(); got != 16 {
		t.Errorf("CurrentWidth() = %d, want 16", got)
	}
}
