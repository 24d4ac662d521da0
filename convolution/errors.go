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

import "errors"

var (
	// ErrContractViolation reports views, offsets or coefficients that do not
	// fit together.
	ErrContractViolation = errors.New("convolution: contract violation")

	// ErrInvalidSize reports a non-positive length or a crop outside the source.
	ErrInvalidSize = errors.New("convolution: invalid size")

	// ErrUnknownFilter reports a filter name or definition that cannot be used.
	ErrUnknownFilter = errors.New("convolution: unknown filter")

	// ErrUnknownCPUExtension reports an unrecognised extension name.
	ErrUnknownCPUExtension = errors.New("convolution: unknown cpu extension")
)
