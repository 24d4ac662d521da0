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

package hwy

import "unsafe"

// AsBytes reinterprets a slice of samples as its in-memory bytes.
// The result aliases s; its length is len(s) times the sample size.
func AsBytes[T Samples](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	var zero T
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*int(unsafe.Sizeof(zero)))
}

// PromoteToInt64x2 zero-extends s[0] and s[1] into two int64 lanes
// (PMOVZXBQ / PMOVZXWQ).
func PromoteToInt64x2[T Samples](s []T) Int64x2 {
	_ = s[1]
	return Int64x2{v: [2]int64{int64(s[0]), int64(s[1])}}
}

// PromoteToInt64x4 zero-extends s[0:4] into four int64 lanes
// (VPMOVZXBQ / VPMOVZXWQ).
func PromoteToInt64x4[T Samples](s []T) Int64x4 {
	_ = s[3]
	return Int64x4{v: [4]int64{int64(s[0]), int64(s[1]), int64(s[2]), int64(s[3])}}
}

// PromotePartialToInt64x4 zero-extends up to four samples and zeroes the
// remaining lanes. It is the scalar fill used for tap remainders.
func PromotePartialToInt64x4[T Samples](s []T) Int64x4 {
	var r Int64x4
	for i := 0; i < len(s) && i < 4; i++ {
		r.v[i] = int64(s[i])
	}
	return r
}

// PromotePartialToInt64x2 zero-extends up to two samples and zeroes the
// remaining lane.
func PromotePartialToInt64x2[T Samples](s []T) Int64x2 {
	var r Int64x2
	for i := 0; i < len(s) && i < 2; i++ {
		r.v[i] = int64(s[i])
	}
	return r
}

// WidenInt32x4 sign-extends up to four int32 values into int64 lanes,
// zeroing lanes past len(s).
func WidenInt32x4(s []int32) Int64x4 {
	var r Int64x4
	for i := 0; i < len(s) && i < 4; i++ {
		r.v[i] = int64(s[i])
	}
	return r
}

// WidenInt32x2 sign-extends up to two int32 values into int64 lanes,
// zeroing lanes past len(s).
func WidenInt32x2(s []int32) Int64x2 {
	var r Int64x2
	for i := 0; i < len(s) && i < 2; i++ {
		r.v[i] = int64(s[i])
	}
	return r
}
