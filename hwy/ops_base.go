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

// This file provides the 64-bit integer lane vectors. Lane i of a vector is
// element i of its backing array, matching the little-endian register layout.

// Int64x2 is a 128-bit vector of two int64 lanes.
type Int64x2 struct {
	v [2]int64
}

// Int64x4 is a 256-bit vector of four int64 lanes.
type Int64x4 struct {
	v [4]int64
}

// LoadInt64x2Slice loads the first 2 elements of s.
func LoadInt64x2Slice(s []int64) Int64x2 {
	_ = s[1]
	return Int64x2{v: [2]int64{s[0], s[1]}}
}

// LoadInt64x4Slice loads the first 4 elements of s.
func LoadInt64x4Slice(s []int64) Int64x4 {
	_ = s[3]
	return Int64x4{v: [4]int64{s[0], s[1], s[2], s[3]}}
}

// SetInt64x2 builds a vector from explicit lanes, lane 0 first.
func SetInt64x2(l0, l1 int64) Int64x2 {
	return Int64x2{v: [2]int64{l0, l1}}
}

// SetInt64x4 builds a vector from explicit lanes, lane 0 first.
func SetInt64x4(l0, l1, l2, l3 int64) Int64x4 {
	return Int64x4{v: [4]int64{l0, l1, l2, l3}}
}

// BroadcastInt64x2 sets both lanes to x.
func BroadcastInt64x2(x int64) Int64x2 {
	return Int64x2{v: [2]int64{x, x}}
}

// BroadcastInt64x4 sets all four lanes to x.
func BroadcastInt64x4(x int64) Int64x4 {
	return Int64x4{v: [4]int64{x, x, x, x}}
}

// Add performs lane-wise addition.
func (a Int64x2) Add(b Int64x2) Int64x2 {
	return Int64x2{v: [2]int64{a.v[0] + b.v[0], a.v[1] + b.v[1]}}
}

// Mul performs a lane-wise signed multiply keeping the low 64 bits.
//
// Kernels only multiply values that fit in 32 bits, which makes this the
// widening multiply of the even 32-bit halves (PMULDQ / VPMULDQ).
func (a Int64x2) Mul(b Int64x2) Int64x2 {
	return Int64x2{v: [2]int64{a.v[0] * b.v[0], a.v[1] * b.v[1]}}
}

// ReduceSum returns the sum of all lanes.
func (a Int64x2) ReduceSum() int64 {
	return a.v[0] + a.v[1]
}

// GetElem returns lane i.
func (a Int64x2) GetElem(i int) int64 {
	return a.v[i]
}

// Store writes both lanes to dst.
func (a Int64x2) Store(dst *[2]int64) {
	*dst = a.v
}

// Add performs lane-wise addition.
func (a Int64x4) Add(b Int64x4) Int64x4 {
	return Int64x4{v: [4]int64{
		a.v[0] + b.v[0],
		a.v[1] + b.v[1],
		a.v[2] + b.v[2],
		a.v[3] + b.v[3],
	}}
}

// Mul performs a lane-wise signed multiply keeping the low 64 bits.
// See Int64x2.Mul.
func (a Int64x4) Mul(b Int64x4) Int64x4 {
	return Int64x4{v: [4]int64{
		a.v[0] * b.v[0],
		a.v[1] * b.v[1],
		a.v[2] * b.v[2],
		a.v[3] * b.v[3],
	}}
}

// ReduceSum returns the sum of all lanes.
func (a Int64x4) ReduceSum() int64 {
	return (a.v[0] + a.v[1]) + (a.v[2] + a.v[3])
}

// GetElem returns lane i.
func (a Int64x4) GetElem(i int) int64 {
	return a.v[i]
}

// GetLo returns lanes 0 and 1.
func (a Int64x4) GetLo() Int64x2 {
	return Int64x2{v: [2]int64{a.v[0], a.v[1]}}
}

// GetHi returns lanes 2 and 3.
func (a Int64x4) GetHi() Int64x2 {
	return Int64x2{v: [2]int64{a.v[2], a.v[3]}}
}

// Store writes all four lanes to dst.
func (a Int64x4) Store(dst *[4]int64) {
	*dst = a.v
}
