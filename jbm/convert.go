// Copyright 2025 go-jbm Authors
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

package jbm

import "math"

// ============================================================================
// Value conversions
// ============================================================================

// ConvertToInt32 converts float lanes to int32, truncating toward zero.
// NaN and out-of-range lanes become math.MinInt32, the x86 "integer
// indefinite" value. The result has the lane count of v.
func ConvertToInt32[T Floats](v Vec[T]) Vec[int32] {
	r := Vec[int32]{n: v.n}
	for i := range v.n {
		x := float64(v.data[i])
		if x != x || x >= 2147483648 || x < -2147483648 {
			r.data[i] = math.MinInt32
			continue
		}
		r.data[i] = int32(x)
	}
	return r
}

// ConvertFromInt32 converts int32 lanes to float lanes. Only the first
// MaxLanes[T]() lanes of e are used.
func ConvertFromInt32[T Floats](e Vec[int32]) Vec[T] {
	r := Vec[T]{n: min(e.n, MaxLanes[T]())}
	for i := range r.n {
		r.data[i] = T(e.data[i])
	}
	return r
}

// MaskFromFloat reinterprets a float mask as an int32 mask of the same
// lane count, for selecting between exponent lanes.
func MaskFromFloat[T Floats](m Mask[T]) Mask[int32] {
	return Mask[int32]{bits: m.bits, n: m.n}
}

// ============================================================================
// Type reinterpretation operations (bit cast, no value conversion)
// ============================================================================

// AsInt32 reinterprets a float32 group as int32 (bit cast).
func AsInt32(v Vec[float32]) Vec[int32] {
	r := Vec[int32]{n: v.n}
	for i := range v.n {
		r.data[i] = int32(math.Float32bits(v.data[i]))
	}
	return r
}

// AsFloat32 reinterprets an int32 group as float32 (bit cast).
func AsFloat32(v Vec[int32]) Vec[float32] {
	r := Vec[float32]{n: v.n}
	for i := range v.n {
		r.data[i] = math.Float32frombits(uint32(v.data[i]))
	}
	return r
}

// AsInt64 reinterprets a float64 group as int64 (bit cast).
func AsInt64(v Vec[float64]) Vec[int64] {
	r := Vec[int64]{n: v.n}
	for i := range v.n {
		r.data[i] = int64(math.Float64bits(v.data[i]))
	}
	return r
}

// AsFloat64 reinterprets an int64 group as float64 (bit cast).
func AsFloat64(v Vec[int64]) Vec[float64] {
	r := Vec[float64]{n: v.n}
	for i := range v.n {
		r.data[i] = math.Float64frombits(uint64(v.data[i]))
	}
	return r
}
