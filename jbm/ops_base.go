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

import (
	"math"
	"unsafe"
)

// This file provides the portable lane operations. Each operation works
// lane by lane over the common lane count of its operands; none of them
// branch across lanes or allocate.

// Load creates a lane group from the first MaxLanes[T]() elements of src.
// Missing elements are zero.
func Load[T Lanes](src []T) Vec[T] {
	v := Vec[T]{n: MaxLanes[T]()}
	copy(v.data[:v.n], src)
	return v
}

// Store writes a lane group to a slice.
func Store[T Lanes](v Vec[T], dst []T) {
	v.Store(dst)
}

// Set creates a lane group with all lanes set to the same value.
func Set[T Lanes](value T) Vec[T] {
	v := Vec[T]{n: MaxLanes[T]()}
	for i := range v.n {
		v.data[i] = value
	}
	return v
}

// Const creates a lane group with all lanes set to the given float64
// constant converted to T. This allows writing generic kernels without
// T(constant) conversions at every call site.
func Const[T Floats](val float64) Vec[T] {
	return Set(T(val))
}

// Zero creates a lane group with all lanes set to zero.
func Zero[T Lanes]() Vec[T] {
	return Vec[T]{n: MaxLanes[T]()}
}

// Iota returns the lane group {0, 1, 2, ...}.
func Iota[T Lanes]() Vec[T] {
	v := Vec[T]{n: MaxLanes[T]()}
	for i := range v.n {
		v.data[i] = T(i)
	}
	return v
}

// Add performs lane-wise addition.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		r.data[i] = a.data[i] + b.data[i]
	}
	return r
}

// Sub performs lane-wise subtraction.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		r.data[i] = a.data[i] - b.data[i]
	}
	return r
}

// Mul performs lane-wise multiplication.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		r.data[i] = T(a.data[i] * b.data[i])
	}
	return r
}

// Div performs lane-wise division. Division by zero follows IEEE-754.
func Div[T Floats](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		r.data[i] = a.data[i] / b.data[i]
	}
	return r
}

// Neg negates every lane arithmetically (0 stays +0).
func Neg[T Lanes](v Vec[T]) Vec[T] {
	r := Vec[T]{n: v.n}
	for i := range v.n {
		r.data[i] = -v.data[i]
	}
	return r
}

// Min returns the lane-wise minimum. If a lane of a is NaN the lane of b is
// returned, matching the x86 minps operand order.
func Min[T Lanes](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		if a.data[i] < b.data[i] {
			r.data[i] = a.data[i]
		} else {
			r.data[i] = b.data[i]
		}
	}
	return r
}

// Max returns the lane-wise maximum with the same NaN convention as Min.
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		if a.data[i] > b.data[i] {
			r.data[i] = a.data[i]
		} else {
			r.data[i] = b.data[i]
		}
	}
	return r
}

// Sqrt computes the lane-wise square root.
func Sqrt[T Floats](v Vec[T]) Vec[T] {
	return apply(v, math.Sqrt)
}

// Floor rounds every lane toward negative infinity.
func Floor[T Floats](v Vec[T]) Vec[T] {
	return apply(v, math.Floor)
}

// Ceil rounds every lane toward positive infinity.
func Ceil[T Floats](v Vec[T]) Vec[T] {
	return apply(v, math.Ceil)
}

// Trunc rounds every lane toward zero.
func Trunc[T Floats](v Vec[T]) Vec[T] {
	return apply(v, math.Trunc)
}

// RoundToEven rounds to the nearest integer, ties to even.
// This is the default IEEE 754 rounding mode.
func RoundToEven[T Floats](v Vec[T]) Vec[T] {
	return apply(v, math.RoundToEven)
}

// apply evaluates an exactly rounded float64 function on every lane.
// For float32 lanes the float64 result rounds to the correctly rounded
// float32 value for the functions used here.
func apply[T Floats](v Vec[T], fn func(float64) float64) Vec[T] {
	r := Vec[T]{n: v.n}
	for i := range v.n {
		r.data[i] = T(fn(float64(v.data[i])))
	}
	return r
}

// FMA computes a*b + c with a single rounding on every lane, regardless of
// the dispatch level. Kernels use it where the rounding error of a product
// must be recovered exactly.
func FMA[T Floats](a, b, c Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n, c.n)}
	for i := range r.n {
		r.data[i] = fma(a.data[i], b.data[i], c.data[i])
	}
	return r
}

func fma[T Floats](a, b, c T) T {
	if unsafe.Sizeof(a) == 4 {
		// The float64 product of two float32 values is exact.
		return T(float64(a)*float64(b) + float64(c))
	}
	return T(math.FMA(float64(a), float64(b), float64(c)))
}

// MulAdd computes a*b + c. The operation is fused when the CPU has a
// hardware FMA unit and is a separate multiply and add otherwise (or when
// JBM_NO_SIMD is set).
func MulAdd[T Floats](a, b, c Vec[T]) Vec[T] {
	if useFMA {
		return FMA(a, b, c)
	}
	r := Vec[T]{n: min(a.n, b.n, c.n)}
	for i := range r.n {
		r.data[i] = T(a.data[i]*b.data[i]) + c.data[i]
	}
	return r
}

// NegMulAdd computes c - a*b.
func NegMulAdd[T Floats](a, b, c Vec[T]) Vec[T] {
	return MulAdd(Neg(a), b, c)
}

// ReduceSum returns the sum of all lanes.
func ReduceSum[T Lanes](v Vec[T]) T {
	var sum T
	for i := range v.n {
		sum += v.data[i]
	}
	return sum
}

// ReduceMin returns the smallest lane.
func ReduceMin[T Lanes](v Vec[T]) T {
	if v.n == 0 {
		var zero T
		return zero
	}
	m := v.data[0]
	for i := 1; i < v.n; i++ {
		if v.data[i] < m {
			m = v.data[i]
		}
	}
	return m
}

// ReduceMax returns the largest lane.
func ReduceMax[T Lanes](v Vec[T]) T {
	if v.n == 0 {
		var zero T
		return zero
	}
	m := v.data[0]
	for i := 1; i < v.n; i++ {
		if v.data[i] > m {
			m = v.data[i]
		}
	}
	return m
}

// Equal performs lane-wise equality comparison.
func Equal[T Lanes](a, b Vec[T]) Mask[T] {
	m := Mask[T]{n: min(a.n, b.n)}
	for i := range m.n {
		m.bits[i] = a.data[i] == b.data[i]
	}
	return m
}

// NotEqual performs lane-wise inequality comparison. NaN lanes compare
// not equal.
func NotEqual[T Lanes](a, b Vec[T]) Mask[T] {
	m := Mask[T]{n: min(a.n, b.n)}
	for i := range m.n {
		m.bits[i] = a.data[i] != b.data[i]
	}
	return m
}

// Less performs lane-wise a < b.
func Less[T Lanes](a, b Vec[T]) Mask[T] {
	m := Mask[T]{n: min(a.n, b.n)}
	for i := range m.n {
		m.bits[i] = a.data[i] < b.data[i]
	}
	return m
}

// LessEqual performs lane-wise a <= b.
func LessEqual[T Lanes](a, b Vec[T]) Mask[T] {
	m := Mask[T]{n: min(a.n, b.n)}
	for i := range m.n {
		m.bits[i] = a.data[i] <= b.data[i]
	}
	return m
}

// Greater performs lane-wise a > b.
func Greater[T Lanes](a, b Vec[T]) Mask[T] {
	return Less(b, a)
}

// GreaterEqual performs lane-wise a >= b.
func GreaterEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return LessEqual(b, a)
}

// IsNaN returns a mask of the NaN lanes.
func IsNaN[T Floats](v Vec[T]) Mask[T] {
	return NotEqual(v, v)
}

// IsInf returns a mask of the infinite lanes.
// The sign parameter: 0 = either, > 0 = +Inf only, < 0 = -Inf only.
func IsInf[T Floats](v Vec[T], sign int) Mask[T] {
	m := Mask[T]{n: v.n}
	for i := range v.n {
		m.bits[i] = math.IsInf(float64(v.data[i]), sign)
	}
	return m
}

// IsFinite returns a mask of the lanes that are neither NaN nor infinite.
func IsFinite[T Floats](v Vec[T]) Mask[T] {
	ff := FormatOf[T]()
	m := Mask[T]{n: v.n}
	for i := range v.n {
		m.bits[i] = toBits(v.data[i])&ff.ExpMask != ff.ExpMask
	}
	return m
}

// SignBitMask returns a mask of the lanes whose sign bit is set,
// including -0 and negative NaNs.
func SignBitMask[T Floats](v Vec[T]) Mask[T] {
	sm := signMask[T]()
	m := Mask[T]{n: v.n}
	for i := range v.n {
		m.bits[i] = toBits(v.data[i])&sm != 0
	}
	return m
}

// IfThenElse selects a where mask is set and b elsewhere.
func IfThenElse[T Lanes](mask Mask[T], a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(mask.n, a.n, b.n)}
	for i := range r.n {
		if mask.bits[i] {
			r.data[i] = a.data[i]
		} else {
			r.data[i] = b.data[i]
		}
	}
	return r
}

// IfThenElseZero returns a where mask is set, zero otherwise.
func IfThenElseZero[T Lanes](mask Mask[T], a Vec[T]) Vec[T] {
	r := Vec[T]{n: min(mask.n, a.n)}
	for i := range r.n {
		if mask.bits[i] {
			r.data[i] = a.data[i]
		}
	}
	return r
}

// Merge selects a where mask is set and b elsewhere. It has the operand
// order of a blend instruction and is equivalent to IfThenElse(mask, a, b).
func Merge[T Lanes](a, b Vec[T], mask Mask[T]) Vec[T] {
	return IfThenElse(mask, a, b)
}

// MaskAnd returns the lane-wise conjunction of two masks.
func MaskAnd[T Lanes](a, b Mask[T]) Mask[T] {
	m := Mask[T]{n: min(a.n, b.n)}
	for i := range m.n {
		m.bits[i] = a.bits[i] && b.bits[i]
	}
	return m
}

// MaskOr returns the lane-wise disjunction of two masks.
func MaskOr[T Lanes](a, b Mask[T]) Mask[T] {
	m := Mask[T]{n: min(a.n, b.n)}
	for i := range m.n {
		m.bits[i] = a.bits[i] || b.bits[i]
	}
	return m
}

// MaskNot inverts a mask.
func MaskNot[T Lanes](a Mask[T]) Mask[T] {
	m := Mask[T]{n: a.n}
	for i := range m.n {
		m.bits[i] = !a.bits[i]
	}
	return m
}

// MaskAndNot returns !a && b.
func MaskAndNot[T Lanes](a, b Mask[T]) Mask[T] {
	m := Mask[T]{n: min(a.n, b.n)}
	for i := range m.n {
		m.bits[i] = !a.bits[i] && b.bits[i]
	}
	return m
}

// And performs a lane-wise bitwise AND of the bit patterns.
func And[T Lanes](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		r.data[i] = fromBits[T](toBits(a.data[i]) & toBits(b.data[i]))
	}
	return r
}

// Or performs a lane-wise bitwise OR of the bit patterns.
func Or[T Lanes](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		r.data[i] = fromBits[T](toBits(a.data[i]) | toBits(b.data[i]))
	}
	return r
}

// Xor performs a lane-wise bitwise XOR of the bit patterns.
func Xor[T Lanes](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		r.data[i] = fromBits[T](toBits(a.data[i]) ^ toBits(b.data[i]))
	}
	return r
}

// AndNot computes ^a & b on the bit patterns.
func AndNot[T Lanes](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		r.data[i] = fromBits[T](^toBits(a.data[i]) & toBits(b.data[i]))
	}
	return r
}

// Not inverts every bit.
func Not[T Lanes](v Vec[T]) Vec[T] {
	ones := allOnes[T]()
	r := Vec[T]{n: v.n}
	for i := range v.n {
		r.data[i] = fromBits[T](toBits(v.data[i]) ^ ones)
	}
	return r
}

// SignBit returns a lane group with only the sign bit set in every lane.
func SignBit[T Lanes]() Vec[T] {
	return Set(fromBits[T](signMask[T]()))
}

// CopySign returns the magnitude of mag with the sign of sign.
func CopySign[T Floats](mag, sign Vec[T]) Vec[T] {
	s := SignBit[T]()
	return Or(AndNot(s, mag), And(s, sign))
}

// ShiftLeft shifts every integer lane left by bits.
func ShiftLeft[T Integers](v Vec[T], bits int) Vec[T] {
	r := Vec[T]{n: v.n}
	for i := range v.n {
		r.data[i] = v.data[i] << bits
	}
	return r
}

// ShiftRight shifts every integer lane right by bits (arithmetic for
// signed lanes).
func ShiftRight[T Integers](v Vec[T], bits int) Vec[T] {
	r := Vec[T]{n: v.n}
	for i := range v.n {
		r.data[i] = v.data[i] >> bits
	}
	return r
}
