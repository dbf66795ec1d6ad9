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

import "unsafe"

// Build-time configuration. All switches are constants; nothing here is
// mutable at runtime.

const (
	// Epsilon32 is the float32 machine epsilon (FLT_EPSILON).
	Epsilon32 float32 = 1.1920928955078125e-07

	// Epsilon64 is the float64 machine epsilon (DBL_EPSILON).
	Epsilon64 float64 = 2.220446049250313e-16
)

// Epsilon returns the machine epsilon of T.
func Epsilon[T Floats]() T {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return T(Epsilon32)
	}
	return T(Epsilon64)
}

// Format describes the IEEE-754 binary layout of a float lane type.
type Format struct {
	// MantBits is the number of explicit mantissa bits (23 or 52).
	MantBits uint
	// Bias is the exponent bias (127 or 1023).
	Bias int32
	// MinExp is the smallest normal unbiased exponent (-126 or -1022).
	MinExp int32
	// MaxExp is the largest finite unbiased exponent (127 or 1023).
	MaxExp int32
	// ExpMask selects the biased exponent field.
	ExpMask uint64
	// SignMask selects the sign bit.
	SignMask uint64
}

var (
	format32 = Format{
		MantBits: 23,
		Bias:     127,
		MinExp:   -126,
		MaxExp:   127,
		ExpMask:  0x7f800000,
		SignMask: 0x80000000,
	}
	format64 = Format{
		MantBits: 52,
		Bias:     1023,
		MinExp:   -1022,
		MaxExp:   1023,
		ExpMask:  0x7ff0000000000000,
		SignMask: 0x8000000000000000,
	}
)

// FormatOf returns the binary layout of T.
func FormatOf[T Floats]() Format {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return format32
	}
	return format64
}

// MinSubExp returns the exponent of the smallest subnormal of the format.
func (f Format) MinSubExp() int32 {
	return f.MinExp - int32(f.MantBits)
}

// toBits returns the bit pattern of a lane value, zero-extended to 64 bits.
func toBits[T Lanes](x T) uint64 {
	if unsafe.Sizeof(x) == 4 {
		return uint64(*(*uint32)(unsafe.Pointer(&x)))
	}
	return *(*uint64)(unsafe.Pointer(&x))
}

// fromBits builds a lane value from the low bits of b.
func fromBits[T Lanes](b uint64) T {
	var x T
	if unsafe.Sizeof(x) == 4 {
		*(*uint32)(unsafe.Pointer(&x)) = uint32(b)
	} else {
		*(*uint64)(unsafe.Pointer(&x)) = b
	}
	return x
}

// signMask returns the sign bit of a lane type of T's width.
func signMask[T Lanes]() uint64 {
	var x T
	if unsafe.Sizeof(x) == 4 {
		return 0x80000000
	}
	return 0x8000000000000000
}

// allOnes returns a bit pattern with every bit of T set.
func allOnes[T Lanes]() uint64 {
	var x T
	if unsafe.Sizeof(x) == 4 {
		return 0xffffffff
	}
	return 0xffffffffffffffff
}
