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

// Package poly evaluates polynomials and rational functions on lane groups.
//
// Coefficients are ordered by ascending power: c[0] is the constant term.
// Evaluation uses Horner's scheme with one MulAdd per coefficient, starting
// from the innermost (highest-degree) term, so any degree from 0 upward is
// handled by the same routine.
//
// Rational evaluates n(x) / (1 + x*d(x)): the denominator's constant term
// is an implicit 1 and is not stored, so a table of length L split at m
// describes a numerator of degree m and a denominator of degree L-1-m.
package poly

import (
	"unsafe"

	"github.com/ajroetker/go-jbm/jbm"
)

// Polynomial evaluates c[0] + c[1]*x + ... + c[n]*x^n on every lane.
// An empty table evaluates to zero.
func Polynomial[T jbm.Floats](x jbm.Vec[T], c []T) jbm.Vec[T] {
	n := len(c) - 1
	if n < 0 {
		return jbm.Zero[T]()
	}
	p := jbm.Set(c[n])
	for i := n - 1; i >= 0; i-- {
		p = jbm.MulAdd(p, x, jbm.Set(c[i]))
	}
	return p
}

// Rational evaluates Polynomial(x, c[:m+1]) / (1 + x*Polynomial(x, c[m+1:])).
// Lanes at a root of the denominator give Inf or NaN.
func Rational[T jbm.Floats](x jbm.Vec[T], c []T, m int) jbm.Vec[T] {
	num := Polynomial(x, c[:m+1])
	if len(c) == m+1 {
		return num
	}
	den := jbm.MulAdd(x, Polynomial(x, c[m+1:]), jbm.Set[T](1))
	return jbm.Div(num, den)
}

// Table holds one approximation in both precisions. The float32 and
// float64 sets are fitted separately and usually differ in length.
type Table struct {
	F32 []float32
	F64 []float64
	// M32 and M64 are the numerator degrees of rational tables.
	M32, M64 int
}

// Coeffs returns the coefficients of t for T without copying.
func Coeffs[T jbm.Floats](t *Table) []T {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(t.F32))), len(t.F32))
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(t.F64))), len(t.F64))
}

// Split returns the numerator degree of t for T.
func Split[T jbm.Floats](t *Table) int {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return t.M32
	}
	return t.M64
}

// EvalPolynomial evaluates t as a polynomial in the precision of x.
func EvalPolynomial[T jbm.Floats](t *Table, x jbm.Vec[T]) jbm.Vec[T] {
	return Polynomial(x, Coeffs[T](t))
}

// EvalRational evaluates t as a rational function in the precision of x.
func EvalRational[T jbm.Floats](t *Table, x jbm.Vec[T]) jbm.Vec[T] {
	return Rational(x, Coeffs[T](t), Split[T](t))
}
