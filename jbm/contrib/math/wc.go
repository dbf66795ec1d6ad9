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

package math

import (
	"github.com/ajroetker/go-jbm/jbm"
	"github.com/ajroetker/go-jbm/jbm/contrib/poly"
)

// The *wc kernels are only valid on their reduction interval. Outside it
// they return finite but meaningless values; the full-domain functions
// are responsible for reducing the argument first.

// Exp2wc computes 2^x for x in [0, 1).
func Exp2wc[T jbm.Floats](x jbm.Vec[T]) jbm.Vec[T] {
	return poly.EvalPolynomial(&exp2wcTable, x)
}

// Expm1wc computes e^x - 1 for x in [-ln2/2, ln2/2].
func Expm1wc[T jbm.Floats](x jbm.Vec[T]) jbm.Vec[T] {
	return poly.EvalRational(&expm1wcTable, x)
}

// Log2wc computes log2(x) for x in [1/2, 1), and stays accurate up to 2.
//
//	s = (x-1)/(x+1), log2(x) = s*R(s^2)
func Log2wc[T jbm.Floats](x jbm.Vec[T]) jbm.Vec[T] {
	one := jbm.Set[T](1)
	s := jbm.Div(jbm.Sub(x, one), jbm.Add(x, one))
	return jbm.Mul(s, poly.EvalRational(&log2wcTable, jbm.Sqr(s)))
}

// Sinwc computes sin(x) for x in [-pi/4, pi/4].
func Sinwc[T jbm.Floats](x jbm.Vec[T]) jbm.Vec[T] {
	return jbm.Mul(x, poly.EvalPolynomial(&sinwcTable, jbm.Sqr(x)))
}

// Coswc computes cos(x) for x in [-pi/4, pi/4].
func Coswc[T jbm.Floats](x jbm.Vec[T]) jbm.Vec[T] {
	return poly.EvalPolynomial(&coswcTable, jbm.Sqr(x))
}

// SinCoswc computes Sinwc and Coswc of the same argument.
func SinCoswc[T jbm.Floats](x jbm.Vec[T]) (s, c jbm.Vec[T]) {
	x2 := jbm.Sqr(x)
	s = jbm.Mul(x, poly.EvalPolynomial(&sinwcTable, x2))
	c = poly.EvalPolynomial(&coswcTable, x2)
	return s, c
}

// Atanwc0 computes atan(x) for x in [0, 1/2].
func Atanwc0[T jbm.Floats](x jbm.Vec[T]) jbm.Vec[T] {
	return jbm.Mul(x, poly.EvalRational(&atanwc0Table, jbm.Sqr(x)))
}

// Atanwc1 computes atan(x) for x in [1/2, 3/2].
//
//	t = (x-1)/(x+1), atan(x) = pi/4 + t*R(t^2)
func Atanwc1[T jbm.Floats](x jbm.Vec[T]) jbm.Vec[T] {
	one := jbm.Set[T](1)
	t := jbm.Div(jbm.Sub(x, one), jbm.Add(x, one))
	hi, lo := pair[T](pio4Split)
	r := jbm.MulAdd(t, poly.EvalRational(&atanwc1Table, jbm.Sqr(t)), lo)
	return jbm.Add(hi, r)
}

// Erfwc computes erf(x) for x in [-1, 1].
func Erfwc[T jbm.Floats](x jbm.Vec[T]) jbm.Vec[T] {
	return jbm.Mul(x, poly.EvalRational(&erfwcTable, jbm.Sqr(x)))
}

// Erfcwc computes erfc(x) for x >= 1. Lanes beyond the underflow cutoff
// return exactly 0.
//
//	z = (x-5)/(x+3), erfc(x) = e^(-x^2)/x * P(z)
func Erfcwc[T jbm.Floats](x jbm.Vec[T]) jbm.Vec[T] {
	z := jbm.Div(jbm.Sub(x, jbm.Const[T](5)), jbm.Add(x, jbm.Const[T](3)))
	p := poly.EvalPolynomial(&erfcwcTable, z)

	// e^(-x^2) with x^2 carried as hi + lo.
	hi := jbm.Mul(x, x)
	lo := jbm.FMA(x, x, jbm.Neg(hi))
	e := Exp(jbm.Neg(hi))
	e = jbm.NegMulAdd(e, lo, e)

	r := jbm.Div(jbm.Mul(e, p), x)
	return jbm.IfThenElseZero(jbm.Less(x, pick[T](erfcCutoff32, erfcCutoff64)), r)
}
