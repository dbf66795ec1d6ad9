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
	stdmath "math"

	"github.com/ajroetker/go-jbm/jbm"
)

// halfExp computes e^x/2 as (e^(x/2)) * (e^(x/2)/2), which stays finite
// up to the overflow threshold of sinh and cosh.
func halfExp[T jbm.Floats](x jbm.Vec[T]) jbm.Vec[T] {
	h := Exp(jbm.Mul(x, jbm.Const[T](0.5)))
	return jbm.Mul(h, jbm.Mul(h, jbm.Const[T](0.5)))
}

// Sinh computes the hyperbolic sine.
//
// With e = Expm1(|x|), sinh|x| = (e + e/(e+1))/2, which keeps full
// precision near zero. Beyond the clamp point the e^-x term is below
// rounding and the result is e^|x|/2.
func Sinh[T jbm.Floats](x jbm.Vec[T]) jbm.Vec[T] {
	ax := jbm.Abs(x)
	e := Expm1(ax)
	r := jbm.Mul(jbm.Add(e, jbm.Div(e, jbm.Add(e, jbm.Set[T](1)))), jbm.Const[T](0.5))
	big := jbm.Greater(ax, pick[T](tanhClamp32, tanhClamp64))
	r = jbm.IfThenElse(big, halfExp(ax), r)
	return jbm.CopySign(r, x)
}

// Cosh computes the hyperbolic cosine as (e + 1/e)/2 with e = Exp(|x|).
func Cosh[T jbm.Floats](x jbm.Vec[T]) jbm.Vec[T] {
	ax := jbm.Abs(x)
	e := Exp(ax)
	r := jbm.Mul(jbm.Add(e, jbm.Reciprocal(e)), jbm.Const[T](0.5))
	big := jbm.Greater(ax, pick[T](tanhClamp32, tanhClamp64))
	return jbm.IfThenElse(big, halfExp(ax), r)
}

// Tanh computes the hyperbolic tangent.
//
// With e = Expm1(2|x|), tanh|x| = e/(e+2). Lanes beyond the clamp point
// (9 for float32, 19 for float64) return exactly ±1.
func Tanh[T jbm.Floats](x jbm.Vec[T]) jbm.Vec[T] {
	ax := jbm.Abs(x)
	e := Expm1(jbm.Dbl(ax))
	r := jbm.Div(e, jbm.Add(e, jbm.Const[T](2)))
	big := jbm.Greater(ax, pick[T](tanhClamp32, tanhClamp64))
	r = jbm.IfThenElse(big, jbm.Set[T](1), r)
	return jbm.CopySign(r, x)
}

// logLarge computes log(2x) for the large-argument branch of the inverse
// hyperbolic functions.
func logLarge[T jbm.Floats](x jbm.Vec[T]) jbm.Vec[T] {
	return jbm.Add(Log(x), value[T](ln2Split))
}

// Asinh computes the inverse hyperbolic sine.
//
//	asinh|x| = log1p(|x| + x^2/(1 + sqrt(1 + x^2)))
//
// and log(2|x|) once x^2 dominates 1.
func Asinh[T jbm.Floats](x jbm.Vec[T]) jbm.Vec[T] {
	ax := jbm.Abs(x)
	one := jbm.Set[T](1)
	x2 := jbm.Sqr(ax)
	r := Log1p(jbm.Add(ax, jbm.Div(x2, jbm.Add(one, jbm.Sqrt(jbm.Add(one, x2))))))
	big := jbm.Greater(ax, pick[T](invLarge32, invLarge64))
	r = jbm.IfThenElse(big, logLarge(ax), r)
	return jbm.CopySign(r, x)
}

// Acosh computes the inverse hyperbolic cosine. x < 1 gives NaN.
//
//	acosh(x) = log1p(t + sqrt(2t + t^2)), t = x - 1
func Acosh[T jbm.Floats](x jbm.Vec[T]) jbm.Vec[T] {
	t := jbm.Sub(x, jbm.Set[T](1))
	r := Log1p(jbm.Add(t, jbm.Sqrt(jbm.MulAdd(t, t, jbm.Dbl(t)))))
	big := jbm.Greater(x, pick[T](invLarge32, invLarge64))
	r = jbm.IfThenElse(big, logLarge(x), r)
	return jbm.IfThenElse(jbm.Less(x, jbm.Set[T](1)), jbm.Const[T](stdmath.NaN()), r)
}

// Atanh computes the inverse hyperbolic tangent as log1p(2|x|/(1-|x|))/2
// with the sign of x. Atanh(±1) = ±Inf, |x| > 1 gives NaN.
func Atanh[T jbm.Floats](x jbm.Vec[T]) jbm.Vec[T] {
	ax := jbm.Abs(x)
	q := jbm.Div(jbm.Dbl(ax), jbm.Sub(jbm.Set[T](1), ax))
	r := jbm.Mul(Log1p(q), jbm.Const[T](0.5))
	return jbm.CopySign(r, x)
}
