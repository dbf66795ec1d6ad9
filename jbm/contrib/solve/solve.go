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

// Package solve finds a real root of quadratic and cubic equations inside
// a bracket [x1, x2], lane by lane.
//
// The solvers do not report failure. When no root lies in the bracket the
// returned lane holds one of the candidate roots anyway, or NaN when the
// equation has no real root at all. Callers that need to know must check
// the result against the bracket.
package solve

import (
	stdmath "math"

	"github.com/ajroetker/go-jbm/jbm"
	"github.com/ajroetker/go-jbm/jbm/contrib/math"
)

// inRange reports x1 <= x <= x2 per lane.
func inRange[T jbm.Floats](x, x1, x2 jbm.Vec[T]) jbm.Mask[T] {
	return jbm.MaskAnd(jbm.GreaterEqual(x, x1), jbm.LessEqual(x, x2))
}

// QuadraticReduced solves x^2 + a*x + b = 0.
//
// The root -a/2 - sqrt(a^2/4 - b) is returned unless it lies outside
// [x1, x2], in which case the other root is returned.
func QuadraticReduced[T jbm.Floats](a, b, x1, x2 jbm.Vec[T]) jbm.Vec[T] {
	h := jbm.Mul(a, jbm.Const[T](-0.5))
	s := jbm.Sqrt(jbm.Sub(jbm.Sqr(h), b))
	r1 := jbm.Sub(h, s)
	r2 := jbm.Add(h, s)
	return jbm.IfThenElse(inRange(r1, x1, x2), r1, r2)
}

// Quadratic solves a*x^2 + b*x + c = 0. Lanes where a is negligible
// return the root -c/b of the linear equation.
func Quadratic[T jbm.Floats](a, b, c, x1, x2 jbm.Vec[T]) jbm.Vec[T] {
	r := QuadraticReduced(jbm.Div(b, a), jbm.Div(c, a), x1, x2)
	lin := jbm.Neg(jbm.Div(c, b))
	return jbm.IfThenElse(jbm.Small(a), lin, r)
}

// CubicReduced solves x^3 + a*x^2 + b*x + c = 0.
//
// With x = t - a/3 the equation becomes t^3 + p*t + q = 0. When
// (q/2)^2 + (p/3)^3 < 0 there are three real roots
//
//	t_k = 2 sqrt(-p/3) cos(phi/3 - 2*pi*k/3), k = 0, 1, 2
//
// and the first one inside [x1, x2] is returned, t_2 if none is.
// Otherwise the single real root is given by Cardano's formula.
func CubicReduced[T jbm.Floats](a, b, c, x1, x2 jbm.Vec[T]) jbm.Vec[T] {
	a3 := jbm.Mul(a, jbm.Const[T](1.0/3.0))
	p := jbm.NegMulAdd(a, a3, b) // b - a^2/3
	q := jbm.Add(jbm.NegMulAdd(a3, b, jbm.Mul(jbm.Dbl(jbm.Sqr(a3)), a3)), c)
	hq := jbm.Mul(q, jbm.Const[T](-0.5))
	p3 := jbm.Mul(p, jbm.Const[T](1.0/3.0))
	disc := jbm.MulAdd(jbm.Sqr(p3), p3, jbm.Sqr(hq))

	// Three real roots, p < 0.
	m := jbm.Sqrt(jbm.Neg(p3))
	arg := jbm.Div(hq, jbm.Mul(m, jbm.Sqr(m)))
	arg = jbm.Min(jbm.Max(arg, jbm.Set[T](-1)), jbm.Set[T](1))
	phi := jbm.Mul(math.Acos(arg), jbm.Const[T](1.0/3.0))
	m2 := jbm.Dbl(m)
	third := jbm.Const[T](2 * stdmath.Pi / 3)
	t0 := jbm.Sub(jbm.Mul(m2, math.Cos(phi)), a3)
	t1 := jbm.Sub(jbm.Mul(m2, math.Cos(jbm.Sub(phi, third))), a3)
	t2 := jbm.Sub(jbm.Mul(m2, math.Cos(jbm.Sub(phi, jbm.Dbl(third)))), a3)
	trig := jbm.IfThenElse(inRange(t1, x1, x2), t1, t2)
	trig = jbm.IfThenElse(inRange(t0, x1, x2), t0, trig)

	// One real root.
	sd := jbm.Sqrt(jbm.Max(disc, jbm.Zero[T]()))
	u := math.Cbrt(jbm.Add(hq, sd))
	v := math.Cbrt(jbm.Sub(hq, sd))
	cardano := jbm.Sub(jbm.Add(u, v), a3)

	return jbm.IfThenElse(jbm.Less(disc, jbm.Zero[T]()), trig, cardano)
}

// Cubic solves a*x^3 + b*x^2 + c*x + d = 0. Lanes where a is negligible
// are solved as the quadratic b*x^2 + c*x + d = 0.
func Cubic[T jbm.Floats](a, b, c, d, x1, x2 jbm.Vec[T]) jbm.Vec[T] {
	r := CubicReduced(jbm.Div(b, a), jbm.Div(c, a), jbm.Div(d, a), x1, x2)
	return jbm.IfThenElse(jbm.Small(a), Quadratic(b, c, d, x1, x2), r)
}
