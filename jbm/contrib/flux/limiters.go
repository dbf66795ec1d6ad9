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

// Package flux provides flux limiters for finite-volume schemes.
//
// A limiter maps two consecutive gradients d1 and d2 to a coefficient
// psi(r), r = d1/d2, that scales the high-order correction of the flux.
// Every limiter except Total and Centred returns 0 where d1*d2 <= Epsilon,
// that is where the gradients are negligible or of opposite sign.
package flux

import "github.com/ajroetker/go-jbm/jbm"

// guard returns r where d1*d2 > Epsilon and 0 elsewhere.
func guard[T jbm.Floats](d1, d2, r jbm.Vec[T]) jbm.Vec[T] {
	return jbm.IfThenElseZero(jbm.Greater(jbm.Mul(d1, d2), jbm.Set(jbm.Epsilon[T]())), r)
}

// Total returns 1: the high-order correction is always applied.
func Total[T jbm.Floats](d1, d2 jbm.Vec[T]) jbm.Vec[T] {
	return jbm.Set[T](1)
}

// Null returns 0: the scheme stays first order.
func Null[T jbm.Floats](d1, d2 jbm.Vec[T]) jbm.Vec[T] {
	return jbm.Zero[T]()
}

// Centred returns d1/d2, and 0 where d2 is negligible.
func Centred[T jbm.Floats](d1, d2 jbm.Vec[T]) jbm.Vec[T] {
	return jbm.IfThenElse(jbm.Small(d2), jbm.Zero[T](), jbm.Div(d1, d2))
}

// Superbee returns max(min(2r, 1), min(r, 2)).
func Superbee[T jbm.Floats](d1, d2 jbm.Vec[T]) jbm.Vec[T] {
	r := jbm.Div(d1, d2)
	psi := jbm.Max(jbm.Min(jbm.Dbl(r), jbm.Set[T](1)), jbm.Min(r, jbm.Const[T](2)))
	return guard(d1, d2, psi)
}

// Minmod returns min(r, 1).
func Minmod[T jbm.Floats](d1, d2 jbm.Vec[T]) jbm.Vec[T] {
	return guard(d1, d2, jbm.Min(jbm.Div(d1, d2), jbm.Set[T](1)))
}

// VanLeer returns (r + |r|)/(1 + |r|).
func VanLeer[T jbm.Floats](d1, d2 jbm.Vec[T]) jbm.Vec[T] {
	r := jbm.Div(d1, d2)
	ar := jbm.Abs(r)
	return guard(d1, d2, jbm.Div(jbm.Add(r, ar), jbm.Add(jbm.Set[T](1), ar)))
}

// VanAlbada returns (r + r^2)/(1 + r^2).
func VanAlbada[T jbm.Floats](d1, d2 jbm.Vec[T]) jbm.Vec[T] {
	r := jbm.Div(d1, d2)
	r2 := jbm.Sqr(r)
	return guard(d1, d2, jbm.Div(jbm.Add(r, r2), jbm.Add(jbm.Set[T](1), r2)))
}

// Minsuper returns min(r, 2).
func Minsuper[T jbm.Floats](d1, d2 jbm.Vec[T]) jbm.Vec[T] {
	return guard(d1, d2, jbm.Min(jbm.Div(d1, d2), jbm.Const[T](2)))
}

// Supermin returns min(2r, 1).
func Supermin[T jbm.Floats](d1, d2 jbm.Vec[T]) jbm.Vec[T] {
	return guard(d1, d2, jbm.Min(jbm.Dbl(jbm.Div(d1, d2)), jbm.Set[T](1)))
}

// MonotonizedCentral returns min(2r, (1 + r)/2, 2).
func MonotonizedCentral[T jbm.Floats](d1, d2 jbm.Vec[T]) jbm.Vec[T] {
	r := jbm.Div(d1, d2)
	mean := jbm.Mul(jbm.Add(r, jbm.Set[T](1)), jbm.Const[T](0.5))
	psi := jbm.Min(jbm.Min(jbm.Dbl(r), mean), jbm.Const[T](2))
	return guard(d1, d2, psi)
}

// Mean returns (1 + r)/2.
func Mean[T jbm.Floats](d1, d2 jbm.Vec[T]) jbm.Vec[T] {
	r := jbm.Div(d1, d2)
	return guard(d1, d2, jbm.Mul(jbm.Add(r, jbm.Set[T](1)), jbm.Const[T](0.5)))
}
