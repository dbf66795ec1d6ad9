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

// Log2 computes log2(x).
//
// Frexp splits x into m in [1/2, 1) and e. Mantissas below sqrt(1/2) are
// moved up one binade (m*2, e-1) so that Log2wc sees [sqrt(1/2), sqrt(2)).
//
// Special cases:
//
//	Log2(+Inf) = +Inf
//	Log2(0) = -Inf
//	Log2(x < 0) = NaN
//	Log2(NaN) = NaN
func Log2[T jbm.Floats](x jbm.Vec[T]) jbm.Vec[T] {
	m, e := jbm.Frexp(x)
	low := jbm.Less(m, jbm.Const[T](stdmath.Sqrt2/2))
	m = jbm.IfThenElse(low, jbm.Dbl(m), m)
	e = jbm.IfThenElse(jbm.MaskFromFloat(low), jbm.Sub(e, jbm.Set[int32](1)), e)

	r := jbm.Add(Log2wc(m), jbm.ConvertFromInt32[T](e))

	r = jbm.IfThenElse(jbm.Equal(x, jbm.Zero[T]()), jbm.Const[T](stdmath.Inf(-1)), r)
	r = jbm.IfThenElse(jbm.IsInf(x, 1), x, r)
	nan := jbm.MaskOr(jbm.Less(x, jbm.Zero[T]()), jbm.IsNaN(x))
	return jbm.IfThenElse(nan, jbm.Const[T](stdmath.NaN()), r)
}

// Log computes the natural logarithm.
func Log[T jbm.Floats](x jbm.Vec[T]) jbm.Vec[T] {
	return jbm.Mul(Log2(x), value[T](ln2Split))
}

// Log10 computes the base-10 logarithm.
func Log10[T jbm.Floats](x jbm.Vec[T]) jbm.Vec[T] {
	return jbm.Mul(Log2(x), value[T](log10_2Split))
}

// Log1p computes log(1 + x), accurate for small |x|.
//
// With u = 1 + x rounded, log(u) * x/(u-1) corrects for the rounding of
// u; lanes where u == 1 return x.
func Log1p[T jbm.Floats](x jbm.Vec[T]) jbm.Vec[T] {
	one := jbm.Set[T](1)
	u := jbm.Add(one, x)
	d := jbm.Sub(u, one)
	r := jbm.Mul(Log(u), jbm.Div(x, d))
	r = jbm.IfThenElse(jbm.Equal(d, jbm.Zero[T]()), x, r)
	return jbm.IfThenElse(jbm.IsInf(x, 1), x, r)
}
