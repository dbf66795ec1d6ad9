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

import "github.com/ajroetker/go-jbm/jbm"

// exp2Bounds returns the range of base-2 exponents outside of which 2^y is
// 0 or +Inf. Clamping to it keeps the int32 conversion of floor(y) exact.
func exp2Bounds[T jbm.Floats]() (lo, hi jbm.Vec[T]) {
	ff := jbm.FormatOf[T]()
	return jbm.Set(T(ff.MinSubExp() - 2)), jbm.Set(T(ff.MaxExp + 2))
}

// exp2Split computes 2^(y + err) where err is a small correction to y
// carried separately. NaN lanes of y are not handled here.
func exp2Split[T jbm.Floats](y, err jbm.Vec[T]) jbm.Vec[T] {
	lo, hi := exp2Bounds[T]()
	yc := jbm.Max(jbm.Min(y, hi), lo)
	err = jbm.IfThenElseZero(jbm.Equal(y, yc), err)
	y = yc
	n := jbm.Floor(y)
	f := jbm.Add(jbm.Sub(y, n), err)
	return jbm.Ldexp(Exp2wc(f), jbm.ConvertToInt32(n))
}

// Exp2 computes 2^x.
//
// x is split into n = floor(x) and f = x - n in [0, 1); the result is
// Exp2wc(f) scaled by 2^n. Results overflow to +Inf, underflow gradually
// through the subnormals to 0, and NaN propagates.
func Exp2[T jbm.Floats](x jbm.Vec[T]) jbm.Vec[T] {
	r := exp2Split(x, jbm.Zero[T]())
	return jbm.IfThenElse(jbm.IsNaN(x), x, r)
}

// expBase computes b^x where log2(b) is given as a split constant.
// The product x*log2(b) is carried as hi + lo so that its fractional part
// keeps full precision for large x.
func expBase[T jbm.Floats](x jbm.Vec[T], log2b hilo) jbm.Vec[T] {
	chi, clo := pair[T](log2b)
	y := jbm.Mul(x, chi)
	err := jbm.MulAdd(x, clo, jbm.FMA(x, chi, jbm.Neg(y)))
	// Infinite lanes make err NaN; the clamp in exp2Split handles y alone.
	err = jbm.IfThenElseZero(jbm.IsFinite(err), err)
	r := exp2Split(y, err)
	return jbm.IfThenElse(jbm.IsNaN(x), x, r)
}

// Exp computes e^x.
func Exp[T jbm.Floats](x jbm.Vec[T]) jbm.Vec[T] {
	return expBase(x, log2eSplit)
}

// Exp10 computes 10^x.
func Exp10[T jbm.Floats](x jbm.Vec[T]) jbm.Vec[T] {
	return expBase(x, log2_10Split)
}

// Expm1 computes e^x - 1, accurate for small |x|.
//
// Arguments with |x| <= ln2/2 use the rational kernel; everything else is
// Exp(x) - 1, where the subtraction no longer cancels.
func Expm1[T jbm.Floats](x jbm.Vec[T]) jbm.Vec[T] {
	small := jbm.LessEqual(jbm.Abs(x), jbm.Mul(value[T](ln2Split), jbm.Const[T](0.5)))
	r := jbm.IfThenElse(small, Expm1wc(x), jbm.Sub(Exp(x), jbm.Set[T](1)))
	// Keeps the sign of zero.
	return jbm.IfThenElse(jbm.Equal(x, jbm.Zero[T]()), x, r)
}
