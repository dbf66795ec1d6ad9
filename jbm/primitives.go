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

// Bit-level float primitives. These are the lowest layer of the kernels:
// everything in the contrib packages is built from them and the lane
// operations.

// Opposite flips the sign bit of every lane (NaN payloads are kept).
func Opposite[T Floats](x Vec[T]) Vec[T] {
	return Xor(x, SignBit[T]())
}

// Abs clears the sign bit of every lane.
func Abs[T Floats](x Vec[T]) Vec[T] {
	return AndNot(SignBit[T](), x)
}

// Reciprocal returns 1/x. Zero lanes give signed infinity.
func Reciprocal[T Floats](x Vec[T]) Vec[T] {
	return Div(Set[T](1), x)
}

// Small returns the mask of lanes with |x| < Epsilon[T]().
func Small[T Floats](x Vec[T]) Mask[T] {
	return Less(Abs(x), Set(Epsilon[T]()))
}

// Modmin returns 0 in lanes where a*b <= 0 and otherwise the operand of
// smaller magnitude. It is the minmod selector of slope limiters.
func Modmin[T Floats](a, b Vec[T]) Vec[T] {
	m := IfThenElse(Greater(Abs(a), Abs(b)), b, a)
	return IfThenElseZero(Greater(Mul(a, b), Zero[T]()), m)
}

// Dbl returns x + x.
func Dbl[T Floats](x Vec[T]) Vec[T] {
	return Add(x, x)
}

// Sqr returns x * x.
func Sqr[T Floats](x Vec[T]) Vec[T] {
	return Mul(x, x)
}

// Change exchanges two lane groups.
func Change[T Lanes](a, b *Vec[T]) {
	*a, *b = *b, *a
}

// exponentField builds floats from biased exponents with an empty
// mantissa: the exponent lanes shifted into the exponent field and bit
// cast. Bits outside the field are dropped.
func exponentField[T Floats](biased Vec[int32]) Vec[T] {
	ff := FormatOf[T]()
	r := Vec[T]{n: min(biased.n, MaxLanes[T]())}
	for i := range r.n {
		r.data[i] = fromBits[T]((uint64(uint32(biased.data[i])) << ff.MantBits) & ff.ExpMask)
	}
	return r
}

// exponentBits extracts the biased exponent field of every lane.
func exponentBits[T Floats](x Vec[T]) Vec[int32] {
	ff := FormatOf[T]()
	r := Vec[int32]{n: x.n}
	for i := range x.n {
		r.data[i] = int32((toBits(x.data[i]) & ff.ExpMask) >> ff.MantBits)
	}
	return r
}

// maskAs reinterprets a mask over exponent lanes as a mask over T lanes.
func maskAs[T Floats](m Mask[int32]) Mask[T] {
	return Mask[T]{bits: m.bits, n: min(m.n, MaxLanes[T]())}
}

// Frexp splits every lane into a mantissa in [0.5, 1) and an exponent with
// x = mant * 2^exp. Subnormal lanes are normalised first. Zero, infinite and
// NaN lanes return x unchanged with exponent 0.
func Frexp[T Floats](x Vec[T]) (Vec[T], Vec[int32]) {
	ff := FormatOf[T]()
	zero := Zero[T]()
	mb := int32(ff.MantBits)

	// Subnormals: scale by 2^mb into the normal range and re-extract.
	tiny := MaskAnd(Less(Abs(x), exponentField[T](Set[int32](1))), NotEqual(x, zero))
	scaled := IfThenElse(tiny, Mul(x, exponentField[T](Set(ff.Bias+mb))), x)

	field := exponentField[T](Set(2*ff.Bias + 1))
	mant := Or(AndNot(field, scaled), exponentField[T](Set(ff.Bias-1)))
	exp := Sub(exponentBits(scaled), Set(ff.Bias-1))
	exp = IfThenElse(MaskFromFloat(tiny), Sub(exp, Set(mb)), exp)

	special := MaskOr(Equal(x, zero), MaskNot(IsFinite(x)))
	return IfThenElse(special, x, mant), IfThenElseZero(MaskFromFloat(special), exp)
}

// Exp2n returns 2^e for every exponent lane, assembled directly in the
// exponent field. Exponents below the normal range produce subnormals,
// below the subnormal range 0, above the finite range +Inf. The result
// has min(e.NumLanes(), MaxLanes[T]()) lanes.
func Exp2n[T Floats](e Vec[int32]) Vec[T] {
	ff := FormatOf[T]()
	mb := int32(ff.MantBits)
	lo, hi := Set(ff.MinExp), Set(ff.MaxExp)

	normal := exponentField[T](Add(Max(Min(e, hi), lo), Set(ff.Bias)))
	// 2^(e+mb) * 2^-mb is exact for every subnormal power of two.
	up := Max(Min(Add(e, Set(mb)), hi), lo)
	sub := Mul(exponentField[T](Add(up, Set(ff.Bias))), exponentField[T](Set(ff.Bias-mb)))

	r := IfThenElse(maskAs[T](Less(e, lo)), sub, normal)
	r = IfThenElse(maskAs[T](Greater(e, hi)), exponentField[T](Set(2*ff.Bias+1)), r)
	return IfThenElseZero(maskAs[T](GreaterEqual(e, Set(ff.MinSubExp()))), r)
}

// Ldexp returns x * 2^e. The scaling is applied in two halves so that
// results in the subnormal range and intermediate overflow are handled.
// Zero, infinite and NaN lanes of x are returned unchanged.
func Ldexp[T Floats](x Vec[T], e Vec[int32]) Vec[T] {
	ff := FormatOf[T]()
	lim := 2 * (ff.Bias + int32(ff.MantBits))
	k := Max(Min(e, Set(lim)), Set(-lim))
	h := ShiftRight(k, 1)
	r := Mul(Mul(x, Exp2n[T](h)), Exp2n[T](Sub(k, h)))
	keep := MaskOr(Equal(x, Zero[T]()), MaskNot(IsFinite(x)))
	return IfThenElse(keep, x, r)
}
