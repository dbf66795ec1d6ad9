package math

import (
	stdmath "math"

	"github.com/ajroetker/go-jbm/jbm"
)

// maxPownExponent bounds the integral exponents Pow hands to Pown.
const maxPownExponent = 1 << 16

// Pown computes x^n by repeated squaring. Pown(x, 0) is 1 for every x.
// Negative n take the reciprocal of x^|n|.
func Pown[T jbm.Floats](x jbm.Vec[T], n int) jbm.Vec[T] {
	k := n
	if k < 0 {
		k = -k
	}
	r := jbm.Set[T](1)
	b := x
	for k > 0 {
		if k&1 != 0 {
			r = jbm.Mul(r, b)
		}
		k >>= 1
		if k > 0 {
			b = jbm.Sqr(b)
		}
	}
	if n < 0 {
		r = jbm.Reciprocal(r)
	}
	return r
}

// Pow computes x^e for a scalar exponent shared by all lanes.
//
// Integral exponents use Pown, so negative bases are allowed there.
// Other exponents compute Exp2(e * Log2(x)), which is NaN for x < 0.
// Pow(1, e) is 1 for every e, including ±Inf and NaN.
func Pow[T jbm.Floats](x jbm.Vec[T], e T) jbm.Vec[T] {
	fe := float64(e)
	if fe == stdmath.Trunc(fe) && stdmath.Abs(fe) <= maxPownExponent {
		return Pown(x, int(fe))
	}
	one := jbm.Set[T](1)
	r := Exp2(jbm.Mul(jbm.Set(e), Log2(x)))
	return jbm.IfThenElse(jbm.Equal(x, one), one, r)
}

// PowVec computes x^y lane by lane.
//
// Negative bases are defined for integral y, with the sign given by the
// parity of y; y == 0 gives 1 for every x and x == 1 gives 1 for every y.
func PowVec[T jbm.Floats](x, y jbm.Vec[T]) jbm.Vec[T] {
	r := Exp2(jbm.Mul(y, Log2(jbm.Abs(x))))

	yInt := jbm.Equal(jbm.Trunc(y), y)
	half := jbm.Mul(y, jbm.Const[T](0.5))
	yOdd := jbm.MaskAnd(yInt, jbm.NotEqual(jbm.Trunc(half), half))
	neg := jbm.Less(x, jbm.Zero[T]())

	r = jbm.IfThenElse(jbm.MaskAnd(neg, yOdd), jbm.Neg(r), r)
	r = jbm.IfThenElse(jbm.MaskAndNot(yInt, neg), jbm.Const[T](stdmath.NaN()), r)
	unit := jbm.MaskOr(jbm.Equal(y, jbm.Zero[T]()), jbm.Equal(x, jbm.Set[T](1)))
	return jbm.IfThenElse(unit, jbm.Set[T](1), r)
}

// Cbrt computes the cube root, keeping the sign of x.
//
// The estimate sign(x)*Pow(|x|, 1/3) is refined by one Newton step on the
// finite, non-zero lanes.
func Cbrt[T jbm.Floats](x jbm.Vec[T]) jbm.Vec[T] {
	ax := jbm.Abs(x)
	r := Pow(ax, T(1.0/3.0))

	// r += (ax/r^2 - r)/3
	step := jbm.Mul(jbm.Sub(jbm.Div(ax, jbm.Sqr(r)), r), jbm.Const[T](1.0/3.0))
	ok := jbm.MaskAnd(jbm.IsFinite(ax), jbm.Greater(ax, jbm.Zero[T]()))
	r = jbm.IfThenElse(ok, jbm.Add(r, step), r)
	return jbm.CopySign(r, x)
}
