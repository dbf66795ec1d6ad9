package math

import (
	stdmath "math"

	"github.com/ajroetker/go-jbm/jbm"
)

// Atan computes the arc tangent.
//
// |x| above 3/2 is reflected through atan(x) = pi/2 - atan(1/x); the
// reduced argument then goes to Atanwc0 below 1/2 and to Atanwc1 above.
// The sign of x is restored last, so Atan(-0) = -0.
func Atan[T jbm.Floats](x jbm.Vec[T]) jbm.Vec[T] {
	ax := jbm.Abs(x)
	big := jbm.Greater(ax, jbm.Const[T](1.5))
	t := jbm.IfThenElse(big, jbm.Reciprocal(ax), ax)

	r := jbm.IfThenElse(jbm.Less(t, jbm.Const[T](0.5)), Atanwc0(t), Atanwc1(t))

	hi, lo := pair[T](pio2Split)
	r = jbm.IfThenElse(big, jbm.Add(jbm.Sub(hi, r), lo), r)
	return jbm.CopySign(r, x)
}

// Atan2 computes the angle of the point (x, y), in [-pi, pi].
//
// Atan(y/x) is shifted by pi with the sign of y where x is negative,
// including x = -0. Both-zero and both-infinite lanes follow IEEE-754.
func Atan2[T jbm.Floats](y, x jbm.Vec[T]) jbm.Vec[T] {
	zero := jbm.Zero[T]()
	q := jbm.Div(y, x)
	bothZero := jbm.MaskAnd(jbm.Equal(y, zero), jbm.Equal(x, zero))
	bothInf := jbm.MaskAnd(jbm.IsInf(y, 0), jbm.IsInf(x, 0))
	q = jbm.IfThenElse(bothZero, jbm.CopySign(zero, jbm.Xor(y, x)), q)
	q = jbm.IfThenElse(bothInf, jbm.CopySign(jbm.Set[T](1), jbm.Xor(y, x)), q)

	r := Atan(q)
	pi := jbm.CopySign(value[T](piSplit), y)
	return jbm.IfThenElse(jbm.SignBitMask(x), jbm.Add(r, pi), r)
}

// Asin computes the arc sine as Atan(x / sqrt((1-x)(1+x))).
// |x| > 1 gives NaN.
func Asin[T jbm.Floats](x jbm.Vec[T]) jbm.Vec[T] {
	one := jbm.Set[T](1)
	d := jbm.Sqrt(jbm.Mul(jbm.Sub(one, x), jbm.Add(one, x)))
	return Atan(jbm.Div(x, d))
}

// Acos computes the arc cosine as Atan(sqrt((1-x)(1+x)) / x), shifted by
// pi where x is negative. |x| > 1 gives NaN.
func Acos[T jbm.Floats](x jbm.Vec[T]) jbm.Vec[T] {
	one := jbm.Set[T](1)
	d := jbm.Sqrt(jbm.Mul(jbm.Sub(one, x), jbm.Add(one, x)))
	r := Atan(jbm.Div(d, x))
	return jbm.IfThenElse(jbm.SignBitMask(x), jbm.Add(r, jbm.Const[T](stdmath.Pi)), r)
}
