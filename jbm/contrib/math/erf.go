package math

import "github.com/ajroetker/go-jbm/jbm"

// Erf computes the error function.
//
// |x| < 1 uses Erfwc; larger arguments use erf(x) = sign(x)(1 - Erfcwc(|x|)).
func Erf[T jbm.Floats](x jbm.Vec[T]) jbm.Vec[T] {
	one := jbm.Set[T](1)
	ax := jbm.Abs(x)
	tail := jbm.CopySign(jbm.Sub(one, Erfcwc(ax)), x)
	r := jbm.IfThenElse(jbm.Less(ax, one), Erfwc(x), tail)
	return jbm.IfThenElse(jbm.IsNaN(x), x, r)
}

// Erfc computes the complementary error function.
//
//	x <= -1:    2 - Erfcwc(-x)
//	|x| < 1:    1 - Erfwc(x)
//	x >= 1:     Erfcwc(x)
func Erfc[T jbm.Floats](x jbm.Vec[T]) jbm.Vec[T] {
	one := jbm.Set[T](1)
	ax := jbm.Abs(x)
	tail := Erfcwc(ax)
	r := jbm.IfThenElse(jbm.SignBitMask(x), jbm.Sub(jbm.Const[T](2), tail), tail)
	r = jbm.IfThenElse(jbm.Less(ax, one), jbm.Sub(one, Erfwc(x)), r)
	return jbm.IfThenElse(jbm.IsNaN(x), x, r)
}
