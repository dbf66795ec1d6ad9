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

// reduce2Pi maps x into [0, 2pi) (up to rounding at the ends) by
// subtracting k*2pi, with 2pi carried as hi + lo.
func reduce2Pi[T jbm.Floats](x jbm.Vec[T]) jbm.Vec[T] {
	hi, lo := pair[T](pi2Split)
	k := jbm.Floor(jbm.Mul(x, jbm.Const[T](1/(2*stdmath.Pi))))
	nk := jbm.Neg(k)
	y := jbm.FMA(nk, hi, x)
	return jbm.FMA(nk, lo, y)
}

// sub subtracts a split constant from y.
func sub[T jbm.Floats](y jbm.Vec[T], c hilo) jbm.Vec[T] {
	hi, lo := pair[T](c)
	return jbm.Sub(jbm.Sub(y, hi), lo)
}

// octants holds the reduced argument shifted to the centre of each
// quarter period, for the select cascade of Sin and Cos. The reduction
// works on |x|; neg marks the lanes where Sin must change sign.
type octants[T jbm.Floats] struct {
	y, y1, y2, y3, y4 jbm.Vec[T]
	m1, m2, m3, m4    jbm.Mask[T]
	neg               jbm.Mask[T]
}

func newOctants[T jbm.Floats](x jbm.Vec[T]) octants[T] {
	y := reduce2Pi(jbm.Abs(x))
	pio4 := value[T](pio4Split)
	return octants[T]{
		y:   y,
		y1:  sub(y, pio2Split),
		y2:  sub(y, piSplit),
		y3:  sub(y, pi3o2Split),
		y4:  sub(y, pi2Split),
		m1:  jbm.Less(y, pio4),
		m2:  jbm.Less(y, jbm.Mul(pio4, jbm.Const[T](3))),
		m3:  jbm.Less(y, jbm.Mul(pio4, jbm.Const[T](5))),
		m4:  jbm.Less(y, jbm.Mul(pio4, jbm.Const[T](7))),
		neg: jbm.SignBitMask(x),
	}
}

// Sin computes sin(x).
//
// Sin is odd, so |x| is reduced to y in [0, 2pi) and the sign is applied
// at the end. The quarter periods are selected from the top down so that
// the last matching threshold wins:
//
//	y <  pi/4:  Sinwc(y)
//	y < 3pi/4:  Coswc(y - pi/2)
//	y < 5pi/4: -Sinwc(y - pi)
//	y < 7pi/4: -Coswc(y - 3pi/2)
//	otherwise:  Sinwc(y - 2pi)
func Sin[T jbm.Floats](x jbm.Vec[T]) jbm.Vec[T] {
	o := newOctants(x)
	r := Sinwc(o.y4)
	r = jbm.IfThenElse(o.m4, jbm.Opposite(Coswc(o.y3)), r)
	r = jbm.IfThenElse(o.m3, jbm.Opposite(Sinwc(o.y2)), r)
	r = jbm.IfThenElse(o.m2, Coswc(o.y1), r)
	r = jbm.IfThenElse(o.m1, Sinwc(o.y), r)
	return jbm.IfThenElse(o.neg, jbm.Opposite(r), r)
}

// Cos computes cos(x) with the same cascade as Sin.
func Cos[T jbm.Floats](x jbm.Vec[T]) jbm.Vec[T] {
	o := newOctants(x)
	r := Coswc(o.y4)
	r = jbm.IfThenElse(o.m4, Sinwc(o.y3), r)
	r = jbm.IfThenElse(o.m3, jbm.Opposite(Coswc(o.y2)), r)
	r = jbm.IfThenElse(o.m2, jbm.Opposite(Sinwc(o.y1)), r)
	return jbm.IfThenElse(o.m1, Coswc(o.y), r)
}

// SinCos computes sin(x) and cos(x) sharing one reduction.
func SinCos[T jbm.Floats](x jbm.Vec[T]) (s, c jbm.Vec[T]) {
	o := newOctants(x)
	s0, c0 := SinCoswc(o.y)
	s1, c1 := SinCoswc(o.y1)
	s2, c2 := SinCoswc(o.y2)
	s3, c3 := SinCoswc(o.y3)
	s4, c4 := SinCoswc(o.y4)

	s = s4
	s = jbm.IfThenElse(o.m4, jbm.Opposite(c3), s)
	s = jbm.IfThenElse(o.m3, jbm.Opposite(s2), s)
	s = jbm.IfThenElse(o.m2, c1, s)
	s = jbm.IfThenElse(o.m1, s0, s)
	s = jbm.IfThenElse(o.neg, jbm.Opposite(s), s)

	c = c4
	c = jbm.IfThenElse(o.m4, s3, c)
	c = jbm.IfThenElse(o.m3, jbm.Opposite(c2), c)
	c = jbm.IfThenElse(o.m2, jbm.Opposite(s1), c)
	c = jbm.IfThenElse(o.m1, c0, c)
	return s, c
}

// Tan computes tan(x) as Sin(x)/Cos(x).
func Tan[T jbm.Floats](x jbm.Vec[T]) jbm.Vec[T] {
	s, c := SinCos(x)
	return jbm.Div(s, c)
}
