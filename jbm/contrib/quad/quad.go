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

// Package quad integrates lane-group functions with Gauss-Legendre rules.
//
// Each lane integrates over its own interval [x1, x2]. The integrand is
// evaluated once per node on all lanes at the same time.
package quad

import (
	"sync"

	gquad "gonum.org/v1/gonum/integrate/quad"

	"github.com/ajroetker/go-jbm/jbm"
)

// GaussN is the number of nodes used by Integral.
const GaussN = 4

// rule holds the nodes and weights of a Gauss-Legendre rule on [-1, 1].
type rule struct {
	x, w []float64
}

// rules are the compiled-in rules for 1 to 4 nodes.
var rules = [...]rule{
	1: {x: []float64{0}, w: []float64{2}},
	2: {
		x: []float64{-0.5773502691896257, 0.5773502691896257},
		w: []float64{1, 1},
	},
	3: {
		x: []float64{-0.7745966692414834, 0, 0.7745966692414834},
		w: []float64{0.5555555555555556, 0.8888888888888888, 0.5555555555555556},
	},
	4: {
		x: []float64{-0.8611363115940526, -0.3399810435848563, 0.3399810435848563, 0.8611363115940526},
		w: []float64{0.3478548451374538, 0.6521451548625461, 0.6521451548625461, 0.3478548451374538},
	},
}

var cache sync.Map // int -> rule

// ruleFor returns the n-node rule. Rules above 4 nodes are computed by
// gonum once and cached.
func ruleFor(n int) rule {
	if n < len(rules) {
		return rules[n]
	}
	if r, ok := cache.Load(n); ok {
		return r.(rule)
	}
	r := rule{x: make([]float64, n), w: make([]float64, n)}
	gquad.Legendre{}.FixedLocations(r.x, r.w, -1, 1)
	cache.Store(n, r)
	return r
}

// Integral integrates f over [x1, x2] with GaussN nodes.
func Integral[T jbm.Floats](f func(jbm.Vec[T]) jbm.Vec[T], x1, x2 jbm.Vec[T]) jbm.Vec[T] {
	return IntegralN(f, x1, x2, GaussN)
}

// IntegralN integrates f over [x1, x2] with an n-node rule, which is exact
// for polynomials of degree up to 2n-1. n < 1 is treated as 1.
func IntegralN[T jbm.Floats](f func(jbm.Vec[T]) jbm.Vec[T], x1, x2 jbm.Vec[T], n int) jbm.Vec[T] {
	r := ruleFor(max(n, 1))
	half := jbm.Mul(jbm.Sub(x2, x1), jbm.Const[T](0.5))
	mid := jbm.Mul(jbm.Add(x1, x2), jbm.Const[T](0.5))
	sum := jbm.Zero[T]()
	for i, x := range r.x {
		fx := f(jbm.MulAdd(half, jbm.Const[T](x), mid))
		sum = jbm.MulAdd(jbm.Const[T](r.w[i]), fx, sum)
	}
	return jbm.Mul(sum, half)
}
