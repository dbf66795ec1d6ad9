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

package main

import (
	"context"
	stdmath "math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/ajroetker/go-jbm/jbm/contrib/algo"
	"github.com/ajroetker/go-jbm/jbm/contrib/workerpool"
)

// Result is one row of the report.
type Result struct {
	Function  string  `csv:"function"`
	Precision string  `csv:"precision"`
	Lo        float64 `csv:"lo"`
	Hi        float64 `csv:"hi"`
	Samples   int     `csv:"samples"`
	MaxAbsErr float64 `csv:"max_abs_err"`
	MaxRelErr float64 `csv:"max_rel_err"`
	WorstX    float64 `csv:"worst_x"`
	Failures  int     `csv:"failures"`
	Pass      bool    `csv:"pass"`
}

// runCheck evaluates ch on the pool and compares every sample with the
// reference.
func runCheck(ctx context.Context, pool *workerpool.Pool, ch Check) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	fn := functions[ch.Function]

	xs := make([]float64, max(ch.Samples, 2))
	floats.Span(xs, ch.Lo, ch.Hi)
	xs = xs[:ch.Samples]

	var got []float64
	switch ch.Precision {
	case "float32":
		in := make([]float32, len(xs))
		for i, x := range xs {
			in[i] = float32(x)
			xs[i] = float64(in[i])
		}
		out := make([]float32, len(in))
		algo.ParallelTransform(pool, in, out, fn.f32)
		got = make([]float64, len(out))
		for i, y := range out {
			got[i] = float64(y)
		}
	default:
		got = make([]float64, len(xs))
		algo.ParallelTransform(pool, xs, got, fn.f64)
	}

	res := Result{
		Function:  ch.Function,
		Precision: ch.Precision,
		Lo:        ch.Lo,
		Hi:        ch.Hi,
		Samples:   ch.Samples,
	}
	worst := -1.0
	for i, x := range xs {
		want := fn.ref(x)
		g := got[i]
		if g == want || (stdmath.IsNaN(g) && stdmath.IsNaN(want)) {
			continue
		}
		absErr := stdmath.Abs(g - want)
		relErr := absErr / stdmath.Abs(want)
		if stdmath.IsNaN(absErr) {
			absErr, relErr = stdmath.Inf(1), stdmath.Inf(1)
		}
		res.MaxAbsErr = max(res.MaxAbsErr, absErr)
		res.MaxRelErr = max(res.MaxRelErr, relErr)
		if e := min(absErr, relErr); e > worst {
			worst = e
			res.WorstX = x
		}
		if !scalar.EqualWithinAbsOrRel(g, want, ch.Tolerance, ch.Tolerance) {
			res.Failures++
		}
	}
	res.Pass = res.Failures == 0
	return res, nil
}
