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

// Package algo applies lane-group kernels to whole slices.
//
// # Transform API
//
// Any function of type func(jbm.Vec[T]) jbm.Vec[T], such as the kernels
// of the math package, can be mapped over a slice:
//
//	ys := make([]float64, len(xs))
//	algo.Transform(xs, ys, math.Exp[float64])
//
// The slice is processed one lane group at a time. The last, partial group
// is loaded zero-padded and only its valid lanes are stored, so inputs of
// any length are accepted and out is never written past len(in).
//
// ParallelTransform splits the slice on lane-group boundaries over a
// workerpool.Pool.
package algo

import (
	"github.com/ajroetker/go-jbm/jbm"
	"github.com/ajroetker/go-jbm/jbm/contrib/workerpool"
)

// MinParallelBatch is the smallest batch, in elements, that
// ParallelTransform hands to a worker.
const MinParallelBatch = 1024

// Transform stores fn(in) into out for the first min(len(in), len(out))
// elements.
func Transform[T jbm.Floats](in, out []T, fn func(jbm.Vec[T]) jbm.Vec[T]) {
	n := min(len(in), len(out))
	lanes := jbm.MaxLanes[T]()
	i := 0
	for ; i+lanes <= n; i += lanes {
		fn(jbm.Load(in[i:])).Store(out[i:])
	}
	if i < n {
		fn(jbm.Load(in[i:n])).Store(out[i:n])
	}
}

// Transform2 stores fn(a, b) into out for the first
// min(len(a), len(b), len(out)) elements.
func Transform2[T jbm.Floats](a, b, out []T, fn func(x, y jbm.Vec[T]) jbm.Vec[T]) {
	n := min(len(a), len(b), len(out))
	lanes := jbm.MaxLanes[T]()
	i := 0
	for ; i+lanes <= n; i += lanes {
		fn(jbm.Load(a[i:]), jbm.Load(b[i:])).Store(out[i:])
	}
	if i < n {
		fn(jbm.Load(a[i:n]), jbm.Load(b[i:n])).Store(out[i:n])
	}
}

// ParallelTransform is Transform run over a worker pool. Each batch starts
// on a lane-group boundary, so the result is identical to Transform. A nil
// pool runs Transform on the calling goroutine.
func ParallelTransform[T jbm.Floats](pool *workerpool.Pool, in, out []T, fn func(jbm.Vec[T]) jbm.Vec[T]) {
	n := min(len(in), len(out))
	if pool == nil || n <= MinParallelBatch {
		Transform(in[:n], out[:n], fn)
		return
	}
	pool.ParallelForBatched(n, batchSize[T](n, pool.NumWorkers()), func(start, end int) {
		Transform(in[start:end], out[start:end], fn)
	})
}

// batchSize spreads n elements over a few batches per worker, rounded up
// to whole lane groups.
func batchSize[T jbm.Floats](n, workers int) int {
	lanes := jbm.MaxLanes[T]()
	b := max(n/(4*workers), MinParallelBatch)
	return (b + lanes - 1) / lanes * lanes
}
