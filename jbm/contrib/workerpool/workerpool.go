// Copyright 2025 The go-jbm Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool for evaluating
// kernels over large slices. A Pool is created once and shared by all the
// bulk operations of a program, so a call does not pay for spawning
// goroutines.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ParallelFor(len(xs), func(start, end int) {
//	    algo.Transform(xs[start:end], ys[start:end], math.Exp[float64])
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned by New and live
// until Close.
type Pool struct {
	numWorkers int
	tasks      chan task
	closeOnce  sync.Once
	closed     atomic.Bool
}

type task struct {
	fn   func()
	done *sync.WaitGroup
}

// New creates a pool of numWorkers goroutines. numWorkers <= 0 uses
// GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		numWorkers: numWorkers,
		tasks:      make(chan task, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for t := range p.tasks {
		t.fn()
		t.done.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close stops the workers once pending work has finished. It is safe to
// call more than once. A closed pool runs every call on the caller's
// goroutine.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.tasks)
	})
}

// run submits fn to k workers and waits for all of them.
func (p *Pool) run(k int, fn func()) {
	var wg sync.WaitGroup
	wg.Add(k)
	for range k {
		p.tasks <- task{fn: fn, done: &wg}
	}
	wg.Wait()
}

// ParallelFor splits [0, n) into one contiguous range per worker and calls
// fn(start, end) for each. It blocks until every range is done.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	workers := min(p.numWorkers, n)
	if workers == 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers
	var next atomic.Int64
	p.run(workers, func() {
		start := int(next.Add(1)-1) * chunk
		if start < n {
			fn(start, min(start+chunk, n))
		}
	})
}

// ParallelForBatched calls fn on consecutive batches of batchSize indices
// of [0, n), the last one possibly shorter. Workers take the next free
// batch when they finish one, which balances uneven work. batchSize <= 0
// is treated as 1.
func (p *Pool) ParallelForBatched(n, batchSize int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	batchSize = max(batchSize, 1)
	batches := (n + batchSize - 1) / batchSize
	workers := min(p.numWorkers, batches)
	if workers == 1 || p.closed.Load() {
		for start := 0; start < n; start += batchSize {
			fn(start, min(start+batchSize, n))
		}
		return
	}

	var next atomic.Int64
	p.run(workers, func() {
		for {
			start := int(next.Add(1)-1) * batchSize
			if start >= n {
				return
			}
			fn(start, min(start+batchSize, n))
		}
	})
}
