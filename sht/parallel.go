// SPDX-License-Identifier: MIT

package sht

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// split divides a worker budget between batch elements (outer) and orders
// within one element (inner). outer·inner never exceeds the budget.
func split(workers, batch int) (outer, inner int) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	outer = max(1, min(workers, batch))
	inner = max(1, workers/outer)

	return outer, inner
}

// parallelFor runs fn over [0, n) split into at most workers contiguous chunks.
// Each chunk runs on its own goroutine, so fn may keep per-chunk scratch state.
func parallelFor(n, workers int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	workers = min(workers, n)
	if workers <= 1 {
		fn(0, n)
		return
	}
	chunk := (n + workers - 1) / workers
	var g errgroup.Group
	for start := 0; start < n; start += chunk {
		start, end := start, min(start+chunk, n)
		g.Go(func() error {
			fn(start, end)
			return nil
		})
	}
	_ = g.Wait()
}

// parallelEach runs fn(i) for every i in [0, n) with at most workers in flight.
// Work per order shrinks with m, so orders are dispatched one by one rather
// than in contiguous chunks.
func parallelEach(n, workers int, fn func(i int)) {
	if workers <= 1 || n <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}
	var g errgroup.Group
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			fn(i)
			return nil
		})
	}
	_ = g.Wait()
}
