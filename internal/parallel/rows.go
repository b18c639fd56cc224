// Package parallel provides helpers for splitting grid work across
// goroutines.
//
// Field synthesis is embarrassingly parallel across rows: no pixel depends
// on another pixel's result. Rows therefore hands each worker a contiguous,
// non-overlapping row band so workers can write into disjoint slices of a
// shared buffer without any synchronization.
package parallel

import (
	"runtime"
	"sync"
)

// Workers resolves a requested worker count.
// Zero or negative selects GOMAXPROCS.
func Workers(n int) int {
	if n <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return n
}

// Rows runs fn over [0, total) split into contiguous bands, one band per
// worker. fn is called as fn(start, end) with start inclusive and end
// exclusive. Bands never overlap and together cover the full range.
//
// Rows blocks until every band has completed. With one worker (or a total
// of one row) fn runs on the calling goroutine.
func Rows(total, workers int, fn func(start, end int)) {
	if total <= 0 {
		return
	}
	workers = Workers(workers)
	if workers > total {
		workers = total
	}
	if workers == 1 {
		fn(0, total)
		return
	}

	band := (total + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < total; start += band {
		end := start + band
		if end > total {
			end = total
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}
