// Copyright 2026 The go-imgbridge Authors. SPDX-License-Identifier: Apache-2.0

package batch

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool keeps a fixed set of conversion goroutines alive between batches,
// so a camera loop converting one batch per frame does not spawn
// goroutines per frame.
type Pool struct {
	size    int
	jobs    chan func()
	once    sync.Once
	stopped atomic.Bool
}

// NewPool starts numWorkers goroutines. If numWorkers <= 0, GOMAXPROCS is used.
func NewPool(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{size: numWorkers, jobs: make(chan func(), numWorkers)}
	for range numWorkers {
		go p.run()
	}
	return p
}

func (p *Pool) run() {
	for job := range p.jobs {
		job()
	}
}

// NumWorkers returns the number of goroutines in the pool.
func (p *Pool) NumWorkers() int {
	return p.size
}

// Close stops the goroutines. It is idempotent; Each on a closed pool
// runs on the calling goroutine.
func (p *Pool) Close() {
	p.once.Do(func() {
		p.stopped.Store(true)
		close(p.jobs)
	})
}

// Each calls fn(i) once for every i in [0, n) and returns when all calls
// have finished. Indices are claimed one at a time, so a large frame in
// the batch does not hold up the small ones queued behind it.
func (p *Pool) Each(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	active := min(p.size, n)
	if active == 1 || p.stopped.Load() {
		for i := range n {
			fn(i)
		}
		return
	}

	var claimed atomic.Int64
	var wg sync.WaitGroup
	wg.Add(active)
	drain := func() {
		defer wg.Done()
		for i := int(claimed.Add(1) - 1); i < n; i = int(claimed.Add(1) - 1) {
			fn(i)
		}
	}
	for range active {
		p.jobs <- drain
	}
	wg.Wait()
}
