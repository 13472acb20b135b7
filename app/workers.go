// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"sync"

	"golang.org/x/sync/errgroup"
)

// Workers runs compute tasks on a bounded number of goroutines, none
// of which is the main thread.
type Workers struct {
	g errgroup.Group
	// queued tracks the tasks Submit is waiting to start.
	queued sync.WaitGroup
}

// NewWorkers returns Workers running at most n tasks at a time. A
// non-positive n means no limit.
func NewWorkers(n int) *Workers {
	w := new(Workers)
	if n > 0 {
		w.g.SetLimit(n)
	}
	return w
}

// Go runs f on a worker. It blocks while all workers are busy.
func (w *Workers) Go(f func() error) {
	w.g.Go(f)
}

// Submit is like Go but never blocks. While all workers are busy, f
// waits for one to become free.
func (w *Workers) Submit(f func() error) {
	if w.g.TryGo(f) {
		return
	}
	w.queued.Add(1)
	go func() {
		defer w.queued.Done()
		w.g.Go(f)
	}()
}

// Close waits for the running and submitted tasks and returns the
// first error they returned.
func (w *Workers) Close() error {
	w.queued.Wait()
	return w.g.Wait()
}
