package dirsize

import (
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// pool bounds the goroutines working on one scan.
// The calling goroutine counts as a worker: a call that finds no free slot
// runs inline, so nested fan-out never waits on a slot held by its own parent.
type pool struct {
	slots *semaphore.Weighted
}

// newPool creates a pool allowing workers concurrent calls. One worker means
// a sequential scan.
func newPool(workers int) *pool {
	return &pool{slots: semaphore.NewWeighted(int64(max(workers, 1) - 1))}
}

// each runs fn(i) for every i in [0, n) and returns when all calls are done.
// Calls must write to disjoint state.
func (p *pool) each(n int, fn func(i int)) {
	var group errgroup.Group

	for i := range n {
		if !p.slots.TryAcquire(1) {
			fn(i)

			continue
		}

		group.Go(func() error {
			defer p.slots.Release(1)

			fn(i)

			return nil
		})
	}

	// Workers never fail: node errors degrade to zero.
	_ = group.Wait()
}
