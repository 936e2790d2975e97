package dirsize

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoolEachRunsEveryIndex(t *testing.T) {
	t.Parallel()

	for _, workers := range []int{0, 1, 2, 16} {
		p := newPool(workers)
		seen := make([]bool, 100)

		p.each(len(seen), func(i int) { seen[i] = true })

		for i, ok := range seen {
			assert.True(t, ok, "workers=%d index %d", workers, i)
		}
	}
}

func TestPoolNestedFanOut(t *testing.T) {
	t.Parallel()

	p := newPool(2)

	var calls atomic.Int64

	var fan func(depth int)
	fan = func(depth int) {
		calls.Add(1)

		if depth == 0 {
			return
		}

		p.each(4, func(int) { fan(depth - 1) })
	}

	fan(4)

	// 1 + 4 + 16 + 64 + 256
	assert.Equal(t, int64(341), calls.Load())
}
