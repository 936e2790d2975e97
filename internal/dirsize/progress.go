package dirsize

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"
	"time"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// logger provides conditional debug output.
type logger struct {
	enabled bool
}

// printf prints debug output to stderr if logging is enabled.
func (l logger) printf(format string, args ...any) {
	if l.enabled {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// tally counts what a scan has seen so far.
// It feeds the progress hook and the debug log only; reports are built from
// the values returned by each node, never from the tally.
type tally struct {
	files   atomic.Int64
	bytes   atomic.Int64
	dirs    atomic.Int64
	skipped atomic.Int64
}

// record counts a resolved node.
func (t *tally) record(probe Probe) {
	switch {
	case probe.Skipped():
		t.skipped.Add(1)
	case probe.Kind == KindFile:
		t.files.Add(1)
		t.bytes.Add(int64(probe.Size)) //nolint:gosec // File sizes fit in int64
	case probe.Kind == KindDir:
		t.dirs.Add(1)
	}
}

// startProgressReporter invokes hook(files, bytes) on each tick until ctx is done.
func startProgressReporter(ctx context.Context, t *tally, hook func(int64, int64), interval time.Duration) {
	if hook == nil {
		return
	}

	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				hook(t.files.Load(), t.bytes.Load())
			case <-ctx.Done():
				return
			}
		}
	}()
}
