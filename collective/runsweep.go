package collective

import (
	"context"
	"sync"

	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

// RunSweep drives one sweep across every peer in buses concurrently,
// calling fn once per peer. It exists because InProcessBus's collective
// calls are barriers: every peer's goroutine must reach the same
// collective call before any of them can proceed, so tests and examples
// that exercise multi-peer behavior need a way to run all peers' sweep
// logic at once rather than sequentially.
//
// Per §7 ("a single peer's fatal halt aborts the job"), RunSweep cancels
// the shared context on the first error so every peer observes
// cancellation promptly, but it still collects and returns every peer's
// error via multierr.Append rather than only the first — a fatal sweep
// is worth diagnosing on every peer, not just the one that happened to
// fail first.
func RunSweep(buses []Bus, fn func(ctx context.Context, b Bus) error) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	var (
		mu   sync.Mutex
		errs error
	)
	for _, b := range buses {
		b := b
		g.Go(func() error {
			if err := fn(gctx, b); err != nil {
				mu.Lock()
				errs = multierr.Append(errs, err)
				mu.Unlock()
				cancel()
				return err
			}
			return nil
		})
	}
	_ = g.Wait()

	return errs
}
