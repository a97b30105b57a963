package catalog

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// Batcher bounds outbound concurrency. Items are fetched in consecutive
// groups of Concurrency; a group starts only after the previous one has
// fully settled and Delay has passed.
type Batcher struct {
	Concurrency int
	Delay       time.Duration

	sleep   func(context.Context, time.Duration) error
	onGroup func(size int)
}

// FetchFunc fetches one item. A non-nil error drops the item from the batch
// result.
type FetchFunc[T, R any] func(ctx context.Context, item T) (R, error)

// Batch fetches every item and returns the successful results in input
// order. Failed items are dropped, so the result may be shorter than items.
// Cancelling ctx stops further groups from starting.
func Batch[T, R any](ctx context.Context, b Batcher, items []T, fetch FetchFunc[T, R]) []R {
	size := max(b.Concurrency, 1)
	sleep := b.sleep
	if sleep == nil {
		sleep = sleepContext
	}

	results := make([]R, len(items))
	ok := make([]bool, len(items))

	for start := 0; start < len(items); start += size {
		if start > 0 {
			if err := sleep(ctx, b.Delay); err != nil {
				break
			}
		} else if ctx.Err() != nil {
			break
		}

		end := min(start+size, len(items))
		if b.onGroup != nil {
			b.onGroup(end - start)
		}

		var g errgroup.Group
		for i := start; i < end; i++ {
			g.Go(func() error {
				r, err := fetch(ctx, items[i])
				if err != nil {
					return nil
				}
				results[i], ok[i] = r, true
				return nil
			})
		}
		_ = g.Wait()
	}

	out := make([]R, 0, len(items))
	for i, r := range results {
		if ok[i] {
			out = append(out, r)
		}
	}
	return out
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
