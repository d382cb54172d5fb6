package util

import (
	"context"
	"sync"
)

// FanOut runs fn for every input with at most workerLimit goroutines and
// returns the per-input errors (nil entries for successes). Unlike a
// fail-fast pool, one failing input does not cancel the others; the caller
// decides how many failures it tolerates.
func FanOut[T any](ctx context.Context, inputs []T, workerLimit int, fn func(context.Context, T) error) []error {
	errs := make([]error, len(inputs))
	if len(inputs) == 0 {
		return errs
	}
	if workerLimit <= 0 {
		workerLimit = 1
	}

	sem := make(chan struct{}, workerLimit)
	var wg sync.WaitGroup

	for i := range inputs {
		if ctx.Err() != nil {
			errs[i] = ctx.Err()
			continue
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			errs[i] = fn(ctx, inputs[i])
		}(i)
	}

	wg.Wait()
	return errs
}
