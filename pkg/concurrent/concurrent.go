package concurrent

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ForEach runs action for every element of items with at most workers
// goroutines. It stops scheduling new elements after the first error or
// once ctx is done, waits for running actions and returns the first error.
// A workers value below 1 means GOMAXPROCS.
func ForEach[T any](ctx context.Context, items []T, workers int, action func(ctx context.Context, i int, item T) error) error {
	errGroup, groupCtx := errgroup.WithContext(ctx)
	errGroup.SetLimit(limit(workers))

	for i, item := range items {
		if groupCtx.Err() != nil {
			break
		}
		errGroup.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			return action(groupCtx, i, item)
		})
	}

	if err := errGroup.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// ForEachAll runs action for every element of items with at most workers
// goroutines and never stops early on an action error. The returned slice
// has one entry per element; it is nil when every action succeeded. Only
// cancellation of ctx interrupts the run, and is reported as the second
// return value.
func ForEachAll[T any](ctx context.Context, items []T, workers int, action func(ctx context.Context, i int, item T) error) ([]error, error) {
	errs := make([]error, len(items))
	failed := false
	errGroup := errgroup.Group{}
	errGroup.SetLimit(limit(workers))

	for i, item := range items {
		if ctx.Err() != nil {
			break
		}
		errGroup.Go(func() error {
			errs[i] = action(ctx, i, item)
			return nil
		})
	}
	_ = errGroup.Wait()

	if err := ctx.Err(); err != nil {
		return errs, err
	}
	for _, err := range errs {
		if err != nil {
			failed = true
			break
		}
	}
	if !failed {
		return nil, nil
	}
	return errs, nil
}

func limit(workers int) int {
	if workers < 1 {
		return runtime.GOMAXPROCS(0)
	}
	return workers
}
