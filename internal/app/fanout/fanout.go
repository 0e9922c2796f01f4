// Package fanout runs one function over a slice of inputs with a bounded
// number of goroutines. Results come back in input order.
package fanout

import (
	"context"
	"errors"
	"sync"
)

// Result is the outcome for one input: Value on success, Err otherwise.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for every item with at most workers calls in flight and
// waits for all of them. An item still waiting for a slot when ctx is done
// gets ctx.Err() and fn is not called for it. workers below 1 is treated
// as 1.
func Run[T, R any](ctx context.Context, workers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	sem := make(chan struct{}, max(workers, 1))
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Go(func() {
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[i].Err = ctx.Err()
				return
			}

			v, err := fn(ctx, item)
			results[i] = Result[R]{Value: v, Err: err}
		})
	}

	wg.Wait()
	return results
}

// Collect splits results into their values and the joined errors. Values
// of failed items are left as the zero value.
func Collect[R any](results []Result[R]) ([]R, error) {
	values := make([]R, len(results))
	var errs []error
	for i, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
			continue
		}
		values[i] = r.Value
	}
	return values, errors.Join(errs...)
}
