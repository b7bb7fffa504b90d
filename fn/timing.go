package fn

import (
	"context"
	"sync"
	"time"

	"github.com/kbukum/fnkit/errors"
)

// Debounce groups bursts of calls. The first call runs f immediately and its
// result is cached. Every later call returns the cached result and
// (re)schedules a trailing run of f with its argument once wait has passed
// without another call; the trailing run refreshes the cache.
func Debounce[A, R any](f func(A) R, wait time.Duration) func(A) R {
	var (
		mu     sync.Mutex
		result R
		ready  bool
		timer  *time.Timer
	)
	return func(arg A) R {
		mu.Lock()
		if !ready {
			mu.Unlock()
			r := f(arg)
			mu.Lock()
			if !ready {
				result, ready = r, true
			}
			mu.Unlock()
			return r
		}
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(wait, func() {
			r := f(arg)
			mu.Lock()
			result = r
			mu.Unlock()
		})
		cached := result
		mu.Unlock()
		return cached
	}
}

// Throttle runs f at most once per interval. Calls inside the interval
// return the result of the last run.
func Throttle[A, R any](f func(A) R, interval time.Duration) func(A) R {
	var (
		mu       sync.Mutex
		result   R
		lastExec time.Time
		ready    bool
	)
	return func(arg A) R {
		mu.Lock()
		defer mu.Unlock()
		if ready && time.Since(lastExec) < interval {
			return result
		}
		lastExec = time.Now()
		result, ready = f(arg), true
		return result
	}
}

// Delay blocks for d or until ctx is done.
func Delay(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// WaitUntilDefined calls f every millisecond until it reports a value and
// returns it. It fails with a TIMEOUT error once max has elapsed, or with the
// context error when ctx is done first.
func WaitUntilDefined[T any](ctx context.Context, f func() (T, bool), max time.Duration) (T, error) {
	const poll = time.Millisecond
	deadline := time.Now().Add(max)
	for {
		if v, ok := f(); ok {
			return v, nil
		}
		if time.Now().After(deadline) {
			var zero T
			return zero, errors.Timeout("wait until defined").WithDetail("max", max.String())
		}
		if err := Delay(ctx, poll); err != nil {
			var zero T
			return zero, err
		}
	}
}
