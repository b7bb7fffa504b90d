package resilience

import (
	"context"
	"time"

	apperrors "github.com/kbukum/fnkit/errors"
	"github.com/kbukum/fnkit/logger"
	"github.com/kbukum/fnkit/observability"
)

// Timeout runs fn with a context that is cancelled after d and returns a
// TIMEOUT error as soon as d elapses, without waiting for fn to notice the
// cancellation. A panic in fn is returned as an error.
func Timeout[T any](ctx context.Context, name string, d time.Duration, fn func(ctx context.Context) (T, error)) (T, error) {
	ctx, op := observability.StartOperation(ctx, observability.SpanTimeout, name)
	fnCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	type outcome struct {
		value T
		err   error
	}
	done := make(chan outcome, 1)
	go func() {
		v, err := apperrors.CanFailE(func() (T, error) { return fn(fnCtx) })
		done <- outcome{v, err}
	}()

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case out := <-done:
		op.End(out.err)
		return out.value, out.err
	case <-timer.C:
		err := apperrors.Timeout(name).WithDetail("after", d.String())
		observability.Default().RecordTimeout(ctx, name)
		logger.Get("resilience").WithContext(ctx).Warn("timed out", logger.Fields(
			logger.FieldOperation, name,
			logger.FieldDuration, d.Milliseconds(),
		))
		op.End(err)
		var zero T
		return zero, err
	case <-ctx.Done():
		op.End(ctx.Err())
		var zero T
		return zero, ctx.Err()
	}
}

// WithTimeout wraps fn so that every call is bounded by d.
func WithTimeout[A, R any](fn func(context.Context, A) (R, error), name string, d time.Duration) func(context.Context, A) (R, error) {
	return func(ctx context.Context, arg A) (R, error) {
		return Timeout(ctx, name, d, func(ctx context.Context) (R, error) {
			return fn(ctx, arg)
		})
	}
}
