package resilience

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"

	"go.opentelemetry.io/otel/attribute"

	apperrors "github.com/kbukum/fnkit/errors"
	"github.com/kbukum/fnkit/logger"
	"github.com/kbukum/fnkit/observability"
)

// Strategy returns how long to wait before the retry that follows failed
// attempt number attempt (1-based).
type Strategy func(attempt int) time.Duration

// RetryConfig configures retry behavior.
type RetryConfig struct {
	// Name identifies the operation in logs, metrics and spans.
	Name string
	// MaxAttempts is the maximum number of attempts (including the first).
	MaxAttempts int
	// InitialBackoff is the initial delay between retries.
	InitialBackoff time.Duration
	// MaxBackoff is the maximum delay between retries.
	MaxBackoff time.Duration
	// BackoffFactor is the multiplier for exponential backoff.
	BackoffFactor float64
	// Jitter adds randomness to backoff (0.0 to 1.0).
	Jitter float64
	// Strategy overrides the exponential backoff computed from the fields
	// above.
	Strategy Strategy
	// RetryIf determines if an error should be retried.
	RetryIf func(error) bool
	// OnRetry is called before each retry.
	OnRetry func(attempt int, err error, backoff time.Duration)
}

// DefaultRetryConfig returns sensible defaults.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		Name:           "retry",
		MaxAttempts:    3,
		InitialBackoff: 100 * time.Millisecond,
		MaxBackoff:     10 * time.Second,
		BackoffFactor:  2.0,
		Jitter:         0.1,
		RetryIf:        DefaultRetryIf,
	}
}

// QuadraticRetryConfig retries up to five times, waiting attempt² seconds
// before each retry.
func QuadraticRetryConfig() RetryConfig {
	cfg := DefaultRetryConfig()
	cfg.MaxAttempts = 6
	cfg.Strategy = QuadraticStrategy(time.Second)
	return cfg
}

// DefaultRetryIf retries errors that are retryable by their code, except
// context cancellation.
func DefaultRetryIf(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return apperrors.IsRetryable(err)
}

// ExponentialStrategy waits InitialBackoff·BackoffFactor^(attempt-1) with
// jitter, capped at MaxBackoff.
func ExponentialStrategy(cfg RetryConfig) Strategy {
	cfg = cfg.withDefaults()
	return func(attempt int) time.Duration {
		return calculateBackoff(attempt, cfg)
	}
}

// QuadraticStrategy waits attempt²·unit.
func QuadraticStrategy(unit time.Duration) Strategy {
	return func(attempt int) time.Duration {
		return time.Duration(attempt*attempt) * unit
	}
}

// ConstantStrategy always waits d.
func ConstantStrategy(d time.Duration) Strategy {
	return func(int) time.Duration { return d }
}

func (cfg RetryConfig) withDefaults() RetryConfig {
	if cfg.Name == "" {
		cfg.Name = "retry"
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.InitialBackoff <= 0 {
		cfg.InitialBackoff = 100 * time.Millisecond
	}
	if cfg.MaxBackoff <= 0 {
		cfg.MaxBackoff = 10 * time.Second
	}
	if cfg.BackoffFactor <= 0 {
		cfg.BackoffFactor = 2.0
	}
	if cfg.RetryIf == nil {
		cfg.RetryIf = DefaultRetryIf
	}
	return cfg
}

// Retry calls fn until it succeeds, returns an error RetryIf rejects, or
// MaxAttempts is reached. Each attempt runs in its own span. When every
// attempt fails the result is a RETRIES_EXHAUSTED error wrapping the last
// failure.
func Retry[T any](ctx context.Context, cfg RetryConfig, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	var lastErr error

	cfg = cfg.withDefaults()
	strategy := cfg.Strategy
	if strategy == nil {
		strategy = ExponentialStrategy(cfg)
	}
	log := logger.Get("resilience")
	metrics := observability.Default()

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		result, err := runAttempt(ctx, cfg.Name, attempt, fn)
		metrics.RecordRetryAttempt(ctx, cfg.Name, attempt, err)
		if err == nil {
			return result, nil
		}

		lastErr = err
		if !cfg.RetryIf(err) {
			return zero, err
		}
		if attempt == cfg.MaxAttempts {
			break
		}

		backoff := strategy(attempt)
		log.WithContext(ctx).Warn("retrying", logger.Fields(
			logger.FieldOperation, cfg.Name,
			logger.FieldAttempt, attempt,
			logger.FieldError, err.Error(),
			logger.FieldBackoff, backoff.Milliseconds(),
		))
		if cfg.OnRetry != nil {
			cfg.OnRetry(attempt, err, backoff)
		}

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return zero, ctx.Err()
		case <-timer.C:
		}
	}

	return zero, apperrors.RetriesExhausted(cfg.MaxAttempts, lastErr).WithDetail("operation", cfg.Name)
}

func runAttempt[T any](ctx context.Context, name string, attempt int, fn func(ctx context.Context) (T, error)) (T, error) {
	ctx, op := observability.StartOperation(ctx, observability.SpanRetryAttempt, name,
		attribute.Int(observability.AttrAttempt, attempt))
	result, err := fn(ctx)
	op.End(err)
	return result, err
}

// RetryFunc retries a function that returns only an error.
func RetryFunc(ctx context.Context, cfg RetryConfig, fn func(ctx context.Context) error) error {
	_, err := Retry(ctx, cfg, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}

// RetryOnFail wraps fn so that every call is retried according to cfg.
func RetryOnFail[A, R any](fn func(context.Context, A) (R, error), cfg RetryConfig) func(context.Context, A) (R, error) {
	return func(ctx context.Context, arg A) (R, error) {
		return Retry(ctx, cfg, func(ctx context.Context) (R, error) {
			return fn(ctx, arg)
		})
	}
}

// calculateBackoff calculates the backoff duration for an attempt.
func calculateBackoff(attempt int, cfg RetryConfig) time.Duration {
	backoff := float64(cfg.InitialBackoff) * math.Pow(cfg.BackoffFactor, float64(attempt-1))

	if cfg.Jitter > 0 {
		jitterRange := backoff * cfg.Jitter
		backoff += (rand.Float64()*2 - 1) * jitterRange
	}

	if backoff > float64(cfg.MaxBackoff) {
		backoff = float64(cfg.MaxBackoff)
	}
	if backoff < 0 {
		backoff = float64(cfg.InitialBackoff)
	}
	return time.Duration(backoff)
}
