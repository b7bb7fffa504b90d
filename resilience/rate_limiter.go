package resilience

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	apperrors "github.com/kbukum/fnkit/errors"
	"github.com/kbukum/fnkit/logger"
	"github.com/kbukum/fnkit/observability"
)

// RateLimiterConfig configures a rate limiter.
type RateLimiterConfig struct {
	// Name identifies this rate limiter for metrics/logging.
	Name string
	// Rate is the number of requests allowed per second.
	Rate float64
	// Burst is the maximum burst size.
	Burst int
	// OnLimit is called when a request is rate limited.
	OnLimit func(name string)
}

// DefaultRateLimiterConfig returns sensible defaults.
func DefaultRateLimiterConfig(name string) RateLimiterConfig {
	return RateLimiterConfig{
		Name:  name,
		Rate:  10.0,
		Burst: 20,
	}
}

// RateLimiter is a token bucket limiter.
type RateLimiter struct {
	config  RateLimiterConfig
	limiter *rate.Limiter
}

// NewRateLimiter creates a new rate limiter. A non-positive rate falls back
// to 10 per second and a non-positive burst to the rate.
func NewRateLimiter(config RateLimiterConfig) *RateLimiter {
	if config.Rate <= 0 {
		config.Rate = 10.0
	}
	if config.Burst <= 0 {
		config.Burst = max(int(config.Rate), 1)
	}
	return &RateLimiter{
		config:  config,
		limiter: rate.NewLimiter(rate.Limit(config.Rate), config.Burst),
	}
}

// Allow reports whether a request may proceed now, consuming a token if so.
func (rl *RateLimiter) Allow() bool {
	return rl.AllowN(1)
}

// AllowN reports whether n requests may proceed now.
func (rl *RateLimiter) AllowN(n int) bool {
	if rl.limiter.AllowN(time.Now(), n) {
		return true
	}
	rl.limited(context.Background())
	return false
}

// Wait blocks until a request is allowed or ctx is done.
func (rl *RateLimiter) Wait(ctx context.Context) error {
	return rl.WaitN(ctx, 1)
}

// WaitN blocks until n requests are allowed or ctx is done. It fails
// immediately when n exceeds the burst or ctx's deadline is too close.
func (rl *RateLimiter) WaitN(ctx context.Context, n int) error {
	if err := rl.limiter.WaitN(ctx, n); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		rl.limited(ctx)
		return apperrors.RateLimited(rl.config.Name).WithCause(err)
	}
	return nil
}

// Execute runs fn if a token is available and fails with RATE_LIMITED
// otherwise.
func (rl *RateLimiter) Execute(fn func() error) error {
	if !rl.Allow() {
		return apperrors.RateLimited(rl.config.Name)
	}
	return fn()
}

// ExecuteWait blocks until a token is available, then runs fn.
func (rl *RateLimiter) ExecuteWait(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := rl.Wait(ctx); err != nil {
		return err
	}
	return fn(ctx)
}

// RateLimit wraps fn so that every call waits for a token from rl.
func RateLimit[A, R any](fn func(context.Context, A) (R, error), rl *RateLimiter) func(context.Context, A) (R, error) {
	return func(ctx context.Context, arg A) (R, error) {
		if err := rl.Wait(ctx); err != nil {
			var zero R
			return zero, err
		}
		return fn(ctx, arg)
	}
}

// Tokens returns the number of tokens currently available.
func (rl *RateLimiter) Tokens() float64 {
	return rl.limiter.TokensAt(time.Now())
}

// Rate returns the rate limit (requests per second).
func (rl *RateLimiter) Rate() float64 {
	return rl.config.Rate
}

// Burst returns the burst size.
func (rl *RateLimiter) Burst() int {
	return rl.config.Burst
}

func (rl *RateLimiter) limited(ctx context.Context) {
	observability.Default().RecordRateLimited(ctx, rl.config.Name)
	logger.Get("resilience").Debug("rate limited", logger.Fields(logger.FieldLimiter, rl.config.Name))
	if rl.config.OnLimit != nil {
		rl.config.OnLimit(rl.config.Name)
	}
}
