package resilience

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	apperrors "github.com/kbukum/fnkit/errors"
	"github.com/kbukum/fnkit/logger"
	"github.com/kbukum/fnkit/observability"
)

// ConcurrencyConfig configures a KeyedLimiter.
type ConcurrencyConfig struct {
	// Name identifies this limiter for metrics/logging.
	Name string
	// MaxTotal caps in-flight calls across all keys.
	MaxTotal int
	// PerKey caps in-flight calls sharing one key.
	PerKey int
	// PerKeyFunc, when set, overrides PerKey for individual keys.
	PerKeyFunc func(key string) int
	// MaxWait bounds how long a call waits for its slots. 0 waits until the
	// context is done; a negative value fails immediately when no slot is
	// free.
	MaxWait time.Duration
	// OnReject is called when a call gives up waiting.
	OnReject func(name, key string)
	// OnAcquire is called when a call obtains its slots.
	OnAcquire func(name, key string)
	// OnRelease is called when a call returns its slots.
	OnRelease func(name, key string)
}

// DefaultConcurrencyConfig allows 3 concurrent calls per key and 50 in
// total, waiting as long as the context allows.
func DefaultConcurrencyConfig(name string) ConcurrencyConfig {
	return ConcurrencyConfig{
		Name:     name,
		MaxTotal: 50,
		PerKey:   3,
	}
}

// KeyedLimiter bounds concurrent calls per key and in total. Waiters are
// admitted in FIFO order per key. A call first takes a slot for its key,
// then a global slot, so calls queued behind a busy key never hold global
// capacity.
type KeyedLimiter struct {
	config ConcurrencyConfig
	global *semaphore.Weighted

	mu   sync.Mutex
	keys map[string]*keySlots
}

type keySlots struct {
	sem    *semaphore.Weighted
	refs   int
	active int
}

// NewKeyedLimiter creates a limiter. Non-positive limits fall back to the
// defaults.
func NewKeyedLimiter(config ConcurrencyConfig) *KeyedLimiter {
	if config.MaxTotal <= 0 {
		config.MaxTotal = 50
	}
	if config.PerKey <= 0 {
		config.PerKey = 3
	}
	return &KeyedLimiter{
		config: config,
		global: semaphore.NewWeighted(int64(config.MaxTotal)),
		keys:   make(map[string]*keySlots),
	}
}

// Do runs fn once a slot for key and a global slot are available. It returns
// a CONCURRENCY_LIMIT error when MaxWait elapses first and the context error
// when ctx is done first.
func (l *KeyedLimiter) Do(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	slots := l.retain(key)
	defer l.releaseKey(key, slots)

	start := time.Now()
	if err := l.acquire(ctx, key, slots); err != nil {
		return err
	}
	l.markActive(slots, 1)
	wait := time.Since(start)

	metrics := observability.Default()
	metrics.RecordAcquire(ctx, l.config.Name, key, wait)
	if l.config.OnAcquire != nil {
		l.config.OnAcquire(l.config.Name, key)
	}

	defer func() {
		l.global.Release(1)
		slots.sem.Release(1)
		l.markActive(slots, -1)
		metrics.RecordRelease(ctx, l.config.Name)
		if l.config.OnRelease != nil {
			l.config.OnRelease(l.config.Name, key)
		}
	}()

	return fn(ctx)
}

// Execute runs a function that returns a value within the limiter.
func Execute[T any](ctx context.Context, l *KeyedLimiter, key string, fn func(ctx context.Context) (T, error)) (T, error) {
	var result T
	err := l.Do(ctx, key, func(ctx context.Context) error {
		var fnErr error
		result, fnErr = fn(ctx)
		return fnErr
	})
	return result, err
}

// Concurrent wraps fn so that calls sharing keyOf(arg) are admitted through l.
func Concurrent[A, R any](fn func(context.Context, A) (R, error), l *KeyedLimiter, keyOf func(A) string) func(context.Context, A) (R, error) {
	return func(ctx context.Context, arg A) (R, error) {
		return Execute(ctx, l, keyOf(arg), func(ctx context.Context) (R, error) {
			return fn(ctx, arg)
		})
	}
}

// InUse returns the number of calls currently running for key.
func (l *KeyedLimiter) InUse(key string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if s, ok := l.keys[key]; ok {
		return s.active
	}
	return 0
}

// Keys returns the number of keys with running or waiting calls.
func (l *KeyedLimiter) Keys() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.keys)
}

// MaxTotal returns the global cap.
func (l *KeyedLimiter) MaxTotal() int { return l.config.MaxTotal }

func (l *KeyedLimiter) limitFor(key string) int {
	if l.config.PerKeyFunc != nil {
		if n := l.config.PerKeyFunc(key); n > 0 {
			return n
		}
	}
	return l.config.PerKey
}

func (l *KeyedLimiter) retain(key string) *keySlots {
	l.mu.Lock()
	defer l.mu.Unlock()
	s, ok := l.keys[key]
	if !ok {
		s = &keySlots{sem: semaphore.NewWeighted(int64(l.limitFor(key)))}
		l.keys[key] = s
	}
	s.refs++
	return s
}

func (l *KeyedLimiter) releaseKey(key string, s *keySlots) {
	l.mu.Lock()
	defer l.mu.Unlock()
	s.refs--
	if s.refs == 0 {
		delete(l.keys, key)
	}
}

func (l *KeyedLimiter) markActive(s *keySlots, delta int) {
	l.mu.Lock()
	s.active += delta
	l.mu.Unlock()
}

func (l *KeyedLimiter) acquire(ctx context.Context, key string, s *keySlots) error {
	if l.config.MaxWait < 0 {
		if !s.sem.TryAcquire(1) {
			return l.reject(ctx, key)
		}
		if !l.global.TryAcquire(1) {
			s.sem.Release(1)
			return l.reject(ctx, key)
		}
		return nil
	}

	waitCtx := ctx
	if l.config.MaxWait > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, l.config.MaxWait)
		defer cancel()
	}

	if err := s.sem.Acquire(waitCtx, 1); err != nil {
		return l.waitFailed(ctx, key)
	}
	if err := l.global.Acquire(waitCtx, 1); err != nil {
		s.sem.Release(1)
		return l.waitFailed(ctx, key)
	}
	return nil
}

func (l *KeyedLimiter) waitFailed(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return l.reject(ctx, key)
}

func (l *KeyedLimiter) reject(ctx context.Context, key string) error {
	logger.Get("resilience").WithContext(ctx).Debug("concurrency slot unavailable", logger.Fields(
		logger.FieldLimiter, l.config.Name,
		logger.FieldKey, key,
	))
	if l.config.OnReject != nil {
		l.config.OnReject(l.config.Name, key)
	}
	return apperrors.ConcurrencyLimit(l.config.Name, key)
}
