package fn

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/goccy/go-json"
)

// Store is the cache behind Memoize.
type Store[R any] interface {
	Get(key string) (R, bool)
	Set(key string, value R)
}

// MapStore is an in-memory Store guarded by a read-write mutex.
type MapStore[R any] struct {
	mu    sync.RWMutex
	items map[string]R
}

// NewMapStore returns an empty MapStore.
func NewMapStore[R any]() *MapStore[R] {
	return &MapStore[R]{items: make(map[string]R)}
}

func (s *MapStore[R]) Get(key string) (R, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[key]
	return v, ok
}

func (s *MapStore[R]) Set(key string, value R) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = value
}

// Len returns the number of cached entries.
func (s *MapStore[R]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

type memoOptions[A, R any] struct {
	key   func(A) string
	store Store[R]
}

// MemoOption configures Memoize.
type MemoOption[A, R any] func(*memoOptions[A, R])

// WithKey sets the function that derives the cache key from the argument.
func WithKey[A, R any](key func(A) string) MemoOption[A, R] {
	return func(o *memoOptions[A, R]) { o.key = key }
}

// WithStore sets the cache backend.
func WithStore[A, R any](store Store[R]) MemoOption[A, R] {
	return func(o *memoOptions[A, R]) { o.store = store }
}

func newMemoOptions[A, R any](opts []MemoOption[A, R]) memoOptions[A, R] {
	o := memoOptions[A, R]{key: HashKey[A]}
	for _, opt := range opts {
		opt(&o)
	}
	if o.store == nil {
		o.store = NewMapStore[R]()
	}
	return o
}

// HashKey is the default Memoize key: the xxhash of the JSON encoding of
// arg, in hex. Values JSON cannot encode fall back to their Go syntax
// representation.
func HashKey[A any](arg A) string {
	b, err := json.Marshal(arg)
	if err != nil {
		b = []byte(fmt.Sprintf("%#v", arg))
	}
	return strconv.FormatUint(xxhash.Sum64(b), 16)
}

// Memoize caches f's results by argument. Concurrent first calls with the
// same key may both run f; the last result wins.
func Memoize[A, R any](f func(A) R, opts ...MemoOption[A, R]) func(A) R {
	o := newMemoOptions(opts)
	return func(arg A) R {
		k := o.key(arg)
		if v, ok := o.store.Get(k); ok {
			return v
		}
		v := f(arg)
		o.store.Set(k, v)
		return v
	}
}

// MemoizeE is Memoize for fallible functions. Only successful results are
// cached.
func MemoizeE[A, R any](f func(A) (R, error), opts ...MemoOption[A, R]) func(A) (R, error) {
	o := newMemoOptions(opts)
	return func(arg A) (R, error) {
		k := o.key(arg)
		if v, ok := o.store.Get(k); ok {
			return v, nil
		}
		v, err := f(arg)
		if err != nil {
			return v, err
		}
		o.store.Set(k, v)
		return v, nil
	}
}
