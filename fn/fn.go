package fn

import "sync"

// Identity returns v.
func Identity[T any](v T) T { return v }

// Noop does nothing.
func Noop() {}

// Once returns a function that calls f on its first invocation and returns
// the same result afterwards.
func Once[R any](f func() R) func() R {
	return sync.OnceValue(f)
}

// AllPass returns a predicate that holds when every pred holds. With no
// predicates it always holds.
func AllPass[T any](preds ...func(T) bool) func(T) bool {
	return func(v T) bool {
		for _, p := range preds {
			if !p(v) {
				return false
			}
		}
		return true
	}
}

// AnyPass returns a predicate that holds when at least one pred holds.
func AnyPass[T any](preds ...func(T) bool) func(T) bool {
	return func(v T) bool {
		for _, p := range preds {
			if p(v) {
				return true
			}
		}
		return false
	}
}

// Not negates pred.
func Not[T any](pred func(T) bool) func(T) bool {
	return func(v T) bool { return !pred(v) }
}
