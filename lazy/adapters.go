package lazy

// Filter keeps values for which pred returns true. It never stops the pass.
func Filter[T any](pred func(T) bool) Adapter[T, T] {
	return Adapter[T, T]{
		Step: func(v T, _ int, _ []T) Result[T] {
			if pred(v) {
				return One(v, false)
			}
			return Empty[T](false)
		},
	}
}

// FilterIndexed is Filter with a predicate that also receives the index and
// source slice.
func FilterIndexed[T any](pred func(T, int, []T) bool) Adapter[T, T] {
	return Adapter[T, T]{
		Indexed: true,
		Step: func(v T, i int, src []T) Result[T] {
			if pred(v, i, src) {
				return One(v, false)
			}
			return Empty[T](false)
		},
	}
}

// Map emits fn(v) for every value.
func Map[T, K any](fn func(T) K) Adapter[T, K] {
	return Adapter[T, K]{
		Step: func(v T, _ int, _ []T) Result[K] {
			return One(fn(v), false)
		},
	}
}

// MapIndexed emits fn(v, index, source) for every value.
func MapIndexed[T, K any](fn func(T, int, []T) K) Adapter[T, K] {
	return Adapter[T, K]{
		Indexed: true,
		Step: func(v T, i int, src []T) Result[K] {
			return One(fn(v, i, src), false)
		},
	}
}

// Take emits the first n values and marks the n-th as done. A non-positive n
// stops on the very first call without emitting.
func Take[T any](n int) Adapter[T, T] {
	remaining := n
	return Adapter[T, T]{
		Step: func(v T, _ int, _ []T) Result[T] {
			if remaining <= 0 {
				return Empty[T](true)
			}
			remaining--
			return One(v, remaining == 0)
		},
	}
}

// Drop skips the first n values and emits the rest.
func Drop[T any](n int) Adapter[T, T] {
	remaining := n
	return Adapter[T, T]{
		Step: func(v T, _ int, _ []T) Result[T] {
			if remaining > 0 {
				remaining--
				return Empty[T](false)
			}
			return One(v, false)
		},
	}
}

// TakeWhile emits values while pred holds and stops at the first failure.
func TakeWhile[T any](pred func(T) bool) Adapter[T, T] {
	return Adapter[T, T]{
		Step: func(v T, _ int, _ []T) Result[T] {
			if !pred(v) {
				return Empty[T](true)
			}
			return One(v, false)
		},
	}
}

// UniqBy emits a value only the first time its key is seen.
func UniqBy[T any, K comparable](key func(T) K) Adapter[T, T] {
	seen := make(map[K]struct{})
	return Adapter[T, T]{
		Step: func(v T, _ int, _ []T) Result[T] {
			k := key(v)
			if _, ok := seen[k]; ok {
				return Empty[T](false)
			}
			seen[k] = struct{}{}
			return One(v, false)
		},
	}
}

// Uniq emits each distinct value once, in order of first occurrence.
func Uniq[T comparable]() Adapter[T, T] {
	return UniqBy(func(v T) T { return v })
}

// Difference drops values that are members of other.
func Difference[T comparable](other []T) Adapter[T, T] {
	set := toSet(other)
	return Adapter[T, T]{
		Step: func(v T, _ int, _ []T) Result[T] {
			if _, ok := set[v]; ok {
				return Empty[T](false)
			}
			return One(v, false)
		},
	}
}

// Intersection keeps values that are members of other. The membership set is
// built once, when the adapter is created.
func Intersection[T comparable](other []T) Adapter[T, T] {
	set := toSet(other)
	return Adapter[T, T]{
		Step: func(v T, _ int, _ []T) Result[T] {
			if _, ok := set[v]; ok {
				return One(v, false)
			}
			return Empty[T](false)
		},
	}
}

// Find emits the first value matching pred and stops.
func Find[T any](pred func(T) bool) Adapter[T, T] {
	return Adapter[T, T]{
		Single: true,
		Step: func(v T, _ int, _ []T) Result[T] {
			if pred(v) {
				return One(v, true)
			}
			return Empty[T](false)
		},
	}
}

// FindIndexed is Find with an indexed predicate.
func FindIndexed[T any](pred func(T, int, []T) bool) Adapter[T, T] {
	return Adapter[T, T]{
		Indexed: true,
		Single:  true,
		Step: func(v T, i int, src []T) Result[T] {
			if pred(v, i, src) {
				return One(v, true)
			}
			return Empty[T](false)
		},
	}
}

// FindIndex emits the position of the first value matching pred and stops.
// The position counts the values this adapter has seen.
func FindIndex[T any](pred func(T) bool) Adapter[T, int] {
	pos := 0
	return Adapter[T, int]{
		Single: true,
		Step: func(v T, _ int, _ []T) Result[int] {
			if pred(v) {
				return One(pos, true)
			}
			pos++
			return Empty[int](false)
		},
	}
}

// FindIndexIndexed is FindIndex with an indexed predicate; it emits the index
// supplied by the driver.
func FindIndexIndexed[T any](pred func(T, int, []T) bool) Adapter[T, int] {
	return Adapter[T, int]{
		Indexed: true,
		Single:  true,
		Step: func(v T, i int, src []T) Result[int] {
			if pred(v, i, src) {
				return One(i, true)
			}
			return Empty[int](false)
		},
	}
}

// First emits the first value it receives and stops.
func First[T any]() Adapter[T, T] {
	return Adapter[T, T]{
		Single: true,
		Step: func(v T, _ int, _ []T) Result[T] {
			return One(v, true)
		},
	}
}

// Flatten emits the elements of every inner slice, one level deep.
func Flatten[T any]() Adapter[[]T, T] {
	return Adapter[[]T, T]{
		Step: func(v []T, _ int, _ [][]T) Result[T] {
			return Many(v, false)
		},
	}
}

// FlattenDeep emits the leaves of arbitrarily nested []any values. Any other
// value is emitted as is.
func FlattenDeep() Adapter[any, any] {
	return Adapter[any, any]{
		Step: func(v any, _ int, _ []any) Result[any] {
			if xs, ok := v.([]any); ok {
				return Many(appendLeaves(nil, xs), false)
			}
			return One(v, false)
		},
	}
}

// FlatMap emits every value of fn(v).
func FlatMap[T, K any](fn func(T) []K) Adapter[T, K] {
	return Adapter[T, K]{
		Step: func(v T, _ int, _ []T) Result[K] {
			return Many(fn(v), false)
		},
	}
}

func appendLeaves(dst []any, xs []any) []any {
	for _, x := range xs {
		if inner, ok := x.([]any); ok {
			dst = appendLeaves(dst, inner)
			continue
		}
		dst = append(dst, x)
	}
	return dst
}

func toSet[T comparable](items []T) map[T]struct{} {
	set := make(map[T]struct{}, len(items))
	for _, it := range items {
		set[it] = struct{}{}
	}
	return set
}
