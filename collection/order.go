package collection

import (
	"cmp"
	"slices"

	"github.com/kbukum/fnkit/errors"
	"github.com/kbukum/fnkit/pipe"
	"github.com/kbukum/fnkit/validation"
)

// Sort returns a sorted copy of data. Equal values keep their order.
func Sort[T any](data []T, compare func(a, b T) int) []T {
	out := slices.Clone(data)
	slices.SortStableFunc(out, compare)
	return out
}

// SortWith is the pipeline form of Sort.
func SortWith[T any](compare func(a, b T) int) pipe.Stage {
	return pipe.Apply("sort", func(data []T) []T { return Sort(data, compare) })
}

func sortByOp[T any, K cmp.Ordered]() pipe.Op[[]T, func(T) K, []T] {
	return pipe.Op[[]T, func(T) K, []T]{
		Name: "sortBy",
		Impl: func(data []T, key func(T) K) []T {
			return Sort(data, func(a, b T) int { return cmp.Compare(key(a), key(b)) })
		},
	}
}

// SortBy returns a copy of data sorted by ascending key.
func SortBy[T any, K cmp.Ordered](data []T, key func(T) K) []T { return sortByOp[T, K]().Call(data, key) }

// SortByWith is the pipeline form of SortBy.
func SortByWith[T any, K cmp.Ordered](key func(T) K) pipe.Stage { return sortByOp[T, K]().Stage(key) }

// MinBy returns every value of data that shares the smallest key, in their
// original order.
func MinBy[T any, K cmp.Ordered](data []T, key func(T) K) []T {
	return extremeBy(data, key, -1)
}

// MinByWith is the pipeline form of MinBy.
func MinByWith[T any, K cmp.Ordered](key func(T) K) pipe.Stage {
	return pipe.Apply("minBy", func(data []T) []T { return MinBy(data, key) })
}

// MaxBy returns every value of data that shares the largest key, in their
// original order.
func MaxBy[T any, K cmp.Ordered](data []T, key func(T) K) []T {
	return extremeBy(data, key, 1)
}

// MaxByWith is the pipeline form of MaxBy.
func MaxByWith[T any, K cmp.Ordered](key func(T) K) pipe.Stage {
	return pipe.Apply("maxBy", func(data []T) []T { return MaxBy(data, key) })
}

func extremeBy[T any, K cmp.Ordered](data []T, key func(T) K, sign int) []T {
	out := make([]T, 0)
	var best K
	for _, v := range data {
		k := key(v)
		if len(out) == 0 {
			best = k
			out = append(out, v)
			continue
		}
		switch c := cmp.Compare(k, best) * sign; {
		case c > 0:
			best = k
			out = append(out[:0], v)
		case c == 0:
			out = append(out, v)
		}
	}
	return out
}

// Reverse returns a reversed copy of data.
func Reverse[T any](data []T) []T {
	out := slices.Clone(data)
	slices.Reverse(out)
	if out == nil {
		return []T{}
	}
	return out
}

// ReverseWith is the pipeline form of Reverse.
func ReverseWith[T any]() pipe.Stage { return pipe.Apply("reverse", Reverse[T]) }

// Last returns the last value of data. ok is false for an empty slice.
func Last[T any](data []T) (T, bool) {
	if len(data) == 0 {
		var zero T
		return zero, false
	}
	return data[len(data)-1], true
}

// LastOr returns the last value of data, or def for an empty slice.
func LastOr[T any](data []T, def T) T {
	if v, ok := Last(data); ok {
		return v
	}
	return def
}

// DropLast returns data without its last n values.
func DropLast[T any](data []T, n int) []T {
	n = max(0, min(n, len(data)))
	return append(make([]T, 0, len(data)-n), data[:len(data)-n]...)
}

// DropLastWith is the pipeline form of DropLast.
func DropLastWith[T any](n int) pipe.Stage {
	return pipe.Apply("dropLast", func(data []T) []T { return DropLast(data, n) })
}

// SplitAt splits data before index i. A negative i counts from the end.
func SplitAt[T any](data []T, i int) (head, tail []T) {
	if i < 0 {
		i += len(data)
	}
	i = max(0, min(i, len(data)))
	return append(make([]T, 0, i), data[:i]...), append(make([]T, 0, len(data)-i), data[i:]...)
}

// SplitWhen splits data before the first value matching pred. When nothing
// matches, tail is empty.
func SplitWhen[T any](data []T, pred func(T) bool) (head, tail []T) {
	for i, v := range data {
		if pred(v) {
			return SplitAt(data, i)
		}
	}
	return SplitAt(data, len(data))
}

// Slide returns the value at position count, wrapping around the slice in
// both directions.
func Slide[T any](data []T, count int) (T, error) {
	if err := validation.New().NotEmpty("data", len(data)).Error(); err != nil {
		var zero T
		return zero, err
	}
	n := len(data)
	return data[((count%n)+n)%n], nil
}

// SlideWith is the pipeline form of Slide.
func SlideWith[T any](count int) pipe.Stage {
	return pipe.ApplyE("slide", func(data []T) (T, error) { return Slide(data, count) })
}

// Nth returns the value at index i or a NOT_FOUND error.
func Nth[T any](data []T, i int) (T, error) {
	if i < 0 || i >= len(data) {
		var zero T
		return zero, errors.FormatResourceError("index", i)
	}
	return data[i], nil
}
