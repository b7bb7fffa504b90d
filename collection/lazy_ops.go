package collection

import (
	"github.com/kbukum/fnkit/lazy"
	"github.com/kbukum/fnkit/pipe"
)

type none = struct{}

func filterOp[T any]() pipe.LazyOp[T, func(T) bool, T] {
	return pipe.LazyOp[T, func(T) bool, T]{
		Name: "filter",
		Impl: func(data []T, pred func(T) bool) []T {
			out := make([]T, 0, len(data))
			for _, v := range data {
				if pred(v) {
					out = append(out, v)
				}
			}
			return out
		},
		Lazy: lazy.Filter[T],
	}
}

// Filter returns the values of data for which pred returns true.
func Filter[T any](data []T, pred func(T) bool) []T { return filterOp[T]().Call(data, pred) }

// FilterWith is the pipeline form of Filter.
func FilterWith[T any](pred func(T) bool) pipe.Stage { return filterOp[T]().Stage(pred) }

func filterIndexedOp[T any]() pipe.LazyOp[T, func(T, int, []T) bool, T] {
	return pipe.LazyOp[T, func(T, int, []T) bool, T]{Name: "filterIndexed", Lazy: lazy.FilterIndexed[T]}
}

// FilterIndexed is Filter with a predicate that also receives the index and
// the whole slice.
func FilterIndexed[T any](data []T, pred func(T, int, []T) bool) []T {
	return filterIndexedOp[T]().Call(data, pred)
}

// FilterIndexedWith is the pipeline form of FilterIndexed.
func FilterIndexedWith[T any](pred func(T, int, []T) bool) pipe.Stage {
	return filterIndexedOp[T]().Stage(pred)
}

func mapOp[T, K any]() pipe.LazyOp[T, func(T) K, K] {
	return pipe.LazyOp[T, func(T) K, K]{
		Name: "map",
		Impl: func(data []T, fn func(T) K) []K {
			out := make([]K, len(data))
			for i, v := range data {
				out[i] = fn(v)
			}
			return out
		},
		Lazy: lazy.Map[T, K],
	}
}

// Map returns fn applied to every value of data.
func Map[T, K any](data []T, fn func(T) K) []K { return mapOp[T, K]().Call(data, fn) }

// MapWith is the pipeline form of Map.
func MapWith[T, K any](fn func(T) K) pipe.Stage { return mapOp[T, K]().Stage(fn) }

func mapIndexedOp[T, K any]() pipe.LazyOp[T, func(T, int, []T) K, K] {
	return pipe.LazyOp[T, func(T, int, []T) K, K]{Name: "mapIndexed", Lazy: lazy.MapIndexed[T, K]}
}

// MapIndexed is Map with a function that also receives the index and the
// whole slice.
func MapIndexed[T, K any](data []T, fn func(T, int, []T) K) []K {
	return mapIndexedOp[T, K]().Call(data, fn)
}

// MapIndexedWith is the pipeline form of MapIndexed.
func MapIndexedWith[T, K any](fn func(T, int, []T) K) pipe.Stage {
	return mapIndexedOp[T, K]().Stage(fn)
}

func takeOp[T any]() pipe.LazyOp[T, int, T] {
	return pipe.LazyOp[T, int, T]{
		Name: "take",
		Impl: func(data []T, n int) []T {
			n = max(0, min(n, len(data)))
			return append(make([]T, 0, n), data[:n]...)
		},
		Lazy: lazy.Take[T],
	}
}

// Take returns the first n values of data. A non-positive n yields an empty
// slice.
func Take[T any](data []T, n int) []T { return takeOp[T]().Call(data, n) }

// TakeWith is the pipeline form of Take.
func TakeWith[T any](n int) pipe.Stage { return takeOp[T]().Stage(n) }

func dropOp[T any]() pipe.LazyOp[T, int, T] {
	return pipe.LazyOp[T, int, T]{
		Name: "drop",
		Impl: func(data []T, n int) []T {
			n = max(0, min(n, len(data)))
			return append(make([]T, 0, len(data)-n), data[n:]...)
		},
		Lazy: lazy.Drop[T],
	}
}

// Drop returns data without its first n values.
func Drop[T any](data []T, n int) []T { return dropOp[T]().Call(data, n) }

// DropWith is the pipeline form of Drop.
func DropWith[T any](n int) pipe.Stage { return dropOp[T]().Stage(n) }

func takeWhileOp[T any]() pipe.LazyOp[T, func(T) bool, T] {
	return pipe.LazyOp[T, func(T) bool, T]{Name: "takeWhile", Lazy: lazy.TakeWhile[T]}
}

// TakeWhile returns the leading values of data for which pred holds.
func TakeWhile[T any](data []T, pred func(T) bool) []T { return takeWhileOp[T]().Call(data, pred) }

// TakeWhileWith is the pipeline form of TakeWhile.
func TakeWhileWith[T any](pred func(T) bool) pipe.Stage { return takeWhileOp[T]().Stage(pred) }

func uniqByOp[T any, K comparable]() pipe.LazyOp[T, func(T) K, T] {
	return pipe.LazyOp[T, func(T) K, T]{Name: "uniqBy", Lazy: lazy.UniqBy[T, K]}
}

// UniqBy returns the values of data whose key has not been seen before, in
// order of first occurrence.
func UniqBy[T any, K comparable](data []T, key func(T) K) []T {
	return uniqByOp[T, K]().Call(data, key)
}

// UniqByWith is the pipeline form of UniqBy.
func UniqByWith[T any, K comparable](key func(T) K) pipe.Stage { return uniqByOp[T, K]().Stage(key) }

func uniqOp[T comparable]() pipe.LazyOp[T, none, T] {
	return pipe.LazyOp[T, none, T]{
		Name: "uniq",
		Lazy: func(none) lazy.Adapter[T, T] { return lazy.Uniq[T]() },
	}
}

// Uniq returns the distinct values of data in order of first occurrence.
func Uniq[T comparable](data []T) []T { return uniqOp[T]().Call(data, none{}) }

// UniqWith is the pipeline form of Uniq.
func UniqWith[T comparable]() pipe.Stage { return uniqOp[T]().Stage(none{}) }

func differenceOp[T comparable]() pipe.LazyOp[T, []T, T] {
	return pipe.LazyOp[T, []T, T]{Name: "difference", Lazy: lazy.Difference[T]}
}

// Difference returns the values of data that are not in other. Duplicates in
// other do not matter.
func Difference[T comparable](data, other []T) []T { return differenceOp[T]().Call(data, other) }

// DifferenceWith is the pipeline form of Difference.
func DifferenceWith[T comparable](other []T) pipe.Stage { return differenceOp[T]().Stage(other) }

func intersectionOp[T comparable]() pipe.LazyOp[T, []T, T] {
	return pipe.LazyOp[T, []T, T]{Name: "intersection", Lazy: lazy.Intersection[T]}
}

// Intersection returns the values of data that are also in other.
func Intersection[T comparable](data, other []T) []T { return intersectionOp[T]().Call(data, other) }

// IntersectionWith is the pipeline form of Intersection.
func IntersectionWith[T comparable](other []T) pipe.Stage { return intersectionOp[T]().Stage(other) }

func findOp[T any]() pipe.SingleOp[T, func(T) bool, T] {
	return pipe.SingleOp[T, func(T) bool, T]{Name: "find", Lazy: lazy.Find[T]}
}

// Find returns the first value matching pred. ok is false when none does.
func Find[T any](data []T, pred func(T) bool) (T, bool) { return findOp[T]().Call(data, pred) }

// FindWith is the pipeline form of Find. It yields the zero value when
// nothing matches.
func FindWith[T any](pred func(T) bool) pipe.Stage { return findOp[T]().Stage(pred) }

func findIndexedOp[T any]() pipe.SingleOp[T, func(T, int, []T) bool, T] {
	return pipe.SingleOp[T, func(T, int, []T) bool, T]{Name: "findIndexed", Lazy: lazy.FindIndexed[T]}
}

// FindIndexed is Find with an indexed predicate.
func FindIndexed[T any](data []T, pred func(T, int, []T) bool) (T, bool) {
	return findIndexedOp[T]().Call(data, pred)
}

// FindIndexedWith is the pipeline form of FindIndexed.
func FindIndexedWith[T any](pred func(T, int, []T) bool) pipe.Stage {
	return findIndexedOp[T]().Stage(pred)
}

func notFound() int { return -1 }

func findIndexOp[T any]() pipe.SingleOp[T, func(T) bool, int] {
	return pipe.SingleOp[T, func(T) bool, int]{Name: "findIndex", Lazy: lazy.FindIndex[T], Fallback: notFound}
}

// FindIndex returns the index of the first value matching pred, or -1.
func FindIndex[T any](data []T, pred func(T) bool) int { return findIndexOp[T]().Bind(pred)(data) }

// FindIndexWith is the pipeline form of FindIndex.
func FindIndexWith[T any](pred func(T) bool) pipe.Stage { return findIndexOp[T]().Stage(pred) }

func findIndexIndexedOp[T any]() pipe.SingleOp[T, func(T, int, []T) bool, int] {
	return pipe.SingleOp[T, func(T, int, []T) bool, int]{
		Name: "findIndexIndexed", Lazy: lazy.FindIndexIndexed[T], Fallback: notFound,
	}
}

// FindIndexIndexed is FindIndex with an indexed predicate.
func FindIndexIndexed[T any](data []T, pred func(T, int, []T) bool) int {
	return findIndexIndexedOp[T]().Bind(pred)(data)
}

// FindIndexIndexedWith is the pipeline form of FindIndexIndexed.
func FindIndexIndexedWith[T any](pred func(T, int, []T) bool) pipe.Stage {
	return findIndexIndexedOp[T]().Stage(pred)
}

func firstOp[T any]() pipe.SingleOp[T, none, T] {
	return pipe.SingleOp[T, none, T]{
		Name: "first",
		Impl: func(data []T, _ none) (T, bool) {
			if len(data) == 0 {
				var zero T
				return zero, false
			}
			return data[0], true
		},
		Lazy: func(none) lazy.Adapter[T, T] { return lazy.First[T]() },
	}
}

// First returns the first value of data. ok is false for an empty slice.
func First[T any](data []T) (T, bool) { return firstOp[T]().Call(data, none{}) }

// FirstWith is the pipeline form of First.
func FirstWith[T any]() pipe.Stage { return firstOp[T]().Stage(none{}) }

func flattenOp[T any]() pipe.LazyOp[[]T, none, T] {
	return pipe.LazyOp[[]T, none, T]{
		Name: "flatten",
		Lazy: func(none) lazy.Adapter[[]T, T] { return lazy.Flatten[T]() },
	}
}

// Flatten concatenates the inner slices of data.
func Flatten[T any](data [][]T) []T { return flattenOp[T]().Call(data, none{}) }

// FlattenWith is the pipeline form of Flatten.
func FlattenWith[T any]() pipe.Stage { return flattenOp[T]().Stage(none{}) }

var flattenDeepOp = pipe.LazyOp[any, none, any]{
	Name: "flattenDeep",
	Lazy: func(none) lazy.Adapter[any, any] { return lazy.FlattenDeep() },
}

// FlattenDeep returns the leaves of arbitrarily nested []any values.
func FlattenDeep(data []any) []any { return flattenDeepOp.Call(data, none{}) }

// FlattenDeepWith is the pipeline form of FlattenDeep.
func FlattenDeepWith() pipe.Stage { return flattenDeepOp.Stage(none{}) }

func flatMapOp[T, K any]() pipe.LazyOp[T, func(T) []K, K] {
	return pipe.LazyOp[T, func(T) []K, K]{Name: "flatMap", Lazy: lazy.FlatMap[T, K]}
}

// FlatMap maps every value of data to a slice and concatenates the results.
func FlatMap[T, K any](data []T, fn func(T) []K) []K { return flatMapOp[T, K]().Call(data, fn) }

// FlatMapWith is the pipeline form of FlatMap.
func FlatMapWith[T, K any](fn func(T) []K) pipe.Stage { return flatMapOp[T, K]().Stage(fn) }
