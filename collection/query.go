package collection

import (
	"slices"

	"github.com/kbukum/fnkit/pipe"
)

// Contains reports whether v is in data.
func Contains[T comparable](data []T, v T) bool {
	return slices.Contains(data, v)
}

// IncludesAny reports whether data holds at least one of values.
func IncludesAny[T comparable](data, values []T) bool {
	set := setOf(data)
	for _, v := range values {
		if _, ok := set[v]; ok {
			return true
		}
	}
	return false
}

// IncludesAnyWith is the pipeline form of IncludesAny.
func IncludesAnyWith[T comparable](values []T) pipe.Stage {
	return pipe.Apply("includesAny", func(data []T) bool { return IncludesAny(data, values) })
}

// IncludesEvery reports whether data holds all of values.
func IncludesEvery[T comparable](data, values []T) bool {
	set := setOf(data)
	for _, v := range values {
		if _, ok := set[v]; !ok {
			return false
		}
	}
	return true
}

// IncludesEveryWith is the pipeline form of IncludesEvery.
func IncludesEveryWith[T comparable](values []T) pipe.Stage {
	return pipe.Apply("includesEvery", func(data []T) bool { return IncludesEvery(data, values) })
}

// IsOneOf reports whether value is one of allowed.
func IsOneOf[T comparable](value T, allowed ...T) bool {
	return slices.Contains(allowed, value)
}

func reduceOp[T, K any]() pipe.Op[[]T, reduceArgs[T, K], K] {
	return pipe.Op[[]T, reduceArgs[T, K], K]{
		Name: "reduce",
		Impl: func(data []T, a reduceArgs[T, K]) K {
			acc := a.init
			for i, v := range data {
				acc = a.fn(acc, v, i)
			}
			return acc
		},
	}
}

type reduceArgs[T, K any] struct {
	fn   func(acc K, v T, index int) K
	init K
}

// Reduce folds data into a single value starting from init.
func Reduce[T, K any](data []T, fn func(acc K, v T, index int) K, init K) K {
	return reduceOp[T, K]().Call(data, reduceArgs[T, K]{fn, init})
}

// ReduceWith is the pipeline form of Reduce.
func ReduceWith[T, K any](fn func(acc K, v T, index int) K, init K) pipe.Stage {
	return reduceOp[T, K]().Stage(reduceArgs[T, K]{fn, init})
}

func setOf[T comparable](items []T) map[T]struct{} {
	set := make(map[T]struct{}, len(items))
	for _, it := range items {
		set[it] = struct{}{}
	}
	return set
}
