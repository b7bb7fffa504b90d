package collection

import (
	"math/rand/v2"

	"golang.org/x/exp/constraints"

	"github.com/kbukum/fnkit/num"
	"github.com/kbukum/fnkit/validation"
)

// Range returns the integers from start up to, but not including, end.
func Range[N constraints.Integer](start, end N) []N {
	if end <= start {
		return []N{}
	}
	// Subtract after widening so spans wider than N's range do not wrap.
	out := make([]N, 0, int(uint64(end)-uint64(start)))
	for i := start; i < end; i++ {
		out = append(out, i)
	}
	return out
}

// Times calls fn with 0..count-1 and returns the results. A negative count is
// an error.
func Times[T any](count int, fn func(int) T) ([]T, error) {
	if err := validation.NonNegative("count", count); err != nil {
		return nil, err
	}
	out := make([]T, count)
	for i := range out {
		out[i] = fn(i)
	}
	return out, nil
}

// RandomItem returns a random value of data. ok is false for an empty slice.
func RandomItem[T any](data []T) (T, bool) {
	return RandomItemFrom(data, rand.Float64)
}

// RandomItemFrom is RandomItem with a custom source of floats in [0, 1).
func RandomItemFrom[T any](data []T, random func() float64) (T, bool) {
	if len(data) == 0 {
		var zero T
		return zero, false
	}
	return data[num.RandomIntFrom(0, len(data)-1, random)], true
}
