package num

import (
	"math"
	"math/rand/v2"

	"golang.org/x/exp/constraints"

	"github.com/kbukum/fnkit/pipe"
)

// Number is any integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Bound limits the range Clamp allows.
type Bound[N Number] func(*bounds[N])

type bounds[N Number] struct {
	min, max       N
	hasMin, hasMax bool
}

// Min sets the lower bound.
func Min[N Number](v N) Bound[N] {
	return func(b *bounds[N]) { b.min, b.hasMin = v, true }
}

// Max sets the upper bound.
func Max[N Number](v N) Bound[N] {
	return func(b *bounds[N]) { b.max, b.hasMax = v, true }
}

// Clamp limits value to the given bounds. Without bounds it returns value.
// The lower bound is checked first.
//
//	num.Clamp(12, num.Min(0), num.Max(10)) // 10
func Clamp[N Number](value N, opts ...Bound[N]) N {
	var b bounds[N]
	for _, opt := range opts {
		opt(&b)
	}
	if b.hasMin && b.min > value {
		return b.min
	}
	if b.hasMax && b.max < value {
		return b.max
	}
	return value
}

// ClampWith is the pipeline form of Clamp.
func ClampWith[N Number](opts ...Bound[N]) pipe.Stage {
	return pipe.Apply("clamp", func(v N) N { return Clamp(v, opts...) })
}

// Steps rounds value down to a multiple of step.
//
//	num.Steps(546, 50) // 500
func Steps[N Number](value, step N) N {
	if step == 0 {
		return value
	}
	return value - N(math.Mod(float64(value), float64(step)))
}

// RandomInt returns a uniformly distributed integer in [lo, hi].
func RandomInt(lo, hi int) int {
	return RandomIntFrom(lo, hi, rand.Float64)
}

// RandomIntFrom is RandomInt with a custom source of floats in [0, 1).
func RandomIntFrom(lo, hi int, random func() float64) int {
	return int(math.Floor(random()*float64(hi-lo+1) + float64(lo)))
}
