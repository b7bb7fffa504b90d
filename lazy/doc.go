// Package lazy defines the single-pass evaluation protocol shared by the
// slice operations in fnkit.
//
// An operation that can run lazily is expressed as an Adapter: a stateful
// Step function that consumes one input value at a time and reports a Result
// that emits nothing, one value or a batch of values, and whether the whole
// pass must stop. Reduce drives one adapter over a slice in a single
// traversal.
//
//	evens := lazy.Reduce([]int{1, 2, 3, 4, 5, 6}, lazy.Filter(func(n int) bool {
//	    return n%2 == 0
//	}))
//	// evens == []int{2, 4, 6}
//
// The pipe package chains several adapters into one pass so that
// "map, then filter, then take 3" stops as soon as three values are produced.
//
// Adapters own private mutable state (counters, seen-sets). Build a fresh
// adapter for every pass and never share one between goroutines.
package lazy
