// Package fn provides function middleware and small combinators.
//
// Debounce, Throttle and Memoize wrap a one-argument function and return a
// function of the same shape, so they compose with each other. Functions of
// several arguments take a struct.
//
//	search := fn.Memoize(fetch)
//	search = fn.Throttle(search, time.Second)
//
// All wrappers are safe for concurrent use.
package fn
