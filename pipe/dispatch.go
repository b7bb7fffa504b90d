package pipe

import "github.com/kbukum/fnkit/lazy"

// Op is an operation over data of type D that takes one argument of type A.
// Operations without arguments use struct{} for A.
//
// The same implementation serves both calling conventions:
//
//	op.Call(data, arg)     // data-first, runs now
//	op.Bind(arg)(data)     // data-last closure
//	op.Stage(arg)          // data-last pipeline stage
type Op[D, A, R any] struct {
	Name string
	Impl func(D, A) R
}

// Call runs the operation immediately.
func (o Op[D, A, R]) Call(data D, arg A) R {
	return o.Impl(data, arg)
}

// Bind returns a closure that runs the operation on the data it receives.
func (o Op[D, A, R]) Bind(arg A) func(D) R {
	return func(data D) R { return o.Impl(data, arg) }
}

// Stage returns an eager pipeline stage.
func (o Op[D, A, R]) Stage(arg A) Stage {
	return Apply(o.Name, o.Bind(arg))
}

// LazyOp is a slice operation that can also run as a lazy adapter.
//
// Impl is the eager implementation. When it is nil, the adapter is driven
// over the data with lazy.Reduce.
type LazyOp[T, A, K any] struct {
	Name string
	Impl func([]T, A) []K
	Lazy func(A) lazy.Adapter[T, K]
}

// Call runs the operation immediately over data. It never fuses.
func (o LazyOp[T, A, K]) Call(data []T, arg A) []K {
	if o.Impl != nil {
		return o.Impl(data, arg)
	}
	return lazy.Reduce(data, o.Lazy(arg))
}

// Bind returns a closure that runs the operation on the data it receives.
func (o LazyOp[T, A, K]) Bind(arg A) func([]T) []K {
	return func(data []T) []K { return o.Call(data, arg) }
}

// Stage returns a fusable pipeline stage. A fresh adapter is built for every
// pass, so the stage can be reused across CreatePipe calls.
func (o LazyOp[T, A, K]) Stage(arg A) Stage {
	return lazyStage(o.Name,
		func(data []T) any { return o.Call(data, arg) },
		func() lazy.Adapter[T, K] { return o.Lazy(arg) },
		false, nil)
}

// SingleOp is a lazy operation that yields at most one meaningful value, such
// as find or first.
//
// Inside a pipeline the stage yields the found value, or Fallback() when
// nothing was found (the zero value when Fallback is nil).
type SingleOp[T, A, K any] struct {
	Name     string
	Impl     func([]T, A) (K, bool)
	Lazy     func(A) lazy.Adapter[T, K]
	Fallback func() K
}

// Call runs the operation immediately. ok is false when nothing was found.
func (o SingleOp[T, A, K]) Call(data []T, arg A) (K, bool) {
	if o.Impl != nil {
		return o.Impl(data, arg)
	}
	out := lazy.Reduce(data, o.Lazy(arg))
	if len(out) == 0 {
		return o.fallback(), false
	}
	return out[0], true
}

// Bind returns a closure that runs the operation on the data it receives and
// yields the fallback value when nothing was found.
func (o SingleOp[T, A, K]) Bind(arg A) func([]T) K {
	return func(data []T) K {
		if v, ok := o.Call(data, arg); ok {
			return v
		}
		return o.fallback()
	}
}

// Stage returns a fusable stage that ends its run.
func (o SingleOp[T, A, K]) Stage(arg A) Stage {
	return lazyStage(o.Name,
		func(data []T) any { return o.Bind(arg)(data) },
		func() lazy.Adapter[T, K] { return o.Lazy(arg) },
		true, o.fallback)
}

func (o SingleOp[T, A, K]) fallback() K {
	if o.Fallback != nil {
		return o.Fallback()
	}
	var zero K
	return zero
}
