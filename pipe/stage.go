package pipe

import (
	"reflect"

	"github.com/kbukum/fnkit/errors"
	"github.com/kbukum/fnkit/lazy"
)

// Stage is one named step of a pipeline.
type Stage struct {
	name  string
	eager func(any) (any, error)
	lazy  *fusable
}

// Name returns the name the stage reports in errors.
func (s Stage) Name() string { return s.name }

// Lazy reports whether the stage can take part in a fused pass.
func (s Stage) Lazy() bool { return s.lazy != nil }

// boundStep is a lazy adapter instantiated for one pass, with its input and
// output boxed as any.
type boundStep func(value any, index int, source any) lazy.Result[any]

// fusable describes how a lazy stage runs inside a fused pass. Element types
// are kept so the driver can check that adjacent stages chain.
type fusable struct {
	in, out reflect.Type
	single  bool
	accepts func(data any) bool
	iterate func(data any, yield func(v any, i int) bool)
	bind    func(leading bool) boundStep
	collect func(values []any) any
}

// chainsInto reports whether values produced by f can feed next.
func (f *fusable) chainsInto(next *fusable) bool {
	if f.single {
		return false
	}
	return f.out.AssignableTo(next.in)
}

// Apply returns an eager stage that calls fn with the current value.
func Apply[In, Out any](name string, fn func(In) Out) Stage {
	return Stage{name: name, eager: eagerOf(name, fn)}
}

// ApplyE is Apply for functions that can fail. A returned error aborts the
// pipeline.
func ApplyE[In, Out any](name string, fn func(In) (Out, error)) Stage {
	return Stage{
		name: name,
		eager: func(data any) (any, error) {
			in, ok := castValue[In](data)
			if !ok {
				return nil, errors.TypeMismatch(name, typeName[In](), data)
			}
			return fn(in)
		},
	}
}

func eagerOf[In, Out any](name string, fn func(In) Out) func(any) (any, error) {
	return func(data any) (any, error) {
		in, ok := castValue[In](data)
		if !ok {
			return nil, errors.TypeMismatch(name, typeName[In](), data)
		}
		return fn(in), nil
	}
}

// lazyStage builds a fusable stage from an adapter factory. The factory is
// called once per pass.
func lazyStage[T, K any](name string, eager func([]T) any, factory func() lazy.Adapter[T, K], single bool, fallback func() K) Stage {
	probe := factory()
	f := &fusable{
		in:      typeOf[T](),
		out:     typeOf[K](),
		single:  single || probe.Single,
		accepts: func(data any) bool {
			_, ok := data.([]T)
			return ok
		},
		iterate: func(data any, yield func(any, int) bool) {
			for i, v := range data.([]T) {
				if !yield(v, i) {
					return
				}
			}
		},
		bind: func(leading bool) boundStep {
			a := factory()
			if !a.Indexed {
				return func(value any, _ int, _ any) lazy.Result[any] {
					v, _ := castValue[T](value)
					return lazy.Widen(a.Call(v, 0, nil))
				}
			}
			if leading {
				return func(value any, index int, source any) lazy.Result[any] {
					v, _ := castValue[T](value)
					src, _ := source.([]T)
					return lazy.Widen(a.Call(v, index, src))
				}
			}
			// Past the head of a run the index counts values received and the
			// source is the prefix received so far.
			var seen []T
			return func(value any, _ int, _ any) lazy.Result[any] {
				v, _ := castValue[T](value)
				seen = append(seen, v)
				return lazy.Widen(a.Call(v, len(seen)-1, seen))
			}
		},
	}
	if f.single {
		f.collect = func(values []any) any {
			if len(values) == 0 {
				if fallback != nil {
					return fallback()
				}
				var zero K
				return zero
			}
			v, _ := castValue[K](values[0])
			return v
		}
	} else {
		f.collect = func(values []any) any {
			out := make([]K, len(values))
			for i, v := range values {
				out[i], _ = castValue[K](v)
			}
			return out
		}
	}
	return Stage{
		name: name,
		eager: func(data any) (any, error) {
			in, ok := data.([]T)
			if !ok && data != nil {
				return nil, errors.TypeMismatch(name, typeName[[]T](), data)
			}
			return eager(in), nil
		},
		lazy: f,
	}
}

// castValue asserts v to T, accepting nil for T's zero value.
func castValue[T any](v any) (T, bool) {
	if v == nil {
		var zero T
		return zero, canBeNil[T]()
	}
	t, ok := v.(T)
	return t, ok
}

func canBeNil[T any]() bool {
	switch typeOf[T]().Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
		return true
	default:
		return false
	}
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

func typeName[T any]() string {
	return typeOf[T]().String()
}
