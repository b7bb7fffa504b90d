package lazy

// Kind identifies which of the three Result shapes a step produced.
type Kind uint8

const (
	// KindEmpty means the input value produced no output.
	KindEmpty Kind = iota
	// KindOne means the input value produced exactly one output value.
	KindOne
	// KindMany means the input value produced a batch of output values.
	KindMany
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindOne:
		return "one"
	case KindMany:
		return "many"
	default:
		return "unknown"
	}
}

// Result is the outcome of feeding one value to a Step.
//
// Done is independent of the shape: a done result always terminates the pass
// after the current value has been handled, whether or not it emitted.
type Result[K any] struct {
	kind  Kind
	value K
	batch []K
	done  bool
}

// Empty returns a result that emits nothing.
func Empty[K any](done bool) Result[K] {
	return Result[K]{kind: KindEmpty, done: done}
}

// One returns a result that emits v.
func One[K any](v K, done bool) Result[K] {
	return Result[K]{kind: KindOne, value: v, done: done}
}

// Many returns a result that emits every value of vs in order.
func Many[K any](vs []K, done bool) Result[K] {
	return Result[K]{kind: KindMany, batch: vs, done: done}
}

// Kind returns the shape of the result.
func (r Result[K]) Kind() Kind { return r.kind }

// Done reports whether the pass must stop after this result.
func (r Result[K]) Done() bool { return r.done }

// HasNext reports whether the result emits at least one slot (One or Many).
func (r Result[K]) HasNext() bool { return r.kind != KindEmpty }

// Value returns the emitted value of a One result, or the zero value.
func (r Result[K]) Value() K { return r.value }

// Values returns the emitted values: nil for Empty, a one-element slice for
// One and the batch for Many.
func (r Result[K]) Values() []K {
	switch r.kind {
	case KindOne:
		return []K{r.value}
	case KindMany:
		return r.batch
	default:
		return nil
	}
}

// AppendTo appends the emitted values to dst and returns the extended slice.
func (r Result[K]) AppendTo(dst []K) []K {
	switch r.kind {
	case KindOne:
		return append(dst, r.value)
	case KindMany:
		return append(dst, r.batch...)
	default:
		return dst
	}
}

// Widen converts a typed result into an untyped one, preserving its shape.
func Widen[K any](r Result[K]) Result[any] {
	switch r.kind {
	case KindOne:
		return One[any](r.value, r.done)
	case KindMany:
		out := make([]any, len(r.batch))
		for i, v := range r.batch {
			out[i] = v
		}
		return Many(out, r.done)
	default:
		return Empty[any](r.done)
	}
}
