package lazy

// Step consumes one value and reports what it produces.
//
// index and source are meaningful only for adapters marked Indexed; other
// adapters receive 0 and nil.
type Step[T, K any] func(value T, index int, source []T) Result[K]

// Adapter is a lazily evaluable operation together with the capability flags
// a driver needs to call it correctly.
type Adapter[T, K any] struct {
	// Step is the per-value function. It may close over private state.
	Step Step[T, K]
	// Indexed marks a step that wants the running index and source slice.
	Indexed bool
	// Single marks a step for which at most one emitted value is meaningful
	// for the whole pass (find, first).
	Single bool
}

// Call invokes the step, passing index and source only when the adapter is
// indexed.
func (a Adapter[T, K]) Call(value T, index int, source []T) Result[K] {
	if a.Indexed {
		return a.Step(value, index, source)
	}
	return a.Step(value, 0, nil)
}

// Reduce drives a over source in a single ordered traversal and returns the
// emitted values in append order. The traversal stops right after the first
// result that is done.
func Reduce[T, K any](source []T, a Adapter[T, K]) []K {
	out := make([]K, 0)
	for i, v := range source {
		r := a.Call(v, i, source)
		out = r.AppendTo(out)
		if r.Done() {
			break
		}
	}
	return out
}
