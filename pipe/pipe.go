package pipe

import (
	"github.com/kbukum/fnkit/errors"
)

// Pipe threads data through stages and returns the final value as R.
//
// Every maximal run of consecutive lazy stages whose element types chain is
// evaluated with one pass over the current slice. A single-result stage (find,
// first) ends its run. Any other stage, or a lazy stage whose input is not a
// slice of its element type, is applied eagerly to the whole current value.
//
// A stage that receives a value of the wrong type aborts the pipeline with a
// TYPE_MISMATCH error. Panics raised by user callbacks are not recovered.
func Pipe[R any](data any, stages ...Stage) (R, error) {
	var zero R
	out, err := run(data, stages)
	if err != nil {
		return zero, err
	}
	r, ok := castValue[R](out)
	if !ok {
		return zero, errors.TypeMismatch("pipe result", typeName[R](), out)
	}
	return r, nil
}

// MustPipe is like Pipe but panics on error.
func MustPipe[R any](data any, stages ...Stage) R {
	r, err := Pipe[R](data, stages...)
	if err != nil {
		panic(err)
	}
	return r
}

// CreatePipe returns a reusable function that runs stages over its input.
// Lazy stages build fresh adapter state on every call.
func CreatePipe[In, R any](stages ...Stage) func(In) (R, error) {
	own := append([]Stage(nil), stages...)
	return func(data In) (R, error) {
		return Pipe[R](data, own...)
	}
}

func run(data any, stages []Stage) (any, error) {
	current := data
	for i := 0; i < len(stages); {
		s := stages[i]
		if s.lazy != nil && s.lazy.accepts(current) {
			j := i + 1
			for j < len(stages) && stages[j].lazy != nil && stages[j-1].lazy.chainsInto(stages[j].lazy) {
				j++
			}
			current = fuse(current, stages[i:j])
			i = j
			continue
		}
		if s.eager == nil {
			return nil, errors.InvalidInput("stage", "stage has no function")
		}
		out, err := s.eager(current)
		if err != nil {
			return nil, err
		}
		current = out
		i++
	}
	return current, nil
}
