package pipe

import "github.com/kbukum/fnkit/lazy"

// pass is one fused traversal over a run of lazy stages.
type pass struct {
	steps []boundStep
	out   []any
}

// fuse drives run over data in a single traversal and returns the collected
// output of the last stage.
func fuse(data any, run []Stage) any {
	p := &pass{steps: make([]boundStep, len(run))}
	for i, s := range run {
		p.steps[i] = s.lazy.bind(i == 0)
	}
	run[0].lazy.iterate(data, func(v any, i int) bool {
		return !p.push(0, v, i, data)
	})
	return run[len(run)-1].lazy.collect(p.out)
}

// push feeds v to step k and everything it emits to the steps after it. It
// reports whether the pass must stop.
func (p *pass) push(k int, v any, index int, source any) bool {
	if k == len(p.steps) {
		p.out = append(p.out, v)
		return false
	}
	r := p.steps[k](v, index, source)
	switch r.Kind() {
	case lazy.KindOne:
		if p.push(k+1, r.Value(), 0, nil) {
			return true
		}
	case lazy.KindMany:
		for _, next := range r.Values() {
			if p.push(k+1, next, 0, nil) {
				return true
			}
		}
	}
	return r.Done()
}
