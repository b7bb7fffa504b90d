// Package pipe composes slice operations into a single pipeline and fuses
// consecutive lazy-capable operations into one traversal.
//
// A pipeline is a list of Stage values. Stages built from a lazy-capable
// operation (see LazyOp and SingleOp) carry a lazy.Adapter factory; Pipe
// drives every maximal run of such stages with one pass over the current
// slice, so that
//
//	got, err := pipe.Pipe[[]int](numbers,
//	    collection.FilterWith(isEven),
//	    collection.MapWith(square),
//	    collection.TakeWith[int](3),
//	)
//
// stops reading numbers as soon as three squares have been produced. Stages
// built with Apply are eager: they receive the whole current value.
//
// Operations are exposed through Op, LazyOp and SingleOp, which give one
// implementation a data-first form (Call) and a data-last form (Bind and
// Stage) without inspecting arguments at run time.
package pipe
