// Package collection provides slice operations in two calling conventions.
//
// Every operation has a data-first form that runs immediately:
//
//	evens := collection.Filter(numbers, isEven)
//
// and a data-last form, suffixed With, that returns a pipe.Stage:
//
//	firstEvens, err := pipe.Pipe[[]int](numbers,
//	    collection.FilterWith(isEven),
//	    collection.TakeWith[int](2),
//	)
//
// Stages of lazy-capable operations (Filter, Map, Take, Drop, TakeWhile,
// Uniq, UniqBy, Difference, Intersection, Find, FindIndex, First, Flatten,
// FlattenDeep, FlatMap) fuse inside pipe.Pipe. The data-first forms never
// fuse; they always build their result.
package collection
