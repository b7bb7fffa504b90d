package collection

import (
	"github.com/kbukum/fnkit/pipe"
	"github.com/kbukum/fnkit/validation"
)

// Entry is a key/value pair.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Chunk splits data into slices of size values. The last chunk holds the
// remainder.
func Chunk[T any](data []T, size int) ([][]T, error) {
	if err := validation.Positive("size", size); err != nil {
		return nil, err
	}
	out := make([][]T, 0, (len(data)+size-1)/size)
	for start := 0; start < len(data); start += size {
		end := min(start+size, len(data))
		out = append(out, append(make([]T, 0, end-start), data[start:end]...))
	}
	return out, nil
}

// ChunkWith is the pipeline form of Chunk.
func ChunkWith[T any](size int) pipe.Stage {
	return pipe.ApplyE("chunk", func(data []T) ([][]T, error) { return Chunk(data, size) })
}

func groupByOp[T any, K comparable]() pipe.Op[[]T, func(T) K, map[K][]T] {
	return pipe.Op[[]T, func(T) K, map[K][]T]{
		Name: "groupBy",
		Impl: func(data []T, key func(T) K) map[K][]T {
			return GroupByMany(data, func(v T) []K { return []K{key(v)} })
		},
	}
}

// GroupBy groups the values of data by key. Values keep their order inside
// each group.
func GroupBy[T any, K comparable](data []T, key func(T) K) map[K][]T {
	return groupByOp[T, K]().Call(data, key)
}

// GroupByWith is the pipeline form of GroupBy.
func GroupByWith[T any, K comparable](key func(T) K) pipe.Stage {
	return groupByOp[T, K]().Stage(key)
}

// GroupByMany adds every value of data to each group named by keys.
func GroupByMany[T any, K comparable](data []T, keys func(T) []K) map[K][]T {
	out := make(map[K][]T)
	for _, v := range data {
		for _, k := range keys(v) {
			out[k] = append(out[k], v)
		}
	}
	return out
}

// GroupByManyWith is the pipeline form of GroupByMany.
func GroupByManyWith[T any, K comparable](keys func(T) []K) pipe.Stage {
	return pipe.Apply("groupByMany", func(data []T) map[K][]T { return GroupByMany(data, keys) })
}

// IndexBy maps each value of data by key. Later values win.
func IndexBy[T any, K comparable](data []T, key func(T) K) map[K]T {
	out := make(map[K]T, len(data))
	for _, v := range data {
		out[key(v)] = v
	}
	return out
}

// IndexByWith is the pipeline form of IndexBy.
func IndexByWith[T any, K comparable](key func(T) K) pipe.Stage {
	return pipe.Apply("indexBy", func(data []T) map[K]T { return IndexBy(data, key) })
}

// Partition splits data into the values matching pred and the rest.
func Partition[T any](data []T, pred func(T) bool) (matched, rest []T) {
	matched, rest = make([]T, 0), make([]T, 0)
	for _, v := range data {
		if pred(v) {
			matched = append(matched, v)
			continue
		}
		rest = append(rest, v)
	}
	return matched, rest
}

// PartitionWith is the pipeline form of Partition. The stage yields
// [2][]T{matched, rest}.
func PartitionWith[T any](pred func(T) bool) pipe.Stage {
	return pipe.Apply("partition", func(data []T) [2][]T {
		m, r := Partition(data, pred)
		return [2][]T{m, r}
	})
}

// MapToObj builds a map from the key/value pair fn returns for each value.
func MapToObj[T any, K comparable, V any](data []T, fn func(T) (K, V)) map[K]V {
	out := make(map[K]V, len(data))
	for _, v := range data {
		k, val := fn(v)
		out[k] = val
	}
	return out
}

// MapToObjWith is the pipeline form of MapToObj.
func MapToObjWith[T any, K comparable, V any](fn func(T) (K, V)) pipe.Stage {
	return pipe.Apply("mapToObj", func(data []T) map[K]V { return MapToObj(data, fn) })
}

// FlatMapToObj builds a map from every entry fn returns. Later entries win.
func FlatMapToObj[T any, K comparable, V any](data []T, fn func(T, int, []T) []Entry[K, V]) map[K]V {
	out := make(map[K]V)
	for i, v := range data {
		for _, e := range fn(v, i, data) {
			out[e.Key] = e.Value
		}
	}
	return out
}

// FlatMapToObjWith is the pipeline form of FlatMapToObj.
func FlatMapToObjWith[T any, K comparable, V any](fn func(T, int, []T) []Entry[K, V]) pipe.Stage {
	return pipe.Apply("flatMapToObj", func(data []T) map[K]V { return FlatMapToObj(data, fn) })
}
