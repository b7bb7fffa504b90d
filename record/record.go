package record

import (
	"cmp"
	"slices"

	"github.com/kbukum/fnkit/collection"
	"github.com/kbukum/fnkit/pipe"
)

// Entry is a key/value pair of a map.
type Entry[K comparable, V any] = collection.Entry[K, V]

// Keys returns the keys of m in unspecified order.
func Keys[K comparable, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := Keys(m)
	slices.Sort(keys)
	return keys
}

// SortedKeysWith is the pipeline form of SortedKeys.
func SortedKeysWith[K cmp.Ordered, V any]() pipe.Stage {
	return pipe.Apply("sortedKeys", SortedKeys[K, V])
}

// Values returns the values of m in unspecified order.
func Values[K comparable, V any](m map[K]V) []V {
	values := make([]V, 0, len(m))
	for _, v := range m {
		values = append(values, v)
	}
	return values
}

// Entries returns the entries of m ordered by key.
func Entries[K cmp.Ordered, V any](m map[K]V) []Entry[K, V] {
	out := make([]Entry[K, V], 0, len(m))
	for _, k := range SortedKeys(m) {
		out = append(out, Entry[K, V]{Key: k, Value: m[k]})
	}
	return out
}

// EntriesWith is the pipeline form of Entries.
func EntriesWith[K cmp.Ordered, V any]() pipe.Stage {
	return pipe.Apply("entries", Entries[K, V])
}

// FromEntries builds a map from entries. Later entries win.
func FromEntries[K comparable, V any](entries []Entry[K, V]) map[K]V {
	out := make(map[K]V, len(entries))
	for _, e := range entries {
		out[e.Key] = e.Value
	}
	return out
}

// Pick returns a map holding only the given keys of m.
func Pick[K comparable, V any](m map[K]V, keys ...K) map[K]V {
	out := make(map[K]V, len(keys))
	for _, k := range keys {
		if v, ok := m[k]; ok {
			out[k] = v
		}
	}
	return out
}

// PickWith is the pipeline form of Pick.
func PickWith[K comparable, V any](keys ...K) pipe.Stage {
	return pipe.Apply("pick", func(m map[K]V) map[K]V { return Pick(m, keys...) })
}

// Omit returns a copy of m without the given keys.
func Omit[K comparable, V any](m map[K]V, keys ...K) map[K]V {
	drop := make(map[K]struct{}, len(keys))
	for _, k := range keys {
		drop[k] = struct{}{}
	}
	return FilterRecord(m, func(k K, _ V) bool {
		_, ok := drop[k]
		return !ok
	})
}

// OmitWith is the pipeline form of Omit.
func OmitWith[K comparable, V any](keys ...K) pipe.Stage {
	return pipe.Apply("omit", func(m map[K]V) map[K]V { return Omit(m, keys...) })
}

// MapRecord builds a new map from the pair fn returns for every entry.
func MapRecord[K, K2 comparable, V, V2 any](m map[K]V, fn func(K, V) (K2, V2)) map[K2]V2 {
	out := make(map[K2]V2, len(m))
	for k, v := range m {
		k2, v2 := fn(k, v)
		out[k2] = v2
	}
	return out
}

// MapRecordWith is the pipeline form of MapRecord.
func MapRecordWith[K, K2 comparable, V, V2 any](fn func(K, V) (K2, V2)) pipe.Stage {
	return pipe.Apply("mapRecord", func(m map[K]V) map[K2]V2 { return MapRecord(m, fn) })
}

// FilterRecord returns the entries of m for which pred returns true.
func FilterRecord[K comparable, V any](m map[K]V, pred func(K, V) bool) map[K]V {
	out := make(map[K]V)
	for k, v := range m {
		if pred(k, v) {
			out[k] = v
		}
	}
	return out
}

// FilterRecordWith is the pipeline form of FilterRecord.
func FilterRecordWith[K comparable, V any](pred func(K, V) bool) pipe.Stage {
	return pipe.Apply("filterRecord", func(m map[K]V) map[K]V { return FilterRecord(m, pred) })
}

// FlatMapRecord builds a new map from every entry fn returns.
func FlatMapRecord[K, K2 comparable, V, V2 any](m map[K]V, fn func(K, V) []Entry[K2, V2]) map[K2]V2 {
	out := make(map[K2]V2)
	for k, v := range m {
		for _, e := range fn(k, v) {
			out[e.Key] = e.Value
		}
	}
	return out
}

// HaveKeys reports whether m holds every one of keys.
func HaveKeys[K comparable, V any](m map[K]V, keys ...K) bool {
	for _, k := range keys {
		if _, ok := m[k]; !ok {
			return false
		}
	}
	return true
}
