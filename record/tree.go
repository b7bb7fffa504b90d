package record

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/kbukum/fnkit/errors"
)

// Path returns the value found by following path through nested maps and
// slices. Slice elements are addressed by decimal index.
func Path(obj any, path ...string) (any, bool) {
	cur := obj
	for _, seg := range path {
		switch node := cur.(type) {
		case map[string]any:
			v, ok := node[seg]
			if !ok {
				return nil, false
			}
			cur = v
		case []any:
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= len(node) {
				return nil, false
			}
			cur = node[i]
		default:
			return nil, false
		}
	}
	return cur, true
}

// SetPath returns a deep copy of obj with value stored at path. Missing
// containers are created: a map, or a slice when the next segment is an
// index. An index may address an existing element or append one; anything
// further past the end is rejected. obj must be a map[string]any or a []any;
// it is never modified.
func SetPath(obj any, path []string, value any) (any, error) {
	switch obj.(type) {
	case map[string]any, []any:
	default:
		return nil, errors.InvalidInput("obj", "expected a map or slice, got "+typeName(obj))
	}
	return assign(Clone(obj), path, value, true)
}

// assign stores value at path below node and returns the updated node. When
// strict is false an index past the end of a slice turns the slice into a map
// keyed by index instead of failing.
func assign(node any, path []string, value any, strict bool) (any, error) {
	if len(path) == 0 {
		return value, nil
	}
	seg, rest := path[0], path[1:]
	i, err := strconv.Atoi(seg)
	isIndex := err == nil && i >= 0

	arr, isSlice := node.([]any)
	_, isMap := node.(map[string]any)
	if isSlice || (isIndex && !isMap) {
		switch {
		case isIndex && i < len(arr):
			child, err := assign(arr[i], rest, value, strict)
			if err != nil {
				return nil, err
			}
			arr[i] = child
			return arr, nil
		case isIndex && i == len(arr):
			child, err := assign(nil, rest, value, strict)
			if err != nil {
				return nil, err
			}
			return append(arr, child), nil
		case isIndex && strict:
			return nil, errors.InvalidInput("path",
				fmt.Sprintf("index %d is past the end of a slice of length %d", i, len(arr)))
		}
		node = indexMap(arr)
	}

	m, ok := node.(map[string]any)
	if !ok {
		m = make(map[string]any, 1)
	}
	child, err := assign(m[seg], rest, value, strict)
	if err != nil {
		return nil, err
	}
	m[seg] = child
	return m, nil
}

// indexMap turns a slice into a map keyed by decimal index.
func indexMap(arr []any) map[string]any {
	m := make(map[string]any, len(arr)+1)
	for i, v := range arr {
		m[strconv.Itoa(i)] = v
	}
	return m
}

// Clone returns a deep copy of nested maps and slices. Leaves are shared.
func Clone(v any) any {
	switch node := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(node))
		for k, child := range node {
			out[k] = Clone(child)
		}
		return out
	case []any:
		out := make([]any, len(node))
		for i, child := range node {
			out[i] = Clone(child)
		}
		return out
	default:
		return v
	}
}

// Compact returns a copy of m without nil values, recursively. Nil elements
// are removed from slices as well.
func Compact(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if v == nil {
			continue
		}
		out[k] = compactValue(v)
	}
	return out
}

func compactValue(v any) any {
	switch node := v.(type) {
	case map[string]any:
		return Compact(node)
	case []any:
		out := make([]any, 0, len(node))
		for _, child := range node {
			if child != nil {
				out = append(out, compactValue(child))
			}
		}
		return out
	default:
		return v
	}
}

// DeepEqual reports whether a and b are deeply equal.
func DeepEqual(a, b any) bool {
	return reflect.DeepEqual(a, b)
}

// DeepMergeRight merges right into a copy of left. On conflicts right wins,
// except that two maps are merged recursively.
func DeepMergeRight(left, right map[string]any) map[string]any {
	out, _ := Clone(left).(map[string]any)
	if out == nil {
		out = make(map[string]any, len(right))
	}
	for k, rv := range right {
		if lm, ok := out[k].(map[string]any); ok {
			if rm, ok := rv.(map[string]any); ok {
				out[k] = DeepMergeRight(lm, rm)
				continue
			}
		}
		out[k] = Clone(rv)
	}
	return out
}

// DeepMergeLeft is DeepMergeRight with left winning conflicts.
func DeepMergeLeft(left, right map[string]any) map[string]any {
	return DeepMergeRight(right, left)
}

// FlattenOption configures Flatten and Unflatten.
type FlattenOption func(*flattenOptions)

type flattenOptions struct {
	separator string
}

// WithSeparator sets the key separator. The default is ".".
func WithSeparator(sep string) FlattenOption {
	return func(o *flattenOptions) { o.separator = sep }
}

func newFlattenOptions(opts []FlattenOption) flattenOptions {
	o := flattenOptions{separator: "."}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Flatten turns a nested document into a single-level map keyed by joined
// paths, e.g. "a.b.0". Empty maps and slices are kept as values.
func Flatten(m map[string]any, opts ...FlattenOption) map[string]any {
	o := newFlattenOptions(opts)
	out := make(map[string]any)
	flattenInto(out, "", m, o.separator)
	return out
}

func flattenInto(out map[string]any, prefix string, v any, sep string) {
	join := func(k string) string {
		if prefix == "" {
			return k
		}
		return prefix + sep + k
	}
	switch node := v.(type) {
	case map[string]any:
		if len(node) == 0 && prefix != "" {
			out[prefix] = map[string]any{}
			return
		}
		for k, child := range node {
			flattenInto(out, join(k), child, sep)
		}
	case []any:
		if len(node) == 0 && prefix != "" {
			out[prefix] = []any{}
			return
		}
		for i, child := range node {
			flattenInto(out, join(strconv.Itoa(i)), child, sep)
		}
	default:
		out[prefix] = v
	}
}

// Unflatten reverses Flatten. A segment followed by a decimal index becomes a
// slice. Keys are applied in path order, indexes compared numerically, so the
// result does not depend on map iteration. When a parent has both index and
// name children, or indexes with gaps, it becomes a map keyed by the segment
// text and no value is dropped.
func Unflatten(m map[string]any, opts ...FlattenOption) map[string]any {
	o := newFlattenOptions(opts)
	type entry struct {
		path  []string
		value any
	}
	entries := make([]entry, 0, len(m))
	for k, v := range m {
		entries = append(entries, entry{path: strings.Split(k, o.separator), value: v})
	}
	slices.SortFunc(entries, func(a, b entry) int { return comparePaths(a.path, b.path) })

	var out any = make(map[string]any, len(entries))
	for _, e := range entries {
		// Non-strict assignment into a map root cannot fail.
		out, _ = assign(out, e.path, Clone(e.value), false)
	}
	return out.(map[string]any)
}

// comparePaths orders paths segment by segment. Index segments sort before
// names and compare numerically; names compare as strings.
func comparePaths(a, b []string) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		ai, aerr := strconv.Atoi(a[i])
		bi, berr := strconv.Atoi(b[i])
		var c int
		switch {
		case aerr == nil && berr == nil:
			c = cmp.Compare(ai, bi)
		case aerr == nil:
			c = -1
		case berr == nil:
			c = 1
		default:
			c = strings.Compare(a[i], b[i])
		}
		if c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}
