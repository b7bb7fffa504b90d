package record

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kbukum/fnkit/errors"
	"github.com/kbukum/fnkit/pipe"
)

func TestKeysValuesEntries(t *testing.T) {
	m := map[string]int{"b": 2, "a": 1}
	require.ElementsMatch(t, []string{"a", "b"}, Keys(m))
	require.Equal(t, []string{"a", "b"}, SortedKeys(m))
	require.ElementsMatch(t, []int{1, 2}, Values(m))
	require.Equal(t, []Entry[string, int]{{Key: "a", Value: 1}, {Key: "b", Value: 2}}, Entries(m))
	require.Equal(t, m, FromEntries(Entries(m)))

	keys, err := pipe.Pipe[[]string](m, SortedKeysWith[string, int]())
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, keys)
}

func TestPickOmit(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2, "c": 3}
	require.Equal(t, map[string]int{"a": 1, "c": 3}, Pick(m, "a", "c", "z"))
	require.Equal(t, map[string]int{"b": 2}, Omit(m, "a", "c"))
	require.Len(t, m, 3)

	got, err := pipe.Pipe[map[string]int](m, OmitWith[string, int]("b"), PickWith[string, int]("a", "b"))
	require.NoError(t, err)
	require.Equal(t, map[string]int{"a": 1}, got)
}

func TestMapFilterFlatMap(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2}
	upper := MapRecord(m, func(k string, v int) (string, int) { return strings.ToUpper(k), v * 10 })
	require.Equal(t, map[string]int{"A": 10, "B": 20}, upper)

	even := FilterRecord(m, func(_ string, v int) bool { return v%2 == 0 })
	require.Equal(t, map[string]int{"b": 2}, even)

	expanded := FlatMapRecord(m, func(k string, v int) []Entry[string, int] {
		return []Entry[string, int]{{Key: k, Value: v}, {Key: k + k, Value: v * 2}}
	})
	require.Equal(t, map[string]int{"a": 1, "aa": 2, "b": 2, "bb": 4}, expanded)

	got, err := pipe.Pipe[map[string]string](m,
		FilterRecordWith(func(_ string, v int) bool { return v > 1 }),
		MapRecordWith(func(k string, v int) (string, string) { return k, strings.Repeat("x", v) }),
	)
	require.NoError(t, err)
	require.Equal(t, map[string]string{"b": "xx"}, got)

	require.True(t, HaveKeys(m, "a", "b"))
	require.False(t, HaveKeys(m, "a", "z"))
}

func TestPath(t *testing.T) {
	doc := map[string]any{"a": map[string]any{"list": []any{10, map[string]any{"x": "y"}}}}

	v, ok := Path(doc, "a", "list", "1", "x")
	require.True(t, ok)
	require.Equal(t, "y", v)

	_, ok = Path(doc, "a", "list", "5")
	require.False(t, ok)
	_, ok = Path(doc, "a", "missing")
	require.False(t, ok)
	_, ok = Path(doc, "a", "list", "0", "deeper")
	require.False(t, ok)

	v, ok = Path(doc)
	require.True(t, ok)
	require.Equal(t, doc, v)
}

func TestSetPath(t *testing.T) {
	got, err := SetPath(map[string]any{}, strings.Split("a.b.c.d", "."), 58)
	require.NoError(t, err)
	require.Equal(t, map[string]any{"a": map[string]any{"b": map[string]any{"c": map[string]any{"d": 58}}}}, got)

	got, err = SetPath(map[string]any{"a": map[string]any{"x": 4}}, []string{"a", "b"}, 1)
	require.NoError(t, err)
	require.Equal(t, map[string]any{"a": map[string]any{"x": 4, "b": 1}}, got)

	data := map[string]any{"data": 4, "a": []any{1, 2, 3, 4, 5}}
	got, err = SetPath(data, []string{"a", "5"}, 58)
	require.NoError(t, err)
	require.Equal(t, map[string]any{"data": 4, "a": []any{1, 2, 3, 4, 5, 58}}, got)
	require.Equal(t, map[string]any{"data": 4, "a": []any{1, 2, 3, 4, 5}}, data, "input must not change")

	got, err = SetPath([]any{}, []string{"0", "a", "b"}, 58)
	require.NoError(t, err)
	require.Equal(t, []any{map[string]any{"a": map[string]any{"b": 58}}}, got)

	got, err = SetPath(map[string]any{"a": map[string]any{"b": map[string]any{"c": 1}}}, []string{"a", "b"}, 22)
	require.NoError(t, err)
	require.Equal(t, map[string]any{"a": map[string]any{"b": 22}}, got)

	_, err = SetPath("text", []string{"a"}, 1)
	require.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
}

func TestSetPath_IndexBounds(t *testing.T) {
	_, err := SetPath(map[string]any{"a": []any{1}}, []string{"a", "999999999"}, 2)
	require.True(t, errors.Is(err, errors.ErrCodeInvalidInput))

	_, err = SetPath([]any{}, []string{"1"}, 2)
	require.True(t, errors.Is(err, errors.ErrCodeInvalidInput))

	got, err := SetPath(map[string]any{"a": []any{1}}, []string{"a", "x"}, 2)
	require.NoError(t, err)
	require.Equal(t, map[string]any{"a": map[string]any{"0": 1, "x": 2}}, got)

	got, err = SetPath(map[string]any{"a": 5}, []string{"a", "0"}, 2)
	require.NoError(t, err)
	require.Equal(t, map[string]any{"a": []any{2}}, got)
}

func TestCloneIsDeep(t *testing.T) {
	orig := map[string]any{"a": []any{map[string]any{"b": 1}}}
	cp := Clone(orig).(map[string]any)
	cp["a"].([]any)[0].(map[string]any)["b"] = 2
	require.Equal(t, 1, orig["a"].([]any)[0].(map[string]any)["b"])
	require.True(t, DeepEqual(map[string]any{"a": []any{1}}, map[string]any{"a": []any{1}}))
	require.False(t, DeepEqual(orig, cp))
}

func TestCompact(t *testing.T) {
	require.Equal(t, map[string]any{}, Compact(map[string]any{"a": nil, "b": nil}))

	got := Compact(map[string]any{
		"a": nil,
		"b": []any{nil},
		"x": map[string]any{"zx": []any{map[string]any{"a": nil}}},
	})
	require.Equal(t, map[string]any{"b": []any{}, "x": map[string]any{"zx": []any{map[string]any{}}}}, got)
}

func TestDeepMerge(t *testing.T) {
	left := map[string]any{"days": map[string]any{"unit": "d"}, "keep": 1}
	right := map[string]any{"days": map[string]any{"unit": "D", "extra": true}, "new": "x"}

	require.Equal(t, map[string]any{
		"days": map[string]any{"unit": "D", "extra": true},
		"keep": 1,
		"new":  "x",
	}, DeepMergeRight(left, right))

	require.Equal(t, map[string]any{
		"days": map[string]any{"unit": "d", "extra": true},
		"keep": 1,
		"new":  "x",
	}, DeepMergeLeft(left, right))

	require.Equal(t, "d", left["days"].(map[string]any)["unit"], "inputs must not change")
	require.Equal(t, map[string]any{"a": 1}, DeepMergeRight(nil, map[string]any{"a": 1}))
}

func TestFlattenRoundTrip(t *testing.T) {
	obj := map[string]any{
		"value": map[string]any{
			"foo": map[string]any{
				"bar": "yes",
				"so":  map[string]any{"freakin": map[string]any{"nested": "Wow"}},
			},
		},
		"test":      []any{true, false, []any{nil, nil, 1}},
		"not_lost":  []any{},
		"not_lost2": map[string]any{},
	}
	flat := Flatten(obj)
	require.Equal(t, map[string]any{
		"not_lost":                    []any{},
		"not_lost2":                   map[string]any{},
		"test.0":                      true,
		"test.1":                      false,
		"test.2.0":                    nil,
		"test.2.1":                    nil,
		"test.2.2":                    1,
		"value.foo.bar":               "yes",
		"value.foo.so.freakin.nested": "Wow",
	}, flat)
	require.Equal(t, obj, Unflatten(flat))

	require.Equal(t, map[string]any{"a/b": 1}, Flatten(map[string]any{"a": map[string]any{"b": 1}}, WithSeparator("/")))
	require.Equal(t, map[string]any{"a": map[string]any{"b": 1}}, Unflatten(map[string]any{"a/b": 1}, WithSeparator("/")))
}

func TestUnflatten_OrderIndependent(t *testing.T) {
	mixed := map[string]any{"a.0": 1, "a.x": 2}
	for range 50 {
		require.Equal(t, map[string]any{"a": map[string]any{"0": 1, "x": 2}}, Unflatten(mixed))
	}

	long := make(map[string]any)
	want := make([]any, 12)
	for i := range want {
		long["list."+strconv.Itoa(i)] = i
		want[i] = i
	}
	require.Equal(t, map[string]any{"list": want}, Unflatten(long))

	gaps := Unflatten(map[string]any{"a.0": 1, "a.2": 3, "b.999999999": true})
	require.Equal(t, map[string]any{
		"a": map[string]any{"0": 1, "2": 3},
		"b": map[string]any{"999999999": true},
	}, gaps)
}
