package num

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

var (
	leadingInt   = regexp.MustCompile(`^\s*[+-]?\d+`)
	leadingFloat = regexp.MustCompile(`^\s*[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)
)

// ToInt converts data to an int. Numbers are truncated; strings are parsed
// from their leading digits, so "5.5" gives 5 and "12px" gives 12. ok is
// false for nil, booleans and strings that do not start with a number.
func ToInt(data any) (int, bool) {
	switch v := data.(type) {
	case nil, bool:
		return 0, false
	case string:
		m := leadingInt.FindString(v)
		if m == "" {
			return 0, false
		}
		n, err := strconv.Atoi(strings.TrimSpace(m))
		return n, err == nil
	default:
		n, err := cast.ToIntE(data)
		return n, err == nil
	}
}

// ToIntOr is ToInt with a default for values that cannot be converted.
func ToIntOr(data any, def int) int {
	if n, ok := ToInt(data); ok {
		return n
	}
	return def
}

// ToFloat converts data to a float64. Strings are parsed from their leading
// number, so "5.5kg" gives 5.5.
func ToFloat(data any) (float64, bool) {
	switch v := data.(type) {
	case nil, bool:
		return 0, false
	case string:
		m := leadingFloat.FindString(v)
		if m == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(m), 64)
		return f, err == nil
	default:
		f, err := cast.ToFloat64E(data)
		return f, err == nil
	}
}

// ToFloatOr is ToFloat with a default for values that cannot be converted.
func ToFloatOr(data any, def float64) float64 {
	if f, ok := ToFloat(data); ok {
		return f
	}
	return def
}
