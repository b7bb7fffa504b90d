package datetime

import (
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"

	"github.com/spf13/cast"

	"github.com/kbukum/fnkit/errors"
)

// Second returns n seconds as a duration.
func Second(n float64) time.Duration { return time.Duration(n * float64(time.Second)) }

// Minute returns n minutes as a duration.
func Minute(n float64) time.Duration { return time.Duration(n * float64(time.Minute)) }

// Hour returns n hours as a duration.
func Hour(n float64) time.Duration { return time.Duration(n * float64(time.Hour)) }

// Day returns n days of 24 hours as a duration.
func Day(n float64) time.Duration { return time.Duration(n * 24 * float64(time.Hour)) }

// Units holds the labels PrettyDuration appends to each part.
type Units struct {
	Days    string
	Hours   string
	Minutes string
	Seconds string
}

// DefaultUnits are the labels used when no override is given.
var DefaultUnits = Units{Days: "d", Hours: "h", Minutes: "min", Seconds: "s"}

// UnitOption overrides PrettyDuration labels.
type UnitOption func(*Units)

// WithUnits replaces the labels that are non-empty in u.
func WithUnits(u Units) UnitOption {
	return func(dst *Units) {
		if u.Days != "" {
			dst.Days = u.Days
		}
		if u.Hours != "" {
			dst.Hours = u.Hours
		}
		if u.Minutes != "" {
			dst.Minutes = u.Minutes
		}
		if u.Seconds != "" {
			dst.Seconds = u.Seconds
		}
	}
}

// PrettyDuration formats d as space separated day, hour, minute and second
// parts, skipping the zero ones. Sub-second precision is truncated and a
// duration under one second gives "".
func PrettyDuration(d time.Duration, opts ...UnitOption) string {
	units := DefaultUnits
	for _, opt := range opts {
		opt(&units)
	}

	total := int64(d.Abs() / time.Second)
	parts := []struct {
		n    int64
		unit string
	}{
		{total / 86400, units.Days},
		{total % 86400 / 3600, units.Hours},
		{total % 3600 / 60, units.Minutes},
		{total % 60, units.Seconds},
	}

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p.n != 0 {
			out = append(out, fmt.Sprintf("%d%s", p.n, p.unit))
		}
	}
	return strings.Join(out, " ")
}

const (
	minute = 60
	hour   = 60 * minute
	day    = 24 * hour
)

// PrettyTimeDiff describes date relative to from in words: "just now",
// "5 minutes ago", "yesterday", "after 3 hours", "tomorrow". date may be
// anything ToDate accepts.
func PrettyTimeDiff(date any, from time.Time) (string, error) {
	t, ok := ToDate(date)
	if !ok {
		return "", errors.InvalidInput("date", fmt.Sprintf("%v is not a valid date", date))
	}

	delta := int64(math.Floor(from.Sub(t).Seconds()))
	if delta > 0 {
		return past(delta), nil
	}
	return future(-delta), nil
}

func past(delta int64) string {
	switch {
	case delta < 30:
		return "just now"
	case delta < minute:
		return fmt.Sprintf("%d seconds ago", delta)
	case delta < 2*minute:
		return "a minute ago"
	case delta < hour:
		return fmt.Sprintf("%d minutes ago", delta/minute)
	case delta/hour == 1:
		return "1 hour ago"
	case delta < day:
		return fmt.Sprintf("%d hours ago", delta/hour)
	case delta < 2*day:
		return "yesterday"
	default:
		return fmt.Sprintf("%d days ago", delta/day)
	}
}

func future(delta int64) string {
	switch {
	case delta < 30:
		return "just now"
	case delta < minute:
		return fmt.Sprintf("after %d seconds", delta)
	case delta < 2*minute:
		return "after one minute"
	case delta < hour:
		return fmt.Sprintf("after %d minutes", delta/minute)
	case delta/hour == 1:
		return "after one hour"
	case delta < day:
		return fmt.Sprintf("after %d hours", delta/hour)
	case delta < 2*day:
		return "tomorrow"
	default:
		return fmt.Sprintf("after %d days", delta/day)
	}
}

// ToDate converts v into a time. Numbers are milliseconds since the Unix
// epoch, strings are parsed in any layout cast understands and a time.Time
// or *time.Time is returned as is. The second result is false when v cannot
// be converted.
func ToDate(v any) (time.Time, bool) {
	switch x := v.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		return x, true
	case *time.Time:
		if x == nil {
			return time.Time{}, false
		}
		return *x, true
	case string:
		t, err := cast.ToTimeInDefaultLocationE(strings.TrimSpace(x), time.UTC)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}

	switch reflect.TypeOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		ms, err := cast.ToInt64E(v)
		if err != nil {
			return time.Time{}, false
		}
		return time.UnixMilli(ms), true
	}
	return time.Time{}, false
}
