package query

import (
	"fmt"
	"time"
)

// Filter keeps the records for which keep returns true. A nil
// predicate is a no-op.
func Filter[T any](records []T, keep func(T) bool) []T {
	if keep == nil {
		return records
	}
	out := make([]T, 0, len(records))
	for _, r := range records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// Equals keeps records whose field strictly equals value. An empty
// value is a no-op: the input is returned unchanged.
func Equals[T any](records []T, get Accessor[T], value string) []T {
	if value == "" {
		return records
	}
	return Filter(records, func(r T) bool {
		v := get(r)
		if v == nil {
			return false
		}
		return fmt.Sprint(v) == value
	})
}

// DateRange keeps records whose date field is >= start (if given) and
// <= end (if given). Both bounds absent is a no-op. An unparseable
// bound fails with ErrInvalidArgument instead of silently excluding
// everything.
func DateRange[T any](records []T, get Accessor[T], start, end string) ([]T, error) {
	if start == "" && end == "" {
		return records, nil
	}

	var startAt, endAt time.Time
	var err error
	if start != "" {
		if startAt, err = ParseDate(start); err != nil {
			return nil, invalidf("invalid start date %q", start)
		}
	}
	if end != "" {
		if endAt, err = ParseDate(end); err != nil {
			return nil, invalidf("invalid end date %q", end)
		}
	}

	return Filter(records, func(r T) bool {
		t, ok := asTime(get(r))
		if !ok {
			return false
		}
		if start != "" && t.Before(startAt) {
			return false
		}
		if end != "" && t.After(endAt) {
			return false
		}
		return true
	}), nil
}

// ParseDate accepts RFC 3339 timestamps and plain yyyy-mm-dd dates.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func asTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case *time.Time:
		if t == nil {
			return time.Time{}, false
		}
		return *t, true
	default:
		return time.Time{}, false
	}
}
