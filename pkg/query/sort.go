package query

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// SortBy returns a sorted copy of records ordered by the given field.
// The sort is stable: records with equal keys keep their original
// relative order. Records with a missing (nil) field sort last for
// both orders.
func SortBy[T any](records []T, get Accessor[T], order string) []T {
	out := make([]T, len(records))
	copy(out, records)

	desc := strings.EqualFold(order, OrderDesc)

	sort.SliceStable(out, func(i, j int) bool {
		va, vb := get(out[i]), get(out[j])
		aNil, bNil := isMissing(va), isMissing(vb)
		if aNil || bNil {
			// nil sorts last regardless of order
			return !aNil && bNil
		}
		c := compareValues(va, vb)
		if desc {
			return c > 0
		}
		return c < 0
	})
	return out
}

func isMissing(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return true
	}
	return false
}

// compareValues orders two field values: times chronologically,
// numbers numerically, everything else by string representation.
func compareValues(a, b any) int {
	if at, ok := asTime(a); ok {
		if bt, ok := asTime(b); ok {
			switch {
			case at.Before(bt):
				return -1
			case at.After(bt):
				return 1
			default:
				return 0
			}
		}
	}
	if af, ok := asFloat(a); ok {
		if bf, ok := asFloat(b); ok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			default:
				return 0
			}
		}
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
