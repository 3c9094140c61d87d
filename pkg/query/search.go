package query

import (
	"fmt"
	"strings"
)

// Search keeps records where any of the listed fields contains term,
// case-insensitively. An empty term is a no-op. Field values are
// coerced to their string representation; nil fields never match.
func Search[T any](records []T, term string, fields []Accessor[T]) []T {
	if term == "" {
		return records
	}
	needle := strings.ToLower(term)

	return Filter(records, func(r T) bool {
		for _, get := range fields {
			v := get(r)
			if v == nil {
				continue
			}
			if strings.Contains(strings.ToLower(fmt.Sprint(v)), needle) {
				return true
			}
		}
		return false
	})
}
