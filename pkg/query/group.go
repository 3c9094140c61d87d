package query

import (
	"fmt"
	"math"
	"time"
)

// Group is one bucket of records sharing a field value.
type Group[T any] struct {
	Key     string
	Records []T
}

// Measure maps a record to an optional numeric value used for
// averaging within a group. ok=false means the record contributes
// nothing to the average (e.g. an unresolved issue has no resolution
// duration).
type Measure[T any] func(T) (value float64, ok bool)

// Bucket is one row of an aggregation result.
type Bucket struct {
	Key        string `json:"key"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
	AvgMeasure int    `json:"avgMeasure"`
}

// GroupBy groups records by the string representation of a field,
// preserving first-seen group order.
func GroupBy[T any](records []T, get Accessor[T]) []Group[T] {
	index := make(map[string]int)
	var groups []Group[T]

	for _, r := range records {
		key := fmt.Sprint(get(r))
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group[T]{Key: key})
		}
		groups[i].Records = append(groups[i].Records, r)
	}
	return groups
}

// Aggregate computes count, percentage-of-total and the rounded mean
// of measure over each group. The average only considers records for
// which measure is defined; groups with no measurable records report
// AvgMeasure = 0 and are left in (callers filter by convention).
// A nil measure skips averaging entirely.
func Aggregate[T any](groups []Group[T], measure Measure[T]) []Bucket {
	total := 0
	for _, g := range groups {
		total += len(g.Records)
	}

	buckets := make([]Bucket, 0, len(groups))
	for _, g := range groups {
		b := Bucket{
			Key:        g.Key,
			Count:      len(g.Records),
			Percentage: Percentage(len(g.Records), total),
		}
		if measure != nil {
			var sum float64
			var n int
			for _, r := range g.Records {
				if v, ok := measure(r); ok {
					sum += v
					n++
				}
			}
			if n > 0 {
				b.AvgMeasure = int(math.Round(sum / float64(n)))
			}
		}
		buckets = append(buckets, b)
	}
	return buckets
}

// Percentage returns round(100 * value / total), 0 when total is 0.
func Percentage(value, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(value) / float64(total)))
}

// Hours returns the absolute difference between two times in whole
// hours, rounded down.
func Hours(a, b time.Time) int {
	d := b.Sub(a)
	if d < 0 {
		d = -d
	}
	return int(d / time.Hour)
}
