package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFilter_NilPredicateIsIdentity(t *testing.T) {
	t.Parallel()

	records := []record{{ID: 1}, {ID: 2}}
	require.Equal(t, records, Filter(records, nil))
}

func TestEquals(t *testing.T) {
	t.Parallel()

	records := []record{
		{ID: 1, Title: "open"},
		{ID: 2, Title: "closed"},
		{ID: 3, Title: "open"},
	}
	byTitle := func(r record) any { return r.Title }

	require.Equal(t, []int{1, 3}, ids(Equals(records, byTitle, "open")))

	// empty value is a no-op
	require.Equal(t, records, Equals(records, byTitle, ""))

	// nil field never equals anything
	require.Empty(t, Equals(records, byScore, "open"))
}

func TestDateRange(t *testing.T) {
	t.Parallel()

	day := func(d int) time.Time { return time.Date(2026, 1, d, 12, 0, 0, 0, time.UTC) }
	records := []record{
		{ID: 1, Date: day(15)},
		{ID: 2, Date: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)},
		{ID: 3, Date: day(2)},
	}
	byDate := func(r record) any { return r.Date }

	got, err := DateRange(records, byDate, "2026-01-01", "2026-01-31")
	require.NoError(t, err)
	require.Equal(t, []int{1, 3}, ids(got))

	// only a lower bound
	got, err = DateRange(records, byDate, "2026-01-10", "")
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, ids(got))

	// only an upper bound
	got, err = DateRange(records, byDate, "", "2026-01-10")
	require.NoError(t, err)
	require.Equal(t, []int{3}, ids(got))

	// both absent is a no-op
	got, err = DateRange(records, byDate, "", "")
	require.NoError(t, err)
	require.Equal(t, records, got)
}

// A bad date must fail loudly, not silently exclude everything.
func TestDateRange_InvalidDate(t *testing.T) {
	t.Parallel()

	records := []record{{ID: 1, Date: time.Now()}}
	byDate := func(r record) any { return r.Date }

	_, err := DateRange(records, byDate, "not-a-date", "")
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = DateRange(records, byDate, "", "2026-13-45")
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestDateRange_AcceptsRFC3339(t *testing.T) {
	t.Parallel()

	records := []record{{ID: 1, Date: time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)}}
	byDate := func(r record) any { return r.Date }

	got, err := DateRange(records, byDate, "2026-01-15T09:00:00Z", "2026-01-15T11:00:00Z")
	require.NoError(t, err)
	require.Len(t, got, 1)
}
