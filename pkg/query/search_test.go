package query

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSearch_EmptyTermIsIdentity(t *testing.T) {
	t.Parallel()

	records := []record{{ID: 1, Title: "a"}, {ID: 2, Title: "b"}}
	got := Search(records, "", []Accessor[record]{func(r record) any { return r.Title }})
	require.Equal(t, records, got)
}

func TestSearch_CaseInsensitiveSubstring(t *testing.T) {
	t.Parallel()

	records := []record{
		{ID: 1, Title: "Leaking Tap in Bathroom"},
		{ID: 2, Title: "Broken chair"},
	}
	got := Search(records, "TAP", []Accessor[record]{func(r record) any { return r.Title }})
	require.Equal(t, []int{1}, ids(got))
}

// A record matches when ANY listed field matches.
func TestSearch_AnyFieldMatches(t *testing.T) {
	t.Parallel()

	type row struct {
		ID          int
		Title, Desc string
	}
	records := []row{
		{ID: 1, Title: "wifi down", Desc: "since yesterday"},
		{ID: 2, Title: "tap leak", Desc: "wifi also flaky"},
		{ID: 3, Title: "chair", Desc: "leg broken"},
	}
	fields := []Accessor[row]{
		func(r row) any { return r.Title },
		func(r row) any { return r.Desc },
	}

	got := Search(records, "wifi", fields)
	require.Len(t, got, 2)
	require.Equal(t, 1, got[0].ID)
	require.Equal(t, 2, got[1].ID)
}

func TestSearch_NilFieldNeverMatches(t *testing.T) {
	t.Parallel()

	records := []record{
		{ID: 1, Score: score(42)},
		{ID: 2},
	}
	got := Search(records, "42", []Accessor[record]{byScore})
	require.Equal(t, []int{1}, ids(got))
}

// Non-string values are coerced to their string representation.
func TestSearch_CoercesNonStrings(t *testing.T) {
	t.Parallel()

	records := []record{
		{ID: 1, Score: score(1234)},
		{ID: 2, Score: score(56)},
	}
	got := Search(records, "23", []Accessor[record]{byScore})
	require.Equal(t, []int{1}, ids(got))
}
