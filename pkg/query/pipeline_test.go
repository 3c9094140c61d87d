package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type ticket struct {
	ID       int
	Title    string
	Status   string
	Hostel   string
	Owner    string
	Reported time.Time
}

func ticketPipeline() *Pipeline[ticket] {
	return NewPipeline(map[string]Accessor[ticket]{
		"title":    func(t ticket) any { return t.Title },
		"status":   func(t ticket) any { return t.Status },
		"hostel":   func(t ticket) any { return t.Hostel },
		"reported": func(t ticket) any { return t.Reported },
	})
}

func sampleTickets() []ticket {
	day := func(d int) time.Time { return time.Date(2026, 1, d, 9, 0, 0, 0, time.UTC) }
	return []ticket{
		{ID: 1, Title: "Leaking tap", Status: "resolved", Hostel: "A", Owner: "rahul", Reported: day(5)},
		{ID: 2, Title: "Broken fan", Status: "reported", Hostel: "A", Owner: "priya", Reported: day(12)},
		{ID: 3, Title: "Wifi outage", Status: "resolved", Hostel: "B", Owner: "rahul", Reported: day(3)},
		{ID: 4, Title: "Tap pressure low", Status: "reported", Hostel: "B", Owner: "rahul", Reported: day(20)},
	}
}

func ticketIDs(tickets []ticket) []int {
	out := make([]int, len(tickets))
	for i, t := range tickets {
		out[i] = t.ID
	}
	return out
}

func TestPipeline_RunComposesStages(t *testing.T) {
	t.Parallel()

	p := ticketPipeline()
	page, err := p.Run(sampleTickets(), Request[ticket]{
		Equals:    map[string]string{"status": "reported"},
		DateField: "reported",
		StartDate: "2026-01-01",
		EndDate:   "2026-01-31",
		Search:    "tap",
		SearchFields: []string{
			"title",
		},
		SortBy: "reported",
		Order:  OrderAsc,
		Page:   1,
		Limit:  10,
	})
	require.NoError(t, err)
	require.Equal(t, []int{4}, ticketIDs(page.Data))
	require.Equal(t, 1, page.Pagination.Total)
}

func TestPipeline_ScopeAppliesFirst(t *testing.T) {
	t.Parallel()

	p := ticketPipeline()
	page, err := p.Run(sampleTickets(), Request[ticket]{
		Scope: func(tk ticket) bool { return tk.Owner == "rahul" },
		Page:  1,
		Limit: 10,
	})
	require.NoError(t, err)
	require.Equal(t, []int{1, 3, 4}, ticketIDs(page.Data))
}

func TestPipeline_MatchPredicates(t *testing.T) {
	t.Parallel()

	p := ticketPipeline()
	page, err := p.Run(sampleTickets(), Request[ticket]{
		Match: []func(ticket) bool{
			func(tk ticket) bool { return tk.Hostel == "B" },
		},
		Page:  1,
		Limit: 10,
	})
	require.NoError(t, err)
	require.Equal(t, []int{3, 4}, ticketIDs(page.Data))
}

func TestPipeline_UnknownFieldFails(t *testing.T) {
	t.Parallel()

	p := ticketPipeline()
	base := Request[ticket]{Page: 1, Limit: 10}

	req := base
	req.Equals = map[string]string{"nope": "x"}
	_, err := p.Run(sampleTickets(), req)
	require.ErrorIs(t, err, ErrInvalidArgument)

	req = base
	req.SortBy = "nope"
	_, err = p.Run(sampleTickets(), req)
	require.ErrorIs(t, err, ErrInvalidArgument)

	req = base
	req.Search = "tap"
	req.SearchFields = []string{"nope"}
	_, err = p.Run(sampleTickets(), req)
	require.ErrorIs(t, err, ErrInvalidArgument)

	req = base
	req.DateField = "nope"
	req.StartDate = "2026-01-01"
	_, err = p.Run(sampleTickets(), req)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

// Empty equality values are skipped, so a bound-but-empty query
// parameter never filters anything out.
func TestPipeline_EmptyEqualsValueSkipped(t *testing.T) {
	t.Parallel()

	p := ticketPipeline()
	page, err := p.Run(sampleTickets(), Request[ticket]{
		Equals: map[string]string{"status": ""},
		Page:   1,
		Limit:  10,
	})
	require.NoError(t, err)
	require.Len(t, page.Data, 4)
}

// Run never mutates its input, so repeating the same request yields
// the same page.
func TestPipeline_RunIsPure(t *testing.T) {
	t.Parallel()

	p := ticketPipeline()
	records := sampleTickets()
	req := Request[ticket]{SortBy: "reported", Order: OrderDesc, Page: 1, Limit: 2}

	first, err := p.Run(records, req)
	require.NoError(t, err)
	second, err := p.Run(records, req)
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Equal(t, []int{1, 2, 3, 4}, ticketIDs(records))
}

func TestPipeline_RunAggregate(t *testing.T) {
	t.Parallel()

	p := ticketPipeline()
	buckets, err := p.RunAggregate(sampleTickets(), nil, "status", nil)
	require.NoError(t, err)
	require.Equal(t, []Bucket{
		{Key: "resolved", Count: 2, Percentage: 50},
		{Key: "reported", Count: 2, Percentage: 50},
	}, buckets)

	_, err = p.RunAggregate(sampleTickets(), nil, "nope", nil)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestPipeline_RunAggregateScoped(t *testing.T) {
	t.Parallel()

	p := ticketPipeline()
	scope := func(tk ticket) bool { return tk.Hostel == "A" }
	buckets, err := p.RunAggregate(sampleTickets(), scope, "status", nil)
	require.NoError(t, err)
	require.Equal(t, []Bucket{
		{Key: "resolved", Count: 1, Percentage: 50},
		{Key: "reported", Count: 1, Percentage: 50},
	}, buckets)
}
