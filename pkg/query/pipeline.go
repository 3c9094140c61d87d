package query

// Pipeline composes the list stages in a fixed order for one record
// type. Field accessors are registered once per entity; filter, sort
// and search then refer to fields by name, so an unknown name from a
// query string fails with ErrInvalidArgument instead of being ignored.
type Pipeline[T any] struct {
	fields map[string]Accessor[T]
}

// NewPipeline builds a pipeline over the given named fields.
func NewPipeline[T any](fields map[string]Accessor[T]) *Pipeline[T] {
	return &Pipeline[T]{fields: fields}
}

// Request carries the parsed query parameters for one list call.
type Request[T any] struct {
	// Scope restricts records to what the actor may see. nil means
	// unrestricted (admin).
	Scope func(T) bool

	// Equals maps field name to an exact-match value. Empty values
	// are no-ops.
	Equals map[string]string

	// Match holds extra predicates applied together with the
	// equality filters (e.g. the announcements hostel-contains rule).
	Match []func(T) bool

	DateField string
	StartDate string
	EndDate   string

	Search       string
	SearchFields []string

	SortBy string
	Order  string

	Page  int
	Limit int
}

func (p *Pipeline[T]) field(name string) (Accessor[T], error) {
	get, ok := p.fields[name]
	if !ok {
		return nil, invalidf("unknown field %q", name)
	}
	return get, nil
}

// Run executes scope -> equality filters -> date range -> search ->
// sort -> paginate over a snapshot. Any stage failing with
// ErrInvalidArgument aborts the whole call; no partial results.
func (p *Pipeline[T]) Run(records []T, req Request[T]) (Page[T], error) {
	out := Filter(records, req.Scope)

	for name, value := range req.Equals {
		if value == "" {
			continue
		}
		get, err := p.field(name)
		if err != nil {
			return Page[T]{}, err
		}
		out = Equals(out, get, value)
	}
	for _, keep := range req.Match {
		out = Filter(out, keep)
	}

	if req.StartDate != "" || req.EndDate != "" {
		get, err := p.field(req.DateField)
		if err != nil {
			return Page[T]{}, err
		}
		out, err = DateRange(out, get, req.StartDate, req.EndDate)
		if err != nil {
			return Page[T]{}, err
		}
	}

	if req.Search != "" {
		gets := make([]Accessor[T], 0, len(req.SearchFields))
		for _, name := range req.SearchFields {
			get, err := p.field(name)
			if err != nil {
				return Page[T]{}, err
			}
			gets = append(gets, get)
		}
		out = Search(out, req.Search, gets)
	}

	if req.SortBy != "" {
		get, err := p.field(req.SortBy)
		if err != nil {
			return Page[T]{}, err
		}
		out = SortBy(out, get, req.Order)
	}

	return Paginate(out, req.Page, req.Limit)
}

// RunAggregate executes the analytics path: scope -> group ->
// aggregate. No pagination is applied.
func (p *Pipeline[T]) RunAggregate(records []T, scope func(T) bool, groupField string, measure Measure[T]) ([]Bucket, error) {
	get, err := p.field(groupField)
	if err != nil {
		return nil, err
	}
	scoped := Filter(records, scope)
	return Aggregate(GroupBy(scoped, get), measure), nil
}
