package services

import "github.com/Deepanghsh/Smart-Ward-Admin/pkg/query"

// ListOptions carries the parsed query parameters shared by every
// list endpoint. Zero values mean "not supplied".
type ListOptions struct {
	Page  int
	Limit int

	Status   string
	Priority string
	Category string
	Hostel   string
	Type     string
	Role     string

	Search    string
	StartDate string
	EndDate   string

	SortBy string
	Order  string
}

// withDefaults fills in pagination and sort defaults for one entity.
func (o ListOptions) withDefaults(sortBy string) ListOptions {
	if o.Page == 0 {
		o.Page = query.DefaultPage
	}
	if o.Limit == 0 {
		o.Limit = query.DefaultLimit
	}
	if o.SortBy == "" {
		o.SortBy = sortBy
	}
	if o.Order == "" {
		o.Order = query.OrderDesc
	}
	return o
}
