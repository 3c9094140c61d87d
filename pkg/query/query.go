// Package query implements the list pipeline shared by every list
// endpoint: scope filter, field filters, date range, text search,
// stable sort, pagination, and the group/aggregate path used by the
// analytics endpoints.
//
// All functions are pure: they operate on a snapshot slice and never
// mutate their input.
package query

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument marks caller errors (bad page/limit, unparseable
// date, unknown filter or sort field). Controllers map it to 400.
var ErrInvalidArgument = errors.New("invalid argument")

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Accessor extracts a named field from a record. A nil return means
// the field is missing for that record.
type Accessor[T any] func(T) any

// Pagination is the metadata block returned alongside every page.
type Pagination struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
}

// Page is the result of a paginated list operation.
type Page[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
