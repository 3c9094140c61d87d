package query

// Paginate slices an ordered sequence into a page. page and limit must
// be positive; limit is clamped to MaxLimit. Requesting a page beyond
// the last returns an empty page with metadata still reflecting the
// true total, which keeps pagination forgiving for clients.
func Paginate[T any](records []T, page, limit int) (Page[T], error) {
	if page < 1 {
		return Page[T]{}, invalidf("page must be >= 1, got %d", page)
	}
	if limit < 1 {
		return Page[T]{}, invalidf("limit must be >= 1, got %d", limit)
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	total := len(records)
	pages := (total + limit - 1) / limit

	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	data := make([]T, end-start)
	copy(data, records[start:end])

	return Page[T]{
		Data: data,
		Pagination: Pagination{
			Total: total,
			Page:  page,
			Limit: limit,
			Pages: pages,
		},
	}, nil
}
