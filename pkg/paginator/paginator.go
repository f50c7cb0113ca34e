package paginator

// IsSet reports whether the caller asked for a page at all.
func (p PaginateQuery) IsSet() bool {
	return p.Page != 0 || p.Limit != 0
}

// Adjust normalizes the pagination parameters to valid values.
// Sets defaults if values are invalid and enforces maximum limit.
func (p *PaginateQuery) Adjust() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}

	if p.Limit < 1 {
		p.Limit = DefaultLimit
	} else if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
}

// Offset returns the index of the first item of the current page.
func (p PaginateQuery) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Window returns the [start, end) bounds of the current page within total
// items. Both are clamped to total. Call Adjust first.
func (p PaginateQuery) Window(total int) (int, int) {
	start := min(p.Offset(), total)
	end := min(start+p.Limit, total)
	return start, end
}

// Page slices items to the current page and describes it.
func Page[T any](q PaginateQuery, items []T) ([]T, Paginator) {
	q.Adjust()
	start, end := q.Window(len(items))
	return items[start:end], Paginator{
		Total:       len(items),
		Count:       end - start,
		PerPage:     q.Limit,
		CurrentPage: q.Page,
	}
}

// TotalPages calculates the total number of pages based on total items and items per page.
func (p Paginator) TotalPages() int {
	if p.Total == 0 || p.PerPage == 0 {
		return 0
	}
	return (p.Total + p.PerPage - 1) / p.PerPage
}

// HasNextPage checks if there is a next page available.
func (p Paginator) HasNextPage() bool {
	return p.CurrentPage < p.TotalPages()
}

// HasPreviousPage checks if there is a previous page available.
func (p Paginator) HasPreviousPage() bool {
	return p.CurrentPage > 1
}

// ToResponse converts the paginator to a response format with additional calculated fields.
func (p Paginator) ToResponse() PaginatorResponse {
	return PaginatorResponse{
		Total:       p.Total,
		Count:       p.Count,
		PerPage:     p.PerPage,
		CurrentPage: p.CurrentPage,
		TotalPages:  p.TotalPages(),
		HasNext:     p.HasNextPage(),
		HasPrev:     p.HasPreviousPage(),
	}
}
