package domain

// DefaultPageSize is used when a caller does not ask for a page size.
const DefaultPageSize = 10

// Page is one slice of a client-side paginated list.
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Paginate cuts items into pages of limit elements and returns page
// (1-based). Out of range pages yield an empty item list.
func Paginate[T any](items []T, page, limit int) Page[T] {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}
	total := len(items)
	p := Page[T]{
		Items: []T{},
		Page:  page,
		Limit: limit,
		Total: total,
	}
	if total > 0 {
		p.TotalPages = (total-1)/limit + 1
	}
	// Past the last page (page-1)*limit may overflow.
	if page > p.TotalPages {
		return p
	}
	start := (page - 1) * limit
	end := start + min(limit, total-start)
	p.Items = items[start:end]
	return p
}

// Pagination is the paging block the backend attaches to list responses.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}

// Listing is a server-paginated list as returned by the backend.
type Listing[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}
