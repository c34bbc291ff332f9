package listquery

// Pagination describes one page of a larger ordered result set.
type Pagination struct {
	CurrentPage     int  `json:"currentPage"`
	TotalPages      int  `json:"totalPages"`
	TotalCount      int  `json:"totalCount"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

// Paginate slices items for a 1-based page and computes pagination metadata.
// A page past the end yields an empty slice, not an error. Callers must have
// validated page and limit as positive (Parse enforces this).
func Paginate[T any](items []T, page, limit int) ([]T, Pagination) {
	total := len(items)
	start := (page - 1) * limit
	end := page * limit

	var out []T
	switch {
	case start >= total:
		out = []T{}
	case end > total:
		out = items[start:total]
	default:
		out = items[start:end]
	}

	return out, Pagination{
		CurrentPage:     page,
		TotalPages:      (total + limit - 1) / limit,
		TotalCount:      total,
		HasNextPage:     end < total,
		HasPreviousPage: page > 1,
	}
}

// Page is the single-collection response envelope.
type Page[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

func NewPage[T any](items []T, p Pagination) Page[T] {
	return Page[T]{Items: items, Pagination: p}
}
