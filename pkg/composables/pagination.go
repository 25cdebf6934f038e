package composables

import (
	"net/http"
	"strconv"
)

const defaultPageSize = 20

type PaginationParams struct {
	Limit  int
	Offset int
	Page   int
}

// UsePaginated extracts page/limit query parameters with sane bounds.
func UsePaginated(r *http.Request) PaginationParams {
	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			page = v
		}
	}
	limit := defaultPageSize
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 && v <= 100 {
			limit = v
		}
	}
	return PaginationParams{
		Limit:  limit,
		Offset: (page - 1) * limit,
		Page:   page,
	}
}
