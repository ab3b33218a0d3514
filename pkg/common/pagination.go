package common

import (
	"net/url"
	"strconv"
)

const (
	// DefaultPageSize is used when the limit parameter is absent or invalid
	DefaultPageSize = 20
	// MaxPageSize caps the limit parameter
	MaxPageSize = 100
)

// Pagination describes the slice of a listing a response contains
type Pagination struct {
	CurrentPage int  `json:"current_page"`
	PerPage     int  `json:"per_page"`
	TotalItems  int  `json:"total_items"`
	TotalPages  int  `json:"total_pages"`
	HasNext     bool `json:"has_next"`
	HasPrev     bool `json:"has_prev"`
}

// ParsePageParams extracts page and limit from query parameters.
// Garbage values fall back to the defaults; limit is clamped to
// [1, MaxPageSize] and page to a minimum of 1.
func ParsePageParams(q url.Values) (page, limit int) {
	page = 1
	limit = DefaultPageSize

	if raw := q.Get("page"); raw != "" {
		if p, err := strconv.Atoi(raw); err == nil && p > 0 {
			page = p
		}
	}
	if raw := q.Get("limit"); raw != "" {
		if l, err := strconv.Atoi(raw); err == nil {
			limit = ClampPageSize(l)
		}
	}
	return page, limit
}

// ClampPageSize bounds a page size to [1, MaxPageSize]
func ClampPageSize(limit int) int {
	if limit < 1 {
		return 1
	}
	if limit > MaxPageSize {
		return MaxPageSize
	}
	return limit
}

// BuildPagination computes pagination metadata for a listing of total
// items sliced into pages of limit
func BuildPagination(page, limit, total int) Pagination {
	totalPages := (total + limit - 1) / limit

	return Pagination{
		CurrentPage: page,
		PerPage:     limit,
		TotalItems:  total,
		TotalPages:  totalPages,
		HasNext:     page*limit < total,
		HasPrev:     page > 1,
	}
}
