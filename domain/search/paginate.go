package search

import (
	"pupper-backend/domain/entities"
	"pupper-backend/pkg/common"
)

// Page is one slice of the ordered listing plus its metadata
type Page struct {
	Dogs       []entities.Dog    `json:"dogs"`
	Pagination common.Pagination `json:"pagination"`
}

// Paginate slices the ordered set into a 1-based page of limit items.
// A page beyond the end of the data yields an empty slice with valid
// metadata, not an error.
func Paginate(dogs []entities.Dog, page, limit int) Page {
	if page < 1 {
		page = 1
	}
	limit = common.ClampPageSize(limit)

	start := (page - 1) * limit
	end := start + limit
	if start > len(dogs) {
		start = len(dogs)
	}
	if end > len(dogs) {
		end = len(dogs)
	}

	return Page{
		Dogs:       dogs[start:end],
		Pagination: common.BuildPagination(page, limit, len(dogs)),
	}
}
