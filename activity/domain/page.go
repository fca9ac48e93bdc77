package domain

import "math"

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// PageRequest is a 1-indexed pagination window.
type PageRequest struct {
	Page     int
	PageSize int
}

// NewPageRequest applies the defaults for non-positive values and clamps
// pageSize to maxPageSize when maxPageSize is positive.
func NewPageRequest(page, pageSize, maxPageSize int) PageRequest {
	if page <= 0 {
		page = DefaultPage
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if maxPageSize > 0 && pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return PageRequest{Page: page, PageSize: pageSize}
}

// Skip saturates at math.MaxInt64 for pages far past any real result.
func (p PageRequest) Skip() int64 {
	if p.Page <= 1 || p.PageSize <= 0 {
		return 0
	}
	if int64(p.Page-1) > math.MaxInt64/int64(p.PageSize) {
		return math.MaxInt64
	}
	return int64(p.Page-1) * int64(p.PageSize)
}

type Pagination struct {
	Total     int64
	Page      int
	PageSize  int
	PageCount int
}

func NewPagination(total int64, req PageRequest) Pagination {
	pageCount := 0
	if req.PageSize > 0 {
		pageCount = int((total + int64(req.PageSize) - 1) / int64(req.PageSize))
	}
	return Pagination{
		Total:     total,
		Page:      req.Page,
		PageSize:  req.PageSize,
		PageCount: pageCount,
	}
}

type ActivityPage struct {
	Data       []*Activity
	Pagination Pagination
}
