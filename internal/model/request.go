package model

const (
	defaultPage     = 1
	defaultPageSize = 20
	maxPageSize     = 100
)

// PaginationRequest defines pagination parameters.
type PaginationRequest struct {
	Page     int `json:"page" form:"page" binding:"omitempty,min=1"`
	PageSize int `json:"page_size" form:"page_size" binding:"omitempty,min=1,max=100"`
}

// DefaultPagination applies default pagination values.
func (p *PaginationRequest) DefaultPagination() {
	if p.Page <= 0 {
		p.Page = defaultPage
	}
	if p.PageSize <= 0 || p.PageSize > maxPageSize {
		p.PageSize = defaultPageSize
	}
}

// Offset returns the offset for database queries.
func (p *PaginationRequest) Offset() int {
	if p.Page <= 0 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}
