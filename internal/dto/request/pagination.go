package request

import "clinic-backend/pkg/utils"

type PaginatedRequest struct {
	Page    int `json:"page" validate:"min=1"`
	PerPage int `json:"per_page" validate:"min=1,max=100"`
}

// perPage clamps the requested page size to [1,100], defaulting to 10.
// Limit and Offset must agree on the same value or pages stop tiling the
// result set.
func (p PaginatedRequest) perPage() int {
	if p.PerPage < 1 {
		return 10
	}
	if p.PerPage > 100 {
		return 100
	}
	return p.PerPage
}

func (p PaginatedRequest) Offset() int {
	return utils.CalculateOffset(p.Page, p.perPage())
}

func (p PaginatedRequest) Limit() int {
	return p.perPage()
}
