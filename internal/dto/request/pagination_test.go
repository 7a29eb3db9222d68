package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginatedRequest_LimitAndOffsetAgree(t *testing.T) {
	tests := []struct {
		name           string
		req            PaginatedRequest
		expectedLimit  int
		expectedOffset int
	}{
		{"defaults", PaginatedRequest{}, 10, 0},
		{"first page", PaginatedRequest{Page: 1, PerPage: 20}, 20, 0},
		{"second page", PaginatedRequest{Page: 2, PerPage: 20}, 20, 20},
		{"per_page over cap", PaginatedRequest{Page: 2, PerPage: 150}, 100, 100},
		{"per_page under floor", PaginatedRequest{Page: 3, PerPage: 0}, 10, 20},
		{"negative page", PaginatedRequest{Page: -1, PerPage: 10}, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedLimit, tt.req.Limit())
			assert.Equal(t, tt.expectedOffset, tt.req.Offset())

			// Consecutive pages must tile the result set without gaps
			next := tt.req
			next.Page++
			if next.Page > 1 {
				assert.Equal(t, tt.req.Offset()+tt.req.Limit(), next.Offset())
			}
		})
	}
}
