package response

import (
	"time"

	"clinic-backend/internal/data/entity"
)

type ReviewResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Service   *string   `json:"service,omitempty"`
	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"created_at"`
}

// Helper converter. Missing author names render as "Anonymous".
func ReviewToResponse(review *entity.Review) ReviewResponse {
	name := "Anonymous"
	if review.Name != nil && *review.Name != "" {
		name = *review.Name
	}

	return ReviewResponse{
		ID:        review.ID.String(),
		Name:      name,
		Rating:    review.Rating,
		Comment:   review.Comment,
		Service:   review.Service,
		Approved:  review.Approved,
		CreatedAt: review.CreatedAt,
	}
}
