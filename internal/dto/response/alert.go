package response

import (
	"time"

	"clinic-backend/internal/data/entity"
)

type AlertResponse struct {
	ID        string      `json:"id"`
	ReviewID  string      `json:"review_id"`
	Sentiment string      `json:"sentiment"`
	Resolved  bool        `json:"resolved"`
	CreatedAt time.Time   `json:"created_at"`
	Review    AlertReview `json:"review"`
}

// AlertReview carries the flagged review's current state, email included so
// the operator can reach the patient before deciding.
type AlertReview struct {
	Name     string  `json:"name"`
	Email    *string `json:"email,omitempty"`
	Rating   int     `json:"rating"`
	Comment  string  `json:"comment"`
	Service  *string `json:"service,omitempty"`
	Approved bool    `json:"approved"`
}

func AlertToResponse(item *entity.AlertWithReview) AlertResponse {
	name := "Anonymous"
	if item.Review.Name != nil && *item.Review.Name != "" {
		name = *item.Review.Name
	}

	return AlertResponse{
		ID:        item.Alert.ID.String(),
		ReviewID:  item.Alert.ReviewID.String(),
		Sentiment: item.Alert.Sentiment,
		Resolved:  item.Alert.Resolved,
		CreatedAt: item.Alert.CreatedAt,
		Review: AlertReview{
			Name:     name,
			Email:    item.Review.Email,
			Rating:   item.Review.Rating,
			Comment:  item.Review.Comment,
			Service:  item.Review.Service,
			Approved: item.Review.Approved,
		},
	}
}
