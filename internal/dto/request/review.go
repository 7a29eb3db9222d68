package request

type CreateReviewRequest struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Email   *string `json:"email,omitempty" validate:"omitempty,email"`
	Rating  int     `json:"rating" validate:"required,min=1,max=5"`
	Comment string  `json:"comment" validate:"required,min=10,max=2000"`
	Service *string `json:"service,omitempty" validate:"omitempty,max=100"`
}

// ModerateReviewRequest is the moderation endpoint's body. Presence of both
// fields is checked by hand in the handler because the endpoint's 400 shape
// is fixed by the external contract.
type ModerateReviewRequest struct {
	ID         string `json:"id"`
	ReviewText string `json:"review_text"`
}
