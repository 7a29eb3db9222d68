package request

type CreateMessageRequest struct {
	Name    string  `json:"name" validate:"required,min=2,max=100"`
	Email   string  `json:"email" validate:"required,email"`
	Subject *string `json:"subject,omitempty" validate:"omitempty,max=200"`
	Body    string  `json:"body" validate:"required,min=10,max=2000"`
}

type UpdateMessageStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending read"`
}
