package response

import (
	"time"

	"clinic-backend/internal/data/entity"
)

type MessageResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   *string   `json:"subject,omitempty"`
	Body      string    `json:"body"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func MessageToResponse(message *entity.Message) MessageResponse {
	return MessageResponse{
		ID:        message.ID.String(),
		Name:      message.Name,
		Email:     message.Email,
		Subject:   message.Subject,
		Body:      message.Body,
		Status:    string(message.Status),
		CreatedAt: message.CreatedAt,
	}
}
