package response

import (
	"time"

	"clinic-backend/internal/data/entity"
)

type AppointmentResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	Email         *string   `json:"email,omitempty"`
	PreferredDate *string   `json:"preferred_date,omitempty"`
	Reason        string    `json:"reason"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

func AppointmentToResponse(appointment *entity.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:            appointment.ID.String(),
		Name:          appointment.Name,
		Phone:         appointment.Phone,
		Email:         appointment.Email,
		PreferredDate: appointment.PreferredDate,
		Reason:        appointment.Reason,
		Status:        string(appointment.Status),
		CreatedAt:     appointment.CreatedAt,
	}
}
