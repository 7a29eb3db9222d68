package request

type CreateAppointmentRequest struct {
	Name          string  `json:"name" validate:"required,min=2,max=100"`
	Phone         string  `json:"phone" validate:"required,min=6,max=20"`
	Email         *string `json:"email,omitempty" validate:"omitempty,email"`
	PreferredDate *string `json:"preferred_date,omitempty" validate:"omitempty,max=50"`
	Reason        string  `json:"reason" validate:"required,min=10,max=1000"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending seen"`
}
