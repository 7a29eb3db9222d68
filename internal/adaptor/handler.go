package adaptor

import (
	"clinic-backend/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth        *AuthHandler
	Review      *ReviewHandler
	Moderation  *ModerationHandler
	Alert       *AlertHandler
	Appointment *AppointmentHandler
	Message     *MessageHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(service.Auth, log),
		Review:      NewReviewHandler(service.Review, log),
		Moderation:  NewModerationHandler(service.Moderation, log),
		Alert:       NewAlertHandler(service.Alert, log),
		Appointment: NewAppointmentHandler(service.Appointment, log),
		Message:     NewMessageHandler(service.Message, log),
	}
}
