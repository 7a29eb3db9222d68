package usecase

import (
	"clinic-backend/internal/classifier"
	"clinic-backend/internal/data/repository"
	"clinic-backend/internal/notify"
	"clinic-backend/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth        AuthService
	Review      ReviewService
	Moderation  ModerationService
	Alert       AlertService
	Appointment AppointmentService
	Message     MessageService
}

func NewService(
	repo *repository.Repository,
	config *utils.Config,
	clf classifier.Classifier,
	notifier notify.Notifier,
	log *zap.Logger,
) *Service {
	moderation := NewModerationService(repo, clf, log)

	return &Service{
		Auth:        NewAuthService(repo, config, log),
		Review:      NewReviewService(repo, moderation, log),
		Moderation:  moderation,
		Alert:       NewAlertService(repo, log),
		Appointment: NewAppointmentService(repo, notifier, log),
		Message:     NewMessageService(repo, notifier, log),
	}
}
