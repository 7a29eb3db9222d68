package repository

import (
	"clinic-backend/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User        UserRepository
	Session     SessionRepository
	Review      ReviewRepository
	ReviewAlert ReviewAlertRepository
	Appointment AppointmentRepository
	Message     MessageRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:        NewUserRepository(db, log),
		Session:     NewSessionRepository(db, log),
		Review:      NewReviewRepository(db, log),
		ReviewAlert: NewReviewAlertRepository(db, log),
		Appointment: NewAppointmentRepository(db, log),
		Message:     NewMessageRepository(db, log),
	}
}
