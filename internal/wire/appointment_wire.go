package wire

import (
	"clinic-backend/internal/adaptor"
	"clinic-backend/internal/data/repository"
	"clinic-backend/pkg/middleware"
	"clinic-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAppointment(
	r chi.Router,
	appointmentHandler *adaptor.AppointmentHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/appointments - Request an appointment (public)
	r.Post("/api/appointments", appointmentHandler.CreateAppointment)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		// GET /api/admin/appointments - List appointment requests, optional ?status=
		r.Get("/api/admin/appointments", appointmentHandler.GetAppointments)

		// PATCH /api/admin/appointments/{id}/status - Mark pending/seen
		r.Patch("/api/admin/appointments/{id}/status", appointmentHandler.UpdateStatus)
	})
}
