package wire

import (
	"clinic-backend/internal/adaptor"
	"clinic-backend/internal/data/repository"
	"clinic-backend/pkg/middleware"
	"clinic-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMessage(
	r chi.Router,
	messageHandler *adaptor.MessageHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/messages - Contact form submission (public)
	r.Post("/api/messages", messageHandler.CreateMessage)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		// GET /api/admin/messages - List messages, optional ?status=
		r.Get("/api/admin/messages", messageHandler.GetMessages)

		// PATCH /api/admin/messages/{id}/status - Mark pending/read
		r.Patch("/api/admin/messages/{id}/status", messageHandler.UpdateStatus)
	})
}
