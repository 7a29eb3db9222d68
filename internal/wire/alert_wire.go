package wire

import (
	"clinic-backend/internal/adaptor"
	"clinic-backend/internal/data/repository"
	"clinic-backend/pkg/middleware"
	"clinic-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAlert(
	r chi.Router,
	alertHandler *adaptor.AlertHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		// GET /api/admin/alerts - List unresolved alerts, newest first
		r.Get("/api/admin/alerts", alertHandler.GetAlerts)

		// POST /api/admin/alerts/{id}/approve - Publish the flagged review
		r.Post("/api/admin/alerts/{id}/approve", alertHandler.ApproveAlert)

		// POST /api/admin/alerts/{id}/reject - Delete the flagged review
		r.Post("/api/admin/alerts/{id}/reject", alertHandler.RejectAlert)
	})
}
