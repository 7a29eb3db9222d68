package wire

import (
	"clinic-backend/internal/adaptor"
	"clinic-backend/internal/data/repository"
	"clinic-backend/pkg/middleware"
	"clinic-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireModeration(
	r chi.Router,
	moderationHandler *adaptor.ModerationHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== INTERNAL ROUTES ====================
	// POST /api/moderate-review - Classify and decide on a stored review.
	// Called by the intake flow itself; safe to expose since it only
	// operates on reviews that already exist.
	r.Post("/api/moderate-review", moderationHandler.ModerateReview)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		// POST /api/admin/reviews/{id}/moderate - Re-run moderation for a stuck review
		r.Post("/api/admin/reviews/{id}/moderate", moderationHandler.RemoderateReview)
	})
}
