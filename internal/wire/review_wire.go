package wire

import (
	"clinic-backend/internal/adaptor"
	"clinic-backend/internal/data/repository"
	"clinic-backend/pkg/middleware"
	"clinic-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/reviews - Submit a new review (public, moderation runs async)
	r.Post("/api/reviews", reviewHandler.CreateReview)

	// GET /api/reviews - List approved reviews only (public)
	r.Get("/api/reviews", reviewHandler.GetReviews)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		// GET /api/admin/reviews/pending - Reviews never moderated (classifier was down)
		r.Get("/api/admin/reviews/pending", reviewHandler.GetPendingReviews)
	})
}
