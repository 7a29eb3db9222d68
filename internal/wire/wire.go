// internal/wire/wire.go
package wire

import (
	"clinic-backend/internal/adaptor"
	"clinic-backend/internal/classifier"
	"clinic-backend/internal/data/repository"
	"clinic-backend/internal/notify"
	"clinic-backend/internal/usecase"
	"clinic-backend/pkg/middleware"
	"clinic-backend/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the assembled application
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(
	repo *repository.Repository,
	config *utils.Config,
	clf classifier.Classifier,
	notifier notify.Notifier,
	logger *zap.Logger,
) *App {
	// Initialize services and handlers
	service := usecase.NewService(repo, config, clf, notifier, logger)
	handler := adaptor.NewHandler(service, logger)

	// Setup router
	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the Chi router
func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth, repo, config, logger)
	wireReview(r, handler.Review, repo, config, logger)
	wireModeration(r, handler.Moderation, repo, config, logger)
	wireAlert(r, handler.Alert, repo, config, logger)
	wireAppointment(r, handler.Appointment, repo, config, logger)
	wireMessage(r, handler.Message, repo, config, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
