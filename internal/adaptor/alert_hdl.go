package adaptor

import (
	"net/http"
	"strings"

	"clinic-backend/internal/usecase"
	"clinic-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AlertHandler struct {
	service usecase.AlertService
	log     *zap.Logger
}

func NewAlertHandler(service usecase.AlertService, log *zap.Logger) *AlertHandler {
	return &AlertHandler{
		service: service,
		log:     log.With(zap.String("handler", "alert")),
	}
}

// GetAlerts handles GET /api/admin/alerts (admin)
func (h *AlertHandler) GetAlerts(w http.ResponseWriter, r *http.Request) {
	req := paginationFromQuery(r)

	alerts, err := h.service.GetUnresolvedAlerts(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err, "get alerts")
		return
	}

	utils.ResponseSuccess(w, "success", alerts)
}

// ApproveAlert handles POST /api/admin/alerts/{id}/approve (admin)
func (h *AlertHandler) ApproveAlert(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	alertID := chi.URLParam(r, "id")
	if alertID == "" {
		utils.ResponseBadRequest(w, "Alert ID is required", nil)
		return
	}

	if err := h.service.ApproveAndPublish(r.Context(), alertID, userID); err != nil {
		h.handleServiceError(w, err, "approve alert")
		return
	}

	utils.ResponseSuccess(w, "Review approved and published", nil)
}

// RejectAlert handles POST /api/admin/alerts/{id}/reject (admin)
func (h *AlertHandler) RejectAlert(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	alertID := chi.URLParam(r, "id")
	if alertID == "" {
		utils.ResponseBadRequest(w, "Alert ID is required", nil)
		return
	}

	if err := h.service.RejectAndDelete(r.Context(), alertID, userID); err != nil {
		h.handleServiceError(w, err, "reject alert")
		return
	}

	utils.ResponseSuccess(w, "Review rejected and deleted", nil)
}

// handleServiceError handles errors for alert operations
func (h *AlertHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "invalid"):
		h.log.Warn(operation+" failed - bad input",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
