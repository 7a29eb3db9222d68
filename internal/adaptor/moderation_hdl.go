package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"clinic-backend/internal/dto/request"
	"clinic-backend/internal/usecase"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ModerationHandler struct {
	service usecase.ModerationService
	log     *zap.Logger
}

func NewModerationHandler(service usecase.ModerationService, log *zap.Logger) *ModerationHandler {
	return &ModerationHandler{
		service: service,
		log:     log.With(zap.String("handler", "moderation")),
	}
}

// moderationResponse is the endpoint's wire format. Its shape is part of the
// external contract, distinct from the shared response envelope.
type moderationResponse struct {
	Success   bool   `json:"success"`
	Sentiment string `json:"sentiment,omitempty"`
	Approved  *bool  `json:"approved,omitempty"`
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
}

// ModerateReview handles POST /api/moderate-review
func (h *ModerationHandler) ModerateReview(w http.ResponseWriter, r *http.Request) {
	var req request.ModerateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeModerationJSON(w, http.StatusBadRequest, moderationResponse{
			Success: false,
			Error:   "Missing required fields",
		})
		return
	}

	if req.ID == "" || req.ReviewText == "" {
		writeModerationJSON(w, http.StatusBadRequest, moderationResponse{
			Success: false,
			Error:   "Missing required fields",
		})
		return
	}

	result, err := h.service.Moderate(r.Context(), req.ID, req.ReviewText)
	if err != nil {
		h.writeModerationError(w, err, req.ID)
		return
	}

	writeModerationJSON(w, http.StatusOK, moderationResponse{
		Success:   true,
		Sentiment: result.Sentiment,
		Approved:  &result.Approved,
		Message:   result.Message,
	})
}

// RemoderateReview handles POST /api/admin/reviews/{id}/moderate (admin).
// It re-runs moderation with the review's stored comment, for reviews left
// unmoderated by an earlier classifier failure.
func (h *ModerationHandler) RemoderateReview(w http.ResponseWriter, r *http.Request) {
	reviewID := chi.URLParam(r, "id")
	if reviewID == "" {
		writeModerationJSON(w, http.StatusBadRequest, moderationResponse{
			Success: false,
			Error:   "Missing required fields",
		})
		return
	}

	result, err := h.service.ModerateByID(r.Context(), reviewID)
	if err != nil {
		h.writeModerationError(w, err, reviewID)
		return
	}

	writeModerationJSON(w, http.StatusOK, moderationResponse{
		Success:   true,
		Sentiment: result.Sentiment,
		Approved:  &result.Approved,
		Message:   result.Message,
	})
}

func (h *ModerationHandler) writeModerationError(w http.ResponseWriter, err error, reviewID string) {
	errMsg := err.Error()

	if strings.Contains(errMsg, "invalid review ID") {
		h.log.Warn("Moderation rejected - bad review ID",
			zap.Error(err),
			zap.String("review_id", reviewID))
		writeModerationJSON(w, http.StatusBadRequest, moderationResponse{
			Success: false,
			Error:   errMsg,
		})
		return
	}

	h.log.Error("Moderation failed",
		zap.Error(err),
		zap.String("review_id", reviewID))
	writeModerationJSON(w, http.StatusInternalServerError, moderationResponse{
		Success: false,
		Error:   errMsg,
	})
}

func writeModerationJSON(w http.ResponseWriter, code int, resp moderationResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(resp)
}
