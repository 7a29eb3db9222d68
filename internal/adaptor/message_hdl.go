package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"clinic-backend/internal/dto/request"
	"clinic-backend/internal/usecase"
	"clinic-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MessageHandler struct {
	service usecase.MessageService
	log     *zap.Logger
}

func NewMessageHandler(service usecase.MessageService, log *zap.Logger) *MessageHandler {
	return &MessageHandler{
		service: service,
		log:     log.With(zap.String("handler", "message")),
	}
}

// CreateMessage handles POST /api/messages (public)
func (h *MessageHandler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	var req request.CreateMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	message, err := h.service.CreateMessage(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create message")
		return
	}

	utils.ResponseCreated(w, "success", message)
}

// GetMessages handles GET /api/admin/messages (admin)
func (h *MessageHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	req := paginationFromQuery(r)
	status := r.URL.Query().Get("status")

	messages, err := h.service.GetMessages(r.Context(), status, req)
	if err != nil {
		h.handleServiceError(w, err, "get messages")
		return
	}

	utils.ResponseSuccess(w, "success", messages)
}

// UpdateStatus handles PATCH /api/admin/messages/{id}/status (admin)
func (h *MessageHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	messageID := chi.URLParam(r, "id")
	if messageID == "" {
		utils.ResponseBadRequest(w, "Message ID is required", nil)
		return
	}

	var req request.UpdateMessageStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	message, err := h.service.UpdateStatus(r.Context(), messageID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update message status")
		return
	}

	utils.ResponseSuccess(w, "success", message)
}

// handleServiceError handles errors for message operations
func (h *MessageHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"):
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
