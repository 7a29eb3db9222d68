package usecase

import (
	"context"
	"fmt"
	"time"

	"clinic-backend/internal/data/entity"
	"clinic-backend/internal/data/repository"
	"clinic-backend/internal/dto/request"
	"clinic-backend/internal/dto/response"
	"clinic-backend/internal/notify"
	"clinic-backend/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MessageService interface {
	// Public
	CreateMessage(ctx context.Context, req *request.CreateMessageRequest) (*response.MessageResponse, error)

	// Admin
	GetMessages(ctx context.Context, status string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.MessageResponse], error)
	UpdateStatus(ctx context.Context, messageID string, req *request.UpdateMessageStatusRequest) (*response.MessageResponse, error)
}

type messageService struct {
	repo     *repository.Repository
	notifier notify.Notifier
	log      *zap.Logger
}

func NewMessageService(repo *repository.Repository, notifier notify.Notifier, log *zap.Logger) MessageService {
	return &messageService{
		repo:     repo,
		notifier: notifier,
		log:      log.With(zap.String("service", "message")),
	}
}

func (s *messageService) CreateMessage(ctx context.Context, req *request.CreateMessageRequest) (*response.MessageResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create message validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	message := &entity.Message{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Body,
		Status:  entity.MessagePending,
	}

	if err := s.repo.Message.Create(ctx, message); err != nil {
		s.log.Error("Failed to create message", zap.Error(err))
		return nil, fmt.Errorf("create message: %w", err)
	}

	s.log.Info("Message created",
		zap.String("message_id", message.ID.String()),
		zap.String("email", message.Email),
	)

	go s.notifyIntake(message)

	messageResp := response.MessageToResponse(message)
	return &messageResp, nil
}

func (s *messageService) GetMessages(ctx context.Context, status string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.MessageResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	messages, err := s.repo.Message.FindAll(ctx, status, limit, offset)
	if err != nil {
		s.log.Error("Failed to get messages",
			zap.Error(err),
			zap.String("status", status),
		)
		return nil, fmt.Errorf("get messages: %w", err)
	}

	total, err := s.repo.Message.CountAll(ctx, status)
	if err != nil {
		s.log.Error("Failed to count messages", zap.Error(err))
		return nil, fmt.Errorf("count messages: %w", err)
	}

	messageResponses := make([]response.MessageResponse, len(messages))
	for i, message := range messages {
		messageResponses[i] = response.MessageToResponse(message)
	}

	return response.NewPaginatedResponse(messageResponses, req.Page, req.PerPage, total), nil
}

func (s *messageService) UpdateStatus(ctx context.Context, messageID string, req *request.UpdateMessageStatusRequest) (*response.MessageResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update message status validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	messageUUID, err := uuid.Parse(messageID)
	if err != nil {
		return nil, fmt.Errorf("invalid message ID format %s: %w", messageID, err)
	}

	message, err := s.repo.Message.FindByID(ctx, messageUUID)
	if err != nil || message == nil {
		return nil, fmt.Errorf("message %s not found", messageID)
	}

	if err := s.repo.Message.UpdateStatus(ctx, messageUUID, entity.MessageStatus(req.Status)); err != nil {
		s.log.Error("Failed to update message status",
			zap.Error(err),
			zap.String("message_id", messageID),
			zap.String("status", req.Status),
		)
		return nil, fmt.Errorf("update message status: %w", err)
	}

	message.Status = entity.MessageStatus(req.Status)

	s.log.Info("Message status updated",
		zap.String("message_id", messageID),
		zap.String("status", req.Status),
	)

	messageResp := response.MessageToResponse(message)
	return &messageResp, nil
}

func (s *messageService) notifyIntake(message *entity.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	subject := "New contact message from " + message.Name
	body := fmt.Sprintf("Name: %s\nEmail: %s\n\n%s", message.Name, message.Email, message.Body)

	if err := s.notifier.Send(ctx, subject, body); err != nil {
		s.log.Error("Failed to send message notification",
			zap.Error(err),
			zap.String("message_id", message.ID.String()),
		)
	}
}
