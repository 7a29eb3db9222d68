package usecase

import (
	"context"
	"fmt"
	"time"

	"clinic-backend/internal/data/repository"
	"clinic-backend/internal/dto/request"
	"clinic-backend/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AlertService is the admin console over flagged reviews. Authorization is
// enforced at the routing layer before any of this runs.
type AlertService interface {
	GetUnresolvedAlerts(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.AlertResponse], error)
	ApproveAndPublish(ctx context.Context, alertID string, resolvedBy uuid.UUID) error
	RejectAndDelete(ctx context.Context, alertID string, resolvedBy uuid.UUID) error
}

type alertService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAlertService(repo *repository.Repository, log *zap.Logger) AlertService {
	return &alertService{
		repo: repo,
		log:  log.With(zap.String("service", "alert")),
	}
}

func (s *alertService) GetUnresolvedAlerts(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.AlertResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	items, err := s.repo.ReviewAlert.FindUnresolvedWithReview(ctx, limit, offset)
	if err != nil {
		s.log.Error("Failed to get unresolved alerts",
			zap.Error(err),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
		)
		return nil, fmt.Errorf("get unresolved alerts: %w", err)
	}

	total, err := s.repo.ReviewAlert.CountUnresolved(ctx)
	if err != nil {
		s.log.Error("Failed to count unresolved alerts", zap.Error(err))
		return nil, fmt.Errorf("count unresolved alerts: %w", err)
	}

	alertResponses := make([]response.AlertResponse, len(items))
	for i, item := range items {
		alertResponses[i] = response.AlertToResponse(item)
	}

	return response.NewPaginatedResponse(alertResponses, req.Page, req.PerPage, total), nil
}

func (s *alertService) ApproveAndPublish(ctx context.Context, alertID string, resolvedBy uuid.UUID) error {
	alertUUID, err := uuid.Parse(alertID)
	if err != nil {
		return fmt.Errorf("invalid alert ID format %s: %w", alertID, err)
	}

	alert, err := s.repo.ReviewAlert.FindByID(ctx, alertUUID)
	if err != nil {
		return fmt.Errorf("find alert %s: %w", alertID, err)
	}
	if alert == nil {
		return fmt.Errorf("alert %s not found", alertID)
	}

	// Re-running on an already resolved alert repeats the same terminal
	// writes; the outcome is identical.
	if err := s.repo.ReviewAlert.ResolveApprove(ctx, alert.ID, alert.ReviewID, resolvedBy, time.Now()); err != nil {
		s.log.Error("Failed to approve and publish",
			zap.Error(err),
			zap.String("alert_id", alertID),
			zap.String("review_id", alert.ReviewID.String()),
		)
		return fmt.Errorf("approve and publish alert %s: %w", alertID, err)
	}

	s.log.Info("Alert resolved, review published",
		zap.String("alert_id", alertID),
		zap.String("review_id", alert.ReviewID.String()),
		zap.String("resolved_by", resolvedBy.String()),
	)

	return nil
}

func (s *alertService) RejectAndDelete(ctx context.Context, alertID string, resolvedBy uuid.UUID) error {
	alertUUID, err := uuid.Parse(alertID)
	if err != nil {
		return fmt.Errorf("invalid alert ID format %s: %w", alertID, err)
	}

	alert, err := s.repo.ReviewAlert.FindByID(ctx, alertUUID)
	if err != nil {
		return fmt.Errorf("find alert %s: %w", alertID, err)
	}
	if alert == nil {
		return fmt.Errorf("alert %s not found", alertID)
	}

	if err := s.repo.ReviewAlert.ResolveReject(ctx, alert.ID, alert.ReviewID, resolvedBy, time.Now()); err != nil {
		s.log.Error("Failed to reject and delete",
			zap.Error(err),
			zap.String("alert_id", alertID),
			zap.String("review_id", alert.ReviewID.String()),
		)
		return fmt.Errorf("reject and delete alert %s: %w", alertID, err)
	}

	s.log.Info("Alert resolved, review deleted",
		zap.String("alert_id", alertID),
		zap.String("review_id", alert.ReviewID.String()),
		zap.String("resolved_by", resolvedBy.String()),
	)

	return nil
}
