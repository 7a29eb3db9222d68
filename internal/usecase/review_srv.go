package usecase

import (
	"context"
	"fmt"
	"time"

	"clinic-backend/internal/data/entity"
	"clinic-backend/internal/data/repository"
	"clinic-backend/internal/dto/request"
	"clinic-backend/internal/dto/response"
	"clinic-backend/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewService interface {
	// Public endpoints
	CreateReview(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	GetApprovedReviews(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error)

	// Admin
	GetPendingReviews(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error)
}

type reviewService struct {
	repo       *repository.Repository
	moderation ModerationService
	log        *zap.Logger
}

func NewReviewService(repo *repository.Repository, moderation ModerationService, log *zap.Logger) ReviewService {
	return &reviewService{
		repo:       repo,
		moderation: moderation,
		log:        log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) CreateReview(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// Create review entity in unapproved state
	now := time.Now()
	review := &entity.Review{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:     req.Name,
		Email:    req.Email,
		Rating:   req.Rating,
		Comment:  req.Comment,
		Service:  req.Service,
		Approved: false,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		s.log.Error("Failed to create review",
			zap.Error(err),
			zap.Int("rating", req.Rating),
		)
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.Int("rating", req.Rating),
	)

	// Moderation runs in the background; the submitter's response does not
	// wait for it and does not fail if it fails.
	go s.runModeration(review.ID.String(), review.Comment)

	reviewResp := response.ReviewToResponse(review)
	return &reviewResp, nil
}

func (s *reviewService) GetApprovedReviews(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	reviews, err := s.repo.Review.FindApproved(ctx, limit, offset)
	if err != nil {
		s.log.Error("Failed to get approved reviews",
			zap.Error(err),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
		)
		return nil, fmt.Errorf("get approved reviews: %w", err)
	}

	total, err := s.repo.Review.CountApproved(ctx)
	if err != nil {
		s.log.Error("Failed to count approved reviews", zap.Error(err))
		return nil, fmt.Errorf("count approved reviews: %w", err)
	}

	reviewResponses := make([]response.ReviewResponse, len(reviews))
	for i, review := range reviews {
		reviewResponses[i] = response.ReviewToResponse(review)
	}

	return response.NewPaginatedResponse(reviewResponses, req.Page, req.PerPage, total), nil
}

func (s *reviewService) GetPendingReviews(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	reviews, err := s.repo.Review.FindUnmoderated(ctx, limit, offset)
	if err != nil {
		s.log.Error("Failed to get pending reviews",
			zap.Error(err),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
		)
		return nil, fmt.Errorf("get pending reviews: %w", err)
	}

	total, err := s.repo.Review.CountUnmoderated(ctx)
	if err != nil {
		s.log.Error("Failed to count pending reviews", zap.Error(err))
		return nil, fmt.Errorf("count pending reviews: %w", err)
	}

	reviewResponses := make([]response.ReviewResponse, len(reviews))
	for i, review := range reviews {
		reviewResponses[i] = response.ReviewToResponse(review)
	}

	return response.NewPaginatedResponse(reviewResponses, req.Page, req.PerPage, total), nil
}

// runModeration fires the moderation pipeline for a freshly created review.
// Failures are logged only; the review stays pending and remains visible via
// the pending listing.
func (s *reviewService) runModeration(reviewID, comment string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := s.moderation.Moderate(ctx, reviewID, comment); err != nil {
		s.log.Error("Background moderation failed",
			zap.Error(err),
			zap.String("review_id", reviewID),
		)
	}
}
