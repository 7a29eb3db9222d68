package usecase

import (
	"context"
	"fmt"
	"time"

	"clinic-backend/internal/classifier"
	"clinic-backend/internal/data/entity"
	"clinic-backend/internal/data/repository"
	"clinic-backend/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ModerationService interface {
	// Moderate classifies the given text and commits the approval decision
	// onto the review row, creating an alert when the review is not
	// auto-approved.
	Moderate(ctx context.Context, reviewID, text string) (*response.ModerationResult, error)

	// ModerateByID re-runs moderation using the review's stored comment.
	// This is the recovery path for reviews stuck by a classifier failure.
	ModerateByID(ctx context.Context, reviewID string) (*response.ModerationResult, error)
}

type moderationService struct {
	repo *repository.Repository
	clf  classifier.Classifier
	log  *zap.Logger
}

func NewModerationService(repo *repository.Repository, clf classifier.Classifier, log *zap.Logger) ModerationService {
	return &moderationService{
		repo: repo,
		clf:  clf,
		log:  log.With(zap.String("service", "moderation")),
	}
}

func (s *moderationService) Moderate(ctx context.Context, reviewID, text string) (*response.ModerationResult, error) {
	reviewUUID, err := uuid.Parse(reviewID)
	if err != nil {
		return nil, fmt.Errorf("invalid review ID format %s: %w", reviewID, err)
	}

	sentiment, err := s.clf.Classify(ctx, text)
	if err != nil {
		s.log.Error("Classifier failed, review left unmoderated",
			zap.Error(err),
			zap.String("review_id", reviewID),
		)
		return nil, fmt.Errorf("classify review %s: %w", reviewID, err)
	}

	approved := sentiment == classifier.SentimentPositive
	now := time.Now()

	// Primary write. If this fails the review stays unapproved and the
	// whole operation fails.
	if err := s.repo.Review.SetApproval(ctx, reviewUUID, approved, now); err != nil {
		s.log.Error("Failed to persist moderation decision",
			zap.Error(err),
			zap.String("review_id", reviewID),
			zap.String("sentiment", string(sentiment)),
		)
		return nil, fmt.Errorf("persist decision for review %s: %w", reviewID, err)
	}

	message := "Review auto-approved"
	if !approved {
		message = "Review flagged for manual review"

		// Secondary write. The approval decision above is already committed
		// and stands as the source of truth; a missing alert only degrades
		// monitoring, so this failure is logged and swallowed.
		alert := &entity.ReviewAlert{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: now,
			},
			ReviewID:  reviewUUID,
			Sentiment: string(sentiment),
			Resolved:  false,
		}
		if err := s.repo.ReviewAlert.Create(ctx, alert); err != nil {
			s.log.Error("Failed to create review alert, decision stands",
				zap.Error(err),
				zap.String("review_id", reviewID),
				zap.String("sentiment", string(sentiment)),
			)
		}
	}

	s.log.Info("Review moderated",
		zap.String("review_id", reviewID),
		zap.String("sentiment", string(sentiment)),
		zap.Bool("approved", approved),
	)

	return &response.ModerationResult{
		Sentiment: string(sentiment),
		Approved:  approved,
		Message:   message,
	}, nil
}

func (s *moderationService) ModerateByID(ctx context.Context, reviewID string) (*response.ModerationResult, error) {
	reviewUUID, err := uuid.Parse(reviewID)
	if err != nil {
		return nil, fmt.Errorf("invalid review ID format %s: %w", reviewID, err)
	}

	review, err := s.repo.Review.FindByID(ctx, reviewUUID)
	if err != nil {
		return nil, fmt.Errorf("find review %s: %w", reviewID, err)
	}
	if review == nil {
		return nil, fmt.Errorf("review %s not found", reviewID)
	}

	return s.Moderate(ctx, reviewID, review.Comment)
}
