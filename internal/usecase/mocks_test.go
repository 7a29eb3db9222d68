package usecase

import (
	"context"
	"time"

	"clinic-backend/internal/classifier"
	"clinic-backend/internal/data/entity"
	"clinic-backend/internal/data/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockReviewRepository is a mock implementation of repository.ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Review), args.Error(1)
}

func (m *MockReviewRepository) FindApproved(ctx context.Context, limit, offset int) ([]*entity.Review, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Review), args.Error(1)
}

func (m *MockReviewRepository) CountApproved(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReviewRepository) FindUnmoderated(ctx context.Context, limit, offset int) ([]*entity.Review, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Review), args.Error(1)
}

func (m *MockReviewRepository) CountUnmoderated(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReviewRepository) SetApproval(ctx context.Context, id uuid.UUID, approved bool, moderatedAt time.Time) error {
	args := m.Called(ctx, id, approved, moderatedAt)
	return args.Error(0)
}

func (m *MockReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockReviewAlertRepository is a mock implementation of repository.ReviewAlertRepository
type MockReviewAlertRepository struct {
	mock.Mock
}

func (m *MockReviewAlertRepository) Create(ctx context.Context, alert *entity.ReviewAlert) error {
	args := m.Called(ctx, alert)
	return args.Error(0)
}

func (m *MockReviewAlertRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ReviewAlert, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ReviewAlert), args.Error(1)
}

func (m *MockReviewAlertRepository) FindUnresolvedWithReview(ctx context.Context, limit, offset int) ([]*entity.AlertWithReview, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.AlertWithReview), args.Error(1)
}

func (m *MockReviewAlertRepository) CountUnresolved(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReviewAlertRepository) ResolveApprove(ctx context.Context, alertID, reviewID, resolvedBy uuid.UUID, resolvedAt time.Time) error {
	args := m.Called(ctx, alertID, reviewID, resolvedBy, resolvedAt)
	return args.Error(0)
}

func (m *MockReviewAlertRepository) ResolveReject(ctx context.Context, alertID, reviewID, resolvedBy uuid.UUID, resolvedAt time.Time) error {
	args := m.Called(ctx, alertID, reviewID, resolvedBy, resolvedAt)
	return args.Error(0)
}

// StubClassifier returns a fixed sentiment or error
type StubClassifier struct {
	Sentiment classifier.Sentiment
	Err       error
}

func (s *StubClassifier) Classify(ctx context.Context, text string) (classifier.Sentiment, error) {
	if s.Err != nil {
		return "", s.Err
	}
	return s.Sentiment, nil
}

func newTestRepository(reviews *MockReviewRepository, alerts *MockReviewAlertRepository) *repository.Repository {
	return &repository.Repository{
		Review:      reviews,
		ReviewAlert: alerts,
	}
}
