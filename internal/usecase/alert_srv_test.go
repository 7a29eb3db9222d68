package usecase

import (
	"context"
	"errors"
	"testing"

	"clinic-backend/internal/data/entity"
	"clinic-backend/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestApproveAndPublish(t *testing.T) {
	alerts := new(MockReviewAlertRepository)
	alertID := uuid.New()
	reviewID := uuid.New()
	adminID := uuid.New()

	alert := &entity.ReviewAlert{
		BaseSimple: entity.BaseSimple{ID: alertID},
		ReviewID:   reviewID,
		Sentiment:  "Negative",
	}
	alerts.On("FindByID", mock.Anything, alertID).Return(alert, nil)
	alerts.On("ResolveApprove", mock.Anything, alertID, reviewID, adminID, mock.Anything).Return(nil)

	svc := NewAlertService(newTestRepository(new(MockReviewRepository), alerts), zap.NewNop())

	err := svc.ApproveAndPublish(context.Background(), alertID.String(), adminID)

	require.NoError(t, err)
	alerts.AssertExpectations(t)
}

func TestApproveAndPublish_AlreadyResolvedIsIdempotent(t *testing.T) {
	alerts := new(MockReviewAlertRepository)
	alertID := uuid.New()
	reviewID := uuid.New()
	adminID := uuid.New()

	// The repository resolves with WHERE resolved = FALSE; re-running lands
	// on the same terminal state and reports success.
	alert := &entity.ReviewAlert{
		BaseSimple: entity.BaseSimple{ID: alertID},
		ReviewID:   reviewID,
		Sentiment:  "Neutral",
		Resolved:   true,
	}
	alerts.On("FindByID", mock.Anything, alertID).Return(alert, nil)
	alerts.On("ResolveApprove", mock.Anything, alertID, reviewID, adminID, mock.Anything).Return(nil)

	svc := NewAlertService(newTestRepository(new(MockReviewRepository), alerts), zap.NewNop())

	err := svc.ApproveAndPublish(context.Background(), alertID.String(), adminID)

	require.NoError(t, err)
}

func TestApproveAndPublish_AlertNotFound(t *testing.T) {
	alerts := new(MockReviewAlertRepository)
	alertID := uuid.New()

	alerts.On("FindByID", mock.Anything, alertID).Return(nil, nil)

	svc := NewAlertService(newTestRepository(new(MockReviewRepository), alerts), zap.NewNop())

	err := svc.ApproveAndPublish(context.Background(), alertID.String(), uuid.New())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	alerts.AssertNotCalled(t, "ResolveApprove", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestApproveAndPublish_InvalidAlertID(t *testing.T) {
	svc := NewAlertService(newTestRepository(new(MockReviewRepository), new(MockReviewAlertRepository)), zap.NewNop())

	err := svc.ApproveAndPublish(context.Background(), "garbage", uuid.New())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid alert ID")
}

func TestRejectAndDelete(t *testing.T) {
	alerts := new(MockReviewAlertRepository)
	alertID := uuid.New()
	reviewID := uuid.New()
	adminID := uuid.New()

	alert := &entity.ReviewAlert{
		BaseSimple: entity.BaseSimple{ID: alertID},
		ReviewID:   reviewID,
		Sentiment:  "Negative",
	}
	alerts.On("FindByID", mock.Anything, alertID).Return(alert, nil)
	alerts.On("ResolveReject", mock.Anything, alertID, reviewID, adminID, mock.Anything).Return(nil)

	svc := NewAlertService(newTestRepository(new(MockReviewRepository), alerts), zap.NewNop())

	err := svc.RejectAndDelete(context.Background(), alertID.String(), adminID)

	require.NoError(t, err)
	alerts.AssertExpectations(t)
}

func TestRejectAndDelete_ResolutionFailure(t *testing.T) {
	alerts := new(MockReviewAlertRepository)
	alertID := uuid.New()
	reviewID := uuid.New()

	alert := &entity.ReviewAlert{
		BaseSimple: entity.BaseSimple{ID: alertID},
		ReviewID:   reviewID,
	}
	alerts.On("FindByID", mock.Anything, alertID).Return(alert, nil)
	alerts.On("ResolveReject", mock.Anything, alertID, reviewID, mock.Anything, mock.Anything).
		Return(errors.New("tx aborted"))

	svc := NewAlertService(newTestRepository(new(MockReviewRepository), alerts), zap.NewNop())

	err := svc.RejectAndDelete(context.Background(), alertID.String(), uuid.New())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "reject and delete")
}

func TestGetUnresolvedAlerts(t *testing.T) {
	alerts := new(MockReviewAlertRepository)

	name := "Budi"
	items := []*entity.AlertWithReview{
		{
			Alert: entity.ReviewAlert{
				BaseSimple: entity.BaseSimple{ID: uuid.New()},
				ReviewID:   uuid.New(),
				Sentiment:  "Negative",
			},
			Review: entity.Review{
				BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()},
				Name:         &name,
				Rating:       2,
				Comment:      "Front desk kept me waiting for an hour",
			},
		},
	}
	alerts.On("FindUnresolvedWithReview", mock.Anything, 10, 0).Return(items, nil)
	alerts.On("CountUnresolved", mock.Anything).Return(int64(1), nil)

	svc := NewAlertService(newTestRepository(new(MockReviewRepository), alerts), zap.NewNop())

	result, err := svc.GetUnresolvedAlerts(context.Background(), &request.PaginatedRequest{Page: 1, PerPage: 10})

	require.NoError(t, err)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "Negative", result.Data[0].Sentiment)
	assert.Equal(t, int64(1), result.Pagination.Total)
}
