package usecase

import (
	"context"
	"errors"
	"testing"

	"clinic-backend/internal/classifier"
	"clinic-backend/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestModerate_PositiveAutoApproves(t *testing.T) {
	reviews := new(MockReviewRepository)
	alerts := new(MockReviewAlertRepository)
	reviewID := uuid.New()

	reviews.On("SetApproval", mock.Anything, reviewID, true, mock.Anything).Return(nil)

	svc := NewModerationService(newTestRepository(reviews, alerts),
		&StubClassifier{Sentiment: classifier.SentimentPositive}, zap.NewNop())

	result, err := svc.Moderate(context.Background(), reviewID.String(), "The therapist was wonderful")

	require.NoError(t, err)
	assert.Equal(t, "Positive", result.Sentiment)
	assert.True(t, result.Approved)
	assert.Equal(t, "Review auto-approved", result.Message)

	reviews.AssertExpectations(t)
	// No alert for an auto-approved review
	alerts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestModerate_NeutralFlagsWithAlert(t *testing.T) {
	reviews := new(MockReviewRepository)
	alerts := new(MockReviewAlertRepository)
	reviewID := uuid.New()

	reviews.On("SetApproval", mock.Anything, reviewID, false, mock.Anything).Return(nil)
	alerts.On("Create", mock.Anything, mock.MatchedBy(func(a *entity.ReviewAlert) bool {
		return a.ReviewID == reviewID && a.Sentiment == "Neutral" && !a.Resolved
	})).Return(nil)

	svc := NewModerationService(newTestRepository(reviews, alerts),
		&StubClassifier{Sentiment: classifier.SentimentNeutral}, zap.NewNop())

	result, err := svc.Moderate(context.Background(), reviewID.String(), "The visit was okay I suppose")

	require.NoError(t, err)
	assert.Equal(t, "Neutral", result.Sentiment)
	assert.False(t, result.Approved)
	assert.Equal(t, "Review flagged for manual review", result.Message)

	reviews.AssertExpectations(t)
	alerts.AssertExpectations(t)
}

func TestModerate_NegativeFlagsWithAlert(t *testing.T) {
	reviews := new(MockReviewRepository)
	alerts := new(MockReviewAlertRepository)
	reviewID := uuid.New()

	reviews.On("SetApproval", mock.Anything, reviewID, false, mock.Anything).Return(nil)
	alerts.On("Create", mock.Anything, mock.MatchedBy(func(a *entity.ReviewAlert) bool {
		return a.Sentiment == "Negative"
	})).Return(nil)

	svc := NewModerationService(newTestRepository(reviews, alerts),
		&StubClassifier{Sentiment: classifier.SentimentNegative}, zap.NewNop())

	result, err := svc.Moderate(context.Background(), reviewID.String(), "Terrible experience, rude staff")

	require.NoError(t, err)
	assert.False(t, result.Approved)

	alerts.AssertExpectations(t)
}

func TestModerate_ClassifierFailureLeavesReviewUntouched(t *testing.T) {
	reviews := new(MockReviewRepository)
	alerts := new(MockReviewAlertRepository)
	reviewID := uuid.New()

	svc := NewModerationService(newTestRepository(reviews, alerts),
		&StubClassifier{Err: errors.New("connection refused")}, zap.NewNop())

	_, err := svc.Moderate(context.Background(), reviewID.String(), "some comment here")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "classify review")

	// No decision may be written when classification failed
	reviews.AssertNotCalled(t, "SetApproval", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	alerts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestModerate_SetApprovalFailureIsFatal(t *testing.T) {
	reviews := new(MockReviewRepository)
	alerts := new(MockReviewAlertRepository)
	reviewID := uuid.New()

	reviews.On("SetApproval", mock.Anything, reviewID, true, mock.Anything).
		Return(errors.New("connection reset"))

	svc := NewModerationService(newTestRepository(reviews, alerts),
		&StubClassifier{Sentiment: classifier.SentimentPositive}, zap.NewNop())

	_, err := svc.Moderate(context.Background(), reviewID.String(), "great place")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "persist decision")
}

func TestModerate_AlertFailureDoesNotFailModeration(t *testing.T) {
	reviews := new(MockReviewRepository)
	alerts := new(MockReviewAlertRepository)
	reviewID := uuid.New()

	reviews.On("SetApproval", mock.Anything, reviewID, false, mock.Anything).Return(nil)
	alerts.On("Create", mock.Anything, mock.Anything).Return(errors.New("insert failed"))

	svc := NewModerationService(newTestRepository(reviews, alerts),
		&StubClassifier{Sentiment: classifier.SentimentNegative}, zap.NewNop())

	// The committed approval decision stands even when the alert insert fails
	result, err := svc.Moderate(context.Background(), reviewID.String(), "awful service")

	require.NoError(t, err)
	assert.False(t, result.Approved)
	assert.Equal(t, "Review flagged for manual review", result.Message)
}

func TestModerate_InvalidReviewID(t *testing.T) {
	svc := NewModerationService(newTestRepository(new(MockReviewRepository), new(MockReviewAlertRepository)),
		&StubClassifier{Sentiment: classifier.SentimentPositive}, zap.NewNop())

	_, err := svc.Moderate(context.Background(), "not-a-uuid", "some comment")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid review ID")
}

func TestModerateByID_UsesStoredComment(t *testing.T) {
	reviews := new(MockReviewRepository)
	alerts := new(MockReviewAlertRepository)
	reviewID := uuid.New()

	review := &entity.Review{
		BaseNoDelete: entity.BaseNoDelete{ID: reviewID},
		Rating:       5,
		Comment:      "Fantastic care from start to finish",
	}
	reviews.On("FindByID", mock.Anything, reviewID).Return(review, nil)
	reviews.On("SetApproval", mock.Anything, reviewID, true, mock.Anything).Return(nil)

	svc := NewModerationService(newTestRepository(reviews, alerts),
		&StubClassifier{Sentiment: classifier.SentimentPositive}, zap.NewNop())

	result, err := svc.ModerateByID(context.Background(), reviewID.String())

	require.NoError(t, err)
	assert.True(t, result.Approved)
	reviews.AssertExpectations(t)
}

func TestModerateByID_ReviewNotFound(t *testing.T) {
	reviews := new(MockReviewRepository)
	reviewID := uuid.New()

	reviews.On("FindByID", mock.Anything, reviewID).Return(nil, nil)

	svc := NewModerationService(newTestRepository(reviews, new(MockReviewAlertRepository)),
		&StubClassifier{Sentiment: classifier.SentimentPositive}, zap.NewNop())

	_, err := svc.ModerateByID(context.Background(), reviewID.String())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
