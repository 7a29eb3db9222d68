package usecase

import (
	"context"
	"testing"
	"time"

	"clinic-backend/internal/data/entity"
	"clinic-backend/internal/dto/request"
	"clinic-backend/internal/dto/response"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// recordingModeration captures background moderation invocations
type recordingModeration struct {
	calls chan string
}

func newRecordingModeration() *recordingModeration {
	return &recordingModeration{calls: make(chan string, 1)}
}

func (r *recordingModeration) Moderate(ctx context.Context, reviewID, text string) (*response.ModerationResult, error) {
	r.calls <- reviewID
	return &response.ModerationResult{Sentiment: "Positive", Approved: true}, nil
}

func (r *recordingModeration) ModerateByID(ctx context.Context, reviewID string) (*response.ModerationResult, error) {
	return r.Moderate(ctx, reviewID, "")
}

func TestCreateReview_StartsUnapprovedAndTriggersModeration(t *testing.T) {
	reviews := new(MockReviewRepository)
	moderation := newRecordingModeration()

	reviews.On("Create", mock.Anything, mock.MatchedBy(func(r *entity.Review) bool {
		// New reviews are never visible before moderation
		return !r.Approved && r.ModeratedAt == nil
	})).Return(nil)

	svc := NewReviewService(newTestRepository(reviews, new(MockReviewAlertRepository)), moderation, zap.NewNop())

	name := "Siti"
	resp, err := svc.CreateReview(context.Background(), &request.CreateReviewRequest{
		Name:    &name,
		Rating:  5,
		Comment: "My shoulder feels brand new after six sessions",
	})

	require.NoError(t, err)
	assert.False(t, resp.Approved)
	assert.Equal(t, "Siti", resp.Name)

	select {
	case moderatedID := <-moderation.calls:
		assert.Equal(t, resp.ID, moderatedID)
	case <-time.After(2 * time.Second):
		t.Fatal("moderation was never triggered")
	}

	reviews.AssertExpectations(t)
}

func TestCreateReview_ValidationFailure(t *testing.T) {
	reviews := new(MockReviewRepository)
	svc := NewReviewService(newTestRepository(reviews, new(MockReviewAlertRepository)), newRecordingModeration(), zap.NewNop())

	tests := []struct {
		name string
		req  *request.CreateReviewRequest
	}{
		{"missing rating", &request.CreateReviewRequest{Comment: "long enough comment here"}},
		{"rating out of range", &request.CreateReviewRequest{Rating: 6, Comment: "long enough comment here"}},
		{"comment too short", &request.CreateReviewRequest{Rating: 4, Comment: "short"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateReview(context.Background(), tt.req)

			require.Error(t, err)
			assert.Contains(t, err.Error(), "validation failed")
		})
	}

	reviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateReview_AnonymousName(t *testing.T) {
	reviews := new(MockReviewRepository)
	reviews.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewReviewService(newTestRepository(reviews, new(MockReviewAlertRepository)), newRecordingModeration(), zap.NewNop())

	resp, err := svc.CreateReview(context.Background(), &request.CreateReviewRequest{
		Rating:  4,
		Comment: "Good care, friendly and professional team",
	})

	require.NoError(t, err)
	assert.Equal(t, "Anonymous", resp.Name)
}

func TestGetApprovedReviews_OnlyApprovedReturned(t *testing.T) {
	reviews := new(MockReviewRepository)

	name := "Andi"
	approved := []*entity.Review{
		{
			BaseNoDelete: entity.BaseNoDelete{ID: uuid.New(), CreatedAt: time.Now()},
			Name:         &name,
			Rating:       5,
			Comment:      "Highly recommend the sports injury program",
			Approved:     true,
		},
	}
	reviews.On("FindApproved", mock.Anything, 10, 0).Return(approved, nil)
	reviews.On("CountApproved", mock.Anything).Return(int64(1), nil)

	svc := NewReviewService(newTestRepository(reviews, new(MockReviewAlertRepository)), newRecordingModeration(), zap.NewNop())

	result, err := svc.GetApprovedReviews(context.Background(), &request.PaginatedRequest{Page: 1, PerPage: 10})

	require.NoError(t, err)
	require.Len(t, result.Data, 1)
	assert.True(t, result.Data[0].Approved)
	assert.Equal(t, int64(1), result.Pagination.Total)
}

func TestGetPendingReviews(t *testing.T) {
	reviews := new(MockReviewRepository)

	stuck := []*entity.Review{
		{
			BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()},
			Rating:       3,
			Comment:      "Submitted while the classifier was down",
		},
	}
	reviews.On("FindUnmoderated", mock.Anything, 10, 0).Return(stuck, nil)
	reviews.On("CountUnmoderated", mock.Anything).Return(int64(1), nil)

	svc := NewReviewService(newTestRepository(reviews, new(MockReviewAlertRepository)), newRecordingModeration(), zap.NewNop())

	result, err := svc.GetPendingReviews(context.Background(), &request.PaginatedRequest{Page: 1, PerPage: 10})

	require.NoError(t, err)
	require.Len(t, result.Data, 1)
	assert.False(t, result.Data[0].Approved)
}

func TestGetPendingReviews_TotalCountsWholeBacklog(t *testing.T) {
	reviews := new(MockReviewRepository)

	// Page 1 of a larger backlog: metadata must reflect every stuck review,
	// not just the current page's rows.
	page := []*entity.Review{
		{BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()}, Rating: 3, Comment: "First stuck review in the backlog"},
		{BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()}, Rating: 2, Comment: "Second stuck review in the backlog"},
	}
	reviews.On("FindUnmoderated", mock.Anything, 2, 0).Return(page, nil)
	reviews.On("CountUnmoderated", mock.Anything).Return(int64(5), nil)

	svc := NewReviewService(newTestRepository(reviews, new(MockReviewAlertRepository)), newRecordingModeration(), zap.NewNop())

	result, err := svc.GetPendingReviews(context.Background(), &request.PaginatedRequest{Page: 1, PerPage: 2})

	require.NoError(t, err)
	require.Len(t, result.Data, 2)
	assert.Equal(t, int64(5), result.Pagination.Total)
	assert.Equal(t, 3, result.Pagination.TotalPages)
}
