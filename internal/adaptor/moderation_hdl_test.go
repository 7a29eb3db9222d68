package adaptor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"clinic-backend/internal/dto/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockModerationService is a mock implementation of usecase.ModerationService
type MockModerationService struct {
	mock.Mock
}

func (m *MockModerationService) Moderate(ctx context.Context, reviewID, text string) (*response.ModerationResult, error) {
	args := m.Called(ctx, reviewID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.ModerationResult), args.Error(1)
}

func (m *MockModerationService) ModerateByID(ctx context.Context, reviewID string) (*response.ModerationResult, error) {
	args := m.Called(ctx, reviewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.ModerationResult), args.Error(1)
}

func postModeration(t *testing.T, handler *ModerationHandler, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/moderate-review", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.ModerateReview(rec, req)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	return rec, decoded
}

func TestModerateReview_Success(t *testing.T) {
	svc := new(MockModerationService)
	svc.On("Moderate", mock.Anything, "a2f1c9d4-0000-4000-8000-000000000001", "Great clinic").
		Return(&response.ModerationResult{
			Sentiment: "Positive",
			Approved:  true,
			Message:   "Review auto-approved",
		}, nil)

	handler := NewModerationHandler(svc, zap.NewNop())
	rec, body := postModeration(t, handler,
		`{"id":"a2f1c9d4-0000-4000-8000-000000000001","review_text":"Great clinic"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Positive", body["sentiment"])
	assert.Equal(t, true, body["approved"])
	assert.Equal(t, "Review auto-approved", body["message"])
	assert.NotContains(t, body, "error")
}

func TestModerateReview_FlaggedReview(t *testing.T) {
	svc := new(MockModerationService)
	svc.On("Moderate", mock.Anything, mock.Anything, mock.Anything).
		Return(&response.ModerationResult{
			Sentiment: "Negative",
			Approved:  false,
			Message:   "Review flagged for manual review",
		}, nil)

	handler := NewModerationHandler(svc, zap.NewNop())
	rec, body := postModeration(t, handler,
		`{"id":"a2f1c9d4-0000-4000-8000-000000000002","review_text":"Terrible front desk"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Negative", body["sentiment"])
	// approved must be present and false, not omitted
	approved, ok := body["approved"]
	require.True(t, ok)
	assert.Equal(t, false, approved)
}

func TestModerateReview_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty body", `{}`},
		{"missing id", `{"review_text":"some text"}`},
		{"missing review_text", `{"id":"a2f1c9d4-0000-4000-8000-000000000003"}`},
		{"not json", `this is not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockModerationService)
			handler := NewModerationHandler(svc, zap.NewNop())

			rec, body := postModeration(t, handler, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, "Missing required fields", body["error"])

			// Invalid input must cause no classification or writes
			svc.AssertNotCalled(t, "Moderate", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestModerateReview_InvalidReviewID(t *testing.T) {
	svc := new(MockModerationService)
	svc.On("Moderate", mock.Anything, "not-a-uuid", "some review text").
		Return(nil, errors.New("invalid review ID format not-a-uuid: invalid UUID length"))

	handler := NewModerationHandler(svc, zap.NewNop())
	rec, body := postModeration(t, handler, `{"id":"not-a-uuid","review_text":"some review text"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["error"], "invalid review ID")
}

func TestModerateReview_ClassifierFailure(t *testing.T) {
	svc := new(MockModerationService)
	svc.On("Moderate", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("classify review: connection refused"))

	handler := NewModerationHandler(svc, zap.NewNop())
	rec, body := postModeration(t, handler,
		`{"id":"a2f1c9d4-0000-4000-8000-000000000004","review_text":"some review text"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.NotEmpty(t, body["error"])
}
