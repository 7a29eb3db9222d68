package classifier

import (
	"context"
	"net/http"
	"testing"

	"clinic-backend/pkg/utils"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testBaseURL = "https://api.example.test/v1"

func newTestClassifier(t *testing.T) *OpenAIClassifier {
	t.Helper()

	clf := NewOpenAIClassifier(utils.ClassifierConfig{
		BaseURL:        testBaseURL,
		APIKey:         "test-key",
		Model:          "gpt-4o-mini",
		TimeoutSeconds: 5,
	}, zap.NewNop())

	httpmock.ActivateNonDefault(clf.httpClient)
	t.Cleanup(httpmock.DeactivateAndReset)

	return clf
}

func chatCompletionBody(content string) map[string]interface{} {
	return map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]string{"content": content}},
		},
	}
}

func TestOpenAIClassifier_Classify_Success(t *testing.T) {
	clf := newTestClassifier(t)

	responder, err := httpmock.NewJsonResponder(http.StatusOK, chatCompletionBody("Positive"))
	require.NoError(t, err)
	httpmock.RegisterResponder(http.MethodPost, testBaseURL+"/chat/completions", responder)

	sentiment, err := clf.Classify(context.Background(), "Excellent treatment, my back pain is gone!")

	require.NoError(t, err)
	assert.Equal(t, SentimentPositive, sentiment)
	assert.Equal(t, 1, httpmock.GetTotalCallCount())
}

func TestOpenAIClassifier_Classify_NormalizesChattyReply(t *testing.T) {
	clf := newTestClassifier(t)

	responder, err := httpmock.NewJsonResponder(http.StatusOK, chatCompletionBody("Sentiment: negative."))
	require.NoError(t, err)
	httpmock.RegisterResponder(http.MethodPost, testBaseURL+"/chat/completions", responder)

	sentiment, err := clf.Classify(context.Background(), "Waited two hours and nobody apologized")

	require.NoError(t, err)
	assert.Equal(t, SentimentNegative, sentiment)
}

func TestOpenAIClassifier_Classify_APIError(t *testing.T) {
	clf := newTestClassifier(t)

	httpmock.RegisterResponder(http.MethodPost, testBaseURL+"/chat/completions",
		httpmock.NewStringResponder(http.StatusTooManyRequests, `{"error":{"message":"rate limited"}}`))

	_, err := clf.Classify(context.Background(), "some review text")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "classifier API error (429)")
}

func TestOpenAIClassifier_Classify_MalformedResponse(t *testing.T) {
	clf := newTestClassifier(t)

	httpmock.RegisterResponder(http.MethodPost, testBaseURL+"/chat/completions",
		httpmock.NewStringResponder(http.StatusOK, `not json at all`))

	_, err := clf.Classify(context.Background(), "some review text")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode classifier response")
}

func TestOpenAIClassifier_Classify_EmptyChoices(t *testing.T) {
	clf := newTestClassifier(t)

	httpmock.RegisterResponder(http.MethodPost, testBaseURL+"/chat/completions",
		httpmock.NewStringResponder(http.StatusOK, `{"choices":[]}`))

	sentiment, err := clf.Classify(context.Background(), "some review text")

	// An empty reply is not a transport failure; it degrades to Neutral so
	// the review lands in the manual queue instead of auto-publishing.
	require.NoError(t, err)
	assert.Equal(t, SentimentNeutral, sentiment)
}

func TestOpenAIClassifier_Classify_NetworkFailure(t *testing.T) {
	clf := newTestClassifier(t)

	httpmock.RegisterResponder(http.MethodPost, testBaseURL+"/chat/completions",
		httpmock.NewErrorResponder(assert.AnError))

	_, err := clf.Classify(context.Background(), "some review text")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "classifier request")
}
