package classifier

import (
	"context"

	"go.uber.org/zap"
)

// MockClassifier stands in when no classifier endpoint is configured. It
// labels everything Neutral so nothing reaches the public listing without a
// human look.
type MockClassifier struct {
	log *zap.Logger
}

func NewMockClassifier(log *zap.Logger) *MockClassifier {
	return &MockClassifier{
		log: log.With(zap.String("classifier", "mock")),
	}
}

func (m *MockClassifier) Classify(ctx context.Context, text string) (Sentiment, error) {
	m.log.Info("Mock classifier used, flagging for manual review",
		zap.Int("text_len", len(text)),
	)
	return SentimentNeutral, nil
}
