package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSentiment(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected Sentiment
	}{
		{"exact positive", "Positive", SentimentPositive},
		{"exact neutral", "Neutral", SentimentNeutral},
		{"exact negative", "Negative", SentimentNegative},
		{"lowercase", "positive", SentimentPositive},
		{"uppercase", "NEGATIVE", SentimentNegative},
		{"trailing period", "Positive.", SentimentPositive},
		{"quoted", `"Negative"`, SentimentNegative},
		{"surrounding whitespace", "  Neutral  ", SentimentNeutral},
		{"chatty prefix", "Sentiment: Positive", SentimentPositive},
		{"multiline keeps first line", "Negative\nThe review complains about wait times.", SentimentNegative},
		{"empty", "", SentimentNeutral},
		{"garbage", "I cannot classify this text", SentimentNeutral},
		{"unknown label", "Mixed", SentimentNeutral},
		{"mentions two labels", "neither positive nor negative", SentimentNeutral},
		{"negated positive", "not positive", SentimentNeutral},
		{"contracted negation", "this isn't negative", SentimentNeutral},
		{"negation before label", "The review is not positive at all", SentimentNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseSentiment(tt.raw))
		})
	}
}
