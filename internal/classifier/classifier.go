package classifier

import (
	"context"
	"strings"
)

// Sentiment is the strict three-way verdict for a review's text. The model's
// raw reply is free text; everything entering the rest of the pipeline goes
// through ParseSentiment first.
type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNeutral  Sentiment = "Neutral"
	SentimentNegative Sentiment = "Negative"
)

// Classifier labels patient-review text. Implementations are swappable
// without touching the moderation pipeline.
type Classifier interface {
	Classify(ctx context.Context, text string) (Sentiment, error)
}

// ParseSentiment normalizes a raw model reply into one of the three
// canonical labels. Anything empty, malformed, or outside the expected set
// becomes Neutral, which the decision step never auto-approves.
func ParseSentiment(raw string) Sentiment {
	line := raw
	if idx := strings.IndexByte(line, '\n'); idx >= 0 {
		line = line[:idx]
	}
	line = strings.ToLower(strings.Trim(strings.TrimSpace(line), `."'`))

	switch line {
	case "positive":
		return SentimentPositive
	case "neutral":
		return SentimentNeutral
	case "negative":
		return SentimentNegative
	}

	// A negated mention ("not positive", "isn't negative") must never count
	// as that label; bail to the safe default before substring matching.
	if strings.Contains(line, "not ") || strings.Contains(line, "n't ") {
		return SentimentNeutral
	}

	// Tolerate chatty replies like "Sentiment: Positive", but only when the
	// reply names exactly one label.
	var found Sentiment
	count := 0
	for _, s := range []Sentiment{SentimentPositive, SentimentNeutral, SentimentNegative} {
		if strings.Contains(line, strings.ToLower(string(s))) {
			found = s
			count++
		}
	}
	if count == 1 {
		return found
	}

	return SentimentNeutral
}
