package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"clinic-backend/pkg/utils"

	"go.uber.org/zap"
)

const systemPrompt = `You moderate patient reviews for a physiotherapy clinic's public website.
Classify the sentiment of the review text under healthcare-professionalism standards:
a review suitable for public display without staff attention is Positive; a review
that needs a human look before publication is Neutral or Negative.
Respond with exactly one word: Positive, Neutral, or Negative.`

// OpenAIClassifier calls an OpenAI-format chat completions endpoint. No
// retries; a transport or upstream failure is the caller's problem.
type OpenAIClassifier struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	log        *zap.Logger
}

func NewOpenAIClassifier(config utils.ClassifierConfig, log *zap.Logger) *OpenAIClassifier {
	timeout := time.Duration(config.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &OpenAIClassifier{
		baseURL: strings.TrimRight(config.BaseURL, "/"),
		apiKey:  config.APIKey,
		model:   config.Model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log.With(zap.String("classifier", "openai")),
	}
}

func (c *OpenAIClassifier) Classify(ctx context.Context, text string) (Sentiment, error) {
	reqBody := map[string]interface{}{
		"model":       c.model,
		"max_tokens":  8,
		"temperature": 0,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": text},
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := c.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("classifier request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read classifier response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("classifier API error (%d): %s", resp.StatusCode, truncate(string(respBody), 200))
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("decode classifier response: %w", err)
	}

	raw := ""
	if len(result.Choices) > 0 {
		raw = strings.TrimSpace(result.Choices[0].Message.Content)
	}

	sentiment := ParseSentiment(raw)
	c.log.Debug("Review text classified",
		zap.String("raw", truncate(raw, 50)),
		zap.String("sentiment", string(sentiment)),
	)

	return sentiment, nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
