package response

// ModerationResult is the outcome of one moderation run. Message is the
// operator-facing summary string.
type ModerationResult struct {
	Sentiment string `json:"sentiment"`
	Approved  bool   `json:"approved"`
	Message   string `json:"message"`
}
