package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReviewAlert tracks a review that failed auto-approval. Alerts are never
// deleted; resolution flips Resolved and stamps ResolvedAt/ResolvedBy.
type ReviewAlert struct {
	BaseSimple
	ReviewID   uuid.UUID  `db:"review_id"`
	Sentiment  string     `db:"sentiment"` // Neutral or Negative
	Resolved   bool       `db:"resolved"`
	ResolvedAt *time.Time `db:"resolved_at"`
	ResolvedBy *uuid.UUID `db:"resolved_by"`
}

// AlertWithReview is the console listing row: an unresolved alert joined
// with the current state of its review.
type AlertWithReview struct {
	Alert  ReviewAlert
	Review Review
}
