package repository

import (
	"context"
	"fmt"
	"time"

	"clinic-backend/internal/data/entity"
	"clinic-backend/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ReviewAlertRepository interface {
	Create(ctx context.Context, alert *entity.ReviewAlert) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ReviewAlert, error)
	FindUnresolvedWithReview(ctx context.Context, limit, offset int) ([]*entity.AlertWithReview, error)
	CountUnresolved(ctx context.Context) (int64, error)

	// Two-write transitions, each wrapped in a single transaction so a
	// resolved alert is never observed with its review left in limbo.
	ResolveApprove(ctx context.Context, alertID, reviewID, resolvedBy uuid.UUID, resolvedAt time.Time) error
	ResolveReject(ctx context.Context, alertID, reviewID, resolvedBy uuid.UUID, resolvedAt time.Time) error
}

type reviewAlertRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewAlertRepository(db database.PgxIface, log *zap.Logger) ReviewAlertRepository {
	return &reviewAlertRepository{
		db:  db,
		log: log.With(zap.String("repository", "review_alert")),
	}
}

func (r *reviewAlertRepository) Create(ctx context.Context, alert *entity.ReviewAlert) error {
	// The partial unique index on (review_id) WHERE NOT resolved keeps a
	// duplicate moderation run from piling up unresolved alerts.
	query := `
		INSERT INTO review_alerts (id, review_id, sentiment, resolved, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (review_id) WHERE NOT resolved DO NOTHING
	`

	_, err := r.db.Exec(ctx, query,
		alert.ID,
		alert.ReviewID,
		alert.Sentiment,
		alert.Resolved,
		alert.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create review alert",
			zap.Error(err),
			zap.String("review_id", alert.ReviewID.String()),
			zap.String("sentiment", alert.Sentiment),
		)
		return fmt.Errorf("create alert for review %s: %w", alert.ReviewID.String(), err)
	}

	return nil
}

func (r *reviewAlertRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ReviewAlert, error) {
	query := `
		SELECT id, review_id, sentiment, resolved, resolved_at, resolved_by, created_at
		FROM review_alerts
		WHERE id = $1
	`

	var alert entity.ReviewAlert
	err := r.db.QueryRow(ctx, query, id).Scan(
		&alert.ID,
		&alert.ReviewID,
		&alert.Sentiment,
		&alert.Resolved,
		&alert.ResolvedAt,
		&alert.ResolvedBy,
		&alert.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find alert by ID",
			zap.Error(err),
			zap.String("alert_id", id.String()),
		)
		return nil, fmt.Errorf("find alert by ID %s: %w", id.String(), err)
	}

	return &alert, nil
}

func (r *reviewAlertRepository) FindUnresolvedWithReview(ctx context.Context, limit, offset int) ([]*entity.AlertWithReview, error) {
	query := `
		SELECT a.id, a.review_id, a.sentiment, a.resolved, a.resolved_at, a.resolved_by, a.created_at,
		       r.id, r.name, r.email, r.rating, r.comment, r.service, r.approved, r.moderated_at,
		       r.created_at, r.updated_at
		FROM review_alerts a
		JOIN reviews r ON r.id = a.review_id
		WHERE a.resolved = FALSE
		ORDER BY a.created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find unresolved alerts",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find unresolved alerts: %w", err)
	}
	defer rows.Close()

	var items []*entity.AlertWithReview
	for rows.Next() {
		var item entity.AlertWithReview
		err := rows.Scan(
			&item.Alert.ID,
			&item.Alert.ReviewID,
			&item.Alert.Sentiment,
			&item.Alert.Resolved,
			&item.Alert.ResolvedAt,
			&item.Alert.ResolvedBy,
			&item.Alert.CreatedAt,
			&item.Review.ID,
			&item.Review.Name,
			&item.Review.Email,
			&item.Review.Rating,
			&item.Review.Comment,
			&item.Review.Service,
			&item.Review.Approved,
			&item.Review.ModeratedAt,
			&item.Review.CreatedAt,
			&item.Review.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan alert row", zap.Error(err))
			return nil, fmt.Errorf("scan alert row: %w", err)
		}
		items = append(items, &item)
	}

	return items, nil
}

func (r *reviewAlertRepository) CountUnresolved(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM review_alerts WHERE resolved = FALSE`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count unresolved alerts", zap.Error(err))
		return 0, fmt.Errorf("count unresolved alerts: %w", err)
	}

	return count, nil
}

func (r *reviewAlertRepository) ResolveApprove(ctx context.Context, alertID, reviewID, resolvedBy uuid.UUID, resolvedAt time.Time) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin resolve-approve: %w", err)
	}
	defer tx.Rollback(ctx)

	reviewQuery := `
		UPDATE reviews
		SET approved = TRUE, updated_at = $2
		WHERE id = $1
	`
	result, err := tx.Exec(ctx, reviewQuery, reviewID, resolvedAt)
	if err != nil {
		r.log.Error("Failed to approve review in resolution",
			zap.Error(err),
			zap.String("review_id", reviewID.String()),
		)
		return fmt.Errorf("approve review %s: %w", reviewID.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("review %s not found", reviewID.String())
	}

	if err := resolveAlert(ctx, tx, alertID, resolvedBy, resolvedAt); err != nil {
		r.log.Error("Failed to resolve alert",
			zap.Error(err),
			zap.String("alert_id", alertID.String()),
		)
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit resolve-approve: %w", err)
	}

	return nil
}

func (r *reviewAlertRepository) ResolveReject(ctx context.Context, alertID, reviewID, resolvedBy uuid.UUID, resolvedAt time.Time) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin resolve-reject: %w", err)
	}
	defer tx.Rollback(ctx)

	// Review may already be gone when the same alert is rejected twice;
	// that is the idempotent re-run, not an error.
	if _, err := tx.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, reviewID); err != nil {
		r.log.Error("Failed to delete review in resolution",
			zap.Error(err),
			zap.String("review_id", reviewID.String()),
		)
		return fmt.Errorf("delete review %s: %w", reviewID.String(), err)
	}

	if err := resolveAlert(ctx, tx, alertID, resolvedBy, resolvedAt); err != nil {
		r.log.Error("Failed to resolve alert",
			zap.Error(err),
			zap.String("alert_id", alertID.String()),
		)
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit resolve-reject: %w", err)
	}

	return nil
}

func resolveAlert(ctx context.Context, tx pgx.Tx, alertID, resolvedBy uuid.UUID, resolvedAt time.Time) error {
	query := `
		UPDATE review_alerts
		SET resolved = TRUE, resolved_at = $2, resolved_by = $3
		WHERE id = $1 AND resolved = FALSE
	`

	// Zero rows means the alert was already resolved; the terminal state is
	// the same either way.
	if _, err := tx.Exec(ctx, query, alertID, resolvedAt, resolvedBy); err != nil {
		return fmt.Errorf("resolve alert %s: %w", alertID.String(), err)
	}

	return nil
}
