package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/kartiknayak1216/lenso-backend-service/internal/domain/subscription"
	"github.com/kartiknayak1216/lenso-backend-service/internal/pkg/errors"
	"github.com/kartiknayak1216/lenso-backend-service/internal/pkg/metrics"
)

// SubscriptionRepository implements subscription.Repository
type SubscriptionRepository struct {
	db      *sql.DB
	timeout time.Duration
}

// NewSubscriptionRepository creates a new subscription repository
func NewSubscriptionRepository(db *sql.DB, timeout time.Duration) subscription.Repository {
	return &SubscriptionRepository{db: db, timeout: timeout}
}

// GetByUserID retrieves the subscription owned by a user
func (r *SubscriptionRepository) GetByUserID(ctx context.Context, userID int64) (*subscription.Subscription, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	start := time.Now()
	defer func() { metrics.RecordDBQuery("select", "subscriptions", time.Since(start)) }()

	query := `
		SELECT id, user_id, provider_sub_id, plan, status, duration, price,
		       current_period_end, created_at, updated_at
		FROM subscriptions WHERE user_id = ?
	`

	var s subscription.Subscription
	var periodEnd, createdAt, updatedAt int64

	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&s.ID, &s.UserID, &s.ProviderSubID, &s.Plan, &s.Status, &s.Duration,
		&s.Price, &periodEnd, &createdAt, &updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NotFound("Subscription")
	}
	if err != nil {
		return nil, storeError("Failed to get subscription", err)
	}

	s.CurrentPeriodEnd = time.Unix(periodEnd, 0)
	s.CreatedAt = time.Unix(createdAt, 0)
	s.UpdatedAt = time.Unix(updatedAt, 0)

	return &s, nil
}
