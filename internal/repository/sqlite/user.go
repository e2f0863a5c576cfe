package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/kartiknayak1216/lenso-backend-service/internal/domain/user"
	"github.com/kartiknayak1216/lenso-backend-service/internal/pkg/errors"
	"github.com/kartiknayak1216/lenso-backend-service/internal/pkg/metrics"
)

// UserRepository implements user.Repository
type UserRepository struct {
	db      *sql.DB
	timeout time.Duration
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB, timeout time.Duration) user.Repository {
	return &UserRepository{db: db, timeout: timeout}
}

// GetByExternalID retrieves a user by its identity-provider identifier
func (r *UserRepository) GetByExternalID(ctx context.Context, externalID string) (*user.User, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	start := time.Now()
	defer func() { metrics.RecordDBQuery("select", "users", time.Since(start)) }()

	query := `
		SELECT id, external_id, email, name, created_at, updated_at
		FROM users WHERE external_id = ?
	`

	var u user.User
	var createdAt, updatedAt int64

	err := r.db.QueryRowContext(ctx, query, externalID).Scan(
		&u.ID, &u.ExternalID, &u.Email, &u.Name, &createdAt, &updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NotFound("User")
	}
	if err != nil {
		return nil, storeError("Failed to get user", err)
	}

	u.CreatedAt = time.Unix(createdAt, 0)
	u.UpdatedAt = time.Unix(updatedAt, 0)

	return &u, nil
}

// CreateBundle atomically creates the user together with its default credit
// account, subscription, and initial billing entry. All four inserts run in
// one transaction; a unique-constraint conflict on the external identifier
// reports ErrAlreadyExists so provisioning stays idempotent under races.
func (r *UserRepository) CreateBundle(ctx context.Context, b *user.Bundle) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	start := time.Now()
	defer func() { metrics.RecordDBQuery("insert", "users", time.Since(start)) }()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return storeError("Failed to begin transaction", err)
	}
	defer tx.Rollback()

	now := time.Now()
	b.User.CreatedAt = now
	b.User.UpdatedAt = now

	result, err := tx.ExecContext(ctx, `
		INSERT INTO users (external_id, email, name, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`, b.User.ExternalID, b.User.Email, b.User.Name, now.Unix(), now.Unix())
	if err != nil {
		if isUniqueViolation(err) {
			return user.ErrAlreadyExists
		}
		return storeError("Failed to create user", err)
	}

	userID, err := result.LastInsertId()
	if err != nil {
		return storeError("Failed to get user ID", err)
	}
	b.User.ID = userID

	acct := b.Account
	acct.UserID = userID
	acct.CreatedAt = now
	acct.UpdatedAt = now
	_, err = tx.ExecContext(ctx, `
		INSERT INTO credit_accounts
			(user_id, is_daily, daily_credits_assigned, today_used, usage_date,
			 monthly_credits_assigned, used_credit, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, userID, acct.IsDaily, acct.DailyAssigned, acct.TodayUsed, acct.UsageDate,
		acct.MonthlyAssigned, acct.UsedCredit, now.Unix(), now.Unix())
	if err != nil {
		return storeError("Failed to create credit account", err)
	}

	sub := b.Subscription
	sub.UserID = userID
	sub.CreatedAt = now
	sub.UpdatedAt = now
	result, err = tx.ExecContext(ctx, `
		INSERT INTO subscriptions
			(user_id, provider_sub_id, plan, status, duration, price,
			 current_period_end, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, userID, sub.ProviderSubID, sub.Plan, sub.Status, sub.Duration, sub.Price,
		sub.CurrentPeriodEnd.Unix(), now.Unix(), now.Unix())
	if err != nil {
		return storeError("Failed to create subscription", err)
	}
	if id, err := result.LastInsertId(); err == nil {
		sub.ID = id
	}

	entry := b.BillingEntry
	entry.UserID = userID
	entry.CreatedAt = now
	result, err = tx.ExecContext(ctx, `
		INSERT INTO billing_history
			(user_id, invoice_id, amount, currency, plan_name, billing_cycle,
			 status, paid_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, userID, entry.InvoiceID, entry.Amount, entry.Currency, entry.PlanName,
		entry.BillingCycle, entry.Status, entry.PaidAt.Unix(), now.Unix())
	if err != nil {
		return storeError("Failed to create billing entry", err)
	}
	if id, err := result.LastInsertId(); err == nil {
		entry.ID = id
	}

	if err := tx.Commit(); err != nil {
		return storeError("Failed to commit provisioning", err)
	}

	return nil
}
