package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/kartiknayak1216/lenso-backend-service/internal/domain/billing"
	"github.com/kartiknayak1216/lenso-backend-service/internal/pkg/metrics"
)

// BillingRepository implements billing.Repository
type BillingRepository struct {
	db      *sql.DB
	timeout time.Duration
}

// NewBillingRepository creates a new billing ledger repository
func NewBillingRepository(db *sql.DB, timeout time.Duration) billing.Repository {
	return &BillingRepository{db: db, timeout: timeout}
}

// ListByUserID retrieves all entries for a user, most-recent-first by paid timestamp
func (r *BillingRepository) ListByUserID(ctx context.Context, userID int64) ([]*billing.Entry, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	start := time.Now()
	defer func() { metrics.RecordDBQuery("select", "billing_history", time.Since(start)) }()

	query := `
		SELECT id, user_id, invoice_id, amount, currency, plan_name,
		       billing_cycle, status, paid_at, created_at
		FROM billing_history
		WHERE user_id = ?
		ORDER BY paid_at DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, storeError("Failed to list billing history", err)
	}
	defer rows.Close()

	var entries []*billing.Entry
	for rows.Next() {
		var e billing.Entry
		var paidAt, createdAt int64

		err := rows.Scan(
			&e.ID, &e.UserID, &e.InvoiceID, &e.Amount, &e.Currency, &e.PlanName,
			&e.BillingCycle, &e.Status, &paidAt, &createdAt,
		)
		if err != nil {
			return nil, storeError("Failed to scan billing entry", err)
		}

		e.PaidAt = time.Unix(paidAt, 0)
		e.CreatedAt = time.Unix(createdAt, 0)
		entries = append(entries, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, storeError("Failed to iterate billing history", err)
	}

	return entries, nil
}

// Append adds a new entry to the ledger
func (r *BillingRepository) Append(ctx context.Context, entry *billing.Entry) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	start := time.Now()
	defer func() { metrics.RecordDBQuery("insert", "billing_history", time.Since(start)) }()

	entry.CreatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, `
		INSERT INTO billing_history
			(user_id, invoice_id, amount, currency, plan_name, billing_cycle,
			 status, paid_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, entry.UserID, entry.InvoiceID, entry.Amount, entry.Currency, entry.PlanName,
		entry.BillingCycle, entry.Status, entry.PaidAt.Unix(), entry.CreatedAt.Unix())
	if err != nil {
		return storeError("Failed to append billing entry", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return storeError("Failed to get billing entry ID", err)
	}

	entry.ID = id
	return nil
}
