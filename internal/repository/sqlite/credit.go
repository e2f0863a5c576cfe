package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/kartiknayak1216/lenso-backend-service/internal/domain/credit"
	"github.com/kartiknayak1216/lenso-backend-service/internal/pkg/errors"
	"github.com/kartiknayak1216/lenso-backend-service/internal/pkg/metrics"
)

// CreditRepository implements credit.Repository
type CreditRepository struct {
	db      *sql.DB
	timeout time.Duration
}

// NewCreditRepository creates a new credit account repository
func NewCreditRepository(db *sql.DB, timeout time.Duration) credit.Repository {
	return &CreditRepository{db: db, timeout: timeout}
}

const selectAccount = `
	SELECT user_id, is_daily, daily_credits_assigned, today_used, usage_date,
	       monthly_credits_assigned, used_credit, created_at, updated_at
	FROM credit_accounts WHERE user_id = ?
`

// GetByUserID retrieves the credit account owned by a user
func (r *CreditRepository) GetByUserID(ctx context.Context, userID int64) (*credit.Account, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	start := time.Now()
	defer func() { metrics.RecordDBQuery("select", "credit_accounts", time.Since(start)) }()

	acct, err := scanAccount(r.db.QueryRowContext(ctx, selectAccount, userID))
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("Credits")
	}
	if err != nil {
		return nil, storeError("Failed to get credit account", err)
	}
	return acct, nil
}

// ApplyDeduction performs the read-check-write sequence as one serializable
// unit. The daily counter is rolled over to the given day first, then a
// conditional UPDATE guarded by the mode's allowance applies the increment;
// zero rows affected means the sufficiency check failed against the same
// snapshot the guard evaluated. Nothing is written on any failure path.
func (r *CreditRepository) ApplyDeduction(ctx context.Context, userID int64, amount int64, day string) (*credit.Account, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	start := time.Now()
	defer func() { metrics.RecordDBQuery("update", "credit_accounts", time.Since(start)) }()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, storeError("Failed to begin transaction", err)
	}
	defer tx.Rollback()

	acct, err := scanAccount(tx.QueryRowContext(ctx, selectAccount, userID))
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("Credits")
	}
	if err != nil {
		return nil, storeError("Failed to get credit account", err)
	}

	// stale day stamp: today's counter logically restarts at zero
	if acct.IsDaily && acct.UsageDate != day {
		if _, err := tx.ExecContext(ctx, `
			UPDATE credit_accounts SET today_used = 0, usage_date = ?
			WHERE user_id = ?
		`, day, userID); err != nil {
			return nil, storeError("Failed to roll over daily usage", err)
		}
		acct.TodayUsed = 0
		acct.UsageDate = day
	}

	now := time.Now().Unix()
	var result sql.Result
	if acct.IsDaily {
		result, err = tx.ExecContext(ctx, `
			UPDATE credit_accounts
			SET today_used = today_used + ?, used_credit = used_credit + ?, updated_at = ?
			WHERE user_id = ? AND daily_credits_assigned - today_used >= ?
		`, amount, amount, now, userID, amount)
	} else {
		result, err = tx.ExecContext(ctx, `
			UPDATE credit_accounts
			SET used_credit = used_credit + ?, updated_at = ?
			WHERE user_id = ? AND monthly_credits_assigned - used_credit >= ?
		`, amount, now, userID, amount)
	}
	if err != nil {
		return nil, storeError("Failed to deduct credits", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, storeError("Failed to get affected rows", err)
	}
	if rows == 0 {
		return nil, errors.InsufficientCredits(acct.Remaining(day))
	}

	updated, err := scanAccount(tx.QueryRowContext(ctx, selectAccount, userID))
	if err != nil {
		return nil, storeError("Failed to reload credit account", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, storeError("Failed to commit deduction", err)
	}

	return updated, nil
}

// rowScanner covers both *sql.Row and rows from a transaction
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAccount(row rowScanner) (*credit.Account, error) {
	var a credit.Account
	var createdAt, updatedAt int64

	err := row.Scan(
		&a.UserID, &a.IsDaily, &a.DailyAssigned, &a.TodayUsed, &a.UsageDate,
		&a.MonthlyAssigned, &a.UsedCredit, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	a.CreatedAt = time.Unix(createdAt, 0)
	a.UpdatedAt = time.Unix(updatedAt, 0)
	return &a, nil
}
