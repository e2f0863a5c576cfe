package credit

import "context"

// Repository defines the interface for credit account data access
type Repository interface {
	// GetByUserID retrieves the credit account owned by a user
	GetByUserID(ctx context.Context, userID int64) (*Account, error)

	// ApplyDeduction atomically checks the remaining quota for the given day
	// and applies the increment in a single serializable unit: the daily
	// counter is rolled over when its stored day is stale, the sufficiency
	// check and the write see the same snapshot, and no write happens on any
	// failure path. Returns the updated account, a NotFound error when the
	// account is absent, or an InsufficientCredits error carrying the current
	// remaining value when amount exceeds it.
	ApplyDeduction(ctx context.Context, userID int64, amount int64, day string) (*Account, error)
}
