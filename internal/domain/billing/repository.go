package billing

import "context"

// Repository defines the interface for billing ledger data access
type Repository interface {
	// ListByUserID retrieves all entries for a user, most-recent-first by paid timestamp
	ListByUserID(ctx context.Context, userID int64) ([]*Entry, error)

	// Append adds a new entry to the ledger. Entries are never mutated after creation.
	Append(ctx context.Context, entry *Entry) error
}
