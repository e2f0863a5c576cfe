package subscription

import "context"

// Repository defines the interface for subscription data access
type Repository interface {
	// GetByUserID retrieves the active subscription owned by a user
	GetByUserID(ctx context.Context, userID int64) (*Subscription, error)
}
