package user

import "context"

// Repository defines the interface for user data access
type Repository interface {
	// GetByExternalID retrieves a user by its identity-provider identifier
	GetByExternalID(ctx context.Context, externalID string) (*User, error)

	// CreateBundle atomically creates a user together with its default credit
	// account, subscription, and initial billing entry. Partial bundles must
	// never be observable. A bundle for an existing external identifier fails
	// with a conflict that callers treat as already provisioned.
	CreateBundle(ctx context.Context, b *Bundle) error
}

// ErrAlreadyExists is returned by CreateBundle when a user with the same
// external identifier was created concurrently.
type alreadyExistsError struct{}

func (alreadyExistsError) Error() string { return "user already exists" }

// ErrAlreadyExists is the sentinel conflict error for CreateBundle
var ErrAlreadyExists error = alreadyExistsError{}
