package user

import "context"

// Service defines the interface for account provisioning
type Service interface {
	// Setup provisions a new user with the default free-plan bundle. Calling
	// it again for the same identifier is a no-op reporting Created=false.
	Setup(ctx context.Context, externalID, email, name string) (*SetupResult, error)
}
