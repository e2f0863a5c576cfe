package user

import (
	"time"

	"github.com/kartiknayak1216/lenso-backend-service/internal/domain/billing"
	"github.com/kartiknayak1216/lenso-backend-service/internal/domain/credit"
	"github.com/kartiknayak1216/lenso-backend-service/internal/domain/subscription"
)

// User represents a user in the system. ExternalID is the stable identifier
// issued by the identity provider and supplied by the caller on every request.
type User struct {
	ID         int64     `json:"id"`
	ExternalID string    `json:"external_id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// DefaultName is used when provisioning does not receive a display name
const DefaultName = "Anonymous"

// Bundle is the complete aggregate created at provisioning: the user record
// plus its default credit account, subscription, and first billing entry.
// All four are written atomically or not at all.
type Bundle struct {
	User         *User
	Account      *credit.Account
	Subscription *subscription.Subscription
	BillingEntry *billing.Entry
}

// SetupResult reports the outcome of provisioning
type SetupResult struct {
	Created bool `json:"created"`
}
