package subscription

import "time"

// Subscription holds the plan and billing metadata for one user
type Subscription struct {
	ID               int64     `json:"id"`
	UserID           int64     `json:"user_id"`
	ProviderSubID    string    `json:"provider_sub_id"`
	Plan             string    `json:"plan"`
	Status           string    `json:"status"`
	Duration         string    `json:"duration"`
	Price            float64   `json:"price"`
	CurrentPeriodEnd time.Time `json:"current_period_end"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Subscription statuses
const (
	StatusActive   = "active"
	StatusCanceled = "canceled"
	StatusPastDue  = "past_due"
)

// Billing durations
const (
	DurationMonthly = "monthly"
	DurationYearly  = "yearly"
)

// PlanFree is the default plan assigned at provisioning
const PlanFree = "Free Plan"

// IsActive reports whether the subscription is currently active
func (s *Subscription) IsActive() bool {
	return s.Status == StatusActive
}
