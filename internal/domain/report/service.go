package report

import "context"

// Service defines the read-only projection views. None of the operations
// mutate state; all are pure functions of the stored models.
type Service interface {
	// Dashboard computes the usage dashboard for a user. Requires both the
	// subscription and the credit account to be present.
	Dashboard(ctx context.Context, externalID string) (*DashboardView, error)

	// PlanOverview reports the user's plan, allowances, and period end.
	// Requires both the subscription and the credit account to be present.
	PlanOverview(ctx context.Context, externalID string) (*PlanOverviewView, error)

	// BillingHistory returns all billing entries most-recent-first. Requires
	// only that the user exists.
	BillingHistory(ctx context.Context, externalID string) ([]BillingEntryView, error)
}
