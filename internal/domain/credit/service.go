package credit

import "context"

// Status reports whether any credits remain for a user
type Status struct {
	HasCredits  bool  `json:"hasCredits"`
	CreditsLeft int64 `json:"creditsLeft"`
}

// DeductionResult is the outcome of a successful deduction
type DeductionResult struct {
	CreditsLeft int64 `json:"creditsLeft"`
	UsedToday   int64 `json:"usedToday"`
	UsedCredit  int64 `json:"usedCredit"`
}

// Service defines the interface for the credit ledger
type Service interface {
	// Status returns whether any credits remain and the numeric remaining value
	Status(ctx context.Context, externalID string) (*Status, error)

	// Deduct atomically deducts a positive amount from the user's quota
	Deduct(ctx context.Context, externalID string, amount int64) (*DeductionResult, error)
}
