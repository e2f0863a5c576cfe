package client

// CreditStatus reports whether a user has credits remaining
type CreditStatus struct {
	HasCredits  bool  `json:"hasCredits"`
	CreditsLeft int64 `json:"creditsLeft"`
}

// DeductionResult is the outcome of a successful deduction
type DeductionResult struct {
	CreditsLeft int64 `json:"creditsLeft"`
	UsedToday   int64 `json:"usedToday"`
	UsedCredit  int64 `json:"usedCredit"`
}

// SetupUserRequest provisions a first-time user
type SetupUserRequest struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name,omitempty"`
}

// SetupResult reports whether the setup call created the user
type SetupResult struct {
	Created bool `json:"created"`
}

// Dashboard summarizes the current period's credit usage
type Dashboard struct {
	UsedToday          *int64  `json:"usedToday,omitempty"`
	RemainingToday     *int64  `json:"remainingToday,omitempty"`
	UsedThisMonth      int64   `json:"usedThisMonth"`
	RemainingThisMonth int64   `json:"remainingThisMonth"`
	TotalCredits       int64   `json:"totalCredits"`
	AvgPerDay          float64 `json:"avgPerDay"`
	PercentUsed        float64 `json:"percentUsed"`
	IsDaily            bool    `json:"isDaily"`
	Plan               string  `json:"plan"`
	Period             string  `json:"period"`
}

// PlanOverview describes the user's current plan and allowances
type PlanOverview struct {
	Name             string  `json:"name"`
	BillingCycle     string  `json:"billingCycle"`
	Price            float64 `json:"price"`
	IsActive         bool    `json:"isActive"`
	IsDaily          bool    `json:"isDaily"`
	IsMonthly        bool    `json:"isMonthly"`
	Credits          int64   `json:"credits"`
	DailyCredits     int64   `json:"dailyCredits"`
	CurrentPeriodEnd string  `json:"currentPeriodEnd"`
	Status           string  `json:"status"`
}

// BillingEntry is one billing ledger record formatted for display
type BillingEntry struct {
	InvoiceID string  `json:"invoiceId"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Plan      string  `json:"plan"`
	Cycle     string  `json:"cycle"`
	Status    string  `json:"status"`
	PaidAt    string  `json:"paidAt"`
}

// Plan is one entry in the public plan catalog
type Plan struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"`
	Currency     string   `json:"currency"`
	Interval     string   `json:"interval"`
	Credits      int64    `json:"credits"`
	DailyCredits int64    `json:"dailyCredits,omitempty"`
	Features     []string `json:"features"`
	IsPopular    bool     `json:"isPopular,omitempty"`
}

// HealthStatus is the liveness/readiness probe payload
type HealthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
}
