package report

// DashboardView summarizes the current period's credit usage for display
type DashboardView struct {
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

// PlanOverviewView describes the user's current plan and allowances
type PlanOverviewView struct {
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

// BillingEntryView is one billing ledger entry formatted for display:
// amount in major currency units, currency upper-cased, RFC 3339 timestamp.
type BillingEntryView struct {
	InvoiceID string  `json:"invoiceId"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Plan      string  `json:"plan"`
	Cycle     string  `json:"cycle"`
	Status    string  `json:"status"`
	PaidAt    string  `json:"paidAt"`
}
