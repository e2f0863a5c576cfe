package billing

import "time"

// Entry is one append-only billing ledger record. Amount is stored in integer
// minor-currency units; display formatting converts to major units.
type Entry struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	InvoiceID    string    `json:"invoice_id"`
	Amount       int64     `json:"amount"`
	Currency     string    `json:"currency"`
	PlanName     string    `json:"plan_name"`
	BillingCycle string    `json:"billing_cycle"`
	Status       string    `json:"status"`
	PaidAt       time.Time `json:"paid_at"`
	CreatedAt    time.Time `json:"created_at"`
}

// Entry statuses
const (
	StatusPaid   = "paid"
	StatusOpen   = "open"
	StatusFailed = "failed"
)

// DefaultCurrency is used when a payment provider does not supply one
const DefaultCurrency = "usd"
