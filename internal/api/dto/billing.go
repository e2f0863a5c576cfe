package dto

// PlanDTO represents a subscription plan in the public catalog
type PlanDTO struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"`
	Currency     string   `json:"currency"`
	Interval     string   `json:"interval"`
	Credits      int64    `json:"credits"`
	DailyCredits int64    `json:"dailyCredits,omitempty"`
	Features     []string `json:"features"`
	IsPopular    bool     `json:"isPopular"`
}
