package credit

import "time"

// DayFormat is the calendar-day stamp stored next to the daily usage counter.
const DayFormat = "2006-01-02"

// Day returns the calendar-day stamp for t.
func Day(t time.Time) string {
	return t.Format(DayFormat)
}

// Account is the quota state for one user. Exactly one of the two accounting
// modes is active at a time: daily mode bounds TodayUsed by DailyAssigned and
// resets the counter every calendar day, monthly mode bounds UsedCredit by
// MonthlyAssigned for the whole billing period. Daily mode still accumulates
// UsedCredit alongside the daily counter.
type Account struct {
	UserID          int64     `json:"user_id"`
	IsDaily         bool      `json:"is_daily"`
	DailyAssigned   int64     `json:"daily_credits_assigned"`
	TodayUsed       int64     `json:"today_used"`
	UsageDate       string    `json:"usage_date"` // day stamp TodayUsed belongs to
	MonthlyAssigned int64     `json:"monthly_credits_assigned"`
	UsedCredit      int64     `json:"used_credit"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TodayUsedOn returns today's usage as of the given day. A stale UsageDate
// means the counter belongs to an earlier day and logically reads as zero.
func (a *Account) TodayUsedOn(day string) int64 {
	if a.UsageDate != day {
		return 0
	}
	return a.TodayUsed
}

// Remaining computes the remaining quota under the active mode. The result
// can be negative when an allowance was lowered after usage; callers that
// only report status must not assume non-negativity.
func (a *Account) Remaining(day string) int64 {
	if a.IsDaily {
		return a.DailyAssigned - a.TodayUsedOn(day)
	}
	return a.MonthlyAssigned - a.UsedCredit
}
