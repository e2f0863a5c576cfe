package services

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/kartiknayak1216/lenso-backend-service/internal/domain/billing"
	"github.com/kartiknayak1216/lenso-backend-service/internal/domain/credit"
	"github.com/kartiknayak1216/lenso-backend-service/internal/domain/report"
	"github.com/kartiknayak1216/lenso-backend-service/internal/domain/subscription"
	"github.com/kartiknayak1216/lenso-backend-service/internal/domain/user"
	"github.com/kartiknayak1216/lenso-backend-service/internal/pkg/errors"
	"github.com/kartiknayak1216/lenso-backend-service/internal/pkg/logger"
)

// DaysPerPeriod scales a daily allowance up to a monthly total for display
const DaysPerPeriod = 30

// ReportService implements report.Service: pure read-side projections over
// the user, credit, subscription, and billing models. The quota formula is
// the credit ledger's; nothing here mutates state.
type ReportService struct {
	users         user.Repository
	credits       credit.Repository
	subscriptions subscription.Repository
	entries       billing.Repository
	logger        *logger.Logger
	now           func() time.Time
}

// NewReportService creates a new reporting projection service
func NewReportService(
	users user.Repository,
	credits credit.Repository,
	subscriptions subscription.Repository,
	entries billing.Repository,
	log *logger.Logger,
) *ReportService {
	return &ReportService{
		users:         users,
		credits:       credits,
		subscriptions: subscriptions,
		entries:       entries,
		logger:        log,
		now:           time.Now,
	}
}

// Dashboard computes the usage dashboard for a user
func (s *ReportService) Dashboard(ctx context.Context, externalID string) (*report.DashboardView, error) {
	acct, sub, err := s.loadProfile(ctx, externalID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	day := credit.Day(now)
	dayOfMonth := int64(now.Day())

	var totalCredits int64
	if acct.IsDaily {
		totalCredits = acct.DailyAssigned * DaysPerPeriod
	} else {
		totalCredits = acct.MonthlyAssigned
	}

	usedThisMonth := acct.UsedCredit

	view := &report.DashboardView{
		UsedThisMonth:      usedThisMonth,
		RemainingThisMonth: totalCredits - usedThisMonth,
		TotalCredits:       totalCredits,
		AvgPerDay:          round1(float64(usedThisMonth) / float64(dayOfMonth)),
		PercentUsed:        percentUsed(usedThisMonth, totalCredits),
		IsDaily:            acct.IsDaily,
		Plan:               sub.Plan,
		Period:             sub.Duration,
	}

	if acct.IsDaily {
		usedToday := acct.TodayUsedOn(day)
		remainingToday := acct.DailyAssigned - usedToday
		view.UsedToday = &usedToday
		view.RemainingToday = &remainingToday
	}

	return view, nil
}

// PlanOverview reports the user's plan, allowances, and period end
func (s *ReportService) PlanOverview(ctx context.Context, externalID string) (*report.PlanOverviewView, error) {
	acct, sub, err := s.loadProfile(ctx, externalID)
	if err != nil {
		return nil, err
	}

	credits := acct.MonthlyAssigned
	var dailyCredits int64
	if acct.IsDaily {
		credits = acct.DailyAssigned
		dailyCredits = acct.DailyAssigned
	}

	return &report.PlanOverviewView{
		Name:             sub.Plan,
		BillingCycle:     sub.Duration,
		Price:            sub.Price,
		IsActive:         sub.IsActive(),
		IsDaily:          acct.IsDaily,
		IsMonthly:        sub.Duration == subscription.DurationMonthly,
		Credits:          credits,
		DailyCredits:     dailyCredits,
		CurrentPeriodEnd: sub.CurrentPeriodEnd.UTC().Format(time.RFC3339),
		Status:           sub.Status,
	}, nil
}

// BillingHistory returns all billing entries most-recent-first
func (s *ReportService) BillingHistory(ctx context.Context, externalID string) ([]report.BillingEntryView, error) {
	if externalID == "" {
		return nil, errors.InvalidInput("Missing userId")
	}

	u, err := s.users.GetByExternalID(ctx, externalID)
	if err != nil {
		return nil, err
	}

	entries, err := s.entries.ListByUserID(ctx, u.ID)
	if err != nil {
		return nil, err
	}

	views := make([]report.BillingEntryView, len(entries))
	for i, e := range entries {
		views[i] = report.BillingEntryView{
			InvoiceID: e.InvoiceID,
			Amount:    float64(e.Amount) / 100,
			Currency:  strings.ToUpper(e.Currency),
			Plan:      e.PlanName,
			Cycle:     e.BillingCycle,
			Status:    e.Status,
			PaidAt:    e.PaidAt.UTC().Format(time.RFC3339),
		}
	}

	return views, nil
}

// loadProfile loads the user with its credit account and subscription.
// A missing linked entity on an existing user is an incomplete profile,
// not a plain not-found.
func (s *ReportService) loadProfile(ctx context.Context, externalID string) (*credit.Account, *subscription.Subscription, error) {
	if externalID == "" {
		return nil, nil, errors.InvalidInput("Missing userId")
	}

	u, err := s.users.GetByExternalID(ctx, externalID)
	if err != nil {
		return nil, nil, err
	}

	acct, err := s.credits.GetByUserID(ctx, u.ID)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, nil, errors.IncompleteProfile("User subscription or credits not found")
		}
		return nil, nil, err
	}

	sub, err := s.subscriptions.GetByUserID(ctx, u.ID)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, nil, errors.IncompleteProfile("User subscription or credits not found")
		}
		return nil, nil, err
	}

	return acct, sub, nil
}

// round1 rounds to one decimal place
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// percentUsed is defined as 0 when the total allowance is 0
func percentUsed(used, total int64) float64 {
	if total == 0 {
		return 0
	}
	return round1(float64(used) / float64(total) * 100)
}
