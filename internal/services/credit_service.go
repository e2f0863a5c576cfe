package services

import (
	"context"
	"time"

	"github.com/kartiknayak1216/lenso-backend-service/internal/domain/credit"
	"github.com/kartiknayak1216/lenso-backend-service/internal/domain/user"
	"github.com/kartiknayak1216/lenso-backend-service/internal/pkg/errors"
	"github.com/kartiknayak1216/lenso-backend-service/internal/pkg/logger"
	"github.com/kartiknayak1216/lenso-backend-service/internal/pkg/metrics"
)

// CreditService implements credit.Service, the credit ledger. It computes the
// remaining quota under the account's active mode and performs the atomic
// no-overdraw deduction. All writes go through the repository's conditional
// update; this service never mutates an account it has read.
type CreditService struct {
	users   user.Repository
	credits credit.Repository
	logger  *logger.Logger
	now     func() time.Time
}

// NewCreditService creates a new credit ledger service
func NewCreditService(users user.Repository, credits credit.Repository, log *logger.Logger) *CreditService {
	return &CreditService{
		users:   users,
		credits: credits,
		logger:  log,
		now:     time.Now,
	}
}

// Status returns whether any credits remain and the numeric remaining value
func (s *CreditService) Status(ctx context.Context, externalID string) (*credit.Status, error) {
	if externalID == "" {
		return nil, errors.InvalidInput("Missing userId")
	}

	u, err := s.users.GetByExternalID(ctx, externalID)
	if err != nil {
		return nil, err
	}

	acct, err := s.credits.GetByUserID(ctx, u.ID)
	if err != nil {
		return nil, err
	}

	remaining := acct.Remaining(credit.Day(s.now()))
	return &credit.Status{
		HasCredits:  remaining > 0,
		CreditsLeft: remaining,
	}, nil
}

// Deduct atomically deducts a positive amount from the user's quota. In daily
// mode both the daily counter and the cumulative total advance; in monthly
// mode only the cumulative total does. Exactly one durable increment happens
// on success and none on any failure path.
func (s *CreditService) Deduct(ctx context.Context, externalID string, amount int64) (*credit.DeductionResult, error) {
	if externalID == "" || amount <= 0 {
		return nil, errors.InvalidInput("Missing or invalid userId or amount")
	}

	u, err := s.users.GetByExternalID(ctx, externalID)
	if err != nil {
		return nil, err
	}

	day := credit.Day(s.now())
	acct, err := s.credits.ApplyDeduction(ctx, u.ID, amount, day)
	if err != nil {
		switch {
		case errors.IsInsufficientCredits(err):
			metrics.RecordDeduction(metrics.OutcomeInsufficient, amount)
		case errors.IsNotFound(err):
			// no metric, the account never existed
		default:
			metrics.RecordDeduction(metrics.OutcomeError, amount)
			s.logger.ErrorWithErr(err, "Failed to deduct credits")
		}
		return nil, err
	}

	metrics.RecordDeduction(metrics.OutcomeSuccess, amount)
	s.logger.WithFields(map[string]interface{}{
		"user_id": u.ID,
		"amount":  amount,
		"left":    acct.Remaining(day),
	}).Info("Credits deducted")

	return &credit.DeductionResult{
		CreditsLeft: acct.Remaining(day),
		UsedToday:   acct.TodayUsedOn(day),
		UsedCredit:  acct.UsedCredit,
	}, nil
}
