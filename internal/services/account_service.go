package services

import (
	"context"
	"fmt"
	"time"

	"github.com/kartiknayak1216/lenso-backend-service/internal/domain/billing"
	"github.com/kartiknayak1216/lenso-backend-service/internal/domain/credit"
	"github.com/kartiknayak1216/lenso-backend-service/internal/domain/subscription"
	"github.com/kartiknayak1216/lenso-backend-service/internal/domain/user"
	"github.com/kartiknayak1216/lenso-backend-service/internal/pkg/errors"
	"github.com/kartiknayak1216/lenso-backend-service/internal/pkg/logger"
	"github.com/kartiknayak1216/lenso-backend-service/internal/pkg/metrics"
)

// FreeMonthlyCredits is the allowance granted to every new user
const FreeMonthlyCredits = 2

// AccountService implements user.Service. Provisioning creates the full
// bundle (user, credit account, subscription, billing entry) in one atomic
// repository operation and is idempotent on the external identifier.
type AccountService struct {
	users  user.Repository
	logger *logger.Logger
	now    func() time.Time
}

// NewAccountService creates a new account provisioning service
func NewAccountService(users user.Repository, log *logger.Logger) *AccountService {
	return &AccountService{
		users:  users,
		logger: log,
		now:    time.Now,
	}
}

// Setup provisions a new user with the default free-plan bundle
func (s *AccountService) Setup(ctx context.Context, externalID, email, name string) (*user.SetupResult, error) {
	if externalID == "" || email == "" {
		return nil, errors.InvalidInput("Missing required user info (userId or email)")
	}

	if _, err := s.users.GetByExternalID(ctx, externalID); err == nil {
		return &user.SetupResult{Created: false}, nil
	} else if !errors.IsNotFound(err) {
		return nil, err
	}

	if name == "" {
		name = user.DefaultName
	}

	now := s.now()
	bundle := &user.Bundle{
		User: &user.User{
			ExternalID: externalID,
			Email:      email,
			Name:       name,
		},
		Account: &credit.Account{
			IsDaily:         false,
			MonthlyAssigned: FreeMonthlyCredits,
			UsageDate:       credit.Day(now),
		},
		Subscription: &subscription.Subscription{
			ProviderSubID:    fmt.Sprintf("free_sub_%s", externalID),
			Plan:             subscription.PlanFree,
			Status:           subscription.StatusActive,
			Duration:         subscription.DurationMonthly,
			Price:            0,
			CurrentPeriodEnd: now.AddDate(0, 1, 0),
		},
		BillingEntry: &billing.Entry{
			InvoiceID:    fmt.Sprintf("free_invoice_%s", externalID),
			Amount:       0,
			Currency:     billing.DefaultCurrency,
			PlanName:     subscription.PlanFree,
			BillingCycle: subscription.DurationMonthly,
			Status:       billing.StatusPaid,
			PaidAt:       now,
		},
	}

	if err := s.users.CreateBundle(ctx, bundle); err != nil {
		// a concurrent setup won the race, the bundle already exists
		if err == user.ErrAlreadyExists {
			return &user.SetupResult{Created: false}, nil
		}
		s.logger.ErrorWithErr(err, "Failed to provision user")
		return nil, err
	}

	metrics.RecordUserProvisioned()
	s.logger.WithFields(map[string]interface{}{
		"user_id":     bundle.User.ID,
		"external_id": externalID,
	}).Info("User created and initialized with free plan")

	return &user.SetupResult{Created: true}, nil
}
