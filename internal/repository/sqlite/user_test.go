package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/kartiknayak1216/lenso-backend-service/internal/domain/billing"
	"github.com/kartiknayak1216/lenso-backend-service/internal/domain/credit"
	"github.com/kartiknayak1216/lenso-backend-service/internal/domain/subscription"
	"github.com/kartiknayak1216/lenso-backend-service/internal/domain/user"
	"github.com/kartiknayak1216/lenso-backend-service/internal/pkg/errors"
	"github.com/kartiknayak1216/lenso-backend-service/internal/testutil"
)

func freeBundle(externalID string) *user.Bundle {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	return &user.Bundle{
		User: &user.User{
			ExternalID: externalID,
			Email:      externalID + "@example.com",
			Name:       user.DefaultName,
		},
		Account: &credit.Account{
			MonthlyAssigned: 2,
			UsageDate:       credit.Day(now),
		},
		Subscription: &subscription.Subscription{
			ProviderSubID:    "free_sub_" + externalID,
			Plan:             subscription.PlanFree,
			Status:           subscription.StatusActive,
			Duration:         subscription.DurationMonthly,
			CurrentPeriodEnd: now.AddDate(0, 1, 0),
		},
		BillingEntry: &billing.Entry{
			InvoiceID:    "free_invoice_" + externalID,
			Currency:     billing.DefaultCurrency,
			PlanName:     subscription.PlanFree,
			BillingCycle: subscription.DurationMonthly,
			Status:       billing.StatusPaid,
			PaidAt:       now,
		},
	}
}

func TestUserRepository_CreateBundle(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewUserRepository(db, 5*time.Second)
	ctx := context.Background()

	b := freeBundle("usr_1")
	if err := repo.CreateBundle(ctx, b); err != nil {
		t.Fatalf("CreateBundle() error = %v", err)
	}
	if b.User.ID == 0 {
		t.Error("user ID not assigned")
	}

	// all four rows must exist and share the user ID
	tables := map[string]string{
		"users":           "SELECT COUNT(*) FROM users WHERE id = ?",
		"credit_accounts": "SELECT COUNT(*) FROM credit_accounts WHERE user_id = ?",
		"subscriptions":   "SELECT COUNT(*) FROM subscriptions WHERE user_id = ?",
		"billing_history": "SELECT COUNT(*) FROM billing_history WHERE user_id = ?",
	}
	for table, query := range tables {
		var count int
		if err := db.QueryRow(query, b.User.ID).Scan(&count); err != nil {
			t.Fatalf("count %s: %v", table, err)
		}
		if count != 1 {
			t.Errorf("%s rows = %d, want 1", table, count)
		}
	}
}

func TestUserRepository_CreateBundle_Duplicate(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewUserRepository(db, 5*time.Second)
	ctx := context.Background()

	if err := repo.CreateBundle(ctx, freeBundle("usr_1")); err != nil {
		t.Fatalf("CreateBundle() error = %v", err)
	}

	err := repo.CreateBundle(ctx, freeBundle("usr_1"))
	if err != user.ErrAlreadyExists {
		t.Fatalf("CreateBundle() error = %v, want ErrAlreadyExists", err)
	}

	// the losing insert must leave no partial rows behind
	var users, accounts int
	db.QueryRow("SELECT COUNT(*) FROM users").Scan(&users)
	db.QueryRow("SELECT COUNT(*) FROM credit_accounts").Scan(&accounts)
	if users != 1 || accounts != 1 {
		t.Errorf("users = %d, credit_accounts = %d, want 1 each", users, accounts)
	}
}

func TestUserRepository_GetByExternalID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewUserRepository(db, 5*time.Second)
	ctx := context.Background()

	if err := repo.CreateBundle(ctx, freeBundle("usr_1")); err != nil {
		t.Fatalf("CreateBundle() error = %v", err)
	}

	u, err := repo.GetByExternalID(ctx, "usr_1")
	if err != nil {
		t.Fatalf("GetByExternalID() error = %v", err)
	}
	if u.Email != "usr_1@example.com" {
		t.Errorf("Email = %q, want %q", u.Email, "usr_1@example.com")
	}

	_, err = repo.GetByExternalID(ctx, "usr_missing")
	if !errors.IsNotFound(err) {
		t.Errorf("GetByExternalID() error = %v, want not found", err)
	}
}
