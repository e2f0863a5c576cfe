package services

import (
	"context"
	"testing"

	"github.com/kartiknayak1216/lenso-backend-service/internal/domain/billing"
	"github.com/kartiknayak1216/lenso-backend-service/internal/domain/subscription"
	"github.com/kartiknayak1216/lenso-backend-service/internal/domain/user"
	"github.com/kartiknayak1216/lenso-backend-service/internal/pkg/errors"
	"github.com/kartiknayak1216/lenso-backend-service/internal/pkg/logger"
	"github.com/kartiknayak1216/lenso-backend-service/internal/testutil"
)

func newAccountFixture(t *testing.T) (*AccountService, *testutil.MockUserRepository) {
	t.Helper()
	userRepo := testutil.NewMockUserRepository()
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	service := NewAccountService(userRepo, log)
	service.now = fixedNow
	return service, userRepo
}

func TestAccountService_Setup(t *testing.T) {
	tests := []struct {
		name        string
		externalID  string
		email       string
		displayName string
		wantErr     bool
		wantCreated bool
	}{
		{
			name:        "new user",
			externalID:  "usr_1",
			email:       "a@b.com",
			displayName: "Alice",
			wantCreated: true,
		},
		{
			name:       "missing userId",
			email:      "a@b.com",
			wantErr:    true,
		},
		{
			name:       "missing email",
			externalID: "usr_1",
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newAccountFixture(t)
			result, err := service.Setup(context.Background(), tt.externalID, tt.email, tt.displayName)

			if (err != nil) != tt.wantErr {
				t.Errorf("Setup() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if result.Created != tt.wantCreated {
				t.Errorf("Created = %v, want %v", result.Created, tt.wantCreated)
			}
		})
	}
}

func TestAccountService_Setup_Idempotent(t *testing.T) {
	service, userRepo := newAccountFixture(t)
	ctx := context.Background()

	first, err := service.Setup(ctx, "usr_1", "a@b.com", "Alice")
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	if !first.Created {
		t.Fatal("first Setup() Created = false, want true")
	}

	second, err := service.Setup(ctx, "usr_1", "a@b.com", "Alice")
	if err != nil {
		t.Fatalf("second Setup() error = %v", err)
	}
	if second.Created {
		t.Error("second Setup() Created = true, want false")
	}
	if len(userRepo.Bundles) != 1 {
		t.Errorf("bundles created = %d, want exactly 1", len(userRepo.Bundles))
	}
}

func TestAccountService_Setup_RaceLoser(t *testing.T) {
	service, userRepo := newAccountFixture(t)

	// the presence check misses but the insert hits an existing row,
	// as when a concurrent setup commits in between
	userRepo.AddUser(&user.User{ExternalID: "usr_1", Email: "a@b.com"})
	userRepo.GetError = errors.NotFound("User")

	result, err := service.Setup(context.Background(), "usr_1", "a@b.com", "")
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	if result.Created {
		t.Error("Created = true, want false for already provisioned user")
	}
}

func TestAccountService_Setup_Defaults(t *testing.T) {
	service, userRepo := newAccountFixture(t)
	now := fixedNow()

	if _, err := service.Setup(context.Background(), "usr_1", "a@b.com", ""); err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	if len(userRepo.Bundles) != 1 {
		t.Fatalf("bundles created = %d, want 1", len(userRepo.Bundles))
	}
	b := userRepo.Bundles[0]

	if b.User.Name != user.DefaultName {
		t.Errorf("Name = %q, want %q", b.User.Name, user.DefaultName)
	}

	if b.Account.IsDaily {
		t.Error("new account should be in monthly mode")
	}
	if b.Account.MonthlyAssigned != FreeMonthlyCredits {
		t.Errorf("MonthlyAssigned = %d, want %d", b.Account.MonthlyAssigned, FreeMonthlyCredits)
	}
	if b.Account.UsedCredit != 0 || b.Account.TodayUsed != 0 {
		t.Error("usage counters should start at zero")
	}

	sub := b.Subscription
	if sub.ProviderSubID != "free_sub_usr_1" {
		t.Errorf("ProviderSubID = %q, want %q", sub.ProviderSubID, "free_sub_usr_1")
	}
	if sub.Plan != subscription.PlanFree {
		t.Errorf("Plan = %q, want %q", sub.Plan, subscription.PlanFree)
	}
	if sub.Status != subscription.StatusActive {
		t.Errorf("Status = %q, want %q", sub.Status, subscription.StatusActive)
	}
	if sub.Duration != subscription.DurationMonthly {
		t.Errorf("Duration = %q, want %q", sub.Duration, subscription.DurationMonthly)
	}
	if sub.Price != 0 {
		t.Errorf("Price = %v, want 0", sub.Price)
	}
	wantEnd := now.AddDate(0, 1, 0)
	if !sub.CurrentPeriodEnd.Equal(wantEnd) {
		t.Errorf("CurrentPeriodEnd = %v, want %v", sub.CurrentPeriodEnd, wantEnd)
	}

	entry := b.BillingEntry
	if entry.InvoiceID != "free_invoice_usr_1" {
		t.Errorf("InvoiceID = %q, want %q", entry.InvoiceID, "free_invoice_usr_1")
	}
	if entry.Amount != 0 {
		t.Errorf("Amount = %d, want 0", entry.Amount)
	}
	if entry.Currency != billing.DefaultCurrency {
		t.Errorf("Currency = %q, want %q", entry.Currency, billing.DefaultCurrency)
	}
	if entry.Status != billing.StatusPaid {
		t.Errorf("Status = %q, want %q", entry.Status, billing.StatusPaid)
	}
}
