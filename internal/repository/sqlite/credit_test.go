package sqlite

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/kartiknayak1216/lenso-backend-service/internal/domain/credit"
	"github.com/kartiknayak1216/lenso-backend-service/internal/pkg/errors"
	"github.com/kartiknayak1216/lenso-backend-service/internal/testutil"
)

func seedAccount(t *testing.T, db *sql.DB, a *credit.Account) {
	t.Helper()
	now := time.Now().Unix()
	_, err := db.Exec(`
		INSERT INTO users (id, external_id, email, name, created_at, updated_at)
		VALUES (?, ?, ?, 'Anonymous', ?, ?)
	`, a.UserID, "usr_seed", "seed@example.com", now, now)
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	_, err = db.Exec(`
		INSERT INTO credit_accounts
			(user_id, is_daily, daily_credits_assigned, today_used, usage_date,
			 monthly_credits_assigned, used_credit, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, a.UserID, a.IsDaily, a.DailyAssigned, a.TodayUsed, a.UsageDate,
		a.MonthlyAssigned, a.UsedCredit, now, now)
	if err != nil {
		t.Fatalf("seed credit account: %v", err)
	}
}

func TestCreditRepository_GetByUserID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewCreditRepository(db, 5*time.Second)
	ctx := context.Background()

	seedAccount(t, db, &credit.Account{
		UserID:          1,
		MonthlyAssigned: 100,
		UsedCredit:      40,
		UsageDate:       "2025-03-10",
	})

	acct, err := repo.GetByUserID(ctx, 1)
	if err != nil {
		t.Fatalf("GetByUserID() error = %v", err)
	}
	if acct.MonthlyAssigned != 100 || acct.UsedCredit != 40 {
		t.Errorf("account = %+v, want monthly 100 used 40", acct)
	}

	_, err = repo.GetByUserID(ctx, 999)
	if !errors.IsNotFound(err) {
		t.Errorf("GetByUserID() error = %v, want not found", err)
	}
}

func TestCreditRepository_ApplyDeduction_Monthly(t *testing.T) {
	tests := []struct {
		name     string
		used     int64
		amount   int64
		wantErr  bool
		wantUsed int64
	}{
		{
			name:     "within allowance",
			used:     90,
			amount:   5,
			wantUsed: 95,
		},
		{
			name:     "exact remainder",
			used:     90,
			amount:   10,
			wantUsed: 100,
		},
		{
			name:    "exceeds remainder",
			used:    90,
			amount:  11,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := testutil.NewTestDB(t)
			repo := NewCreditRepository(db, 5*time.Second)
			seedAccount(t, db, &credit.Account{
				UserID:          1,
				MonthlyAssigned: 100,
				UsedCredit:      tt.used,
				UsageDate:       "2025-03-10",
			})

			acct, err := repo.ApplyDeduction(context.Background(), 1, tt.amount, "2025-03-10")
			if (err != nil) != tt.wantErr {
				t.Fatalf("ApplyDeduction() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.IsInsufficientCredits(err) {
					t.Fatalf("error = %v, want insufficient credits", err)
				}
				// failed deduction must not change stored state
				stored, _ := repo.GetByUserID(context.Background(), 1)
				if stored.UsedCredit != tt.used {
					t.Errorf("UsedCredit after failure = %d, want %d", stored.UsedCredit, tt.used)
				}
				return
			}
			if acct.UsedCredit != tt.wantUsed {
				t.Errorf("UsedCredit = %d, want %d", acct.UsedCredit, tt.wantUsed)
			}
		})
	}
}

func TestCreditRepository_ApplyDeduction_DailyRollover(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewCreditRepository(db, 5*time.Second)
	ctx := context.Background()

	seedAccount(t, db, &credit.Account{
		UserID:        1,
		IsDaily:       true,
		DailyAssigned: 10,
		TodayUsed:     10,
		UsageDate:     "2025-03-09",
		UsedCredit:    40,
	})

	// yesterday's exhausted counter restarts today
	acct, err := repo.ApplyDeduction(ctx, 1, 4, "2025-03-10")
	if err != nil {
		t.Fatalf("ApplyDeduction() error = %v", err)
	}
	if acct.TodayUsed != 4 {
		t.Errorf("TodayUsed = %d, want 4", acct.TodayUsed)
	}
	if acct.UsageDate != "2025-03-10" {
		t.Errorf("UsageDate = %q, want %q", acct.UsageDate, "2025-03-10")
	}
	if acct.UsedCredit != 44 {
		t.Errorf("UsedCredit = %d, want 44", acct.UsedCredit)
	}
}

func TestCreditRepository_ApplyDeduction_DailyGuard(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewCreditRepository(db, 5*time.Second)
	ctx := context.Background()

	seedAccount(t, db, &credit.Account{
		UserID:        1,
		IsDaily:       true,
		DailyAssigned: 10,
		TodayUsed:     8,
		UsageDate:     "2025-03-10",
	})

	_, err := repo.ApplyDeduction(ctx, 1, 3, "2025-03-10")
	if !errors.IsInsufficientCredits(err) {
		t.Fatalf("ApplyDeduction() error = %v, want insufficient credits", err)
	}

	stored, err := repo.GetByUserID(ctx, 1)
	if err != nil {
		t.Fatalf("GetByUserID() error = %v", err)
	}
	if stored.TodayUsed != 8 {
		t.Errorf("TodayUsed after failure = %d, want 8", stored.TodayUsed)
	}
}

func TestCreditRepository_ApplyDeduction_MissingAccount(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewCreditRepository(db, 5*time.Second)

	_, err := repo.ApplyDeduction(context.Background(), 42, 1, "2025-03-10")
	if !errors.IsNotFound(err) {
		t.Errorf("ApplyDeduction() error = %v, want not found", err)
	}
}

func TestCreditRepository_ApplyDeduction_Sequential(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewCreditRepository(db, 5*time.Second)
	ctx := context.Background()

	seedAccount(t, db, &credit.Account{
		UserID:          1,
		MonthlyAssigned: 3,
		UsageDate:       "2025-03-10",
	})

	// draining one at a time stops exactly at the allowance
	successes := 0
	for i := 0; i < 5; i++ {
		_, err := repo.ApplyDeduction(ctx, 1, 1, "2025-03-10")
		if err == nil {
			successes++
		} else if !errors.IsInsufficientCredits(err) {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if successes != 3 {
		t.Errorf("successful deductions = %d, want 3", successes)
	}
}
