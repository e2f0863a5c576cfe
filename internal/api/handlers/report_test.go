package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kartiknayak1216/lenso-backend-service/internal/domain/credit"
	"github.com/kartiknayak1216/lenso-backend-service/internal/domain/subscription"
	"github.com/kartiknayak1216/lenso-backend-service/internal/domain/user"
	"github.com/kartiknayak1216/lenso-backend-service/internal/pkg/logger"
	"github.com/kartiknayak1216/lenso-backend-service/internal/services"
	"github.com/kartiknayak1216/lenso-backend-service/internal/testutil"
)

type reportHandlerFixture struct {
	handler       *ReportHandler
	users         *testutil.MockUserRepository
	credits       *testutil.MockCreditRepository
	subscriptions *testutil.MockSubscriptionRepository
	entries       *testutil.MockBillingRepository
}

func newReportHandler(t *testing.T) *reportHandlerFixture {
	t.Helper()
	f := &reportHandlerFixture{
		users:         testutil.NewMockUserRepository(),
		credits:       testutil.NewMockCreditRepository(),
		subscriptions: testutil.NewMockSubscriptionRepository(),
		entries:       testutil.NewMockBillingRepository(),
	}
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	service := services.NewReportService(f.users, f.credits, f.subscriptions, f.entries, log)
	f.handler = NewReportHandler(service, log)
	return f
}

func (f *reportHandlerFixture) seedProfile() {
	f.users.AddUser(&user.User{ID: 1, ExternalID: "usr_1", Email: "a@b.com"})
	f.credits.SetAccount(&credit.Account{
		UserID:          1,
		MonthlyAssigned: 100,
		UsedCredit:      25,
		UsageDate:       credit.Day(time.Now()),
	})
	f.subscriptions.Subscriptions[1] = &subscription.Subscription{
		ID:       1,
		UserID:   1,
		Plan:     subscription.PlanFree,
		Status:   subscription.StatusActive,
		Duration: subscription.DurationMonthly,
	}
}

func TestReportHandler_Dashboard(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		seed           func(*reportHandlerFixture)
		expectedStatus int
	}{
		{
			name:           "complete profile",
			query:          "?userId=usr_1",
			seed:           func(f *reportHandlerFixture) { f.seedProfile() },
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing userId",
			query:          "",
			seed:           func(f *reportHandlerFixture) { f.seedProfile() },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown user",
			query:          "?userId=usr_missing",
			seed:           func(f *reportHandlerFixture) { f.seedProfile() },
			expectedStatus: http.StatusNotFound,
		},
		{
			name:  "user without subscription",
			query: "?userId=usr_1",
			seed: func(f *reportHandlerFixture) {
				f.users.AddUser(&user.User{ID: 1, ExternalID: "usr_1", Email: "a@b.com"})
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newReportHandler(t)
			tt.seed(f)

			req := httptest.NewRequest(http.MethodGet, "/api/user/dashboard"+tt.query, nil)
			rr := httptest.NewRecorder()

			f.handler.Dashboard(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Errorf("status code = %d, want %d (body %s)", rr.Code, tt.expectedStatus, rr.Body.String())
			}
		})
	}
}

func TestReportHandler_PlanOverview(t *testing.T) {
	f := newReportHandler(t)
	f.seedProfile()

	req := httptest.NewRequest(http.MethodGet, "/api/user/plan-overview?userId=usr_1", nil)
	rr := httptest.NewRecorder()
	f.handler.PlanOverview(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusOK)
	}

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Name     string `json:"name"`
			IsActive bool   `json:"isActive"`
			Credits  int64  `json:"credits"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data.Name != subscription.PlanFree || !resp.Data.IsActive || resp.Data.Credits != 100 {
		t.Errorf("data = %+v, want Free Plan active with 100 credits", resp.Data)
	}
}

func TestReportHandler_BillingHistory(t *testing.T) {
	f := newReportHandler(t)
	f.users.AddUser(&user.User{ID: 1, ExternalID: "usr_1", Email: "a@b.com"})

	req := httptest.NewRequest(http.MethodGet, "/api/user/billing-history?userId=usr_1", nil)
	rr := httptest.NewRecorder()
	f.handler.BillingHistory(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusOK)
	}

	var resp struct {
		Success bool              `json:"success"`
		Data    []json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Data) != 0 {
		t.Errorf("entries = %d, want 0", len(resp.Data))
	}
}
