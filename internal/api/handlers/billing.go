package handlers

import (
	"net/http"

	"github.com/kartiknayak1216/lenso-backend-service/internal/api/dto"
	"github.com/kartiknayak1216/lenso-backend-service/internal/pkg/logger"
	"github.com/kartiknayak1216/lenso-backend-service/internal/pkg/utils"
)

// BillingHandler serves the public plan catalog
type BillingHandler struct {
	logger *logger.Logger
}

// NewBillingHandler creates a new BillingHandler
func NewBillingHandler(log *logger.Logger) *BillingHandler {
	return &BillingHandler{
		logger: log,
	}
}

// ListPlans returns the available subscription plans. The catalog is static;
// plan changes and checkout run through the payment provider, which is not
// wired into this service.
func (h *BillingHandler) ListPlans(w http.ResponseWriter, r *http.Request) {
	plans := []dto.PlanDTO{
		{
			ID:          "free",
			Name:        "Free Plan",
			Description: "Try it out with a small monthly allowance",
			Price:       0,
			Currency:    "USD",
			Interval:    "month",
			Credits:     2,
			Features: []string{
				"2 credits per month",
				"Dashboard and usage stats",
				"Community support",
			},
		},
		{
			ID:           "daily",
			Name:         "Daily Plan",
			Description:  "A fresh allowance every day",
			Price:        9,
			Currency:     "USD",
			Interval:     "month",
			Credits:      10,
			DailyCredits: 10,
			Features: []string{
				"10 credits per day",
				"Daily reset, no rollover",
				"Email support",
			},
			IsPopular: true,
		},
		{
			ID:          "pro",
			Name:        "Pro Plan",
			Description: "For heavy monthly usage",
			Price:       29,
			Currency:    "USD",
			Interval:    "month",
			Credits:     300,
			Features: []string{
				"300 credits per month",
				"Priority support",
				"Usage analytics",
			},
		},
	}

	utils.WriteSuccess(w, http.StatusOK, plans)
}
