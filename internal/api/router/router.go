package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kartiknayak1216/lenso-backend-service/internal/api/handlers"
	"github.com/kartiknayak1216/lenso-backend-service/internal/api/middleware"
	"github.com/kartiknayak1216/lenso-backend-service/internal/config"
	"github.com/kartiknayak1216/lenso-backend-service/internal/pkg/errors"
	"github.com/kartiknayak1216/lenso-backend-service/internal/pkg/logger"
	"github.com/kartiknayak1216/lenso-backend-service/internal/pkg/metrics"
	"github.com/kartiknayak1216/lenso-backend-service/internal/pkg/utils"
)

// Handlers groups all HTTP handlers wired into the router
type Handlers struct {
	Health  *handlers.HealthHandler
	Credit  *handlers.CreditHandler
	User    *handlers.UserHandler
	Report  *handlers.ReportHandler
	Billing *handlers.BillingHandler
}

// New builds the HTTP handler tree
func New(cfg *config.Config, log *logger.Logger, h *Handlers) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recovery(log))
	r.Use(middleware.DefaultCORS(cfg.Server.FrontendURL))
	r.Use(middleware.RateLimit(cfg.Limits.RequestsPerSecond, cfg.Limits.Burst))
	r.Use(metrics.Middleware)

	// Health checks and metrics
	r.Get("/health", h.Health.Healthz)
	r.Get("/healthz", h.Health.Healthz)
	r.Get("/readyz", h.Health.Readyz)
	r.Handle("/metrics", metrics.Handler())

	// User-facing API
	r.Route("/api/user", func(r chi.Router) {
		r.Get("/credit-status", h.Credit.Status)
		r.Get("/dashboard", h.Report.Dashboard)
		r.Get("/plan-overview", h.Report.PlanOverview)
		r.Get("/billing-history", h.Report.BillingHistory)
		r.Post("/setup", h.User.Setup)
		r.Post("/deduct-credits", h.Credit.Deduct)
	})

	// Plan catalog
	r.Get("/api/billing/plans", h.Billing.ListPlans)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, errors.NotFound("Route"))
	})

	return r
}
