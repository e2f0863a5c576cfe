package handlers

import (
	"net/http"

	"github.com/kartiknayak1216/lenso-backend-service/internal/domain/report"
	"github.com/kartiknayak1216/lenso-backend-service/internal/pkg/logger"
	"github.com/kartiknayak1216/lenso-backend-service/internal/pkg/utils"
)

// ReportHandler handles read-only projection API endpoints
type ReportHandler struct {
	service report.Service
	logger  *logger.Logger
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(service report.Service, log *logger.Logger) *ReportHandler {
	return &ReportHandler{
		service: service,
		logger:  log,
	}
}

// Dashboard returns the usage dashboard for a user
func (h *ReportHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")

	view, err := h.service.Dashboard(r.Context(), userID)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	utils.WriteSuccessWithMessage(w, http.StatusOK, "Dashboard data retrieved successfully", view)
}

// PlanOverview returns the user's plan overview
func (h *ReportHandler) PlanOverview(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")

	view, err := h.service.PlanOverview(r.Context(), userID)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	utils.WriteSuccessWithMessage(w, http.StatusOK, "Plan overview retrieved successfully", view)
}

// BillingHistory returns the user's billing history, most recent first
func (h *ReportHandler) BillingHistory(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")

	views, err := h.service.BillingHistory(r.Context(), userID)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	utils.WriteSuccessWithMessage(w, http.StatusOK, "Billing history retrieved successfully", views)
}
