package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/kartiknayak1216/lenso-backend-service/internal/api/dto"
	"github.com/kartiknayak1216/lenso-backend-service/internal/domain/credit"
	"github.com/kartiknayak1216/lenso-backend-service/internal/pkg/errors"
	"github.com/kartiknayak1216/lenso-backend-service/internal/pkg/logger"
	"github.com/kartiknayak1216/lenso-backend-service/internal/pkg/utils"
	"github.com/kartiknayak1216/lenso-backend-service/internal/pkg/validator"
)

// CreditHandler handles credit ledger API endpoints
type CreditHandler struct {
	service   credit.Service
	logger    *logger.Logger
	validator *validator.Validator
}

// NewCreditHandler creates a new CreditHandler
func NewCreditHandler(service credit.Service, log *logger.Logger, val *validator.Validator) *CreditHandler {
	return &CreditHandler{
		service:   service,
		logger:    log,
		validator: val,
	}
}

// Status returns whether the user has any credits remaining
func (h *CreditHandler) Status(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")

	status, err := h.service.Status(r.Context(), userID)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	message := "Credits available"
	if !status.HasCredits {
		message = "No available credits"
	}
	utils.WriteSuccessWithMessage(w, http.StatusOK, message, status)
}

// Deduct deducts credits from the user's balance
func (h *CreditHandler) Deduct(w http.ResponseWriter, r *http.Request) {
	var req dto.DeductCreditsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.InvalidInput("Invalid request body"))
		return
	}

	if errs := h.validator.Validate(req); len(errs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", errs))
		return
	}

	result, err := h.service.Deduct(r.Context(), req.UserID, req.Amount)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	utils.WriteSuccessWithMessage(w, http.StatusOK, "Credits deducted successfully", result)
}
