package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/kartiknayak1216/lenso-backend-service/internal/api/dto"
	"github.com/kartiknayak1216/lenso-backend-service/internal/domain/user"
	"github.com/kartiknayak1216/lenso-backend-service/internal/pkg/errors"
	"github.com/kartiknayak1216/lenso-backend-service/internal/pkg/logger"
	"github.com/kartiknayak1216/lenso-backend-service/internal/pkg/utils"
	"github.com/kartiknayak1216/lenso-backend-service/internal/pkg/validator"
)

// UserHandler handles user provisioning API endpoints
type UserHandler struct {
	service   user.Service
	logger    *logger.Logger
	validator *validator.Validator
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(service user.Service, log *logger.Logger, val *validator.Validator) *UserHandler {
	return &UserHandler{
		service:   service,
		logger:    log,
		validator: val,
	}
}

// Setup provisions a first-time user with the free plan
func (h *UserHandler) Setup(w http.ResponseWriter, r *http.Request) {
	var req dto.SetupUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.InvalidInput("Invalid request body"))
		return
	}

	if errs := h.validator.Validate(req); len(errs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", errs))
		return
	}

	result, err := h.service.Setup(r.Context(), req.UserID, req.Email, req.Name)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	if !result.Created {
		utils.WriteSuccessWithMessage(w, http.StatusOK, "User already exists",
			dto.SetupUserResponse{Created: false})
		return
	}

	utils.WriteSuccessWithMessage(w, http.StatusCreated, "User created and initialized with free plan",
		dto.SetupUserResponse{Created: true})
}
