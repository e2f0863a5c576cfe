package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kartiknayak1216/lenso-backend-service/internal/pkg/logger"
	"github.com/kartiknayak1216/lenso-backend-service/internal/pkg/validator"
	"github.com/kartiknayak1216/lenso-backend-service/internal/services"
	"github.com/kartiknayak1216/lenso-backend-service/internal/testutil"
)

func newUserHandler(t *testing.T) (*UserHandler, *testutil.MockUserRepository) {
	t.Helper()
	userRepo := testutil.NewMockUserRepository()
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	service := services.NewAccountService(userRepo, log)
	return NewUserHandler(service, log, validator.New()), userRepo
}

func TestUserHandler_Setup(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
	}{
		{
			name:           "new user",
			body:           `{"userId":"usr_1","email":"a@b.com","name":"Alice"}`,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing userId",
			body:           `{"email":"a@b.com"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing email",
			body:           `{"userId":"usr_1"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid email",
			body:           `{"userId":"usr_1","email":"not-an-email"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed body",
			body:           `{{`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _ := newUserHandler(t)

			req := httptest.NewRequest(http.MethodPost, "/api/user/setup",
				bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			handler.Setup(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Errorf("status code = %d, want %d (body %s)", rr.Code, tt.expectedStatus, rr.Body.String())
			}
		})
	}
}

func TestUserHandler_Setup_Idempotent(t *testing.T) {
	handler, userRepo := newUserHandler(t)
	body := `{"userId":"usr_1","email":"a@b.com"}`

	first := httptest.NewRecorder()
	handler.Setup(first, httptest.NewRequest(http.MethodPost, "/api/user/setup", bytes.NewBufferString(body)))
	if first.Code != http.StatusCreated {
		t.Fatalf("first setup status = %d, want %d", first.Code, http.StatusCreated)
	}

	second := httptest.NewRecorder()
	handler.Setup(second, httptest.NewRequest(http.MethodPost, "/api/user/setup", bytes.NewBufferString(body)))
	if second.Code != http.StatusOK {
		t.Fatalf("second setup status = %d, want %d", second.Code, http.StatusOK)
	}

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Data    struct {
			Created bool `json:"created"`
		} `json:"data"`
	}
	if err := json.NewDecoder(second.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Message != "User already exists" {
		t.Errorf("message = %q, want %q", resp.Message, "User already exists")
	}
	if resp.Data.Created {
		t.Error("created = true, want false")
	}
	if len(userRepo.Bundles) != 1 {
		t.Errorf("bundles created = %d, want 1", len(userRepo.Bundles))
	}
}
