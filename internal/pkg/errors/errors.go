package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError represents an application error with additional context
type AppError struct {
	Code       string      `json:"code"`
	Message    string      `json:"message"`
	StatusCode int         `json:"-"`
	Internal   error       `json:"-"`
	Details    interface{} `json:"details,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Internal)
	}
	return e.Message
}

// Unwrap returns the internal error for errors.Is and errors.As
func (e *AppError) Unwrap() error {
	return e.Internal
}

// Common error codes
const (
	ErrCodeInternal            = "INTERNAL_ERROR"
	ErrCodeInvalidInput        = "INVALID_INPUT"
	ErrCodeNotFound            = "NOT_FOUND"
	ErrCodeIncompleteProfile   = "INCOMPLETE_PROFILE"
	ErrCodeInsufficientCredits = "INSUFFICIENT_CREDITS"
	ErrCodeStoreUnavailable    = "STORE_UNAVAILABLE"
	ErrCodeValidation          = "VALIDATION_ERROR"
	ErrCodeRateLimited         = "RATE_LIMITED"
)

// New creates a new AppError
func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

// Wrap wraps an error with an AppError
func Wrap(err error, code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Internal:   err,
	}
}

// WithDetails adds details to an AppError
func (e *AppError) WithDetails(details interface{}) *AppError {
	e.Details = details
	return e
}

// Common error constructors

// Internal creates an internal server error
func Internal(message string, err error) *AppError {
	return Wrap(err, ErrCodeInternal, message, http.StatusInternalServerError)
}

// InvalidInput creates an error for missing or malformed required fields
func InvalidInput(message string) *AppError {
	return New(ErrCodeInvalidInput, message, http.StatusBadRequest)
}

// NotFound creates a not found error
func NotFound(resource string) *AppError {
	return New(ErrCodeNotFound, fmt.Sprintf("%s not found", resource), http.StatusNotFound)
}

// IncompleteProfile signals that a user exists but lacks a required linked entity
func IncompleteProfile(message string) *AppError {
	return New(ErrCodeIncompleteProfile, message, http.StatusBadRequest)
}

// InsufficientCredits carries the current remaining balance so callers can display it
func InsufficientCredits(remaining int64) *AppError {
	return New(ErrCodeInsufficientCredits, "Insufficient credits", http.StatusBadRequest).
		WithDetails(map[string]int64{"creditsLeft": remaining})
}

// StoreUnavailable creates a transient store failure that is safe to retry
func StoreUnavailable(message string, err error) *AppError {
	return Wrap(err, ErrCodeStoreUnavailable, message, http.StatusServiceUnavailable)
}

// ValidationError creates a validation error
func ValidationError(message string, details interface{}) *AppError {
	return New(ErrCodeValidation, message, http.StatusBadRequest).WithDetails(details)
}

// RateLimited creates a rate limited error
func RateLimited(message string) *AppError {
	return New(ErrCodeRateLimited, message, http.StatusTooManyRequests)
}

// Predicates used by services to distinguish failure kinds

// IsNotFound reports whether err is a NOT_FOUND AppError
func IsNotFound(err error) bool {
	return hasCode(err, ErrCodeNotFound)
}

// IsInsufficientCredits reports whether err is an INSUFFICIENT_CREDITS AppError
func IsInsufficientCredits(err error) bool {
	return hasCode(err, ErrCodeInsufficientCredits)
}

// IsStoreUnavailable reports whether err is a transient store failure
func IsStoreUnavailable(err error) bool {
	return hasCode(err, ErrCodeStoreUnavailable)
}

func hasCode(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}
