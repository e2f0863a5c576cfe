package dto

// SetupUserRequest provisions a first-time user
type SetupUserRequest struct {
	UserID string `json:"userId" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Name   string `json:"name,omitempty"`
}

// SetupUserResponse reports whether a new bundle was created
type SetupUserResponse struct {
	Created bool `json:"created"`
}
