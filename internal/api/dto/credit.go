package dto

// DeductCreditsRequest deducts a positive amount from the caller's quota
type DeductCreditsRequest struct {
	UserID string `json:"userId" validate:"required"`
	Amount int64  `json:"amount" validate:"required,gt=0"`
}
