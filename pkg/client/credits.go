package client

import (
	"context"
	"net/url"
)

// CreditService accesses the credit ledger endpoints
type CreditService struct {
	client *Client
}

// Status returns whether the user has any credits remaining
func (s *CreditService) Status(ctx context.Context, userID string) (*CreditStatus, error) {
	var status CreditStatus
	path := "/api/user/credit-status?userId=" + url.QueryEscape(userID)
	if _, err := s.client.doRequest(ctx, "GET", path, nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// Deduct deducts the given amount from the user's quota
func (s *CreditService) Deduct(ctx context.Context, userID string, amount int64) (*DeductionResult, error) {
	body := map[string]interface{}{
		"userId": userID,
		"amount": amount,
	}
	var result DeductionResult
	if _, err := s.client.doRequest(ctx, "POST", "/api/user/deduct-credits", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
