package client

import "context"

// BillingService accesses the public billing catalog
type BillingService struct {
	client *Client
}

// Plans returns the available subscription plans
func (s *BillingService) Plans(ctx context.Context) ([]Plan, error) {
	var plans []Plan
	if _, err := s.client.doRequest(ctx, "GET", "/api/billing/plans", nil, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}
