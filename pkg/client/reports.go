package client

import (
	"context"
	"net/url"
)

// ReportService accesses the read-only reporting endpoints
type ReportService struct {
	client *Client
}

// Dashboard returns the usage dashboard for a user
func (s *ReportService) Dashboard(ctx context.Context, userID string) (*Dashboard, error) {
	var view Dashboard
	path := "/api/user/dashboard?userId=" + url.QueryEscape(userID)
	if _, err := s.client.doRequest(ctx, "GET", path, nil, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

// PlanOverview returns the user's plan and allowances
func (s *ReportService) PlanOverview(ctx context.Context, userID string) (*PlanOverview, error) {
	var view PlanOverview
	path := "/api/user/plan-overview?userId=" + url.QueryEscape(userID)
	if _, err := s.client.doRequest(ctx, "GET", path, nil, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

// BillingHistory returns the user's billing entries, most-recent-first
func (s *ReportService) BillingHistory(ctx context.Context, userID string) ([]BillingEntry, error) {
	var entries []BillingEntry
	path := "/api/user/billing-history?userId=" + url.QueryEscape(userID)
	if _, err := s.client.doRequest(ctx, "GET", path, nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
