package client

import "context"

// UserService accesses the user provisioning endpoints
type UserService struct {
	client *Client
}

// Setup provisions a first-time user with the free plan. Calling it again
// for the same user is a no-op; Created reports which case happened.
func (s *UserService) Setup(ctx context.Context, req SetupUserRequest) (*SetupResult, error) {
	var result SetupResult
	if _, err := s.client.doRequest(ctx, "POST", "/api/user/setup", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
