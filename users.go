package polydub

import (
	"context"
	"net/http"
)

// UpdateUserOptions carries the mutable fields of the account profile.
type UpdateUserOptions struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// Me returns the authenticated account profile.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/users/me", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateMe updates the account profile and returns the updated record.
func (c *Client) UpdateMe(ctx context.Context, opts UpdateUserOptions) (*User, error) {
	var envelope userEnvelope
	if err := c.do(ctx, http.MethodPut, "/users/me", opts, nil, &envelope); err != nil {
		return nil, err
	}
	return &envelope.User, nil
}

// RateLimit returns the account's current request budget.
func (c *Client) RateLimit(ctx context.Context) (*RateLimitInfo, error) {
	var info RateLimitInfo
	if err := c.do(ctx, http.MethodGet, "/users/me/rate-limit", nil, nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}
