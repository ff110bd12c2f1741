package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/se1dhe/botpanel/internal/domain/model"
	"github.com/se1dhe/botpanel/internal/ports"
)

// Ensure compile-time conformance to ports.
var _ ports.UserAPI = (*Client)(nil)

// ListUsers retrieves platform users with optional paging.
func (c *Client) ListUsers(ctx context.Context, opts model.UsersListOptions) ([]model.User, error) {
	query := url.Values{}
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Offset > 0 {
		query.Set("skip", strconv.Itoa(opts.Offset))
	}
	if opts.Q != nil && *opts.Q != "" {
		query.Set("search", *opts.Q)
	}

	var users []model.User
	if err := c.do(ctx, requestParams{method: http.MethodGet, path: "/users", query: query, out: &users}); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// UpdateUser updates an existing user. Nil request fields are left unchanged.
func (c *Client) UpdateUser(ctx context.Context, id int64, req *model.UpdateUserRequest) (*model.User, error) {
	if req == nil {
		return nil, errors.New("update user request is required")
	}

	var user model.User
	err := c.do(ctx, requestParams{
		method: http.MethodPut,
		path:   fmt.Sprintf("/users/%d", id),
		body:   req,
		out:    &user,
	})
	if err != nil {
		return nil, fmt.Errorf("update user %d: %w", id, err)
	}
	return &user, nil
}

// DeleteUser deletes a user by ID.
func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	if err := c.do(ctx, requestParams{method: http.MethodDelete, path: fmt.Sprintf("/users/%d", id)}); err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	return nil
}
