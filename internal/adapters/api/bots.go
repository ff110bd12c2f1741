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
var _ ports.BotAPI = (*Client)(nil)

// ListBots retrieves bots with optional paging and filters.
func (c *Client) ListBots(ctx context.Context, opts model.BotsListOptions) ([]model.Bot, error) {
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
	if opts.Category != nil && *opts.Category != "" {
		query.Set("category", *opts.Category)
	}

	var bots []model.Bot
	if err := c.do(ctx, requestParams{method: http.MethodGet, path: "/bots", query: query, out: &bots}); err != nil {
		return nil, fmt.Errorf("list bots: %w", err)
	}
	return bots, nil
}

// CreateBot creates a new bot.
func (c *Client) CreateBot(ctx context.Context, req *model.CreateBotRequest) (*model.Bot, error) {
	if req == nil {
		return nil, errors.New("create bot request is required")
	}

	var bot model.Bot
	if err := c.do(ctx, requestParams{method: http.MethodPost, path: "/bots", body: req, out: &bot}); err != nil {
		return nil, fmt.Errorf("create bot: %w", err)
	}
	return &bot, nil
}

// UpdateBot updates an existing bot. Nil request fields are left unchanged.
func (c *Client) UpdateBot(ctx context.Context, id int64, req *model.UpdateBotRequest) (*model.Bot, error) {
	if req == nil {
		return nil, errors.New("update bot request is required")
	}

	var bot model.Bot
	err := c.do(ctx, requestParams{
		method: http.MethodPut,
		path:   fmt.Sprintf("/bots/%d", id),
		body:   req,
		out:    &bot,
	})
	if err != nil {
		return nil, fmt.Errorf("update bot %d: %w", id, err)
	}
	return &bot, nil
}

// DeleteBot deletes a bot by ID.
func (c *Client) DeleteBot(ctx context.Context, id int64) error {
	if err := c.do(ctx, requestParams{method: http.MethodDelete, path: fmt.Sprintf("/bots/%d", id)}); err != nil {
		return fmt.Errorf("delete bot %d: %w", id, err)
	}
	return nil
}
