package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/se1dhe/botpanel/internal/domain/model"
	"github.com/se1dhe/botpanel/internal/ports"
)

// DashboardStats aggregates the numbers shown on the dashboard view.
// UserStatsIncluded is false for non-admin operators, whose session cannot
// read the user listing.
type DashboardStats struct {
	TotalBots         int
	ActiveBots        int
	InactiveBots      int
	TotalSubscribers  int
	TotalUsers        int
	ActiveUsers       int
	UserStatsIncluded bool
}

// DashboardServiceOptions groups dependencies for DashboardService.
type DashboardServiceOptions struct {
	Bots    ports.BotAPI
	Users   ports.UserAPI
	Session SessionReader
	Logger  *slog.Logger
}

// DashboardService computes aggregate statistics for the dashboard view by
// fanning out the backend listings concurrently.
type DashboardService struct {
	bots    ports.BotAPI
	users   ports.UserAPI
	session SessionReader
	logger  *slog.Logger
}

// NewDashboardService constructs a DashboardService.
func NewDashboardService(opts DashboardServiceOptions) (*DashboardService, error) {
	if opts.Bots == nil {
		return nil, errors.New("bot API is required")
	}
	if opts.Users == nil {
		return nil, errors.New("user API is required")
	}
	if opts.Session == nil {
		return nil, errors.New("session reader is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &DashboardService{
		bots:    opts.Bots,
		users:   opts.Users,
		session: opts.Session,
		logger:  logger,
	}, nil
}

// statsPageSize caps how many records one stats fetch pulls. The console is
// an admin tool over small collections; paging through more is not worth it
// for a count.
const statsPageSize = 1000

// Stats fetches bot and, for admins, user listings and reduces them to
// dashboard aggregates. The two fetches run concurrently; either failure
// fails the whole refresh.
func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	includeUsers := s.session.Snapshot().IsAdmin()

	var (
		bots  []model.Bot
		users []model.User
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		bots, err = s.bots.ListBots(gctx, model.BotsListOptions{Limit: statsPageSize})
		return err
	})
	if includeUsers {
		g.Go(func() error {
			var err error
			users, err = s.users.ListUsers(gctx, model.UsersListOptions{Limit: statsPageSize})
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load dashboard stats: %w", err)
	}

	stats := &DashboardStats{
		TotalBots:         len(bots),
		UserStatsIncluded: includeUsers,
	}
	for _, bot := range bots {
		if bot.Status == model.BotStatusActive {
			stats.ActiveBots++
		} else {
			stats.InactiveBots++
		}
		stats.TotalSubscribers += bot.Subscribers
	}
	for _, user := range users {
		stats.TotalUsers++
		if user.IsActive {
			stats.ActiveUsers++
		}
	}
	return stats, nil
}
