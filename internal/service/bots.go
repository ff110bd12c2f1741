package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/se1dhe/botpanel/internal/domain/model"
	"github.com/se1dhe/botpanel/internal/ports"
)

// BotServiceOptions groups dependencies for BotService.
type BotServiceOptions struct {
	API    ports.BotAPI
	Logger *slog.Logger
}

// BotService validates and forwards bot management operations.
type BotService struct {
	api    ports.BotAPI
	logger *slog.Logger
}

// NewBotService constructs a BotService.
func NewBotService(opts BotServiceOptions) (*BotService, error) {
	if opts.API == nil {
		return nil, errors.New("bot API is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &BotService{api: opts.API, logger: logger}, nil
}

// List retrieves bots matching the given options.
func (s *BotService) List(ctx context.Context, opts model.BotsListOptions) ([]model.Bot, error) {
	bots, err := s.api.ListBots(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("list bots: %w", err)
	}
	return bots, nil
}

// Create validates and creates a new bot.
func (s *BotService) Create(ctx context.Context, req *model.CreateBotRequest) (*model.Bot, error) {
	if req == nil {
		return nil, errors.New("create bot request is required")
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	bot, err := s.api.CreateBot(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create bot: %w", err)
	}
	s.logger.Info("bot created", "id", bot.ID, "name", bot.Name)
	return bot, nil
}

// Update validates and applies a partial bot update.
func (s *BotService) Update(ctx context.Context, id int64, req *model.UpdateBotRequest) (*model.Bot, error) {
	if req == nil {
		return nil, errors.New("update bot request is required")
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	bot, err := s.api.UpdateBot(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("update bot %d: %w", id, err)
	}
	return bot, nil
}

// ToggleStatus flips a bot between active and inactive.
func (s *BotService) ToggleStatus(ctx context.Context, bot model.Bot) (*model.Bot, error) {
	next := bot.Status.Toggle()
	updated, err := s.api.UpdateBot(ctx, bot.ID, &model.UpdateBotRequest{Status: &next})
	if err != nil {
		return nil, fmt.Errorf("toggle bot %d status: %w", bot.ID, err)
	}
	s.logger.Info("bot status toggled", "id", bot.ID, "status", next)
	return updated, nil
}

// Delete removes a bot.
func (s *BotService) Delete(ctx context.Context, id int64) error {
	if err := s.api.DeleteBot(ctx, id); err != nil {
		return fmt.Errorf("delete bot %d: %w", id, err)
	}
	s.logger.Info("bot deleted", "id", id)
	return nil
}
