// Package bootstrap loads configuration and wires the application together.
package bootstrap

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/se1dhe/botpanel/config"
	"github.com/se1dhe/botpanel/internal/adapters/api"
	"github.com/se1dhe/botpanel/internal/adapters/tokenfile"
	"github.com/se1dhe/botpanel/internal/console"
	"github.com/se1dhe/botpanel/internal/service"
)

// LoadConfig loads configuration from environment variables.
func LoadConfig() (config.AppConfig, error) {
	// Load .env file if it exists (development)
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return config.AppConfig{}, fmt.Errorf("load .env file: %w", err)
		}
	}

	var cfg config.AppConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	cfg.Sanitize()
	return cfg, nil
}

// InitLogger initializes the structured logger. The terminal belongs to the
// UI, so records go to the configured log file; if that file cannot be
// opened, logging is discarded rather than corrupting the display.
func InitLogger(cfg config.LogConfig) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var output io.Writer
	closeFn := func() {}
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o700); err != nil {
		output = io.Discard
	} else {
		file, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			output = io.Discard
		} else {
			output = file
			closeFn = func() { _ = file.Close() }
		}
	}

	logger := slog.New(slog.NewJSONHandler(output, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger, closeFn, nil
}

// App bundles the wired application.
type App struct {
	Config  config.AppConfig
	Logger  *slog.Logger
	Session *service.SessionService
	Model   *console.Model
}

// BuildApp wires the credential store, API client, services, and the root
// console model from configuration.
func BuildApp(cfg config.AppConfig, logger *slog.Logger) (*App, error) {
	credentials, err := tokenfile.New(cfg.Session.TokenPath)
	if err != nil {
		return nil, fmt.Errorf("init credential store: %w", err)
	}

	client, err := api.NewClient(api.Config{
		BaseURL:     cfg.API.BaseURL,
		Timeout:     cfg.API.Timeout,
		Credentials: credentials,
	})
	if err != nil {
		return nil, fmt.Errorf("init api client: %w", err)
	}

	session, err := service.NewSessionService(service.SessionServiceOptions{
		Credentials: credentials,
		API:         client,
		Logger:      logger,
	})
	if err != nil {
		return nil, fmt.Errorf("init session service: %w", err)
	}

	// Any authenticated call the backend refuses with 401/403 drops the
	// session, not just failures at login time.
	client.OnCredentialRejected(session.HandleCredentialRejected)

	bots, err := service.NewBotService(service.BotServiceOptions{API: client, Logger: logger})
	if err != nil {
		return nil, fmt.Errorf("init bot service: %w", err)
	}

	users, err := service.NewUserService(service.UserServiceOptions{
		API:     client,
		Session: session,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("init user service: %w", err)
	}

	dashboard, err := service.NewDashboardService(service.DashboardServiceOptions{
		Bots:    client,
		Users:   client,
		Session: session,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("init dashboard service: %w", err)
	}

	model, err := console.NewModel(console.ModelOptions{
		Session:   session,
		Bots:      bots,
		Users:     users,
		Dashboard: dashboard,
	})
	if err != nil {
		return nil, fmt.Errorf("init console: %w", err)
	}

	return &App{
		Config:  cfg,
		Logger:  logger,
		Session: session,
		Model:   model,
	}, nil
}
