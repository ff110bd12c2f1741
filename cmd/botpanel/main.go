// botpanel is a terminal admin console for the bot platform backend. It
// signs in against the backend API, restores sessions from a persisted
// bearer token, and manages bots and users from the keyboard.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/se1dhe/botpanel/internal/bootstrap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
}

func run() error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := bootstrap.InitLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	app, err := bootstrap.BuildApp(cfg, logger)
	if err != nil {
		return err
	}

	logger.Info("starting botpanel",
		"api_base_url", cfg.API.BaseURL,
		"dev", cfg.IsDev,
	)

	program := tea.NewProgram(app.Model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run console: %w", err)
	}
	return nil
}
