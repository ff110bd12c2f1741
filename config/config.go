// Package config holds the console's environment-driven configuration.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. A .env file is honored in development.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// AppConfig is the main application configuration struct.
type AppConfig struct {
	// IsDev controls development mode behavior (debug log level, .env loading).
	// Set DEV=true or NODE_ENV=development for development mode.
	IsDev bool `env:"DEV" envDefault:"false"`

	// Backend API configuration
	API APIConfig `envPrefix:"API_"`

	// Session persistence configuration
	Session SessionConfig `envPrefix:"SESSION_"`

	// Logging configuration
	Log LogConfig `envPrefix:"LOG_"`
}

// APIConfig configures the backend API client.
type APIConfig struct {
	// BaseURL is the backend API root, including the path prefix.
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8000/api/v1"`

	// Timeout bounds every backend request.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
}

// SessionConfig configures where the bearer credential persists between runs.
type SessionConfig struct {
	// TokenPath is the file holding the bearer token. Empty means a
	// default location under the user config directory.
	TokenPath string `env:"TOKEN_PATH"`
}

// LogConfig configures diagnostic logging. The terminal is owned by the UI,
// so logs go to a file.
type LogConfig struct {
	// Path is the log file location. Empty means a default location under
	// the user config directory.
	Path string `env:"PATH"`

	// Level is the minimum level to record (debug, info, warn, error).
	Level string `env:"LEVEL" envDefault:"info"`
}

// appDirName is the per-user directory holding the token and log files.
const appDirName = "botpanel"

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.API.Sanitize()
	c.Session.Sanitize()
	c.Log.Sanitize(c.IsDev)
	c.detectDevMode()
}

// detectDevMode checks both DEV and NODE_ENV environment variables.
// NODE_ENV is checked as a fallback (common in frontend tooling).
func (c *AppConfig) detectDevMode() {
	if !c.IsDev {
		nodeEnv := strings.ToLower(os.Getenv("NODE_ENV"))
		c.IsDev = nodeEnv == "development" || nodeEnv == "dev"
	}
}

// Sanitize trims the base URL and restores defaults for unusable values.
func (c *APIConfig) Sanitize() {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if c.BaseURL == "" {
		c.BaseURL = "http://localhost:8000/api/v1"
	}
	if c.Timeout <= 0 {
		c.Timeout = 10 * time.Second
	}
}

// Sanitize fills in the default token location when none is configured.
func (c *SessionConfig) Sanitize() {
	c.TokenPath = strings.TrimSpace(c.TokenPath)
	if c.TokenPath == "" {
		c.TokenPath = filepath.Join(userConfigDir(), appDirName, "token")
	}
}

// Sanitize fills in the default log location and normalizes the level.
func (c *LogConfig) Sanitize(isDev bool) {
	c.Path = strings.TrimSpace(c.Path)
	if c.Path == "" {
		c.Path = filepath.Join(userConfigDir(), appDirName, "botpanel.log")
	}
	c.Level = strings.ToLower(strings.TrimSpace(c.Level))
	switch c.Level {
	case "debug", "info", "warn", "error":
	default:
		c.Level = "info"
	}
	if isDev {
		c.Level = "debug"
	}
}

// userConfigDir resolves the per-user config root, falling back to the
// working directory when the platform offers none.
func userConfigDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return dir
	}
	return "."
}
