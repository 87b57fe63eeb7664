package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds CLI settings sourced from the environment. The service URL
// may instead arrive via the --url flag, so it is not required here.
type Config struct {
	URL            string `envconfig:"LINGO_URL" default:""`
	DefaultSource  string `envconfig:"LINGO_DEFAULT_SOURCE" default:""`
	DefaultTarget  string `envconfig:"LINGO_DEFAULT_TARGET" default:""`
	TimeoutSeconds int    `envconfig:"LINGO_TIMEOUT_SECONDS" default:"120"`
	LogLevel       string `envconfig:"LINGO_LOG_LEVEL" default:"info"`
	LogFile        string `envconfig:"LINGO_LOG_FILE" default:""`
}

// Load reads settings from the environment, after loading an optional .env
// file from the working directory.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.TimeoutSeconds < 1 {
		return fmt.Errorf("LINGO_TIMEOUT_SECONDS must be >= 1")
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	if u := strings.TrimSpace(c.URL); u != "" {
		parsed, err := url.Parse(u)
		if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
			return fmt.Errorf("LINGO_URL must be an http(s) URL, got %q", c.URL)
		}
	}
	return nil
}

// Timeout returns the per-request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// SlogLevel maps the configured log level name onto a slog.Level.
func (c *Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("LINGO_LOG_LEVEL must be one of debug, info, warn, error; got %q", c.LogLevel)
	}
}
