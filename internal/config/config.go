// Package config provides environment-driven configuration for lvroute and
// the YAML road-network definition file.
package config

import (
	"fmt"
	"net"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvroute/internal/logging"
)

// Environment variable names.
const (
	EnvListenAddr  = "LVROUTE_LISTEN_ADDR"
	EnvLogLevel    = "LVROUTE_LOG_LEVEL"
	EnvLogFormat   = "LVROUTE_LOG_FORMAT"
	EnvNetworkFile = "LVROUTE_NETWORK_FILE"
)

// Config holds all process configuration values.
type Config struct {
	ListenAddr  string
	LogLevel    string
	LogFormat   string
	NetworkFile string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{
		ListenAddr:  envOrDefault(EnvListenAddr, "127.0.0.1:8080"),
		LogLevel:    strings.ToLower(envOrDefault(EnvLogLevel, "info")),
		LogFormat:   strings.ToLower(envOrDefault(EnvLogFormat, logging.FormatText)),
		NetworkFile: envOrDefault(EnvNetworkFile, ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// Validate checks every field; flag overrides are validated the same way.
func (c *Config) Validate() error {
	if _, _, err := net.SplitHostPort(c.ListenAddr); err != nil {
		return fmt.Errorf("%s must be host:port: %w", EnvListenAddr, err)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%s: %w", EnvLogLevel, err)
	}
	switch c.LogFormat {
	case logging.FormatText, logging.FormatJSON:
	default:
		return fmt.Errorf("%s must be %q or %q, got %q", EnvLogFormat, logging.FormatText, logging.FormatJSON, c.LogFormat)
	}

	return nil
}

func envOrDefault(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}

	return fallback
}
