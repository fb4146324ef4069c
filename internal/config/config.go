// Package config loads server settings from the environment, an optional .env
// file and an optional YAML local-settings file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/mmynk/expensetracker/pkg/logging"
)

// Config holds everything the server needs at startup.
type Config struct {
	// HTTP server
	Addr            string        `env:"ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	CORSOrigins     []string      `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`

	// Database
	DBPath string `env:"DB_PATH" envDefault:"./data/expenses.db"`

	// Logging
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// AuthSecret enables the bearer-token guard when non-empty.
	AuthSecret string `env:"AUTH_SECRET"`

	// LocalSettings names a YAML file whose values override the above.
	LocalSettings string `env:"LOCAL_SETTINGS" envDefault:"local_settings.yaml"`
}

// LocalSettings mirrors the overridable fields of Config. Empty values leave
// the environment value in place.
type LocalSettings struct {
	Addr            string   `yaml:"addr"`
	ShutdownTimeout string   `yaml:"shutdown_timeout"`
	CORSOrigins     []string `yaml:"cors_allowed_origins"`
	DBPath          string   `yaml:"db_path"`
	LogLevel        string   `yaml:"log_level"`
	AuthSecret      string   `yaml:"auth_secret"`
}

// LocalSettingsError reports a local-settings file that exists but cannot be
// applied.
type LocalSettingsError struct {
	Path string
	Err  error
}

func (e *LocalSettingsError) Error() string {
	return fmt.Sprintf("local settings %s: %v", e.Path, e.Err)
}

func (e *LocalSettingsError) Unwrap() error { return e.Err }

// Load reads .env (if present), parses the environment and applies the local
// settings file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment and the local
// settings file, without touching .env.
func FromEnv() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse env: %w", err)
	}
	if err := cfg.ApplyLocalSettings(cfg.LocalSettings); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyLocalSettings merges the YAML file at path into c. A missing file is
// ignored. Unknown keys are rejected.
func (c *Config) ApplyLocalSettings(path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return &LocalSettingsError{Path: path, Err: err}
	}

	var ls LocalSettings
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&ls); err != nil && !errors.Is(err, io.EOF) {
		return &LocalSettingsError{Path: path, Err: err}
	}

	if ls.Addr != "" {
		c.Addr = ls.Addr
	}
	if ls.ShutdownTimeout != "" {
		d, err := time.ParseDuration(ls.ShutdownTimeout)
		if err != nil {
			return &LocalSettingsError{Path: path, Err: fmt.Errorf("shutdown_timeout: %w", err)}
		}
		c.ShutdownTimeout = d
	}
	if len(ls.CORSOrigins) > 0 {
		c.CORSOrigins = ls.CORSOrigins
	}
	if ls.DBPath != "" {
		c.DBPath = ls.DBPath
	}
	if ls.LogLevel != "" {
		c.LogLevel = ls.LogLevel
	}
	if ls.AuthSecret != "" {
		c.AuthSecret = ls.AuthSecret
	}
	return nil
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var problems []string

	if _, _, err := net.SplitHostPort(c.Addr); err != nil {
		problems = append(problems, fmt.Sprintf("invalid address '%s': %v", c.Addr, err))
	}
	if c.DBPath == "" {
		problems = append(problems, "database path cannot be empty")
	}
	if !logging.ValidLevel(c.LogLevel) {
		problems = append(problems, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel))
	}
	if c.ShutdownTimeout <= 0 {
		problems = append(problems, fmt.Sprintf("invalid shutdown timeout %s: must be positive", c.ShutdownTimeout))
	}
	if c.AuthSecret != "" && len(c.AuthSecret) < 16 {
		problems = append(problems, "auth secret must be at least 16 characters")
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(problems, "\n  - "))
	}
	return nil
}

// AuthEnabled reports whether RPCs require a bearer token.
func (c *Config) AuthEnabled() bool {
	return c.AuthSecret != ""
}
