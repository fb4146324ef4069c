package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "local_settings.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write settings: %v", err)
	}
	return path
}

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("LOCAL_SETTINGS", filepath.Join(t.TempDir(), "absent.yaml"))

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv failed: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Addr)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("ShutdownTimeout = %s, want 10s", cfg.ShutdownTimeout)
	}
	if diff := cmp.Diff([]string{"*"}, cfg.CORSOrigins); diff != "" {
		t.Errorf("CORSOrigins mismatch (-want +got):\n%s", diff)
	}
	if cfg.AuthEnabled() {
		t.Error("auth should be disabled without a secret")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	absent := filepath.Join(t.TempDir(), "absent.yaml")
	t.Setenv("LOCAL_SETTINGS", absent)
	t.Setenv("ADDR", "127.0.0.1:9000")
	t.Setenv("DB_PATH", "/tmp/x.db")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("AUTH_SECRET", "0123456789abcdef")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv failed: %v", err)
	}
	want := &Config{
		Addr:            "127.0.0.1:9000",
		ShutdownTimeout: 3 * time.Second,
		CORSOrigins:     []string{"http://a.test", "http://b.test"},
		DBPath:          "/tmp/x.db",
		LogLevel:        "debug",
		AuthSecret:      "0123456789abcdef",
		LocalSettings:   absent,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	if !cfg.AuthEnabled() {
		t.Error("auth should be enabled")
	}
}

func TestApplyLocalSettings(t *testing.T) {
	base := func() *Config {
		return &Config{
			Addr:            ":8080",
			ShutdownTimeout: 10 * time.Second,
			CORSOrigins:     []string{"*"},
			DBPath:          "./data/expenses.db",
			LogLevel:        "info",
		}
	}

	t.Run("non-empty values override", func(t *testing.T) {
		path := writeFile(t, "addr: ':9090'\nlog_level: warn\nshutdown_timeout: 1m\ndb_path: ''\n")
		cfg := base()
		if err := cfg.ApplyLocalSettings(path); err != nil {
			t.Fatalf("ApplyLocalSettings failed: %v", err)
		}
		want := base()
		want.Addr = ":9090"
		want.LogLevel = "warn"
		want.ShutdownTimeout = time.Minute
		if diff := cmp.Diff(want, cfg); diff != "" {
			t.Errorf("config mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty file changes nothing", func(t *testing.T) {
		path := writeFile(t, "")
		cfg := base()
		if err := cfg.ApplyLocalSettings(path); err != nil {
			t.Fatalf("ApplyLocalSettings failed: %v", err)
		}
		if diff := cmp.Diff(base(), cfg); diff != "" {
			t.Errorf("config mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("missing file is ignored", func(t *testing.T) {
		cfg := base()
		if err := cfg.ApplyLocalSettings(filepath.Join(t.TempDir(), "nope.yaml")); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("unknown key is rejected", func(t *testing.T) {
		path := writeFile(t, "debug: true\n")
		err := base().ApplyLocalSettings(path)
		var lsErr *LocalSettingsError
		if !errors.As(err, &lsErr) {
			t.Fatalf("expected LocalSettingsError, got %v", err)
		}
		if lsErr.Path != path {
			t.Errorf("Path = %q, want %q", lsErr.Path, path)
		}
	})

	t.Run("bad duration is rejected", func(t *testing.T) {
		path := writeFile(t, "shutdown_timeout: soon\n")
		var lsErr *LocalSettingsError
		if err := base().ApplyLocalSettings(path); !errors.As(err, &lsErr) {
			t.Errorf("expected LocalSettingsError, got %v", err)
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "bad address", mutate: func(c *Config) { c.Addr = "8080" }, wantErr: "invalid address"},
		{name: "empty db path", mutate: func(c *Config) { c.DBPath = "" }, wantErr: "database path"},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: "invalid log level"},
		{name: "zero timeout", mutate: func(c *Config) { c.ShutdownTimeout = 0 }, wantErr: "shutdown timeout"},
		{name: "short secret", mutate: func(c *Config) { c.AuthSecret = "short" }, wantErr: "auth secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Addr:            ":8080",
				ShutdownTimeout: time.Second,
				DBPath:          "x.db",
				LogLevel:        "info",
			}
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
