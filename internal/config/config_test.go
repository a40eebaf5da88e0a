// SSG Advisor - Static Site Generator Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ssgadvisor

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()
	cfg := defaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults do not validate: %v", err)
	}
	if cfg.Server.Port != 8464 {
		t.Errorf("server.port = %d, want 8464", cfg.Server.Port)
	}
	if cfg.Store.Backend != "badger" {
		t.Errorf("store.backend = %s, want badger", cfg.Store.Backend)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("logging defaults = %s/%s, want info/json", cfg.Logging.Level, cfg.Logging.Format)
	}
	if cfg.Recommend.ConfidenceBoost != 0.05 {
		t.Errorf("recommend.confidence_boost = %f, want 0.05", cfg.Recommend.ConfidenceBoost)
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		modify    func(*Config)
		wantError bool
	}{
		{name: "valid defaults", modify: func(c *Config) {}},
		{name: "memory backend without path", modify: func(c *Config) {
			c.Store.Backend = "memory"
			c.Store.Path = ""
		}},
		{name: "port zero", modify: func(c *Config) { c.Server.Port = 0 }, wantError: true},
		{name: "port too large", modify: func(c *Config) { c.Server.Port = 70000 }, wantError: true},
		{name: "non-positive timeout", modify: func(c *Config) { c.Server.Timeout = 0 }, wantError: true},
		{name: "non-positive rate limit", modify: func(c *Config) { c.Server.RateLimitPerMinute = 0 }, wantError: true},
		{name: "unknown store backend", modify: func(c *Config) { c.Store.Backend = "redis" }, wantError: true},
		{name: "badger backend without path", modify: func(c *Config) { c.Store.Path = "" }, wantError: true},
		{name: "unknown log level", modify: func(c *Config) { c.Logging.Level = "verbose" }, wantError: true},
		{name: "unknown log format", modify: func(c *Config) { c.Logging.Format = "xml" }, wantError: true},
		{name: "boost out of range", modify: func(c *Config) { c.Recommend.ConfidenceBoost = 1.5 }, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := defaultConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantError && err == nil {
				t.Error("Validate() = nil, want error")
			}
			if !tt.wantError && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestEnvTransformFunc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key  string
		want string
	}{
		{"SERVER_PORT", "server.port"},
		{"SERVER_HOST", "server.host"},
		{"STORE_BACKEND", "store.backend"},
		{"STORE_PATH", "store.path"},
		{"LOG_LEVEL", "log.level"},
		{"LOG_FORMAT", "log.format"},
		{"RECOMMEND_CONFIDENCE_BOOST", "recommend.confidence_boost"},
		{"RECOMMEND_ECOSYSTEM_MATCH_WEIGHT", "recommend.ecosystem_match_weight"},
		// Unrelated environment noise must be dropped, not mangled.
		{"PATH", ""},
		{"HOME", ""},
		{"SERVER_SECRET", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Parallel()
			if got := envTransformFunc(tt.key); got != tt.want {
				t.Errorf("envTransformFunc(%s) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "server:\n  port: 9000\nstore:\n  backend: memory\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("SERVER_PORT", "9100")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 9100 {
		t.Errorf("server.port = %d, want env override 9100", cfg.Server.Port)
	}
	if cfg.Store.Backend != "memory" {
		t.Errorf("store.backend = %s, want memory from file", cfg.Store.Backend)
	}
	// Untouched values keep their defaults.
	if cfg.Server.Timeout != 30*time.Second {
		t.Errorf("server.timeout = %v, want default 30s", cfg.Server.Timeout)
	}
}

func TestLoad_InvalidConfigRejected(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("store:\n  backend: redis\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv(ConfigPathEnvVar, path)

	if _, err := Load(); err == nil {
		t.Error("Load() = nil error, want validation failure for unknown backend")
	}
}
