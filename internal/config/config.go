// SSG Advisor - Static Site Generator Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ssgadvisor

// Package config loads and validates application configuration via Koanf v2
// with layered sources (highest priority wins): environment variables,
// optional YAML config file, built-in defaults.
package config

import (
	"fmt"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Store     StoreConfig     `koanf:"store"`
	Logging   LoggingConfig   `koanf:"log"`
	Recommend RecommendConfig `koanf:"recommend"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the listen address.
	Host string `koanf:"host"`

	// Port is the listen port.
	Port int `koanf:"port"`

	// Timeout bounds request read/write time.
	Timeout time.Duration `koanf:"timeout"`

	// CORSAllowedOrigins lists origins allowed by the CORS middleware.
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins"`

	// RateLimitPerMinute bounds requests per client IP on API routes.
	RateLimitPerMinute int `koanf:"rate_limit_per_minute"`
}

// StoreConfig holds knowledge store settings.
type StoreConfig struct {
	// Backend selects the store implementation: "badger" (durable) or
	// "memory" (ephemeral, development only).
	Backend string `koanf:"backend"`

	// Path is the BadgerDB directory (badger backend only).
	Path string `koanf:"path"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is json or console.
	Format string `koanf:"format"`

	// Caller includes caller file and line in logs.
	Caller bool `koanf:"caller"`
}

// RecommendConfig holds recommendation engine tuning. Zero values fall back
// to the engine defaults.
type RecommendConfig struct {
	EcosystemMatchWeight   float64 `koanf:"ecosystem_match_weight"`
	EcosystemMismatchScore float64 `koanf:"ecosystem_mismatch_score"`
	LanguageAffinityWeight float64 `koanf:"language_affinity_weight"`
	SizeFitWeight          float64 `koanf:"size_fit_weight"`
	PopularityWeight       float64 `koanf:"popularity_weight"`
	ConfidenceBoost        float64 `koanf:"confidence_boost"`
}

// defaultConfig returns a Config with all default values. Defaults are
// applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:               "0.0.0.0",
			Port:               8464,
			Timeout:            30 * time.Second,
			CORSAllowedOrigins: []string{"*"},
			RateLimitPerMinute: 300,
		},
		Store: StoreConfig{
			Backend: "badger",
			Path:    "/data/ssgadvisor",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Recommend: RecommendConfig{
			EcosystemMatchWeight:   0.60,
			EcosystemMismatchScore: 0.05,
			LanguageAffinityWeight: 0.15,
			SizeFitWeight:          0.15,
			PopularityWeight:       0.10,
			ConfidenceBoost:        0.05,
		},
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in [1,65535], got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be > 0, got %v", c.Server.Timeout)
	}
	if c.Server.RateLimitPerMinute <= 0 {
		return fmt.Errorf("server.rate_limit_per_minute must be > 0, got %d", c.Server.RateLimitPerMinute)
	}

	switch c.Store.Backend {
	case "badger":
		if c.Store.Path == "" {
			return fmt.Errorf("store.path is required for the badger backend")
		}
	case "memory":
		// No path needed; data is ephemeral.
	default:
		return fmt.Errorf("store.backend must be badger or memory, got %q", c.Store.Backend)
	}

	switch c.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be trace, debug, info, warn or error, got %q", c.Logging.Level)
	}
	if c.Logging.Format != "json" && c.Logging.Format != "console" {
		return fmt.Errorf("log.format must be json or console, got %q", c.Logging.Format)
	}

	if c.Recommend.ConfidenceBoost < 0 || c.Recommend.ConfidenceBoost > 1 {
		return fmt.Errorf("recommend.confidence_boost must be in [0,1], got %f", c.Recommend.ConfidenceBoost)
	}

	return nil
}
