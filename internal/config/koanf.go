// SSG Advisor - Static Site Generator Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ssgadvisor

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in
// order of priority. The first file found is used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/ssgadvisor/config.yaml",
	"/etc/ssgadvisor/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config
// file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// Load builds the configuration from layered sources:
// struct defaults, then an optional YAML file, then environment variables.
func Load() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	// Layer 2: config file (optional)
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: environment variables (highest priority)
	// SERVER_PORT -> server.port, RECOMMEND_CONFIDENCE_BOOST -> recommend.confidence_boost
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// envMappings maps recognized environment variable names (lowercased) to
// koanf config paths. Unrecognized variables are ignored so unrelated
// environment noise never leaks into the configuration.
var envMappings = map[string]string{
	"server_host":                  "server.host",
	"server_port":                  "server.port",
	"server_timeout":               "server.timeout",
	"server_cors_allowed_origins":  "server.cors_allowed_origins",
	"server_rate_limit_per_minute": "server.rate_limit_per_minute",

	"store_backend": "store.backend",
	"store_path":    "store.path",

	"log_level":  "log.level",
	"log_format": "log.format",
	"log_caller": "log.caller",

	"recommend_ecosystem_match_weight":   "recommend.ecosystem_match_weight",
	"recommend_ecosystem_mismatch_score": "recommend.ecosystem_mismatch_score",
	"recommend_language_affinity_weight": "recommend.language_affinity_weight",
	"recommend_size_fit_weight":          "recommend.size_fit_weight",
	"recommend_popularity_weight":        "recommend.popularity_weight",
	"recommend_confidence_boost":         "recommend.confidence_boost",
}

// envTransformFunc transforms environment variable names to koanf config
// paths. Returns empty string for unrecognized variables, which koanf skips.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
