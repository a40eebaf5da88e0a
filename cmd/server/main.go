// SSG Advisor - Static Site Generator Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ssgadvisor

// Package main is the entry point for the SSG Advisor server.
//
// SSG Advisor recommends a static site generator for a software project from
// automated project-analysis data, personalized with durable per-user
// preference history.
//
// # Application Architecture
//
// The server initializes components in dependency order:
//
//  1. Configuration: Koanf v2 layering (defaults, config.yaml, env vars)
//  2. Knowledge store: BadgerDB-backed keyed store of analyses and profiles
//  3. Preference manager: per-user preference profiles with usage tracking
//  4. Recommendation engine + advisor: heuristic scoring and overlay
//  5. HTTP server: REST API under Suture supervision
//
// # Configuration
//
// Highest priority wins:
//   - Environment variables (SERVER_PORT, STORE_PATH, LOG_LEVEL, ...)
//   - Config file (config.yaml, or CONFIG_PATH)
//   - Built-in defaults
//
// # Example Usage
//
// Durable store:
//
//	export STORE_PATH=/data/ssgadvisor
//	./ssgadvisor
//
// Ephemeral development mode:
//
//	export STORE_BACKEND=memory
//	export LOG_FORMAT=console
//	./ssgadvisor
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM: it stops
// accepting connections, waits up to 10s for in-flight requests, then closes
// the knowledge store.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/ssgadvisor/internal/api"
	"github.com/tomtom215/ssgadvisor/internal/config"
	"github.com/tomtom215/ssgadvisor/internal/knowledge"
	"github.com/tomtom215/ssgadvisor/internal/logging"
	"github.com/tomtom215/ssgadvisor/internal/preference"
	"github.com/tomtom215/ssgadvisor/internal/recommend"
	"github.com/tomtom215/ssgadvisor/internal/supervisor"
)

func main() {
	if err := run(); err != nil {
		logging.Fatal().Err(err).Msg("server exited with error")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})
	logging.Info().
		Str("backend", cfg.Store.Backend).
		Int("port", cfg.Server.Port).
		Msg("starting SSG Advisor")

	store, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("open knowledge store: %w", err)
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			logging.Warn().Err(cerr).Msg("knowledge store close error")
		}
	}()

	engine, err := recommend.NewEngine(engineConfig(cfg), logging.Logger())
	if err != nil {
		return fmt.Errorf("create recommendation engine: %w", err)
	}

	preferences := preference.NewManager(store)
	advisor := recommend.NewAdvisor(store, engine, preferences)

	handler := api.NewHandler(store, advisor, preferences)
	router := api.NewRouter(handler, api.RouterConfig{
		CORSAllowedOrigins: cfg.Server.CORSAllowedOrigins,
		RateLimitPerMinute: cfg.Server.RateLimitPerMinute,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	// Supervision: the HTTP server restarts with backoff on crash.
	// Supervision events flow through zerolog via the slog adapter.
	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.DefaultConfig())
	tree.Add(supervisor.NewHTTPService(server, supervisor.DefaultConfig().ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("shutdown signal received")
		if err := <-errCh; err != nil && err != context.Canceled {
			return err
		}
	case err := <-errCh:
		if err != nil && err != context.Canceled {
			return err
		}
	}

	logging.Info().Msg("shutdown complete")
	return nil
}

// openStore selects the knowledge store backend.
func openStore(cfg *config.Config) (knowledge.Store, error) {
	if cfg.Store.Backend == "memory" {
		logging.Warn().Msg("using in-memory store; data will not survive a restart")
		return knowledge.NewMemoryStore(), nil
	}

	if err := os.MkdirAll(cfg.Store.Path, 0o750); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}
	return knowledge.OpenBadger(cfg.Store.Path)
}

// engineConfig maps the application config onto the engine config, leaving
// engine defaults in place for zero values.
func engineConfig(cfg *config.Config) *recommend.Config {
	ec := recommend.DefaultConfig()
	if cfg.Recommend.EcosystemMatchWeight > 0 {
		ec.EcosystemMatchWeight = cfg.Recommend.EcosystemMatchWeight
	}
	if cfg.Recommend.EcosystemMismatchScore > 0 {
		ec.EcosystemMismatchScore = cfg.Recommend.EcosystemMismatchScore
	}
	if cfg.Recommend.LanguageAffinityWeight > 0 {
		ec.LanguageAffinityWeight = cfg.Recommend.LanguageAffinityWeight
	}
	if cfg.Recommend.SizeFitWeight > 0 {
		ec.SizeFitWeight = cfg.Recommend.SizeFitWeight
	}
	if cfg.Recommend.PopularityWeight > 0 {
		ec.PopularityWeight = cfg.Recommend.PopularityWeight
	}
	if cfg.Recommend.ConfidenceBoost > 0 {
		ec.ConfidenceBoost = cfg.Recommend.ConfidenceBoost
	}
	return ec
}
