// SSG Advisor - Static Site Generator Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ssgadvisor

package recommend

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/ssgadvisor/internal/knowledge"
	"github.com/tomtom215/ssgadvisor/internal/logging"
	"github.com/tomtom215/ssgadvisor/internal/metrics"
	"github.com/tomtom215/ssgadvisor/internal/models"
)

// ProfileSource resolves user preference profiles. Implemented by
// preference.Manager; declared here so the advisor does not depend on the
// preference package directly.
type ProfileSource interface {
	GetOrCreateProfile(ctx context.Context, userID string) (*models.UserPreferenceProfile, error)
}

// Advisor is the orchestrator and sole recommendation entry point:
// resolve analysis -> score -> resolve profile -> overlay.
//
// Each call is a single logical sequence with no internal parallelism;
// concurrency exists only across independent callers.
type Advisor struct {
	store    knowledge.Store
	engine   *Engine
	profiles *profileBreaker
	boost    float64
	logger   zerolog.Logger
}

// NewAdvisor creates an advisor over the given store, engine and profile
// source.
func NewAdvisor(store knowledge.Store, engine *Engine, profiles ProfileSource) *Advisor {
	return &Advisor{
		store:    store,
		engine:   engine,
		profiles: newProfileBreaker(profiles),
		boost:    engine.config.ConfidenceBoost,
		logger:   logging.WithComponent("advisor"),
	}
}

// Recommend produces the final recommendation for an analysis, personalized
// for the given user. An empty userID yields the pure heuristic result.
//
// Errors: knowledge.ErrAnalysisNotFound when the ID does not resolve,
// ErrInvalidAnalysis when the record has no recognizable ecosystem. Profile
// resolution failures do NOT fail the call - the advisor degrades to the
// base recommendation with an explanatory diagnostic.
func (a *Advisor) Recommend(ctx context.Context, analysisID, userID string) (*FinalRecommendation, error) {
	start := time.Now()
	defer func() { metrics.RecommendationDuration.Observe(time.Since(start).Seconds()) }()

	record, err := a.store.GetAnalysis(ctx, analysisID)
	if err != nil {
		a.countOutcome(err)
		return nil, fmt.Errorf("resolve analysis: %w", err)
	}

	base, err := a.engine.Score(record)
	if err != nil {
		a.countOutcome(err)
		return nil, err
	}

	final := a.applyProfile(ctx, base, userID)

	metrics.RecommendationsTotal.WithLabelValues("ok").Inc()
	metrics.RecommendedSSG.WithLabelValues(final.Recommended.String()).Inc()

	logging.Ctx(ctx).Debug().
		Str("analysis_id", analysisID).
		Str("user_id", userID).
		Str("recommended", final.Recommended.String()).
		Bool("applied_preference", final.AppliedPreference).
		Float64("confidence", final.Confidence).
		Msg("recommendation complete")

	return final, nil
}

// applyProfile resolves the caller's profile and applies the overlay.
// Store failures degrade to the base recommendation.
func (a *Advisor) applyProfile(ctx context.Context, base *BaseRecommendation, userID string) *FinalRecommendation {
	if userID == "" {
		final := ApplyPreferences(base, nil, a.boost)
		metrics.PreferenceOverlayTotal.WithLabelValues("pass_through").Inc()
		return final
	}

	profile, err := a.profiles.get(ctx, userID)
	if err != nil {
		a.logger.Warn().
			Err(err).
			Str("user_id", userID).
			Msg("preference profile unavailable, returning base recommendation")
		metrics.PreferenceOverlayTotal.WithLabelValues("degraded").Inc()

		final := ApplyPreferences(base, nil, a.boost)
		final.Reasoning = append(final.Reasoning,
			"preference profile unavailable; personalization skipped")
		return final
	}

	final := ApplyPreferences(base, profile, a.boost)
	metrics.PreferenceOverlayTotal.WithLabelValues(overlayAction(base, final)).Inc()
	return final
}

func overlayAction(base *BaseRecommendation, final *FinalRecommendation) string {
	switch {
	case !final.AppliedPreference:
		return "pass_through"
	case final.Recommended == base.SSG:
		return "matched"
	default:
		return "overridden"
	}
}

// countOutcome classifies an error for the recommendations counter.
func (a *Advisor) countOutcome(err error) {
	switch {
	case errors.Is(err, knowledge.ErrAnalysisNotFound):
		metrics.RecommendationsTotal.WithLabelValues("not_found").Inc()
	case errors.Is(err, ErrInvalidAnalysis):
		metrics.RecommendationsTotal.WithLabelValues("invalid_analysis").Inc()
	default:
		metrics.RecommendationsTotal.WithLabelValues("error").Inc()
	}
}
