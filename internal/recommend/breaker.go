// SSG Advisor - Static Site Generator Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ssgadvisor

package recommend

import (
	"context"
	"errors"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/ssgadvisor/internal/logging"
	"github.com/tomtom215/ssgadvisor/internal/metrics"
	"github.com/tomtom215/ssgadvisor/internal/models"
)

// profileBreaker wraps profile resolution with a circuit breaker.
//
// Preference personalization is best-effort: a failing knowledge store must
// never make recommendations unusable. The breaker makes that degradation
// cheap - once the store is known-bad, profile fetches fail fast instead of
// adding store latency to every recommend call.
//
// The breaker uses real time for its interval and timeout calculations; unit
// tests exercise the wrapped source directly.
type profileBreaker struct {
	source ProfileSource
	cb     *gobreaker.CircuitBreaker[*models.UserPreferenceProfile]
	name   string
}

// newProfileBreaker creates the breaker around a profile source.
// Opens after a 60% failure rate with at least 10 requests in a 1 minute
// window; recovery is attempted after 30 seconds.
func newProfileBreaker(source ProfileSource) *profileBreaker {
	cbName := "preference-profiles"
	metrics.CircuitBreakerState.WithLabelValues(cbName).Set(0) // 0 = closed

	cb := gobreaker.NewCircuitBreaker[*models.UserPreferenceProfile](gobreaker.Settings{
		Name:        cbName,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= 0.6
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn().
				Str("breaker", name).
				Str("from", breakerStateName(from)).
				Str("to", breakerStateName(to)).
				Msg("circuit breaker state transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(breakerStateValue(to))
		},
	})

	return &profileBreaker{source: source, cb: cb, name: cbName}
}

// get fetches the profile through the breaker.
func (b *profileBreaker) get(ctx context.Context, userID string) (*models.UserPreferenceProfile, error) {
	profile, err := b.cb.Execute(func() (*models.UserPreferenceProfile, error) {
		return b.source.GetOrCreateProfile(ctx, userID)
	})

	switch {
	case err == nil:
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
	default:
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
	}

	return profile, err
}

func breakerStateName(s gobreaker.State) string {
	switch s {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

func breakerStateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
