// SSG Advisor - Static Site Generator Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ssgadvisor

package logging

import (
	"context"
	"testing"
)

func TestCorrelationIDRoundtrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if got := CorrelationIDFromContext(ctx); got != "" {
		t.Errorf("empty context yields %q, want empty", got)
	}

	ctx = ContextWithCorrelationID(ctx, "abc123")
	if got := CorrelationIDFromContext(ctx); got != "abc123" {
		t.Errorf("correlation ID = %q, want abc123", got)
	}
}

func TestContextWithNewCorrelationID(t *testing.T) {
	t.Parallel()

	first := CorrelationIDFromContext(ContextWithNewCorrelationID(context.Background()))
	second := CorrelationIDFromContext(ContextWithNewCorrelationID(context.Background()))

	if first == "" || second == "" {
		t.Fatal("generated correlation ID is empty")
	}
	if len(first) != 8 {
		t.Errorf("correlation ID length = %d, want 8", len(first))
	}
	if first == second {
		t.Error("two generated correlation IDs collide")
	}
}

func TestRequestIDRoundtrip(t *testing.T) {
	t.Parallel()

	ctx := ContextWithRequestID(context.Background(), "req-1")
	if got := RequestIDFromContext(ctx); got != "req-1" {
		t.Errorf("request ID = %q, want req-1", got)
	}
	if got := RequestIDFromContext(context.Background()); got != "" {
		t.Errorf("empty context yields %q, want empty", got)
	}
}

func TestCtxNeverNil(t *testing.T) {
	t.Parallel()

	if Ctx(context.Background()) == nil {
		t.Fatal("Ctx returned nil for a bare context")
	}

	ctx := ContextWithRequestID(ContextWithCorrelationID(context.Background(), "c"), "r")
	if Ctx(ctx) == nil {
		t.Fatal("Ctx returned nil for an enriched context")
	}
}
