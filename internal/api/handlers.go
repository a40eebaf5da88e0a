// SSG Advisor - Static Site Generator Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ssgadvisor

package api

import (
	"net/http"

	"github.com/tomtom215/ssgadvisor/internal/knowledge"
	"github.com/tomtom215/ssgadvisor/internal/preference"
	"github.com/tomtom215/ssgadvisor/internal/recommend"
)

// Handler holds the dependencies for all HTTP handlers.
type Handler struct {
	store       knowledge.Store
	advisor     *recommend.Advisor
	preferences *preference.Manager
}

// NewHandler creates an API handler.
func NewHandler(store knowledge.Store, advisor *recommend.Advisor, preferences *preference.Manager) *Handler {
	return &Handler{
		store:       store,
		advisor:     advisor,
		preferences: preferences,
	}
}

// Health reports overall service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]string{"status": "ok"})
}

// HealthLive is the liveness probe: the process is up.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]string{"status": "alive"})
}

// HealthReady is the readiness probe: the store answers reads.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	// A profile read exercises the store without requiring any data; it
	// never fails on absence.
	if _, err := h.store.GetPreferenceProfile(r.Context(), "readiness-probe"); err != nil {
		rw.Error(http.StatusServiceUnavailable, ErrCodeStoreError, "knowledge store unavailable")
		return
	}
	rw.Success(map[string]string{"status": "ready"})
}
