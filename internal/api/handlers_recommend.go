// SSG Advisor - Static Site Generator Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ssgadvisor

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/ssgadvisor/internal/knowledge"
	"github.com/tomtom215/ssgadvisor/internal/recommend"
)

// Recommend is the sole recommendation entry point.
//
// GET /api/v1/recommendation?analysis_id=<uuid>&user_id=<id>
//
// user_id is optional; without it the response is the pure heuristic result.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	analysisID := r.URL.Query().Get("analysis_id")
	if analysisID == "" {
		rw.BadRequest("analysis_id is required")
		return
	}
	userID := r.URL.Query().Get("user_id")

	final, err := h.advisor.Recommend(r.Context(), analysisID, userID)
	switch {
	case errors.Is(err, knowledge.ErrAnalysisNotFound):
		rw.NotFound("analysis not found: " + analysisID)
	case errors.Is(err, recommend.ErrInvalidAnalysis):
		rw.Unprocessable("analysis has no recognizable ecosystem")
	case err != nil:
		rw.StoreError(err)
	default:
		rw.Success(final)
	}
}
