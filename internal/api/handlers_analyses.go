// SSG Advisor - Static Site Generator Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ssgadvisor

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/ssgadvisor/internal/catalog"
	"github.com/tomtom215/ssgadvisor/internal/knowledge"
	"github.com/tomtom215/ssgadvisor/internal/models"
	"github.com/tomtom215/ssgadvisor/internal/validation"
)

// analysisRequest is the ingestion payload handed over by the external
// project analyzer.
type analysisRequest struct {
	ID         string   `json:"id" validate:"omitempty,uuid4"`
	Ecosystem  string   `json:"ecosystem" validate:"required,ecosystem"`
	Languages  []string `json:"languages" validate:"omitempty,dive,min=1"`
	TotalFiles int      `json:"total_files" validate:"min=0"`
}

// UpsertAnalysis registers an analyzer result.
//
// POST /api/v1/analyses
func (h *Handler) UpsertAnalysis(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req analysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rw.BadRequest("invalid JSON body")
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		rw.ValidationError("invalid analysis", verr.Fields())
		return
	}

	// The ecosystem tag already validated this; parse normalizes casing.
	eco, err := catalog.ParseEcosystem(req.Ecosystem)
	if err != nil {
		rw.ValidationError("invalid analysis", err.Error())
		return
	}

	record := &models.AnalysisRecord{
		ID:         req.ID,
		Ecosystem:  eco,
		Languages:  req.Languages,
		TotalFiles: req.TotalFiles,
		CreatedAt:  time.Now().UTC(),
	}

	id, err := h.store.UpsertAnalysis(r.Context(), record)
	if err != nil {
		rw.StoreError(err)
		return
	}

	rw.Created(map[string]string{"id": id})
}

// GetAnalysis returns a stored analysis record.
//
// GET /api/v1/analyses/{id}
func (h *Handler) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	id := chi.URLParam(r, "id")

	record, err := h.store.GetAnalysis(r.Context(), id)
	switch {
	case errors.Is(err, knowledge.ErrAnalysisNotFound):
		rw.NotFound("analysis not found: " + id)
	case err != nil:
		rw.StoreError(err)
	default:
		rw.Success(record)
	}
}
