// SSG Advisor - Static Site Generator Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ssgadvisor

package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/ssgadvisor/internal/catalog"
	"github.com/tomtom215/ssgadvisor/internal/preference"
	"github.com/tomtom215/ssgadvisor/internal/validation"
)

// preferenceUpdateRequest is the partial preference update payload.
// Nil fields are left unchanged; list validation (catalog membership,
// uniqueness) happens in the preference manager so rejects stay atomic.
type preferenceUpdateRequest struct {
	PreferredSSGs        *[]string `json:"preferred_ssgs"`
	AutoApplyPreferences *bool     `json:"auto_apply_preferences"`
}

// usageRequest records one use of a generator.
type usageRequest struct {
	SSG string `json:"ssg" validate:"required,ssg"`
}

// GetPreferences returns the user's preference profile, creating the default
// lazily on first access.
//
// GET /api/v1/users/{userID}/preferences
func (h *Handler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	userID := chi.URLParam(r, "userID")

	profile, err := h.preferences.GetOrCreateProfile(r.Context(), userID)
	if err != nil {
		rw.StoreError(err)
		return
	}
	rw.Success(profile)
}

// UpdatePreferences applies a partial preference update.
//
// PATCH /api/v1/users/{userID}/preferences
func (h *Handler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	userID := chi.URLParam(r, "userID")

	var req preferenceUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rw.BadRequest("invalid JSON body")
		return
	}

	update := preference.Update{
		AutoApplyPreferences: req.AutoApplyPreferences,
	}
	if req.PreferredSSGs != nil {
		// Raw strings pass through unparsed; the manager validates against
		// the catalog and rejects atomically.
		list := make([]catalog.SSG, 0, len(*req.PreferredSSGs))
		for _, s := range *req.PreferredSSGs {
			list = append(list, catalog.SSG(s))
		}
		update.PreferredSSGs = &list
	}

	profile, err := h.preferences.UpdatePreferences(r.Context(), userID, update)
	switch {
	case errors.Is(err, preference.ErrInvalidPreference):
		rw.ValidationError("invalid preference update", err.Error())
	case err != nil:
		rw.StoreError(err)
	default:
		rw.Success(profile)
	}
}

// RecordUsage increments a generator's usage counter for the user and
// reorders the preference list by usage.
//
// POST /api/v1/users/{userID}/preferences/usage
func (h *Handler) RecordUsage(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	userID := chi.URLParam(r, "userID")

	var req usageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rw.BadRequest("invalid JSON body")
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		rw.ValidationError("invalid usage record", verr.Fields())
		return
	}

	profile, err := h.preferences.RecordUsage(r.Context(), userID, catalog.SSG(req.SSG))
	switch {
	case errors.Is(err, preference.ErrInvalidPreference):
		rw.ValidationError("invalid usage record", err.Error())
	case err != nil:
		rw.StoreError(err)
	default:
		rw.Success(profile)
	}
}
