// SSG Advisor - Static Site Generator Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ssgadvisor

// Package models holds the shared data types exchanged between the knowledge
// store, the preference manager and the recommendation engine.
package models

import (
	"time"

	"github.com/tomtom215/ssgadvisor/internal/catalog"
)

// AnalysisRecord is the project-analysis result produced by the external
// analyzer. Records are immutable once stored; they are referenced by ID.
type AnalysisRecord struct {
	// ID uniquely identifies the analysis (UUID).
	ID string `json:"id"`

	// Ecosystem is the detected primary package ecosystem.
	Ecosystem catalog.Ecosystem `json:"ecosystem"`

	// Languages is the set of detected languages, lowercase.
	Languages []string `json:"languages,omitempty"`

	// TotalFiles is the total file count of the analyzed project.
	TotalFiles int `json:"total_files"`

	// CreatedAt is when the analyzer produced the record.
	CreatedAt time.Time `json:"created_at"`
}

// UserPreferenceProfile is the durable per-user preference state.
// Profiles are created lazily with defaults on first access and are never
// deleted by this service.
type UserPreferenceProfile struct {
	// UserID is the profile key.
	UserID string `json:"user_id"`

	// PreferredSSGs is the ordered preference list, most preferred first.
	// Entries are unique and always members of the catalog.
	PreferredSSGs []catalog.SSG `json:"preferred_ssgs"`

	// AutoApplyPreferences causes the stored preference history to
	// override heuristic recommendations when set.
	AutoApplyPreferences bool `json:"auto_apply_preferences"`

	// UsageCounts tracks how often each generator was used.
	UsageCounts map[catalog.SSG]int `json:"usage_counts"`

	// UpdatedAt is the last mutation time.
	UpdatedAt time.Time `json:"updated_at"`
}

// DefaultProfile returns the profile used before a user has stored any
// preferences: empty list, auto-apply off.
func DefaultProfile(userID string) *UserPreferenceProfile {
	return &UserPreferenceProfile{
		UserID:        userID,
		PreferredSSGs: []catalog.SSG{},
		UsageCounts:   map[catalog.SSG]int{},
		UpdatedAt:     time.Now().UTC(),
	}
}

// Clone returns a deep copy of the profile. Mutating the copy never affects
// the original, which keeps read-modify-write sequences atomic on reject.
func (p *UserPreferenceProfile) Clone() *UserPreferenceProfile {
	if p == nil {
		return nil
	}

	clone := &UserPreferenceProfile{
		UserID:               p.UserID,
		PreferredSSGs:        make([]catalog.SSG, len(p.PreferredSSGs)),
		AutoApplyPreferences: p.AutoApplyPreferences,
		UsageCounts:          make(map[catalog.SSG]int, len(p.UsageCounts)),
		UpdatedAt:            p.UpdatedAt,
	}
	copy(clone.PreferredSSGs, p.PreferredSSGs)
	for k, v := range p.UsageCounts {
		clone.UsageCounts[k] = v
	}
	return clone
}
