// SSG Advisor - Static Site Generator Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ssgadvisor

package recommend

import (
	"errors"

	"github.com/tomtom215/ssgadvisor/internal/catalog"
)

// ErrInvalidAnalysis indicates an analysis record without a recognizable
// ecosystem; scoring is refused.
var ErrInvalidAnalysis = errors.New("invalid analysis")

// ScoredSSG is one catalog candidate with its computed score.
type ScoredSSG struct {
	// ID is the generator identifier.
	ID catalog.SSG `json:"id"`

	// Score is the raw heuristic score for this candidate.
	Score float64 `json:"score"`
}

// BaseRecommendation is the heuristic result before any preference overlay.
// It is ephemeral - derived per request, never stored.
type BaseRecommendation struct {
	// SSG is the winning generator.
	SSG catalog.SSG `json:"ssg"`

	// Confidence is the normalized winning score in [0,1].
	Confidence float64 `json:"confidence"`

	// Reasoning is the ordered explanation trace. Never empty; the first
	// entry names the ecosystem/size fit.
	Reasoning []string `json:"reasoning"`

	// Alternatives ranks the remaining candidates by score.
	Alternatives []ScoredSSG `json:"alternatives"`
}

// FinalRecommendation is the result returned to callers after the preference
// overlay has been applied.
type FinalRecommendation struct {
	// Recommended is the final generator choice.
	Recommended catalog.SSG `json:"recommended"`

	// Confidence is the adjusted confidence in [0,1].
	Confidence float64 `json:"confidence"`

	// Reasoning explains the choice. When a preference was applied, the
	// preference note is the first entry.
	Reasoning []string `json:"reasoning"`

	// AppliedPreference reports whether stored preference history
	// influenced the result.
	AppliedPreference bool `json:"applied_preference"`

	// Alternatives ranks the non-chosen heuristic candidates.
	Alternatives []ScoredSSG `json:"alternatives,omitempty"`
}
