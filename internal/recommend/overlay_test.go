// SSG Advisor - Static Site Generator Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ssgadvisor

package recommend

import (
	"reflect"
	"strings"
	"testing"

	"github.com/tomtom215/ssgadvisor/internal/catalog"
	"github.com/tomtom215/ssgadvisor/internal/models"
)

const testBoost = 0.05

func baseRec() *BaseRecommendation {
	return &BaseRecommendation{
		SSG:        catalog.Docusaurus,
		Confidence: 0.84,
		Reasoning:  []string{"docusaurus is the best fit for a javascript project of medium size (60 files)"},
		Alternatives: []ScoredSSG{
			{ID: catalog.Eleventy, Score: 0.62},
			{ID: catalog.Hugo, Score: 0.27},
		},
	}
}

func profileWith(autoApply bool, preferred ...catalog.SSG) *models.UserPreferenceProfile {
	p := models.DefaultProfile("user-1")
	p.AutoApplyPreferences = autoApply
	p.PreferredSSGs = preferred
	return p
}

func TestApplyPreferences_DecisionTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		profile         *models.UserPreferenceProfile
		wantSSG         catalog.SSG
		wantApplied     bool
		wantConfidence  float64
		wantFirstPhrase string
	}{
		{
			name:           "nil profile passes through",
			profile:        nil,
			wantSSG:        catalog.Docusaurus,
			wantApplied:    false,
			wantConfidence: 0.84,
		},
		{
			name:           "auto-apply off passes through",
			profile:        profileWith(false, catalog.Hugo),
			wantSSG:        catalog.Docusaurus,
			wantApplied:    false,
			wantConfidence: 0.84,
		},
		{
			name:           "auto-apply on with empty list passes through",
			profile:        profileWith(true),
			wantSSG:        catalog.Docusaurus,
			wantApplied:    false,
			wantConfidence: 0.84,
		},
		{
			name:            "base matches preferred keeps base with boost",
			profile:         profileWith(true, catalog.Docusaurus, catalog.Hugo),
			wantSSG:         catalog.Docusaurus,
			wantApplied:     true,
			wantConfidence:  0.89,
			wantFirstPhrase: "Matches your preferred SSG",
		},
		{
			name:            "base differs from preferred overrides",
			profile:         profileWith(true, catalog.Hugo, catalog.Eleventy),
			wantSSG:         catalog.Hugo,
			wantApplied:     true,
			wantConfidence:  0.89,
			wantFirstPhrase: "Switched to hugo based on usage history",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			final := ApplyPreferences(baseRec(), tt.profile, testBoost)

			if final.Recommended != tt.wantSSG {
				t.Errorf("recommended = %s, want %s", final.Recommended, tt.wantSSG)
			}
			if final.AppliedPreference != tt.wantApplied {
				t.Errorf("appliedPreference = %v, want %v", final.AppliedPreference, tt.wantApplied)
			}
			if diff := final.Confidence - tt.wantConfidence; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("confidence = %f, want %f", final.Confidence, tt.wantConfidence)
			}
			if len(final.Reasoning) == 0 {
				t.Fatal("reasoning is empty")
			}
			if tt.wantFirstPhrase != "" && !strings.Contains(final.Reasoning[0], tt.wantFirstPhrase) {
				t.Errorf("reasoning[0] = %q, want it to contain %q", final.Reasoning[0], tt.wantFirstPhrase)
			}
		})
	}
}

func TestApplyPreferences_MatchNeverSaysSwitched(t *testing.T) {
	t.Parallel()

	final := ApplyPreferences(baseRec(), profileWith(true, catalog.Docusaurus), testBoost)
	if strings.Contains(final.Reasoning[0], "Switched") {
		t.Errorf("reasoning[0] = %q, want no Switched wording on a match", final.Reasoning[0])
	}
}

func TestApplyPreferences_ConfidenceCapped(t *testing.T) {
	t.Parallel()

	base := baseRec()
	base.Confidence = 0.98
	final := ApplyPreferences(base, profileWith(true, catalog.Docusaurus), testBoost)

	if final.Confidence != 1.0 {
		t.Errorf("confidence = %f, want capped at 1.0", final.Confidence)
	}
}

func TestApplyPreferences_Pure(t *testing.T) {
	t.Parallel()

	base := baseRec()
	profile := profileWith(true, catalog.Hugo)
	baseCopy := *base
	baseCopy.Reasoning = append([]string{}, base.Reasoning...)
	profileCopy := profile.Clone()

	first := ApplyPreferences(base, profile, testBoost)
	second := ApplyPreferences(base, profile, testBoost)

	if !reflect.DeepEqual(first, second) {
		t.Error("repeated calls with identical inputs differ")
	}
	if !reflect.DeepEqual(base.Reasoning, baseCopy.Reasoning) || base.SSG != baseCopy.SSG {
		t.Error("base recommendation was mutated")
	}
	if !reflect.DeepEqual(profile, profileCopy) {
		t.Error("profile was mutated")
	}
}
