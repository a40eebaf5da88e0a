// SSG Advisor - Static Site Generator Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ssgadvisor

package recommend

import (
	"fmt"

	"github.com/tomtom215/ssgadvisor/internal/models"
)

// ApplyPreferences combines a base recommendation with a user's preference
// profile. It is a pure function: fully deterministic, no side effects, and
// neither input is mutated.
//
// Decision table:
//
//	autoApply=false, any list            -> base unchanged, appliedPreference=false
//	autoApply=true,  empty list          -> base unchanged, appliedPreference=false
//	autoApply=true,  base == preferred[0] -> keep base, "Matches" note, confidence+boost
//	autoApply=true,  base != preferred[0] -> override to preferred[0], "Switched" note, confidence+boost
//
// The confidence boost is capped at 1.0.
func ApplyPreferences(base *BaseRecommendation, profile *models.UserPreferenceProfile, boost float64) *FinalRecommendation {
	final := passThrough(base)

	if profile == nil || !profile.AutoApplyPreferences || len(profile.PreferredSSGs) == 0 {
		return final
	}

	preferred := profile.PreferredSSGs[0]
	final.AppliedPreference = true
	final.Confidence = clamp01(base.Confidence + boost)

	if preferred == base.SSG {
		final.Reasoning = prepend(final.Reasoning,
			fmt.Sprintf("Matches your preferred SSG (%s)", preferred))
		return final
	}

	final.Recommended = preferred
	final.Reasoning = prepend(final.Reasoning,
		fmt.Sprintf("Switched to %s based on usage history", preferred))
	return final
}

// passThrough copies the base recommendation into a final one without
// applying any preference.
func passThrough(base *BaseRecommendation) *FinalRecommendation {
	return &FinalRecommendation{
		Recommended:       base.SSG,
		Confidence:        base.Confidence,
		Reasoning:         append([]string{}, base.Reasoning...),
		AppliedPreference: false,
		Alternatives:      append([]ScoredSSG{}, base.Alternatives...),
	}
}

func prepend(reasoning []string, note string) []string {
	out := make([]string, 0, len(reasoning)+1)
	out = append(out, note)
	return append(out, reasoning...)
}
