// SSG Advisor - Static Site Generator Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ssgadvisor

package recommend

import (
	"fmt"
)

// Config holds recommendation engine tuning parameters.
//
// The four weight fields bound the four score components; their sum is the
// maximum possible score, which normalizes the winner into a confidence in
// [0,1]. Defaults sum to exactly 1.0.
type Config struct {
	// EcosystemMatchWeight scales the ecosystem affinity component.
	// Ecosystem match dominates the score.
	EcosystemMatchWeight float64 `koanf:"ecosystem_match_weight"`

	// EcosystemMismatchScore is the near-zero component granted when the
	// candidate has no affinity for the analysis ecosystem.
	EcosystemMismatchScore float64 `koanf:"ecosystem_mismatch_score"`

	// LanguageAffinityWeight scales the detected-language overlap component.
	LanguageAffinityWeight float64 `koanf:"language_affinity_weight"`

	// SizeFitWeight scales the project-size fit component.
	SizeFitWeight float64 `koanf:"size_fit_weight"`

	// PopularityWeight bounds the per-candidate popularity bias.
	PopularityWeight float64 `koanf:"popularity_weight"`

	// ConfidenceBoost is the fixed boost applied by the preference overlay
	// when a stored preference is auto-applied, capped at 1.0.
	ConfidenceBoost float64 `koanf:"confidence_boost"`
}

// DefaultConfig returns production defaults.
func DefaultConfig() *Config {
	return &Config{
		EcosystemMatchWeight:   0.60,
		EcosystemMismatchScore: 0.05,
		LanguageAffinityWeight: 0.15,
		SizeFitWeight:          0.15,
		PopularityWeight:       0.10,
		ConfidenceBoost:        0.05,
	}
}

// MaxScore returns the maximum achievable raw score, used to normalize the
// winning score into a confidence value.
func (c *Config) MaxScore() float64 {
	return c.EcosystemMatchWeight + c.LanguageAffinityWeight + c.SizeFitWeight + c.PopularityWeight
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.EcosystemMatchWeight <= 0 {
		return fmt.Errorf("ecosystem_match_weight must be > 0, got %f", c.EcosystemMatchWeight)
	}
	if c.EcosystemMismatchScore < 0 || c.EcosystemMismatchScore >= c.EcosystemMatchWeight {
		return fmt.Errorf("ecosystem_mismatch_score must be in [0, ecosystem_match_weight), got %f", c.EcosystemMismatchScore)
	}
	if c.LanguageAffinityWeight < 0 {
		return fmt.Errorf("language_affinity_weight must be >= 0, got %f", c.LanguageAffinityWeight)
	}
	if c.SizeFitWeight < 0 {
		return fmt.Errorf("size_fit_weight must be >= 0, got %f", c.SizeFitWeight)
	}
	if c.PopularityWeight < 0 {
		return fmt.Errorf("popularity_weight must be >= 0, got %f", c.PopularityWeight)
	}
	if c.ConfidenceBoost < 0 || c.ConfidenceBoost > 1 {
		return fmt.Errorf("confidence_boost must be in [0,1], got %f", c.ConfidenceBoost)
	}
	return nil
}
