// SSG Advisor - Static Site Generator Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ssgadvisor

// Package recommend implements the heuristic recommendation engine, the pure
// preference overlay and the orchestrating Advisor.
//
// The engine scores the fixed catalog for one analysis record:
//
//	score = ecosystemMatch + languageAffinity + sizeFit + popularityBias
//
// Ecosystem match dominates. The argmax wins; ties fall back to the
// catalog's fixed priority order so results are identical across runs. The
// winning score is normalized into a confidence in [0,1] by dividing by the
// maximum achievable score and clamping.
package recommend

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/tomtom215/ssgadvisor/internal/catalog"
	"github.com/tomtom215/ssgadvisor/internal/models"
)

// Project size thresholds (total file count) for the size-fit curve.
const (
	sizeTinyMax  = 10
	sizeSmallMax = 50
	sizeMedMax   = 500
)

// Engine scores the SSG catalog for analysis records. It is stateless apart
// from configuration and safe for concurrent use.
type Engine struct {
	config *Config
	logger zerolog.Logger
}

// NewEngine creates a recommendation engine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Engine{
		config: cfg,
		logger: logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// Score computes the base recommendation for an analysis record.
// Returns ErrInvalidAnalysis if the ecosystem is missing or unrecognized.
func (e *Engine) Score(record *models.AnalysisRecord) (*BaseRecommendation, error) {
	if record == nil {
		return nil, fmt.Errorf("%w: nil record", ErrInvalidAnalysis)
	}
	if _, err := catalog.ParseEcosystem(record.Ecosystem.String()); err != nil {
		return nil, fmt.Errorf("%w: ecosystem %q", ErrInvalidAnalysis, record.Ecosystem)
	}

	// Entries() is in priority order, and the winner only changes on a
	// strictly greater score, which is exactly the priority tie break.
	ranked := make([]ScoredSSG, 0, len(catalog.Entries()))
	var winner catalog.Entry
	winningScore := -1.0

	for _, entry := range catalog.Entries() {
		score := e.scoreCandidate(entry, record)
		ranked = append(ranked, ScoredSSG{ID: entry.ID, Score: score})

		if score > winningScore {
			winner = entry
			winningScore = score
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	alternatives := make([]ScoredSSG, 0, len(ranked)-1)
	for _, s := range ranked {
		if s.ID != winner.ID {
			alternatives = append(alternatives, s)
		}
	}

	confidence := clamp01(winningScore / e.config.MaxScore())
	base := &BaseRecommendation{
		SSG:          winner.ID,
		Confidence:   confidence,
		Reasoning:    e.buildReasoning(winner, record, confidence),
		Alternatives: alternatives,
	}

	e.logger.Debug().
		Str("analysis_id", record.ID).
		Str("ssg", winner.ID.String()).
		Float64("confidence", confidence).
		Msg("scored catalog")

	return base, nil
}

// scoreCandidate computes the four score components for one catalog entry.
func (e *Engine) scoreCandidate(entry catalog.Entry, record *models.AnalysisRecord) float64 {
	return e.ecosystemMatch(entry, record.Ecosystem) +
		e.languageAffinity(entry, record.Languages) +
		e.sizeFit(entry, record.TotalFiles) +
		entry.PopularityBias
}

// ecosystemMatch is the dominant component: affinity-scaled match weight, or
// the near-zero mismatch score when the entry has no affinity at all.
func (e *Engine) ecosystemMatch(entry catalog.Entry, eco catalog.Ecosystem) float64 {
	if affinity, ok := entry.EcosystemAffinity[eco]; ok {
		return e.config.EcosystemMatchWeight * affinity
	}
	return e.config.EcosystemMismatchScore
}

// languageAffinity scales with the fraction of detected languages the entry
// has first-class support for.
func (e *Engine) languageAffinity(entry catalog.Entry, languages []string) float64 {
	if len(languages) == 0 {
		return 0
	}

	matched := 0
	for _, lang := range languages {
		if _, ok := entry.Languages[lang]; ok {
			matched++
		}
	}
	return e.config.LanguageAffinityWeight * float64(matched) / float64(len(languages))
}

// sizeFit penalizes heavyweight generators for very small projects and
// lightweight generators for very large ones. Fractions of SizeFitWeight per
// size class and bucket; all values are fixed so scoring is reproducible.
func (e *Engine) sizeFit(entry catalog.Entry, totalFiles int) float64 {
	bucket := sizeBucket(totalFiles)

	var fractions [4]float64
	switch entry.SizeClass {
	case catalog.SizeClassLight:
		fractions = [4]float64{1.0, 0.85, 0.55, 0.25}
	case catalog.SizeClassMedium:
		fractions = [4]float64{0.55, 0.75, 0.90, 1.0}
	case catalog.SizeClassHeavy:
		fractions = [4]float64{0.15, 0.55, 0.95, 1.0}
	}
	return e.config.SizeFitWeight * fractions[bucket]
}

// sizeBucket maps a file count to tiny/small/medium/large (0..3).
func sizeBucket(totalFiles int) int {
	switch {
	case totalFiles < sizeTinyMax:
		return 0
	case totalFiles < sizeSmallMax:
		return 1
	case totalFiles < sizeMedMax:
		return 2
	default:
		return 3
	}
}

// sizeBucketName is the human-readable bucket label used in reasoning.
func sizeBucketName(totalFiles int) string {
	switch sizeBucket(totalFiles) {
	case 0:
		return "tiny"
	case 1:
		return "small"
	case 2:
		return "medium"
	default:
		return "large"
	}
}

// buildReasoning produces the ordered explanation trace. The first sentence
// names the winner and the ecosystem/size fit.
func (e *Engine) buildReasoning(winner catalog.Entry, record *models.AnalysisRecord, confidence float64) []string {
	reasoning := []string{
		fmt.Sprintf("%s is the best fit for a %s project of %s size (%d files)",
			winner.ID, record.Ecosystem, sizeBucketName(record.TotalFiles), record.TotalFiles),
	}

	if affinity, ok := winner.EcosystemAffinity[record.Ecosystem]; ok && affinity >= 1.0 {
		reasoning = append(reasoning,
			fmt.Sprintf("%s is the native documentation toolchain for the %s ecosystem", winner.ID, record.Ecosystem))
	}

	matched := matchedLanguages(winner, record.Languages)
	if len(matched) > 0 {
		reasoning = append(reasoning,
			fmt.Sprintf("first-class support for detected languages: %v", matched))
	}

	reasoning = append(reasoning,
		fmt.Sprintf("confidence %.2f based on ecosystem, language, size and popularity weighting", confidence))

	return reasoning
}

func matchedLanguages(entry catalog.Entry, languages []string) []string {
	var matched []string
	for _, lang := range languages {
		if _, ok := entry.Languages[lang]; ok {
			matched = append(matched, lang)
		}
	}
	return matched
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
