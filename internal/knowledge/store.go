// SSG Advisor - Static Site Generator Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ssgadvisor

// Package knowledge implements the durable keyed store of analysis records
// and user preference profiles.
//
// The store contract is deliberately narrow: per-key atomic get/upsert, no
// cross-key transactions. Two implementations exist - a BadgerDB-backed store
// for production (durable across restarts) and an in-memory store for tests
// and ephemeral development mode.
package knowledge

import (
	"context"
	"errors"

	"github.com/tomtom215/ssgadvisor/internal/models"
)

// Store errors.
var (
	// ErrAnalysisNotFound indicates the analysis ID does not resolve.
	ErrAnalysisNotFound = errors.New("analysis not found")

	// ErrInvalidRecord indicates a record that cannot be stored
	// (nil or missing its key).
	ErrInvalidRecord = errors.New("invalid record")
)

// Store is the keyed persistence contract consumed by the recommendation
// core. All operations are O(1) by key and atomic per key.
//
// GetPreferenceProfile never fails on absence: first access yields the
// default profile (empty list, auto-apply off).
type Store interface {
	// UpsertAnalysis stores an analysis record and returns its ID.
	UpsertAnalysis(ctx context.Context, record *models.AnalysisRecord) (string, error)

	// GetAnalysis resolves an analysis by ID.
	// Returns ErrAnalysisNotFound if absent.
	GetAnalysis(ctx context.Context, id string) (*models.AnalysisRecord, error)

	// GetPreferenceProfile returns the stored profile for the user, or the
	// default profile if none exists yet.
	GetPreferenceProfile(ctx context.Context, userID string) (*models.UserPreferenceProfile, error)

	// SavePreferenceProfile atomically replaces the profile for the user.
	SavePreferenceProfile(ctx context.Context, userID string, profile *models.UserPreferenceProfile) error

	// Close releases store resources.
	Close() error
}
