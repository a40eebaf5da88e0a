// SSG Advisor - Static Site Generator Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ssgadvisor

package knowledge

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/ssgadvisor/internal/models"
)

// MemoryStore implements Store with in-process maps. Data does not survive a
// restart; use it for tests and ephemeral development mode.
type MemoryStore struct {
	mu       sync.RWMutex
	analyses map[string]*models.AnalysisRecord
	profiles map[string]*models.UserPreferenceProfile
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		analyses: make(map[string]*models.AnalysisRecord),
		profiles: make(map[string]*models.UserPreferenceProfile),
	}
}

// UpsertAnalysis stores an analysis record, generating an ID when absent.
func (s *MemoryStore) UpsertAnalysis(_ context.Context, record *models.AnalysisRecord) (string, error) {
	if record == nil {
		return "", fmt.Errorf("%w: nil analysis", ErrInvalidRecord)
	}
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	stored := *record
	stored.Languages = append([]string(nil), record.Languages...)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.analyses[record.ID] = &stored
	return record.ID, nil
}

// GetAnalysis resolves an analysis by ID.
func (s *MemoryStore) GetAnalysis(_ context.Context, id string) (*models.AnalysisRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.analyses[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAnalysisNotFound, id)
	}

	out := *record
	out.Languages = append([]string(nil), record.Languages...)
	return &out, nil
}

// GetPreferenceProfile returns the stored profile, or the default profile on
// first access.
func (s *MemoryStore) GetPreferenceProfile(_ context.Context, userID string) (*models.UserPreferenceProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, ok := s.profiles[userID]
	if !ok {
		return models.DefaultProfile(userID), nil
	}
	return profile.Clone(), nil
}

// SavePreferenceProfile atomically replaces the profile for the user.
func (s *MemoryStore) SavePreferenceProfile(_ context.Context, userID string, profile *models.UserPreferenceProfile) error {
	if profile == nil || userID == "" {
		return fmt.Errorf("%w: empty profile or user ID", ErrInvalidRecord)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[userID] = profile.Clone()
	return nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error { return nil }
