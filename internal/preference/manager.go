// SSG Advisor - Static Site Generator Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ssgadvisor

// Package preference manages durable per-user SSG preference profiles.
//
// Every mutation is a read-modify-write on one profile key, so each user ID
// is guarded by its own lazily created mutex: concurrent updates to the same
// user are linearized, while distinct users never contend. Validation rejects
// atomically - an invalid update leaves the stored profile untouched.
package preference

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/ssgadvisor/internal/catalog"
	"github.com/tomtom215/ssgadvisor/internal/knowledge"
	"github.com/tomtom215/ssgadvisor/internal/logging"
	"github.com/tomtom215/ssgadvisor/internal/models"
)

// ErrInvalidPreference indicates an update naming a generator outside the
// catalog or containing duplicates. The stored profile is left unchanged.
var ErrInvalidPreference = errors.New("invalid preference")

// Update is a partial preference update. Nil fields are left unchanged.
type Update struct {
	// PreferredSSGs replaces the ordered preference list when non-nil.
	PreferredSSGs *[]catalog.SSG `json:"preferred_ssgs,omitempty"`

	// AutoApplyPreferences toggles the auto-apply flag when non-nil.
	AutoApplyPreferences *bool `json:"auto_apply_preferences,omitempty"`
}

// Manager coordinates profile reads and writes against the knowledge store.
// It is safe for concurrent use.
type Manager struct {
	store  knowledge.Store
	logger zerolog.Logger

	// userLocks holds one mutex per user ID, created on first touch.
	// mu guards the map itself, never the profile operations.
	userLocks map[string]*sync.Mutex
	mu        sync.Mutex
}

// NewManager creates a preference manager backed by the given store.
func NewManager(store knowledge.Store) *Manager {
	return &Manager{
		store:     store,
		logger:    logging.WithComponent("preference"),
		userLocks: make(map[string]*sync.Mutex),
	}
}

// lockUser returns the mutex guarding the given user's profile, creating it
// on first use.
func (m *Manager) lockUser(userID string) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()

	l, ok := m.userLocks[userID]
	if !ok {
		l = &sync.Mutex{}
		m.userLocks[userID] = l
	}
	return l
}

// GetOrCreateProfile returns the user's stored profile, or the default
// profile if none exists yet. It never fails on absence.
func (m *Manager) GetOrCreateProfile(ctx context.Context, userID string) (*models.UserPreferenceProfile, error) {
	profile, err := m.store.GetPreferenceProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile %s: %w", userID, err)
	}
	return profile, nil
}

// UpdatePreferences validates and applies a partial update, then persists the
// merged profile. On validation failure the stored profile is unchanged.
func (m *Manager) UpdatePreferences(ctx context.Context, userID string, update Update) (*models.UserPreferenceProfile, error) {
	if update.PreferredSSGs != nil {
		if err := validatePreferredList(*update.PreferredSSGs); err != nil {
			return nil, err
		}
	}

	l := m.lockUser(userID)
	l.Lock()
	defer l.Unlock()

	profile, err := m.store.GetPreferenceProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile %s: %w", userID, err)
	}

	if update.PreferredSSGs != nil {
		profile.PreferredSSGs = append([]catalog.SSG{}, (*update.PreferredSSGs)...)
	}
	if update.AutoApplyPreferences != nil {
		profile.AutoApplyPreferences = *update.AutoApplyPreferences
	}
	profile.UpdatedAt = time.Now().UTC()

	if err := m.store.SavePreferenceProfile(ctx, userID, profile); err != nil {
		return nil, fmt.Errorf("save profile %s: %w", userID, err)
	}

	m.logger.Debug().
		Str("user_id", userID).
		Int("preferred", len(profile.PreferredSSGs)).
		Bool("auto_apply", profile.AutoApplyPreferences).
		Msg("preferences updated")

	return profile, nil
}

// RecordUsage increments the usage counter for the given generator and
// re-sorts the preferred list by usage count descending. Ties keep their
// prior relative order, so the reordering is deterministic and idempotent.
func (m *Manager) RecordUsage(ctx context.Context, userID string, ssg catalog.SSG) (*models.UserPreferenceProfile, error) {
	if _, ok := catalog.Lookup(ssg); !ok {
		return nil, fmt.Errorf("%w: %q is not in the catalog", ErrInvalidPreference, ssg)
	}

	l := m.lockUser(userID)
	l.Lock()
	defer l.Unlock()

	profile, err := m.store.GetPreferenceProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile %s: %w", userID, err)
	}

	if profile.UsageCounts == nil {
		profile.UsageCounts = map[catalog.SSG]int{}
	}
	profile.UsageCounts[ssg]++

	sort.SliceStable(profile.PreferredSSGs, func(i, j int) bool {
		return profile.UsageCounts[profile.PreferredSSGs[i]] > profile.UsageCounts[profile.PreferredSSGs[j]]
	})
	profile.UpdatedAt = time.Now().UTC()

	if err := m.store.SavePreferenceProfile(ctx, userID, profile); err != nil {
		return nil, fmt.Errorf("save profile %s: %w", userID, err)
	}

	m.logger.Debug().
		Str("user_id", userID).
		Str("ssg", ssg.String()).
		Int("count", profile.UsageCounts[ssg]).
		Msg("usage recorded")

	return profile, nil
}

// validatePreferredList rejects duplicates and generators outside the catalog.
func validatePreferredList(list []catalog.SSG) error {
	seen := make(map[catalog.SSG]struct{}, len(list))
	for _, id := range list {
		if _, ok := catalog.Lookup(id); !ok {
			return fmt.Errorf("%w: %q is not in the catalog", ErrInvalidPreference, id)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: duplicate entry %q", ErrInvalidPreference, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}
