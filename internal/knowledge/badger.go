// SSG Advisor - Static Site Generator Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ssgadvisor

package knowledge

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/tomtom215/ssgadvisor/internal/catalog"
	"github.com/tomtom215/ssgadvisor/internal/logging"
	"github.com/tomtom215/ssgadvisor/internal/metrics"
	"github.com/tomtom215/ssgadvisor/internal/models"
)

// Key prefixes for BadgerDB storage. Analyses and profiles share one DB but
// live in disjoint keyspaces.
const (
	analysisKeyPrefix = "analysis:"
	profileKeyPrefix  = "profile:"
)

// BadgerStore implements Store using BadgerDB for durable storage.
// Badger transactions give the per-key atomicity the contract requires;
// profiles are written as a single full-replace Set per key.
type BadgerStore struct {
	db *badger.DB
}

// OpenBadger opens (or creates) a BadgerDB at the given path and returns a
// store backed by it. Badger's own logger is silenced; store-level events go
// through the application logger instead.
func OpenBadger(path string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger at %s: %w", path, err)
	}

	logger := logging.WithComponent("knowledge")
	logger.Info().
		Str("path", path).
		Msg("knowledge store opened")

	return &BadgerStore{db: db}, nil
}

// NewBadgerStore wraps an already-open BadgerDB.
func NewBadgerStore(db *badger.DB) *BadgerStore {
	return &BadgerStore{db: db}
}

// UpsertAnalysis stores an analysis record, generating an ID when absent.
func (s *BadgerStore) UpsertAnalysis(ctx context.Context, record *models.AnalysisRecord) (string, error) {
	start := time.Now()
	var err error
	defer func() { metrics.ObserveStoreOperation("upsert_analysis", start, err) }()

	if record == nil {
		err = fmt.Errorf("%w: nil analysis", ErrInvalidRecord)
		return "", err
	}
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	data, merr := json.Marshal(record)
	if merr != nil {
		err = fmt.Errorf("marshal analysis: %w", merr)
		return "", err
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(analysisKeyPrefix+record.ID), data)
	})
	if err != nil {
		return "", fmt.Errorf("store analysis %s: %w", record.ID, err)
	}

	return record.ID, nil
}

// GetAnalysis resolves an analysis by ID.
func (s *BadgerStore) GetAnalysis(ctx context.Context, id string) (*models.AnalysisRecord, error) {
	start := time.Now()
	var record models.AnalysisRecord

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(analysisKeyPrefix + id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: %s", ErrAnalysisNotFound, id)
		}
		if err != nil {
			return fmt.Errorf("get analysis: %w", err)
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &record)
		})
	})
	metrics.ObserveStoreOperation("get_analysis", start, err)

	if err != nil {
		return nil, err
	}
	return &record, nil
}

// GetPreferenceProfile returns the stored profile, or the default profile on
// first access. Absence is not an error.
func (s *BadgerStore) GetPreferenceProfile(ctx context.Context, userID string) (*models.UserPreferenceProfile, error) {
	start := time.Now()
	var (
		profile models.UserPreferenceProfile
		found   bool
	)

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(profileKeyPrefix + userID))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("get profile: %w", err)
		}

		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &profile)
		})
	})
	metrics.ObserveStoreOperation("get_profile", start, err)

	if err != nil {
		return nil, err
	}
	if !found {
		return models.DefaultProfile(userID), nil
	}

	// Old payloads may predate the usage counters.
	if profile.UsageCounts == nil {
		profile.UsageCounts = map[catalog.SSG]int{}
	}
	return &profile, nil
}

// SavePreferenceProfile atomically replaces the profile for the user.
func (s *BadgerStore) SavePreferenceProfile(ctx context.Context, userID string, profile *models.UserPreferenceProfile) error {
	start := time.Now()
	var err error
	defer func() { metrics.ObserveStoreOperation("save_profile", start, err) }()

	if profile == nil || userID == "" {
		err = fmt.Errorf("%w: empty profile or user ID", ErrInvalidRecord)
		return err
	}

	data, merr := json.Marshal(profile)
	if merr != nil {
		err = fmt.Errorf("marshal profile: %w", merr)
		return err
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(profileKeyPrefix+userID), data)
	})
	if err != nil {
		return fmt.Errorf("store profile %s: %w", userID, err)
	}
	return nil
}

// Close closes the underlying BadgerDB.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}
