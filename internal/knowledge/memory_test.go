// SSG Advisor - Static Site Generator Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ssgadvisor

package knowledge

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/tomtom215/ssgadvisor/internal/catalog"
	"github.com/tomtom215/ssgadvisor/internal/models"
)

func TestMemoryStore_Analyses(t *testing.T) {
	t.Parallel()
	store := NewMemoryStore()
	ctx := context.Background()

	t.Run("upsert generates id when absent", func(t *testing.T) {
		id, err := store.UpsertAnalysis(ctx, &models.AnalysisRecord{
			Ecosystem:  catalog.EcosystemJavaScript,
			TotalFiles: 60,
		})
		if err != nil {
			t.Fatalf("UpsertAnalysis: %v", err)
		}
		if id == "" {
			t.Fatal("generated ID is empty")
		}

		record, err := store.GetAnalysis(ctx, id)
		if err != nil {
			t.Fatalf("GetAnalysis: %v", err)
		}
		if record.Ecosystem != catalog.EcosystemJavaScript || record.TotalFiles != 60 {
			t.Errorf("roundtrip mismatch: %+v", record)
		}
		if record.CreatedAt.IsZero() {
			t.Error("CreatedAt not set on upsert")
		}
	})

	t.Run("get unknown id fails with ErrAnalysisNotFound", func(t *testing.T) {
		_, err := store.GetAnalysis(ctx, "no-such-id")
		if !errors.Is(err, ErrAnalysisNotFound) {
			t.Errorf("error = %v, want ErrAnalysisNotFound", err)
		}
	})

	t.Run("nil record rejected", func(t *testing.T) {
		_, err := store.UpsertAnalysis(ctx, nil)
		if !errors.Is(err, ErrInvalidRecord) {
			t.Errorf("error = %v, want ErrInvalidRecord", err)
		}
	})

	t.Run("stored record isolated from caller mutation", func(t *testing.T) {
		record := &models.AnalysisRecord{
			Ecosystem: catalog.EcosystemPython,
			Languages: []string{"python"},
		}
		id, err := store.UpsertAnalysis(ctx, record)
		if err != nil {
			t.Fatalf("UpsertAnalysis: %v", err)
		}

		record.Languages[0] = "mutated"

		got, err := store.GetAnalysis(ctx, id)
		if err != nil {
			t.Fatalf("GetAnalysis: %v", err)
		}
		if got.Languages[0] != "python" {
			t.Error("stored record shares memory with the caller's slice")
		}
	})
}

func TestMemoryStore_Profiles(t *testing.T) {
	t.Parallel()
	store := NewMemoryStore()
	ctx := context.Background()

	t.Run("first access returns default", func(t *testing.T) {
		profile, err := store.GetPreferenceProfile(ctx, "nobody")
		if err != nil {
			t.Fatalf("GetPreferenceProfile: %v", err)
		}
		if len(profile.PreferredSSGs) != 0 || profile.AutoApplyPreferences {
			t.Errorf("default profile = %+v, want empty list and auto-apply off", profile)
		}
	})

	t.Run("save then get roundtrip", func(t *testing.T) {
		profile := models.DefaultProfile("u1")
		profile.PreferredSSGs = []catalog.SSG{catalog.Hugo}
		profile.AutoApplyPreferences = true
		profile.UsageCounts[catalog.Hugo] = 2

		if err := store.SavePreferenceProfile(ctx, "u1", profile); err != nil {
			t.Fatalf("SavePreferenceProfile: %v", err)
		}

		got, err := store.GetPreferenceProfile(ctx, "u1")
		if err != nil {
			t.Fatalf("GetPreferenceProfile: %v", err)
		}
		if !reflect.DeepEqual(got.PreferredSSGs, profile.PreferredSSGs) ||
			got.UsageCounts[catalog.Hugo] != 2 || !got.AutoApplyPreferences {
			t.Errorf("roundtrip mismatch: %+v", got)
		}
	})

	t.Run("save is a full replace", func(t *testing.T) {
		first := models.DefaultProfile("u2")
		first.PreferredSSGs = []catalog.SSG{catalog.Hugo, catalog.MkDocs}
		if err := store.SavePreferenceProfile(ctx, "u2", first); err != nil {
			t.Fatalf("SavePreferenceProfile: %v", err)
		}

		second := models.DefaultProfile("u2")
		second.PreferredSSGs = []catalog.SSG{catalog.Jekyll}
		if err := store.SavePreferenceProfile(ctx, "u2", second); err != nil {
			t.Fatalf("SavePreferenceProfile: %v", err)
		}

		got, err := store.GetPreferenceProfile(ctx, "u2")
		if err != nil {
			t.Fatalf("GetPreferenceProfile: %v", err)
		}
		if !reflect.DeepEqual(got.PreferredSSGs, []catalog.SSG{catalog.Jekyll}) {
			t.Errorf("list = %v, want full replace to [jekyll]", got.PreferredSSGs)
		}
	})

	t.Run("empty user id rejected", func(t *testing.T) {
		err := store.SavePreferenceProfile(ctx, "", models.DefaultProfile(""))
		if !errors.Is(err, ErrInvalidRecord) {
			t.Errorf("error = %v, want ErrInvalidRecord", err)
		}
	})
}
