// SSG Advisor - Static Site Generator Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ssgadvisor

package preference

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/tomtom215/ssgadvisor/internal/catalog"
	"github.com/tomtom215/ssgadvisor/internal/knowledge"
)

func boolPtr(b bool) *bool { return &b }

func listPtr(ssgs ...catalog.SSG) *[]catalog.SSG { return &ssgs }

func TestManager_GetOrCreateProfile_Default(t *testing.T) {
	t.Parallel()
	manager := NewManager(knowledge.NewMemoryStore())

	profile, err := manager.GetOrCreateProfile(context.Background(), "fresh-user")
	if err != nil {
		t.Fatalf("GetOrCreateProfile: %v", err)
	}

	if profile.UserID != "fresh-user" {
		t.Errorf("userID = %s, want fresh-user", profile.UserID)
	}
	if len(profile.PreferredSSGs) != 0 {
		t.Errorf("preferredSSGs = %v, want empty", profile.PreferredSSGs)
	}
	if profile.AutoApplyPreferences {
		t.Error("autoApplyPreferences = true, want false by default")
	}
}

func TestManager_UpdatePreferences(t *testing.T) {
	t.Parallel()

	t.Run("merges partial fields", func(t *testing.T) {
		t.Parallel()
		manager := NewManager(knowledge.NewMemoryStore())
		ctx := context.Background()

		if _, err := manager.UpdatePreferences(ctx, "u", Update{
			PreferredSSGs: listPtr(catalog.Hugo, catalog.Eleventy),
		}); err != nil {
			t.Fatalf("UpdatePreferences: %v", err)
		}

		// Toggling the flag must not disturb the stored list.
		profile, err := manager.UpdatePreferences(ctx, "u", Update{
			AutoApplyPreferences: boolPtr(true),
		})
		if err != nil {
			t.Fatalf("UpdatePreferences: %v", err)
		}

		want := []catalog.SSG{catalog.Hugo, catalog.Eleventy}
		if !reflect.DeepEqual(profile.PreferredSSGs, want) {
			t.Errorf("preferredSSGs = %v, want %v", profile.PreferredSSGs, want)
		}
		if !profile.AutoApplyPreferences {
			t.Error("autoApplyPreferences = false, want true")
		}
	})

	t.Run("rejects unknown generator", func(t *testing.T) {
		t.Parallel()
		manager := NewManager(knowledge.NewMemoryStore())

		_, err := manager.UpdatePreferences(context.Background(), "u", Update{
			PreferredSSGs: listPtr(catalog.Hugo, catalog.SSG("gatsby")),
		})
		if !errors.Is(err, ErrInvalidPreference) {
			t.Errorf("error = %v, want ErrInvalidPreference", err)
		}
	})

	t.Run("rejects duplicates", func(t *testing.T) {
		t.Parallel()
		manager := NewManager(knowledge.NewMemoryStore())

		_, err := manager.UpdatePreferences(context.Background(), "u", Update{
			PreferredSSGs: listPtr(catalog.Hugo, catalog.MkDocs, catalog.Hugo),
		})
		if !errors.Is(err, ErrInvalidPreference) {
			t.Errorf("error = %v, want ErrInvalidPreference", err)
		}
	})

	t.Run("reject is atomic", func(t *testing.T) {
		t.Parallel()
		store := knowledge.NewMemoryStore()
		manager := NewManager(store)
		ctx := context.Background()

		if _, err := manager.UpdatePreferences(ctx, "u", Update{
			PreferredSSGs:        listPtr(catalog.MkDocs),
			AutoApplyPreferences: boolPtr(true),
		}); err != nil {
			t.Fatalf("UpdatePreferences: %v", err)
		}

		if _, err := manager.UpdatePreferences(ctx, "u", Update{
			PreferredSSGs:        listPtr(catalog.SSG("sphinx")),
			AutoApplyPreferences: boolPtr(false),
		}); !errors.Is(err, ErrInvalidPreference) {
			t.Fatalf("error = %v, want ErrInvalidPreference", err)
		}

		profile, err := store.GetPreferenceProfile(ctx, "u")
		if err != nil {
			t.Fatalf("GetPreferenceProfile: %v", err)
		}
		if !reflect.DeepEqual(profile.PreferredSSGs, []catalog.SSG{catalog.MkDocs}) {
			t.Errorf("stored list = %v, want untouched [mkdocs]", profile.PreferredSSGs)
		}
		if !profile.AutoApplyPreferences {
			t.Error("stored autoApply flipped by a rejected update")
		}
	})
}

func TestManager_RecordUsage(t *testing.T) {
	t.Parallel()

	t.Run("increments and reorders by usage", func(t *testing.T) {
		t.Parallel()
		manager := NewManager(knowledge.NewMemoryStore())
		ctx := context.Background()

		if _, err := manager.UpdatePreferences(ctx, "u", Update{
			PreferredSSGs: listPtr(catalog.Docusaurus, catalog.Hugo, catalog.Eleventy),
		}); err != nil {
			t.Fatalf("UpdatePreferences: %v", err)
		}

		for i := 0; i < 3; i++ {
			if _, err := manager.RecordUsage(ctx, "u", catalog.Hugo); err != nil {
				t.Fatalf("RecordUsage: %v", err)
			}
		}
		profile, err := manager.RecordUsage(ctx, "u", catalog.Eleventy)
		if err != nil {
			t.Fatalf("RecordUsage: %v", err)
		}

		want := []catalog.SSG{catalog.Hugo, catalog.Eleventy, catalog.Docusaurus}
		if !reflect.DeepEqual(profile.PreferredSSGs, want) {
			t.Errorf("preferredSSGs = %v, want %v", profile.PreferredSSGs, want)
		}
		if profile.UsageCounts[catalog.Hugo] != 3 {
			t.Errorf("hugo usage = %d, want 3", profile.UsageCounts[catalog.Hugo])
		}
	})

	t.Run("ties keep prior relative order", func(t *testing.T) {
		t.Parallel()
		manager := NewManager(knowledge.NewMemoryStore())
		ctx := context.Background()

		if _, err := manager.UpdatePreferences(ctx, "u", Update{
			PreferredSSGs: listPtr(catalog.Docusaurus, catalog.Hugo, catalog.Eleventy),
		}); err != nil {
			t.Fatalf("UpdatePreferences: %v", err)
		}

		// docusaurus and hugo end up tied at 1; their order must not flip.
		if _, err := manager.RecordUsage(ctx, "u", catalog.Docusaurus); err != nil {
			t.Fatalf("RecordUsage: %v", err)
		}
		profile, err := manager.RecordUsage(ctx, "u", catalog.Hugo)
		if err != nil {
			t.Fatalf("RecordUsage: %v", err)
		}

		want := []catalog.SSG{catalog.Docusaurus, catalog.Hugo, catalog.Eleventy}
		if !reflect.DeepEqual(profile.PreferredSSGs, want) {
			t.Errorf("preferredSSGs = %v, want %v (stable on ties)", profile.PreferredSSGs, want)
		}
	})

	t.Run("idempotent reordering", func(t *testing.T) {
		t.Parallel()
		manager := NewManager(knowledge.NewMemoryStore())
		ctx := context.Background()

		if _, err := manager.UpdatePreferences(ctx, "u", Update{
			PreferredSSGs: listPtr(catalog.Docusaurus, catalog.Hugo),
		}); err != nil {
			t.Fatalf("UpdatePreferences: %v", err)
		}
		first, err := manager.RecordUsage(ctx, "u", catalog.Hugo)
		if err != nil {
			t.Fatalf("RecordUsage: %v", err)
		}
		second, err := manager.RecordUsage(ctx, "u", catalog.Hugo)
		if err != nil {
			t.Fatalf("RecordUsage: %v", err)
		}

		if !reflect.DeepEqual(first.PreferredSSGs, second.PreferredSSGs) {
			t.Errorf("order changed between equal-outcome reorders: %v vs %v",
				first.PreferredSSGs, second.PreferredSSGs)
		}
	})

	t.Run("rejects generator outside catalog", func(t *testing.T) {
		t.Parallel()
		manager := NewManager(knowledge.NewMemoryStore())

		_, err := manager.RecordUsage(context.Background(), "u", catalog.SSG("pelican"))
		if !errors.Is(err, ErrInvalidPreference) {
			t.Errorf("error = %v, want ErrInvalidPreference", err)
		}
	})
}

func TestManager_ConcurrentSameUser(t *testing.T) {
	t.Parallel()
	manager := NewManager(knowledge.NewMemoryStore())
	ctx := context.Background()

	const workers = 16
	const perWorker = 10

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				if _, err := manager.RecordUsage(ctx, "shared-user", catalog.Hugo); err != nil {
					t.Errorf("RecordUsage: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()

	profile, err := manager.GetOrCreateProfile(ctx, "shared-user")
	if err != nil {
		t.Fatalf("GetOrCreateProfile: %v", err)
	}
	if got := profile.UsageCounts[catalog.Hugo]; got != workers*perWorker {
		t.Errorf("usage count = %d, want %d (no lost updates)", got, workers*perWorker)
	}
}

func TestManager_ConcurrentDistinctUsers(t *testing.T) {
	t.Parallel()
	manager := NewManager(knowledge.NewMemoryStore())
	ctx := context.Background()

	users := []string{"alpha", "beta", "gamma", "delta"}
	var wg sync.WaitGroup
	for _, user := range users {
		wg.Add(1)
		go func(u string) {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				if _, err := manager.RecordUsage(ctx, u, catalog.MkDocs); err != nil {
					t.Errorf("RecordUsage(%s): %v", u, err)
					return
				}
			}
		}(user)
	}
	wg.Wait()

	for _, user := range users {
		profile, err := manager.GetOrCreateProfile(ctx, user)
		if err != nil {
			t.Fatalf("GetOrCreateProfile(%s): %v", user, err)
		}
		if got := profile.UsageCounts[catalog.MkDocs]; got != 20 {
			t.Errorf("usage count for %s = %d, want 20", user, got)
		}
	}
}
