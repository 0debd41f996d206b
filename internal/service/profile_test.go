package service

import (
	"context"
	"reflect"
	"testing"

	"github.com/solace-app/solace/backend/internal/models"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestUpsertProfileCreatesWithDefaults(t *testing.T) {
	repo := newMockProfileRepository()
	svc := NewProfileService(repo, fixedClock(testNow))

	status, err := svc.UpsertProfile(context.Background(), &models.UpsertProfileRequest{
		AnonymousID: "anon-1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != ProfileCreated {
		t.Errorf("expected status %q, got %q", ProfileCreated, status)
	}

	stored := repo.profiles["anon-1"]
	if stored == nil {
		t.Fatal("profile not stored")
	}
	if stored.Language != models.LanguageEnglish {
		t.Errorf("expected default language en, got %s", stored.Language)
	}
	if !stored.NotifyEnabled {
		t.Error("expected notify_enabled true by default")
	}
	if !reflect.DeepEqual(stored.NotifyTimes, []string{"09:00"}) {
		t.Errorf("expected default notify_times [09:00], got %v", stored.NotifyTimes)
	}
	if !stored.PrivacyAnonymousMode {
		t.Error("expected privacy_anonymous_mode true by default")
	}
	if !reflect.DeepEqual(stored.Goals, []string{}) {
		t.Errorf("expected empty goals, got %v", stored.Goals)
	}
	if !stored.UpdatedAt.Equal(testNow.UTC()) {
		t.Errorf("expected updated_at %v, got %v", testNow.UTC(), stored.UpdatedAt)
	}
}

func TestUpsertProfileUpdatesExisting(t *testing.T) {
	repo := newMockProfileRepository()
	svc := NewProfileService(repo, fixedClock(testNow))

	if _, err := svc.UpsertProfile(context.Background(), &models.UpsertProfileRequest{
		AnonymousID: "anon-1",
		Name:        strPtr("Asha"),
		Goals:       []string{"stress", "sleep"},
	}); err != nil {
		t.Fatalf("unexpected error on create: %v", err)
	}

	// Second call only changes the language; everything else keeps its value
	status, err := svc.UpsertProfile(context.Background(), &models.UpsertProfileRequest{
		AnonymousID: "anon-1",
		Language:    strPtr(models.LanguageTamil),
	})
	if err != nil {
		t.Fatalf("unexpected error on update: %v", err)
	}
	if status != ProfileUpdated {
		t.Errorf("expected status %q, got %q", ProfileUpdated, status)
	}

	stored := repo.profiles["anon-1"]
	if stored.Language != models.LanguageTamil {
		t.Errorf("expected language ta, got %s", stored.Language)
	}
	if stored.Name == nil || *stored.Name != "Asha" {
		t.Errorf("expected name preserved, got %v", stored.Name)
	}
	if !reflect.DeepEqual(stored.Goals, []string{"stress", "sleep"}) {
		t.Errorf("expected goals preserved, got %v", stored.Goals)
	}
	if repo.upsertCalls != 2 {
		t.Errorf("expected 2 upsert calls, got %d", repo.upsertCalls)
	}
}

func TestUpsertProfileDisableNotifications(t *testing.T) {
	repo := newMockProfileRepository()
	svc := NewProfileService(repo, fixedClock(testNow))

	if _, err := svc.UpsertProfile(context.Background(), &models.UpsertProfileRequest{
		AnonymousID:   "anon-1",
		NotifyEnabled: boolPtr(false),
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.profiles["anon-1"].NotifyEnabled {
		t.Error("expected notify_enabled false after explicit disable")
	}
}

func TestGetProfileReturnsDefaultsWhenMissing(t *testing.T) {
	repo := newMockProfileRepository()
	svc := NewProfileService(repo, fixedClock(testNow))

	profile, err := svc.GetProfile(context.Background(), "anon-unknown")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := models.DefaultProfile("anon-unknown")
	if !reflect.DeepEqual(profile, want) {
		t.Errorf("expected default profile %+v, got %+v", want, profile)
	}
}

func TestProfileServicePropagatesRepoError(t *testing.T) {
	repo := newMockProfileRepository()
	repo.err = errTest
	svc := NewProfileService(repo, fixedClock(testNow))

	if _, err := svc.GetProfile(context.Background(), "anon-1"); err == nil {
		t.Error("expected error from GetProfile, got nil")
	}
	if _, err := svc.UpsertProfile(context.Background(), &models.UpsertProfileRequest{AnonymousID: "anon-1"}); err == nil {
		t.Error("expected error from UpsertProfile, got nil")
	}
}
