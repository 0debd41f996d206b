package service

import (
	"context"
	"testing"

	"github.com/solace-app/solace/backend/internal/models"
)

func TestExportMissingProfileIsNull(t *testing.T) {
	svc := NewDataService(
		newMockProfileRepository(),
		&mockMoodLogRepository{},
		&mockJournalRepository{},
		&mockEngagementRepository{},
		&mockAppEventRepository{},
	)

	export, err := svc.Export(context.Background(), "anon-unknown")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if export.Profile != nil {
		t.Errorf("expected nil profile for unknown user, got %+v", export.Profile)
	}
	if export.MoodLogs == nil || len(export.MoodLogs) != 0 {
		t.Errorf("expected empty mood_logs slice, got %v", export.MoodLogs)
	}
	if export.Journal == nil || len(export.Journal) != 0 {
		t.Errorf("expected empty journal slice, got %v", export.Journal)
	}
}

func TestExportBundlesUserData(t *testing.T) {
	profileRepo := newMockProfileRepository()
	profileRepo.profiles["anon-1"] = models.DefaultProfile("anon-1")
	moodRepo := &mockMoodLogRepository{
		logs: []models.MoodLog{
			moodAt("anon-1", 4, testNow, 0),
			moodAt("anon-2", 2, testNow, 0),
		},
	}
	journalRepo := &mockJournalRepository{
		entries: []models.JournalEntry{
			{ID: "j1", AnonymousID: "anon-1", Text: "mine"},
			{ID: "j2", AnonymousID: "anon-2", Text: "theirs"},
		},
	}
	svc := NewDataService(profileRepo, moodRepo, journalRepo, &mockEngagementRepository{}, &mockAppEventRepository{})

	export, err := svc.Export(context.Background(), "anon-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if export.Profile == nil || export.Profile.AnonymousID != "anon-1" {
		t.Errorf("expected anon-1 profile, got %+v", export.Profile)
	}
	if len(export.MoodLogs) != 1 {
		t.Errorf("expected 1 mood log, got %d", len(export.MoodLogs))
	}
	if len(export.Journal) != 1 || export.Journal[0].Text != "mine" {
		t.Errorf("expected only anon-1 journal entries, got %+v", export.Journal)
	}
}

func TestDeleteAllRemovesEverything(t *testing.T) {
	profileRepo := newMockProfileRepository()
	profileRepo.profiles["anon-1"] = models.DefaultProfile("anon-1")
	profileRepo.profiles["anon-2"] = models.DefaultProfile("anon-2")
	moodRepo := &mockMoodLogRepository{
		logs: []models.MoodLog{
			moodAt("anon-1", 4, testNow, 0),
			moodAt("anon-2", 2, testNow, 0),
		},
	}
	journalRepo := &mockJournalRepository{
		entries: []models.JournalEntry{{ID: "j1", AnonymousID: "anon-1", Text: "x"}},
	}
	engagementRepo := &mockEngagementRepository{
		engagements: []models.SuggestionEngagement{{ID: "e1", AnonymousID: "anon-1", SuggestionID: "breath-2"}},
	}
	eventRepo := &mockAppEventRepository{
		events: []models.AppEvent{{ID: "ev1", AnonymousID: "anon-1", Event: models.EventMoodLogged}},
	}
	svc := NewDataService(profileRepo, moodRepo, journalRepo, engagementRepo, eventRepo)

	if err := svc.DeleteAll(context.Background(), "anon-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := profileRepo.profiles["anon-1"]; ok {
		t.Error("expected anon-1 profile deleted")
	}
	if _, ok := profileRepo.profiles["anon-2"]; !ok {
		t.Error("anon-2 profile must survive anon-1 deletion")
	}
	if len(moodRepo.logs) != 1 || moodRepo.logs[0].AnonymousID != "anon-2" {
		t.Errorf("expected only anon-2 logs to remain, got %+v", moodRepo.logs)
	}
	if len(journalRepo.entries) != 0 {
		t.Errorf("expected journal entries deleted, got %d", len(journalRepo.entries))
	}
	if len(engagementRepo.engagements) != 0 {
		t.Errorf("expected engagements deleted, got %d", len(engagementRepo.engagements))
	}
	if len(eventRepo.events) != 0 {
		t.Errorf("expected events deleted, got %d", len(eventRepo.events))
	}
}

func TestDeleteAllPropagatesError(t *testing.T) {
	svc := NewDataService(
		newMockProfileRepository(),
		&mockMoodLogRepository{err: errTest},
		&mockJournalRepository{},
		&mockEngagementRepository{},
		&mockAppEventRepository{},
	)

	if err := svc.DeleteAll(context.Background(), "anon-1"); err == nil {
		t.Error("expected error, got nil")
	}
}
