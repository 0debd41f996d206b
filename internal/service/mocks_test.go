package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/solace-app/solace/backend/internal/models"
)

var errTest = errors.New("store unavailable")

// mockMoodLogRepository is an in-memory MoodLogRepository for testing
type mockMoodLogRepository struct {
	logs        []models.MoodLog
	createCalls int
	lastSince   time.Time
	err         error
}

func (m *mockMoodLogRepository) Create(ctx context.Context, log *models.MoodLog) (*models.MoodLog, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.createCalls++
	m.logs = append(m.logs, *log)
	return log, nil
}

func (m *mockMoodLogRepository) GetByAnonymousIDSince(ctx context.Context, anonymousID string, since time.Time) ([]models.MoodLog, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.lastSince = since
	var result []models.MoodLog
	for _, l := range m.logs {
		if l.AnonymousID == anonymousID && !l.LoggedAt.Before(since) {
			result = append(result, l)
		}
	}
	return result, nil
}

func (m *mockMoodLogRepository) GetAllByAnonymousID(ctx context.Context, anonymousID string) ([]models.MoodLog, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []models.MoodLog
	for _, l := range m.logs {
		if l.AnonymousID == anonymousID {
			result = append(result, l)
		}
	}
	return result, nil
}

func (m *mockMoodLogRepository) DeleteByAnonymousID(ctx context.Context, anonymousID string) error {
	if m.err != nil {
		return m.err
	}
	var kept []models.MoodLog
	for _, l := range m.logs {
		if l.AnonymousID != anonymousID {
			kept = append(kept, l)
		}
	}
	m.logs = kept
	return nil
}

// mockProfileRepository is an in-memory ProfileRepository for testing
type mockProfileRepository struct {
	profiles    map[string]*models.UserProfile
	upsertCalls int
	err         error
}

func newMockProfileRepository() *mockProfileRepository {
	return &mockProfileRepository{profiles: make(map[string]*models.UserProfile)}
}

func (m *mockProfileRepository) GetByAnonymousID(ctx context.Context, anonymousID string) (*models.UserProfile, error) {
	if m.err != nil {
		return nil, m.err
	}
	if p, ok := m.profiles[anonymousID]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, nil
}

func (m *mockProfileRepository) Upsert(ctx context.Context, profile *models.UserProfile) (*models.UserProfile, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.upsertCalls++
	copied := *profile
	m.profiles[profile.AnonymousID] = &copied
	return profile, nil
}

func (m *mockProfileRepository) DeleteByAnonymousID(ctx context.Context, anonymousID string) error {
	if m.err != nil {
		return m.err
	}
	delete(m.profiles, anonymousID)
	return nil
}

// mockJournalRepository is an in-memory JournalRepository for testing
type mockJournalRepository struct {
	entries     []models.JournalEntry
	createCalls int
	err         error
}

func (m *mockJournalRepository) Create(ctx context.Context, entry *models.JournalEntry) (*models.JournalEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.createCalls++
	m.entries = append(m.entries, *entry)
	return entry, nil
}

func (m *mockJournalRepository) GetByAnonymousID(ctx context.Context, anonymousID string, limit int) ([]models.JournalEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []models.JournalEntry
	for _, e := range m.entries {
		if e.AnonymousID == anonymousID {
			result = append(result, e)
		}
		if len(result) == limit {
			break
		}
	}
	return result, nil
}

func (m *mockJournalRepository) GetAllByAnonymousID(ctx context.Context, anonymousID string) ([]models.JournalEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []models.JournalEntry
	for _, e := range m.entries {
		if e.AnonymousID == anonymousID {
			result = append(result, e)
		}
	}
	return result, nil
}

func (m *mockJournalRepository) DeleteByAnonymousID(ctx context.Context, anonymousID string) error {
	if m.err != nil {
		return m.err
	}
	var kept []models.JournalEntry
	for _, e := range m.entries {
		if e.AnonymousID != anonymousID {
			kept = append(kept, e)
		}
	}
	m.entries = kept
	return nil
}

// mockEngagementRepository is an in-memory EngagementRepository for testing
type mockEngagementRepository struct {
	engagements []models.SuggestionEngagement
	err         error
}

func (m *mockEngagementRepository) Create(ctx context.Context, engagement *models.SuggestionEngagement) (*models.SuggestionEngagement, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.engagements = append(m.engagements, *engagement)
	return engagement, nil
}

func (m *mockEngagementRepository) DeleteByAnonymousID(ctx context.Context, anonymousID string) error {
	if m.err != nil {
		return m.err
	}
	var kept []models.SuggestionEngagement
	for _, e := range m.engagements {
		if e.AnonymousID != anonymousID {
			kept = append(kept, e)
		}
	}
	m.engagements = kept
	return nil
}

// mockAppEventRepository is an in-memory AppEventRepository for testing
type mockAppEventRepository struct {
	events []models.AppEvent
	err    error
}

func (m *mockAppEventRepository) Create(ctx context.Context, event *models.AppEvent) (*models.AppEvent, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.events = append(m.events, *event)
	return event, nil
}

func (m *mockAppEventRepository) DeleteByAnonymousID(ctx context.Context, anonymousID string) error {
	if m.err != nil {
		return m.err
	}
	var kept []models.AppEvent
	for _, e := range m.events {
		if e.AnonymousID != anonymousID {
			kept = append(kept, e)
		}
	}
	m.events = kept
	return nil
}

// fixedClock returns a clock function pinned to t
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// moodAt builds a mood log for the given user at a day offset from base
func moodAt(anonymousID string, mood int, base time.Time, dayOffset int) models.MoodLog {
	return models.MoodLog{
		ID:          fmt.Sprintf("log-%d-%d", mood, dayOffset),
		AnonymousID: anonymousID,
		Mood:        mood,
		Tags:        []string{},
		LoggedAt:    base.AddDate(0, 0, dayOffset),
	}
}
