package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/solace-app/solace/backend/internal/models"
	"github.com/solace-app/solace/backend/pkg/supabase"
)

type journalRepository struct {
	client *supabase.Client
}

// NewJournalRepository creates a new journal repository
func NewJournalRepository(client *supabase.Client) JournalRepository {
	return &journalRepository{client: client}
}

func (r *journalRepository) Create(ctx context.Context, entry *models.JournalEntry) (*models.JournalEntry, error) {
	data := map[string]interface{}{
		"anonymous_id": entry.AnonymousID,
		"text":         entry.Text,
		"created_at":   entry.CreatedAt.Format(time.RFC3339),
	}

	if entry.ID != "" {
		data["id"] = entry.ID
	}
	if entry.MoodAtTime != nil {
		data["mood_at_time"] = *entry.MoodAtTime
	}
	if entry.VoiceNoteURL != nil {
		data["voice_note_url"] = *entry.VoiceNoteURL
	}

	body, err := r.client.Insert("journal_entries", data)
	if err != nil {
		return nil, fmt.Errorf("failed to create journal entry: %w", err)
	}

	var entries []models.JournalEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("no journal entry returned")
	}

	return &entries[0], nil
}

func (r *journalRepository) GetByAnonymousID(ctx context.Context, anonymousID string, limit int) ([]models.JournalEntry, error) {
	query := map[string]interface{}{
		"anonymous_id": fmt.Sprintf("eq.%s", anonymousID),
		"select":       "*",
		"order":        "created_at.desc",
		"limit":        limit,
	}

	body, err := r.client.Query("journal_entries", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get journal entries: %w", err)
	}

	var entries []models.JournalEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return entries, nil
}

func (r *journalRepository) GetAllByAnonymousID(ctx context.Context, anonymousID string) ([]models.JournalEntry, error) {
	query := map[string]interface{}{
		"anonymous_id": fmt.Sprintf("eq.%s", anonymousID),
		"select":       "*",
		"order":        "created_at.desc",
	}

	body, err := r.client.Query("journal_entries", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get journal entries: %w", err)
	}

	var entries []models.JournalEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return entries, nil
}

func (r *journalRepository) DeleteByAnonymousID(ctx context.Context, anonymousID string) error {
	query := map[string]interface{}{
		"anonymous_id": fmt.Sprintf("eq.%s", anonymousID),
	}

	if err := r.client.DeleteWhere("journal_entries", query); err != nil {
		return fmt.Errorf("failed to delete journal entries: %w", err)
	}

	return nil
}
