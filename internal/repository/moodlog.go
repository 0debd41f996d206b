package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/solace-app/solace/backend/internal/models"
	"github.com/solace-app/solace/backend/pkg/supabase"
)

type moodLogRepository struct {
	client *supabase.Client
}

// NewMoodLogRepository creates a new mood log repository
func NewMoodLogRepository(client *supabase.Client) MoodLogRepository {
	return &moodLogRepository{client: client}
}

func (r *moodLogRepository) Create(ctx context.Context, log *models.MoodLog) (*models.MoodLog, error) {
	data := map[string]interface{}{
		"anonymous_id": log.AnonymousID,
		"mood":         log.Mood,
		"tags":         log.Tags,
		"logged_at":    log.LoggedAt.Format(time.RFC3339),
	}

	if log.ID != "" {
		data["id"] = log.ID
	}
	if log.Emoji != "" {
		data["emoji"] = log.Emoji
	}
	if log.Note != nil {
		data["note"] = *log.Note
	}

	body, err := r.client.Insert("mood_logs", data)
	if err != nil {
		return nil, fmt.Errorf("failed to create mood log: %w", err)
	}

	var logs []models.MoodLog
	if err := json.Unmarshal(body, &logs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(logs) == 0 {
		return nil, fmt.Errorf("no mood log returned")
	}

	return &logs[0], nil
}

func (r *moodLogRepository) GetByAnonymousIDSince(ctx context.Context, anonymousID string, since time.Time) ([]models.MoodLog, error) {
	query := map[string]interface{}{
		"anonymous_id": fmt.Sprintf("eq.%s", anonymousID),
		"logged_at":    fmt.Sprintf("gte.%s", since.UTC().Format(time.RFC3339)),
		"select":       "*",
		"order":        "logged_at.asc",
	}

	body, err := r.client.Query("mood_logs", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get mood logs: %w", err)
	}

	var logs []models.MoodLog
	if err := json.Unmarshal(body, &logs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return logs, nil
}

func (r *moodLogRepository) GetAllByAnonymousID(ctx context.Context, anonymousID string) ([]models.MoodLog, error) {
	query := map[string]interface{}{
		"anonymous_id": fmt.Sprintf("eq.%s", anonymousID),
		"select":       "*",
		"order":        "logged_at.asc",
	}

	body, err := r.client.Query("mood_logs", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get mood logs: %w", err)
	}

	var logs []models.MoodLog
	if err := json.Unmarshal(body, &logs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return logs, nil
}

func (r *moodLogRepository) DeleteByAnonymousID(ctx context.Context, anonymousID string) error {
	query := map[string]interface{}{
		"anonymous_id": fmt.Sprintf("eq.%s", anonymousID),
	}

	if err := r.client.DeleteWhere("mood_logs", query); err != nil {
		return fmt.Errorf("failed to delete mood logs: %w", err)
	}

	return nil
}
