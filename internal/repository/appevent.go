package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/solace-app/solace/backend/internal/models"
	"github.com/solace-app/solace/backend/pkg/supabase"
)

type appEventRepository struct {
	client *supabase.Client
}

// NewAppEventRepository creates a new app event repository
func NewAppEventRepository(client *supabase.Client) AppEventRepository {
	return &appEventRepository{client: client}
}

func (r *appEventRepository) Create(ctx context.Context, event *models.AppEvent) (*models.AppEvent, error) {
	data := map[string]interface{}{
		"anonymous_id": event.AnonymousID,
		"event":        event.Event,
		"created_at":   event.CreatedAt.Format(time.RFC3339),
	}

	if event.ID != "" {
		data["id"] = event.ID
	}
	if event.Meta != nil {
		data["meta"] = event.Meta
	}

	body, err := r.client.Insert("app_events", data)
	if err != nil {
		return nil, fmt.Errorf("failed to create app event: %w", err)
	}

	var events []models.AppEvent
	if err := json.Unmarshal(body, &events); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(events) == 0 {
		return nil, fmt.Errorf("no app event returned")
	}

	return &events[0], nil
}

func (r *appEventRepository) DeleteByAnonymousID(ctx context.Context, anonymousID string) error {
	query := map[string]interface{}{
		"anonymous_id": fmt.Sprintf("eq.%s", anonymousID),
	}

	if err := r.client.DeleteWhere("app_events", query); err != nil {
		return fmt.Errorf("failed to delete app events: %w", err)
	}

	return nil
}
