package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/solace-app/solace/backend/internal/models"
	"github.com/solace-app/solace/backend/pkg/supabase"
)

type engagementRepository struct {
	client *supabase.Client
}

// NewEngagementRepository creates a new engagement repository
func NewEngagementRepository(client *supabase.Client) EngagementRepository {
	return &engagementRepository{client: client}
}

func (r *engagementRepository) Create(ctx context.Context, engagement *models.SuggestionEngagement) (*models.SuggestionEngagement, error) {
	data := map[string]interface{}{
		"anonymous_id":  engagement.AnonymousID,
		"suggestion_id": engagement.SuggestionID,
		"action":        engagement.Action,
		"created_at":    engagement.CreatedAt.Format(time.RFC3339),
	}

	if engagement.ID != "" {
		data["id"] = engagement.ID
	}
	if engagement.Reason != nil {
		data["reason"] = *engagement.Reason
	}

	body, err := r.client.Insert("suggestion_engagements", data)
	if err != nil {
		return nil, fmt.Errorf("failed to create engagement: %w", err)
	}

	var engagements []models.SuggestionEngagement
	if err := json.Unmarshal(body, &engagements); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(engagements) == 0 {
		return nil, fmt.Errorf("no engagement returned")
	}

	return &engagements[0], nil
}

func (r *engagementRepository) DeleteByAnonymousID(ctx context.Context, anonymousID string) error {
	query := map[string]interface{}{
		"anonymous_id": fmt.Sprintf("eq.%s", anonymousID),
	}

	if err := r.client.DeleteWhere("suggestion_engagements", query); err != nil {
		return fmt.Errorf("failed to delete engagements: %w", err)
	}

	return nil
}
