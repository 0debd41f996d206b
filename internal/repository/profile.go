package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/solace-app/solace/backend/internal/models"
	"github.com/solace-app/solace/backend/pkg/supabase"
)

type profileRepository struct {
	client *supabase.Client
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(client *supabase.Client) ProfileRepository {
	return &profileRepository{client: client}
}

func (r *profileRepository) GetByAnonymousID(ctx context.Context, anonymousID string) (*models.UserProfile, error) {
	query := map[string]interface{}{
		"anonymous_id": fmt.Sprintf("eq.%s", anonymousID),
		"select":       "*",
		"limit":        1,
	}

	body, err := r.client.Query("user_profiles", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	var profiles []models.UserProfile
	if err := json.Unmarshal(body, &profiles); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(profiles) == 0 {
		return nil, nil
	}

	return &profiles[0], nil
}

func (r *profileRepository) Upsert(ctx context.Context, profile *models.UserProfile) (*models.UserProfile, error) {
	data := map[string]interface{}{
		"anonymous_id":           profile.AnonymousID,
		"language":               profile.Language,
		"goals":                  profile.Goals,
		"notify_enabled":         profile.NotifyEnabled,
		"notify_times":           profile.NotifyTimes,
		"privacy_anonymous_mode": profile.PrivacyAnonymousMode,
		"reduced_motion":         profile.ReducedMotion,
		"updated_at":             profile.UpdatedAt,
	}

	if profile.Name != nil {
		data["name"] = *profile.Name
	}

	body, err := r.client.Upsert("user_profiles", data, "anonymous_id")
	if err != nil {
		return nil, fmt.Errorf("failed to upsert profile: %w", err)
	}

	var profiles []models.UserProfile
	if err := json.Unmarshal(body, &profiles); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(profiles) == 0 {
		return nil, fmt.Errorf("no profile returned")
	}

	return &profiles[0], nil
}

func (r *profileRepository) DeleteByAnonymousID(ctx context.Context, anonymousID string) error {
	query := map[string]interface{}{
		"anonymous_id": fmt.Sprintf("eq.%s", anonymousID),
	}

	if err := r.client.DeleteWhere("user_profiles", query); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	return nil
}
