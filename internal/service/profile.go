package service

import (
	"context"
	"fmt"
	"time"

	"github.com/solace-app/solace/backend/internal/models"
	"github.com/solace-app/solace/backend/internal/repository"
)

// Upsert result statuses
const (
	ProfileCreated = "created"
	ProfileUpdated = "updated"
)

type profileService struct {
	profileRepo repository.ProfileRepository
	now         func() time.Time
}

// NewProfileService creates a new profile service.
// now is the clock source; nil selects time.Now.
func NewProfileService(profileRepo repository.ProfileRepository, now func() time.Time) ProfileService {
	if now == nil {
		now = time.Now
	}
	return &profileService{
		profileRepo: profileRepo,
		now:         now,
	}
}

// UpsertProfile creates or updates the profile keyed by anonymous_id and
// reports which happened. Fields left nil in the request keep their stored
// values on update and the documented defaults on create.
func (s *profileService) UpsertProfile(ctx context.Context, req *models.UpsertProfileRequest) (string, error) {
	existing, err := s.profileRepo.GetByAnonymousID(ctx, req.AnonymousID)
	if err != nil {
		return "", fmt.Errorf("failed to look up profile: %w", err)
	}

	status := ProfileUpdated
	profile := existing
	if profile == nil {
		status = ProfileCreated
		profile = models.DefaultProfile(req.AnonymousID)
	}

	if req.Name != nil {
		profile.Name = req.Name
	}
	if req.Language != nil {
		profile.Language = *req.Language
	}
	if req.Goals != nil {
		profile.Goals = req.Goals
	}
	if req.NotifyEnabled != nil {
		profile.NotifyEnabled = *req.NotifyEnabled
	}
	if req.NotifyTimes != nil {
		profile.NotifyTimes = req.NotifyTimes
	}
	if req.PrivacyAnonymousMode != nil {
		profile.PrivacyAnonymousMode = *req.PrivacyAnonymousMode
	}
	if req.ReducedMotion != nil {
		profile.ReducedMotion = *req.ReducedMotion
	}
	profile.UpdatedAt = s.now().UTC()

	if _, err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return "", fmt.Errorf("failed to upsert profile: %w", err)
	}

	return status, nil
}

// GetProfile returns the stored profile, or the default profile when no
// record exists yet. Missing profiles are not an error: clients call this
// before onboarding completes.
func (s *profileService) GetProfile(ctx context.Context, anonymousID string) (*models.UserProfile, error) {
	profile, err := s.profileRepo.GetByAnonymousID(ctx, anonymousID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	if profile == nil {
		return models.DefaultProfile(anonymousID), nil
	}

	return profile, nil
}
