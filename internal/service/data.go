package service

import (
	"context"
	"fmt"

	"github.com/solace-app/solace/backend/internal/models"
	"github.com/solace-app/solace/backend/internal/repository"
)

type dataService struct {
	profileRepo    repository.ProfileRepository
	moodLogRepo    repository.MoodLogRepository
	journalRepo    repository.JournalRepository
	engagementRepo repository.EngagementRepository
	eventRepo      repository.AppEventRepository
}

// NewDataService creates a new data export/deletion service
func NewDataService(
	profileRepo repository.ProfileRepository,
	moodLogRepo repository.MoodLogRepository,
	journalRepo repository.JournalRepository,
	engagementRepo repository.EngagementRepository,
	eventRepo repository.AppEventRepository,
) DataService {
	return &dataService{
		profileRepo:    profileRepo,
		moodLogRepo:    moodLogRepo,
		journalRepo:    journalRepo,
		engagementRepo: engagementRepo,
		eventRepo:      eventRepo,
	}
}

// Export bundles everything stored for one anonymous ID. A missing profile
// exports as null rather than failing; logs and journal come back as empty
// lists.
func (s *dataService) Export(ctx context.Context, anonymousID string) (*models.ExportData, error) {
	profile, err := s.profileRepo.GetByAnonymousID(ctx, anonymousID)
	if err != nil {
		return nil, fmt.Errorf("failed to export profile: %w", err)
	}

	logs, err := s.moodLogRepo.GetAllByAnonymousID(ctx, anonymousID)
	if err != nil {
		return nil, fmt.Errorf("failed to export mood logs: %w", err)
	}
	if logs == nil {
		logs = []models.MoodLog{}
	}

	journal, err := s.journalRepo.GetAllByAnonymousID(ctx, anonymousID)
	if err != nil {
		return nil, fmt.Errorf("failed to export journal: %w", err)
	}
	if journal == nil {
		journal = []models.JournalEntry{}
	}

	return &models.ExportData{
		Profile:  profile,
		MoodLogs: logs,
		Journal:  journal,
	}, nil
}

// DeleteAll removes every record stored for one anonymous ID across all
// collections. Deletion is not transactional; a partial failure leaves the
// remaining collections untouched and surfaces the error.
func (s *dataService) DeleteAll(ctx context.Context, anonymousID string) error {
	if err := s.moodLogRepo.DeleteByAnonymousID(ctx, anonymousID); err != nil {
		return fmt.Errorf("failed to delete mood logs: %w", err)
	}
	if err := s.journalRepo.DeleteByAnonymousID(ctx, anonymousID); err != nil {
		return fmt.Errorf("failed to delete journal entries: %w", err)
	}
	if err := s.engagementRepo.DeleteByAnonymousID(ctx, anonymousID); err != nil {
		return fmt.Errorf("failed to delete engagements: %w", err)
	}
	if err := s.eventRepo.DeleteByAnonymousID(ctx, anonymousID); err != nil {
		return fmt.Errorf("failed to delete app events: %w", err)
	}
	if err := s.profileRepo.DeleteByAnonymousID(ctx, anonymousID); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	return nil
}
