package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/solace-app/solace/backend/internal/logger"
	"github.com/solace-app/solace/backend/internal/models"
	"github.com/solace-app/solace/backend/internal/repository"
)

type moodLogService struct {
	moodLogRepo repository.MoodLogRepository
	eventRepo   repository.AppEventRepository
	now         func() time.Time
}

// NewMoodLogService creates a new mood log service.
// now is the clock source; nil selects time.Now.
func NewMoodLogService(moodLogRepo repository.MoodLogRepository, eventRepo repository.AppEventRepository, now func() time.Time) MoodLogService {
	if now == nil {
		now = time.Now
	}
	return &moodLogService{
		moodLogRepo: moodLogRepo,
		eventRepo:   eventRepo,
		now:         now,
	}
}

// LogMood stores a mood check-in and records a mood_logged analytics event.
// The analytics write is best-effort: a failure there must not lose the log.
func (s *moodLogService) LogMood(ctx context.Context, req *models.CreateMoodLogRequest) (*models.MoodLog, error) {
	loggedAt := s.now().UTC()
	if req.LoggedAt != nil {
		loggedAt = req.LoggedAt.UTC()
	}

	log := &models.MoodLog{
		ID:          uuid.New().String(),
		AnonymousID: req.AnonymousID,
		Mood:        req.Mood,
		Emoji:       req.Emoji,
		Note:        req.Note,
		Tags:        req.Tags,
		LoggedAt:    loggedAt,
	}
	if log.Tags == nil {
		log.Tags = []string{}
	}

	created, err := s.moodLogRepo.Create(ctx, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create mood log: %w", err)
	}

	event := &models.AppEvent{
		ID:          uuid.New().String(),
		AnonymousID: req.AnonymousID,
		Event:       models.EventMoodLogged,
		Meta: map[string]any{
			"mood": req.Mood,
			"tags": log.Tags,
		},
		CreatedAt: s.now().UTC(),
	}
	if _, err := s.eventRepo.Create(ctx, event); err != nil {
		logger.Ctx(ctx).Warn("failed to record mood_logged event", logger.Err(err))
	}

	return created, nil
}

// GetRecentLogs returns the user's mood logs for the trailing window,
// oldest first.
func (s *moodLogService) GetRecentLogs(ctx context.Context, anonymousID string, days int) ([]models.MoodLog, error) {
	since := s.now().UTC().AddDate(0, 0, -days)

	logs, err := s.moodLogRepo.GetByAnonymousIDSince(ctx, anonymousID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to get mood logs: %w", err)
	}

	return logs, nil
}
