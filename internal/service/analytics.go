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

type analyticsService struct {
	engagementRepo repository.EngagementRepository
	eventRepo      repository.AppEventRepository
	now            func() time.Time
}

// NewAnalyticsService creates a new analytics service.
// now is the clock source; nil selects time.Now.
func NewAnalyticsService(engagementRepo repository.EngagementRepository, eventRepo repository.AppEventRepository, now func() time.Time) AnalyticsService {
	if now == nil {
		now = time.Now
	}
	return &analyticsService{
		engagementRepo: engagementRepo,
		eventRepo:      eventRepo,
		now:            now,
	}
}

// TrackEvent stores a raw analytics event. The event name set is closed and
// validated at the HTTP boundary.
func (s *analyticsService) TrackEvent(ctx context.Context, req *models.TrackEventRequest) (*models.AppEvent, error) {
	event := &models.AppEvent{
		ID:          uuid.New().String(),
		AnonymousID: req.AnonymousID,
		Event:       req.Event,
		Meta:        req.Meta,
		CreatedAt:   s.now().UTC(),
	}

	created, err := s.eventRepo.Create(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("failed to create app event: %w", err)
	}

	return created, nil
}

// TrackEngagement stores a suggestion interaction and mirrors viewed and
// completed actions into the analytics stream. Favorited stays private to
// the engagement table. The mirror write is best-effort.
func (s *analyticsService) TrackEngagement(ctx context.Context, req *models.TrackEngagementRequest) (*models.SuggestionEngagement, error) {
	engagement := &models.SuggestionEngagement{
		ID:           uuid.New().String(),
		AnonymousID:  req.AnonymousID,
		SuggestionID: req.SuggestionID,
		Action:       models.EngagementAction(req.Action),
		Reason:       req.Reason,
		CreatedAt:    s.now().UTC(),
	}

	created, err := s.engagementRepo.Create(ctx, engagement)
	if err != nil {
		return nil, fmt.Errorf("failed to create engagement: %w", err)
	}

	if engagement.Action == models.EngagementViewed || engagement.Action == models.EngagementCompleted {
		event := &models.AppEvent{
			ID:          uuid.New().String(),
			AnonymousID: req.AnonymousID,
			Event:       fmt.Sprintf("suggestion_%s", engagement.Action),
			Meta: map[string]any{
				"suggestion_id": req.SuggestionID,
			},
			CreatedAt: s.now().UTC(),
		}
		if _, err := s.eventRepo.Create(ctx, event); err != nil {
			logger.Ctx(ctx).Warn("failed to mirror engagement event", logger.Err(err))
		}
	}

	return created, nil
}
