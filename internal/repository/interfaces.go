package repository

import (
	"context"
	"time"

	"github.com/solace-app/solace/backend/internal/models"
)

// ProfileRepository defines the interface for user profile data access
type ProfileRepository interface {
	GetByAnonymousID(ctx context.Context, anonymousID string) (*models.UserProfile, error)
	Upsert(ctx context.Context, profile *models.UserProfile) (*models.UserProfile, error)
	DeleteByAnonymousID(ctx context.Context, anonymousID string) error
}

// MoodLogRepository defines the interface for mood log data access
type MoodLogRepository interface {
	Create(ctx context.Context, log *models.MoodLog) (*models.MoodLog, error)
	GetByAnonymousIDSince(ctx context.Context, anonymousID string, since time.Time) ([]models.MoodLog, error)
	GetAllByAnonymousID(ctx context.Context, anonymousID string) ([]models.MoodLog, error)
	DeleteByAnonymousID(ctx context.Context, anonymousID string) error
}

// JournalRepository defines the interface for journal entry data access
type JournalRepository interface {
	Create(ctx context.Context, entry *models.JournalEntry) (*models.JournalEntry, error)
	GetByAnonymousID(ctx context.Context, anonymousID string, limit int) ([]models.JournalEntry, error)
	GetAllByAnonymousID(ctx context.Context, anonymousID string) ([]models.JournalEntry, error)
	DeleteByAnonymousID(ctx context.Context, anonymousID string) error
}

// EngagementRepository defines the interface for suggestion engagement data access
type EngagementRepository interface {
	Create(ctx context.Context, engagement *models.SuggestionEngagement) (*models.SuggestionEngagement, error)
	DeleteByAnonymousID(ctx context.Context, anonymousID string) error
}

// AppEventRepository defines the interface for analytics event data access
type AppEventRepository interface {
	Create(ctx context.Context, event *models.AppEvent) (*models.AppEvent, error)
	DeleteByAnonymousID(ctx context.Context, anonymousID string) error
}
