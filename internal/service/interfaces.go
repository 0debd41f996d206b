package service

import (
	"context"

	"github.com/solace-app/solace/backend/internal/models"
)

// ProfileService defines the interface for profile business logic
type ProfileService interface {
	UpsertProfile(ctx context.Context, req *models.UpsertProfileRequest) (string, error)
	GetProfile(ctx context.Context, anonymousID string) (*models.UserProfile, error)
}

// MoodLogService defines the interface for mood log business logic
type MoodLogService interface {
	LogMood(ctx context.Context, req *models.CreateMoodLogRequest) (*models.MoodLog, error)
	GetRecentLogs(ctx context.Context, anonymousID string, days int) ([]models.MoodLog, error)
}

// JournalService defines the interface for journal business logic
type JournalService interface {
	AddEntry(ctx context.Context, req *models.CreateJournalRequest) (*models.JournalEntry, error)
	GetEntries(ctx context.Context, anonymousID string, limit int) ([]models.JournalEntry, error)
}

// InsightsService defines the interface for insights business logic
type InsightsService interface {
	GetReport(ctx context.Context, anonymousID string, windowDays int) (*models.InsightsReport, error)
	GetSuggestions(ctx context.Context, anonymousID string, windowDays int) (*models.SuggestionResponse, error)
}

// AnalyticsService defines the interface for analytics business logic
type AnalyticsService interface {
	TrackEvent(ctx context.Context, req *models.TrackEventRequest) (*models.AppEvent, error)
	TrackEngagement(ctx context.Context, req *models.TrackEngagementRequest) (*models.SuggestionEngagement, error)
}

// DataService defines the interface for data export and deletion
type DataService interface {
	Export(ctx context.Context, anonymousID string) (*models.ExportData, error)
	DeleteAll(ctx context.Context, anonymousID string) error
}
