package models

import "time"

// Language codes supported by the app
const (
	LanguageEnglish = "en"
	LanguageTamil   = "ta"
)

// UserProfile represents a device-scoped user profile.
// Users are anonymous; the anonymous_id associates local device data
// with backend records. No authentication is implied.
type UserProfile struct {
	AnonymousID          string    `json:"anonymous_id"`
	Name                 *string   `json:"name,omitempty"`
	Language             string    `json:"language"`
	Goals                []string  `json:"goals"`
	NotifyEnabled        bool      `json:"notify_enabled"`
	NotifyTimes          []string  `json:"notify_times"`
	PrivacyAnonymousMode bool      `json:"privacy_anonymous_mode"`
	ReducedMotion        bool      `json:"reduced_motion"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// DefaultProfile returns the profile served when no record exists yet.
func DefaultProfile(anonymousID string) *UserProfile {
	return &UserProfile{
		AnonymousID:          anonymousID,
		Language:             LanguageEnglish,
		Goals:                []string{},
		NotifyEnabled:        true,
		NotifyTimes:          []string{"09:00"},
		PrivacyAnonymousMode: true,
		ReducedMotion:        false,
	}
}

// UpsertProfileRequest represents the request to create or update a profile.
// Optional fields left nil keep their defaults (create) or stored values (update).
type UpsertProfileRequest struct {
	AnonymousID          string   `json:"anonymous_id" binding:"required"`
	Name                 *string  `json:"name"`
	Language             *string  `json:"language" binding:"omitempty,oneof=en ta"`
	Goals                []string `json:"goals" binding:"omitempty,dive,oneof=stress focus sleep"`
	NotifyEnabled        *bool    `json:"notify_enabled"`
	NotifyTimes          []string `json:"notify_times"`
	PrivacyAnonymousMode *bool    `json:"privacy_anonymous_mode"`
	ReducedMotion        *bool    `json:"reduced_motion"`
}

// MoodLog represents a single mood check-in
type MoodLog struct {
	ID          string    `json:"id,omitempty"`
	AnonymousID string    `json:"anonymous_id"`
	Mood        int       `json:"mood"`
	Emoji       string    `json:"emoji,omitempty"`
	Note        *string   `json:"note,omitempty"`
	Tags        []string  `json:"tags"`
	LoggedAt    time.Time `json:"logged_at"`
}

// CreateMoodLogRequest represents the request to record a mood check-in.
// LoggedAt defaults to the current time when omitted.
type CreateMoodLogRequest struct {
	AnonymousID string     `json:"anonymous_id" binding:"required"`
	Mood        int        `json:"mood" binding:"required,min=1,max=5"`
	Emoji       string     `json:"emoji"`
	Note        *string    `json:"note" binding:"omitempty,max=200"`
	Tags        []string   `json:"tags" binding:"omitempty,dive,oneof=work family sleep food"`
	LoggedAt    *time.Time `json:"logged_at"`
}

// JournalEntry represents a free-text journal entry
type JournalEntry struct {
	ID           string    `json:"id,omitempty"`
	AnonymousID  string    `json:"anonymous_id"`
	Text         string    `json:"text"`
	MoodAtTime   *int      `json:"mood_at_time,omitempty"`
	VoiceNoteURL *string   `json:"voice_note_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateJournalRequest represents the request to save a journal entry
type CreateJournalRequest struct {
	AnonymousID  string  `json:"anonymous_id" binding:"required"`
	Text         string  `json:"text" binding:"required,max=1500"`
	MoodAtTime   *int    `json:"mood_at_time" binding:"omitempty,min=1,max=5"`
	VoiceNoteURL *string `json:"voice_note_url"`
}

// EngagementAction represents how a user interacted with a suggestion
type EngagementAction string

const (
	EngagementViewed    EngagementAction = "viewed"
	EngagementCompleted EngagementAction = "completed"
	EngagementFavorited EngagementAction = "favorited"
)

// SuggestionEngagement records a user's interaction with a suggestion
type SuggestionEngagement struct {
	ID           string           `json:"id,omitempty"`
	AnonymousID  string           `json:"anonymous_id"`
	SuggestionID string           `json:"suggestion_id"`
	Action       EngagementAction `json:"action"`
	Reason       *string          `json:"reason,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
}

// TrackEngagementRequest represents the request to record a suggestion interaction
type TrackEngagementRequest struct {
	AnonymousID  string  `json:"anonymous_id" binding:"required"`
	SuggestionID string  `json:"suggestion_id" binding:"required"`
	Action       string  `json:"action" binding:"required,oneof=viewed completed favorited"`
	Reason       *string `json:"reason"`
}

// AppEvent represents an analytics event
type AppEvent struct {
	ID          string         `json:"id,omitempty"`
	AnonymousID string         `json:"anonymous_id"`
	Event       string         `json:"event"`
	Meta        map[string]any `json:"meta,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

// App event names. The set is closed; the ingestion endpoint rejects
// anything outside it.
const (
	EventMoodLogged          = "mood_logged"
	EventSuggestionViewed    = "suggestion_viewed"
	EventSuggestionCompleted = "suggestion_completed"
	EventJournalSaved        = "journal_saved"
	EventOnboardingCompleted = "onboarding_completed"
	EventDailyActiveUser     = "daily_active_user"
	EventRetention7          = "retention7"
	EventRetention30         = "retention30"
)

// TrackEventRequest represents the request to record a raw analytics event
type TrackEventRequest struct {
	AnonymousID string         `json:"anonymous_id" binding:"required"`
	Event       string         `json:"event" binding:"required,oneof=mood_logged suggestion_viewed suggestion_completed journal_saved onboarding_completed daily_active_user retention7 retention30"`
	Meta        map[string]any `json:"meta"`
}

// ExportData bundles everything stored for one anonymous ID
type ExportData struct {
	Profile  *UserProfile   `json:"profile"`
	MoodLogs []MoodLog      `json:"mood_logs"`
	Journal  []JournalEntry `json:"journal"`
}
