package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/solace-app/solace/backend/internal/logger"
	"github.com/solace-app/solace/backend/internal/models"
	"github.com/solace-app/solace/backend/internal/repository"
)

// ErrEmptyJournalText is returned when a journal entry has no content
// after trimming whitespace.
var ErrEmptyJournalText = errors.New("journal text is required")

type journalService struct {
	journalRepo repository.JournalRepository
	eventRepo   repository.AppEventRepository
	now         func() time.Time
}

// NewJournalService creates a new journal service.
// now is the clock source; nil selects time.Now.
func NewJournalService(journalRepo repository.JournalRepository, eventRepo repository.AppEventRepository, now func() time.Time) JournalService {
	if now == nil {
		now = time.Now
	}
	return &journalService{
		journalRepo: journalRepo,
		eventRepo:   eventRepo,
		now:         now,
	}
}

// AddEntry stores a journal entry and records a journal_saved analytics
// event. The analytics write is best-effort.
func (s *journalService) AddEntry(ctx context.Context, req *models.CreateJournalRequest) (*models.JournalEntry, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, ErrEmptyJournalText
	}

	entry := &models.JournalEntry{
		ID:           uuid.New().String(),
		AnonymousID:  req.AnonymousID,
		Text:         req.Text,
		MoodAtTime:   req.MoodAtTime,
		VoiceNoteURL: req.VoiceNoteURL,
		CreatedAt:    s.now().UTC(),
	}

	created, err := s.journalRepo.Create(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("failed to create journal entry: %w", err)
	}

	event := &models.AppEvent{
		ID:          uuid.New().String(),
		AnonymousID: req.AnonymousID,
		Event:       models.EventJournalSaved,
		CreatedAt:   s.now().UTC(),
	}
	if _, err := s.eventRepo.Create(ctx, event); err != nil {
		logger.Ctx(ctx).Warn("failed to record journal_saved event", logger.Err(err))
	}

	return created, nil
}

// GetEntries returns the user's journal entries, newest first.
func (s *journalService) GetEntries(ctx context.Context, anonymousID string, limit int) ([]models.JournalEntry, error) {
	entries, err := s.journalRepo.GetByAnonymousID(ctx, anonymousID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get journal entries: %w", err)
	}

	return entries, nil
}
