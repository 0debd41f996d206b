package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/solace-app/solace/backend/internal/models"
	"github.com/solace-app/solace/backend/internal/repository"
)

const dateLayout = "2006-01-02"

// Suggestion reason strings. The rule table below is a closed, hand-authored
// decision table; the same (avg_mood, entries) pair always yields the same
// picks and reason.
const (
	ReasonFirstSteps = "Suggested to help you start your routine"
	ReasonLowMood    = "Suggested because your average mood has been low this week"
	ReasonRecentLogs = "Suggested based on your recent logs"
)

// DefaultSuggestionCatalog returns the built-in activity catalog.
// Order matters: the suggestion rules reference entries by index.
func DefaultSuggestionCatalog() []models.Suggestion {
	return []models.Suggestion{
		{ID: "breath-2", Title: "Try this quick breathing reset", DurationMinutes: 2, Type: "breathing"},
		{ID: "meditate-5", Title: "Mini meditation", DurationMinutes: 5, Type: "meditation"},
		{ID: "walk-5", Title: "Micro-walk", DurationMinutes: 5, Type: "walk"},
		{ID: "affirm-1", Title: "Affirmation card", DurationMinutes: 1, Type: "affirmation"},
	}
}

// round2 rounds to 2 decimal places, half away from zero.
// Moods are in [1,5] so this is round-half-up.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// ComputeInsights aggregates mood logs into window statistics.
// Callers pass logs already filtered to the trailing window; now is the
// reference instant for the streak walk and is injected so the computation
// is deterministic. Logs are assumed well-formed (mood in range); that is
// the store's contract, not checked here.
func ComputeInsights(logs []models.MoodLog, now time.Time) models.Insights {
	if len(logs) == 0 {
		return models.Insights{ByDay: []models.DayAverage{}}
	}

	sum := 0
	moodsByDay := make(map[string][]int)
	for _, l := range logs {
		sum += l.Mood
		day := l.LoggedAt.UTC().Format(dateLayout)
		moodsByDay[day] = append(moodsByDay[day], l.Mood)
	}
	avg := round2(float64(sum) / float64(len(logs)))

	byDay := make([]models.DayAverage, 0, len(moodsByDay))
	for day, moods := range moodsByDay {
		daySum := 0
		for _, m := range moods {
			daySum += m
		}
		byDay = append(byDay, models.DayAverage{
			Date: day,
			Avg:  round2(float64(daySum) / float64(len(moods))),
		})
	}
	sort.Slice(byDay, func(i, j int) bool { return byDay[i].Date < byDay[j].Date })

	// Walk backward from today (UTC); the streak breaks at the first
	// missing date, so a log today is required for streak >= 1.
	streak := 0
	for d := now.UTC(); ; d = d.AddDate(0, 0, -1) {
		if _, ok := moodsByDay[d.Format(dateLayout)]; !ok {
			break
		}
		streak++
	}

	return models.Insights{
		AvgMood: &avg,
		Entries: len(logs),
		Streak:  streak,
		ByDay:   byDay,
	}
}

// SelectSuggestions picks two catalog entries for the user based on their
// insights. Rules are evaluated in order; first match wins. The catalog must
// have at least four entries.
func SelectSuggestions(insights models.Insights, catalog []models.Suggestion) models.SuggestionResponse {
	var reason string
	var items []models.Suggestion

	switch {
	case insights.AvgMood == nil:
		items = []models.Suggestion{catalog[0], catalog[1]}
		reason = ReasonFirstSteps
	case *insights.AvgMood < 3 && insights.Entries >= 3:
		items = []models.Suggestion{catalog[0], catalog[1]}
		reason = ReasonLowMood
	default:
		items = []models.Suggestion{catalog[2], catalog[3]}
		reason = ReasonRecentLogs
	}

	return models.SuggestionResponse{
		Reason:   reason,
		Items:    items,
		Insights: insights,
	}
}

// Summarize produces the short natural-language summary and suggested
// actions for the insights report. This is deterministic string templating;
// the ai_summary response field name is historical, there is no model call.
func Summarize(insights models.Insights) (summary, actions []string) {
	summary = []string{}
	actions = []string{}

	if insights.AvgMood == nil {
		summary = append(summary, "No logs yet. Start with a 2-minute breathing reset.")
		actions = append(actions, "Set a daily reminder at a calm time.")
		return summary, actions
	}

	if *insights.AvgMood < 3 {
		summary = append(summary, "Mood has been on the lower side recently.")
		actions = append(actions, "Try a daily 5-minute mini meditation for 3 days.")
	} else {
		summary = append(summary, "You're maintaining a stable mood trend.")
		actions = append(actions, "Keep up the short check-ins and a micro-walk.")
	}

	if insights.Streak >= 3 {
		summary = append(summary, fmt.Sprintf("Nice streak: %d days in a row.", insights.Streak))
	}

	return summary, actions
}

type insightsService struct {
	moodLogRepo repository.MoodLogRepository
	catalog     []models.Suggestion
	now         func() time.Time
}

// NewInsightsService creates a new insights service. The catalog is injected
// so tests can substitute alternates; nil selects the default catalog.
// now is the clock source; nil selects time.Now.
func NewInsightsService(moodLogRepo repository.MoodLogRepository, catalog []models.Suggestion, now func() time.Time) InsightsService {
	if catalog == nil {
		catalog = DefaultSuggestionCatalog()
	}
	if now == nil {
		now = time.Now
	}
	return &insightsService{
		moodLogRepo: moodLogRepo,
		catalog:     catalog,
		now:         now,
	}
}

func (s *insightsService) windowedInsights(ctx context.Context, anonymousID string, windowDays int) (models.Insights, error) {
	now := s.now()
	since := now.UTC().AddDate(0, 0, -windowDays)

	logs, err := s.moodLogRepo.GetByAnonymousIDSince(ctx, anonymousID, since)
	if err != nil {
		return models.Insights{}, fmt.Errorf("failed to get mood logs: %w", err)
	}

	return ComputeInsights(logs, now), nil
}

func (s *insightsService) GetReport(ctx context.Context, anonymousID string, windowDays int) (*models.InsightsReport, error) {
	insights, err := s.windowedInsights(ctx, anonymousID, windowDays)
	if err != nil {
		return nil, err
	}

	summary, actions := Summarize(insights)

	return &models.InsightsReport{
		KPIs:             insights,
		AISummary:        summary,
		SuggestedActions: actions,
	}, nil
}

func (s *insightsService) GetSuggestions(ctx context.Context, anonymousID string, windowDays int) (*models.SuggestionResponse, error) {
	insights, err := s.windowedInsights(ctx, anonymousID, windowDays)
	if err != nil {
		return nil, err
	}

	resp := SelectSuggestions(insights, s.catalog)
	return &resp, nil
}
