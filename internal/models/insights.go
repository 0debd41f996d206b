package models

// DayAverage is the mean mood for one UTC calendar day
type DayAverage struct {
	Date string  `json:"date"` // YYYY-MM-DD
	Avg  float64 `json:"avg"`
}

// Insights holds aggregate statistics over a trailing window of mood logs.
// AvgMood is nil when no logs exist in the window.
type Insights struct {
	AvgMood *float64     `json:"avg_mood"`
	Entries int          `json:"entries"`
	Streak  int          `json:"streak"`
	ByDay   []DayAverage `json:"by_day"`
}

// Suggestion is one entry in the static activity catalog
type Suggestion struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	DurationMinutes int    `json:"duration"`
	Type            string `json:"type"`
}

// SuggestionResponse is the API response for the suggestions endpoint
type SuggestionResponse struct {
	Reason   string       `json:"reason"`
	Items    []Suggestion `json:"items"`
	Insights Insights     `json:"insights"`
}

// InsightsReport is the API response for the insights endpoint.
// AISummary is deterministic string templating, not a model call;
// the field name is kept for client compatibility.
type InsightsReport struct {
	KPIs             Insights `json:"kpis"`
	AISummary        []string `json:"ai_summary"`
	SuggestedActions []string `json:"suggested_actions"`
}
