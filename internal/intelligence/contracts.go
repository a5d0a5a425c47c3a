// Package intelligence combines workload metrics and check-in history
// into wellness assessments. Each service calls the language model first
// and degrades to a deterministic path on any failure, so callers always
// get a fully populated result and never an error.
package intelligence

import (
	"github.com/alexanderramin/respite/internal/domain"
	"github.com/alexanderramin/respite/internal/workload"
)

// WellnessRecommendation is one actionable suggestion.
type WellnessRecommendation struct {
	Action    string `json:"action"`
	Priority  string `json:"priority"`
	Reasoning string `json:"reasoning"`
}

// StressAssessment is the bounded 1-10 stress picture for a user.
// StressScore and StressLevel are always consistent under the band
// table in bands.go, whichever path produced them.
type StressAssessment struct {
	StressLevel        string                   `json:"stress_level"`
	StressScore        int                      `json:"stress_score"`
	BurnoutRisk        string                   `json:"burnout_risk"`
	MoodState          string                   `json:"mood_state"`
	EnergyForecast     string                   `json:"energy_forecast"`
	KeyPatterns        []string                 `json:"key_patterns"`
	Recommendations    []WellnessRecommendation `json:"wellness_recommendations"`
	MusicGenres        []string                 `json:"recommended_music_genres"`
	DetailedAssessment string                   `json:"detailed_assessment"`

	// FallbackReason is set when the deterministic path produced this
	// assessment, naming the failure that triggered it.
	FallbackReason string `json:"fallback_reason,omitempty"`

	// RawMetrics echoes the input metrics unchanged.
	RawMetrics *workload.Metrics `json:"raw_metrics,omitempty"`
}

// BreakPlan is the set of break proposals for today.
type BreakPlan struct {
	RecommendedBreaks []domain.BreakProposal `json:"recommended_breaks"`
	DailyStrategy     string                 `json:"daily_strategy"`
	FallbackReason    string                 `json:"fallback_reason,omitempty"`
}

// MoodAnalysis interprets a fresh check-in against recent history.
type MoodAnalysis struct {
	MoodState           string                   `json:"mood_state"`
	MoodTrend           string                   `json:"mood_trend"`
	MoodScore           int                      `json:"mood_score"`
	KeyInsights         []string                 `json:"key_insights"`
	Recommendations     []WellnessRecommendation `json:"recommendations"`
	MotivationalMessage string                   `json:"motivational_message"`
	FallbackReason      string                   `json:"fallback_reason,omitempty"`
}
