package intelligence

import "github.com/alexanderramin/respite/internal/domain"

// DeterministicMoodAnalysis acknowledges the check-in without
// interpretation: the score is echoed back and the trend reads stable.
func DeterministicMoodAnalysis(current domain.CheckinSignals, cause string) *MoodAnalysis {
	return &MoodAnalysis{
		MoodState:   "fair",
		MoodTrend:   "stable",
		MoodScore:   current.Mood,
		KeyInsights: []string{"Mood recorded"},
		Recommendations: []WellnessRecommendation{
			{
				Action:    "Continue check-ins",
				Priority:  "medium",
				Reasoning: "Tracking helps awareness",
			},
		},
		MotivationalMessage: "One step at a time",
		FallbackReason:      cause,
	}
}
