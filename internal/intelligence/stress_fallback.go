package intelligence

import (
	"fmt"

	"github.com/alexanderramin/respite/internal/workload"
)

// DeterministicStressAssessment scores workload metrics without the
// model. The formula is additive over task and calendar pressure,
// truncated to an integer and clamped to 10.
func DeterministicStressAssessment(m workload.Metrics, cause string) *StressAssessment {
	score := 1.0

	switch relevant := m.Tasks.Relevant; {
	case relevant == 0:
	case relevant <= 5:
		score += 1
	case relevant <= 10:
		score += 2
	case relevant <= 15:
		score += 3
	default:
		score += 4
	}

	score += min(float64(m.Tasks.OverdueCount)*1.5, 3)
	score += min(float64(m.Tasks.UrgentCount), 2)

	switch events := m.Calendar.TotalEvents; {
	case events >= 20:
		score += 2
	case events >= 10:
		score += 1
	}

	if m.Calendar.BackToBack >= 5 {
		score += 1
	}

	finalScore := min(int(score), 10)

	recPriority := "medium"
	if m.Tasks.OverdueCount > 2 {
		recPriority = "high"
	}

	return &StressAssessment{
		StressLevel:    LevelForScore(finalScore),
		StressScore:    finalScore,
		BurnoutRisk:    BurnoutForScore(finalScore),
		MoodState:      MoodForScore(finalScore),
		EnergyForecast: EnergyForScore(finalScore),
		KeyPatterns: []string{
			fmt.Sprintf("%d tasks in next 7 days", m.Tasks.Relevant),
			fmt.Sprintf("%d calendar events", m.Calendar.TotalEvents),
		},
		Recommendations: []WellnessRecommendation{
			{
				Action:    "Review task priorities",
				Priority:  recPriority,
				Reasoning: fmt.Sprintf("%d overdue tasks", m.Tasks.OverdueCount),
			},
		},
		MusicGenres: []string{"chill", "ambient", "lo-fi"},
		DetailedAssessment: fmt.Sprintf(
			"Based on %d relevant tasks (next 7 days) and %d events. %d overdue, %d urgent.",
			m.Tasks.Relevant, m.Calendar.TotalEvents, m.Tasks.OverdueCount, m.Tasks.UrgentCount),
		FallbackReason: cause,
		RawMetrics:     &m,
	}
}
