package intelligence

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/respite/internal/workload"
)

func metricsWith(relevant, overdue, urgent, events, backToBack int) workload.Metrics {
	return workload.Metrics{
		Calendar: workload.CalendarMetrics{
			TotalEvents: events,
			BackToBack:  backToBack,
		},
		Tasks: workload.TaskMetrics{
			Total:        relevant,
			Relevant:     relevant,
			OverdueCount: overdue,
			UrgentCount:  urgent,
		},
	}
}

func TestDeterministicStressAssessment_Formula(t *testing.T) {
	tests := []struct {
		name                                 string
		relevant, overdue, urgent, events    int
		backToBack                           int
		wantScore                            int
		wantLevel                            string
	}{
		{
			name:      "empty workload scores the floor",
			wantScore: 1,
			wantLevel: "minimal",
		},
		{
			name:     "light week",
			relevant: 3, events: 4,
			wantScore: 2, // 1 +1 relevant
			wantLevel: "minimal",
		},
		{
			name:     "moderate week with one overdue",
			relevant: 8, overdue: 1, urgent: 1, events: 12,
			wantScore: 6, // 1 +2 relevant +1.5 overdue +1 urgent +1 events, truncated
			wantLevel: "moderate",
		},
		{
			name:     "overdue contribution caps at three",
			relevant: 2, overdue: 10,
			wantScore: 5, // 1 +1 relevant +3 overdue cap
			wantLevel: "moderate",
		},
		{
			name:     "urgent contribution caps at two",
			relevant: 2, urgent: 9,
			wantScore: 4, // 1 +1 relevant +2 urgent cap
			wantLevel: "low",
		},
		{
			name:     "heavy week saturates at ten",
			relevant: 12, overdue: 3, urgent: 1, events: 22, backToBack: 6,
			wantScore: 10, // 1 +3 +3 +1 +2 +1 = 11, clamped
			wantLevel: "critical",
		},
		{
			name:     "fractional overdue truncates",
			relevant: 1, overdue: 1,
			wantScore: 3, // 1 +1 +1.5 = 3.5, truncated to 3
			wantLevel: "low",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := metricsWith(tc.relevant, tc.overdue, tc.urgent, tc.events, tc.backToBack)
			got := DeterministicStressAssessment(m, "unavailable")

			assert.Equal(t, tc.wantScore, got.StressScore)
			assert.Equal(t, tc.wantLevel, got.StressLevel)
			assert.Equal(t, "unavailable", got.FallbackReason)
			require.NotNil(t, got.RawMetrics)
			assert.Equal(t, m, *got.RawMetrics)
		})
	}
}

func TestDeterministicStressAssessment_DerivedFields(t *testing.T) {
	m := metricsWith(12, 3, 1, 22, 6) // scores 10
	got := DeterministicStressAssessment(m, "timeout")

	assert.Equal(t, "high", got.BurnoutRisk)
	assert.Equal(t, "overwhelmed", got.MoodState)
	assert.Equal(t, "depleted", got.EnergyForecast)
	assert.NotEmpty(t, got.KeyPatterns)
	require.Len(t, got.Recommendations, 1)
	assert.Equal(t, "high", got.Recommendations[0].Priority) // 3 overdue
	assert.Equal(t, []string{"chill", "ambient", "lo-fi"}, got.MusicGenres)
}

// Few relevant tasks and nothing overdue must never read as more than
// moderate, no matter what the calendar looks like.
func TestDeterministicStressAssessment_LightTaskLoadBound(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 500; trial++ {
		m := metricsWith(rng.Intn(6), 0, rng.Intn(20), rng.Intn(50), rng.Intn(12))
		got := DeterministicStressAssessment(m, "unavailable")
		assert.LessOrEqual(t, got.StressScore, 8, "relevant=%d urgent=%d events=%d",
			m.Tasks.Relevant, m.Tasks.UrgentCount, m.Calendar.TotalEvents)

		m.Tasks.UrgentCount = 0
		m.Calendar.TotalEvents = rng.Intn(10)
		m.Calendar.BackToBack = 0
		got = DeterministicStressAssessment(m, "unavailable")
		assert.LessOrEqual(t, got.StressScore, 5)
	}
}

// Whatever the inputs, the score stays in band and the level matches
// the band lookup.
func TestDeterministicStressAssessment_AlwaysConsistent(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for trial := 0; trial < 1000; trial++ {
		m := metricsWith(rng.Intn(40), rng.Intn(12), rng.Intn(12), rng.Intn(60), rng.Intn(15))
		got := DeterministicStressAssessment(m, "unavailable")

		require.GreaterOrEqual(t, got.StressScore, 1)
		require.LessOrEqual(t, got.StressScore, 10)
		assert.True(t, ConsistentPair(got.StressScore, got.StressLevel),
			"score=%d level=%s", got.StressScore, got.StressLevel)
	}
}
