package checkin

import (
	"math"
	"time"

	"github.com/alexanderramin/respite/internal/domain"
)

// Rollup flattens all three periods filtered to the window and derives the
// rolling intelligence. With no qualifying entries it returns the fixed
// neutral baseline.
//
// The burnout tiers are evaluated in priority order: high requires both
// elevated stress and depleted energy; medium needs elevated stress alone.
func Rollup(h domain.CheckinHistory, days int, now time.Time) domain.CheckinIntelligence {
	cutoff := now.AddDate(0, 0, -days)

	var flattened []domain.CheckinEntry
	for _, e := range h.All() {
		if e.Timestamp.After(cutoff) {
			flattened = append(flattened, e)
		}
	}
	if len(flattened) == 0 {
		return domain.NeutralIntelligence()
	}

	var stressSum, energySum int
	for _, e := range flattened {
		stressSum += e.Signals.Stress
		energySum += e.Signals.Energy
	}
	avgStress := round1(float64(stressSum) / float64(len(flattened)))
	avgEnergy := round1(float64(energySum) / float64(len(flattened)))

	var afternoonEnergy []int
	for _, e := range h.Afternoon {
		if e.Timestamp.After(cutoff) {
			afternoonEnergy = append(afternoonEnergy, e.Signals.Energy)
		}
	}
	slump := false
	if len(afternoonEnergy) >= 2 {
		sum := 0
		for _, v := range afternoonEnergy {
			sum += v
		}
		slump = float64(sum)/float64(len(afternoonEnergy)) <= 4
	}

	risk := domain.BurnoutLow
	switch {
	case avgStress >= 7 && avgEnergy <= 4:
		risk = domain.BurnoutHigh
	case avgStress >= 6:
		risk = domain.BurnoutMedium
	}

	return domain.CheckinIntelligence{
		AvgStress:      avgStress,
		AvgEnergy:      avgEnergy,
		AfternoonSlump: slump,
		BurnoutRisk:    risk,
	}
}

// TodayStatus reports which periods have a check-in today and which period
// the current hour suggests next.
type TodayStatus struct {
	MorningCompleted   bool                  `json:"morning_completed"`
	AfternoonCompleted bool                  `json:"afternoon_completed"`
	EveningCompleted   bool                  `json:"evening_completed"`
	NextCheckin        *domain.CheckinPeriod `json:"next_checkin"`
	CurrentHour        int                   `json:"current_hour"`
}

// StatusToday computes today's completion flags from history and suggests
// the next check-in window: morning before 12:00, afternoon 12:00-17:00,
// evening from 17:00.
func StatusToday(h domain.CheckinHistory, now time.Time) TodayStatus {
	sameDay := func(entries []domain.CheckinEntry) bool {
		for _, e := range entries {
			ey, em, ed := e.Timestamp.Date()
			ny, nm, nd := now.Date()
			if ey == ny && em == nm && ed == nd {
				return true
			}
		}
		return false
	}

	status := TodayStatus{
		MorningCompleted:   sameDay(h.Morning),
		AfternoonCompleted: sameDay(h.Afternoon),
		EveningCompleted:   sameDay(h.Evening),
		CurrentHour:        now.Hour(),
	}

	var next domain.CheckinPeriod
	switch {
	case !status.MorningCompleted && now.Hour() < 12:
		next = domain.PeriodMorning
	case !status.AfternoonCompleted && now.Hour() >= 12 && now.Hour() < 17:
		next = domain.PeriodAfternoon
	case !status.EveningCompleted && now.Hour() >= 17:
		next = domain.PeriodEvening
	default:
		return status
	}
	status.NextCheckin = &next
	return status
}

// Analytics summarizes mood/energy/stress over a history window.
type Analytics struct {
	AverageMood   float64 `json:"average_mood"`
	AverageEnergy float64 `json:"average_energy"`
	AverageStress float64 `json:"average_stress"`
	Trend         string  `json:"trend"` // improving | stable | declining
	TotalCheckins int     `json:"total_checkins"`
	MoodHistory   []int   `json:"mood_history,omitempty"`
	EnergyHistory []int   `json:"energy_history,omitempty"`
	StressHistory []int   `json:"stress_history,omitempty"`
}

// Analyze computes averages and a coarse mood trend: the mean of the last
// three moods against the mean of the first three, with a 0.5 dead band.
func Analyze(h domain.CheckinHistory) Analytics {
	all := h.All()
	if len(all) == 0 {
		return Analytics{AverageMood: 5, AverageEnergy: 5, AverageStress: 5, Trend: "stable"}
	}

	a := Analytics{TotalCheckins: len(all), Trend: "stable"}
	var moodSum, energySum, stressSum int
	for _, e := range all {
		a.MoodHistory = append(a.MoodHistory, e.Signals.Mood)
		a.EnergyHistory = append(a.EnergyHistory, e.Signals.Energy)
		a.StressHistory = append(a.StressHistory, e.Signals.Stress)
		moodSum += e.Signals.Mood
		energySum += e.Signals.Energy
		stressSum += e.Signals.Stress
	}
	n := float64(len(all))
	a.AverageMood = round1(float64(moodSum) / n)
	a.AverageEnergy = round1(float64(energySum) / n)
	a.AverageStress = round1(float64(stressSum) / n)

	if len(a.MoodHistory) >= 2 {
		recent := tailMean(a.MoodHistory, 3)
		older := headMean(a.MoodHistory, 3)
		switch {
		case recent > older+0.5:
			a.Trend = "improving"
		case recent < older-0.5:
			a.Trend = "declining"
		}
	}
	return a
}

func headMean(vals []int, n int) float64 {
	if n > len(vals) {
		n = len(vals)
	}
	sum := 0
	for _, v := range vals[:n] {
		sum += v
	}
	return float64(sum) / float64(n)
}

func tailMean(vals []int, n int) float64 {
	if n > len(vals) {
		n = len(vals)
	}
	sum := 0
	for _, v := range vals[len(vals)-n:] {
		sum += v
	}
	return float64(sum) / float64(n)
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
