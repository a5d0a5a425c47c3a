package domain

import "time"

// CheckinPeriod tags a check-in with the part of the day it belongs to.
type CheckinPeriod string

const (
	PeriodMorning   CheckinPeriod = "morning"
	PeriodAfternoon CheckinPeriod = "afternoon"
	PeriodEvening   CheckinPeriod = "evening"
)

// Periods lists all check-in periods in day order.
var Periods = []CheckinPeriod{PeriodMorning, PeriodAfternoon, PeriodEvening}

// IsValidPeriod returns true if the given string names a known period.
func IsValidPeriod(p CheckinPeriod) bool {
	switch p {
	case PeriodMorning, PeriodAfternoon, PeriodEvening:
		return true
	}
	return false
}

// CheckinSignals is the extracted 1-10 signal tuple of a check-in.
// Focus is nil for periods that don't ask for it.
type CheckinSignals struct {
	Stress int  `json:"stress"`
	Energy int  `json:"energy"`
	Mood   int  `json:"mood"`
	Focus  *int `json:"focus"`
}

// CheckinEntry is one submitted check-in, owned by the ledger.
type CheckinEntry struct {
	ID        string         `json:"id"`
	Timestamp time.Time      `json:"timestamp"`
	Period    CheckinPeriod  `json:"period"`
	Payload   map[string]any `json:"data"`
	Signals   CheckinSignals `json:"signals"`
}

// CheckinHistory groups recent entries per period, each ordered by insertion.
type CheckinHistory struct {
	Morning   []CheckinEntry `json:"morning"`
	Afternoon []CheckinEntry `json:"afternoon"`
	Evening   []CheckinEntry `json:"evening"`
}

// All flattens the three periods in day order.
func (h CheckinHistory) All() []CheckinEntry {
	out := make([]CheckinEntry, 0, len(h.Morning)+len(h.Afternoon)+len(h.Evening))
	out = append(out, h.Morning...)
	out = append(out, h.Afternoon...)
	out = append(out, h.Evening...)
	return out
}

type BurnoutRisk string

const (
	BurnoutLow    BurnoutRisk = "low"
	BurnoutMedium BurnoutRisk = "medium"
	BurnoutHigh   BurnoutRisk = "high"
)

// CheckinIntelligence is the rolling aggregate derived from recent check-ins.
type CheckinIntelligence struct {
	AvgStress      float64     `json:"avg_stress"`
	AvgEnergy      float64     `json:"avg_energy"`
	AfternoonSlump bool        `json:"afternoon_slump"`
	BurnoutRisk    BurnoutRisk `json:"burnout_risk"`
}

// NeutralIntelligence is the fixed baseline returned when no check-ins
// fall inside the rollup window.
func NeutralIntelligence() CheckinIntelligence {
	return CheckinIntelligence{
		AvgStress:      5,
		AvgEnergy:      5,
		AfternoonSlump: false,
		BurnoutRisk:    BurnoutLow,
	}
}
