package domain

import "time"

// BreakType identifies the kind of restorative break.
type BreakType string

const (
	BreakBreathing  BreakType = "breathing"
	BreakMeditation BreakType = "meditation"
	BreakWalk       BreakType = "walk"
	BreakStretch    BreakType = "stretch"
)

// ValidBreakTypes is the canonical set of accepted break type strings.
var ValidBreakTypes = map[BreakType]bool{
	BreakBreathing: true, BreakMeditation: true,
	BreakWalk: true, BreakStretch: true,
}

// IsMovementBreak reports whether the type involves physical movement,
// as opposed to a stillness practice.
func (t BreakType) IsMovementBreak() bool {
	return t == BreakWalk || t == BreakStretch
}

// BreakProposal is one suggested break window inside today's free time.
type BreakProposal struct {
	TimeSlot    string    `json:"time_slot"` // "HH:MM - HH:MM"
	Start       time.Time `json:"-"`
	End         time.Time `json:"-"`
	Type        BreakType `json:"break_type"`
	DurationMin int       `json:"duration_minutes"`
	Reasoning   string    `json:"reasoning"`
	ReasonTag   string    `json:"reason_tag"`
	UIMessage   string    `json:"ui_message"`
	Confidence  float64   `json:"confidence"`
}

type BreakSessionStatus string

const (
	BreakActive BreakSessionStatus = "active"
)

// ActiveBreakSession is the at-most-one break currently in progress.
type ActiveBreakSession struct {
	ID          string             `json:"break_id"`
	Type        BreakType          `json:"type"`
	Title       string             `json:"title"`
	DurationMin int                `json:"duration_minutes"`
	StartTime   time.Time          `json:"start_time"`
	EndTime     time.Time          `json:"end_time"`
	Reason      string             `json:"ai_reason"`
	Status      BreakSessionStatus `json:"status"`
}

// BreakHistoryRecord is the append-only record of a finished break.
type BreakHistoryRecord struct {
	BreakID     string    `json:"break_id"`
	Type        BreakType `json:"type"`
	DurationMin int       `json:"duration_minutes"`
	Completed   bool      `json:"completed"`
	Feedback    string    `json:"feedback"`
	Timestamp   time.Time `json:"timestamp"`
}

// BreakStats summarizes break history over a window.
type BreakStats struct {
	TotalBreaks     int     `json:"total_breaks"`
	CompletedBreaks int     `json:"completed_breaks"`
	CompletionRate  float64 `json:"completion_rate"` // percent, one decimal
	Days            int     `json:"days"`
}
