// Package breaks tracks the single in-progress break session and the
// history of finished ones, and serves the guided content catalog.
package breaks

import (
	"math"

	"github.com/alexanderramin/respite/internal/domain"
)

// ContentStep is one timed instruction of a guided break.
type ContentStep struct {
	Text    string `json:"text"`
	Seconds int    `json:"seconds"`
}

// GuidedContent is the step-by-step script for one break type.
type GuidedContent struct {
	Type            domain.BreakType `json:"type"`
	Title           string           `json:"title"`
	Steps           []ContentStep    `json:"steps"`
	Animation       string           `json:"animation"`
	BackgroundMusic string           `json:"background_music"`
}

// TotalDurationSec sums the step durations.
func (c GuidedContent) TotalDurationSec() int {
	total := 0
	for _, s := range c.Steps {
		total += s.Seconds
	}
	return total
}

var catalog = []GuidedContent{
	{
		Type:  domain.BreakBreathing,
		Title: "Box Breathing",
		Steps: []ContentStep{
			{Text: "Sit comfortably and relax shoulders", Seconds: 10},
			{Text: "Inhale slowly", Seconds: 4},
			{Text: "Hold breath", Seconds: 4},
			{Text: "Exhale slowly", Seconds: 4},
			{Text: "Hold breath", Seconds: 4},
		},
		Animation:       "breathing_circle",
		BackgroundMusic: "calm.mp3",
	},
	{
		Type:  domain.BreakStretch,
		Title: "Desk Stretch",
		Steps: []ContentStep{
			{Text: "Neck stretch", Seconds: 15},
			{Text: "Shoulder rolls", Seconds: 20},
			{Text: "Back stretch", Seconds: 20},
		},
		Animation:       "stretch_pose",
		BackgroundMusic: "light_ambient.mp3",
	},
	{
		Type:  domain.BreakWalk,
		Title: "Mindful Walk",
		Steps: []ContentStep{
			{Text: "Stand up and start walking", Seconds: 60},
			{Text: "Breathe naturally and observe surroundings", Seconds: 240},
		},
		Animation: "walking_loop",
	},
	{
		Type:  domain.BreakMeditation,
		Title: "Quick Meditation",
		Steps: []ContentStep{
			{Text: "Find a comfortable position", Seconds: 10},
			{Text: "Close your eyes", Seconds: 5},
			{Text: "Focus on your breath", Seconds: 180},
			{Text: "Slowly open your eyes", Seconds: 5},
		},
		Animation:       "meditation_lotus",
		BackgroundMusic: "meditation.mp3",
	},
}

// ContentFor returns the guided content for a break type.
func ContentFor(t domain.BreakType) (GuidedContent, bool) {
	for _, c := range catalog {
		if c.Type == t {
			return c, true
		}
	}
	return GuidedContent{}, false
}

// TypeSummary describes one break type for listing.
type TypeSummary struct {
	Type            domain.BreakType `json:"type"`
	Title           string           `json:"title"`
	DurationSeconds int              `json:"duration_seconds"`
	DurationMinutes float64          `json:"duration_minutes"`
	HasAnimation    bool             `json:"has_animation"`
	HasMusic        bool             `json:"has_music"`
}

// TypeSummaries lists every break type in catalog order.
func TypeSummaries() []TypeSummary {
	out := make([]TypeSummary, 0, len(catalog))
	for _, c := range catalog {
		total := c.TotalDurationSec()
		out = append(out, TypeSummary{
			Type:            c.Type,
			Title:           c.Title,
			DurationSeconds: total,
			DurationMinutes: math.Round(float64(total)/60*10) / 10,
			HasAnimation:    c.Animation != "",
			HasMusic:        c.BackgroundMusic != "",
		})
	}
	return out
}
