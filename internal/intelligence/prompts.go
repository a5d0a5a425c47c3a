package intelligence

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alexanderramin/respite/internal/domain"
	"github.com/alexanderramin/respite/internal/scheduler"
	"github.com/alexanderramin/respite/internal/workload"
)

const stressSystemPrompt = `You are an expert wellness psychologist. Be PRECISE and REALISTIC. Don't inflate stress scores. Return ONLY valid JSON.`

const stressGuidelines = `===========================================
REALISTIC STRESS SCORING GUIDELINES
===========================================

MINIMAL (1-2):
- 0-2 relevant tasks, no overdue, no urgent
- 0-3 calendar events

LOW (3-4):
- 3-5 relevant tasks, 0-1 overdue, 0-1 urgent
- 4-8 calendar events
- Light workload, easily manageable

MODERATE (5-6):
- 6-10 relevant tasks, 1-2 overdue, 1-2 urgent
- 9-15 calendar events
- Normal workload, manageable with planning

HIGH (7-8):
- 11-15 relevant tasks OR 3-4 overdue OR 3-4 urgent
- 16-25 calendar events
- Heavy workload, requires active management

SEVERE (9):
- 16-20 relevant tasks OR 5+ overdue OR 5+ urgent
- 26-35 calendar events
- Very heavy workload, potential overwhelm

CRITICAL (10):
- 20+ relevant tasks OR 8+ overdue OR 8+ urgent
- 36+ calendar events, many back-to-back
- Unsustainable workload, immediate intervention needed

CRITICAL RULES:
1. If relevant tasks <= 5 and no overdue, stress CANNOT exceed 5
2. If relevant tasks <= 10 and overdue <= 2, stress CANNOT exceed 7
3. Calendar events alone rarely justify high stress unless 20+ events
4. Consider both calendar AND tasks together, not in isolation
5. Don't inflate scores - most people can handle 10-15 tasks over a week`

const stressReturnFormat = `Return ONLY valid JSON:
{
  "stress_level": "critical/severe/high/moderate/low/minimal",
  "stress_score": <1-10>,
  "burnout_risk": "imminent/high/moderate/low/minimal",
  "mood_state": "overwhelmed/stressed/anxious/coping/balanced/calm",
  "energy_forecast": "depleted/low/moderate/stable/good/high",
  "key_patterns": ["pattern1", "pattern2"],
  "wellness_recommendations": [
    {"action": "specific action", "priority": "critical/high/medium/low", "reasoning": "why this matters"}
  ],
  "recommended_music_genres": ["genre1", "genre2", "genre3"],
  "detailed_assessment": "Explain the score based on ACTUAL numbers. Be specific about why this score was chosen."
}`

// buildStressPrompt formats workload metrics into the analysis prompt.
func buildStressPrompt(m workload.Metrics) string {
	var details []string
	for _, task := range m.Tasks.Overdue {
		details = append(details, fmt.Sprintf("OVERDUE: %s (Priority: %s)", task.Name, task.Priority))
	}
	for _, task := range m.Tasks.Urgent24h {
		details = append(details, fmt.Sprintf("URGENT (24h): %s (Priority: %s)", task.Name, task.Priority))
	}
	for _, task := range m.Tasks.DueSoon3d {
		details = append(details, fmt.Sprintf("DUE SOON (3d): %s (Priority: %s)", task.Name, task.Priority))
	}
	if len(details) > 10 {
		details = details[:10]
	}
	taskSummary := "No urgent tasks in the next 7 days"
	if len(details) > 0 {
		taskSummary = strings.Join(details, "\n")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Analyze this person's workload PRECISELY and REALISTICALLY.\n\n")
	fmt.Fprintf(&b, "TASK ANALYSIS (Next 7 days ONLY):\n")
	fmt.Fprintf(&b, "- Total tasks: %d\n", m.Tasks.Total)
	fmt.Fprintf(&b, "- Relevant tasks (next 7 days, incomplete): %d\n", m.Tasks.Relevant)
	fmt.Fprintf(&b, "- Overdue: %d tasks\n", m.Tasks.OverdueCount)
	fmt.Fprintf(&b, "- Urgent (next 24h): %d tasks\n", m.Tasks.UrgentCount)
	fmt.Fprintf(&b, "- Due Soon (next 3d): %d tasks\n", m.Tasks.DueSoonCount)
	fmt.Fprintf(&b, "- Priority: High=%d, Medium=%d, Low=%d\n\n", m.Tasks.ByPriority.High, m.Tasks.ByPriority.Medium, m.Tasks.ByPriority.Low)
	fmt.Fprintf(&b, "SPECIFIC TASKS:\n%s\n\n", taskSummary)
	fmt.Fprintf(&b, "CALENDAR ANALYSIS (Next 7 days):\n")
	fmt.Fprintf(&b, "- Total Events: %d\n", m.Calendar.TotalEvents)
	fmt.Fprintf(&b, "- Back-to-back meetings: %d\n", m.Calendar.BackToBack)
	fmt.Fprintf(&b, "- Stress events detected: %d\n", m.Calendar.StressCount)
	fmt.Fprintf(&b, "- Total meeting hours: %.1f\n", m.Calendar.TotalHours)
	fmt.Fprintf(&b, "- Long meetings (2+hrs): %d\n\n", len(m.Calendar.LongMeetings))
	b.WriteString(stressGuidelines)
	b.WriteString("\n\n")
	b.WriteString(stressReturnFormat)
	return b.String()
}

const breakSystemPrompt = `Return ONLY valid JSON. No explanations.`

// buildBreakPrompt formats slots, check-in intelligence and the current
// stress picture into the break planning prompt.
func buildBreakPrompt(slots []scheduler.Slot, intel domain.CheckinIntelligence, assessment *StressAssessment) string {
	slotsJSON, err := json.MarshalIndent(slots, "", "  ")
	if err != nil {
		slotsJSON = []byte("[]")
	}

	var b strings.Builder
	b.WriteString(`You are a wellness coach inside a mobile wellness app.
Your goal is to schedule wellness breaks that feel helpful, timely, and
non-intrusive based on user stress, energy, and daily patterns.

========================
USER WELLNESS INTELLIGENCE
========================
From recent check-ins:
`)
	fmt.Fprintf(&b, "- Average Stress (7 days): %.1f/10\n", intel.AvgStress)
	fmt.Fprintf(&b, "- Average Energy (7 days): %.1f/10\n", intel.AvgEnergy)
	fmt.Fprintf(&b, "- Afternoon Energy Slump: %t\n", intel.AfternoonSlump)
	fmt.Fprintf(&b, "- Burnout Risk Level: %s\n\n", intel.BurnoutRisk)
	fmt.Fprintf(&b, "Current Stress Analysis:\n")
	fmt.Fprintf(&b, "- Stress Level: %s\n", assessment.StressLevel)
	fmt.Fprintf(&b, "- Stress Score: %d/10\n\n", assessment.StressScore)
	fmt.Fprintf(&b, "========================\nAVAILABLE TIME SLOTS (Today)\n========================\n%s\n\n", slotsJSON)
	b.WriteString(`========================
TASK
========================
Design 2-3 personalized wellness breaks for today.
Schedule breaks ONLY within the available time slots.

========================
BREAK SELECTION LOGIC
========================
- If Stress >= 7 OR Burnout Risk is HIGH, prioritize breathing or meditation
- If Energy <= 4, prioritize light walking or stretching (avoid meditation)
- If Afternoon Slump = TRUE, place at least one movement-based break between 13:00-16:00
- Avoid repeating the same break type consecutively
- Match break duration to slot size (5-15 minutes)
- Keep breaks supportive, not overwhelming

========================
RULES
========================
- Do NOT overlap breaks
- Do NOT exceed available slot duration
- Break duration: 5-15 minutes
- Use empathetic, human-friendly language
- No medical claims

========================
RETURN FORMAT (STRICT JSON ONLY)
========================
{
  "recommended_breaks": [
    {
      "time_slot": "HH:MM - HH:MM",
      "break_type": "breathing | meditation | walk | stretch",
      "duration_minutes": 5-15,
      "reasoning": "Why this break was chosen based on stress, energy, or patterns",
      "reason_tag": "High Stress | Low Energy | Afternoon Slump | Focus Reset | Burnout Prevention",
      "ui_message": "Short friendly message shown in the app",
      "confidence": 0.0-1.0
    }
  ],
  "daily_strategy": "One-line personalized wellness strategy for today"
}`)
	return b.String()
}

const moodSystemPrompt = `Return ONLY JSON.`

type moodHistoryPoint struct {
	Date   string `json:"date"`
	Period string `json:"period"`
	Mood   int    `json:"mood"`
	Energy int    `json:"energy"`
	Stress int    `json:"stress"`
}

// buildMoodPrompt formats recent check-ins and the fresh one into the
// mood analysis prompt. Only the last five entries per period are sent.
func buildMoodPrompt(history domain.CheckinHistory, current domain.CheckinSignals, intel domain.CheckinIntelligence) string {
	var summary []moodHistoryPoint
	for _, entries := range [][]domain.CheckinEntry{history.Morning, history.Afternoon, history.Evening} {
		start := 0
		if len(entries) > 5 {
			start = len(entries) - 5
		}
		for _, e := range entries[start:] {
			summary = append(summary, moodHistoryPoint{
				Date:   e.Timestamp.Format("2006-01-02"),
				Period: string(e.Period),
				Mood:   e.Signals.Mood,
				Energy: e.Signals.Energy,
				Stress: e.Signals.Stress,
			})
		}
	}

	summaryJSON, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		summaryJSON = []byte("[]")
	}

	var b strings.Builder
	b.WriteString("You are a wellness psychologist.\n\n")
	fmt.Fprintf(&b, "RECENT CHECK-IN INTELLIGENCE:\n")
	fmt.Fprintf(&b, "- Avg Stress: %.1f/10\n", intel.AvgStress)
	fmt.Fprintf(&b, "- Avg Energy: %.1f/10\n", intel.AvgEnergy)
	fmt.Fprintf(&b, "- Afternoon Slump: %t\n", intel.AfternoonSlump)
	fmt.Fprintf(&b, "- Burnout Risk: %s\n\n", intel.BurnoutRisk)
	fmt.Fprintf(&b, "CURRENT CHECK-IN:\n")
	fmt.Fprintf(&b, "Mood %d/10\nEnergy %d/10\nStress %d/10\n\n", current.Mood, current.Energy, current.Stress)
	fmt.Fprintf(&b, "HISTORY:\n%s\n\n", summaryJSON)
	b.WriteString(`Return ONLY valid JSON:
{
  "mood_state": "excellent/good/fair/concerning",
  "mood_trend": "improving/stable/declining",
  "mood_score": 1-10,
  "key_insights": ["..."],
  "recommendations": [{"action": "...", "priority": "high/medium", "reasoning": "..."}],
  "motivational_message": "..."
}`)
	return b.String()
}
