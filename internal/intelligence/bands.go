package intelligence

// scoreBand maps a closed score range to its label. The ordered table is
// the single source of truth for score/level consistency: both the
// model-output validation path and the deterministic fallback read it.
type scoreBand struct {
	lo, hi int
	label  string
}

var stressBands = []scoreBand{
	{1, 2, "minimal"},
	{3, 4, "low"},
	{5, 6, "moderate"},
	{7, 8, "high"},
	{9, 9, "severe"},
	{10, 10, "critical"},
}

// LevelForScore returns the stress level label for a 1-10 score, or ""
// when the score falls outside every band.
func LevelForScore(score int) string {
	for _, b := range stressBands {
		if score >= b.lo && score <= b.hi {
			return b.label
		}
	}
	return ""
}

// ConsistentPair reports whether level is the band label for score.
func ConsistentPair(score int, level string) bool {
	want := LevelForScore(score)
	return want != "" && want == level
}

// BurnoutForScore derives burnout risk from a stress score.
func BurnoutForScore(score int) string {
	switch {
	case score >= 8:
		return "high"
	case score >= 5:
		return "moderate"
	default:
		return "low"
	}
}

// MoodForScore derives a mood state from a stress score.
func MoodForScore(score int) string {
	switch {
	case score >= 9:
		return "overwhelmed"
	case score >= 7:
		return "stressed"
	case score >= 5:
		return "coping"
	default:
		return "balanced"
	}
}

// EnergyForScore derives an energy forecast from a stress score.
func EnergyForScore(score int) string {
	switch {
	case score >= 9:
		return "depleted"
	case score >= 7:
		return "low"
	case score >= 5:
		return "moderate"
	default:
		return "stable"
	}
}
