package intelligence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelForScore(t *testing.T) {
	want := map[int]string{
		1: "minimal", 2: "minimal",
		3: "low", 4: "low",
		5: "moderate", 6: "moderate",
		7: "high", 8: "high",
		9:  "severe",
		10: "critical",
	}
	for score, label := range want {
		assert.Equal(t, label, LevelForScore(score), "score %d", score)
		assert.True(t, ConsistentPair(score, label))
	}

	assert.Empty(t, LevelForScore(0))
	assert.Empty(t, LevelForScore(11))
	assert.False(t, ConsistentPair(7, "moderate"))
	assert.False(t, ConsistentPair(0, ""))
}

func TestDerivedTiers(t *testing.T) {
	assert.Equal(t, "low", BurnoutForScore(4))
	assert.Equal(t, "moderate", BurnoutForScore(5))
	assert.Equal(t, "moderate", BurnoutForScore(7))
	assert.Equal(t, "high", BurnoutForScore(8))

	assert.Equal(t, "balanced", MoodForScore(4))
	assert.Equal(t, "coping", MoodForScore(5))
	assert.Equal(t, "stressed", MoodForScore(7))
	assert.Equal(t, "overwhelmed", MoodForScore(9))

	assert.Equal(t, "stable", EnergyForScore(4))
	assert.Equal(t, "moderate", EnergyForScore(6))
	assert.Equal(t, "low", EnergyForScore(8))
	assert.Equal(t, "depleted", EnergyForScore(10))
}
