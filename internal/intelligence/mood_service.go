package intelligence

import (
	"context"
	"fmt"

	"github.com/alexanderramin/respite/internal/domain"
	"github.com/alexanderramin/respite/internal/llm"
)

// MoodService interprets a fresh check-in against recent history.
type MoodService interface {
	Analyze(ctx context.Context, history domain.CheckinHistory, current domain.CheckinSignals, intel domain.CheckinIntelligence) *MoodAnalysis
}

type moodService struct {
	client llm.Client
}

// NewMoodService creates a MoodService backed by an LLM client.
func NewMoodService(client llm.Client) MoodService {
	return &moodService{client: client}
}

func (s *moodService) Analyze(ctx context.Context, history domain.CheckinHistory, current domain.CheckinSignals, intel domain.CheckinIntelligence) *MoodAnalysis {
	if !s.client.Available(ctx) {
		return DeterministicMoodAnalysis(current, "disabled")
	}

	resp, err := s.client.Complete(ctx, llm.Request{
		Task:         llm.TaskMood,
		SystemPrompt: moodSystemPrompt,
		UserPrompt:   buildMoodPrompt(history, current, intel),
	})
	if err != nil {
		return DeterministicMoodAnalysis(current, failureCause(err))
	}

	analysis, err := llm.ExtractJSON[MoodAnalysis](resp.Text, validateMoodAnalysis)
	if err != nil {
		return DeterministicMoodAnalysis(current, failureCause(err))
	}

	return &analysis
}

func validateMoodAnalysis(a MoodAnalysis) error {
	if a.MoodScore < 1 || a.MoodScore > 10 {
		return fmt.Errorf("mood_score %d out of range", a.MoodScore)
	}
	if a.MoodState == "" {
		return fmt.Errorf("missing mood_state")
	}
	return nil
}
