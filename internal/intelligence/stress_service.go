package intelligence

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/respite/internal/llm"
	"github.com/alexanderramin/respite/internal/workload"
)

// StressService turns workload metrics into a stress assessment. It
// never fails: on any model failure the deterministic scorer produces
// the assessment, tagged with the failure cause.
type StressService interface {
	Score(ctx context.Context, metrics workload.Metrics) *StressAssessment
}

type stressService struct {
	client llm.Client
}

// NewStressService creates a StressService backed by an LLM client.
func NewStressService(client llm.Client) StressService {
	return &stressService{client: client}
}

func (s *stressService) Score(ctx context.Context, metrics workload.Metrics) *StressAssessment {
	// An unconfigured model gets no prompt round trip.
	if !s.client.Available(ctx) {
		return DeterministicStressAssessment(metrics, "disabled")
	}

	resp, err := s.client.Complete(ctx, llm.Request{
		Task:         llm.TaskStress,
		SystemPrompt: stressSystemPrompt,
		UserPrompt:   buildStressPrompt(metrics),
	})
	if err != nil {
		return DeterministicStressAssessment(metrics, failureCause(err))
	}

	assessment, err := llm.ExtractJSON[StressAssessment](resp.Text, validateStressAssessment)
	if err != nil {
		return DeterministicStressAssessment(metrics, failureCause(err))
	}

	assessment.RawMetrics = &metrics
	return &assessment
}

// validateStressAssessment enforces the model output contract: the
// score must be 1-10 and the level must be the band label for it. An
// inconsistent pair is malformed output, not something to repair.
func validateStressAssessment(a StressAssessment) error {
	if a.StressScore < 1 || a.StressScore > 10 {
		return fmt.Errorf("stress_score %d out of range", a.StressScore)
	}
	if !ConsistentPair(a.StressScore, a.StressLevel) {
		return fmt.Errorf("stress_level %q inconsistent with score %d", a.StressLevel, a.StressScore)
	}
	return nil
}

// failureCause names the model failure for the fallback tag.
func failureCause(err error) string {
	switch {
	case errors.Is(err, llm.ErrTimeout):
		return "timeout"
	case errors.Is(err, llm.ErrUnavailable):
		return "unavailable"
	case errors.Is(err, llm.ErrDisabled):
		return "disabled"
	case errors.Is(err, llm.ErrInvalidOutput):
		return "malformed_output"
	default:
		return "error"
	}
}
