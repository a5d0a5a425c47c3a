package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of model task being performed.
type TaskType string

const (
	TaskStress TaskType = "stress"
	TaskBreaks TaskType = "breaks"
	TaskMood   TaskType = "mood"
)

// TaskConfig holds per-task model parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// Config holds all configuration for the model subsystem.
type Config struct {
	Enabled    bool
	LogCalls   bool
	Endpoint   string // OpenAI-compatible base URL
	APIKey     string
	Model      string
	TimeoutMs  int
	MaxRetries int
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns a Config with sensible defaults. The model stays
// disabled until an API key is configured.
func DefaultConfig() Config {
	return Config{
		Enabled:    false,
		LogCalls:   false,
		Endpoint:   "https://api.groq.com/openai/v1",
		Model:      "llama-3.3-70b-versatile",
		TimeoutMs:  30000,
		MaxRetries: 0, // a failed call degrades to the deterministic path, never retried
		Tasks: map[TaskType]TaskConfig{
			TaskStress: {Temperature: 0.1, MaxTokens: 2000, TimeoutMs: 30000},
			TaskBreaks: {Temperature: 0.6, MaxTokens: 1200, TimeoutMs: 25000},
			TaskMood:   {Temperature: 0.4, MaxTokens: 1200, TimeoutMs: 30000},
		},
	}
}

// LoadConfig reads model configuration from environment variables,
// falling back to defaults for any unset values. Setting an API key
// enables the model unless RESPITE_LLM_ENABLED says otherwise.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("RESPITE_LLM_API_KEY"); v != "" {
		cfg.APIKey = v
		cfg.Enabled = true
	}
	if v := os.Getenv("RESPITE_LLM_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("RESPITE_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("RESPITE_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("RESPITE_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("RESPITE_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("RESPITE_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	applyTaskTimeoutEnv(&cfg, TaskStress, "RESPITE_LLM_STRESS_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskBreaks, "RESPITE_LLM_BREAKS_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskMood, "RESPITE_LLM_MOOD_TIMEOUT_MS")

	return cfg
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c Config) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func applyTaskTimeoutEnv(cfg *Config, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}
