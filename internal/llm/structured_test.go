package llm

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Score int    `json:"score"`
	Label string `json:"label"`
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    sample
		wantErr bool
	}{
		{
			name: "plain object",
			raw:  `{"score": 7, "label": "high"}`,
			want: sample{Score: 7, Label: "high"},
		},
		{
			name: "markdown fenced",
			raw:  "```json\n{\"score\": 3, \"label\": \"low\"}\n```",
			want: sample{Score: 3, Label: "low"},
		},
		{
			name: "surrounded by prose",
			raw:  "Here is your assessment:\n{\"score\": 5, \"label\": \"moderate\"}\nHope that helps!",
			want: sample{Score: 5, Label: "moderate"},
		},
		{
			name: "nested braces and brace in string",
			raw:  `{"score": 1, "label": "a } inside"}`,
			want: sample{Score: 1, Label: "a } inside"},
		},
		{
			name:    "no json at all",
			raw:     "I cannot help with that.",
			wantErr: true,
		},
		{
			name:    "unbalanced object",
			raw:     `{"score": 1, "label": "oops"`,
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ExtractJSON[sample](tc.raw, nil)
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidOutput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestExtractJSON_ValidatorRejects(t *testing.T) {
	validator := func(s sample) error {
		if s.Score < 1 || s.Score > 10 {
			return fmt.Errorf("score %d out of range", s.Score)
		}
		return nil
	}

	_, err := ExtractJSON[sample](`{"score": 42, "label": "impossible"}`, validator)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidOutput)

	got, err := ExtractJSON[sample](`{"score": 4, "label": "ok"}`, validator)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Score)
}
