package criteria

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultIsStructurallyValid(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NoError(t, cfg.Validate())
	require.Len(t, cfg.Criteria, 5)
	require.Len(t, cfg.ScoringGuidelines, 5)
	require.Len(t, cfg.AdditionalInstructions, 4)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := func() *Config {
		return &Config{
			Version:           "1.0",
			Criteria:          []Criterion{{ID: "rel", Name: "Relevance", Description: "d"}},
			ScoringGuidelines: []Guideline{{Range: "0-10", Description: "d"}},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{
			name:    "no criteria",
			mutate:  func(c *Config) { c.Criteria = nil },
			wantErr: "criteria list is empty",
		},
		{
			name:    "no guidelines",
			mutate:  func(c *Config) { c.ScoringGuidelines = nil },
			wantErr: "guidelines list is empty",
		},
		{
			name:    "blank criterion id",
			mutate:  func(c *Config) { c.Criteria[0].ID = "  " },
			wantErr: "id is empty",
		},
		{
			name:    "blank criterion name",
			mutate:  func(c *Config) { c.Criteria[0].Name = "" },
			wantErr: "name is empty",
		},
		{
			name:    "blank criterion description",
			mutate:  func(c *Config) { c.Criteria[0].Description = "" },
			wantErr: "description is empty",
		},
		{
			name:    "weight out of range",
			mutate:  func(c *Config) { c.Criteria[0].Weight = 11 },
			wantErr: "outside 1-10",
		},
		{
			name:    "blank guideline range",
			mutate:  func(c *Config) { c.ScoringGuidelines[0].Range = "" },
			wantErr: "range is empty",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestPromptTextRendering(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		Version: "1.0",
		Criteria: []Criterion{
			{ID: "rel", Name: "Relevance", Description: "matches interests", Weight: 9},
			{ID: "qual", Name: "Quality", Description: "well written"},
		},
		ScoringGuidelines: []Guideline{
			{Range: "7-8", Description: "strong", Examples: []string{"a postmortem"}},
		},
		AdditionalInstructions: []string{"prefer primary sources"},
	}

	text := PromptText(cfg)

	require.Contains(t, text, "1. Relevance (weight 9): matches interests")
	require.Contains(t, text, "2. Quality: well written")
	require.Contains(t, text, "Scoring Guidelines:\n- 7-8: strong")
	require.Contains(t, text, "e.g. a postmortem")
	require.Contains(t, text, "Additional Guidelines:\n- prefer primary sources")

	// Deterministic render.
	require.Equal(t, text, PromptText(cfg))
}

func TestPromptTextOmitsEmptyInstructionSection(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.AdditionalInstructions = nil
	require.False(t, strings.Contains(PromptText(cfg), "Additional Guidelines"))
}
