package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractJSONObject(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "bare object",
			input: `{"score": 7}`,
			want:  `{"score": 7}`,
		},
		{
			name:  "prose wrapped",
			input: "Sure! Here is my assessment:\n{\"score\": 7, \"reasoning\": \"ok\"}\nHope that helps.",
			want:  `{"score": 7, "reasoning": "ok"}`,
		},
		{
			name:  "braces inside strings",
			input: `{"reasoning": "uses {braces} and \"quotes\"", "score": 5}`,
			want:  `{"reasoning": "uses {braces} and \"quotes\"", "score": 5}`,
		},
		{
			name:  "nested objects",
			input: `noise {"a": {"b": 1}, "score": 2} trailing {"ignored": true}`,
			want:  `{"a": {"b": 1}, "score": 2}`,
		},
		{
			name:    "no object",
			input:   "I cannot answer that.",
			wantErr: true,
		},
		{
			name:    "unbalanced",
			input:   `{"score": 7`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ExtractJSONObject(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeScore(t *testing.T) {
	t.Parallel()

	require.Equal(t, 7.5, NormalizeScore(7.5))
	require.Equal(t, 10.0, NormalizeScore(15.0))
	require.Equal(t, 0.0, NormalizeScore(-3.0))
	require.Equal(t, 0.0, NormalizeScore(math.NaN()))
	require.Equal(t, 0.0, NormalizeScore(nil))
	require.Equal(t, 0.0, NormalizeScore("not a number"))
	require.Equal(t, 8.0, NormalizeScore("8"))
	require.Equal(t, 3.0, NormalizeScore(3))
}

func TestNormalizeCategories(t *testing.T) {
	t.Parallel()

	in := []any{"tech", "", "  ", 42, "news", "science", "  culture ", "health", "extra"}
	require.Equal(t,
		[]string{"tech", "news", "science", "culture", "health"},
		NormalizeCategories(in))

	require.Nil(t, NormalizeCategories(nil))
	require.Nil(t, NormalizeCategories([]any{"", 1, false}))
}

func TestNormalizeReadTime(t *testing.T) {
	t.Parallel()

	require.Equal(t, 10, NormalizeReadTime(10.0))
	require.Equal(t, 1, NormalizeReadTime(0.4))
	require.Equal(t, 60, NormalizeReadTime(240.0))
	require.Equal(t, 5, NormalizeReadTime(0.0))
	require.Equal(t, 5, NormalizeReadTime(-2.0))
	require.Equal(t, 5, NormalizeReadTime(nil))
	require.Equal(t, 5, NormalizeReadTime("soonish"))
	require.Equal(t, 12, NormalizeReadTime("12"))
}

func TestNormalizeReasoning(t *testing.T) {
	t.Parallel()

	require.Equal(t, "solid take", NormalizeReasoning(" solid take "))
	require.Equal(t, "No reasoning provided", NormalizeReasoning(""))
	require.Equal(t, "No reasoning provided", NormalizeReasoning("   "))
}
