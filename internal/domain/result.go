package domain

import "fmt"

// ScoringMethodLLM is the only scoring method currently produced.
const ScoringMethodLLM = "llm"

// ContextFactors decomposes the contextual adjustment applied to a score
// into its three independent axes. Their sum is the total delta.
type ContextFactors struct {
	DayOfWeekAdjustment int
	TimeOfDayAdjustment int
	MoodAdjustment      int
}

// Total returns the combined delta across all axes.
func (f ContextFactors) Total() int {
	return f.DayOfWeekAdjustment + f.TimeOfDayAdjustment + f.MoodAdjustment
}

// ScoringResult is the success outcome for a single article. Constructed
// once, never mutated afterwards.
type ScoringResult struct {
	Score             float64 // 0-10, after any contextual adjustment
	Confidence        float64 // 0-1
	Method            string  // see ScoringMethodLLM
	Reasoning         string
	Categories        []string // at most 5, all non-empty
	EstimatedReadTime int      // minutes, 1-60
	Input             ArticleInput
	ContextFactors    *ContextFactors // deltas actually applied; zeros when disabled
}

// ErrorType classifies a per-article ranking failure.
type ErrorType string

const (
	ErrorInvalidInput ErrorType = "invalid_input"
	ErrorLLM          ErrorType = "llm_error"
	ErrorContext      ErrorType = "context_error"
	ErrorTimeout      ErrorType = "timeout"
	ErrorConfig       ErrorType = "config_error"
)

// RankingError is the failure outcome for a single article. Terminal: the
// engine never retries one automatically.
type RankingError struct {
	Type    ErrorType
	Message string
	Input   *ArticleInput
	Context *RankingContext
}

func (e *RankingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// RankingResult is the per-article outcome: either *ScoringResult or
// *RankingError. The interface is sealed so a two-arm type switch is
// exhaustive.
type RankingResult interface {
	rankingResult()
}

func (*ScoringResult) rankingResult() {}
func (*RankingError) rankingResult()  {}

// Failed reports whether the result is a RankingError.
func Failed(r RankingResult) bool {
	_, ok := r.(*RankingError)
	return ok
}

// Scores filters a result slice down to the successful outcomes, preserving
// order.
func Scores(results []RankingResult) []*ScoringResult {
	out := make([]*ScoringResult, 0, len(results))
	for _, r := range results {
		if s, ok := r.(*ScoringResult); ok {
			out = append(out, s)
		}
	}
	return out
}

// Errors filters a result slice down to the failed outcomes, preserving
// order.
func Errors(results []RankingResult) []*RankingError {
	var out []*RankingError
	for _, r := range results {
		if e, ok := r.(*RankingError); ok {
			out = append(out, e)
		}
	}
	return out
}

// ErrorCount returns the number of failed outcomes in the slice.
func ErrorCount(results []RankingResult) int {
	n := 0
	for _, r := range results {
		if Failed(r) {
			n++
		}
	}
	return n
}
