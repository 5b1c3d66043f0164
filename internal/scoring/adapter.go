// Package scoring wraps the opaque LLM capability in a uniform scoring
// contract: rubric-aware prompt in, normalized ScoringResult or typed error
// out, bounded by a per-call deadline. It performs no retries; batching and
// degrade policy live in the orchestrator.
package scoring

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/lens-project/lens-engine-sub000/internal/criteria"
	"github.com/lens-project/lens-engine-sub000/internal/domain"
	"github.com/lens-project/lens-engine-sub000/internal/ports"
)

// DefaultTimeout bounds a single LLM call when the caller does not choose one.
const DefaultTimeout = 60 * time.Second

// defaultConfidence is a fixed constant for now, reserved for a future
// quality signal derived from the model's own calibration.
const defaultConfidence = 0.75

// Adapter converts generator completions into ScoringResults.
type Adapter struct {
	generator ports.Generator
	logger    *slog.Logger
}

// NewAdapter wires the text-generation capability. A nil logger disables
// adapter logging.
func NewAdapter(generator ports.Generator, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Adapter{generator: generator, logger: logger}
}

// Request carries everything one scoring call needs.
type Request struct {
	Article  domain.ArticleInput
	Context  domain.RankingContext
	Criteria *criteria.Config
	Timeout  time.Duration // 0 means DefaultTimeout
}

// rawResponse mirrors the JSON object the prompt asks for. Every field is
// loosely typed because the model's output is untrusted free text.
type rawResponse struct {
	Score             any    `json:"score"`
	Reasoning         string `json:"reasoning"`
	Categories        []any  `json:"categories"`
	EstimatedReadTime any    `json:"estimatedReadTime"`
}

// Score runs one article through the generator and normalizes the reply.
// Failures come back as *domain.RankingError with type "timeout" when the
// deadline won and "llm_error" otherwise.
func (a *Adapter) Score(ctx context.Context, req Request) (*domain.ScoringResult, error) {
	if a.generator == nil {
		return nil, a.fail(req, domain.ErrorLLM, "no generator configured")
	}

	timeout := req.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if req.Criteria == nil {
		req.Criteria = criteria.Default()
	}

	prompt := buildPrompt(req)

	// The deadline context is handed to the transport so an expired call is
	// aborted, not merely ignored.
	cctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	content, err := a.generator.Generate(cctx, prompt)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || cctx.Err() == context.DeadlineExceeded {
			return nil, a.fail(req, domain.ErrorTimeout,
				fmt.Sprintf("LLM call exceeded %s", timeout))
		}
		return nil, a.fail(req, domain.ErrorLLM, fmt.Sprintf("LLM call failed: %v", err))
	}

	a.logger.Debug("llm call completed",
		"article", req.Article.Title,
		"elapsed", time.Since(start))

	span, err := ExtractJSONObject(content)
	if err != nil {
		return nil, a.fail(req, domain.ErrorLLM,
			fmt.Sprintf("Failed to parse LLM response: %v", err))
	}

	var raw rawResponse
	if err := json.Unmarshal([]byte(span), &raw); err != nil {
		return nil, a.fail(req, domain.ErrorLLM,
			fmt.Sprintf("Failed to parse LLM response: %v", err))
	}

	return &domain.ScoringResult{
		Score:             NormalizeScore(raw.Score),
		Confidence:        defaultConfidence,
		Method:            domain.ScoringMethodLLM,
		Reasoning:         NormalizeReasoning(raw.Reasoning),
		Categories:        NormalizeCategories(raw.Categories),
		EstimatedReadTime: NormalizeReadTime(raw.EstimatedReadTime),
		Input:             req.Article,
	}, nil
}

func (a *Adapter) fail(req Request, typ domain.ErrorType, msg string) *domain.RankingError {
	article := req.Article
	rctx := req.Context
	return &domain.RankingError{
		Type:    typ,
		Message: msg,
		Input:   &article,
		Context: &rctx,
	}
}

func buildPrompt(req Request) string {
	var b strings.Builder

	b.WriteString("You are ranking an article for a reader's current situation.\n\n")

	b.WriteString("Article:\n")
	fmt.Fprintf(&b, "Title: %s\n", req.Article.Title)
	fmt.Fprintf(&b, "Summary: %s\n", req.Article.Summary)
	fmt.Fprintf(&b, "URL: %s\n", req.Article.URL)
	if len(req.Article.Categories) > 0 {
		fmt.Fprintf(&b, "Feed categories: %s\n", strings.Join(req.Article.Categories, ", "))
	}

	b.WriteString("\nReader context:\n")
	fmt.Fprintf(&b, "Day: %s\n", req.Context.DayOfWeek)
	fmt.Fprintf(&b, "Time of day: %s\n", req.Context.TimeOfDay)
	if req.Context.Mood != "" {
		fmt.Fprintf(&b, "Mood: %s\n", req.Context.Mood)
	}
	if req.Context.ReadingDuration != "" {
		fmt.Fprintf(&b, "Reading budget: %s\n", req.Context.ReadingDuration)
	}

	b.WriteByte('\n')
	b.WriteString(criteria.PromptText(req.Criteria))

	b.WriteString("\nRespond with a single JSON object and nothing else:\n")
	b.WriteString(`{"score": <0-10>, "reasoning": "<one or two sentences>", ` +
		`"categories": ["<up to 5 topical tags>"], "estimatedReadTime": <minutes>}`)
	b.WriteByte('\n')

	return b.String()
}
