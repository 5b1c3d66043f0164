// Package usecase orchestrates article ranking: validation, the LLM scoring
// call, deterministic contextual adjustment, and windowed batching with a
// concurrent-then-sequential degrade policy.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/lens-project/lens-engine-sub000/internal/criteria"
	"github.com/lens-project/lens-engine-sub000/internal/domain"
	"github.com/lens-project/lens-engine-sub000/internal/ports"
	"github.com/lens-project/lens-engine-sub000/internal/ranking"
	"github.com/lens-project/lens-engine-sub000/internal/scoring"
)

const (
	defaultConfidenceThreshold = 0.5
	defaultMaxBatchSize        = 10

	// interWindowDelay is a cooperative rate limit between windows, not a
	// correctness requirement.
	interWindowDelay = 100 * time.Millisecond
)

// Options tunes a ranking call. Start from DefaultOptions and adjust; a nil
// *Options passed to the ranker means DefaultOptions.
type Options struct {
	Timeout                  time.Duration // per-LLM-call deadline
	ConfidenceThreshold      float64       // advisory gate, 0-1
	EnableContextAdjustments bool
	MaxBatchSize             int
	ContinueOnError          bool
	Criteria                 *criteria.Config // explicit rubric override, never cached
}

// DefaultOptions returns the engine defaults.
func DefaultOptions() Options {
	return Options{
		Timeout:                  scoring.DefaultTimeout,
		ConfidenceThreshold:      defaultConfidenceThreshold,
		EnableContextAdjustments: true,
		MaxBatchSize:             defaultMaxBatchSize,
		ContinueOnError:          true,
	}
}

func resolveOptions(opts *Options) Options {
	if opts == nil {
		return DefaultOptions()
	}
	o := *opts
	if o.Timeout <= 0 {
		o.Timeout = scoring.DefaultTimeout
	}
	if o.MaxBatchSize <= 0 {
		o.MaxBatchSize = defaultMaxBatchSize
	}
	return o
}

// Deps wires the driven adapters into the orchestrator.
type Deps struct {
	Generator ports.Generator
	Criteria  *criteria.Repository // nil means always use the default rubric
	Logger    *slog.Logger
}

// Ranker is the batch orchestrator. Its only mutable state is the lazily
// loaded criteria cache, guarded by a mutex held across the load so
// re-entrant first calls cannot double-load.
type Ranker struct {
	adapter  *scoring.Adapter
	criteria *criteria.Repository
	logger   *slog.Logger

	mu     sync.Mutex
	cached *criteria.Config
}

// NewRanker constructs the orchestrator.
func NewRanker(deps Deps) *Ranker {
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Ranker{
		adapter:  scoring.NewAdapter(deps.Generator, logger.With("component", "scoring")),
		criteria: deps.Criteria,
		logger:   logger,
	}
}

// InvalidateCriteria drops the cached rubric so a long-lived process picks
// up an edited criteria file on its next batch.
func (r *Ranker) InvalidateCriteria() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cached = nil
}

// loadCriteria resolves the rubric for a call. An explicit override always
// wins and is never cached; an invalid override is a config error. The lazy
// path caches the repository's answer for the ranker's lifetime, degrading
// to the default rubric when the repository rejects the custom file.
func (r *Ranker) loadCriteria(o Options) (*criteria.Config, *domain.RankingError) {
	if o.Criteria != nil {
		if err := o.Criteria.Validate(); err != nil {
			return nil, &domain.RankingError{
				Type:    domain.ErrorConfig,
				Message: fmt.Sprintf("invalid criteria override: %v", err),
			}
		}
		return o.Criteria, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cached != nil {
		return r.cached, nil
	}

	cfg := criteria.Default()
	if r.criteria != nil {
		loaded, err := r.criteria.Load()
		if err != nil {
			r.logger.Warn("criteria file rejected, using defaults", "error", err)
		} else {
			cfg = loaded
		}
	}
	r.cached = cfg
	return cfg, nil
}

// RankArticle validates, scores, and contextually adjusts one article. All
// expected failures come back as *domain.RankingError data; it never returns
// an error value.
func (r *Ranker) RankArticle(ctx context.Context, article domain.ArticleInput, rctx domain.RankingContext, opts *Options) domain.RankingResult {
	o := resolveOptions(opts)
	// Bad input fails fast, before the rubric is even resolved.
	if verr := validateSubjects(article, rctx); verr != nil {
		return verr
	}
	cfg, cfgErr := r.loadCriteria(o)
	if cfgErr != nil {
		return withSubjects(cfgErr, article, rctx)
	}
	return r.rankOne(ctx, article, rctx, o, cfg)
}

func validateSubjects(article domain.ArticleInput, rctx domain.RankingContext) *domain.RankingError {
	if err := ValidateArticle(article); err != nil {
		return newError(domain.ErrorInvalidInput, err.Error(), article, rctx)
	}
	if err := ValidateContext(rctx); err != nil {
		return newError(domain.ErrorInvalidInput, err.Error(), article, rctx)
	}
	return nil
}

func (r *Ranker) rankOne(ctx context.Context, article domain.ArticleInput, rctx domain.RankingContext, o Options, cfg *criteria.Config) domain.RankingResult {
	if verr := validateSubjects(article, rctx); verr != nil {
		return verr
	}

	result, err := r.adapter.Score(ctx, scoring.Request{
		Article:  article,
		Context:  rctx,
		Criteria: cfg,
		Timeout:  o.Timeout,
	})
	if err != nil {
		var rerr *domain.RankingError
		if errors.As(err, &rerr) {
			return rerr
		}
		// Anything untyped escaping the adapter is a defect in processing
		// this article.
		return newError(domain.ErrorContext, err.Error(), article, rctx)
	}

	factors := domain.ContextFactors{}
	if o.EnableContextAdjustments {
		factors = ranking.CalculateContextualAdjustments(rctx, article)
		result.Score = ranking.ApplyContextualAdjustments(result.Score, rctx, article)
	}
	result.ContextFactors = &factors

	if result.Confidence < o.ConfidenceThreshold {
		r.logger.Warn("score below confidence threshold",
			"article", article.Title,
			"confidence", result.Confidence,
			"threshold", o.ConfidenceThreshold)
	}

	return result
}

// RankBatch scores many articles against one context. Whenever it returns a
// slice, results[i] corresponds to articles[i] and the lengths match; with
// ContinueOnError disabled a window-level defect fails the whole call
// atomically instead.
func (r *Ranker) RankBatch(ctx context.Context, articles []domain.ArticleInput, rctx domain.RankingContext, opts *Options) ([]domain.RankingResult, error) {
	o := resolveOptions(opts)
	log := r.logger.With("batch_id", uuid.NewString())

	cfg, cfgErr := r.loadCriteria(o)
	if cfgErr != nil {
		// The caller handed over an unusable rubric; every article reports it.
		results := make([]domain.RankingResult, len(articles))
		for i, article := range articles {
			results[i] = withSubjects(cfgErr, article, rctx)
		}
		return results, nil
	}

	log.Info("ranking batch",
		"articles", len(articles),
		"window", o.MaxBatchSize,
		"adjustments", o.EnableContextAdjustments)

	results := make([]domain.RankingResult, len(articles))
	for start := 0; start < len(articles); start += o.MaxBatchSize {
		end := min(start+o.MaxBatchSize, len(articles))

		if start > 0 {
			pause(ctx, interWindowDelay)
		}

		err := r.rankWindow(ctx, articles[start:end], rctx, o, cfg, results[start:end])
		if err == nil {
			continue
		}
		if !o.ContinueOnError {
			return nil, fmt.Errorf("rank window %d-%d: %w", start, end-1, err)
		}

		// Degrade: the concurrent join failed on a defect, so redo this
		// window strictly sequentially with every call individually guarded.
		log.Warn("window failed concurrently, retrying sequentially",
			"from", start, "to", end-1, "error", err)
		r.rankWindowSequential(ctx, articles[start:end], rctx, o, cfg, results[start:end])
	}

	log.Info("batch complete",
		"scored", len(domain.Scores(results)),
		"failed", len(domain.Errors(results)))
	return results, nil
}

// RankContent is the façade name consumed by the CLI and server layers; it
// is RankBatch under a stable name.
func (r *Ranker) RankContent(ctx context.Context, articles []domain.ArticleInput, rctx domain.RankingContext, opts *Options) ([]domain.RankingResult, error) {
	return r.RankBatch(ctx, articles, rctx, opts)
}

// rankWindow fans the window out concurrently, collecting by index so output
// order never depends on completion order. rankOne converts all expected
// failures into data, so a non-nil join error means a defect; goroutine
// panics are recovered into that error rather than crashing the process.
func (r *Ranker) rankWindow(ctx context.Context, window []domain.ArticleInput, rctx domain.RankingContext, o Options, cfg *criteria.Config, out []domain.RankingResult) error {
	g, gctx := errgroup.WithContext(ctx)
	for i := range window {
		i := i
		g.Go(func() (err error) {
			defer func() {
				if p := recover(); p != nil {
					err = fmt.Errorf("rank article %q: panic: %v", window[i].Title, p)
				}
			}()
			out[i] = r.rankOne(gctx, window[i], rctx, o, cfg)
			return nil
		})
	}
	return g.Wait()
}

// rankWindowSequential is the degrade path. Each call is independently
// guarded, so the window cannot fail a second time.
func (r *Ranker) rankWindowSequential(ctx context.Context, window []domain.ArticleInput, rctx domain.RankingContext, o Options, cfg *criteria.Config, out []domain.RankingResult) {
	for i := range window {
		out[i] = r.rankOneGuarded(ctx, window[i], rctx, o, cfg)
	}
}

func (r *Ranker) rankOneGuarded(ctx context.Context, article domain.ArticleInput, rctx domain.RankingContext, o Options, cfg *criteria.Config) (res domain.RankingResult) {
	defer func() {
		if p := recover(); p != nil {
			res = newError(domain.ErrorContext,
				fmt.Sprintf("unexpected failure: %v", p), article, rctx)
		}
	}()
	return r.rankOne(ctx, article, rctx, o, cfg)
}

func newError(typ domain.ErrorType, msg string, article domain.ArticleInput, rctx domain.RankingContext) *domain.RankingError {
	return &domain.RankingError{
		Type:    typ,
		Message: msg,
		Input:   &article,
		Context: &rctx,
	}
}

func withSubjects(e *domain.RankingError, article domain.ArticleInput, rctx domain.RankingContext) *domain.RankingError {
	return newError(e.Type, e.Message, article, rctx)
}

func pause(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
