package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/lens-project/lens-engine-sub000/internal/config"
	"github.com/lens-project/lens-engine-sub000/internal/criteria"
	"github.com/lens-project/lens-engine-sub000/internal/domain"
	"github.com/lens-project/lens-engine-sub000/internal/infrastructure/fsstore"
	"github.com/lens-project/lens-engine-sub000/internal/infrastructure/llm"
	"github.com/lens-project/lens-engine-sub000/internal/logging"
	"github.com/lens-project/lens-engine-sub000/internal/ports"
	"github.com/lens-project/lens-engine-sub000/internal/usecase"
)

// Application wires configuration into the ranking use case and the one-shot
// CLI flows around it.
type Application struct {
	cfg      config.Config
	ranker   *usecase.Ranker
	criteria *criteria.Repository
	logger   *slog.Logger
	out      io.Writer
}

// New builds a runnable application instance.
func New(cfg config.Config, baseLogger *slog.Logger) *Application {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level, cfg.Logging.Format)
	}

	store := fsstore.New()
	repo := criteria.NewRepository(store, cfg.DataDir, baseLogger.With("component", "criteria"))

	var generator ports.Generator
	if cfg.LLM.APIKey != "" {
		generator = llm.NewClient(cfg.LLM)
	}

	ranker := usecase.NewRanker(usecase.Deps{
		Generator: generator,
		Criteria:  repo,
		Logger:    baseLogger.With("component", "ranker"),
	})

	return &Application{
		cfg:      cfg,
		ranker:   ranker,
		criteria: repo,
		logger:   baseLogger,
		out:      os.Stdout,
	}
}

// articleDoc is the CLI input shape; domain types stay free of wire tags.
type articleDoc struct {
	Title       string   `json:"title"`
	Summary     string   `json:"summary"`
	URL         string   `json:"url"`
	PublishedAt string   `json:"publishedAt,omitempty"`
	Source      string   `json:"source,omitempty"`
	Categories  []string `json:"categories,omitempty"`
}

// RankReader decodes a JSON article list, ranks it against the given
// context, and prints a score-ordered digest followed by an error summary.
func (a *Application) RankReader(ctx context.Context, in io.Reader, rctx domain.RankingContext) error {
	var docs []articleDoc
	if err := json.NewDecoder(in).Decode(&docs); err != nil {
		return fmt.Errorf("decode articles: %w", err)
	}
	if len(docs) == 0 {
		return fmt.Errorf("no articles to rank")
	}

	articles := make([]domain.ArticleInput, len(docs))
	for i, d := range docs {
		articles[i] = domain.ArticleInput{
			Title:      d.Title,
			Summary:    d.Summary,
			URL:        d.URL,
			Source:     d.Source,
			Categories: d.Categories,
		}
		if d.PublishedAt != "" {
			if ts, err := time.Parse(time.RFC3339, d.PublishedAt); err == nil {
				articles[i].PublishedAt = ts
			}
		}
	}

	opts := usecase.DefaultOptions()
	opts.Timeout = a.cfg.Ranking.Timeout()
	opts.ConfidenceThreshold = a.cfg.Ranking.ConfidenceThreshold
	opts.MaxBatchSize = a.cfg.Ranking.MaxBatchSize
	opts.ContinueOnError = a.cfg.Ranking.ContinueOnError
	opts.EnableContextAdjustments = a.cfg.Ranking.EnableContextAdjustments

	results, err := a.ranker.RankContent(ctx, articles, rctx, &opts)
	if err != nil {
		return fmt.Errorf("rank content: %w", err)
	}

	fmt.Fprint(a.out, buildDigest(results))
	return nil
}

// WriteExampleCriteria writes the editable rubric starting point and returns
// its path.
func (a *Application) WriteExampleCriteria() (string, error) {
	return a.criteria.WriteExample()
}

// buildDigest renders scores best-first, then failures with their indices.
func buildDigest(results []domain.RankingResult) string {
	scores := domain.Scores(results)
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})

	var out string
	for _, s := range scores {
		out += fmt.Sprintf("%.1f  %s\n      %s\n      %s (read ~%d min)\n",
			s.Score,
			s.Input.Title,
			s.Input.URL,
			s.Reasoning,
			s.EstimatedReadTime)
	}

	failures := domain.Errors(results)
	if len(failures) > 0 {
		out += fmt.Sprintf("\n%d article(s) failed:\n", len(failures))
		for _, e := range failures {
			title := "(unknown)"
			if e.Input != nil {
				title = e.Input.Title
			}
			out += fmt.Sprintf("- %s: %s\n", title, e.Error())
		}
	}
	return out
}
