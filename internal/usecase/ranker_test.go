package usecase

import (
	"context"
	"fmt"
	"io/fs"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lens-project/lens-engine-sub000/internal/criteria"
	"github.com/lens-project/lens-engine-sub000/internal/domain"
)

type stubGenerator struct {
	response string
	err      error
	panicky  bool
	calls    atomic.Int32
}

func (g *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.calls.Add(1)
	if g.panicky {
		panic("generator wiring defect")
	}
	if g.err != nil {
		return "", g.err
	}
	return g.response, nil
}

type countingStore struct {
	files map[string]string
	reads atomic.Int32
}

func (s *countingStore) ReadText(path string) (string, error) {
	s.reads.Add(1)
	content, ok := s.files[path]
	if !ok {
		return "", fmt.Errorf("read %s: %w", path, fs.ErrNotExist)
	}
	return content, nil
}

func (s *countingStore) WriteText(path, content string) error {
	s.files[path] = content
	return nil
}

const goodResponse = `{"score": 7, "reasoning": "worth reading", "categories": ["technology"], "estimatedReadTime": 10}`

var mondayMorning = domain.RankingContext{
	DayOfWeek: domain.Monday,
	TimeOfDay: domain.Morning,
	Mood:      domain.MoodFocused,
}

func article(i int) domain.ArticleInput {
	return domain.ArticleInput{
		Title:   fmt.Sprintf("Article %d", i),
		Summary: fmt.Sprintf("Summary for article %d.", i),
		URL:     fmt.Sprintf("https://example.com/a/%d", i),
	}
}

func newTestRanker(gen *stubGenerator) *Ranker {
	return NewRanker(Deps{Generator: gen})
}

func TestRankBatchIndexAlignment(t *testing.T) {
	t.Parallel()

	gen := &stubGenerator{response: goodResponse}
	ranker := newTestRanker(gen)

	articles := make([]domain.ArticleInput, 7)
	for i := range articles {
		articles[i] = article(i)
	}

	opts := DefaultOptions()
	opts.MaxBatchSize = 3 // force multiple windows

	results, err := ranker.RankBatch(context.Background(), articles, mondayMorning, &opts)
	require.NoError(t, err)
	require.Len(t, results, len(articles))

	for i, r := range results {
		s, ok := r.(*domain.ScoringResult)
		require.True(t, ok, "index %d", i)
		require.Equal(t, articles[i], s.Input, "index %d", i)
	}
}

func TestRankBatchInvalidArticleFailsFastAtItsIndex(t *testing.T) {
	t.Parallel()

	gen := &stubGenerator{response: goodResponse}
	ranker := newTestRanker(gen)

	articles := []domain.ArticleInput{article(0), article(1), article(2)}
	articles[1].Title = "" // structurally invalid

	results, err := ranker.RankBatch(context.Background(), articles, mondayMorning, nil)
	require.NoError(t, err)
	require.Len(t, results, 3)

	rerr, ok := results[1].(*domain.RankingError)
	require.True(t, ok)
	require.Equal(t, domain.ErrorInvalidInput, rerr.Type)
	require.NotNil(t, rerr.Input)

	_, ok = results[0].(*domain.ScoringResult)
	require.True(t, ok)
	_, ok = results[2].(*domain.ScoringResult)
	require.True(t, ok)

	// The invalid article never reached the generator.
	require.Equal(t, int32(2), gen.calls.Load())
}

func TestRankBatchDegradesToSequentialOnDefect(t *testing.T) {
	t.Parallel()

	gen := &stubGenerator{panicky: true}
	ranker := newTestRanker(gen)

	articles := []domain.ArticleInput{article(0), article(1)}
	results, err := ranker.RankBatch(context.Background(), articles, mondayMorning, nil)
	require.NoError(t, err)
	require.Len(t, results, 2)

	for i, r := range results {
		rerr, ok := r.(*domain.RankingError)
		require.True(t, ok, "index %d", i)
		require.Equal(t, domain.ErrorContext, rerr.Type, "index %d", i)
	}
}

func TestRankBatchFailsAtomicallyWithoutContinueOnError(t *testing.T) {
	t.Parallel()

	gen := &stubGenerator{panicky: true}
	ranker := newTestRanker(gen)

	opts := DefaultOptions()
	opts.ContinueOnError = false

	results, err := ranker.RankBatch(context.Background(),
		[]domain.ArticleInput{article(0), article(1)}, mondayMorning, &opts)
	require.Error(t, err)
	require.Nil(t, results)
}

func TestRankArticleAdjustmentsDisabledReturnsRawScore(t *testing.T) {
	t.Parallel()

	gen := &stubGenerator{response: goodResponse}
	ranker := newTestRanker(gen)

	opts := DefaultOptions()
	opts.EnableContextAdjustments = false

	result := ranker.RankArticle(context.Background(), article(0), mondayMorning, &opts)
	s, ok := result.(*domain.ScoringResult)
	require.True(t, ok)
	require.Equal(t, 7.0, s.Score)
	require.NotNil(t, s.ContextFactors)
	require.Zero(t, s.ContextFactors.Total())
}

func TestRankArticleMondayMorningFocusedTechnical(t *testing.T) {
	t.Parallel()

	gen := &stubGenerator{response: goodResponse}
	ranker := newTestRanker(gen)

	input := domain.ArticleInput{
		Title:   "Advanced X Patterns",
		Summary: "An article about programming in practice.",
		URL:     "https://e.com/x",
	}

	result := ranker.RankArticle(context.Background(), input, mondayMorning, nil)
	s, ok := result.(*domain.ScoringResult)
	require.True(t, ok)

	// Monday+morning+focused can only add non-negative deltas to a
	// technical article, so the adjusted score stays in [7,10].
	require.GreaterOrEqual(t, s.Score, 7.0)
	require.LessOrEqual(t, s.Score, 10.0)
	require.NotNil(t, s.ContextFactors)
	require.GreaterOrEqual(t, s.ContextFactors.DayOfWeekAdjustment, 0)
	require.GreaterOrEqual(t, s.ContextFactors.TimeOfDayAdjustment, 0)
	require.GreaterOrEqual(t, s.ContextFactors.MoodAdjustment, 0)
}

func TestConfidenceThresholdIsAdvisory(t *testing.T) {
	t.Parallel()

	gen := &stubGenerator{response: goodResponse}
	ranker := newTestRanker(gen)

	opts := DefaultOptions()
	opts.ConfidenceThreshold = 0.99 // above the adapter's fixed 0.75

	result := ranker.RankArticle(context.Background(), article(0), mondayMorning, &opts)
	s, ok := result.(*domain.ScoringResult)
	require.True(t, ok, "a low-confidence score is warned about, not filtered")
	require.Equal(t, 0.75, s.Confidence)
}

func TestRankArticleInvalidContext(t *testing.T) {
	t.Parallel()

	gen := &stubGenerator{response: goodResponse}
	ranker := newTestRanker(gen)

	result := ranker.RankArticle(context.Background(), article(0),
		domain.RankingContext{DayOfWeek: "Funday", TimeOfDay: domain.Morning}, nil)

	rerr, ok := result.(*domain.RankingError)
	require.True(t, ok)
	require.Equal(t, domain.ErrorInvalidInput, rerr.Type)
	require.Zero(t, gen.calls.Load())
}

func TestRankArticleInvalidInputWinsOverBrokenOverride(t *testing.T) {
	t.Parallel()

	gen := &stubGenerator{response: goodResponse}
	ranker := newTestRanker(gen)

	opts := DefaultOptions()
	opts.Criteria = &criteria.Config{Version: "broken"} // no criteria, no guidelines
	bad := article(0)
	bad.Title = ""

	result := ranker.RankArticle(context.Background(), bad, mondayMorning, &opts)

	rerr, ok := result.(*domain.RankingError)
	require.True(t, ok)
	require.Equal(t, domain.ErrorInvalidInput, rerr.Type)
	require.Zero(t, gen.calls.Load())
}

func TestRankBatchInvalidCriteriaOverride(t *testing.T) {
	t.Parallel()

	gen := &stubGenerator{response: goodResponse}
	ranker := newTestRanker(gen)

	opts := DefaultOptions()
	opts.Criteria = &criteria.Config{Version: "broken"} // no criteria, no guidelines

	articles := []domain.ArticleInput{article(0), article(1)}
	results, err := ranker.RankBatch(context.Background(), articles, mondayMorning, &opts)
	require.NoError(t, err)
	require.Len(t, results, 2)

	for i, r := range results {
		rerr, ok := r.(*domain.RankingError)
		require.True(t, ok, "index %d", i)
		require.Equal(t, domain.ErrorConfig, rerr.Type, "index %d", i)
		require.Equal(t, articles[i].Title, rerr.Input.Title, "index %d", i)
	}
	require.Zero(t, gen.calls.Load())
}

func TestCriteriaLoadedOnceThenInvalidated(t *testing.T) {
	t.Parallel()

	store := &countingStore{files: map[string]string{}}
	repo := criteria.NewRepository(store, "/data", nil)
	gen := &stubGenerator{response: goodResponse}
	ranker := NewRanker(Deps{Generator: gen, Criteria: repo})

	articles := []domain.ArticleInput{article(0)}
	_, err := ranker.RankBatch(context.Background(), articles, mondayMorning, nil)
	require.NoError(t, err)
	_, err = ranker.RankBatch(context.Background(), articles, mondayMorning, nil)
	require.NoError(t, err)
	require.Equal(t, int32(1), store.reads.Load(), "second batch must hit the cache")

	ranker.InvalidateCriteria()
	_, err = ranker.RankBatch(context.Background(), articles, mondayMorning, nil)
	require.NoError(t, err)
	require.Equal(t, int32(2), store.reads.Load(), "invalidation must force a reload")
}

func TestCriteriaOverrideIsNeverCached(t *testing.T) {
	t.Parallel()

	store := &countingStore{files: map[string]string{}}
	repo := criteria.NewRepository(store, "/data", nil)
	gen := &stubGenerator{response: goodResponse}
	ranker := NewRanker(Deps{Generator: gen, Criteria: repo})

	opts := DefaultOptions()
	opts.Criteria = criteria.Default()

	articles := []domain.ArticleInput{article(0)}
	_, err := ranker.RankBatch(context.Background(), articles, mondayMorning, &opts)
	require.NoError(t, err)
	require.Zero(t, store.reads.Load(), "override must bypass the repository")

	// The next default-path batch still loads from the repository.
	_, err = ranker.RankBatch(context.Background(), articles, mondayMorning, nil)
	require.NoError(t, err)
	require.Equal(t, int32(1), store.reads.Load())
}

func TestRankBatchEmptyInput(t *testing.T) {
	t.Parallel()

	ranker := newTestRanker(&stubGenerator{response: goodResponse})
	results, err := ranker.RankBatch(context.Background(), nil, mondayMorning, nil)
	require.NoError(t, err)
	require.Empty(t, results)
}
