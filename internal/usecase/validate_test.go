package usecase

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lens-project/lens-engine-sub000/internal/domain"
)

func TestValidateArticle(t *testing.T) {
	t.Parallel()

	valid := domain.ArticleInput{
		Title:   "A title",
		Summary: "A summary",
		URL:     "https://example.com/a",
	}
	require.NoError(t, ValidateArticle(valid))

	tests := []struct {
		name    string
		mutate  func(*domain.ArticleInput)
		wantErr string
	}{
		{"empty title", func(a *domain.ArticleInput) { a.Title = "" }, "title is empty"},
		{"whitespace title", func(a *domain.ArticleInput) { a.Title = "   " }, "title is empty"},
		{"empty summary", func(a *domain.ArticleInput) { a.Summary = "\t" }, "summary is empty"},
		{"relative url", func(a *domain.ArticleInput) { a.URL = "/just/a/path" }, "not a valid absolute URL"},
		{"no scheme", func(a *domain.ArticleInput) { a.URL = "example.com/a" }, "not a valid absolute URL"},
		{"empty url", func(a *domain.ArticleInput) { a.URL = "" }, "not a valid absolute URL"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a := valid
			tt.mutate(&a)
			require.ErrorContains(t, ValidateArticle(a), tt.wantErr)
		})
	}
}

func TestValidateContext(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateContext(domain.RankingContext{
		DayOfWeek: domain.Monday,
		TimeOfDay: domain.Morning,
	}))
	require.NoError(t, ValidateContext(domain.RankingContext{
		DayOfWeek:       domain.Sunday,
		TimeOfDay:       domain.Night,
		Mood:            domain.MoodTired,
		ReadingDuration: domain.ReadingDeep,
	}))

	require.ErrorContains(t, ValidateContext(domain.RankingContext{
		DayOfWeek: "Funday", TimeOfDay: domain.Morning,
	}), "unknown day of week")
	require.ErrorContains(t, ValidateContext(domain.RankingContext{
		DayOfWeek: domain.Monday, TimeOfDay: "brunch",
	}), "unknown time of day")
	require.ErrorContains(t, ValidateContext(domain.RankingContext{
		DayOfWeek: domain.Monday, TimeOfDay: domain.Morning, Mood: "grumpy",
	}), "unknown mood")
	require.ErrorContains(t, ValidateContext(domain.RankingContext{
		DayOfWeek: domain.Monday, TimeOfDay: domain.Morning, ReadingDuration: "endless",
	}), "unknown reading duration")
}
