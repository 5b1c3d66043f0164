package usecase

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/lens-project/lens-engine-sub000/internal/domain"
)

// ValidateArticle checks the structural requirements for a scorable article:
// non-empty trimmed title and summary, and a well-formed absolute URL. Pure,
// so callers can pre-filter batches without spending an LLM call.
func ValidateArticle(a domain.ArticleInput) error {
	if strings.TrimSpace(a.Title) == "" {
		return errors.New("article title is empty")
	}
	if strings.TrimSpace(a.Summary) == "" {
		return errors.New("article summary is empty")
	}
	u, err := url.Parse(a.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("article url %q is not a valid absolute URL", a.URL)
	}
	return nil
}

// ValidateContext checks that the temporal axes hold known enum values and
// that the optional mood and reading budget, when set, do too. Pure.
func ValidateContext(c domain.RankingContext) error {
	if !c.DayOfWeek.Valid() {
		return fmt.Errorf("unknown day of week %q", c.DayOfWeek)
	}
	if !c.TimeOfDay.Valid() {
		return fmt.Errorf("unknown time of day %q", c.TimeOfDay)
	}
	if c.Mood != "" && !c.Mood.Valid() {
		return fmt.Errorf("unknown mood %q", c.Mood)
	}
	if c.ReadingDuration != "" && !c.ReadingDuration.Valid() {
		return fmt.Errorf("unknown reading duration %q", c.ReadingDuration)
	}
	return nil
}
