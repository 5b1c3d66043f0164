package domain

import "time"

// ArticleInput is the core entity describing an RSS-sourced article handed to
// the ranking engine. Produced upstream; the engine never mutates it.
type ArticleInput struct {
	Title       string
	Summary     string
	URL         string
	PublishedAt time.Time // zero when the feed carried no date
	Source      string
	Categories  []string
}
