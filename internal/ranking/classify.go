package ranking

import (
	"strings"

	"github.com/lens-project/lens-engine-sub000/internal/domain"
)

// ContentType is a coarse tag the classifier attaches to an article.
type ContentType string

const (
	TypeTechnical     ContentType = "technical"
	TypeEducational   ContentType = "educational"
	TypeEntertainment ContentType = "entertainment"
	TypeNews          ContentType = "news"
	TypeLifestyle     ContentType = "lifestyle"
	TypeBusiness      ContentType = "business"
	TypeScience       ContentType = "science"
	TypeHealth        ContentType = "health"
	TypeSports        ContentType = "sports"
	TypePolitics      ContentType = "politics"
	TypeCulture       ContentType = "culture"
	TypeTravel        ContentType = "travel"
	TypeFood          ContentType = "food"
	TypeFinance       ContentType = "finance"
	TypeGaming        ContentType = "gaming"
	TypeMusic         ContentType = "music"
	TypeOpinion       ContentType = "opinion"
	TypeProductivity  ContentType = "productivity"
	TypeDesign        ContentType = "design"
	TypeSecurity      ContentType = "security"
)

// contentTypeOrder fixes classifier output order so identical inputs always
// produce identical tag slices.
var contentTypeOrder = []ContentType{
	TypeTechnical, TypeEducational, TypeEntertainment, TypeNews, TypeLifestyle,
	TypeBusiness, TypeScience, TypeHealth, TypeSports, TypePolitics,
	TypeCulture, TypeTravel, TypeFood, TypeFinance, TypeGaming,
	TypeMusic, TypeOpinion, TypeProductivity, TypeDesign, TypeSecurity,
}

// Plain substring membership, no weighting or stemming. The classifier is a
// crude bias signal for the adjustment tables, not a score determinant.
var contentKeywords = map[ContentType][]string{
	TypeTechnical:     {"programming", "software", "code", "developer", "engineering", "compiler", "database", "kubernetes", "golang", "javascript", "framework"},
	TypeEducational:   {"tutorial", "guide", "learn", "course", "how to", "introduction", "explained", "lesson"},
	TypeEntertainment: {"movie", "film", "tv show", "series", "celebrity", "comedy", "streaming", "trailer"},
	TypeNews:          {"breaking", "report", "announced", "update", "today", "this week", "latest"},
	TypeLifestyle:     {"lifestyle", "home", "fashion", "wellness", "habits", "minimalism", "family"},
	TypeBusiness:      {"business", "startup", "company", "market", "strategy", "revenue", "entrepreneur"},
	TypeScience:       {"research", "study", "scientist", "discovery", "physics", "biology", "experiment"},
	TypeHealth:        {"health", "medical", "fitness", "exercise", "nutrition", "mental health", "sleep"},
	TypeSports:        {"sports", "football", "basketball", "tennis", "league", "championship", "tournament"},
	TypePolitics:      {"politics", "election", "government", "policy", "senate", "parliament", "legislation"},
	TypeCulture:       {"culture", "artist", "museum", "literature", "history", "exhibition", "book"},
	TypeTravel:        {"travel", "destination", "vacation", "flight", "itinerary", "tourism"},
	TypeFood:          {"food", "recipe", "cooking", "restaurant", "cuisine", "baking"},
	TypeFinance:       {"finance", "investing", "stocks", "crypto", "budget", "economy", "interest rate"},
	TypeGaming:        {"gaming", "video game", "playstation", "xbox", "nintendo", "esports", "gameplay"},
	TypeMusic:         {"music", "album", "concert", "playlist", "songwriter"},
	TypeOpinion:       {"opinion", "editorial", "perspective", "why i", "hot take", "argument"},
	TypeProductivity:  {"productivity", "workflow", "time management", "focus", "note-taking", "organization"},
	TypeDesign:        {"design", "user experience", "typography", "interface", "branding", "illustration"},
	TypeSecurity:      {"security", "vulnerability", "breach", "encryption", "malware", "phishing", "privacy"},
}

// ClassifyContent tags an article with zero or more content types by testing
// keyword membership against the lowercased categories, title, and summary.
// Pure and deterministic.
func ClassifyContent(article domain.ArticleInput) []ContentType {
	var sb strings.Builder
	for _, c := range article.Categories {
		sb.WriteString(c)
		sb.WriteByte(' ')
	}
	sb.WriteString(article.Title)
	sb.WriteByte(' ')
	sb.WriteString(article.Summary)
	text := strings.ToLower(sb.String())

	var tags []ContentType
	for _, ct := range contentTypeOrder {
		for _, kw := range contentKeywords[ct] {
			if strings.Contains(text, kw) {
				tags = append(tags, ct)
				break
			}
		}
	}
	return tags
}
