package ranking

import (
	"github.com/lens-project/lens-engine-sub000/internal/domain"
)

// Static rule tables mapping axis value x content type to an additive delta.
// Deltas stay within -2..+3; absent combinations contribute 0. The three
// axes are independent and summed.
var dayAdjustments = map[domain.DayOfWeek]map[ContentType]int{
	domain.Monday: {
		TypeTechnical: 2, TypeEducational: 1, TypeBusiness: 1,
		TypeProductivity: 2, TypeEntertainment: -1,
	},
	domain.Tuesday: {
		TypeTechnical: 1, TypeEducational: 1, TypeScience: 1,
	},
	domain.Wednesday: {
		TypeTechnical: 1, TypeNews: 1, TypeBusiness: 1,
	},
	domain.Thursday: {
		TypeBusiness: 1, TypeFinance: 1, TypeNews: 1,
	},
	domain.Friday: {
		TypeEntertainment: 2, TypeLifestyle: 1, TypeCulture: 1,
		TypeGaming: 1, TypeTechnical: -1,
	},
	domain.Saturday: {
		TypeLifestyle: 2, TypeEntertainment: 2, TypeTravel: 2,
		TypeSports: 1, TypeFood: 1, TypeTechnical: -1,
	},
	domain.Sunday: {
		TypeLifestyle: 2, TypeCulture: 1, TypeEducational: 1,
		TypeOpinion: 1, TypeNews: -1,
	},
}

var timeAdjustments = map[domain.TimeOfDay]map[ContentType]int{
	domain.Morning: {
		TypeNews: 2, TypeTechnical: 1, TypeEducational: 1,
		TypeBusiness: 1, TypeProductivity: 1,
	},
	domain.Afternoon: {
		TypeTechnical: 1, TypeBusiness: 1, TypeEducational: 1,
	},
	domain.Evening: {
		TypeEntertainment: 2, TypeLifestyle: 1, TypeCulture: 1,
		TypeSports: 1,
	},
	domain.Night: {
		TypeEntertainment: 1, TypeGaming: 1,
		TypeTechnical: -1, TypeNews: -1,
	},
}

var moodAdjustments = map[domain.Mood]map[ContentType]int{
	domain.MoodFocused: {
		TypeTechnical: 3, TypeEducational: 2, TypeScience: 2,
		TypeProductivity: 1, TypeEntertainment: -2,
	},
	domain.MoodRelaxed: {
		TypeEntertainment: 2, TypeLifestyle: 2, TypeTravel: 1,
		TypeCulture: 1, TypeTechnical: -1,
	},
	domain.MoodCurious: {
		TypeScience: 2, TypeEducational: 2, TypeCulture: 1,
		TypeTechnical: 1, TypeOpinion: 1,
	},
	domain.MoodTired: {
		TypeEntertainment: 2, TypeLifestyle: 1,
		TypeTechnical: -2, TypeEducational: -1,
	},
}

// CalculateContextualAdjustments exposes the three per-axis deltas
// separately. It must agree exactly with ApplyContextualAdjustments, which
// the tests pin down.
func CalculateContextualAdjustments(ctx domain.RankingContext, article domain.ArticleInput) domain.ContextFactors {
	types := ClassifyContent(article)
	return domain.ContextFactors{
		DayOfWeekAdjustment: sumDeltas(dayAdjustments[ctx.DayOfWeek], types),
		TimeOfDayAdjustment: sumDeltas(timeAdjustments[ctx.TimeOfDay], types),
		MoodAdjustment:      sumDeltas(moodAdjustments[ctx.Mood], types),
	}
}

// ApplyContextualAdjustments shifts a base score by the summed contextual
// deltas and clamps the result to [0,10]. Deterministic: identical inputs
// always yield identical output, which makes re-running it safe on the
// orchestrator's sequential-retry path.
func ApplyContextualAdjustments(baseScore float64, ctx domain.RankingContext, article domain.ArticleInput) float64 {
	factors := CalculateContextualAdjustments(ctx, article)
	return ClampScore(baseScore + float64(factors.Total()))
}

// ClampScore bounds a score to the [0,10] scale.
func ClampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 10 {
		return 10
	}
	return score
}

func sumDeltas(table map[ContentType]int, types []ContentType) int {
	total := 0
	for _, ct := range types {
		total += table[ct]
	}
	return total
}
