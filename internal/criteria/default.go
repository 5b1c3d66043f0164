package criteria

// Default returns the baked-in rubric used whenever no custom criteria file
// is available. Callers must not mutate the returned value.
func Default() *Config {
	return &Config{
		Version:     "1.0",
		Description: "Default content ranking criteria",
		Criteria: []Criterion{
			{
				ID:          "relevance",
				Name:        "Relevance",
				Description: "How closely the article matches the reader's interests and current context",
				Weight:      9,
			},
			{
				ID:          "quality",
				Name:        "Quality",
				Description: "Writing clarity, accuracy, and editorial care",
				Weight:      8,
			},
			{
				ID:          "depth",
				Name:        "Depth",
				Description: "Substance beyond headlines: analysis, evidence, original insight",
				Weight:      7,
			},
			{
				ID:          "practicality",
				Name:        "Practicality",
				Description: "Whether the reader can act on or apply what the article covers",
				Weight:      7,
			},
			{
				ID:          "timeliness",
				Name:        "Timeliness",
				Description: "Whether the article matters now rather than being stale or evergreen filler",
				Weight:      5,
			},
		},
		ScoringGuidelines: []Guideline{
			{
				Range:       "9-10",
				Description: "Exceptional: directly on-interest, authoritative, worth interrupting the reader for",
				Examples:    []string{"A deep technical postmortem in the reader's own field"},
			},
			{
				Range:       "7-8",
				Description: "Strong: clearly relevant and well made, should surface near the top",
			},
			{
				Range:       "5-6",
				Description: "Moderate: somewhat relevant or uneven quality, fine mid-list",
			},
			{
				Range:       "3-4",
				Description: "Weak: tangential interest, thin content, or poorly sourced",
			},
			{
				Range:       "0-2",
				Description: "Poor: off-topic, clickbait, or content-free",
				Examples:    []string{"A press release with no substance", "Listicle padding"},
			},
		},
		AdditionalInstructions: []string{
			"Judge the article on its title and summary only; do not assume unstated content.",
			"Prefer primary sources and original reporting over aggregation.",
			"Penalize sensationalist framing even when the topic is relevant.",
			"When uncertain between two bands, choose the lower one.",
		},
	}
}
