package criteria

import (
	"fmt"
	"strings"
)

// PromptText deterministically renders a rubric into the prompt section the
// scoring adapter splices into its LLM request. Criteria are numbered in
// order; guidelines and additional instructions become bullet lists.
func PromptText(cfg *Config) string {
	var b strings.Builder

	b.WriteString("Evaluation Criteria:\n")
	for i, cr := range cfg.Criteria {
		if cr.Weight > 0 {
			fmt.Fprintf(&b, "%d. %s (weight %d): %s\n", i+1, cr.Name, cr.Weight, cr.Description)
		} else {
			fmt.Fprintf(&b, "%d. %s: %s\n", i+1, cr.Name, cr.Description)
		}
	}

	b.WriteString("\nScoring Guidelines:\n")
	for _, g := range cfg.ScoringGuidelines {
		fmt.Fprintf(&b, "- %s: %s\n", g.Range, g.Description)
		for _, ex := range g.Examples {
			fmt.Fprintf(&b, "  e.g. %s\n", ex)
		}
	}

	if len(cfg.AdditionalInstructions) > 0 {
		b.WriteString("\nAdditional Guidelines:\n")
		for _, ins := range cfg.AdditionalInstructions {
			fmt.Fprintf(&b, "- %s\n", ins)
		}
	}

	return b.String()
}
