// Package criteria holds the weighted evaluation rubric rendered into the
// LLM prompt, its durable-config repository, and the baked-in default.
package criteria

import (
	"fmt"
	"strings"
)

// Criterion is one weighted dimension of the rubric.
type Criterion struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Weight      int    `yaml:"weight,omitempty"` // 1-10, 0 means unweighted
}

// Guideline describes one scoring band, e.g. range "7-8".
type Guideline struct {
	Range       string   `yaml:"range"`
	Description string   `yaml:"description"`
	Examples    []string `yaml:"examples,omitempty"`
}

// Config is a complete rubric document. Immutable once loaded; the
// orchestrator caches it for a batch's lifetime.
type Config struct {
	Version                string      `yaml:"version"`
	Description            string      `yaml:"description,omitempty"`
	Criteria               []Criterion `yaml:"criteria"`
	ScoringGuidelines      []Guideline `yaml:"scoringGuidelines"`
	AdditionalInstructions []string    `yaml:"additionalInstructions,omitempty"`
}

// Validate checks the structural invariants: at least one criterion and one
// guideline, criterion fields non-empty, weights inside 1-10 when present.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("criteria config is nil")
	}
	if len(c.Criteria) == 0 {
		return fmt.Errorf("criteria list is empty")
	}
	if len(c.ScoringGuidelines) == 0 {
		return fmt.Errorf("scoring guidelines list is empty")
	}
	for i, cr := range c.Criteria {
		if strings.TrimSpace(cr.ID) == "" {
			return fmt.Errorf("criterion %d: id is empty", i)
		}
		if strings.TrimSpace(cr.Name) == "" {
			return fmt.Errorf("criterion %q: name is empty", cr.ID)
		}
		if strings.TrimSpace(cr.Description) == "" {
			return fmt.Errorf("criterion %q: description is empty", cr.ID)
		}
		if cr.Weight != 0 && (cr.Weight < 1 || cr.Weight > 10) {
			return fmt.Errorf("criterion %q: weight %d outside 1-10", cr.ID, cr.Weight)
		}
	}
	for i, g := range c.ScoringGuidelines {
		if strings.TrimSpace(g.Range) == "" {
			return fmt.Errorf("guideline %d: range is empty", i)
		}
		if strings.TrimSpace(g.Description) == "" {
			return fmt.Errorf("guideline %q: description is empty", g.Range)
		}
	}
	return nil
}
