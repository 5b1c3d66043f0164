package scoring

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	maxCategories    = 5
	defaultReadTime  = 5 // minutes, policy default for missing/invalid values
	minReadTime      = 1
	maxReadTime      = 60
	defaultReasoning = "No reasoning provided"
)

// ExtractJSONObject returns the first balanced {...} span in a possibly
// prose-wrapped completion. The scan is quote- and escape-aware so braces
// inside string values do not unbalance it.
func ExtractJSONObject(text string) (string, error) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", fmt.Errorf("no JSON object found in response")
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return text[start : i+1], nil
			}
		}
	}
	return "", fmt.Errorf("unbalanced JSON object in response")
}

// NormalizeScore coerces an untrusted score value to a float in [0,10].
// Non-numeric or NaN values become 0.
func NormalizeScore(v any) float64 {
	n, ok := coerceNumber(v)
	if !ok || math.IsNaN(n) {
		return 0
	}
	if n < 0 {
		return 0
	}
	if n > 10 {
		return 10
	}
	return n
}

// NormalizeCategories keeps the first maxCategories non-empty strings.
func NormalizeCategories(vs []any) []string {
	var out []string
	for _, v := range vs {
		s, ok := v.(string)
		if !ok {
			continue
		}
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
		if len(out) == maxCategories {
			break
		}
	}
	return out
}

// NormalizeReadTime coerces an untrusted estimate to whole minutes within
// [1,60]. Non-numeric, NaN, or non-positive values fall back to the policy
// default of 5.
func NormalizeReadTime(v any) int {
	n, ok := coerceNumber(v)
	if !ok || math.IsNaN(n) || n <= 0 {
		return defaultReadTime
	}
	m := int(math.Round(n))
	if m < minReadTime {
		return minReadTime
	}
	if m > maxReadTime {
		return maxReadTime
	}
	return m
}

// NormalizeReasoning substitutes a fixed placeholder for absent reasoning.
func NormalizeReasoning(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return defaultReasoning
	}
	return s
}

func coerceNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
