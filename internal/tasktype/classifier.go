package tasktype

import (
	"strings"

	"github.com/saeedalam/promptforge/pkg/types"
)

// strongPatternLen is the pattern length above which a single match is
// treated as a strong signal rather than a coincidental substring.
const strongPatternLen = 4

// multiMatchBonus rewards categories with more than one matching pattern.
const multiMatchBonus = 0.2

// strongMatchBase is the floor score when a long pattern matched.
const strongMatchBase = 0.7

// Classify matches the intent text against the catalog and returns the best
// category, or the general fallback when nothing reaches the threshold.
// Ties keep the first-defined category (strict > comparison while iterating
// in catalog order).
func Classify(text string, threshold float64) types.TaskTypeMatch {
	lower := strings.ToLower(text)

	best := types.TaskTypeMatch{Type: GeneralType, Confidence: 0, Config: GeneralConfig()}
	bestScore := 0.0

	for _, entry := range Catalog {
		score := scoreCategory(lower, entry.Config.Patterns)
		if score > bestScore {
			bestScore = score
			best = types.TaskTypeMatch{Type: entry.Key, Confidence: score, Config: entry.Config}
		}
	}

	if bestScore < threshold {
		return types.TaskTypeMatch{Type: GeneralType, Confidence: 0, Config: GeneralConfig()}
	}
	return best
}

// scoreCategory counts pattern substring matches in the lower-cased text.
// Any matched pattern longer than strongPatternLen lifts the base score to
// strongMatchBase; otherwise the base is the matched fraction of patterns.
func scoreCategory(lower string, patterns []string) float64 {
	if len(patterns) == 0 {
		return 0
	}

	matches := 0
	strong := false
	for _, p := range patterns {
		if strings.Contains(lower, p) {
			matches++
			if len(p) > strongPatternLen {
				strong = true
			}
		}
	}
	if matches == 0 {
		return 0
	}

	score := float64(matches) / float64(len(patterns))
	if strong {
		score = strongMatchBase
	}
	if matches > 1 {
		score += multiMatchBonus
	}
	if score > 1 {
		score = 1
	}
	return score
}
