// Package relevance scores arbitrary text against keyword sets and extracts
// significant keywords from free-form intent text. Scoring is pure and
// order-independent: identical inputs always produce identical scores.
package relevance

import (
	"regexp"
	"sort"
	"strings"
)

// Match weights. An exact keyword hit is worth three times a synonym hit;
// the stem weight caps how much the expanded set can inflate the denominator.
const (
	exactWeight   = 3.0
	stemWeight    = 2.0
	relatedWeight = 1.0
)

// Score rates how strongly text matches the keyword set, in [0,1].
// Empty text or an empty keyword set scores 0. When expandSynonyms is set,
// synonym and stem expansions of the keywords count as weak matches, with
// the denominator contribution capped so expansion cannot dominate.
func Score(text string, keywords []string, expandSynonyms bool) float64 {
	if strings.TrimSpace(text) == "" || len(keywords) == 0 {
		return 0
	}

	lower := strings.ToLower(text)

	var score, maxScore float64
	original := make(map[string]bool, len(keywords))
	for _, kw := range keywords {
		k := strings.ToLower(kw)
		original[k] = true
		maxScore += exactWeight
		if strings.Contains(lower, k) {
			score += exactWeight
		}
	}

	if expandSynonyms {
		expanded := Expand(keywords)
		matched := 0
		for _, term := range expanded {
			if original[term] {
				continue
			}
			if strings.Contains(lower, term) {
				matched++
			}
		}
		score += float64(matched) * relatedWeight

		// Cap the expanded contribution so a topic with many synonyms cannot
		// drown out the exact matches.
		expandedMax := float64(len(expanded)) * relatedWeight
		limit := float64(len(keywords)) * stemWeight
		if expandedMax > limit {
			expandedMax = limit
		}
		maxScore += expandedMax
	}

	if maxScore == 0 {
		return 0
	}
	result := score / maxScore
	if result > 1 {
		result = 1
	}
	return result
}

// Expand returns the synonym/stem expansion of the keyword set, deduplicated,
// excluding terms already present as keywords, in sorted order.
func Expand(keywords []string) []string {
	original := make(map[string]bool, len(keywords))
	for _, kw := range keywords {
		original[strings.ToLower(kw)] = true
	}

	seen := make(map[string]bool)
	for _, kw := range keywords {
		k := strings.ToLower(kw)
		for _, term := range synonyms[k] {
			if !original[term] {
				seen[term] = true
			}
		}
		for root, inflections := range stems {
			if k != root && !matchesStem(k, root, inflections) {
				continue
			}
			if k != root && !original[root] {
				seen[root] = true
			}
			for _, inf := range inflections {
				if inf != k && !original[inf] {
					seen[inf] = true
				}
			}
		}
	}

	expanded := make([]string, 0, len(seen))
	for term := range seen {
		expanded = append(expanded, term)
	}
	sort.Strings(expanded)
	return expanded
}

func matchesStem(word, root string, inflections []string) bool {
	for _, inf := range inflections {
		if word == inf {
			return true
		}
	}
	return false
}

var tokenSplit = regexp.MustCompile(`[\s,.\-_]+`)

// ExtractKeywords turns a raw intent sentence into a deduplicated set of
// significant words plus any known multi-word phrases found in the text.
// Single words survive when longer than two characters and not stopwords.
func ExtractKeywords(text string) []string {
	lower := strings.ToLower(text)

	seen := make(map[string]bool)
	var result []string
	for _, tok := range tokenSplit.Split(lower, -1) {
		if len(tok) <= 2 || stopwords[tok] || seen[tok] {
			continue
		}
		seen[tok] = true
		result = append(result, tok)
	}

	for _, phrase := range knownPhrases {
		if strings.Contains(lower, phrase) && !seen[phrase] {
			seen[phrase] = true
			result = append(result, phrase)
		}
	}

	return result
}
