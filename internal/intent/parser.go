// Package intent parses a free-text task description into a structured
// Intent record: detected action, component nouns, type categories,
// keywords, schema references, and context hints. Parsing is pure; the
// Intent is built once per invocation and never mutated afterwards.
package intent

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/saeedalam/promptforge/internal/relevance"
	"github.com/saeedalam/promptforge/pkg/types"
)

// Confidence contributions. Base covers any parseable string; the bonuses
// reward signals that narrow the interpretation.
const (
	confidenceBase       = 0.3
	confidenceAction     = 0.2
	confidenceComponents = 0.3
	confidenceTypes      = 0.2
)

var dottedRef = regexp.MustCompile(`\b([a-z][a-z0-9]*)\.([a-z][a-z0-9]*)(\.[a-z][a-z0-9]*)?\b`)

var paletteRef = regexp.MustCompile(`\b([a-z][a-z0-9]*)\s+(palette|color|colors|theme|style)\b`)

// Parse builds an Intent from a raw request string.
func Parse(raw string) *types.Intent {
	lower := strings.ToLower(raw)
	tokens := tokenize(lower)

	in := &types.Intent{
		Raw:    raw,
		Action: detectAction(tokens),
	}

	in.Components, in.Types = extractComponents(tokens)
	in.Keywords = relevance.ExtractKeywords(raw)
	in.SchemaReferences = extractSchemaRefs(lower)
	in.ContextHints = extractContextHints(tokens)
	in.Requirements = buildRequirements(in)
	in.SuggestedTemplates = suggestTemplates(in.Types)
	in.Confidence = computeConfidence(in)

	return in
}

// tokenize splits on whitespace and strips leading/trailing punctuation so
// "button," still matches the component table.
func tokenize(lower string) []string {
	fields := strings.Fields(lower)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		t := strings.Trim(f, ",.;:!?\"'()")
		if t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// detectAction scans the action table in order; the first entry with a verb
// present among the tokens wins. No recognized verb defaults to create.
func detectAction(tokens []string) types.Action {
	present := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		present[t] = true
	}
	for _, entry := range actionTable {
		for _, verb := range entry.Verbs {
			if present[verb] {
				return entry.Action
			}
		}
	}
	return types.ActionCreate
}

// extractComponents walks the tokens in input order, collecting recognized
// component nouns (repeats kept when repeated in input) and the deduplicated
// type categories they imply.
func extractComponents(tokens []string) ([]string, []string) {
	var components []string
	var typesOut []string
	seenType := make(map[string]bool)

	for _, tok := range tokens {
		for _, entry := range componentTable {
			for _, noun := range entry.Nouns {
				if tok != noun {
					continue
				}
				components = append(components, tok)
				if !seenType[entry.Type] {
					seenType[entry.Type] = true
					typesOut = append(typesOut, entry.Type)
				}
			}
		}
	}
	return components, typesOut
}

// extractSchemaRefs guesses dotted schema paths from the text: literal
// "a.b" or "a.b.c" identifiers, plus "<word> palette|color|theme|style"
// phrasing mapped to a synthetic colors.<word> reference.
func extractSchemaRefs(lower string) []string {
	seen := make(map[string]bool)
	var refs []string

	for _, m := range dottedRef.FindAllString(lower, -1) {
		if !seen[m] {
			seen[m] = true
			refs = append(refs, m)
		}
	}

	for _, m := range paletteRef.FindAllStringSubmatch(lower, -1) {
		subject := m[1]
		if determiners[subject] {
			continue
		}
		ref := "colors." + subject
		if !seen[ref] {
			seen[ref] = true
			refs = append(refs, ref)
		}
	}

	return refs
}

// extractContextHints matches tokens against the context vocabulary table.
func extractContextHints(tokens []string) []string {
	present := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		present[t] = true
	}

	var hints []string
	for _, name := range contextOrder {
		for _, word := range contextKeywords[name] {
			if present[word] {
				hints = append(hints, name)
				break
			}
		}
	}
	return hints
}

// buildRequirements emits one requirement per recognized component, or a
// single generic requirement carrying the raw text when none were found.
func buildRequirements(in *types.Intent) []types.Requirement {
	if len(in.Components) == 0 {
		return []types.Requirement{{
			Type:        "generic",
			Action:      in.Action,
			Description: in.Raw,
		}}
	}

	reqs := make([]types.Requirement, 0, len(in.Components))
	for _, c := range in.Components {
		reqs = append(reqs, types.Requirement{
			Type:        "component",
			Action:      in.Action,
			Component:   c,
			Description: fmt.Sprintf("%s %s", in.Action, c),
		})
	}
	return reqs
}

// suggestTemplates always starts with "base", then adds one template per
// detected type in detection order.
func suggestTemplates(typeCategories []string) []string {
	templates := []string{"base"}
	seen := map[string]bool{"base": true}
	for _, tc := range typeCategories {
		name, ok := typeTemplates[tc]
		if !ok || seen[name] {
			continue
		}
		seen[name] = true
		templates = append(templates, name)
	}
	return templates
}

// computeConfidence applies the additive confidence formula, capped at 1.
func computeConfidence(in *types.Intent) float64 {
	c := confidenceBase
	if in.Action != types.ActionCreate {
		c += confidenceAction
	}
	if len(in.Components) > 0 {
		c += confidenceComponents
	}
	if len(in.Types) > 0 {
		c += confidenceTypes
	}
	if c > 1 {
		c = 1
	}
	return c
}
