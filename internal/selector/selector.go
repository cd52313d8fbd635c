// Package selector decides which context documents accompany a prompt, and
// in what order. Essential documents always lead; everything else competes
// on relevance against the intent's keywords.
package selector

import (
	"fmt"
	"sort"

	"github.com/saeedalam/promptforge/internal/relevance"
	"github.com/saeedalam/promptforge/pkg/types"
)

// Fixed scores for documents included by rule rather than by relevance.
const (
	essentialScore = 1.0
	structureScore = 0.9
	hintScore      = 0.8
	typeScore      = 0.7
	alwaysScore    = 0.5
	bugfixScore    = 0.7
)

// historyLeniency relaxes the relevance threshold for the history document
// only. Arbitrary documents keep the unmodified threshold.
const historyLeniency = 0.7

// specialDocs are resolved by inclusion mode instead of plain relevance.
var specialDocs = []string{"latest_commit", "history"}

// Result is the selector's output: the ordered selection plus any
// non-fatal warnings raised along the way.
type Result struct {
	Selected []types.SelectedContext
	Warnings []string
}

// Names returns just the document names in selection order.
func (r Result) Names() []string {
	names := make([]string, len(r.Selected))
	for i, s := range r.Selected {
		names[i] = s.Name
	}
	return names
}

// Select picks and orders context documents for the intent. Forced names
// come from the invocation surface and are always included when present;
// a forced name with no matching document is a warning, never an error.
func Select(in *types.Intent, match types.TaskTypeMatch, available map[string]types.ContextDocument, cfg *types.Config, forced []string) Result {
	var res Result
	included := make(map[string]bool)

	add := func(name string, score float64) {
		if included[name] {
			return
		}
		included[name] = true
		res.Selected = append(res.Selected, types.SelectedContext{Name: name, Score: score})
	}

	// 1. Essentials, in configured order, then explicit forced names.
	essentialCount := 0
	for _, name := range cfg.EssentialContext {
		if _, ok := available[name]; ok {
			add(name, essentialScore)
			essentialCount++
		}
	}
	for _, name := range forced {
		if _, ok := available[name]; !ok {
			res.Warnings = append(res.Warnings, fmt.Sprintf("requested context %q not found", name))
			continue
		}
		if !included[name] {
			add(name, essentialScore)
			essentialCount++
		}
	}

	// 2. Project structure rides along when present.
	if _, ok := available["project_structure"]; ok {
		add("project_structure", structureScore)
	}

	// 3. Documents the intent vocabulary hinted at.
	for _, name := range in.ContextHints {
		if _, ok := available[name]; ok {
			add(name, hintScore)
		}
	}

	// 4. Documents named after detected type categories.
	for _, name := range in.Types {
		if _, ok := available[name]; ok {
			add(name, typeScore)
		}
	}

	// 5. Special documents, each resolved independently by mode.
	for _, name := range specialDocs {
		doc, ok := available[name]
		if !ok || included[name] {
			continue
		}
		mode := cfg.IncludeLatestCommit
		if name == "history" {
			mode = cfg.IncludeHistory
		}
		switch mode {
		case types.IncludeAlways:
			add(name, alwaysScore)
		case types.IncludeNever:
			// excluded
		default: // auto
			if match.Type == "bugfix" {
				add(name, bugfixScore)
				continue
			}
			if excludes(match.Config.ExcludedContext, name) {
				continue
			}
			threshold := cfg.MinRelevance
			if name == "history" {
				threshold = cfg.MinRelevance * historyLeniency
			}
			score := relevance.Score(doc.Body, in.Keywords, cfg.ExpandSynonyms)
			if score >= threshold {
				add(name, score)
			}
		}
	}

	// 6. Everything else competes on relevance.
	for _, name := range sortedNames(available) {
		if included[name] || isSpecial(name) {
			continue
		}
		if excludes(match.Config.ExcludedContext, name) {
			continue
		}
		score := relevance.Score(available[name].Body, in.Keywords, cfg.ExpandSynonyms)
		if score >= cfg.MinRelevance {
			add(name, score)
		}
	}

	// 7. Essentials keep their order; the rest sort by descending score,
	// stable so equal scores keep insertion order.
	rest := res.Selected[essentialCount:]
	sort.SliceStable(rest, func(i, j int) bool { return rest[i].Score > rest[j].Score })

	return res
}

func excludes(excluded []string, name string) bool {
	for _, e := range excluded {
		if e == name {
			return true
		}
	}
	return false
}

func isSpecial(name string) bool {
	for _, s := range specialDocs {
		if s == name {
			return true
		}
	}
	return false
}

// sortedNames fixes iteration order over the available map so selection is
// reproducible run to run.
func sortedNames(available map[string]types.ContextDocument) []string {
	names := make([]string, 0, len(available))
	for name := range available {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
