// Package pipeline runs the full generation sequence: parse the intent,
// classify the task, load workspace documents, select context, find
// relevant files and assemble the prompt. Every stage degrades gracefully;
// the only hard failure is a missing workspace.
package pipeline

import (
	"fmt"
	"strings"
	"time"

	"github.com/saeedalam/promptforge/internal/assembler"
	"github.com/saeedalam/promptforge/internal/gitctx"
	"github.com/saeedalam/promptforge/internal/intent"
	"github.com/saeedalam/promptforge/internal/selector"
	"github.com/saeedalam/promptforge/internal/store"
	"github.com/saeedalam/promptforge/internal/suggest"
	"github.com/saeedalam/promptforge/internal/tasktype"
	"github.com/saeedalam/promptforge/pkg/types"
)

// GenerateRequest carries everything the invocation surface collected.
type GenerateRequest struct {
	Intent        string
	Template      string
	Target        string
	Format        types.OutputFormat
	ForcedContext []string
	Variables     map[string]string
	SkipFiles     bool
}

// Generate runs the pipeline against the given workspace.
func Generate(s *store.Store, req GenerateRequest) (*types.GeneratedPrompt, error) {
	// The parser and classifier handle an empty intent on their own; this
	// guard is invocation-surface validation so the CLI fails early instead
	// of emitting a prompt with a blank task.
	raw := strings.TrimSpace(req.Intent)
	if raw == "" {
		return nil, fmt.Errorf("intent must not be empty")
	}

	cfg, err := s.GetConfig()
	if err != nil {
		return nil, err
	}

	parsed := intent.Parse(raw)
	match := tasktype.Classify(raw, cfg.DetectionThreshold)

	contexts, warnings := s.LoadContexts()
	schemas, schemaWarnings := s.LoadSchemas()
	warnings = append(warnings, schemaWarnings...)
	templates, templateWarnings := s.LoadTemplates()
	warnings = append(warnings, templateWarnings...)

	for name, doc := range gitctx.NewReader(s.ProjectRoot()).SpecialDocuments() {
		if _, exists := contexts[name]; !exists {
			contexts[name] = doc
		}
	}

	// With no usable template at all, generation degrades to a null prompt
	// carrying the accumulated errors; the caller decides how to present it.
	if len(templates) == 0 {
		return &types.GeneratedPrompt{
			Metadata: types.PromptMetadata{
				GeneratedAt: time.Now().UTC(),
				Intent:      raw,
				Format:      string(req.Format),
				TaskType:    match.Type,
				Errors:      append(warnings, "no usable templates found"),
			},
		}, nil
	}

	tmpl, tmplWarnings := pickTemplate(req.Template, parsed, templates)
	warnings = append(warnings, tmplWarnings...)

	selection := selector.Select(parsed, match, contexts, cfg, req.ForcedContext)
	warnings = append(warnings, selection.Warnings...)

	ordered := make([]types.ContextDocument, 0, len(selection.Selected))
	for _, sel := range selection.Selected {
		ordered = append(ordered, contexts[sel.Name])
	}

	var suggestions *types.FileSuggestions
	if !req.SkipFiles && match.Type != tasktype.GeneralType {
		keywords := parsed.Keywords
		if len(keywords) == 0 {
			keywords = parsed.Components
		}
		found := suggest.Suggest(match.Config, s.ProjectRoot(), keywords, suggest.Limits{})
		suggestions = &found
	}

	return assembler.Assemble(assembler.Input{
		Intent:      parsed,
		Template:    tmpl,
		Context:     ordered,
		Schemas:     schemas,
		TaskMatch:   match,
		Suggestions: suggestions,
		Target:      req.Target,
		Format:      req.Format,
		Overrides:   req.Variables,
		Warnings:    warnings,
	}), nil
}

// pickTemplate resolves the template fallback chain: the explicit request,
// then the intent's most specific suggestion, then "base", then the
// alphabetically first available template. The caller guarantees at least
// one template exists.
func pickTemplate(requested string, in *types.Intent, templates map[string]types.PromptTemplate) (types.PromptTemplate, []string) {
	var warnings []string

	if requested != "" {
		if tmpl, ok := templates[requested]; ok {
			return tmpl, nil
		}
		warnings = append(warnings, fmt.Sprintf("template %q not found, falling back", requested))
	}

	// Suggestions list the generic base first and grow more specific;
	// prefer the most specific one that actually exists.
	for i := len(in.SuggestedTemplates) - 1; i >= 0; i-- {
		if tmpl, ok := templates[in.SuggestedTemplates[i]]; ok {
			return tmpl, warnings
		}
	}
	if tmpl, ok := templates["base"]; ok {
		return tmpl, warnings
	}
	names := store.TemplateNames(templates)
	return templates[names[0]], warnings
}
