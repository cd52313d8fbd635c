// Package assembler composes the final prompt from the resolved intent,
// selected context, task type match and file suggestions. Assembly is
// deterministic: the same inputs always produce byte-identical output.
package assembler

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/saeedalam/promptforge/internal/schema"
	"github.com/saeedalam/promptforge/pkg/types"
)

// Input carries everything the assembler needs. Warnings accumulated by
// earlier pipeline stages are carried through into the prompt metadata.
type Input struct {
	Intent      *types.Intent
	Template    types.PromptTemplate
	Context     []types.ContextDocument
	Schemas     map[string]types.SchemaDocument
	TaskMatch   types.TaskTypeMatch
	Suggestions *types.FileSuggestions
	Target      string
	Format      types.OutputFormat
	Overrides   map[string]string
	Warnings    []string
}

var (
	secondLevelHeading = regexp.MustCompile(`(?m)^## `)
	boldMarker         = regexp.MustCompile(`\*\*([^*]*)\*\*`)
	inlineCode         = regexp.MustCompile("`([^`]*)`")
	leadingHashes      = regexp.MustCompile(`(?m)^#+\s*`)
)

// Assemble builds the prompt. It never returns an error: problems surface
// as warnings in the result's metadata and the prompt degrades gracefully.
func Assemble(in Input) *types.GeneratedPrompt {
	sections := builtinSections(in)
	sections = append(sections, templateSections(in)...)

	sort.SliceStable(sections, func(i, j int) bool {
		if sections[i].priority != sections[j].priority {
			return sections[i].priority < sections[j].priority
		}
		return sections[i].order < sections[j].order
	})

	var parts []string
	for _, s := range sections {
		if s.text != "" {
			parts = append(parts, s.text)
		}
	}
	content := strings.Join(parts, "\n\n")

	content = applyVariables(content, in.Template, in.Overrides)

	schemasUsed := schema.UsedSchemas(content, in.Schemas)

	content, unresolved := schema.ResolveAll(content, in.Schemas)
	warnings := append([]string(nil), in.Warnings...)
	for _, path := range unresolved {
		warnings = append(warnings, fmt.Sprintf("unresolved schema reference: %s", path))
	}

	if in.Target == "cursor" {
		content = secondLevelHeading.ReplaceAllString(content, "### ")
	}

	content = render(content, in.Format)

	contextUsed := make([]string, 0, len(in.Context))
	for _, doc := range in.Context {
		contextUsed = append(contextUsed, doc.Name)
	}

	return &types.GeneratedPrompt{
		Content:  content,
		Warnings: warnings,
		Metadata: types.PromptMetadata{
			ID:           uuid.NewString(),
			GeneratedAt:  time.Now().UTC(),
			TemplateUsed: in.Template.Name,
			Target:       in.Target,
			Format:       string(in.Format),
			Intent:       in.Intent.Raw,
			TaskType:     in.TaskMatch.Type,
			ContextUsed:  contextUsed,
			SchemasUsed:  schemasUsed,
		},
	}
}

// builtinSections constructs the fixed sections in their canonical order.
func builtinSections(in Input) []section {
	return []section{
		{name: "title", priority: priTitle, order: 0, text: buildTitle(in.Intent)},
		{name: "context", priority: priContext, order: 1, text: buildContext(in.Context)},
		{name: "requirements", priority: priRequirements, order: 2, text: buildRequirements(in.TaskMatch)},
		{name: "files", priority: priFiles, order: 3, text: buildFileSuggestions(in.Suggestions)},
		{name: "constraints", priority: priConstraints, order: 4, text: buildConstraints(in.Intent)},
		{name: "output", priority: priOutput, order: 5, text: buildOutputExpectations(in.Target)},
		{name: "task", priority: priTask, order: 6, text: buildTask(in.Intent)},
	}
}

// templateSections merges the template's declared sections, ordered by
// priority then name so map iteration never leaks into the output.
// Priorities at or above the task section's are clamped below it, keeping
// the task section last no matter what a template declares. Conditional
// sections are dropped when any of their schema references fail to resolve.
func templateSections(in Input) []section {
	names := make([]string, 0, len(in.Template.Sections))
	for name := range in.Template.Sections {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]section, 0, len(names))
	for i, name := range names {
		ts := in.Template.Sections[name]
		text := strings.TrimSpace(ts.Template)
		if text == "" {
			text = strings.TrimSpace(ts.Content)
		}
		if text == "" {
			continue
		}
		if ts.Conditional {
			if _, unresolved := schema.ResolveAll(text, in.Schemas); len(unresolved) > 0 {
				continue
			}
		}
		priority := ts.Priority
		if priority >= priTask {
			priority = priTask - 1
		}
		out = append(out, section{
			name:     name,
			priority: priority,
			order:    100 + i,
			text:     text,
		})
	}
	return out
}

// applyVariables substitutes {{name}} placeholders for the template's
// declared variables, preferring caller overrides over declared defaults.
// Schema references are left alone for the resolver.
func applyVariables(content string, tmpl types.PromptTemplate, overrides map[string]string) string {
	names := make([]string, 0, len(tmpl.Variables))
	for name := range tmpl.Variables {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		value, ok := overrides[name]
		if !ok {
			value = tmpl.Variables[name].Default
		}
		if value == "" {
			continue
		}
		content = strings.ReplaceAll(content, "{{"+name+"}}", value)
	}
	extra := make([]string, 0, len(overrides))
	for name := range overrides {
		if _, declared := tmpl.Variables[name]; !declared {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	for _, name := range extra {
		content = strings.ReplaceAll(content, "{{"+name+"}}", overrides[name])
	}
	return content
}

// render converts the assembled markdown into the requested output format.
func render(content string, format types.OutputFormat) string {
	content = strings.TrimSpace(content)
	switch format {
	case types.FormatPlain:
		content = leadingHashes.ReplaceAllString(content, "")
		content = boldMarker.ReplaceAllString(content, "$1")
		content = inlineCode.ReplaceAllString(content, "$1")
		return strings.TrimSpace(content)
	case types.FormatJSON:
		raw, err := json.MarshalIndent(struct {
			Prompt string `json:"prompt"`
		}{Prompt: content}, "", "  ")
		if err != nil {
			return content
		}
		return string(raw)
	default:
		return content
	}
}
