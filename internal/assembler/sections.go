package assembler

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/saeedalam/promptforge/pkg/types"
)

// Built-in section priorities. Template-declared sections slot in between
// by their own priority values; the task section always closes the prompt.
const (
	priTitle        = 10
	priContext      = 20
	priRequirements = 30
	priFiles        = 40
	priConstraints  = 50
	priOutput       = 60
	priTask         = 100
)

// Render caps for the file suggestion section.
const (
	maxRenderDirs  = 5
	maxRenderFiles = 8
)

// section is one assembled block of the final prompt.
type section struct {
	name     string
	priority int
	order    int // insertion order, breaks priority ties
	text     string
}

// typeConstraints maps intent type categories to the constraint lines they
// contribute.
var typeConstraints = map[string][]string{
	"ui": {
		"Follow accessibility guidance: keyboard focus, labels, contrast",
		"Keep layouts responsive across supported breakpoints",
		"Reuse existing component patterns instead of inventing new ones",
	},
	"api": {
		"Follow the REST conventions used by existing routes",
		"Return structured errors with appropriate status codes",
		"Validate all inputs at the boundary",
	},
	"auth": {
		"Treat all credentials and tokens as secrets",
		"Apply the principle of least privilege",
		"Never weaken existing security checks",
	},
}

// genericConstraints is the fallback when no recognized type contributed.
var genericConstraints = []string{
	"Follow the existing project conventions",
	"Keep the change minimal and focused",
	"Update documentation where behavior changes",
}

var headingRun = regexp.MustCompile(`(?m)^(#+)`)

// buildTitle renders the top-level heading: capitalized action plus the
// joined components, or "implementation" when none were recognized.
func buildTitle(in *types.Intent) string {
	subject := "implementation"
	if len(in.Components) > 0 {
		subject = strings.Join(in.Components, " ")
	}
	action := string(in.Action)
	if action != "" {
		action = strings.ToUpper(action[:1]) + action[1:]
	}
	return fmt.Sprintf("# %s %s", action, subject)
}

// buildContext concatenates the selected document bodies, demoting every
// markdown heading by exactly one level so nested documents never collide
// with the prompt title.
func buildContext(docs []types.ContextDocument) string {
	if len(docs) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("## Context\n")
	for _, doc := range docs {
		body := strings.TrimSpace(doc.Body)
		if body == "" {
			continue
		}
		sb.WriteString("\n")
		sb.WriteString(demoteHeadings(body))
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// demoteHeadings adds one level to every #-run at the start of a line.
func demoteHeadings(body string) string {
	return headingRun.ReplaceAllString(body, "#$1")
}

// buildRequirements renders the task type's checklist under its display name.
func buildRequirements(match types.TaskTypeMatch) string {
	if len(match.Config.Requirements) == 0 {
		return ""
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "## Requirements: %s\n\n", match.Config.Name)
	for _, req := range match.Config.Requirements {
		fmt.Fprintf(&sb, "- %s\n", req)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// buildFileSuggestions renders the capped directory and file hints.
func buildFileSuggestions(s *types.FileSuggestions) string {
	if s == nil || (len(s.Directories) == 0 && len(s.Files) == 0) {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("## Relevant Files\n")

	dirs := s.Directories
	if len(dirs) > maxRenderDirs {
		dirs = dirs[:maxRenderDirs]
	}
	if len(dirs) > 0 {
		sb.WriteString("\nRelevant directories:\n")
		for _, d := range dirs {
			fmt.Fprintf(&sb, "- %s/\n", d)
		}
	}

	files := s.Files
	if len(files) > maxRenderFiles {
		files = files[:maxRenderFiles]
	}
	if len(files) > 0 {
		sb.WriteString("\nFiles to look for:\n")
		for _, f := range files {
			fmt.Fprintf(&sb, "- %s\n", f.Path)
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

// buildConstraints derives constraint lines from the intent's type
// categories, falling back to the generic list.
func buildConstraints(in *types.Intent) string {
	var lines []string
	seen := make(map[string]bool)
	for _, tc := range in.Types {
		for _, c := range typeConstraints[tc] {
			if !seen[c] {
				seen[c] = true
				lines = append(lines, c)
			}
		}
	}
	if len(lines) == 0 {
		lines = genericConstraints
	}

	var sb strings.Builder
	sb.WriteString("## Constraints\n\n")
	for _, l := range lines {
		fmt.Fprintf(&sb, "- %s\n", l)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// buildOutputExpectations is fixed boilerplate describing what a complete
// implementation includes, with a one-line addendum for the cursor target.
func buildOutputExpectations(target string) string {
	var sb strings.Builder
	sb.WriteString("## Expected Output\n\n")
	sb.WriteString("A complete implementation includes:\n")
	sb.WriteString("- Working code integrated with the existing structure\n")
	sb.WriteString("- Tests covering the change\n")
	sb.WriteString("- Notes on any follow-up work or trade-offs\n")
	if target == "cursor" {
		sb.WriteString("\nApply changes directly to the open workspace files.\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// buildTask carries the literal raw intent, always last and always present.
func buildTask(in *types.Intent) string {
	return "## Task\n\n" + in.Raw
}
