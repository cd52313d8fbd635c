package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/saeedalam/promptforge/pkg/types"
)

// LoadTemplates reads every JSON template under templates/ and resolves
// extends chains. A template whose parent is missing loads anyway with a
// warning; one declaring neither sections nor a parent also warns.
func (s *Store) LoadTemplates() (map[string]types.PromptTemplate, []string) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	templates := make(map[string]types.PromptTemplate)
	var warnings []string

	dir := filepath.Join(s.basePath, "templates")
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			warnings = append(warnings, fmt.Sprintf("failed to read templates directory: %v", err))
		}
		return templates, warnings
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".json")
		tmpl, err := readJSON[types.PromptTemplate](filepath.Join(dir, entry.Name()))
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("template %s: %v", name, err))
			continue
		}
		tmpl.Name = name
		templates[name] = *tmpl
	}

	resolved := make(map[string]types.PromptTemplate, len(templates))
	for _, name := range templateNames(templates) {
		merged, warns := resolveExtends(name, templates, nil)
		warnings = append(warnings, warns...)
		resolved[name] = merged
	}
	return resolved, warnings
}

// TemplateNames returns loaded template names in sorted order.
func TemplateNames(templates map[string]types.PromptTemplate) []string {
	return templateNames(templates)
}

func templateNames(templates map[string]types.PromptTemplate) []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// resolveExtends merges a template over its ancestor chain. The child wins
// on section and variable collisions. Cycles break with a warning.
func resolveExtends(name string, templates map[string]types.PromptTemplate, seen []string) (types.PromptTemplate, []string) {
	tmpl := templates[name]
	if tmpl.Extends == "" {
		var warnings []string
		if len(tmpl.Sections) == 0 {
			warnings = append(warnings, fmt.Sprintf("template %s: declares no sections and no parent", name))
		}
		return tmpl, warnings
	}

	for _, ancestor := range seen {
		if ancestor == tmpl.Extends {
			return tmpl, []string{fmt.Sprintf("template %s: extends cycle through %s", name, tmpl.Extends)}
		}
	}

	parent, ok := templates[tmpl.Extends]
	if !ok {
		warnings := []string{fmt.Sprintf("template %s: extends unknown template %q", name, tmpl.Extends)}
		if len(tmpl.Sections) == 0 {
			warnings = append(warnings, fmt.Sprintf("template %s: declares no sections and no parent", name))
		}
		return tmpl, warnings
	}

	base, warnings := resolveExtends(parent.Name, templates, append(seen, name))
	merged := types.PromptTemplate{
		Name:      tmpl.Name,
		Extends:   tmpl.Extends,
		Sections:  make(map[string]types.TemplateSection, len(base.Sections)+len(tmpl.Sections)),
		Variables: make(map[string]types.TemplateVariable, len(base.Variables)+len(tmpl.Variables)),
	}
	for k, v := range base.Sections {
		merged.Sections[k] = v
	}
	for k, v := range tmpl.Sections {
		merged.Sections[k] = v
	}
	for k, v := range base.Variables {
		merged.Variables[k] = v
	}
	for k, v := range tmpl.Variables {
		merged.Variables[k] = v
	}
	return merged, warnings
}
