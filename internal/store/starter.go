package store

import (
	"os"
	"path/filepath"

	"github.com/saeedalam/promptforge/pkg/types"
)

// Starter content written by Init so generate works out of the box.

var starterContexts = map[string]string{
	"persona": `---
type: persona
priority: high
---
# Persona

You are a senior engineer on this project. You write clear, well-tested
code and explain trade-offs when they matter.
`,
	"standards": `---
type: standards
priority: high
---
# Coding Standards

## General

- Prefer small, focused changes
- Every change ships with tests
- Follow the naming conventions already in the codebase
`,
	"project": `---
type: project
priority: high
---
# Project

Describe your project here: what it does, the main technologies, and how
the repository is laid out. This document is included in every prompt.
`,
	"project_structure": `---
type: structure
priority: medium
---
# Project Structure

Describe the directory layout here so generated prompts can point at the
right places.
`,
}

var starterTemplates = map[string]types.PromptTemplate{
	"base": {
		Sections: map[string]types.TemplateSection{
			"scope": {Content: "Stay within the scope of the task. Call out anything that needs a separate change.", Priority: 90},
		},
	},
	"ui": {
		Extends: "base",
		Variables: map[string]types.TemplateVariable{
			"framework": {Default: "react", Usage: "UI framework the generated code should target"},
		},
		Sections: map[string]types.TemplateSection{
			"stack": {Template: "Target framework: {{framework}}", Priority: 55},
		},
	},
	"api": {
		Extends: "base",
		Sections: map[string]types.TemplateSection{
			"conventions": {Content: "Match the request/response shapes of the existing endpoints.", Priority: 55},
		},
	},
	"workflow": {
		Extends: "base",
		Sections: map[string]types.TemplateSection{
			"flow": {Content: "Describe each step of the flow and the state it depends on.", Priority: 55},
		},
	},
}

const starterSchema = `{
  "primary": "#3B82F6",
  "secondary": "#64748B",
  "accent": {
    "value": "#F59E0B",
    "type": "color",
    "description": "Used sparingly for calls to action"
  }
}
`

func (s *Store) writeStarterFiles() error {
	for name, body := range starterContexts {
		path := filepath.Join(s.basePath, "contexts", name+".md")
		if err := os.WriteFile(path, []byte(body), 0644); err != nil {
			return err
		}
	}
	for name, tmpl := range starterTemplates {
		if err := writeJSON(filepath.Join(s.basePath, "templates", name+".json"), tmpl); err != nil {
			return err
		}
	}
	return os.WriteFile(filepath.Join(s.basePath, "schemas", "colors.json"), []byte(starterSchema), 0644)
}
