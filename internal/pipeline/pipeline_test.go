package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/saeedalam/promptforge/internal/store"
	"github.com/saeedalam/promptforge/pkg/types"
)

func newWorkspace(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Init(t.TempDir())
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	return s
}

func TestGenerateEndToEnd(t *testing.T) {
	s := newWorkspace(t)

	prompt, err := Generate(s, GenerateRequest{
		Intent: "create a signup button with primary color",
		Format: types.FormatMarkdown,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if !strings.HasPrefix(prompt.Content, "# Create button") {
		t.Errorf("title = %q", firstLine(prompt.Content))
	}
	// Essential contexts from the starter workspace appear in order.
	if !strings.Contains(prompt.Content, "## Persona") {
		t.Error("persona context not included")
	}
	if !strings.Contains(prompt.Content, "## Task\n\ncreate a signup button with primary color") {
		t.Error("task section missing or altered")
	}
	if prompt.Metadata.TemplateUsed != "ui" {
		t.Errorf("template = %q, want ui (suggested by intent)", prompt.Metadata.TemplateUsed)
	}
	if prompt.Metadata.ID == "" || prompt.Metadata.GeneratedAt.IsZero() {
		t.Error("metadata missing id or timestamp")
	}
	// Timestamps never leak into the body.
	if strings.Contains(prompt.Content, prompt.Metadata.GeneratedAt.Format("2006")) {
		t.Error("timestamp leaked into prompt body")
	}
}

func TestGenerateEmptyIntent(t *testing.T) {
	s := newWorkspace(t)
	if _, err := Generate(s, GenerateRequest{Intent: "   "}); err == nil {
		t.Error("empty intent should fail")
	}
}

func TestGenerateSchemaResolution(t *testing.T) {
	s := newWorkspace(t)

	prompt, err := Generate(s, GenerateRequest{
		Intent: "update the button to use {{schema.colors.primary}}",
		Format: types.FormatMarkdown,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(prompt.Content, "#3B82F6") {
		t.Error("starter colors schema not resolved")
	}
	if len(prompt.Metadata.SchemasUsed) != 1 || prompt.Metadata.SchemasUsed[0] != "colors" {
		t.Errorf("SchemasUsed = %v", prompt.Metadata.SchemasUsed)
	}
}

func TestGenerateUnknownTemplateFallsBack(t *testing.T) {
	s := newWorkspace(t)

	prompt, err := Generate(s, GenerateRequest{
		Intent:   "fix the broken form validation",
		Template: "does-not-exist",
		Format:   types.FormatMarkdown,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	warned := false
	for _, w := range prompt.Warnings {
		if strings.Contains(w, "does-not-exist") {
			warned = true
		}
	}
	if !warned {
		t.Errorf("no fallback warning: %v", prompt.Warnings)
	}
	if prompt.Metadata.TemplateUsed == "does-not-exist" || prompt.Metadata.TemplateUsed == "" {
		t.Errorf("template fallback produced %q", prompt.Metadata.TemplateUsed)
	}
}

func TestGenerateForcedContextWarning(t *testing.T) {
	s := newWorkspace(t)

	prompt, err := Generate(s, GenerateRequest{
		Intent:        "document the deployment process",
		ForcedContext: []string{"nonexistent_doc"},
		Format:        types.FormatMarkdown,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	found := false
	for _, w := range prompt.Warnings {
		if strings.Contains(w, "nonexistent_doc") {
			found = true
		}
	}
	if !found {
		t.Errorf("forced missing context should warn: %v", prompt.Warnings)
	}
}

func TestGenerateVariableOverride(t *testing.T) {
	s := newWorkspace(t)

	prompt, err := Generate(s, GenerateRequest{
		Intent:    "create a modal component",
		Template:  "ui",
		Variables: map[string]string{"framework": "svelte"},
		Format:    types.FormatMarkdown,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(prompt.Content, "Target framework: svelte") {
		t.Error("variable override not applied")
	}
}

func TestGenerateDeterministicContent(t *testing.T) {
	s := newWorkspace(t)
	req := GenerateRequest{
		Intent: "refactor the database migration runner",
		Format: types.FormatMarkdown,
	}

	first, err := Generate(s, req)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for i := 0; i < 5; i++ {
		next, err := Generate(s, req)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if next.Content != first.Content {
			t.Fatalf("content differs between runs (iteration %d)", i)
		}
	}
}

func TestGenerateNoTemplatesNullPrompt(t *testing.T) {
	s := newWorkspace(t)
	entries, err := os.ReadDir(filepath.Join(s.BasePath(), "templates"))
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if err := os.Remove(filepath.Join(s.BasePath(), "templates", e.Name())); err != nil {
			t.Fatal(err)
		}
	}

	prompt, err := Generate(s, GenerateRequest{
		Intent: "create a button",
		Format: types.FormatMarkdown,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if prompt.Content != "" {
		t.Errorf("null prompt should have empty content, got %q", prompt.Content)
	}
	found := false
	for _, e := range prompt.Metadata.Errors {
		if strings.Contains(e, "no usable templates") {
			found = true
		}
	}
	if !found {
		t.Errorf("metadata errors = %v", prompt.Metadata.Errors)
	}
}

func TestGenerateJSONFormat(t *testing.T) {
	s := newWorkspace(t)

	prompt, err := Generate(s, GenerateRequest{
		Intent: "add an endpoint for user search",
		Format: types.FormatJSON,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.HasPrefix(strings.TrimSpace(prompt.Content), "{") {
		t.Errorf("json output = %q", firstLine(prompt.Content))
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
