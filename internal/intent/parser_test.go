package intent

import (
	"testing"

	"github.com/saeedalam/promptforge/pkg/types"
)

func TestParseActions(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want types.Action
	}{
		{"explicit create", "create a new page", types.ActionCreate},
		{"add maps to create", "add a button", types.ActionCreate},
		{"update", "update the header layout", types.ActionUpdate},
		{"remove maps to delete", "remove the old banner", types.ActionDelete},
		{"fix", "fix the broken form", types.ActionFix},
		{"refactor", "refactor the session handler", types.ActionRefactor},
		{"document", "document the api routes", types.ActionDocument},
		{"no verb defaults to create", "a fancy page somehow", types.ActionCreate},
		{"empty defaults to create", "", types.ActionCreate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.raw)
			if got.Action != tt.want {
				t.Errorf("Parse(%q).Action = %s, want %s", tt.raw, got.Action, tt.want)
			}
		})
	}
}

func TestParseComponentsAndTypes(t *testing.T) {
	in := Parse("create a signup button with primary color")

	if len(in.Components) != 1 || in.Components[0] != "button" {
		t.Errorf("Components = %v, want [button]", in.Components)
	}
	if len(in.Types) != 1 || in.Types[0] != "ui" {
		t.Errorf("Types = %v, want [ui]", in.Types)
	}
}

func TestParseRepeatedComponentsKept(t *testing.T) {
	in := Parse("add a button next to the other button")
	count := 0
	for _, c := range in.Components {
		if c == "button" {
			count++
		}
	}
	if count != 2 {
		t.Errorf("expected 'button' twice, got %d in %v", count, in.Components)
	}
}

func TestParseSchemaReferences(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"palette phrasing", "use the primary color", "colors.primary"},
		{"theme phrasing", "apply the brand theme", "colors.brand"},
		{"dotted path", "read colors.accent from the schema", "colors.accent"},
		{"three segments", "use tokens.spacing.large here", "tokens.spacing.large"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := Parse(tt.raw)
			found := false
			for _, r := range in.SchemaReferences {
				if r == tt.want {
					found = true
				}
			}
			if !found {
				t.Errorf("Parse(%q).SchemaReferences = %v, want to contain %q", tt.raw, in.SchemaReferences, tt.want)
			}
		})
	}
}

func TestParseSchemaReferencesSkipDeterminers(t *testing.T) {
	in := Parse("pick a color for it")
	for _, r := range in.SchemaReferences {
		if r == "colors.a" || r == "colors.the" {
			t.Errorf("determiner leaked into schema reference: %v", in.SchemaReferences)
		}
	}
}

func TestParseContextHints(t *testing.T) {
	in := Parse("follow the project conventions for the api design")

	want := map[string]bool{"project": false, "conventions": false, "api": false}
	for _, h := range in.ContextHints {
		if _, ok := want[h]; ok {
			want[h] = true
		}
	}
	for name, seen := range want {
		if !seen {
			t.Errorf("ContextHints %v missing %q", in.ContextHints, name)
		}
	}
}

func TestParseRequirements(t *testing.T) {
	in := Parse("add a button and a modal")
	if len(in.Requirements) != 2 {
		t.Fatalf("expected 2 requirements, got %d: %v", len(in.Requirements), in.Requirements)
	}
	for _, r := range in.Requirements {
		if r.Type != "component" {
			t.Errorf("requirement type = %q, want component", r.Type)
		}
		if r.Action != types.ActionCreate {
			t.Errorf("requirement action = %s, want create", r.Action)
		}
	}

	generic := Parse("do something unusual here")
	if len(generic.Requirements) != 1 || generic.Requirements[0].Type != "generic" {
		t.Fatalf("expected single generic requirement, got %v", generic.Requirements)
	}
	if generic.Requirements[0].Description != "do something unusual here" {
		t.Errorf("generic requirement should carry raw text, got %q", generic.Requirements[0].Description)
	}
}

func TestParseSuggestedTemplates(t *testing.T) {
	in := Parse("add a button")
	if len(in.SuggestedTemplates) == 0 || in.SuggestedTemplates[0] != "base" {
		t.Fatalf("templates must start with base, got %v", in.SuggestedTemplates)
	}
	foundUI := false
	for _, name := range in.SuggestedTemplates {
		if name == "ui" {
			foundUI = true
		}
	}
	if !foundUI {
		t.Errorf("ui type should suggest the ui template, got %v", in.SuggestedTemplates)
	}
}

func TestParseConfidence(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{"empty input stays at base", "", 0.3},
		{"stopwords only", "the and with", 0.3},
		{"components and types", "add a button", 0.8},
		{"non-default action plus components", "fix the broken form", 1.0},
		{"non-default action only", "update something vague", 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := Parse(tt.raw)
			if in.Confidence != tt.want {
				t.Errorf("Parse(%q).Confidence = %.2f, want %.2f", tt.raw, in.Confidence, tt.want)
			}
			if in.Confidence < 0 || in.Confidence > 1 {
				t.Errorf("confidence %f out of [0,1]", in.Confidence)
			}
		})
	}
}

func TestParseEmptyIntent(t *testing.T) {
	in := Parse("")

	if in.Action != types.ActionCreate {
		t.Errorf("Action = %s, want create", in.Action)
	}
	if len(in.Components) != 0 {
		t.Errorf("Components should be empty, got %v", in.Components)
	}
	if len(in.Requirements) != 1 {
		t.Fatalf("expected one generic requirement, got %v", in.Requirements)
	}
	if in.Requirements[0].Description != "" {
		t.Errorf("generic description = %q, want empty", in.Requirements[0].Description)
	}
	if in.Confidence != 0.3 {
		t.Errorf("Confidence = %f, want 0.3", in.Confidence)
	}
}
