package selector

import (
	"testing"

	"github.com/saeedalam/promptforge/internal/intent"
	"github.com/saeedalam/promptforge/internal/tasktype"
	"github.com/saeedalam/promptforge/pkg/types"
)

func docs(names ...string) map[string]types.ContextDocument {
	m := make(map[string]types.ContextDocument, len(names))
	for _, n := range names {
		m[n] = types.ContextDocument{Name: n, Body: "# " + n + "\n\ngeneric notes about " + n}
	}
	return m
}

func TestEssentialFirstOrdering(t *testing.T) {
	cfg := types.DefaultConfig()
	cfg.EssentialContext = []string{"persona", "standards"}

	available := docs("standards", "persona", "architecture", "conventions", "project")
	// Give the extras bodies that score against the intent keywords.
	available["architecture"] = types.ContextDocument{Name: "architecture", Body: "button components and layout structure"}
	available["conventions"] = types.ContextDocument{Name: "conventions", Body: "button naming conventions"}

	in := intent.Parse("add a button with the standard layout")
	match := tasktype.Classify(in.Raw, cfg.DetectionThreshold)

	res := Select(in, match, available, cfg, nil)
	names := res.Names()

	if len(names) < 2 {
		t.Fatalf("expected at least the essentials, got %v", names)
	}
	if names[0] != "persona" || names[1] != "standards" {
		t.Errorf("essentials must lead in configured order, got %v", names)
	}
}

func TestEssentialMissingIsSkipped(t *testing.T) {
	cfg := types.DefaultConfig()
	cfg.EssentialContext = []string{"persona", "standards", "project"}

	available := docs("standards")
	in := intent.Parse("add a button")
	match := tasktype.Classify(in.Raw, cfg.DetectionThreshold)

	res := Select(in, match, available, cfg, nil)
	names := res.Names()
	if len(names) != 1 || names[0] != "standards" {
		t.Errorf("only present essentials should be included, got %v", names)
	}
}

func TestForcedMissingWarns(t *testing.T) {
	cfg := types.DefaultConfig()
	available := docs("persona")
	in := intent.Parse("add a button")
	match := tasktype.Classify(in.Raw, cfg.DetectionThreshold)

	res := Select(in, match, available, cfg, []string{"ghost"})
	if len(res.Warnings) != 1 {
		t.Fatalf("expected one warning for missing forced doc, got %v", res.Warnings)
	}
	for _, n := range res.Names() {
		if n == "ghost" {
			t.Error("missing document must not appear in selection")
		}
	}
}

func TestProjectStructureIncluded(t *testing.T) {
	cfg := types.DefaultConfig()
	available := docs("persona", "project_structure")
	in := intent.Parse("add a button")
	match := tasktype.Classify(in.Raw, cfg.DetectionThreshold)

	res := Select(in, match, available, cfg, nil)
	found := false
	for _, s := range res.Selected {
		if s.Name == "project_structure" {
			found = true
			if s.Score != structureScore {
				t.Errorf("project_structure score = %f, want %f", s.Score, structureScore)
			}
		}
	}
	if !found {
		t.Errorf("project_structure should be included, got %v", res.Names())
	}
}

func TestBugfixForcesHistory(t *testing.T) {
	cfg := types.DefaultConfig()
	cfg.IncludeHistory = types.IncludeAuto

	available := docs("persona")
	// A history document with no overlap with the intent keywords at all.
	available["history"] = types.ContextDocument{Name: "history", Body: "totally unrelated commit notes"}

	in := intent.Parse("fix the checkout bug")
	match := tasktype.Classify(in.Raw, cfg.DetectionThreshold)
	if match.Type != "bugfix" {
		t.Fatalf("precondition: expected bugfix classification, got %s", match.Type)
	}

	res := Select(in, match, available, cfg, nil)
	found := false
	for _, s := range res.Selected {
		if s.Name == "history" {
			found = true
			if s.Score != bugfixScore {
				t.Errorf("bugfix history score = %f, want %f", s.Score, bugfixScore)
			}
		}
	}
	if !found {
		t.Errorf("bugfix must force history inclusion, got %v", res.Names())
	}
}

func TestHistoryNeverMode(t *testing.T) {
	cfg := types.DefaultConfig()
	cfg.IncludeHistory = types.IncludeNever

	available := docs("history")
	in := intent.Parse("fix the checkout bug")
	match := tasktype.Classify(in.Raw, cfg.DetectionThreshold)

	res := Select(in, match, available, cfg, nil)
	for _, n := range res.Names() {
		if n == "history" {
			t.Error("never mode must exclude history even for bugfix")
		}
	}
}

func TestHistoryAlwaysMode(t *testing.T) {
	cfg := types.DefaultConfig()
	cfg.IncludeHistory = types.IncludeAlways

	available := docs("history")
	in := intent.Parse("add a button")
	match := tasktype.Classify(in.Raw, cfg.DetectionThreshold)

	res := Select(in, match, available, cfg, nil)
	found := false
	for _, s := range res.Selected {
		if s.Name == "history" && s.Score == alwaysScore {
			found = true
		}
	}
	if !found {
		t.Errorf("always mode must include history at %f, got %v", alwaysScore, res.Selected)
	}
}

func TestHistoryAutoRelevance(t *testing.T) {
	cfg := types.DefaultConfig()

	available := docs("persona")
	available["history"] = types.ContextDocument{
		Name: "history",
		Body: "recent commits touched the login form and session validation",
	}

	in := intent.Parse("update the login form validation")
	match := tasktype.Classify(in.Raw, cfg.DetectionThreshold)

	res := Select(in, match, available, cfg, nil)
	found := false
	for _, n := range res.Names() {
		if n == "history" {
			found = true
		}
	}
	if !found {
		t.Errorf("relevant history should pass the relaxed auto threshold, got %v", res.Names())
	}
}

func TestExcludedContextSkipped(t *testing.T) {
	cfg := types.DefaultConfig()

	available := docs("persona")
	// A document whose body would otherwise score highly.
	available["history"] = types.ContextDocument{Name: "history", Body: "button styles and component layout"}

	in := intent.Parse("add a button component with the new style")
	match := tasktype.Classify(in.Raw, cfg.DetectionThreshold)
	if match.Type != "ui" {
		t.Fatalf("precondition: expected ui classification, got %s", match.Type)
	}

	// The ui category excludes history.
	res := Select(in, match, available, cfg, nil)
	for _, n := range res.Names() {
		if n == "history" {
			t.Error("ui task type must exclude history in auto mode")
		}
	}
}

func TestOrderingByScoreIsStable(t *testing.T) {
	cfg := types.DefaultConfig()
	cfg.EssentialContext = []string{"persona"}

	available := docs("persona")
	available["alpha"] = types.ContextDocument{Name: "alpha", Body: "button button button"}
	available["beta"] = types.ContextDocument{Name: "beta", Body: "button button button"}

	in := intent.Parse("add a button")
	match := tasktype.Classify(in.Raw, cfg.DetectionThreshold)

	first := Select(in, match, available, cfg, nil)
	second := Select(in, match, available, cfg, nil)

	if len(first.Selected) != len(second.Selected) {
		t.Fatalf("selection size differs between runs")
	}
	for i := range first.Selected {
		if first.Selected[i] != second.Selected[i] {
			t.Errorf("selection not reproducible at %d: %v vs %v", i, first.Selected[i], second.Selected[i])
		}
	}
	if first.Names()[0] != "persona" {
		t.Errorf("essential must stay first, got %v", first.Names())
	}
}
