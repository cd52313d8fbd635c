package intent

import "github.com/saeedalam/promptforge/pkg/types"

// actionEntry pairs an action with the verbs that signal it. The table is a
// slice, not a map: detection scans entries in this order and the first
// entry with a matching verb wins.
type actionEntry struct {
	Action types.Action
	Verbs  []string
}

var actionTable = []actionEntry{
	{types.ActionCreate, []string{"create", "add", "build", "implement", "new", "generate", "write", "setup"}},
	{types.ActionUpdate, []string{"update", "change", "modify", "edit", "improve", "enhance", "extend", "adjust"}},
	{types.ActionDelete, []string{"delete", "remove", "drop"}},
	{types.ActionFix, []string{"fix", "repair", "resolve", "debug", "patch"}},
	{types.ActionRefactor, []string{"refactor", "restructure", "reorganize", "simplify", "extract"}},
	{types.ActionDocument, []string{"document", "describe", "explain", "annotate"}},
	{types.ActionTest, []string{"test", "verify", "cover"}},
}

// componentEntry maps a type category to the component nouns that imply it.
// Like the action table, iteration order is fixed.
type componentEntry struct {
	Type  string
	Nouns []string
}

var componentTable = []componentEntry{
	{"ui", []string{"button", "form", "modal", "page", "component", "header", "footer", "navbar", "menu", "card", "input", "layout", "banner"}},
	{"api", []string{"endpoint", "route", "webhook", "handler", "middleware", "controller"}},
	{"data", []string{"model", "database", "migration", "query", "table", "index"}},
	{"auth", []string{"session", "password", "token", "permission", "role", "account"}},
	{"workflow", []string{"pipeline", "job", "queue", "cron", "workflow", "scheduler"}},
}

// contextKeywords maps vocabulary to the context document it hints at.
var contextKeywords = map[string][]string{
	"project":      {"project", "overview", "readme", "goal"},
	"architecture": {"architecture", "structure", "design", "module"},
	"conventions":  {"convention", "conventions", "standard", "standards", "lint"},
	"api":          {"api", "endpoint", "rest", "graphql"},
	"auth":         {"auth", "login", "signup", "security", "session"},
}

// contextOrder fixes the iteration order over contextKeywords so hint
// extraction stays deterministic.
var contextOrder = []string{"project", "architecture", "conventions", "api", "auth"}

// typeTemplates maps a detected type category to a suggested template name.
var typeTemplates = map[string]string{
	"ui":       "ui",
	"api":      "api",
	"data":     "api",
	"auth":     "workflow",
	"workflow": "workflow",
}

// determiners are filler words never treated as the subject of a
// "<word> color/palette/theme" schema reference.
var determiners = map[string]bool{
	"the": true, "a": true, "an": true, "my": true, "our": true,
	"your": true, "with": true, "its": true, "this": true, "that": true,
	"some": true, "any": true, "new": true,
}
