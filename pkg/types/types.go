package types

import "time"

// =============================================================================
// INTENT TYPES
// =============================================================================

// Action is the broad verb category detected from the raw intent text.
type Action string

const (
	ActionCreate   Action = "create"
	ActionUpdate   Action = "update"
	ActionDelete   Action = "delete"
	ActionFix      Action = "fix"
	ActionRefactor Action = "refactor"
	ActionDocument Action = "document"
	ActionTest     Action = "test"
)

// Intent is the structured interpretation of one free-text request.
// It is built once per invocation and never mutated afterwards.
type Intent struct {
	Raw                string        `json:"raw"`
	Action             Action        `json:"action"`
	Components         []string      `json:"components,omitempty"`
	Types              []string      `json:"types,omitempty"`
	Keywords           []string      `json:"keywords,omitempty"`
	SchemaReferences   []string      `json:"schema_references,omitempty"`
	ContextHints       []string      `json:"context_hints,omitempty"`
	Requirements       []Requirement `json:"requirements,omitempty"`
	SuggestedTemplates []string      `json:"suggested_templates,omitempty"`
	Confidence         float64       `json:"confidence"` // 0-1
}

// Requirement is one actionable item derived from the intent.
type Requirement struct {
	Type        string `json:"type"` // component, generic
	Action      Action `json:"action"`
	Component   string `json:"component,omitempty"`
	Description string `json:"description"`
}

// =============================================================================
// TASK TYPE TYPES
// =============================================================================

// TaskTypeConfig is the static definition of one task category.
type TaskTypeConfig struct {
	Name            string   `json:"name"` // display name
	Patterns        []string `json:"patterns"`
	RelevantDirs    []string `json:"relevant_dirs,omitempty"`
	RelevantFiles   []string `json:"relevant_files,omitempty"`
	Requirements    []string `json:"requirements,omitempty"`
	ExcludedContext []string `json:"excluded_context,omitempty"`
	ContextPriority []string `json:"context_priority,omitempty"`
}

// TaskTypeMatch is the result of classifying an intent against the catalog.
type TaskTypeMatch struct {
	Type       string         `json:"type"` // catalog key or "general"
	Confidence float64        `json:"confidence"`
	Config     TaskTypeConfig `json:"config"`
}

// =============================================================================
// DOCUMENT TYPES
// =============================================================================

// ContextMetadata is the optional frontmatter of a context document.
type ContextMetadata struct {
	Type     string   `json:"type,omitempty" yaml:"type"`
	Priority string   `json:"priority,omitempty" yaml:"priority"` // high, medium, low
	Tags     []string `json:"tags,omitempty" yaml:"tags"`
}

// ContextDocument is one loaded context file, read-only for the whole run.
type ContextDocument struct {
	Name     string          `json:"name"`
	Metadata ContextMetadata `json:"metadata"`
	Body     string          `json:"body"`
}

// SchemaVariable is the normalized form of a variable definition. A variable
// in a schema file is either a bare literal or a mapping carrying at least
// "value"; Literal records which form it came from.
type SchemaVariable struct {
	Literal     bool        `json:"literal"`
	Value       interface{} `json:"value"`
	Type        string      `json:"type,omitempty"`
	Description string      `json:"description,omitempty"`
}

// SchemaDocument is one loaded variable-definition file.
type SchemaDocument struct {
	Name      string                    `json:"name"`
	Variables map[string]SchemaVariable `json:"variables"`
	Raw       map[string]interface{}    `json:"raw,omitempty"` // full document, for non-variable fields
}

// TemplateSection is one named section of a prompt template.
type TemplateSection struct {
	Template    string `json:"template,omitempty"` // text with {{placeholders}}
	Content     string `json:"content,omitempty"`  // literal text
	Priority    int    `json:"priority"`
	Conditional bool   `json:"conditional,omitempty"`
}

// TemplateVariable declares a placeholder a template expects.
type TemplateVariable struct {
	Default string   `json:"default,omitempty"`
	Enum    []string `json:"enum,omitempty"`
	Usage   string   `json:"usage,omitempty"`
}

// PromptTemplate is a JSON template descriptor. A template must declare
// Sections or Extends; a dangling Extends is a warning, not fatal.
type PromptTemplate struct {
	Name      string                      `json:"name"`
	Extends   string                      `json:"extends,omitempty"`
	Variables map[string]TemplateVariable `json:"variables,omitempty"`
	Sections  map[string]TemplateSection  `json:"sections,omitempty"`
}

// =============================================================================
// SELECTION & SUGGESTION TYPES
// =============================================================================

// InclusionMode controls whether a special context document is included.
type InclusionMode string

const (
	IncludeAlways InclusionMode = "always"
	IncludeAuto   InclusionMode = "auto"
	IncludeNever  InclusionMode = "never"
)

// SelectedContext is one chosen document with the score that ordered it.
type SelectedContext struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// FileSuggestion is one recommended file, scored by content relevance.
type FileSuggestion struct {
	Path  string  `json:"path"`
	Score float64 `json:"score"`
}

// FileSuggestions groups directory and file recommendations for a task type.
type FileSuggestions struct {
	Directories []string         `json:"directories,omitempty"`
	Files       []FileSuggestion `json:"files,omitempty"`
}

// =============================================================================
// OUTPUT TYPES
// =============================================================================

// OutputFormat selects the final encoding of the assembled prompt.
type OutputFormat string

const (
	FormatMarkdown OutputFormat = "markdown"
	FormatPlain    OutputFormat = "plain"
	FormatJSON     OutputFormat = "json"
)

// PromptMetadata describes how a prompt was generated. Timestamps live here,
// never in the assembled body.
type PromptMetadata struct {
	ID           string    `json:"id"`
	TemplateUsed string    `json:"template_used"`
	Target       string    `json:"target"`
	Format       string    `json:"format"`
	Intent       string    `json:"intent"`
	TaskType     string    `json:"task_type,omitempty"`
	ContextUsed  []string  `json:"context_used,omitempty"`
	SchemasUsed  []string  `json:"schemas_used,omitempty"`
	Errors       []string  `json:"errors,omitempty"`
	GeneratedAt  time.Time `json:"generated_at"`
}

// GeneratedPrompt is the final artifact, produced once and never mutated.
type GeneratedPrompt struct {
	Content  string         `json:"content"`
	Metadata PromptMetadata `json:"metadata"`
	Warnings []string       `json:"warnings,omitempty"`
}

// =============================================================================
// CONFIG TYPES
// =============================================================================

// Config holds the recognized pipeline options.
type Config struct {
	Name                string        `json:"name,omitempty"`
	Version             string        `json:"version,omitempty"`
	MinRelevance        float64       `json:"min_relevance"`
	EssentialContext    []string      `json:"essential_context"`
	IncludeLatestCommit InclusionMode `json:"include_latest_commit"`
	IncludeHistory      InclusionMode `json:"include_history"`
	ExpandSynonyms      bool          `json:"expand_synonyms"`
	DetectionThreshold  float64       `json:"detection_threshold"`
	CreatedAt           time.Time     `json:"created_at,omitempty"`
}

// DefaultConfig returns the documented option defaults.
func DefaultConfig() *Config {
	return &Config{
		MinRelevance:        0.3,
		EssentialContext:    []string{"persona", "standards", "project"},
		IncludeLatestCommit: IncludeAuto,
		IncludeHistory:      IncludeAuto,
		ExpandSynonyms:      true,
		DetectionThreshold:  0.5,
	}
}
