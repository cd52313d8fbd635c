// Package tasktype classifies intent text against a fixed catalog of task
// categories. Each category carries its own keyword patterns, file hints,
// requirement checklist, and context filtering rules.
package tasktype

import "github.com/saeedalam/promptforge/pkg/types"

// CatalogEntry pairs a category key with its static configuration.
type CatalogEntry struct {
	Key    string
	Config types.TaskTypeConfig
}

// Catalog is the fixed, ordered list of task categories. Order matters:
// when two categories score equally, the first one defined here wins.
// This tie-break is load-bearing — downstream requirement and context
// selection depend on category identity, so do not reorder.
var Catalog = []CatalogEntry{
	{
		Key: "seo",
		Config: types.TaskTypeConfig{
			Name:          "SEO Optimization",
			Patterns:      []string{"seo", "meta", "sitemap", "open graph", "og:", "robots", "canonical", "search engine"},
			RelevantDirs:  []string{"public", "seo", "meta", "head"},
			RelevantFiles: []string{"sitemap", "robots", "meta", "head", "layout"},
			Requirements: []string{
				"Include meta title and description tags",
				"Add Open Graph and Twitter card tags",
				"Keep the sitemap and robots.txt consistent with new routes",
				"Use semantic heading structure",
			},
			ExcludedContext: []string{"latest_commit"},
			ContextPriority: []string{"project", "conventions", "architecture"},
		},
	},
	{
		Key: "api",
		Config: types.TaskTypeConfig{
			Name:          "API Development",
			Patterns:      []string{"api", "endpoint", "route", "rest", "graphql", "webhook", "request", "response"},
			RelevantDirs:  []string{"api", "routes", "controllers", "handlers", "services"},
			RelevantFiles: []string{"router", "controller", "handler", "service", "middleware"},
			Requirements: []string{
				"Follow existing route naming conventions",
				"Validate request payloads before processing",
				"Return structured error responses with proper status codes",
				"Document the new endpoint",
			},
			ContextPriority: []string{"api", "architecture", "conventions"},
		},
	},
	{
		Key: "auth",
		Config: types.TaskTypeConfig{
			Name:          "Authentication",
			Patterns:      []string{"auth", "login", "signup", "session", "token", "password", "oauth", "permission", "two factor"},
			RelevantDirs:  []string{"auth", "middleware", "session", "security"},
			RelevantFiles: []string{"auth", "login", "session", "token", "guard"},
			Requirements: []string{
				"Never log or expose credentials",
				"Hash passwords with the project's configured algorithm",
				"Apply auth middleware consistently to protected routes",
				"Handle expired sessions gracefully",
			},
			ContextPriority: []string{"auth", "api", "architecture"},
		},
	},
	{
		Key: "ui",
		Config: types.TaskTypeConfig{
			Name:          "UI Development",
			Patterns:      []string{"button", "component", "form", "modal", "layout", "style", "css", "color", "responsive", "dark mode"},
			RelevantDirs:  []string{"components", "ui", "pages", "views", "styles"},
			RelevantFiles: []string{"component", "style", "theme", "layout", "view"},
			Requirements: []string{
				"Match the existing component structure and naming",
				"Use design-system tokens instead of hard-coded values",
				"Ensure keyboard accessibility and focus states",
				"Test across supported breakpoints",
			},
			ExcludedContext: []string{"history"},
			ContextPriority: []string{"conventions", "project", "architecture"},
		},
	},
	{
		Key: "database",
		Config: types.TaskTypeConfig{
			Name:          "Database",
			Patterns:      []string{"database", "migration", "query", "table", "schema", "index", "sql", "model"},
			RelevantDirs:  []string{"db", "models", "migrations", "repositories"},
			RelevantFiles: []string{"model", "migration", "repository", "schema"},
			Requirements: []string{
				"Write reversible migrations",
				"Index columns used in lookups",
				"Keep model definitions in sync with the schema",
				"Avoid N+1 query patterns",
			},
			ContextPriority: []string{"architecture", "project", "conventions"},
		},
	},
	{
		Key: "testing",
		Config: types.TaskTypeConfig{
			Name:          "Testing",
			Patterns:      []string{"test", "spec", "coverage", "mock", "unit test", "integration", "e2e"},
			RelevantDirs:  []string{"tests", "test", "spec", "__tests__"},
			RelevantFiles: []string{"test", "spec", "mock", "fixture"},
			Requirements: []string{
				"Cover both the happy path and failure modes",
				"Keep tests independent of execution order",
				"Use the project's existing test utilities",
				"Name tests after the behavior they verify",
			},
			ExcludedContext: []string{"history"},
			ContextPriority: []string{"conventions", "project"},
		},
	},
	{
		Key: "bugfix",
		Config: types.TaskTypeConfig{
			Name:          "Bug Fix",
			Patterns:      []string{"fix", "bug", "crash"},
			RelevantDirs:  []string{},
			RelevantFiles: []string{},
			Requirements: []string{
				"Identify root cause before fixing",
				"Add a regression test reproducing the bug",
				"Keep the fix minimal and scoped",
				"Check for the same defect elsewhere",
			},
			ContextPriority: []string{"history", "latest_commit", "architecture"},
		},
	},
	{
		Key: "performance",
		Config: types.TaskTypeConfig{
			Name:          "Performance",
			Patterns:      []string{"slow", "performance", "optimize", "cache", "lazy", "bundle", "memory", "speed"},
			RelevantDirs:  []string{"utils", "services", "workers"},
			RelevantFiles: []string{"cache", "worker", "config"},
			Requirements: []string{
				"Measure before and after the change",
				"Prefer algorithmic fixes over micro-optimizations",
				"Cache invalidation must be explicit",
				"Document any new performance budgets",
			},
			ContextPriority: []string{"architecture", "project"},
		},
	},
	{
		Key: "refactor",
		Config: types.TaskTypeConfig{
			Name:          "Refactoring",
			Patterns:      []string{"refactor", "cleanup", "clean up", "restructure", "extract", "simplify", "rename"},
			RelevantDirs:  []string{},
			RelevantFiles: []string{},
			Requirements: []string{
				"Preserve observable behavior",
				"Keep the change mechanical and reviewable",
				"Update all call sites and references",
				"Run the full test suite before and after",
			},
			ExcludedContext: []string{"latest_commit"},
			ContextPriority: []string{"architecture", "conventions", "project"},
		},
	},
	{
		Key: "deploy",
		Config: types.TaskTypeConfig{
			Name:          "Deployment",
			Patterns:      []string{"deploy", "docker", "pipeline", "release", "build", "ci", "environment"},
			RelevantDirs:  []string{".github", "deploy", "scripts", "docker"},
			RelevantFiles: []string{"dockerfile", "compose", "pipeline", "workflow", "makefile"},
			Requirements: []string{
				"Keep secrets out of build artifacts",
				"Make the pipeline reproducible",
				"Verify rollback works before shipping",
				"Pin dependency versions in build images",
			},
			ContextPriority: []string{"project", "architecture"},
		},
	},
}

// GeneralType is the fallback category when no catalog entry scores above
// the detection threshold.
const GeneralType = "general"

// GeneralConfig returns the empty-requirements configuration used for the
// general fallback.
func GeneralConfig() types.TaskTypeConfig {
	return types.TaskTypeConfig{Name: "General Task"}
}
