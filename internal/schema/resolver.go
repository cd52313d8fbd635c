// Package schema resolves dotted variable references against loaded schema
// documents and substitutes {{schema.path}} placeholders in template text.
// Resolution failures are never fatal: placeholders stay verbatim and the
// unresolved paths are reported for warning display.
package schema

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/saeedalam/promptforge/pkg/types"
)

var placeholder = regexp.MustCompile(`\{\{schema\.([a-zA-Z0-9_][a-zA-Z0-9_.\-]*)\}\}`)

// Resolve looks up a dotted path like "colors.primary" or
// "tokens.spacing.large". The first segment names the schema; the rest walk
// its variables mapping, falling back to the raw top-level document for
// non-variable fields such as palettes. The second return is false when the
// path cannot be resolved.
func Resolve(path string, schemas map[string]types.SchemaDocument) (interface{}, bool) {
	segments := strings.Split(path, ".")
	if len(segments) < 2 {
		return nil, false
	}

	doc, ok := schemas[segments[0]]
	if !ok {
		return nil, false
	}
	rest := segments[1:]

	if v, ok := resolveVariables(doc.Variables, rest); ok {
		return v, true
	}
	return walkMap(doc.Raw, rest)
}

// resolveVariables walks the normalized variables mapping. The first segment
// selects a variable; any remaining segments descend into its value.
func resolveVariables(vars map[string]types.SchemaVariable, segments []string) (interface{}, bool) {
	v, ok := vars[segments[0]]
	if !ok {
		return nil, false
	}
	if len(segments) == 1 {
		return unwrap(v.Value), true
	}
	nested, ok := v.Value.(map[string]interface{})
	if !ok {
		return nil, false
	}
	return walkMap(nested, segments[1:])
}

// walkMap descends a generic document tree segment by segment.
func walkMap(m map[string]interface{}, segments []string) (interface{}, bool) {
	var current interface{} = m
	for _, seg := range segments {
		obj, ok := current.(map[string]interface{})
		if !ok {
			return nil, false
		}
		current, ok = obj[seg]
		if !ok {
			return nil, false
		}
	}
	return unwrap(current), true
}

// unwrap extracts the effective value when resolution lands on a record
// carrying a "value" key; anything else passes through as-is.
func unwrap(v interface{}) interface{} {
	if obj, ok := v.(map[string]interface{}); ok {
		if inner, ok := obj["value"]; ok {
			return inner
		}
	}
	return v
}

// Stringify renders a resolved value for substitution into prompt text.
func Stringify(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", val)
	}
}

// ResolveAll substitutes every {{schema.<path>}} placeholder in the text.
// Placeholders that fail to resolve are left untouched and their paths (sans
// the "schema." prefix) returned in first-occurrence order.
func ResolveAll(text string, schemas map[string]types.SchemaDocument) (string, []string) {
	var unresolved []string
	seen := make(map[string]bool)

	result := placeholder.ReplaceAllStringFunc(text, func(match string) string {
		path := placeholder.FindStringSubmatch(match)[1]
		if v, ok := Resolve(path, schemas); ok {
			return Stringify(v)
		}
		if !seen[path] {
			seen[path] = true
			unresolved = append(unresolved, path)
		}
		return match
	})

	return result, unresolved
}

// UsedSchemas reports which schema names the text's placeholders resolve
// against, in first-occurrence order.
func UsedSchemas(text string, schemas map[string]types.SchemaDocument) []string {
	var used []string
	seen := make(map[string]bool)
	for _, m := range placeholder.FindAllStringSubmatch(text, -1) {
		name := strings.SplitN(m[1], ".", 2)[0]
		if seen[name] {
			continue
		}
		if _, ok := schemas[name]; ok {
			seen[name] = true
			used = append(used, name)
		}
	}
	return used
}
