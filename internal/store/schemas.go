package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/saeedalam/promptforge/pkg/types"
)

// LoadSchemas reads every JSON and YAML schema under schemas/. A malformed
// file is skipped with a warning. A document with a top-level "variables"
// mapping takes its variables from there; otherwise every top-level key is a
// variable (flat form). Variables are normalized: a bare scalar becomes a
// literal, a mapping must carry "value" or at least "type" to be
// addressable; anything else stays reachable only through Raw.
func (s *Store) LoadSchemas() (map[string]types.SchemaDocument, []string) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	schemas := make(map[string]types.SchemaDocument)
	var warnings []string

	dir := filepath.Join(s.basePath, "schemas")
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			warnings = append(warnings, fmt.Sprintf("failed to read schemas directory: %v", err))
		}
		return schemas, warnings
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".json" && ext != ".yaml" && ext != ".yml" {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))

		raw, err := loadSchemaFile(filepath.Join(dir, entry.Name()), ext)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("schema %s: %v", name, err))
			continue
		}

		doc := types.SchemaDocument{
			Name:      name,
			Variables: make(map[string]types.SchemaVariable),
			Raw:       raw,
		}
		for key, value := range variableEntries(raw) {
			variable, warn := normalizeVariable(value)
			if warn != "" {
				warnings = append(warnings, fmt.Sprintf("schema %s: variable %q %s", name, key, warn))
				continue
			}
			doc.Variables[key] = variable
		}
		schemas[name] = doc
	}
	return schemas, warnings
}

// variableEntries picks the mapping that holds the document's variables:
// the wrapped form keeps them under a top-level "variables" key with other
// top-level fields alongside; the flat form is the whole document.
func variableEntries(raw map[string]interface{}) map[string]interface{} {
	if wrapped, ok := raw["variables"].(map[string]interface{}); ok {
		return wrapped
	}
	return raw
}

func loadSchemaFile(path, ext string) (map[string]interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	raw := make(map[string]interface{})
	if ext == ".json" {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
		return raw, nil
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	return normalizeYAML(raw), nil
}

// normalizeVariable converts one raw entry into its canonical form.
func normalizeVariable(value interface{}) (types.SchemaVariable, string) {
	m, isMap := value.(map[string]interface{})
	if !isMap {
		return types.SchemaVariable{Literal: true, Value: value}, ""
	}

	variable := types.SchemaVariable{}
	if t, ok := m["type"].(string); ok {
		variable.Type = t
	}
	if d, ok := m["description"].(string); ok {
		variable.Description = d
	}
	inner, hasValue := m["value"]
	if hasValue {
		variable.Value = inner
		return variable, ""
	}
	if variable.Type != "" {
		// Typed but valueless; addressable for nested lookups.
		variable.Value = m
		return variable, ""
	}
	if len(m) > 0 {
		// Plain nested mapping, treat the whole map as the value.
		variable.Value = m
		return variable, ""
	}
	return types.SchemaVariable{}, "has neither a value nor a type"
}

// normalizeYAML rewrites yaml.v3's map[interface{}]interface{} nesting into
// string-keyed maps so JSON and YAML schemas resolve identically.
func normalizeYAML(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = normalizeYAMLValue(v)
	}
	return out
}

func normalizeYAMLValue(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		return normalizeYAML(val)
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, inner := range val {
			out[fmt.Sprintf("%v", k)] = normalizeYAMLValue(inner)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, inner := range val {
			out[i] = normalizeYAMLValue(inner)
		}
		return out
	default:
		return v
	}
}
