package store

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/saeedalam/promptforge/pkg/types"
)

// LoadContexts reads every markdown document under contexts/. A document
// that fails to parse is skipped with a warning; the rest still load.
// Results are sorted by name for stable iteration.
func (s *Store) LoadContexts() (map[string]types.ContextDocument, []string) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := make(map[string]types.ContextDocument)
	var warnings []string

	dir := filepath.Join(s.basePath, "contexts")
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			warnings = append(warnings, fmt.Sprintf("failed to read contexts directory: %v", err))
		}
		return docs, warnings
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".md")
		doc, err := loadContextFile(filepath.Join(dir, entry.Name()), name)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("context %s: %v", name, err))
			continue
		}
		if doc.Body == "" {
			warnings = append(warnings, fmt.Sprintf("context %s: document is empty", name))
		}
		docs[name] = doc
	}
	return docs, warnings
}

// ContextNames returns the loaded document names in sorted order.
func ContextNames(docs map[string]types.ContextDocument) []string {
	names := make([]string, 0, len(docs))
	for name := range docs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// loadContextFile parses an optional YAML frontmatter block delimited by
// "---" lines, then treats the remainder as the document body.
func loadContextFile(path, name string) (types.ContextDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.ContextDocument{}, err
	}

	doc := types.ContextDocument{Name: name}
	front, body, hasFront := splitFrontmatter(string(data))
	if hasFront {
		if err := yaml.Unmarshal([]byte(front), &doc.Metadata); err != nil {
			return types.ContextDocument{}, fmt.Errorf("invalid frontmatter: %w", err)
		}
	}
	doc.Body = strings.TrimSpace(body)
	return doc, nil
}

// splitFrontmatter separates a leading "---" fenced block from the body.
// A document without a closing fence is treated as having no frontmatter.
func splitFrontmatter(content string) (front, body string, ok bool) {
	scanner := bufio.NewScanner(strings.NewReader(content))
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)

	if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != "---" {
		return "", content, false
	}

	var frontLines []string
	closed := false
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "---" {
			closed = true
			break
		}
		frontLines = append(frontLines, line)
	}
	if !closed {
		return "", content, false
	}

	var bodyLines []string
	for scanner.Scan() {
		bodyLines = append(bodyLines, scanner.Text())
	}
	return strings.Join(frontLines, "\n"), strings.Join(bodyLines, "\n"), true
}
