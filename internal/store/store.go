// Package store reads and writes the .promptforge workspace: context
// documents, variable schemas, prompt templates, the config file and
// generated output. Individual documents fail in isolation; a malformed
// file produces a warning, never a pipeline abort.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"

	"github.com/saeedalam/promptforge/pkg/types"
)

// DirName is the workspace directory created by init.
const DirName = ".promptforge"

// Store handles all filesystem access under the workspace directory.
type Store struct {
	basePath string
	mu       sync.RWMutex
}

// New creates a store rooted at basePath (the .promptforge directory).
func New(basePath string) *Store {
	return &Store{basePath: basePath}
}

// Find walks up from startDir looking for a .promptforge directory.
func Find(startDir string) (*Store, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}
	for {
		candidate := filepath.Join(dir, DirName)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return New(candidate), nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, fmt.Errorf("no %s directory found (run 'promptforge init' first)", DirName)
		}
		dir = parent
	}
}

// BasePath returns the workspace directory.
func (s *Store) BasePath() string {
	return s.basePath
}

// ProjectRoot returns the directory containing the workspace.
func (s *Store) ProjectRoot() string {
	return filepath.Dir(s.basePath)
}

// --- Config ---

// GetConfig loads config.json, falling back to defaults when the file is
// missing, then applies PROMPTFORGE_* environment overrides. A .env file
// next to the workspace is loaded first if present.
func (s *Store) GetConfig() (*types.Config, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cfg := types.DefaultConfig()
	path := filepath.Join(s.basePath, "config.json")
	loaded, err := readJSON[types.Config](path)
	if err == nil {
		cfg = loaded
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	// Best effort; a missing .env is the normal case.
	_ = godotenv.Load(filepath.Join(s.ProjectRoot(), ".env"))
	applyEnvOverrides(cfg)

	return cfg, nil
}

// SaveConfig writes config.json.
func (s *Store) SaveConfig(cfg *types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return writeJSON(filepath.Join(s.basePath, "config.json"), cfg)
}

func applyEnvOverrides(cfg *types.Config) {
	if v := os.Getenv("PROMPTFORGE_MIN_RELEVANCE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.MinRelevance = f
		}
	}
	if v := os.Getenv("PROMPTFORGE_DETECTION_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.DetectionThreshold = f
		}
	}
	if v := os.Getenv("PROMPTFORGE_EXPAND_SYNONYMS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.ExpandSynonyms = b
		}
	}
	if v := os.Getenv("PROMPTFORGE_INCLUDE_LATEST_COMMIT"); v != "" {
		cfg.IncludeLatestCommit = types.InclusionMode(v)
	}
	if v := os.Getenv("PROMPTFORGE_INCLUDE_HISTORY"); v != "" {
		cfg.IncludeHistory = types.InclusionMode(v)
	}
}

// --- Output ---

// SavePrompt writes a generated prompt under out/, named by its ID.
func (s *Store) SavePrompt(prompt *types.GeneratedPrompt) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ext := "md"
	switch types.OutputFormat(prompt.Metadata.Format) {
	case types.FormatPlain:
		ext = "txt"
	case types.FormatJSON:
		ext = "json"
	}

	name := fmt.Sprintf("prompt-%s.%s", prompt.Metadata.ID, ext)
	path := filepath.Join(s.basePath, "out", name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(prompt.Content+"\n"), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// --- Init ---

// Init scaffolds the workspace directory with starter content. It refuses
// to overwrite an existing workspace.
func Init(projectRoot string) (*Store, error) {
	base := filepath.Join(projectRoot, DirName)
	if _, err := os.Stat(base); err == nil {
		return nil, fmt.Errorf("%s already exists", base)
	}

	for _, dir := range []string{"contexts", "schemas", "templates", "out"} {
		if err := os.MkdirAll(filepath.Join(base, dir), 0755); err != nil {
			return nil, err
		}
	}

	s := New(base)
	cfg := types.DefaultConfig()
	cfg.CreatedAt = time.Now()
	if err := s.SaveConfig(cfg); err != nil {
		return nil, err
	}
	if err := s.writeStarterFiles(); err != nil {
		return nil, err
	}
	return s, nil
}

// --- Internal helpers ---

func readJSON[T any](path string) (*T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var result T
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func writeJSON(path string, v any) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	// Trailing newline for clean git diffs
	data = append(data, '\n')

	// Atomic write: write to temp file then rename to prevent corruption
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}
