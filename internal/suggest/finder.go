// Package suggest recommends project files and directories related to a
// classified task type. The walk is bounded by depth and result limits, and
// unreadable entries are skipped instead of failing the run.
package suggest

import (
	"bufio"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"

	"github.com/saeedalam/promptforge/internal/relevance"
	"github.com/saeedalam/promptforge/pkg/types"
)

// Walk bounds. Directories beyond maxDirDepth and files beyond maxFileDepth
// are never considered, regardless of how large the tree is.
const (
	maxDirDepth  = 3
	maxFileDepth = 4
	contentPeek  = 1000 // bytes of file content scored for relevance
	baseScore    = 0.5  // file score when no keywords were supplied
)

// Default result caps.
const (
	DefaultMaxDirs  = 5
	DefaultMaxFiles = 10
)

// ignoredDirs are never descended into.
var ignoredDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"vendor":       true,
	"dist":         true,
	"build":        true,
	"target":       true,
	"coverage":     true,
	".promptforge": true,
	".next":        true,
	"__pycache__":  true,
}

// skippedSuffixes mark generated or minified files that are never useful
// prompt context.
var skippedSuffixes = []string{".min.js", ".min.css", ".map", ".lock", ".sum"}

// Limits caps the result sizes; zero values fall back to the defaults.
type Limits struct {
	MaxDirs  int
	MaxFiles int
}

func (l Limits) withDefaults() Limits {
	if l.MaxDirs <= 0 {
		l.MaxDirs = DefaultMaxDirs
	}
	if l.MaxFiles <= 0 {
		l.MaxFiles = DefaultMaxFiles
	}
	return l
}

// Suggest walks projectRoot for directories and files matching the task
// type's name fragments. Files are scored against the keywords via the
// relevance scorer; results come back sorted by descending score and
// truncated to the limits.
func Suggest(cfg types.TaskTypeConfig, projectRoot string, keywords []string, limits Limits) types.FileSuggestions {
	limits = limits.withDefaults()

	if len(cfg.RelevantDirs) == 0 && len(cfg.RelevantFiles) == 0 {
		return types.FileSuggestions{}
	}

	rules := loadIgnoreRules(projectRoot)

	var dirs []string
	var files []types.FileSuggestion

	filepath.WalkDir(projectRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable entries are skipped, never fatal
		}
		rel, relErr := filepath.Rel(projectRoot, path)
		if relErr != nil || rel == "." {
			return nil
		}
		depth := strings.Count(rel, string(os.PathSeparator)) + 1

		if d.IsDir() {
			if ignoredDirs[d.Name()] || (rules != nil && rules.MatchesPath(rel+"/")) {
				return filepath.SkipDir
			}
			if depth > maxDirDepth {
				return filepath.SkipDir
			}
			if matchesFragment(d.Name(), rel, cfg.RelevantDirs) {
				dirs = append(dirs, rel)
			}
			return nil
		}

		if depth > maxFileDepth {
			return nil
		}
		if rules != nil && rules.MatchesPath(rel) {
			return nil
		}
		if isSkippedFile(d.Name()) {
			return nil
		}
		if !matchesFragment(d.Name(), "", cfg.RelevantFiles) {
			return nil
		}
		files = append(files, types.FileSuggestion{
			Path:  rel,
			Score: scoreFile(path, keywords),
		})
		return nil
	})

	sort.SliceStable(files, func(i, j int) bool { return files[i].Score > files[j].Score })
	if len(dirs) > limits.MaxDirs {
		dirs = dirs[:limits.MaxDirs]
	}
	if len(files) > limits.MaxFiles {
		files = files[:limits.MaxFiles]
	}

	return types.FileSuggestions{Directories: dirs, Files: files}
}

// loadIgnoreRules compiles the project's .gitignore when present.
func loadIgnoreRules(projectRoot string) *ignore.GitIgnore {
	file, err := os.Open(filepath.Join(projectRoot, ".gitignore"))
	if err != nil {
		return nil
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if len(lines) == 0 {
		return nil
	}
	return ignore.CompileIgnoreLines(lines...)
}

// matchesFragment reports whether the name or relative path contains any of
// the fragments, case-insensitively.
func matchesFragment(name, rel string, fragments []string) bool {
	lowerName := strings.ToLower(name)
	lowerRel := strings.ToLower(rel)
	for _, f := range fragments {
		frag := strings.ToLower(f)
		if strings.Contains(lowerName, frag) || (rel != "" && strings.Contains(lowerRel, frag)) {
			return true
		}
	}
	return false
}

func isSkippedFile(name string) bool {
	lower := strings.ToLower(name)
	for _, suffix := range skippedSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return lower == "package-lock.json" || lower == "yarn.lock"
}

// scoreFile rates the first portion of the file's content against the
// keywords. Without keywords every qualifying file gets the base score.
func scoreFile(path string, keywords []string) float64 {
	if len(keywords) == 0 {
		return baseScore
	}
	f, err := os.Open(path)
	if err != nil {
		return 0
	}
	defer f.Close()

	buf := make([]byte, contentPeek)
	n, _ := f.Read(buf)
	if n == 0 {
		return 0
	}
	return relevance.Score(string(buf[:n]), keywords, true)
}
