// Package gitctx synthesizes the latest_commit and history context
// documents from the project's git log. A project without git (or without
// commits) simply contributes no special documents.
package gitctx

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/saeedalam/promptforge/pkg/types"
)

// historyDepth is how many commits the history document summarizes.
const historyDepth = 10

// CommitInfo is one parsed commit from the log.
type CommitInfo struct {
	Hash      string    `json:"hash"`
	ShortHash string    `json:"short_hash"`
	Author    string    `json:"author"`
	Date      time.Time `json:"date"`
	Subject   string    `json:"subject"`
	Files     []string  `json:"files,omitempty"`
}

// Reader pulls commit information out of a repository.
type Reader struct {
	repoPath string
}

// NewReader creates a reader rooted at the project directory.
func NewReader(repoPath string) *Reader {
	return &Reader{repoPath: repoPath}
}

// SpecialDocuments returns the synthetic context documents, keyed by name.
// Errors from git are swallowed: no repository means no documents.
func (r *Reader) SpecialDocuments() map[string]types.ContextDocument {
	docs := make(map[string]types.ContextDocument)

	commits, err := r.recentCommits(historyDepth)
	if err != nil || len(commits) == 0 {
		return docs
	}

	latest := commits[0]
	if files, err := r.changedFiles(latest.Hash); err == nil {
		latest.Files = files
	}
	docs["latest_commit"] = types.ContextDocument{
		Name:     "latest_commit",
		Metadata: types.ContextMetadata{Type: "git", Priority: "medium"},
		Body:     renderLatestCommit(latest),
	}
	docs["history"] = types.ContextDocument{
		Name:     "history",
		Metadata: types.ContextMetadata{Type: "git", Priority: "low"},
		Body:     renderHistory(commits),
	}
	return docs
}

// recentCommits runs git log with a pipe-delimited format and parses it.
func (r *Reader) recentCommits(limit int) ([]CommitInfo, error) {
	cmd := exec.Command("git", "log",
		"--pretty=format:%H|%h|%an|%aI|%s",
		"-n", strconv.Itoa(limit),
	)
	cmd.Dir = r.repoPath
	output, err := cmd.Output()
	if err != nil {
		return nil, err
	}
	return parseLog(string(output)), nil
}

// changedFiles lists the paths touched by one commit.
func (r *Reader) changedFiles(hash string) ([]string, error) {
	cmd := exec.Command("git", "diff-tree", "--no-commit-id", "--name-only", "-r", hash)
	cmd.Dir = r.repoPath
	output, err := cmd.Output()
	if err != nil {
		return nil, err
	}

	var files []string
	for _, line := range strings.Split(string(output), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			files = append(files, line)
		}
	}
	return files, nil
}

func parseLog(output string) []CommitInfo {
	var commits []CommitInfo
	for _, line := range strings.Split(output, "\n") {
		parts := strings.SplitN(line, "|", 5)
		if len(parts) != 5 {
			continue
		}
		commit := CommitInfo{
			Hash:      parts[0],
			ShortHash: parts[1],
			Author:    parts[2],
			Subject:   parts[4],
		}
		if t, err := time.Parse(time.RFC3339, parts[3]); err == nil {
			commit.Date = t
		}
		commits = append(commits, commit)
	}
	return commits
}

func renderLatestCommit(c CommitInfo) string {
	var sb strings.Builder
	sb.WriteString("# Latest Commit\n\n")
	fmt.Fprintf(&sb, "%s %s (%s, %s)\n", c.ShortHash, c.Subject, c.Author, c.Date.Format("2006-01-02"))
	if len(c.Files) > 0 {
		sb.WriteString("\nFiles changed:\n")
		for _, f := range c.Files {
			fmt.Fprintf(&sb, "- %s\n", f)
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func renderHistory(commits []CommitInfo) string {
	var sb strings.Builder
	sb.WriteString("# Recent History\n\n")
	for _, c := range commits {
		fmt.Fprintf(&sb, "- %s %s (%s)\n", c.ShortHash, c.Subject, c.Date.Format("2006-01-02"))
	}
	return strings.TrimRight(sb.String(), "\n")
}
