package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/saeedalam/promptforge/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "promptforge",
	Short: "Assemble rich LLM prompts from your project's own context",
	Long: `PromptForge - Structured prompts from plain-English intent

PromptForge turns a one-line task description into a complete, structured
prompt: it parses your intent, classifies the task, pulls in the project
context documents that matter, resolves design-token references and points
at the files worth looking at.

Everything runs locally against the .promptforge/ directory; no network
calls, no API keys.

Quick Start:
  promptforge init                                  Initialize in current directory
  promptforge generate "add a dark mode toggle"     Generate a prompt
  promptforge contexts                              List context documents
  promptforge status                                Show workspace status`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openStore locates the workspace from the current directory.
func openStore() (*store.Store, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return store.Find(cwd)
}
