package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/saeedalam/promptforge/internal/store"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize PromptForge in current directory",
	Long: `Initialize PromptForge in the current directory.

This creates a .promptforge/ directory with starter context documents
(persona, standards, project), a colors schema and a small set of prompt
templates. Edit those files to describe your project; every generated
prompt is built from them.

Example:
  promptforge init`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	s, err := store.Init(cwd)
	if err != nil {
		return err
	}

	fmt.Printf("Initialized PromptForge workspace at %s\n", s.BasePath())
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  1. Edit .promptforge/contexts/project.md to describe your project")
	fmt.Println("  2. Adjust .promptforge/contexts/standards.md to your conventions")
	fmt.Println("  3. Run: promptforge generate \"your first task\"")
	return nil
}
