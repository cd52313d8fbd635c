package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/saeedalam/promptforge/internal/gitctx"
	"github.com/saeedalam/promptforge/internal/store"
)

var contextsCmd = &cobra.Command{
	Use:   "contexts",
	Short: "List the available context documents",
	RunE:  runContexts,
}

func init() {
	rootCmd.AddCommand(contextsCmd)
}

func runContexts(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	docs, warnings := s.LoadContexts()
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	if len(docs) == 0 {
		fmt.Println("No context documents found. Add markdown files under .promptforge/contexts/")
		return nil
	}

	fmt.Printf("Context documents (%d):\n", len(docs))
	for _, name := range store.ContextNames(docs) {
		doc := docs[name]
		line := "  " + name
		if doc.Metadata.Type != "" {
			line += fmt.Sprintf("  [%s]", doc.Metadata.Type)
		}
		if doc.Metadata.Priority != "" {
			line += fmt.Sprintf("  (%s priority)", doc.Metadata.Priority)
		}
		fmt.Println(line)
	}

	special := gitctx.NewReader(s.ProjectRoot()).SpecialDocuments()
	if len(special) > 0 {
		fmt.Println("\nGit-derived documents:")
		for _, name := range []string{"latest_commit", "history"} {
			if _, ok := special[name]; ok {
				fmt.Println("  " + name)
			}
		}
	}
	return nil
}
