package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/saeedalam/promptforge/internal/gitctx"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show workspace status",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	cfg, err := s.GetConfig()
	if err != nil {
		return err
	}

	contexts, ctxWarnings := s.LoadContexts()
	schemas, schemaWarnings := s.LoadSchemas()
	templates, tmplWarnings := s.LoadTemplates()

	fmt.Printf("Workspace: %s\n\n", s.BasePath())
	fmt.Printf("  Context documents: %d\n", len(contexts))
	fmt.Printf("  Schemas:           %d\n", len(schemas))
	fmt.Printf("  Templates:         %d\n", len(templates))

	special := gitctx.NewReader(s.ProjectRoot()).SpecialDocuments()
	if len(special) > 0 {
		fmt.Printf("  Git documents:     %d (latest_commit, history)\n", len(special))
	} else {
		fmt.Println("  Git documents:     none (no git history found)")
	}

	fmt.Println("\nConfig:")
	fmt.Printf("  min_relevance:       %.2f\n", cfg.MinRelevance)
	fmt.Printf("  detection_threshold: %.2f\n", cfg.DetectionThreshold)
	fmt.Printf("  expand_synonyms:     %v\n", cfg.ExpandSynonyms)
	fmt.Printf("  essential_context:   %v\n", cfg.EssentialContext)

	warnings := append(append(ctxWarnings, schemaWarnings...), tmplWarnings...)
	if len(warnings) > 0 {
		fmt.Printf("\nWarnings (%d):\n", len(warnings))
		for _, w := range warnings {
			fmt.Fprintf(os.Stderr, "  %s\n", w)
		}
	}
	return nil
}
