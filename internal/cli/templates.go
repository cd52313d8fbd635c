package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/saeedalam/promptforge/internal/store"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the available prompt templates",
	RunE:  runTemplates,
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}

func runTemplates(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	templates, warnings := s.LoadTemplates()
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	if len(templates) == 0 {
		fmt.Println("No templates found. Add JSON templates under .promptforge/templates/")
		return nil
	}

	fmt.Printf("Templates (%d):\n", len(templates))
	for _, name := range store.TemplateNames(templates) {
		tmpl := templates[name]
		line := "  " + name
		if tmpl.Extends != "" {
			line += fmt.Sprintf("  (extends %s)", tmpl.Extends)
		}
		fmt.Println(line)

		if len(tmpl.Variables) > 0 {
			varNames := make([]string, 0, len(tmpl.Variables))
			for v := range tmpl.Variables {
				varNames = append(varNames, v)
			}
			sort.Strings(varNames)
			for _, v := range varNames {
				decl := tmpl.Variables[v]
				detail := ""
				if decl.Default != "" {
					detail = fmt.Sprintf(" (default: %s)", decl.Default)
				}
				fmt.Printf("    var %s%s\n", v, detail)
			}
		}
	}
	return nil
}
