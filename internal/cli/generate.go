package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/saeedalam/promptforge/internal/pipeline"
	"github.com/saeedalam/promptforge/pkg/types"
)

var (
	genTemplate string
	genTarget   string
	genFormat   string
	genContext  []string
	genVars     []string
	genOutput   string
	genCopy     bool
	genSave     bool
	genNoFiles  bool
	genShowMeta bool
)

var generateCmd = &cobra.Command{
	Use:   "generate \"<intent>\"",
	Short: "Generate a structured prompt from a plain-English intent",
	Long: `Generate a structured prompt from a plain-English task description.

The intent is parsed locally: the action, components and schema references
are extracted, the task type is detected, and the matching context
documents, templates and file suggestions are assembled into one prompt.

Examples:
  promptforge generate "create a signup button with primary color"
  promptforge generate "fix the login bug" --context api_conventions
  promptforge generate "add dark mode" --template ui --var framework=vue
  promptforge generate "document the deploy flow" --target cursor --copy
  promptforge generate "refactor the cache layer" --format json -o prompt.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&genTemplate, "template", "t", "", "Template to use (default: picked from the intent)")
	generateCmd.Flags().StringVar(&genTarget, "target", "", "Target tool (e.g. cursor) for output adjustments")
	generateCmd.Flags().StringVarP(&genFormat, "format", "f", "markdown", "Output format: markdown, plain, json")
	generateCmd.Flags().StringArrayVarP(&genContext, "context", "c", nil, "Force-include a context document (repeatable)")
	generateCmd.Flags().StringArrayVar(&genVars, "var", nil, "Template variable as key=value (repeatable)")
	generateCmd.Flags().StringVarP(&genOutput, "output", "o", "", "Write the prompt to a file instead of stdout")
	generateCmd.Flags().BoolVar(&genCopy, "copy", false, "Copy the prompt to the clipboard")
	generateCmd.Flags().BoolVar(&genSave, "save", false, "Also save the prompt under .promptforge/out/")
	generateCmd.Flags().BoolVar(&genNoFiles, "no-files", false, "Skip the file suggestion scan")
	generateCmd.Flags().BoolVar(&genShowMeta, "show-meta", false, "Print generation metadata to stderr")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	format, err := parseFormat(genFormat)
	if err != nil {
		return err
	}

	vars, err := parseVars(genVars)
	if err != nil {
		return err
	}

	prompt, err := pipeline.Generate(s, pipeline.GenerateRequest{
		Intent:        strings.Join(args, " "),
		Template:      genTemplate,
		Target:        genTarget,
		Format:        format,
		ForcedContext: genContext,
		Variables:     vars,
		SkipFiles:     genNoFiles,
	})
	if err != nil {
		return err
	}

	for _, w := range prompt.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	if genOutput != "" {
		if err := os.WriteFile(genOutput, []byte(prompt.Content+"\n"), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", genOutput, err)
		}
		fmt.Fprintf(os.Stderr, "Prompt written to %s\n", genOutput)
	} else {
		fmt.Println(prompt.Content)
	}

	if genSave {
		path, err := s.SavePrompt(prompt)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to save prompt: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "Prompt saved to %s\n", path)
		}
	}

	if genCopy {
		if err := clipboard.WriteAll(prompt.Content); err != nil {
			fmt.Fprintf(os.Stderr, "warning: clipboard copy failed: %v\n", err)
		} else {
			fmt.Fprintln(os.Stderr, "Prompt copied to clipboard")
		}
	}

	if genShowMeta {
		meta, err := json.MarshalIndent(prompt.Metadata, "", "  ")
		if err == nil {
			fmt.Fprintln(os.Stderr, string(meta))
		}
	}
	return nil
}

func parseFormat(s string) (types.OutputFormat, error) {
	switch types.OutputFormat(strings.ToLower(s)) {
	case types.FormatMarkdown, "":
		return types.FormatMarkdown, nil
	case types.FormatPlain:
		return types.FormatPlain, nil
	case types.FormatJSON:
		return types.FormatJSON, nil
	}
	return "", fmt.Errorf("unknown format %q (expected markdown, plain or json)", s)
}

func parseVars(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	vars := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid --var %q (expected key=value)", pair)
		}
		vars[key] = value
	}
	return vars, nil
}
