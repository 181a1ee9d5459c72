package system

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func NewGenDocsCommand() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "gendocs",
		Short: "Generate Markdown docs for the medera CLI",
		Long:  "Walks the whole command tree and writes one Markdown page per command.",
		RunE: func(cmd *cobra.Command, args []string) error {
			abs, err := filepath.Abs(outDir)
			if err != nil {
				return fmt.Errorf("resolving %q: %w", outDir, err)
			}
			if err := os.MkdirAll(abs, 0o755); err != nil {
				return fmt.Errorf("creating docs directory: %w", err)
			}

			// cmd.Root() is the full tree, not just the system subcommand.
			if err := doc.GenMarkdownTree(cmd.Root(), abs); err != nil {
				return fmt.Errorf("generating CLI docs: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "CLI docs written to %s\n", abs)
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "outdir", "docs/cli", "output directory for generated pages")

	return cmd
}
