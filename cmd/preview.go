package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

var (
	previewPort string
	previewRaw  bool
)

var previewCmd = &cobra.Command{
	Use:   "preview <board>",
	Short: "Preview the generated document for a board",
	Long: `Render the configuration document for a board to the terminal
without writing any files. Markdown is styled for the terminal;
use --raw for the exact bytes 'edesto init' would write.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringVarP(&previewPort, "port", "p", defaultPort, "serial port to render into the document")
	previewCmd.Flags().BoolVar(&previewRaw, "raw", false, "print raw markdown without styling")
}

func runPreview(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	svc, cleanup, err := newGenerateService(cat)
	if err != nil {
		return err
	}
	defer cleanup()

	document, _, err := svc.Render(cmd.Context(), args[0], previewPort)
	if err != nil {
		return err
	}

	if previewRaw {
		cmd.Print(document)
		return nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}
	styled, err := renderer.Render(document)
	if err != nil {
		return fmt.Errorf("rendering markdown: %w", err)
	}
	cmd.Print(styled)
	return nil
}
