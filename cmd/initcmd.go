package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/edesto/edesto/internal/catalog"
	"github.com/edesto/edesto/internal/detect"
	"github.com/edesto/edesto/internal/ui/confirm"
	"github.com/edesto/edesto/internal/ui/picker"
	"github.com/edesto/edesto/internal/ui/styles"
)

// defaultPort is used when no board is connected and no port was given.
const defaultPort = "/dev/ttyUSB0"

var (
	initBoard string
	initPort  string
	initDir   string
	initYes   bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate configuration files for a board",
	Long: `Generate CLAUDE.md and .cursorrules in the target directory.

Without flags, edesto detects the connected board and serial port.
When several boards are plugged in (or none), an interactive picker
lets you choose. Existing files show a diff before being overwritten.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVarP(&initBoard, "board", "b", "", "board slug (see 'edesto boards')")
	initCmd.Flags().StringVarP(&initPort, "port", "p", "", "serial port (default: detected, or "+defaultPort+")")
	initCmd.Flags().StringVarP(&initDir, "dir", "d", ".", "target directory")
	initCmd.Flags().BoolVarP(&initYes, "yes", "y", false, "overwrite existing files without asking")
}

func runInit(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	slug, port, err := resolveBoardAndPort(cmd, cat)
	if err != nil {
		return err
	}

	svc, cleanup, err := newGenerateService(cat)
	if err != nil {
		return err
	}
	defer cleanup()

	document, board, err := svc.Render(cmd.Context(), slug, port)
	if err != nil {
		return err
	}

	artifacts := cfg.GetArtifacts()
	if !initYes {
		proceed, err := confirmOverwrites(initDir, artifacts, document)
		if err != nil {
			return err
		}
		if !proceed {
			cmd.Println("Aborted.")
			return nil
		}
	}

	result, err := svc.Write(cmd.Context(), slug, port, initDir, artifacts)
	if err != nil {
		return err
	}

	cmd.Printf("Generated configuration for %s (%s) on %s\n", board.Name(), board.FQBN(), port)
	for _, path := range result.Artifacts {
		cmd.Println("  " + path)
	}
	cmd.Println(styles.MutedStyle.Render("checksum: " + result.Checksum))
	return nil
}

// resolveBoardAndPort fills in whichever of --board/--port the user did
// not give, from detection first and the picker as a fallback.
func resolveBoardAndPort(cmd *cobra.Command, cat *catalog.Catalog) (string, string, error) {
	slug := initBoard
	port := initPort
	if slug != "" && port != "" {
		return slug, port, nil
	}

	scanner, _ := newScanner(cat)
	detections := scanner.Scan(cmd.Context())

	if slug == "" {
		switch len(detections) {
		case 1:
			d := detections[0]
			slug = d.Board.Slug()
			cmd.Println(renderDetection(d))
			if port == "" {
				port = d.Port
			}
		default:
			chosen, ok, err := pickBoard(cat, detections)
			if err != nil {
				return "", "", err
			}
			if !ok {
				return "", "", fmt.Errorf("no board selected")
			}
			slug = chosen
		}
	}

	if port == "" {
		for _, d := range detections {
			if d.Board.Slug() == slug {
				port = d.Port
				break
			}
		}
	}
	if port == "" {
		if ports := detect.ListPorts(cfg.Detect.PortGlobs); len(ports) > 0 {
			port = ports[0]
		} else {
			port = defaultPort
		}
	}

	return slug, port, nil
}

// pickBoard runs the interactive picker. Detected boards are listed
// first, then the rest of the catalog.
func pickBoard(cat *catalog.Catalog, detections []detect.Detection) (string, bool, error) {
	var options []picker.Option
	seen := make(map[string]bool)

	for _, d := range detections {
		options = append(options, picker.Option{
			Label:  d.Board.Name(),
			Value:  d.Board.Slug(),
			Detail: "detected on " + d.Port,
		})
		seen[d.Board.Slug()] = true
	}
	for _, b := range cat.Boards() {
		if seen[b.Slug()] {
			continue
		}
		options = append(options, picker.Option{
			Label:  b.Name(),
			Value:  b.Slug(),
			Detail: b.FQBN(),
		})
	}

	opt, ok, err := picker.Choose("Select a board", options)
	if err != nil || !ok {
		return "", false, err
	}
	return opt.Value, true, nil
}

// confirmOverwrites shows a diff for each artifact that already exists
// with different content and asks once before overwriting.
func confirmOverwrites(dir string, artifacts []string, document string) (bool, error) {
	var diffs []string
	for _, name := range artifacts {
		path := filepath.Join(dir, name)
		existing, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return false, fmt.Errorf("reading %s: %w", path, err)
		}
		if string(existing) == document {
			continue
		}
		diffs = append(diffs, styles.TitleStyle.Render(path)+"\n"+renderDiff(string(existing), document))
	}

	if len(diffs) == 0 {
		return true, nil
	}
	return confirm.Ask("Overwrite the files above?", strings.Join(diffs, "\n"))
}

// renderDiff produces a compact colored line diff.
func renderDiff(before, after string) string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder
	for _, d := range diffs {
		for _, line := range strings.Split(strings.TrimRight(d.Text, "\n"), "\n") {
			switch d.Type {
			case diffmatchpatch.DiffInsert:
				sb.WriteString(styles.AccentStyle.Render("+"+line) + "\n")
			case diffmatchpatch.DiffDelete:
				sb.WriteString(styles.ErrorStyle.Render("-"+line) + "\n")
			}
		}
	}
	return sb.String()
}
