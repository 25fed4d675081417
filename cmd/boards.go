package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"

	"github.com/edesto/edesto/internal/catalog"
	"github.com/edesto/edesto/internal/presentation"
	"github.com/edesto/edesto/internal/ui/styles"
)

const (
	capsColumnWidth  = 40
	detailWrapWidth  = 76
	detailLabelWidth = 14
)

var (
	boardsJSON   bool
	boardsDetail string
)

var boardsCmd = &cobra.Command{
	Use:   "boards",
	Short: "List supported boards",
	Long: `List every board in the catalog with its FQBN and capabilities.

Use --detail to see everything known about one board, including pin
assignments and common pitfalls.`,
	RunE: runBoards,
}

func init() {
	rootCmd.AddCommand(boardsCmd)

	boardsCmd.Flags().BoolVar(&boardsJSON, "json", false, "output as JSON")
	boardsCmd.Flags().StringVar(&boardsDetail, "detail", "", "show full details for one board slug")
}

func runBoards(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	if boardsDetail != "" {
		board, err := cat.Lookup(boardsDetail)
		if err != nil {
			return err
		}
		cmd.Print(renderBoardDetail(board))
		return nil
	}

	if boardsJSON {
		return presentation.NewFormatter(cmd.OutOrStdout()).
			FormatBoards(presentation.FromBoards(cat.Boards()))
	}

	cmd.Print(renderBoardsTable(cat.Boards()))
	return nil
}

// renderBoardsTable renders the catalog as an aligned table in
// registration order.
func renderBoardsTable(boards []*catalog.Board) string {
	headers := []string{"SLUG", "NAME", "FQBN", "BAUD", "CAPABILITIES"}
	rows := make([][]string, 0, len(boards))
	for _, b := range boards {
		caps := strings.Join(b.Capabilities(), ", ")
		caps = runewidth.Truncate(caps, capsColumnWidth, "…")
		rows = append(rows, []string{
			b.Slug(),
			b.Name(),
			b.FQBN(),
			fmt.Sprintf("%d", b.BaudRate()),
			caps,
		})
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(styles.TitleColor)

	var b strings.Builder
	for i, h := range headers {
		b.WriteString(headerStyle.Render(runewidth.FillRight(h, widths[i])))
		if i < len(headers)-1 {
			b.WriteString("  ")
		}
	}
	b.WriteString("\n")
	for _, row := range rows {
		for i, cell := range row {
			b.WriteString(runewidth.FillRight(cell, widths[i]))
			if i < len(row)-1 {
				b.WriteString("  ")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderBoardDetail renders everything known about one board.
func renderBoardDetail(board *catalog.Board) string {
	label := func(s string) string {
		return styles.TitleStyle.Render(runewidth.FillRight(s, detailLabelWidth))
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(board.Name()))
	b.WriteString("\n\n")
	b.WriteString(label("Slug") + board.Slug() + "\n")
	b.WriteString(label("FQBN") + board.FQBN() + "\n")
	b.WriteString(label("Core") + board.Core() + "\n")
	if board.CoreURL() != "" {
		b.WriteString(label("Core URL") + board.CoreURL() + "\n")
	}
	b.WriteString(label("Baud rate") + fmt.Sprintf("%d", board.BaudRate()) + "\n")
	b.WriteString(label("Capabilities") + strings.Join(board.Capabilities(), ", ") + "\n")

	if pins := board.Pins(); len(pins) > 0 {
		b.WriteString("\n" + styles.TitleStyle.Render("Pins") + "\n")
		names := make([]string, 0, len(pins))
		for name := range pins {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			b.WriteString(fmt.Sprintf("  %s = %d\n", name, pins[name]))
		}
	}

	if notes := board.PinNotes(); len(notes) > 0 {
		b.WriteString("\n" + styles.TitleStyle.Render("Pin notes") + "\n")
		for _, note := range notes {
			b.WriteString(wordwrap.String("  "+note, detailWrapWidth) + "\n")
		}
	}

	if pitfalls := board.Pitfalls(); len(pitfalls) > 0 {
		b.WriteString("\n" + styles.TitleStyle.Render("Common pitfalls") + "\n")
		for _, pitfall := range pitfalls {
			b.WriteString(wordwrap.String("  - "+pitfall, detailWrapWidth) + "\n")
		}
	}

	return b.String()
}
