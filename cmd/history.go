package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/edesto/edesto/internal/history"
	"github.com/edesto/edesto/internal/presentation"
	"github.com/edesto/edesto/internal/ui/styles"
)

var (
	historyJSON  bool
	historyLimit int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past generations",
	Long:  `List recorded generations, newest first: board, port, artifacts and checksum.`,
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output as JSON")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum entries to show (0 for all)")
}

// generationView is the JSON shape for one history entry.
type generationView struct {
	GUID      string   `json:"guid"`
	Board     string   `json:"board"`
	FQBN      string   `json:"fqbn"`
	Port      string   `json:"port"`
	Checksum  string   `json:"checksum"`
	Artifacts []string `json:"artifacts"`
	CreatedAt string   `json:"created_at"`
}

func runHistory(cmd *cobra.Command, args []string) error {
	repo, closeRepo := openHistory()
	if repo == nil {
		return fmt.Errorf("history is disabled or unavailable")
	}
	defer closeRepo()

	generations, err := repo.List(historyLimit)
	if err != nil {
		return err
	}

	if historyJSON {
		views := make([]generationView, len(generations))
		for i, g := range generations {
			views[i] = toGenerationView(g)
		}
		return presentation.NewFormatter(cmd.OutOrStdout()).FormatResult(views)
	}

	if len(generations) == 0 {
		cmd.Println("No generations recorded yet.")
		return nil
	}

	for _, g := range generations {
		cmd.Printf("%s  %s %s %s\n",
			styles.MutedStyle.Render(g.CreatedAt().Format("2006-01-02 15:04")),
			styles.AccentStyle.Render(g.BoardSlug()),
			g.Port(),
			styles.MutedStyle.Render(shortChecksum(g.Checksum())),
		)
		if len(g.Artifacts()) > 0 {
			cmd.Println("    " + strings.Join(g.Artifacts(), ", "))
		}
	}
	return nil
}

func toGenerationView(g *history.Generation) generationView {
	return generationView{
		GUID:      g.GUID(),
		Board:     g.BoardSlug(),
		FQBN:      g.FQBN(),
		Port:      g.Port(),
		Checksum:  g.Checksum(),
		Artifacts: g.Artifacts(),
		CreatedAt: g.CreatedAt().Format("2006-01-02T15:04:05Z07:00"),
	}
}

func shortChecksum(sum string) string {
	if len(sum) > 12 {
		return sum[:12]
	}
	return sum
}
