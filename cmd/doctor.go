package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edesto/edesto/internal/doctor"
	"github.com/edesto/edesto/internal/presentation"
	"github.com/edesto/edesto/internal/ui/styles"
)

var doctorJSON bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the development environment",
	Long: `Check that arduino-cli is installed, serial ports are visible and
a board can be detected. Exits non-zero when any check fails.`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)

	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false, "output as JSON")
}

func runDoctor(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	scanner, exec := newScanner(cat)
	d := doctor.New(exec, exec, scanner, cfg.Detect.PortGlobs)
	results := d.Run(cmd.Context())

	if doctorJSON {
		if err := presentation.NewFormatter(cmd.OutOrStdout()).FormatResult(results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			mark := styles.SuccessStyle.Render("ok")
			if !r.OK {
				mark = styles.ErrorStyle.Render("fail")
			}
			cmd.Printf("%-16s %-4s %s\n", r.Name, mark, r.Detail)
		}
	}

	if !doctor.Healthy(results) {
		return fmt.Errorf("environment checks failed")
	}
	return nil
}
