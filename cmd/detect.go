package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"

	"github.com/edesto/edesto/internal/detect"
	"github.com/edesto/edesto/internal/presentation"
	"github.com/edesto/edesto/internal/tracing"
	"github.com/edesto/edesto/internal/ui/styles"
	"github.com/edesto/edesto/internal/ui/waitboard"
)

var (
	detectJSON  bool
	detectWatch bool
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect connected boards",
	Long: `Detect boards connected over USB serial using arduino-cli.

With --watch, edesto keeps running and reports boards as they are
plugged in or removed.`,
	RunE: runDetect,
}

func init() {
	rootCmd.AddCommand(detectCmd)

	detectCmd.Flags().BoolVar(&detectJSON, "json", false, "output as JSON")
	detectCmd.Flags().BoolVar(&detectWatch, "watch", false, "watch for boards being plugged in or removed")
}

func runDetect(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}
	scanner, _ := newScanner(cat)

	if detectWatch {
		return runDetectWatch(cmd, scanner)
	}

	provider, err := newTracing()
	if err != nil {
		return err
	}
	defer func() { _ = provider.Shutdown(context.Background()) }()

	ctx, span := provider.Tracer().Start(cmd.Context(), tracing.SpanDetect)
	detections := scanner.Scan(ctx)
	span.SetAttributes(attribute.Int(tracing.AttrDetectionCount, len(detections)))
	span.End()

	if detectJSON {
		return presentation.NewFormatter(cmd.OutOrStdout()).
			FormatDetections(presentation.FromDetections(detections))
	}

	if len(detections) == 0 {
		cmd.Println("No boards detected.")
		cmd.Println(styles.WarnStyle.Render("Check the USB cable and that arduino-cli is installed; 'edesto doctor' can help."))
		return nil
	}

	for _, d := range detections {
		cmd.Println(renderDetection(d))
	}
	return nil
}

func renderDetection(d detect.Detection) string {
	return fmt.Sprintf("%s %s %s",
		styles.AccentStyle.Render(d.Board.Name()),
		styles.MutedStyle.Render("("+d.Board.Slug()+")"),
		"on "+d.Port,
	)
}

func runDetectWatch(cmd *cobra.Command, scanner *detect.Scanner) error {
	watchDir := cfg.Detect.WatchDir
	if watchDir == "" {
		watchDir = detect.DefaultWatchConfig().Dir
	}

	watcher, err := detect.NewWatcher(detect.WatchConfig{
		Dir:         watchDir,
		DebounceDur: detect.DefaultWatchConfig().DebounceDur,
	})
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}

	monitor := detect.NewMonitor(scanner, watcher)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	events := monitor.Subscribe(ctx)

	go func() { _ = monitor.Run(ctx) }()

	p := tea.NewProgram(waitboard.New(events))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running watch view: %w", err)
	}
	return nil
}
