// Package cmd implements the edesto command line interface.
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/edesto/edesto/internal/catalog"
	"github.com/edesto/edesto/internal/config"
	"github.com/edesto/edesto/internal/detect"
	"github.com/edesto/edesto/internal/generate"
	"github.com/edesto/edesto/internal/history"
	"github.com/edesto/edesto/internal/infrastructure/sqlite"
	"github.com/edesto/edesto/internal/log"
	"github.com/edesto/edesto/internal/tracing"
)

var (
	version   = "dev"
	cfgFile   string
	debugFlag bool
	cfg       config.Config
)

var rootCmd = &cobra.Command{
	Use:   "edesto",
	Short: "Generate embedded development configs for AI coding assistants",
	Long: `Edesto generates CLAUDE.md and .cursorrules files tailored to a
specific embedded board: build and flash commands, serial settings,
pin references and the pitfalls worth knowing before the first upload.

Run 'edesto init' in a project directory to get started.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Validate(cfg); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/edesto/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false,
		"enable debug logging to ~/.config/edesto/debug.log")
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("artifacts", defaults.Artifacts)
	viper.SetDefault("detect.binary", defaults.Detect.Binary)
	viper.SetDefault("detect.port_globs", defaults.Detect.PortGlobs)
	viper.SetDefault("detect.watch_dir", defaults.Detect.WatchDir)
	viper.SetDefault("history.enabled", defaults.History.Enabled)
	viper.SetDefault("tracing.exporter", defaults.Tracing.Exporter)
	viper.SetDefault("tracing.otlp_endpoint", defaults.Tracing.OTLPEndpoint)
	viper.SetDefault("tracing.sample_rate", defaults.Tracing.SampleRate)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .edesto/config.yaml (current directory)
		// 2. ~/.config/edesto/config.yaml (user config)
		if _, err := os.Stat(".edesto/config.yaml"); err == nil {
			viper.SetConfigFile(".edesto/config.yaml")
		} else {
			viper.AddConfigPath(config.DefaultConfigDir())
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			defaultPath := filepath.Join(config.DefaultConfigDir(), "config.yaml")
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)
	initLogging()
}

func initLogging() {
	debug := debugFlag || os.Getenv("EDESTO_DEBUG") != ""
	if !debug {
		return
	}

	logPath := os.Getenv("EDESTO_LOG")
	if logPath == "" {
		logPath = filepath.Join(config.DefaultConfigDir(), "debug.log")
	}
	_ = os.MkdirAll(filepath.Dir(logPath), 0o750)
	if _, err := log.Init(logPath); err == nil {
		log.SetEnabled(true)
		log.SetMinLevel(log.LevelDebug)
	}
}

// loadCatalog loads the embedded board catalog.
func loadCatalog() (*catalog.Catalog, error) {
	cat, err := catalog.Default()
	if err != nil {
		return nil, fmt.Errorf("loading board catalog: %w", err)
	}
	return cat, nil
}

// newScanner builds a detection scanner from the active config.
func newScanner(cat *catalog.Catalog) (*detect.Scanner, *detect.CLIExecutor) {
	exec := detect.NewCLIExecutor(cfg.Detect.Binary)
	return detect.NewScanner(cat, exec), exec
}

// openHistory opens the generation history repository, or returns nil
// when history is disabled or the database cannot be opened.
func openHistory() (history.Repository, func()) {
	if !cfg.History.Enabled {
		return nil, func() {}
	}

	dbPath := cfg.History.DBPath
	if dbPath == "" {
		dbPath = config.DefaultHistoryDBPath()
	}
	if dbPath == "" {
		return nil, func() {}
	}

	db, err := sqlite.NewDB(dbPath)
	if err != nil {
		log.Warn(log.CatDB, "history unavailable", "error", err)
		return nil, func() {}
	}
	return sqlite.NewGenerationRepository(db), func() { _ = db.Close() }
}

// newTracing builds the trace provider from the active config.
func newTracing() (*tracing.Provider, error) {
	filePath := cfg.Tracing.FilePath
	if filePath == "" {
		filePath = config.DefaultTracesFilePath()
	}
	return tracing.NewProvider(tracing.Config{
		Enabled:      cfg.Tracing.Enabled,
		Exporter:     cfg.Tracing.Exporter,
		FilePath:     filePath,
		OTLPEndpoint: cfg.Tracing.OTLPEndpoint,
		SampleRate:   cfg.Tracing.SampleRate,
		ServiceName:  "edesto",
	})
}

// newGenerateService wires the document generation service.
// The returned cleanup closes the history database and flushes traces.
func newGenerateService(cat *catalog.Catalog) (*generate.Service, func(), error) {
	repo, closeRepo := openHistory()

	provider, err := newTracing()
	if err != nil {
		closeRepo()
		return nil, nil, fmt.Errorf("initializing tracing: %w", err)
	}

	cleanup := func() {
		_ = provider.Shutdown(context.Background())
		closeRepo()
	}
	return generate.NewService(cat, repo, provider.Tracer()), cleanup, nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
