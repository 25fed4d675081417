// Package config provides configuration types and defaults for edesto.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/edesto/edesto/internal/log"
)

// Config holds all configuration options for edesto.
type Config struct {
	// Artifacts are the file names written by `edesto init`.
	Artifacts []string      `mapstructure:"artifacts"`
	Detect    DetectConfig  `mapstructure:"detect"`
	History   HistoryConfig `mapstructure:"history"`
	Tracing   TracingConfig `mapstructure:"tracing"`
}

// DetectConfig holds board detection settings.
type DetectConfig struct {
	// Binary is the arduino-cli executable name or path.
	Binary string `mapstructure:"binary"`

	// PortGlobs are the serial device patterns to enumerate.
	PortGlobs []string `mapstructure:"port_globs"`

	// WatchDir is the directory monitored in watch mode.
	WatchDir string `mapstructure:"watch_dir"`
}

// HistoryConfig holds generation history settings.
type HistoryConfig struct {
	// Enabled controls whether generations are recorded.
	// Default: true
	Enabled bool `mapstructure:"enabled"`

	// DBPath is the sqlite database location.
	// Default: ~/.config/edesto/history.db
	DBPath string `mapstructure:"db_path"`
}

// TracingConfig holds trace export configuration.
type TracingConfig struct {
	// Enabled controls whether tracing is active.
	// Default: false
	Enabled bool `mapstructure:"enabled"`

	// Exporter selects the trace export backend.
	// Options: "none", "file", "stdout", "otlp"
	// Default: "file"
	Exporter string `mapstructure:"exporter"`

	// FilePath is the output file for "file" exporter.
	// Default: ~/.config/edesto/traces/traces.jsonl
	FilePath string `mapstructure:"file_path"`

	// OTLPEndpoint is the collector endpoint for "otlp" exporter.
	// Default: "localhost:4317"
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`

	// SampleRate controls trace sampling (0.0 to 1.0).
	// Default: 1.0
	SampleRate float64 `mapstructure:"sample_rate"`
}

// DefaultArtifacts are the files written by init when the config does not
// override them. Both carry identical content so Claude Code and Cursor
// stay in sync.
func DefaultArtifacts() []string {
	return []string{"CLAUDE.md", ".cursorrules"}
}

// DefaultConfigDir returns ~/.config/edesto or empty string if the home
// directory is unavailable.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "edesto")
}

// DefaultHistoryDBPath returns the default sqlite path for generation
// history, or empty string if the home directory is unavailable.
func DefaultHistoryDBPath() string {
	dir := DefaultConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "history.db")
}

// DefaultTracesFilePath returns the default path for trace file export,
// or empty string if the home directory is unavailable.
func DefaultTracesFilePath() string {
	dir := DefaultConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "traces", "traces.jsonl")
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Artifacts: DefaultArtifacts(),
		Detect: DetectConfig{
			Binary: "arduino-cli",
			PortGlobs: []string{
				"/dev/ttyUSB*",
				"/dev/ttyACM*",
				"/dev/cu.usb*",
			},
			WatchDir: "/dev",
		},
		History: HistoryConfig{
			Enabled: true,
			DBPath:  "", // Derived from config dir at runtime
		},
		Tracing: TracingConfig{
			Enabled:      false,
			Exporter:     "file",
			FilePath:     "", // Derived from config dir at runtime
			OTLPEndpoint: "localhost:4317",
			SampleRate:   1.0,
		},
	}
}

// Validate checks the configuration for errors.
// Returns nil if the configuration is valid (empty values use defaults).
func Validate(cfg Config) error {
	for i, name := range cfg.Artifacts {
		if name == "" {
			return fmt.Errorf("artifacts[%d]: name must not be empty", i)
		}
		if filepath.IsAbs(name) || filepath.Base(name) != name {
			return fmt.Errorf("artifacts[%d]: %q must be a bare file name", i, name)
		}
	}

	return ValidateTracing(cfg.Tracing)
}

// ValidateTracing checks tracing configuration for errors.
// Returns nil if the configuration is valid (empty values use defaults).
func ValidateTracing(tracing TracingConfig) error {
	if tracing.SampleRate < 0.0 || tracing.SampleRate > 1.0 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", tracing.SampleRate)
	}

	if tracing.Exporter != "" {
		switch tracing.Exporter {
		case "none", "file", "stdout", "otlp":
			// Valid
		default:
			return fmt.Errorf("tracing.exporter must be \"none\", \"file\", \"stdout\", or \"otlp\", got %q", tracing.Exporter)
		}
	}

	// Only enforce path requirements when tracing is enabled
	if tracing.Enabled {
		if tracing.Exporter == "file" && tracing.FilePath == "" {
			return fmt.Errorf("tracing.file_path is required when exporter is \"file\"")
		}
		if tracing.Exporter == "otlp" && tracing.OTLPEndpoint == "" {
			return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
		}
	}

	return nil
}

// GetArtifacts returns the configured artifact names, or defaults if none.
func (c Config) GetArtifacts() []string {
	if len(c.Artifacts) > 0 {
		return c.Artifacts
	}
	return DefaultArtifacts()
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Edesto Configuration

# Files written by 'edesto init'. Both receive identical content.
artifacts:
  - CLAUDE.md
  - .cursorrules

# Board detection settings
detect:
  # arduino-cli executable name or absolute path
  binary: arduino-cli

  # Serial device patterns scanned for connected boards
  port_globs:
    - /dev/ttyUSB*
    - /dev/ttyACM*
    - /dev/cu.usb*

  # Directory monitored by 'edesto detect --watch'
  watch_dir: /dev

# Generation history (sqlite)
history:
  enabled: true
  # db_path: ~/.config/edesto/history.db

# Trace export configuration
# tracing:
#   enabled: false                 # Enable/disable tracing (default: false)
#   exporter: file                 # Export backend: none, file, stdout, otlp (default: file)
#   file_path: ~/.config/edesto/traces/traces.jsonl  # Output file for file exporter
#   otlp_endpoint: localhost:4317  # OTLP collector endpoint (for otlp exporter)
#   sample_rate: 1.0               # Trace sampling rate 0.0-1.0 (default: 1.0)
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
