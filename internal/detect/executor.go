// Package detect discovers connected boards by probing the environment
// with arduino-cli and by enumerating serial ports.
//
// The catalog and composer never touch this package; detection feeds the
// CLI layer only, so a missing or broken arduino-cli degrades to "nothing
// detected" rather than an error.
package detect

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// commandTimeout bounds every arduino-cli invocation.
const commandTimeout = 10 * time.Second

// Executor defines the interface for arduino-cli command execution.
// Tests inject canned JSON through a fake implementation.
type Executor interface {
	// BoardList runs `arduino-cli board list --json` and returns raw stdout.
	BoardList(ctx context.Context) ([]byte, error)

	// Version runs `arduino-cli version` and returns the trimmed output.
	Version(ctx context.Context) (string, error)
}

// Compile-time check that CLIExecutor implements Executor.
var _ Executor = (*CLIExecutor)(nil)

// CLIExecutor implements Executor by running the real arduino-cli binary.
type CLIExecutor struct {
	binary string
}

// NewCLIExecutor creates an executor for the given binary name.
// An empty name defaults to "arduino-cli" resolved via PATH.
func NewCLIExecutor(binary string) *CLIExecutor {
	if binary == "" {
		binary = "arduino-cli"
	}
	return &CLIExecutor{binary: binary}
}

// BoardList runs `arduino-cli board list --json`.
func (e *CLIExecutor) BoardList(ctx context.Context) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, e.binary, "board", "list", "--json")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return nil, fmt.Errorf("arduino-cli board list failed: %s", stderr.String())
		}
		return nil, fmt.Errorf("arduino-cli board list failed: %w", err)
	}
	return stdout.Bytes(), nil
}

// Version runs `arduino-cli version`.
func (e *CLIExecutor) Version(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, e.binary, "version")

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("arduino-cli version failed: %w", err)
	}
	return strings.TrimSpace(stdout.String()), nil
}

// Path resolves the configured binary via PATH.
// Returns the absolute path or an error when not installed.
func (e *CLIExecutor) Path() (string, error) {
	return exec.LookPath(e.binary)
}
