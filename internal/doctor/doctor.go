// Package doctor runs environment checks so users can see at a glance
// why detection or flashing might not work.
package doctor

import (
	"context"
	"fmt"
	"strings"

	"github.com/edesto/edesto/internal/detect"
	"github.com/edesto/edesto/internal/log"
)

// CheckResult is the outcome of a single environment check.
type CheckResult struct {
	Name   string `json:"name"`
	OK     bool   `json:"ok"`
	Detail string `json:"detail"`
}

// pathResolver is the subset of detect.CLIExecutor used to locate the
// binary. Split out so tests can fake an uninstalled CLI.
type pathResolver interface {
	Path() (string, error)
}

// Doctor runs the environment checks.
type Doctor struct {
	exec     detect.Executor
	resolver pathResolver
	scanner  *detect.Scanner
	globs    []string
}

// New creates a Doctor. resolver may be nil when exec does not wrap a
// real binary; the PATH check is skipped then.
func New(exec detect.Executor, resolver pathResolver, scanner *detect.Scanner, globs []string) *Doctor {
	return &Doctor{exec: exec, resolver: resolver, scanner: scanner, globs: globs}
}

// Run executes all checks and returns their results in a fixed order.
// It never returns an error: failures are reported per check.
func (d *Doctor) Run(ctx context.Context) []CheckResult {
	results := []CheckResult{
		d.checkCLI(ctx),
		d.checkPorts(),
		d.checkBoards(ctx),
	}
	for _, r := range results {
		log.Debug(log.CatDoctor, "check complete", "name", r.Name, "ok", r.OK)
	}
	return results
}

// Healthy reports whether every check passed.
func Healthy(results []CheckResult) bool {
	for _, r := range results {
		if !r.OK {
			return false
		}
	}
	return true
}

func (d *Doctor) checkCLI(ctx context.Context) CheckResult {
	check := CheckResult{Name: "arduino-cli"}

	if d.resolver != nil {
		path, err := d.resolver.Path()
		if err != nil {
			check.Detail = "not found in PATH; install from https://arduino.github.io/arduino-cli/"
			return check
		}
		check.Detail = path
	}

	version, err := d.exec.Version(ctx)
	if err != nil {
		check.Detail = fmt.Sprintf("found but not working: %v", err)
		return check
	}

	check.OK = true
	if check.Detail != "" {
		check.Detail = fmt.Sprintf("%s (%s)", version, check.Detail)
	} else {
		check.Detail = version
	}
	return check
}

func (d *Doctor) checkPorts() CheckResult {
	check := CheckResult{Name: "serial ports"}

	ports := detect.ListPorts(d.globs)
	if len(ports) == 0 {
		check.Detail = "no serial ports found; is a board plugged in?"
		return check
	}

	check.OK = true
	check.Detail = strings.Join(ports, ", ")
	return check
}

func (d *Doctor) checkBoards(ctx context.Context) CheckResult {
	check := CheckResult{Name: "detected boards"}

	detections := d.scanner.Scan(ctx)
	if len(detections) == 0 {
		check.Detail = "no recognized boards detected"
		return check
	}

	parts := make([]string, len(detections))
	for i, det := range detections {
		parts[i] = fmt.Sprintf("%s on %s", det.Board.Name(), det.Port)
	}
	check.OK = true
	check.Detail = strings.Join(parts, ", ")
	return check
}
