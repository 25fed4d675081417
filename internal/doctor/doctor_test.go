package doctor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/edesto/edesto/internal/catalog"
	"github.com/edesto/edesto/internal/detect"
)

type fakeExecutor struct {
	output  []byte
	version string
	err     error
}

func (f *fakeExecutor) BoardList(ctx context.Context) ([]byte, error) {
	return f.output, f.err
}

func (f *fakeExecutor) Version(ctx context.Context) (string, error) {
	return f.version, f.err
}

type fakeResolver struct {
	path string
	err  error
}

func (f *fakeResolver) Path() (string, error) { return f.path, f.err }

func newDoctor(t *testing.T, exec detect.Executor, resolver pathResolver, globs []string) *Doctor {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	return New(exec, resolver, detect.NewScanner(cat, exec), globs)
}

func TestRunAllHealthy(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, touchFile(filepath.Join(dir, "ttyUSB0")))

	exec := &fakeExecutor{
		version: "arduino-cli Version: 1.1.1",
		output: []byte(`{
			"detected_ports": [
				{
					"port": {"address": "/dev/ttyUSB0", "protocol": "serial"},
					"matching_boards": [{"name": "ESP32", "fqbn": "esp32:esp32:esp32"}]
				}
			]
		}`),
	}
	d := newDoctor(t, exec, &fakeResolver{path: "/usr/local/bin/arduino-cli"}, []string{filepath.Join(dir, "ttyUSB*")})

	results := d.Run(context.Background())
	require.Len(t, results, 3)
	require.True(t, Healthy(results))

	require.Equal(t, "arduino-cli", results[0].Name)
	require.Contains(t, results[0].Detail, "1.1.1")
	require.Contains(t, results[0].Detail, "/usr/local/bin/arduino-cli")

	require.Equal(t, "serial ports", results[1].Name)
	require.Contains(t, results[1].Detail, "ttyUSB0")

	require.Equal(t, "detected boards", results[2].Name)
	require.Contains(t, results[2].Detail, "ESP32 on /dev/ttyUSB0")
}

func TestRunCLIMissing(t *testing.T) {
	exec := &fakeExecutor{err: errors.New("exec: arduino-cli: not found")}
	d := newDoctor(t, exec, &fakeResolver{err: errors.New("not in PATH")}, []string{filepath.Join(t.TempDir(), "ttyUSB*")})

	results := d.Run(context.Background())
	require.False(t, Healthy(results))

	require.False(t, results[0].OK)
	require.Contains(t, results[0].Detail, "not found in PATH")

	require.False(t, results[1].OK, "no ports in empty temp dir")
	require.False(t, results[2].OK, "no boards without working CLI")
}

func TestRunCLIBrokenButPresent(t *testing.T) {
	exec := &fakeExecutor{err: errors.New("permission denied")}
	d := newDoctor(t, exec, &fakeResolver{path: "/usr/bin/arduino-cli"}, []string{filepath.Join(t.TempDir(), "ttyUSB*")})

	results := d.Run(context.Background())
	require.False(t, results[0].OK)
	require.Contains(t, results[0].Detail, "found but not working")
}

func touchFile(path string) error {
	return os.WriteFile(path, nil, 0o600)
}
