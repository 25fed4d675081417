package detect

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWatcher(t *testing.T, dir string) (*Watcher, <-chan struct{}) {
	t.Helper()
	w, err := NewWatcher(WatchConfig{Dir: dir, DebounceDur: 50 * time.Millisecond})
	require.NoError(t, err, "failed to create watcher")
	t.Cleanup(func() { _ = w.Stop() })

	onChange, err := w.Start()
	require.NoError(t, err, "failed to start watcher")
	return w, onChange
}

func TestWatcherNotifiesOnSerialDeviceCreate(t *testing.T) {
	dir := t.TempDir()
	_, onChange := newTestWatcher(t, dir)

	touch(t, filepath.Join(dir, "ttyUSB0"))

	select {
	case <-onChange:
		// Expected
	case <-time.After(200 * time.Millisecond):
		t.Fatal("expected notification for new serial device")
	}
}

func TestWatcherDebouncesRapidEvents(t *testing.T) {
	dir := t.TempDir()
	_, onChange := newTestWatcher(t, dir)

	// A plug-in storm should coalesce into a single notification.
	for i := 0; i < 5; i++ {
		touch(t, filepath.Join(dir, "ttyUSB"+string(rune('0'+i))))
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case <-onChange:
		// Expected
	case <-time.After(200 * time.Millisecond):
		t.Fatal("expected notification but got timeout")
	}

	select {
	case <-onChange:
		t.Fatal("unexpected second notification")
	case <-time.After(100 * time.Millisecond):
		// Expected
	}
}

func TestWatcherIgnoresNonSerialDevices(t *testing.T) {
	dir := t.TempDir()
	_, onChange := newTestWatcher(t, dir)

	touch(t, filepath.Join(dir, "sda1"))
	touch(t, filepath.Join(dir, "random"))

	select {
	case <-onChange:
		t.Fatal("should not notify for non-serial devices")
	case <-time.After(100 * time.Millisecond):
		// Expected
	}
}

func TestWatcherNotifiesOnRemove(t *testing.T) {
	dir := t.TempDir()
	devPath := filepath.Join(dir, "ttyACM0")
	touch(t, devPath)

	_, onChange := newTestWatcher(t, dir)

	require.NoError(t, os.Remove(devPath))

	select {
	case <-onChange:
		// Expected - unplug is a topology change
	case <-time.After(200 * time.Millisecond):
		t.Fatal("expected notification for removed serial device")
	}
}

func TestWatcherStop(t *testing.T) {
	w, err := NewWatcher(WatchConfig{Dir: t.TempDir(), DebounceDur: 50 * time.Millisecond})
	require.NoError(t, err, "failed to create watcher")

	_, err = w.Start()
	require.NoError(t, err, "failed to start watcher")

	done := make(chan struct{})
	go func() {
		err := w.Stop()
		assert.NoError(t, err, "Stop returned error")
		close(done)
	}()

	select {
	case <-done:
		// Expected
	case <-time.After(1 * time.Second):
		t.Fatal("Stop() timed out - possible deadlock")
	}
}

func TestDefaultWatchConfig(t *testing.T) {
	cfg := DefaultWatchConfig()
	assert.Equal(t, "/dev", cfg.Dir)
	assert.Equal(t, 1*time.Second, cfg.DebounceDur)
}
