package detect

import (
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors the serial device directory for hotplug events and
// sends a debounced signal when ports appear or disappear.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	dir       string
	debounce  time.Duration
	onChange  chan struct{}
	done      chan struct{}
}

// WatchConfig holds watcher configuration options.
type WatchConfig struct {
	Dir         string
	DebounceDur time.Duration
}

// DefaultWatchConfig returns sensible defaults for the watcher.
func DefaultWatchConfig() WatchConfig {
	return WatchConfig{
		Dir:         "/dev",
		DebounceDur: 1 * time.Second,
	}
}

// NewWatcher creates a hotplug watcher for the given device directory.
func NewWatcher(cfg WatchConfig) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}

	return &Watcher{
		fsWatcher: fsw,
		dir:       cfg.Dir,
		debounce:  cfg.DebounceDur,
		onChange:  make(chan struct{}, 1),
		done:      make(chan struct{}),
	}, nil
}

// Start begins watching the device directory.
// Returns a channel that receives a signal when serial ports change.
func (w *Watcher) Start() (<-chan struct{}, error) {
	if err := w.fsWatcher.Add(w.dir); err != nil {
		return nil, fmt.Errorf("watching directory %s: %w", w.dir, err)
	}

	go w.loop()

	return w.onChange, nil
}

// Stop terminates the watcher and releases resources.
func (w *Watcher) Stop() error {
	close(w.done)
	return w.fsWatcher.Close()
}

// loop processes file system events with debouncing.
func (w *Watcher) loop() {
	var (
		timer   *time.Timer
		pending bool
	)

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			if !w.isRelevantEvent(event) {
				continue
			}

			// Reset or start debounce timer
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				pending = true
			} else {
				if !timer.Stop() {
					// Drain the timer channel if it already fired
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
				pending = true
			}

		case <-func() <-chan time.Time {
			if timer != nil {
				return timer.C
			}
			return nil
		}():
			if pending {
				// Non-blocking send - drop if channel full
				select {
				case w.onChange <- struct{}{}:
				default:
				}
				pending = false
			}

		case _, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			// Keep watching; callers that need error visibility can
			// wrap the watcher.

		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

// serialPrefixes identifies device nodes worth reacting to. Everything
// else under /dev is noise.
var serialPrefixes = []string{"ttyUSB", "ttyACM", "cu.usb"}

// isRelevantEvent checks if the event should trigger a rescan.
func (w *Watcher) isRelevantEvent(event fsnotify.Event) bool {
	// Create covers plug-in, Remove covers unplug. Writes to device
	// nodes are traffic, not topology.
	if event.Op&(fsnotify.Create|fsnotify.Remove) == 0 {
		return false
	}

	base := event.Name
	if idx := strings.LastIndexByte(base, '/'); idx >= 0 {
		base = base[idx+1:]
	}
	for _, prefix := range serialPrefixes {
		if strings.HasPrefix(base, prefix) {
			return true
		}
	}
	return false
}
