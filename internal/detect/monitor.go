package detect

import (
	"context"

	"github.com/edesto/edesto/internal/log"
	"github.com/edesto/edesto/internal/pubsub"
)

// Monitor ties the hotplug watcher to the scanner and publishes board
// attach/detach events. One goroutine owns the scan loop; any number of
// consumers subscribe through the broker.
type Monitor struct {
	scanner *Scanner
	watcher *Watcher
	broker  *pubsub.Broker[Detection]
	known   map[string]Detection
}

// NewMonitor creates a Monitor over the given scanner and watcher.
func NewMonitor(scanner *Scanner, watcher *Watcher) *Monitor {
	return &Monitor{
		scanner: scanner,
		watcher: watcher,
		broker:  pubsub.NewBroker[Detection](),
		known:   make(map[string]Detection),
	}
}

// Subscribe returns a channel of attach/detach events. The subscription
// is dropped when ctx is cancelled.
func (m *Monitor) Subscribe(ctx context.Context) <-chan pubsub.Event[Detection] {
	return m.broker.Subscribe(ctx)
}

// Run performs an initial scan, then rescans on every hotplug signal
// until ctx is cancelled. Blocks; run it in a goroutine.
func (m *Monitor) Run(ctx context.Context) error {
	changes, err := m.watcher.Start()
	if err != nil {
		return err
	}
	defer func() {
		if err := m.watcher.Stop(); err != nil {
			log.Warn(log.CatDetect, "stopping watcher", "error", err)
		}
		m.broker.Close()
	}()

	m.rescan(ctx, pubsub.ScannedEvent)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-changes:
			m.scanner.Invalidate()
			m.rescan(ctx, pubsub.AttachedEvent)
		}
	}
}

// rescan diffs the current detections against the last known set and
// publishes one event per attached or detached board. initialType is
// used for boards present on the very first scan. A single port can
// carry several detections when only the USB bridge is recognized, so
// the diff keys on port plus board.
func (m *Monitor) rescan(ctx context.Context, initialType pubsub.EventType) {
	current := make(map[string]Detection)
	for _, d := range m.scanner.Scan(ctx) {
		current[detectionKey(d)] = d
	}

	for key, d := range current {
		if _, ok := m.known[key]; !ok {
			log.Info(log.CatDetect, "board attached", "board", d.Board.Slug(), "port", d.Port)
			m.broker.Publish(initialType, d)
		}
	}
	for key, d := range m.known {
		if _, ok := current[key]; !ok {
			log.Info(log.CatDetect, "board detached", "board", d.Board.Slug(), "port", d.Port)
			m.broker.Publish(pubsub.DetachedEvent, d)
		}
	}

	m.known = current
}

func detectionKey(d Detection) string {
	return d.Port + "\x00" + d.Board.Slug()
}
