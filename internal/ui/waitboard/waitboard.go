// Package waitboard renders the live view for `edesto detect --watch`:
// a spinner while idle and a scrolling log of attach/detach events.
package waitboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/edesto/edesto/internal/detect"
	"github.com/edesto/edesto/internal/pubsub"
	"github.com/edesto/edesto/internal/ui/styles"
)

// maxLines bounds the event log so long watches don't grow unbounded.
const maxLines = 50

// EventMsg wraps a detection event for the update loop.
type EventMsg pubsub.Event[detect.Detection]

// ClosedMsg signals that the event stream ended.
type ClosedMsg struct{}

// Model holds the watch view state.
type Model struct {
	spinner spinner.Model
	events  <-chan pubsub.Event[detect.Detection]
	lines   []string
	done    bool
}

// New creates the watch model over a subscription channel.
func New(events <-chan pubsub.Event[detect.Detection]) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.AccentColor)
	return Model{spinner: s, events: events}
}

// Lines returns the accumulated event log.
func (m Model) Lines() []string {
	return m.lines
}

func waitForEvent(events <-chan pubsub.Event[detect.Detection]) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return ClosedMsg{}
		}
		return EventMsg(ev)
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, waitForEvent(m.events))
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.done = true
			return m, tea.Quit
		}

	case EventMsg:
		m.lines = append(m.lines, formatEvent(pubsub.Event[detect.Detection](msg)))
		if len(m.lines) > maxLines {
			m.lines = m.lines[len(m.lines)-maxLines:]
		}
		return m, waitForEvent(m.events)

	case ClosedMsg:
		m.done = true
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the watch view.
func (m Model) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n\n", m.spinner.View(), styles.TitleStyle.Render("Watching for boards")))
	for _, line := range m.lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.MutedStyle.Render("q: quit"))
	b.WriteString("\n")
	return b.String()
}

func formatEvent(ev pubsub.Event[detect.Detection]) string {
	ts := styles.MutedStyle.Render(ev.Timestamp.Format("15:04:05"))
	board := fmt.Sprintf("%s (%s)", ev.Payload.Board.Name(), ev.Payload.Port)

	switch ev.Type {
	case pubsub.DetachedEvent:
		return fmt.Sprintf("%s %s %s", ts, styles.ErrorStyle.Render("detached"), board)
	case pubsub.ScannedEvent:
		return fmt.Sprintf("%s %s %s", ts, styles.AccentStyle.Render("present"), board)
	default:
		return fmt.Sprintf("%s %s %s", ts, styles.AccentStyle.Render("attached"), board)
	}
}
