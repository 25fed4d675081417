// Package picker provides an interactive board selection component.
package picker

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/edesto/edesto/internal/ui/styles"
)

// Option represents a picker option with label and value.
type Option struct {
	Label string
	Value string
	// Detail is shown dimmed after the label (e.g. the FQBN).
	Detail string
}

// Model holds the picker state.
type Model struct {
	title     string
	options   []Option
	selected  int
	done      bool
	cancelled bool
}

// New creates a new picker with the given title and options.
func New(title string, options []Option) Model {
	return Model{
		title:    title,
		options:  options,
		selected: 0,
	}
}

// SetSelected sets the initially selected index.
func (m Model) SetSelected(index int) Model {
	if index >= 0 && index < len(m.options) {
		m.selected = index
	}
	return m
}

// Selected returns the currently selected option.
func (m Model) Selected() Option {
	if m.selected >= 0 && m.selected < len(m.options) {
		return m.options[m.selected]
	}
	return Option{}
}

// Cancelled reports whether the user dismissed the picker.
func (m Model) Cancelled() bool {
	return m.cancelled
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down", "ctrl+n":
			if m.selected < len(m.options)-1 {
				m.selected++
			}
		case "k", "up", "ctrl+p":
			if m.selected > 0 {
				m.selected--
			}
		case "enter":
			m.done = true
			return m, tea.Quit
		case "q", "esc", "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the picker.
func (m Model) View() string {
	if m.done || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(m.title))
	b.WriteString("\n\n")

	for i, opt := range m.options {
		label := opt.Label
		if opt.Detail != "" {
			label = fmt.Sprintf("%s %s", label, styles.SecondaryStyle.Render(opt.Detail))
		}
		if i == m.selected {
			b.WriteString(styles.SelectionIndicatorStyle.Render("> "))
			b.WriteString(lipgloss.NewStyle().Bold(true).Render(label))
		} else {
			b.WriteString("  ")
			b.WriteString(styles.PrimaryStyle.Render(label))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.MutedStyle.Render("j/k: move • enter: select • q: cancel"))
	b.WriteString("\n")
	return b.String()
}

// Choose runs the picker as a standalone program and returns the chosen
// option. The second return is false when the user cancelled.
func Choose(title string, options []Option) (Option, bool, error) {
	p := tea.NewProgram(New(title, options))
	final, err := p.Run()
	if err != nil {
		return Option{}, false, fmt.Errorf("running picker: %w", err)
	}
	m, ok := final.(Model)
	if !ok || m.cancelled {
		return Option{}, false, nil
	}
	return m.Selected(), true, nil
}
