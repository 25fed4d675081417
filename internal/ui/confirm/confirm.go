// Package confirm provides a yes/no prompt component.
package confirm

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/edesto/edesto/internal/ui/styles"
)

// Model holds the confirmation prompt state.
type Model struct {
	question string
	// body is optional content shown above the prompt (e.g. a diff).
	body     string
	accepted bool
	done     bool
}

// New creates a prompt with the given question.
func New(question string) Model {
	return Model{question: question}
}

// SetBody sets content rendered above the question.
func (m Model) SetBody(body string) Model {
	m.body = body
	return m
}

// Accepted reports whether the user answered yes.
func (m Model) Accepted() bool {
	return m.accepted
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
		case "y", "Y", "enter":
			m.accepted = true
			m.done = true
			return m, tea.Quit
		case "n", "N", "q", "esc", "ctrl+c":
			m.accepted = false
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the prompt.
func (m Model) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	if m.body != "" {
		b.WriteString(m.body)
		if !strings.HasSuffix(m.body, "\n") {
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(styles.TitleStyle.Render(m.question))
	b.WriteString(" ")
	b.WriteString(styles.MutedStyle.Render("[y/N]"))
	b.WriteString("\n")
	return b.String()
}

// Ask runs the prompt as a standalone program and returns the answer.
func Ask(question, body string) (bool, error) {
	p := tea.NewProgram(New(question).SetBody(body))
	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("running prompt: %w", err)
	}
	m, ok := final.(Model)
	if !ok {
		return false, nil
	}
	return m.Accepted(), nil
}
