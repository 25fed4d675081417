package picker

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func testOptions() []Option {
	return []Option{
		{Label: "ESP32", Value: "esp32", Detail: "esp32:esp32:esp32"},
		{Label: "Arduino Uno", Value: "arduino-uno", Detail: "arduino:avr:uno"},
		{Label: "Teensy 4.1", Value: "teensy41", Detail: "teensy:avr:teensy41"},
	}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestPicker_New(t *testing.T) {
	m := New("Select a board", testOptions())

	assert.Equal(t, "Select a board", m.title, "expected title to be set")
	assert.Len(t, m.options, 3, "expected 3 options")
	assert.Equal(t, 0, m.selected, "expected default selection at 0")
}

func TestPicker_SetSelected(t *testing.T) {
	m := New("Test", testOptions())

	m = m.SetSelected(2)
	assert.Equal(t, 2, m.selected, "expected selection at index 2")

	m = m.SetSelected(10)
	assert.Equal(t, 2, m.selected, "expected selection unchanged for invalid index")

	m = m.SetSelected(-1)
	assert.Equal(t, 2, m.selected, "expected selection unchanged for negative index")
}

func TestPicker_Navigate(t *testing.T) {
	m := New("Test", testOptions())

	m, _ = update(m, keyMsg("j"))
	assert.Equal(t, 1, m.selected, "expected selection at 1 after 'j'")

	m, _ = update(m, keyMsg("down"))
	assert.Equal(t, 2, m.selected, "expected selection at 2 after down arrow")

	m, _ = update(m, keyMsg("j"))
	assert.Equal(t, 2, m.selected, "expected selection clamped at bottom")

	m, _ = update(m, keyMsg("k"))
	m, _ = update(m, keyMsg("up"))
	m, _ = update(m, keyMsg("k"))
	assert.Equal(t, 0, m.selected, "expected selection clamped at top")
}

func TestPicker_EnterSelects(t *testing.T) {
	m := New("Test", testOptions())

	m, _ = update(m, keyMsg("j"))
	m, cmd := update(m, keyMsg("enter"))

	assert.True(t, m.done)
	assert.False(t, m.Cancelled())
	assert.Equal(t, "arduino-uno", m.Selected().Value)
	assert.NotNil(t, cmd, "enter should quit the program")
}

func TestPicker_EscCancels(t *testing.T) {
	m := New("Test", testOptions())

	m, cmd := update(m, keyMsg("esc"))
	assert.True(t, m.Cancelled())
	assert.NotNil(t, cmd, "esc should quit the program")
}

func TestPicker_ViewShowsOptions(t *testing.T) {
	m := New("Select a board", testOptions())

	view := m.View()
	assert.Contains(t, view, "Select a board")
	assert.Contains(t, view, "ESP32")
	assert.Contains(t, view, "Arduino Uno")
	assert.Contains(t, view, ">")
}

func TestPicker_Selected_Empty(t *testing.T) {
	m := New("Test", []Option{})
	assert.Equal(t, Option{}, m.Selected(), "expected empty option for empty picker")
}
