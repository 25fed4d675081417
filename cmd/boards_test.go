package cmd

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/edesto/edesto/internal/catalog"
)

func init() {
	// Force plain output so rendered strings are stable across terminals.
	lipgloss.SetColorProfile(termenv.Ascii)
}

func loadTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	return cat
}

func TestRenderBoardsTable(t *testing.T) {
	cat := loadTestCatalog(t)

	out := ansi.Strip(renderBoardsTable(cat.Boards()))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, cat.Len()+1, "header plus one line per board")

	require.True(t, strings.HasPrefix(lines[0], "SLUG"))
	require.Contains(t, lines[0], "FQBN")
	require.True(t, strings.HasPrefix(lines[1], "esp32 "), "registration order starts with esp32")
	require.Contains(t, out, "arduino:avr:uno")
	require.Contains(t, out, "115200")
}

func TestRenderBoardDetail(t *testing.T) {
	cat := loadTestCatalog(t)
	board, err := cat.Lookup("esp32")
	require.NoError(t, err)

	out := renderBoardDetail(board)
	require.Contains(t, out, "ESP32")
	require.Contains(t, out, "esp32:esp32:esp32")
	require.Contains(t, out, "Capabilities")
	require.Contains(t, out, "onboard_led = 2")
	require.Contains(t, out, "Common pitfalls")
	require.Contains(t, out, "ADC2")
}

func TestRenderBoardDetailOmitsEmptyCoreURL(t *testing.T) {
	cat := loadTestCatalog(t)
	board, err := cat.Lookup("arduino-uno")
	require.NoError(t, err)

	out := renderBoardDetail(board)
	require.Contains(t, out, "Arduino Uno")
	require.Contains(t, out, "Pins")
	require.NotContains(t, out, "Core URL")
}
