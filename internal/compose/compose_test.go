package compose

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/edesto/edesto/internal/catalog"
)

func loadCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	return cat
}

func board(t *testing.T, slug string) *catalog.Board {
	t.Helper()
	b, err := loadCatalog(t).Lookup(slug)
	require.NoError(t, err)
	return b
}

func TestCompose_SectionOrder(t *testing.T) {
	sections := Compose(board(t, "esp32"), "/dev/ttyUSB0")

	names := make([]string, len(sections))
	for i, s := range sections {
		names[i] = s.Name()
	}
	require.Equal(t, []string{"header", "commands", "development-loop", "validation", "board-info"}, names)
}

func TestRender_RequiredContent(t *testing.T) {
	doc := Render(board(t, "esp32"), "/dev/ttyUSB0")

	require.Contains(t, doc, "esp32:esp32:esp32")
	require.Contains(t, doc, "/dev/ttyUSB0")
	require.Contains(t, doc, "115200")
	require.Contains(t, doc, "[READY]")
	require.Contains(t, doc, "[ERROR]")
	require.Contains(t, doc, "ADC2")
}

func TestRender_HeaderStructure(t *testing.T) {
	doc := Render(board(t, "esp32"), "/dev/ttyUSB0")

	require.True(t, strings.HasPrefix(doc, "# Embedded Development: ESP32\n"))
	require.Contains(t, doc, "\n## Hardware\n")
	require.Contains(t, doc, "\n## Commands\n")
	require.Contains(t, doc, "\n## Development Loop\n")
	require.Contains(t, doc, "\n## Validation\n")
	require.Contains(t, doc, "\n## ESP32-Specific Information\n")
}

func TestRender_HardwareBlock(t *testing.T) {
	doc := Render(board(t, "esp32"), "/dev/cu.usbserial-0001")

	require.Contains(t, doc, "- Board: ESP32")
	require.Contains(t, doc, "- FQBN: esp32:esp32:esp32")
	require.Contains(t, doc, "- Port: /dev/cu.usbserial-0001")
	require.Contains(t, doc, "- Baud rate: 115200")
}

func TestRender_CommandTemplates(t *testing.T) {
	doc := Render(board(t, "esp32"), "/dev/ttyUSB0")

	require.Contains(t, doc, "arduino-cli compile --fqbn esp32:esp32:esp32 .")
	require.Contains(t, doc, "arduino-cli upload --fqbn esp32:esp32:esp32 --port /dev/ttyUSB0 .")
}

func TestRender_ValidationSnippetUsesBoardRate(t *testing.T) {
	doc := Render(board(t, "arduino-uno"), "/dev/ttyACM0")

	require.Contains(t, doc, "ser = serial.Serial('/dev/ttyACM0', 9600, timeout=1)")
	require.Contains(t, doc, "Serial.begin(9600)")
}

func TestRender_CapabilityGating(t *testing.T) {
	// arduino-uno has capability tags but no snippets: the Capabilities
	// subsection must be absent entirely, not rendered empty.
	doc := Render(board(t, "arduino-uno"), "/dev/ttyUSB0")

	require.NotContains(t, doc, "WiFi.h")
	require.NotContains(t, doc, "### Capabilities")
}

func TestRender_CapabilitiesPresent(t *testing.T) {
	doc := Render(board(t, "esp32"), "/dev/ttyUSB0")

	require.Contains(t, doc, "### Capabilities")
	require.Contains(t, doc, "- Wifi: `#include <WiFi.h>`")
	require.Contains(t, doc, "- Bluetooth: `#include <BluetoothSerial.h>`")
	require.Contains(t, doc, "- Http Server: `#include <WebServer.h>`")
}

func TestRender_DescriptiveTagsSkipped(t *testing.T) {
	// esp32c6 declares wifi6/zigbee/thread without snippets; they must not
	// surface as capability lines.
	doc := Render(board(t, "esp32c6"), "/dev/ttyUSB0")

	require.Contains(t, doc, "### Capabilities")
	require.NotContains(t, doc, "- Wifi6:")
	require.NotContains(t, doc, "- Zigbee:")
	require.NotContains(t, doc, "- Thread:")
}

func TestRender_SubsectionPresenceForAllBoards(t *testing.T) {
	cat := loadCatalog(t)

	for _, b := range cat.Boards() {
		doc := Render(b, "/dev/ttyUSB0")

		require.Equal(t, b.HasSnippets(), strings.Contains(doc, "### Capabilities"),
			"%s capabilities gating", b.Slug())
		require.Equal(t, len(b.PinNotes()) > 0, strings.Contains(doc, "### Pin Reference"),
			"%s pin reference gating", b.Slug())
		require.Equal(t, len(b.Pitfalls()) > 0, strings.Contains(doc, "### Common Pitfalls"),
			"%s pitfalls gating", b.Slug())
	}
}

func TestRender_SubsectionOrder(t *testing.T) {
	doc := Render(board(t, "esp32"), "/dev/ttyUSB0")

	caps := strings.Index(doc, "### Capabilities")
	pins := strings.Index(doc, "### Pin Reference")
	pitfalls := strings.Index(doc, "### Common Pitfalls")

	require.Greater(t, caps, 0)
	require.Greater(t, pins, caps)
	require.Greater(t, pitfalls, pins)
}

func TestRender_CapabilityOrderFollowsDeclaration(t *testing.T) {
	doc := Render(board(t, "esp32"), "/dev/ttyUSB0")

	// esp32 declares wifi before bluetooth before http_server.
	wifi := strings.Index(doc, "- Wifi:")
	bt := strings.Index(doc, "- Bluetooth:")
	http := strings.Index(doc, "- Http Server:")

	require.Greater(t, wifi, 0)
	require.Greater(t, bt, wifi)
	require.Greater(t, http, bt)
}

func TestCapabilityLabel(t *testing.T) {
	cases := map[string]string{
		"wifi":        "Wifi",
		"http_server": "Http Server",
		"ota":         "Ota",
		"ble":         "Ble",
	}
	for tag, want := range cases {
		require.Equal(t, want, capabilityLabel(tag))
	}
}

func TestRender_Deterministic(t *testing.T) {
	b := board(t, "esp32")

	first := Render(b, "/dev/ttyUSB0")
	second := Render(b, "/dev/ttyUSB0")

	require.Equal(t, first, second)
}
