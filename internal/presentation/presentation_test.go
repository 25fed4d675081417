package presentation_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/edesto/edesto/internal/catalog"
	"github.com/edesto/edesto/internal/detect"
	"github.com/edesto/edesto/internal/presentation"
)

func TestFromBoard(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)

	board, err := cat.Lookup("esp32")
	require.NoError(t, err)

	dto := presentation.FromBoard(board)
	require.Equal(t, "esp32", dto.Slug)
	require.Equal(t, "ESP32", dto.Name)
	require.Equal(t, "esp32:esp32:esp32", dto.FQBN)
	require.Equal(t, 115200, dto.BaudRate)
	require.NotEmpty(t, dto.Capabilities)
}

func TestFormatBoardsEmitsIndentedJSON(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)

	var buf bytes.Buffer
	f := presentation.NewFormatter(&buf)
	require.NoError(t, f.FormatBoards(presentation.FromBoards(cat.Boards())))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, cat.Len())
	require.Equal(t, "esp32", decoded[0]["slug"], "registration order preserved")
	require.Contains(t, buf.String(), "\n  ", "output should be indented")
}

func TestFormatDetections(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)
	board, err := cat.Lookup("arduino-uno")
	require.NoError(t, err)

	var buf bytes.Buffer
	f := presentation.NewFormatter(&buf)
	dtos := presentation.FromDetections([]detect.Detection{{Board: board, Port: "/dev/ttyACM0"}})
	require.NoError(t, f.FormatDetections(dtos))

	var decoded []presentation.DetectionDTO
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	require.Equal(t, "arduino-uno", decoded[0].Slug)
	require.Equal(t, "/dev/ttyACM0", decoded[0].Port)
}
