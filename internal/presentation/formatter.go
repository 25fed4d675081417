package presentation

import (
	"encoding/json"
	"io"
)

// Formatter handles output formatting
type Formatter struct {
	writer io.Writer
}

// NewFormatter creates a new formatter
func NewFormatter(writer io.Writer) *Formatter {
	return &Formatter{
		writer: writer,
	}
}

// FormatBoards formats a list of boards as JSON
func (f *Formatter) FormatBoards(boards []BoardDTO) error {
	return f.encode(boards)
}

// FormatDetections formats a list of detections as JSON
func (f *Formatter) FormatDetections(detections []DetectionDTO) error {
	return f.encode(detections)
}

// FormatResult formats an arbitrary result as JSON
func (f *Formatter) FormatResult(result any) error {
	return f.encode(result)
}

func (f *Formatter) encode(v any) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
