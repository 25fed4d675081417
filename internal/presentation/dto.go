package presentation

import (
	"github.com/edesto/edesto/internal/catalog"
	"github.com/edesto/edesto/internal/detect"
)

// BoardDTO represents a catalog board for presentation
type BoardDTO struct {
	Slug         string   `json:"slug"`
	Name         string   `json:"name"`
	FQBN         string   `json:"fqbn"`
	Core         string   `json:"core"`
	CoreURL      string   `json:"core_url,omitempty"`
	BaudRate     int      `json:"baud_rate"`
	Capabilities []string `json:"capabilities"`
}

// DetectionDTO represents a detected board on a serial port
type DetectionDTO struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
	FQBN string `json:"fqbn"`
	Port string `json:"port"`
}

// FromBoard converts a catalog board to a DTO
func FromBoard(b *catalog.Board) BoardDTO {
	return BoardDTO{
		Slug:         b.Slug(),
		Name:         b.Name(),
		FQBN:         b.FQBN(),
		Core:         b.Core(),
		CoreURL:      b.CoreURL(),
		BaudRate:     b.BaudRate(),
		Capabilities: b.Capabilities(),
	}
}

// FromBoards converts a slice of catalog boards to DTOs
func FromBoards(boards []*catalog.Board) []BoardDTO {
	dtos := make([]BoardDTO, len(boards))
	for i, b := range boards {
		dtos[i] = FromBoard(b)
	}
	return dtos
}

// FromDetection converts a detection to a DTO
func FromDetection(d detect.Detection) DetectionDTO {
	return DetectionDTO{
		Slug: d.Board.Slug(),
		Name: d.Board.Name(),
		FQBN: d.Board.FQBN(),
		Port: d.Port,
	}
}

// FromDetections converts a slice of detections to DTOs
func FromDetections(ds []detect.Detection) []DetectionDTO {
	dtos := make([]DetectionDTO, len(ds))
	for i, d := range ds {
		dtos[i] = FromDetection(d)
	}
	return dtos
}
