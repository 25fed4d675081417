package sqlite

import (
	"encoding/json"
	"time"

	"github.com/edesto/edesto/internal/history"
)

// GenerationModel represents the database row for the generations table.
// Fields map directly to SQL columns with Unix timestamps for time values.
type GenerationModel struct {
	ID        int64
	GUID      string
	BoardSlug string
	FQBN      string
	Port      string
	Checksum  string
	Artifacts string // JSON encoded
	CreatedAt int64  // Unix timestamp
}

// toGenerationModel converts a domain Generation to a database model.
func toGenerationModel(g *history.Generation) *GenerationModel {
	artifacts := "[]"
	if len(g.Artifacts()) > 0 {
		if data, err := json.Marshal(g.Artifacts()); err == nil {
			artifacts = string(data)
		}
	}
	return &GenerationModel{
		ID:        g.ID(),
		GUID:      g.GUID(),
		BoardSlug: g.BoardSlug(),
		FQBN:      g.FQBN(),
		Port:      g.Port(),
		Checksum:  g.Checksum(),
		Artifacts: artifacts,
		CreatedAt: g.CreatedAt().Unix(),
	}
}

// toDomain converts a database model to a domain Generation.
func (m *GenerationModel) toDomain() *history.Generation {
	var artifacts []string
	_ = json.Unmarshal([]byte(m.Artifacts), &artifacts)

	return history.ReconstituteGeneration(
		m.ID,
		m.GUID,
		m.BoardSlug,
		m.FQBN,
		m.Port,
		m.Checksum,
		artifacts,
		time.Unix(m.CreatedAt, 0),
	)
}
