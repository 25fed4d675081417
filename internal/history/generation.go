// Package history records past configuration generations so they can be
// listed and audited later.
package history

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Generation is one recorded run of document generation: which board,
// which port, what was written and its content checksum.
type Generation struct {
	id        int64
	guid      string
	boardSlug string
	fqbn      string
	port      string
	checksum  string
	artifacts []string
	createdAt time.Time
}

// NewGeneration creates a Generation for a freshly written document.
// The GUID is assigned here; the ID is assigned on save.
func NewGeneration(boardSlug, fqbn, port, checksum string, artifacts []string) *Generation {
	return &Generation{
		guid:      uuid.NewString(),
		boardSlug: boardSlug,
		fqbn:      fqbn,
		port:      port,
		checksum:  checksum,
		artifacts: artifacts,
		createdAt: time.Now(),
	}
}

// ReconstituteGeneration rebuilds a Generation from persisted state.
func ReconstituteGeneration(id int64, guid, boardSlug, fqbn, port, checksum string, artifacts []string, createdAt time.Time) *Generation {
	return &Generation{
		id:        id,
		guid:      guid,
		boardSlug: boardSlug,
		fqbn:      fqbn,
		port:      port,
		checksum:  checksum,
		artifacts: artifacts,
		createdAt: createdAt,
	}
}

// ID returns the database ID (0 until saved).
func (g *Generation) ID() int64 { return g.id }

// SetID assigns the database ID after insert.
func (g *Generation) SetID(id int64) { g.id = id }

// GUID returns the stable unique identifier.
func (g *Generation) GUID() string { return g.guid }

// BoardSlug returns the board the document was generated for.
func (g *Generation) BoardSlug() string { return g.boardSlug }

// FQBN returns the board's fully qualified board name at generation time.
func (g *Generation) FQBN() string { return g.fqbn }

// Port returns the serial port used in the document.
func (g *Generation) Port() string { return g.port }

// Checksum returns the sha256 hex digest of the rendered document.
func (g *Generation) Checksum() string { return g.checksum }

// Artifacts returns the file paths that were written.
func (g *Generation) Artifacts() []string { return g.artifacts }

// CreatedAt returns when the generation was recorded.
func (g *Generation) CreatedAt() time.Time { return g.createdAt }

// Repository persists generations.
type Repository interface {
	// Save inserts a new generation and assigns its ID.
	Save(g *Generation) error

	// List returns the most recent generations, newest first.
	// A limit of 0 means no limit.
	List(limit int) ([]*Generation, error)

	// FindByGUID returns the generation with the given GUID.
	FindByGUID(guid string) (*Generation, error)
}

// NotFoundError indicates no generation matched the lookup.
type NotFoundError struct {
	GUID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("generation not found: %s", e.GUID)
}
