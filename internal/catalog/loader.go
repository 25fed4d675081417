package catalog

import (
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// ErrInvalidCatalog marks a construction-time data error: the embedded
// board definitions violate an invariant. This is a programming error, not
// a user error, and callers must treat it as fatal.
var ErrInvalidCatalog = errors.New("invalid board catalog")

// catalogFile is the root structure of boards.yaml.
type catalogFile struct {
	Boards []boardDef `yaml:"boards"`
}

// boardDef defines a single board entry in YAML.
type boardDef struct {
	Slug         string            `yaml:"slug"`
	Name         string            `yaml:"name"`
	FQBN         string            `yaml:"fqbn"`
	Core         string            `yaml:"core"`
	CoreURL      string            `yaml:"core_url"`
	BaudRate     int               `yaml:"baud_rate"`
	Capabilities []string          `yaml:"capabilities"`
	Pins         map[string]int    `yaml:"pins"`
	PinNotes     []string          `yaml:"pin_notes"`
	Pitfalls     []string          `yaml:"pitfalls"`
	Includes     map[string]string `yaml:"includes"`
}

// Load parses and validates board definitions from the given filesystem.
// It is the pure factory for the catalog: every call re-reads the data and
// returns a fresh, fully validated, immutable catalog.
func Load(fsys fs.FS, path string) (*Catalog, error) {
	content, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrInvalidCatalog, path, err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %w", ErrInvalidCatalog, path, err)
	}
	if len(file.Boards) == 0 {
		return nil, fmt.Errorf("%w: %s contains no boards", ErrInvalidCatalog, path)
	}

	boards := make([]*Board, 0, len(file.Boards))
	for _, def := range file.Boards {
		board, err := buildBoardFromDef(def)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
		}
		boards = append(boards, board)
	}

	cat, err := newCatalog(boards)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}
	return cat, nil
}

// Default loads the catalog from the embedded board definitions.
func Default() (*Catalog, error) {
	return Load(DataFS(), dataPath)
}

// buildBoardFromDef converts a YAML definition into a validated board.
func buildBoardFromDef(def boardDef) (*Board, error) {
	return NewBuilder(def.Slug).
		Name(def.Name).
		FQBN(def.FQBN).
		Core(def.Core).
		CoreURL(def.CoreURL).
		BaudRate(def.BaudRate).
		Capabilities(def.Capabilities...).
		Pins(def.Pins).
		PinNotes(def.PinNotes...).
		Pitfalls(def.Pitfalls...).
		Snippets(def.Includes).
		Build()
}
