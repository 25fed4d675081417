// Package catalog holds the canonical, immutable set of supported boards.
//
// The catalog is constructed exactly once, from the embedded boards.yaml,
// and is never mutated afterwards: lookups and enumeration are safe for
// unsynchronized concurrent use. There is no runtime API for adding or
// removing boards; the content is data shipped with the binary.
package catalog

import (
	"errors"
	"fmt"
)

// Catalog errors.
var (
	ErrNotFound      = errors.New("board not found")
	ErrDuplicateSlug = errors.New("duplicate board slug")
	ErrNilBoard      = errors.New("board cannot be nil")
)

// Catalog is the closed set of board definitions, in registration order.
type Catalog struct {
	boards []*Board
	bySlug map[string]*Board
}

// newCatalog builds a catalog from an ordered board list, rejecting
// duplicate slugs. Used by the loader; not exposed.
func newCatalog(boards []*Board) (*Catalog, error) {
	c := &Catalog{
		boards: make([]*Board, 0, len(boards)),
		bySlug: make(map[string]*Board, len(boards)),
	}
	for _, b := range boards {
		if b == nil {
			return nil, ErrNilBoard
		}
		if _, exists := c.bySlug[b.Slug()]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSlug, b.Slug())
		}
		c.boards = append(c.boards, b)
		c.bySlug[b.Slug()] = b
	}
	return c, nil
}

// Lookup returns the board with the given slug.
func (c *Catalog) Lookup(slug string) (*Board, error) {
	b, ok := c.bySlug[slug]
	if !ok {
		return nil, fmt.Errorf("%w: %q (run 'edesto boards' to list supported boards)", ErrNotFound, slug)
	}
	return b, nil
}

// LookupFQBN returns the board matching the given fully qualified board
// name, or false when no board uses it. Used by detection, where
// arduino-cli reports FQBNs rather than slugs.
func (c *Catalog) LookupFQBN(fqbn string) (*Board, bool) {
	for _, b := range c.boards {
		if b.FQBN() == fqbn {
			return b, true
		}
	}
	return nil, false
}

// Boards returns all boards in registration order. The returned slice is
// stable across calls; callers must not modify it.
func (c *Catalog) Boards() []*Board {
	return c.boards
}

// Len returns the number of boards in the catalog.
func (c *Catalog) Len() int {
	return len(c.boards)
}
