package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Builder validation errors. These are construction-time data errors: any
// one of them means the catalog content itself is wrong and the process
// must not start.
var (
	ErrEmptySlug            = errors.New("board slug cannot be empty")
	ErrEmptyName            = errors.New("board name cannot be empty")
	ErrEmptyCore            = errors.New("board core cannot be empty")
	ErrInvalidFQBN          = errors.New("board fqbn must have exactly three non-empty colon-separated segments")
	ErrInvalidBaudRate      = errors.New("board baud rate must be positive")
	ErrUndeclaredCapability = errors.New("snippet key is not a declared capability")
)

// Builder provides a fluent API for creating boards.
type Builder struct {
	slug         string
	name         string
	fqbn         string
	core         string
	coreURL      string
	baudRate     int
	capabilities []string
	pins         map[string]int
	pinNotes     []string
	pitfalls     []string
	snippets     map[string]string
}

// NewBuilder creates a board builder for the given slug.
func NewBuilder(slug string) *Builder {
	return &Builder{slug: slug}
}

// Name sets the human-readable name.
func (b *Builder) Name(n string) *Builder {
	b.name = n
	return b
}

// FQBN sets the fully qualified board name.
func (b *Builder) FQBN(f string) *Builder {
	b.fqbn = f
	return b
}

// Core sets the platform family identifier.
func (b *Builder) Core(c string) *Builder {
	b.core = c
	return b
}

// CoreURL sets the board manager index URL.
func (b *Builder) CoreURL(u string) *Builder {
	b.coreURL = u
	return b
}

// BaudRate sets the default serial communication rate.
func (b *Builder) BaudRate(r int) *Builder {
	b.baudRate = r
	return b
}

// Capabilities sets the ordered capability tags.
func (b *Builder) Capabilities(tags ...string) *Builder {
	b.capabilities = tags
	return b
}

// Pins sets the logical pin map.
func (b *Builder) Pins(pins map[string]int) *Builder {
	b.pins = pins
	return b
}

// PinNotes sets the ordered pin annotations.
func (b *Builder) PinNotes(notes ...string) *Builder {
	b.pinNotes = notes
	return b
}

// Pitfalls sets the ordered known gotchas.
func (b *Builder) Pitfalls(pitfalls ...string) *Builder {
	b.pitfalls = pitfalls
	return b
}

// Snippets sets the capability-to-include-line map. Every key must also be
// declared via Capabilities; Build enforces this.
func (b *Builder) Snippets(snippets map[string]string) *Builder {
	b.snippets = snippets
	return b
}

// Build creates the board, validating every catalog invariant.
func (b *Builder) Build() (*Board, error) {
	if b.slug == "" {
		return nil, ErrEmptySlug
	}
	if b.name == "" {
		return nil, fmt.Errorf("%w: %s", ErrEmptyName, b.slug)
	}
	if b.core == "" {
		return nil, fmt.Errorf("%w: %s", ErrEmptyCore, b.slug)
	}
	if err := validateFQBN(b.fqbn); err != nil {
		return nil, fmt.Errorf("%s: %w", b.slug, err)
	}
	if b.baudRate <= 0 {
		return nil, fmt.Errorf("%w: %s has %d", ErrInvalidBaudRate, b.slug, b.baudRate)
	}

	declared := make(map[string]bool, len(b.capabilities))
	for _, tag := range b.capabilities {
		declared[tag] = true
	}
	for key := range b.snippets {
		if !declared[key] {
			return nil, fmt.Errorf("%w: %s declares snippet for %q", ErrUndeclaredCapability, b.slug, key)
		}
	}

	return newBoard(*b), nil
}

// validateFQBN checks the vendor:architecture:variant shape.
func validateFQBN(fqbn string) error {
	segments := strings.Split(fqbn, ":")
	if len(segments) != 3 {
		return fmt.Errorf("%w: %q", ErrInvalidFQBN, fqbn)
	}
	for _, s := range segments {
		if s == "" {
			return fmt.Errorf("%w: %q", ErrInvalidFQBN, fqbn)
		}
	}
	return nil
}
