package catalog

// Board describes one supported hardware target: its toolchain identity,
// serial settings, capabilities, and the notes surfaced in generated
// documents. Boards are immutable once built; all fields are set through
// the Builder, which enforces the catalog invariants.
type Board struct {
	slug         string            // unique identifier, e.g. "esp32"
	name         string            // human-readable name, e.g. "ESP32"
	fqbn         string            // vendor:architecture:variant, e.g. "esp32:esp32:esp32"
	core         string            // platform family shared by related boards, e.g. "esp32:esp32"
	coreURL      string            // board manager index URL; empty for bundled cores
	baudRate     int               // default serial link speed in bits/second
	capabilities []string          // ordered capability tags
	pins         map[string]int    // logical pin name -> pin number
	pinNotes     []string          // ordered, human-facing pin annotations
	pitfalls     []string          // ordered known gotchas
	snippets     map[string]string // capability tag -> include line; keys are a subset of capabilities
}

// newBoard creates a board (used by Builder after validation).
func newBoard(b Builder) *Board {
	return &Board{
		slug:         b.slug,
		name:         b.name,
		fqbn:         b.fqbn,
		core:         b.core,
		coreURL:      b.coreURL,
		baudRate:     b.baudRate,
		capabilities: b.capabilities,
		pins:         b.pins,
		pinNotes:     b.pinNotes,
		pitfalls:     b.pitfalls,
		snippets:     b.snippets,
	}
}

// Slug returns the unique board identifier.
func (b *Board) Slug() string {
	return b.slug
}

// Name returns the human-readable board name.
func (b *Board) Name() string {
	return b.name
}

// FQBN returns the fully qualified board name (vendor:architecture:variant).
func (b *Board) FQBN() string {
	return b.fqbn
}

// Core returns the platform family identifier.
func (b *Board) Core() string {
	return b.core
}

// CoreURL returns the board manager index URL for installing the core.
// Empty for cores bundled with arduino-cli.
func (b *Board) CoreURL() string {
	return b.coreURL
}

// BaudRate returns the default serial communication rate.
func (b *Board) BaudRate() int {
	return b.baudRate
}

// Capabilities returns the ordered capability tags. Tags are informational
// unless they also have a snippet; see Snippet.
func (b *Board) Capabilities() []string {
	return b.capabilities
}

// Pins returns the logical pin map.
func (b *Board) Pins() map[string]int {
	return b.pins
}

// PinNotes returns the ordered pin annotations.
func (b *Board) PinNotes() []string {
	return b.pinNotes
}

// Pitfalls returns the ordered known gotchas.
func (b *Board) Pitfalls() []string {
	return b.pitfalls
}

// Snippet returns the include line for a capability tag, if one exists.
func (b *Board) Snippet(capability string) (string, bool) {
	s, ok := b.snippets[capability]
	return s, ok
}

// HasSnippets reports whether any capability has an associated include line.
func (b *Board) HasSnippets() bool {
	return len(b.snippets) > 0
}
