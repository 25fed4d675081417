// Package compose renders the generated configuration document for one
// (board, port) pair.
//
// Composition is a pure, deterministic mapping: each section is produced by
// a function of only the board and port, sections appear in a fixed order,
// and a section whose source data is empty is omitted entirely. Two calls
// with identical inputs yield byte-identical output, which is what lets the
// caller write the same text into two artifacts and rely on them comparing
// equal.
package compose

import (
	"fmt"
	"strings"

	"github.com/edesto/edesto/internal/catalog"
)

// Section is one named block of the rendered document.
type Section struct {
	name string
	body string
}

// Name returns the section identifier (stable, for logging and tests).
func (s Section) Name() string {
	return s.name
}

// Body returns the section text.
func (s Section) Body() string {
	return s.body
}

// CapabilityPair is one rendered capability: a display label and the code
// include line for it.
type CapabilityPair struct {
	Label   string
	Snippet string
}

// Compose produces the ordered sections of the document. The order is
// fixed: header, commands, development loop, validation, board-specific
// information. Board content never reorders sections.
func Compose(board *catalog.Board, port string) []Section {
	return []Section{
		{name: "header", body: header(board, port)},
		{name: "commands", body: commands(board, port)},
		{name: "development-loop", body: devLoop(board, port)},
		{name: "validation", body: validation(board, port)},
		{name: "board-info", body: boardInfo(board)},
	}
}

// Render joins the composed sections into the final document text.
func Render(board *catalog.Board, port string) string {
	sections := Compose(board, port)
	bodies := make([]string, len(sections))
	for i, s := range sections {
		bodies[i] = s.body
	}
	return strings.Join(bodies, "\n")
}

func header(board *catalog.Board, port string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Embedded Development: %s\n", board.Name())
	b.WriteString("\n")
	fmt.Fprintf(&b, "You are developing firmware for a %s connected via USB.\n", board.Name())
	b.WriteString("\n")
	b.WriteString("## Hardware\n")
	fmt.Fprintf(&b, "- Board: %s\n", board.Name())
	fmt.Fprintf(&b, "- FQBN: %s\n", board.FQBN())
	fmt.Fprintf(&b, "- Port: %s\n", port)
	b.WriteString("- Framework: Arduino\n")
	fmt.Fprintf(&b, "- Baud rate: %d", board.BaudRate())
	return b.String()
}

func commands(board *catalog.Board, port string) string {
	var b strings.Builder
	b.WriteString("\n## Commands\n")
	b.WriteString("\n")
	b.WriteString("Compile:\n")
	b.WriteString("```\n")
	fmt.Fprintf(&b, "arduino-cli compile --fqbn %s .\n", board.FQBN())
	b.WriteString("```\n")
	b.WriteString("\n")
	b.WriteString("Flash:\n")
	b.WriteString("```\n")
	fmt.Fprintf(&b, "arduino-cli upload --fqbn %s --port %s .\n", board.FQBN(), port)
	b.WriteString("```")
	return b.String()
}

func devLoop(board *catalog.Board, port string) string {
	var b strings.Builder
	b.WriteString("\n## Development Loop\n")
	b.WriteString("\n")
	b.WriteString("Every time you change code, follow this exact sequence:\n")
	b.WriteString("\n")
	b.WriteString("1. Edit the .ino file (or .cpp/.h files)\n")
	fmt.Fprintf(&b, "2. Compile: `arduino-cli compile --fqbn %s .`\n", board.FQBN())
	b.WriteString("3. If compile fails, read the errors, fix them, and recompile. Do NOT flash broken code.\n")
	fmt.Fprintf(&b, "4. Flash: `arduino-cli upload --fqbn %s --port %s .`\n", board.FQBN(), port)
	b.WriteString("5. Wait 3 seconds for the board to reboot.\n")
	b.WriteString("6. **Validate your changes** using the method below.\n")
	b.WriteString("7. If validation fails, go back to step 1 and iterate.")
	return b.String()
}

func validation(board *catalog.Board, port string) string {
	var b strings.Builder
	b.WriteString("\n## Validation\n")
	b.WriteString("\n")
	b.WriteString("This is how you verify your code is actually working on the device. Always validate after flashing.\n")
	b.WriteString("\n")
	b.WriteString("### Read Serial Output\n")
	b.WriteString("\n")
	b.WriteString("Use this Python snippet to capture serial output from the board:\n")
	b.WriteString("\n")
	b.WriteString("```python\n")
	b.WriteString("import serial, time\n")
	fmt.Fprintf(&b, "ser = serial.Serial('%s', %d, timeout=1)\n", port, board.BaudRate())
	b.WriteString("time.sleep(3)  # Wait for boot\n")
	b.WriteString("lines = []\n")
	b.WriteString("start = time.time()\n")
	b.WriteString("while time.time() - start < 10:  # Read for 10 seconds\n")
	b.WriteString("    line = ser.readline().decode('utf-8', errors='ignore').strip()\n")
	b.WriteString("    if line:\n")
	b.WriteString("        lines.append(line)\n")
	b.WriteString("        print(line)\n")
	b.WriteString("ser.close()\n")
	b.WriteString("```\n")
	b.WriteString("\n")
	b.WriteString("Save this as `read_serial.py` and run with `python read_serial.py`. Parse the output to check if your firmware is behaving correctly.\n")
	b.WriteString("\n")
	b.WriteString("**Important serial conventions for your firmware:**\n")
	fmt.Fprintf(&b, "- Always use `Serial.begin(%d)` in setup()\n", board.BaudRate())
	b.WriteString("- Use `Serial.println()` (not `Serial.print()`) so each message is a complete line\n")
	b.WriteString("- Print `[READY]` when initialization is complete\n")
	b.WriteString("- Print `[ERROR] <description>` for any error conditions\n")
	b.WriteString("- Use tags for structured output: `[SENSOR] temp=23.4`, `[STATUS] running`")
	return b.String()
}

// boardInfo renders the board-specific section. The section header always
// appears; the three subsections are each omitted entirely when their
// source data is empty.
func boardInfo(board *catalog.Board) string {
	parts := []string{fmt.Sprintf("\n## %s-Specific Information", board.Name())}

	if pairs := capabilityPairs(board); len(pairs) > 0 {
		parts = append(parts, "\n### Capabilities")
		for _, p := range pairs {
			parts = append(parts, fmt.Sprintf("- %s: `%s`", p.Label, p.Snippet))
		}
	}

	if notes := board.PinNotes(); len(notes) > 0 {
		parts = append(parts, "\n### Pin Reference")
		for _, note := range notes {
			parts = append(parts, "- "+note)
		}
	}

	if pitfalls := board.Pitfalls(); len(pitfalls) > 0 {
		parts = append(parts, "\n### Common Pitfalls")
		for _, pitfall := range pitfalls {
			parts = append(parts, "- "+pitfall)
		}
	}

	return strings.Join(parts, "\n")
}

// capabilityPairs produces one (label, snippet) pair per capability tag
// that has a snippet, in capability declaration order. Tags without a
// snippet are descriptive-only and skipped.
func capabilityPairs(board *catalog.Board) []CapabilityPair {
	var pairs []CapabilityPair
	for _, tag := range board.Capabilities() {
		snippet, ok := board.Snippet(tag)
		if !ok {
			continue
		}
		pairs = append(pairs, CapabilityPair{Label: capabilityLabel(tag), Snippet: snippet})
	}
	return pairs
}

// capabilityLabel turns a capability tag into a display label:
// "http_server" becomes "Http Server".
func capabilityLabel(tag string) string {
	words := strings.Split(tag, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
