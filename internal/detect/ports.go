package detect

import (
	"path/filepath"
	"sort"
)

// DefaultPortGlobs are the serial device patterns scanned when the config
// does not override them. Covers Linux USB serial, CDC ACM, and macOS.
var DefaultPortGlobs = []string{
	"/dev/ttyUSB*",
	"/dev/ttyACM*",
	"/dev/cu.usb*",
}

// ListPorts returns the serial ports matching the given glob patterns,
// deduplicated and sorted. Nil or empty globs fall back to the defaults.
// Malformed patterns are skipped.
func ListPorts(globs []string) []string {
	if len(globs) == 0 {
		globs = DefaultPortGlobs
	}

	seen := make(map[string]struct{})
	var ports []string
	for _, pattern := range globs {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			continue
		}
		for _, m := range matches {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			ports = append(ports, m)
		}
	}
	sort.Strings(ports)
	return ports
}
