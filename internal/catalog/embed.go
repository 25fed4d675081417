package catalog

import (
	"embed"
	"io/fs"
)

// dataPath is the location of the board definitions inside the embedded
// filesystem.
const dataPath = "data/boards.yaml"

// boardData embeds the canonical board definitions shipped with the binary.
//
//go:embed data
var boardData embed.FS

// DataFS returns the embedded filesystem containing the board definitions.
// Exposed for tests that validate the shipped data directly.
func DataFS() fs.FS {
	return boardData
}
