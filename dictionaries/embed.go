// Package dictionaries embeds the fallback word list used by hosts that
// don't provide a main dictionary of their own.
package dictionaries

import (
	"embed"
	"io/fs"
)

//go:embed en.txt
var dictFS embed.FS

// GetFS returns the embedded dictionary files.
func GetFS() fs.FS {
	return dictFS
}
