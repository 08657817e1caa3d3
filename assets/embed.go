package assets

import (
	"embed"
	"io/fs"
	"log"
)

//go:embed data
var content embed.FS

// Resource names inside the bundle.
const (
	CultureItems = "culture_items.json"
	Places       = "places.json"
	Events       = "events.json"
)

// FS returns the bundled asset file system.
func FS() fs.FS {
	sub, err := fs.Sub(content, "data")
	if err != nil {
		log.Fatalf("failed to create asset sub-filesystem: %v", err)
	}
	return sub
}
