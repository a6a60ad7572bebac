// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// LoadCatalog reads the kind definitions file and builds a catalog from it.
// An empty path yields the built-in catalog.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read kind definitions file: %w", err)
	}

	var kindDefs []KindDefinition
	if err := json.Unmarshal(file, &kindDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal kind definitions: %w", err)
	}

	catalog, err := NewCatalog(kindDefs)
	if err != nil {
		return nil, fmt.Errorf("invalid kind definitions in %s: %w", path, err)
	}

	log.Printf("Loaded %d kind definitions", catalog.Len())
	return catalog, nil
}
