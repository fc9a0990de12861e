// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scrape

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/deck2pdf/pkg/types"
)

// WriteMetadata writes the deck record as a YAML sidecar file.
func WriteMetadata(deck *types.Deck, path string) error {
	data, err := yaml.Marshal(deck)
	if err != nil {
		return fmt.Errorf("marshaling deck metadata: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
