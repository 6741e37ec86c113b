//go:build mage

package main

import (
	"fmt"
	"path/filepath"

	"github.com/magefile/mage/sh"
)

// Convert builds the CLI and converts a Raindrop.io CSV export into the
// given output directory, e.g. `mage convert bookmarks.csv output`.
func Convert(input, outputDir string) error {
	ensureBuilt()
	bin := filepath.Join(binDir, binName)
	if err := sh.RunV(bin, "convert", input, outputDir); err != nil {
		return fmt.Errorf("converting %s: %w", input, err)
	}
	return nil
}
