package services

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/otzar-labs/ketav-cli/internal/core/domain"
	"github.com/otzar-labs/ketav-cli/internal/core/ports/driven"
	"github.com/otzar-labs/ketav-cli/internal/logger"
)

// Selection is the single file chosen from a directory.
type Selection struct {
	Path   string
	Reader driven.Reader
}

// SelectFile picks at most one convertible file from dir. Readers are
// consulted in strict priority order, entries in sorted name order, so
// re-running on an unchanged directory always yields the same file and
// one logical document exported in several formats is converted once.
// Returns domain.ErrNoConvertibleFile when nothing matches.
func SelectFile(dir string, registry driven.ReaderRegistry) (*Selection, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	for _, reader := range registry.Readers() {
		for _, name := range names {
			path := filepath.Join(dir, name)
			if reader.Supports(path) {
				logger.Debug("selected %s (%s) in %s", name, reader.Format(), dir)
				return &Selection{Path: path, Reader: reader}, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrNoConvertibleFile, dir)
}
