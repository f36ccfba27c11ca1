package driven

import (
	"context"

	"github.com/otzar-labs/ketav-cli/internal/core/domain"
)

// Reader extracts a canonical Document from one source format.
// Each reader handles exactly one format and declares how to recognise
// candidate files.
type Reader interface {
	// Format returns the format tag this reader handles.
	Format() domain.Format

	// Extensions returns the file extensions this reader claims,
	// lowercase with leading dot. Empty for readers that detect files
	// by content rather than extension.
	Extensions() []string

	// Supports reports whether this reader can handle the given file.
	// May inspect content for extensionless formats.
	Supports(path string) bool

	// Priority returns the selection priority (higher = preferred)
	// when several readers claim the same file.
	Priority() int

	// Read parses the file into the canonical representation.
	// Heading metadata is not populated here; the pipeline derives it.
	Read(ctx context.Context, path string) (*domain.Document, error)
}

// ReaderRegistry selects the appropriate reader for a file.
// It maintains a priority-ordered set of readers.
type ReaderRegistry interface {
	// Register adds a reader to the registry.
	Register(reader Reader)

	// ReaderFor returns the highest-priority reader claiming the file,
	// or nil when no reader supports it.
	ReaderFor(path string) Reader

	// Readers returns all registered readers, highest priority first.
	Readers() []Reader
}
