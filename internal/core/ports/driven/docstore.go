package driven

import (
	"context"

	"github.com/otzar-labs/ketav-cli/internal/core/domain"
)

// DocumentStore is the catalog of converted documents. The pipeline
// records every successful conversion so downstream exports can be
// listed and re-run without re-reading sources.
type DocumentStore interface {
	// Save inserts or replaces a document and its paragraphs.
	Save(ctx context.Context, doc *domain.Document) error

	// Get retrieves a document by ID, domain.ErrNotFound when absent.
	Get(ctx context.Context, id string) (*domain.Document, error)

	// GetBySourcePath retrieves the latest document converted from a
	// source path, domain.ErrNotFound when absent.
	GetBySourcePath(ctx context.Context, path string) (*domain.Document, error)

	// List returns all catalogued documents, newest first, without
	// paragraph content.
	List(ctx context.Context) ([]domain.Document, error)

	// Delete removes a document, domain.ErrNotFound when absent.
	Delete(ctx context.Context, id string) error

	// Close releases the underlying storage.
	Close() error
}
