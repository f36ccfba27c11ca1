package driving

import (
	"context"

	"github.com/otzar-labs/ketav-cli/internal/core/domain"
)

// ConvertOptions carries per-run heading overrides and output control.
type ConvertOptions struct {
	// H1 and H2 override the collection/section headings. When H2 is
	// empty it defaults to the source directory name.
	H1 string
	H2 string

	// OutDir is the destination directory for written output.
	// Empty means next to the source.
	OutDir string
}

// FileResult describes the outcome of converting one file.
type FileResult struct {
	// SourcePath is the file that was selected for conversion.
	SourcePath string

	// Format is the detected source format.
	Format domain.Format

	// OutputPath is where the writer placed the result.
	OutputPath string

	// DocumentID identifies the catalogued document, empty when the
	// catalog is disabled.
	DocumentID string

	// Paragraphs is the number of content paragraphs extracted.
	Paragraphs int
}

// TreeResult aggregates a batch run over a directory tree.
// A single file's failure never aborts its siblings; failures are
// collected here instead.
type TreeResult struct {
	Converted []FileResult
	Skipped   []string
	Failed    map[string]error
}

// Converter is the driving port of the ingestion pipeline.
type Converter interface {
	// ConvertFile converts a single explicitly named file.
	ConvertFile(ctx context.Context, path string, opts ConvertOptions) (*FileResult, error)

	// ConvertDir selects at most one file from a leaf directory and
	// converts it. Returns domain.ErrNoConvertibleFile when nothing in
	// the directory is recognised.
	ConvertDir(ctx context.Context, dir string, opts ConvertOptions) (*FileResult, error)

	// ConvertTree walks a directory tree, converting every leaf
	// directory sequentially with per-file error isolation.
	ConvertTree(ctx context.Context, root string, opts ConvertOptions) (*TreeResult, error)
}
