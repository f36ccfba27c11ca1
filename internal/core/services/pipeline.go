package services

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/otzar-labs/ketav-cli/internal/core/domain"
	"github.com/otzar-labs/ketav-cli/internal/core/ports/driven"
	"github.com/otzar-labs/ketav-cli/internal/core/ports/driving"
	"github.com/otzar-labs/ketav-cli/internal/hebrew"
	"github.com/otzar-labs/ketav-cli/internal/logger"
)

// Ensure Pipeline implements the interface.
var _ driving.Converter = (*Pipeline)(nil)

// Pipeline is the single-threaded conversion service. It processes one
// candidate file to completion before the next; there is no shared
// mutable state across files.
type Pipeline struct {
	registry driven.ReaderRegistry
	writer   driven.DocumentWriter
	store    driven.DocumentStore
}

// NewPipeline creates a conversion pipeline. The store is optional;
// nil disables the catalog.
func NewPipeline(
	registry driven.ReaderRegistry,
	writer driven.DocumentWriter,
	store driven.DocumentStore,
) *Pipeline {
	return &Pipeline{
		registry: registry,
		writer:   writer,
		store:    store,
	}
}

// ConvertFile converts one explicitly named file.
func (p *Pipeline) ConvertFile(ctx context.Context, path string, opts driving.ConvertOptions) (*driving.FileResult, error) {
	reader := p.registry.ReaderFor(path)
	if reader == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedType, path)
	}
	return p.convert(ctx, path, reader, opts)
}

// ConvertDir selects at most one file from a leaf directory and
// converts it.
func (p *Pipeline) ConvertDir(ctx context.Context, dir string, opts driving.ConvertOptions) (*driving.FileResult, error) {
	sel, err := SelectFile(dir, p.registry)
	if err != nil {
		return nil, err
	}
	return p.convert(ctx, sel.Path, sel.Reader, opts)
}

// ConvertTree walks root sequentially, converting every directory that
// holds a convertible file. One file's failure is isolated: it is
// recorded and its siblings continue.
func (p *Pipeline) ConvertTree(ctx context.Context, root string, opts driving.ConvertOptions) (*driving.TreeResult, error) {
	dirs, err := collectDirs(root)
	if err != nil {
		return nil, err
	}

	result := &driving.TreeResult{Failed: make(map[string]error)}
	for _, dir := range dirs {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		fr, err := p.ConvertDir(ctx, dir, opts)
		switch {
		case errors.Is(err, domain.ErrNoConvertibleFile):
			logger.Debug("skipping %s: no convertible file", dir)
			result.Skipped = append(result.Skipped, dir)
		case err != nil:
			logger.Warn("skipping %s: %v", dir, err)
			result.Failed[dir] = err
		default:
			result.Converted = append(result.Converted, *fr)
		}
	}
	return result, nil
}

// convert runs the per-file flow: read, derive headings, write,
// catalog.
func (p *Pipeline) convert(ctx context.Context, path string, reader driven.Reader, opts driving.ConvertOptions) (*driving.FileResult, error) {
	logger.Section(filepath.Base(path))
	logger.Info("converting %s as %s", path, reader.Format())

	doc, err := reader.Read(ctx, path)
	if err != nil {
		return nil, err
	}

	doc.Headings = p.deriveHeadings(path, doc, opts)

	outPath := p.outputPath(path, opts)
	if p.writer != nil {
		if err := p.writer.Write(ctx, doc, outPath); err != nil {
			return nil, fmt.Errorf("write %s: %w", outPath, err)
		}
	}

	result := &driving.FileResult{
		SourcePath: path,
		Format:     doc.Format,
		OutputPath: outPath,
		Paragraphs: len(doc.ContentParagraphs()),
	}

	if p.store != nil {
		if err := p.store.Save(ctx, doc); err != nil {
			return nil, fmt.Errorf("catalog %s: %w", path, err)
		}
		result.DocumentID = doc.ID
	}

	logger.Info("converted %s: %d paragraphs", path, result.Paragraphs)
	return result, nil
}

// deriveHeadings builds the heading quadruple. H1 comes from options,
// H2 from options or the source directory name, H3/H4 from the
// filename tokens.
func (p *Pipeline) deriveHeadings(path string, doc *domain.Document, opts driving.ConvertOptions) domain.Headings {
	h := domain.Headings{H1: opts.H1, H2: opts.H2}
	if h.H2 == "" {
		h.H2 = filepath.Base(filepath.Dir(path))
	}
	h.H3, h.H4 = hebrew.ExtractHeadings(filepath.Base(path))

	// A title recorded inside the source wins over the filename.
	if title, ok := doc.Metadata["title"].(string); ok && title != "" {
		h.H3 = title
	}
	return h
}

// outputPath places the result next to the source or under OutDir,
// named after the source stem.
func (p *Pipeline) outputPath(path string, opts driving.ConvertOptions) string {
	dir := filepath.Dir(path)
	if opts.OutDir != "" {
		dir = opts.OutDir
	}
	base := filepath.Base(path)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	ext := ".json"
	if p.writer != nil {
		ext = p.writer.Extension()
	}
	return filepath.Join(dir, base+ext)
}

// collectDirs returns root and every subdirectory, sorted, so batch
// runs are deterministic.
func collectDirs(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", domain.ErrInvalidInput, root)
	}

	var dirs []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn("walk %s: %v", path, err)
			return nil
		}
		if d.IsDir() {
			dirs = append(dirs, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(dirs)
	return dirs, nil
}
