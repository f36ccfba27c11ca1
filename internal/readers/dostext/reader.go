// Package dostext reads extensionless CP862-encoded Hebrew text files
// and cleans the word-processor control codes out of them.
package dostext

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/otzar-labs/ketav-cli/internal/core/domain"
	"github.com/otzar-labs/ketav-cli/internal/core/ports/driven"
	"github.com/otzar-labs/ketav-cli/internal/detect"
)

// Ensure Reader implements the interface.
var _ driven.Reader = (*Reader)(nil)

// Reader handles legacy DOS text files.
type Reader struct {
	probe detect.Probe
}

// New creates a DOS text reader with the given probe tuning.
func New(probe detect.Probe) *Reader {
	return &Reader{probe: probe}
}

// Format returns the format tag this reader handles.
func (r *Reader) Format() domain.Format {
	return domain.FormatDOSText
}

// Extensions returns nil: DOS files are recognised by content.
func (r *Reader) Extensions() []string {
	return nil
}

// Supports probes extensionless files for CP862 Hebrew content.
func (r *Reader) Supports(path string) bool {
	return detect.Detect(path, r.probe) == domain.FormatDOSText
}

// Priority is low since detection is content-based, not extension-based.
func (r *Reader) Priority() int {
	return domain.FormatDOSText.Priority()
}

// Read decodes and cleans the file into the canonical representation.
func (r *Reader) Read(_ context.Context, path string) (*domain.Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	text, strict := detect.Decode(raw)
	if !strict && !containsHebrew(text) {
		return nil, fmt.Errorf("%w: %s", domain.ErrEncoding, path)
	}

	text = SanitizeXML(text)
	text = Clean(text)

	doc := &domain.Document{
		ID:         uuid.New().String(),
		SourcePath: path,
		Format:     domain.FormatDOSText,
		Metadata:   map[string]any{"format": domain.FormatDOSText.String(), "strict_decode": strict},
		CreatedAt:  time.Now(),
	}
	for _, line := range strings.Split(text, "\n") {
		doc.AddParagraph(strings.TrimSpace(line))
	}
	return doc, nil
}
