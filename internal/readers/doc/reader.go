// Package doc reads legacy binary word-processor documents by
// delegating conversion to an external word-processing application and
// consuming the temporary .docx artifact it produces.
package doc

import (
	"archive/zip"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/otzar-labs/ketav-cli/internal/core/domain"
	"github.com/otzar-labs/ketav-cli/internal/core/ports/driven"
	"github.com/otzar-labs/ketav-cli/internal/logger"
	"github.com/otzar-labs/ketav-cli/internal/readers/docx"
)

// Ensure Reader implements the interface.
var _ driven.Reader = (*Reader)(nil)

// Reader handles legacy .doc documents via an external converter.
type Reader struct {
	converter driven.LegacyConverter
}

// New creates a legacy document reader backed by the given converter.
func New(converter driven.LegacyConverter) *Reader {
	return &Reader{converter: converter}
}

// Format returns the format tag this reader handles.
func (r *Reader) Format() domain.Format {
	return domain.FormatDoc
}

// Extensions returns the extensions this reader claims.
func (r *Reader) Extensions() []string {
	return []string{".doc"}
}

// Supports checks the extension only.
func (r *Reader) Supports(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".doc")
}

// Priority returns the selection priority.
func (r *Reader) Priority() int {
	return domain.FormatDoc.Priority()
}

// Read converts the file through the external collaborator and parses
// the resulting artifact. The temporary artifact is removed on every
// exit path, including parse failures.
func (r *Reader) Read(ctx context.Context, path string) (*domain.Document, error) {
	if r.converter == nil {
		return nil, fmt.Errorf("%w: no converter configured", domain.ErrLegacyConversion)
	}

	tmpPath, err := r.converter.Convert(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrLegacyConversion, path, err)
	}
	defer func() {
		if rmErr := os.Remove(tmpPath); rmErr != nil && !os.IsNotExist(rmErr) {
			logger.Warn("could not remove conversion artifact %s: %v", tmpPath, rmErr)
		}
	}()

	zr, err := zip.OpenReader(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("%w: artifact %s: %v", domain.ErrLegacyConversion, tmpPath, err)
	}
	defer zr.Close()

	converted, err := docx.ReadArchive(&zr.Reader, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrLegacyConversion, path, err)
	}

	converted.Format = domain.FormatDoc
	converted.Metadata["format"] = domain.FormatDoc.String()
	return converted, nil
}
