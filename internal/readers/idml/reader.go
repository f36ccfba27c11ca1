// Package idml reads InDesign Markup Language archive exports. The
// container is a zip archive whose text lives in story files under
// Stories/; everything else (spreads, layout, resources) is ignored.
package idml

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/otzar-labs/ketav-cli/internal/core/domain"
	"github.com/otzar-labs/ketav-cli/internal/core/ports/driven"
)

// Ensure Reader implements the interface.
var _ driven.Reader = (*Reader)(nil)

// noiseToken is a known artifact of the export format, not content.
const noiseToken = "0"

// Reader handles IDML archive exports.
type Reader struct{}

// New creates a new IDML reader.
func New() *Reader {
	return &Reader{}
}

// Format returns the format tag this reader handles.
func (r *Reader) Format() domain.Format {
	return domain.FormatIDML
}

// Extensions returns the extensions this reader claims.
func (r *Reader) Extensions() []string {
	return []string{".idml"}
}

// Supports checks the extension and that the container actually holds
// story entries, so a renamed zip does not get claimed.
func (r *Reader) Supports(path string) bool {
	if !strings.EqualFold(filepath.Ext(path), ".idml") {
		return false
	}
	zr, err := zip.OpenReader(path)
	if err != nil {
		return false
	}
	defer zr.Close()
	for _, f := range zr.File {
		if isStoryEntry(f.Name) {
			return true
		}
	}
	return false
}

// Priority returns the selection priority.
func (r *Reader) Priority() int {
	return domain.FormatIDML.Priority()
}

// Read extracts the story text into the canonical representation.
func (r *Reader) Read(_ context.Context, path string) (*domain.Document, error) {
	fragments, err := extractFragments(path)
	if err != nil {
		return nil, err
	}
	if len(fragments) == 0 {
		return nil, fmt.Errorf("%w: no text content in %s", domain.ErrArchiveFormat, path)
	}

	doc := &domain.Document{
		ID:         uuid.New().String(),
		SourcePath: path,
		Format:     domain.FormatIDML,
		Metadata:   map[string]any{"format": domain.FormatIDML.String()},
		CreatedAt:  time.Now(),
	}
	for _, frag := range fragments {
		doc.AddParagraph(frag)
	}
	return doc, nil
}

// extractFragments walks every story file in the container's listing
// order and collects element text and tail fragments. Fragment order
// is stable for a given archive but cross-story order carries no
// semantic guarantee.
func extractFragments(path string) ([]string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrArchiveFormat, path, err)
	}
	defer zr.Close()

	var fragments []string
	stories := 0
	for _, file := range zr.File {
		if !isStoryEntry(file.Name) {
			continue
		}
		stories++

		rc, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("%w: open story %s: %v", domain.ErrArchiveFormat, file.Name, err)
		}
		frags, err := parseStory(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("%w: story %s: %v", domain.ErrArchiveFormat, file.Name, err)
		}
		fragments = append(fragments, frags...)
	}

	if stories == 0 {
		return nil, fmt.Errorf("%w: no story entries in %s", domain.ErrArchiveFormat, path)
	}
	return fragments, nil
}

// isStoryEntry reports whether a container entry is a text story.
func isStoryEntry(name string) bool {
	return strings.HasPrefix(name, "Stories/") && strings.HasSuffix(name, ".xml")
}

// parseStory streams one story XML document, collecting character data
// in document order. Both element text and tail text arrive as
// xml.CharData tokens, so a single token walk covers them.
func parseStory(r io.Reader) ([]string, error) {
	dec := xml.NewDecoder(r)
	var fragments []string
	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		cd, ok := tok.(xml.CharData)
		if !ok {
			continue
		}
		text := strings.TrimSpace(string(cd))
		if text == "" || text == noiseToken {
			continue
		}
		fragments = append(fragments, text)
	}
	return fragments, nil
}
