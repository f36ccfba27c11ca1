// Package jsonw writes converted documents as JSON chunk files: the
// heading quadruple as document metadata plus one chunk per content
// paragraph. This is the machine-readable consumer of the
// paragraph-record contract; the styled .docx writer lives outside
// this repository.
package jsonw

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/otzar-labs/ketav-cli/internal/core/domain"
	"github.com/otzar-labs/ketav-cli/internal/core/ports/driven"
)

// Ensure Writer implements the interface.
var _ driven.DocumentWriter = (*Writer)(nil)

// Writer renders documents as JSON chunk files.
type Writer struct{}

// New creates a JSON writer.
func New() *Writer {
	return &Writer{}
}

// Extension returns the output file extension.
func (w *Writer) Extension() string {
	return ".json"
}

// document is the serialised form.
type document struct {
	BookNameHe string   `json:"book_name_he"`
	Metadata   metadata `json:"book_metadata"`
	Chunks     []chunk  `json:"chunks"`
}

type metadata struct {
	Collection string `json:"collection_he"`
	Section    string `json:"sefer_he"`
	SubSection string `json:"sub_section_he,omitempty"`
	SourceFile string `json:"source_file"`
	Format     string `json:"source_format"`
}

type chunk struct {
	ID       int           `json:"chunk_id"`
	Metadata chunkMetadata `json:"chunk_metadata"`
	Text     string        `json:"text"`
	Bold     bool          `json:"bold,omitempty"`
	Italic   bool          `json:"italic,omitempty"`
	Centered bool          `json:"centered,omitempty"`
}

type chunkMetadata struct {
	ChunkTitle string `json:"chunk_title"`
	Section    string `json:"sefer"`
	Collection string `json:"collection"`
}

// Write serialises doc to outPath, one chunk per content paragraph.
// Style hints pass through unmodified.
func (w *Writer) Write(_ context.Context, doc *domain.Document, outPath string) error {
	if doc == nil {
		return domain.ErrInvalidInput
	}

	out := document{
		BookNameHe: doc.Headings.H3,
		Metadata: metadata{
			Collection: doc.Headings.H1,
			Section:    doc.Headings.H2,
			SubSection: doc.Headings.H4,
			SourceFile: doc.SourcePath,
			Format:     doc.Format.String(),
		},
	}

	id := 1
	for _, p := range doc.ContentParagraphs() {
		out.Chunks = append(out.Chunks, chunk{
			ID: id,
			Metadata: chunkMetadata{
				ChunkTitle: fmt.Sprintf("%s - קטע %d", doc.Headings.H3, id),
				Section:    doc.Headings.H2,
				Collection: doc.Headings.H1,
			},
			Text:     p.Text,
			Bold:     p.Bold,
			Italic:   p.Italic,
			Centered: p.Centered,
		})
		id++
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	return nil
}
