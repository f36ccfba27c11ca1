// Package docx reads modern word-processor documents. The container
// is a zip archive; paragraph text lives in word/document.xml and the
// document title in docProps/core.xml.
package docx

import (
	"archive/zip"
	"context"
	"encoding/xml"
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

// Reader handles DOCX documents.
type Reader struct{}

// New creates a new DOCX reader.
func New() *Reader {
	return &Reader{}
}

// Format returns the format tag this reader handles.
func (r *Reader) Format() domain.Format {
	return domain.FormatDocx
}

// Extensions returns the extensions this reader claims.
func (r *Reader) Extensions() []string {
	return []string{".docx"}
}

// Supports checks the extension only; .docx always wins on extension.
func (r *Reader) Supports(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".docx")
}

// Priority returns the selection priority.
func (r *Reader) Priority() int {
	return domain.FormatDocx.Priority()
}

// Read parses the container into the canonical representation.
func (r *Reader) Read(_ context.Context, path string) (*domain.Document, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", domain.ErrInvalidInput, path, err)
	}
	defer zr.Close()

	doc, err := ReadArchive(&zr.Reader, path)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// ReadArchive extracts a canonical document from an already-open zip
// reader. The doc reader reuses this for temporary conversion
// artifacts.
func ReadArchive(zr *zip.Reader, sourcePath string) (*domain.Document, error) {
	paragraphs, err := extractParagraphs(zr)
	if err != nil {
		return nil, err
	}

	doc := &domain.Document{
		ID:         uuid.New().String(),
		SourcePath: sourcePath,
		Format:     domain.FormatDocx,
		Paragraphs: paragraphs,
		Metadata:   map[string]any{"format": domain.FormatDocx.String()},
		CreatedAt:  time.Now(),
	}
	if title := extractTitle(zr); title != "" {
		doc.Metadata["title"] = title
	}
	return doc, nil
}

// extractParagraphs pulls paragraph text and style hints from
// word/document.xml.
func extractParagraphs(zr *zip.Reader) ([]domain.Paragraph, error) {
	for _, file := range zr.File {
		if file.Name != "word/document.xml" {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		return parseDocumentXML(content)
	}
	return nil, fmt.Errorf("%w: no word/document.xml", domain.ErrInvalidInput)
}

// documentXML mirrors the structure of word/document.xml.
type documentXML struct {
	Body struct {
		Paragraphs []paragraphXML `xml:"p"`
	} `xml:"body"`
}

type paragraphXML struct {
	Props *struct {
		Justification *struct {
			Val string `xml:"val,attr"`
		} `xml:"jc"`
	} `xml:"pPr"`
	Runs []runXML `xml:"r"`
}

type runXML struct {
	Props *struct {
		Bold   *struct{} `xml:"b"`
		Italic *struct{} `xml:"i"`
	} `xml:"rPr"`
	Text []textXML `xml:"t"`
}

type textXML struct {
	Content string `xml:",chardata"`
}

// parseDocumentXML converts the XML body into paragraph records.
// Run-level bold/italic collapse to the paragraph when every non-empty
// run carries the flag; centering passes through from the paragraph
// justification.
func parseDocumentXML(content []byte) ([]domain.Paragraph, error) {
	var doc documentXML
	if err := xml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	paragraphs := make([]domain.Paragraph, 0, len(doc.Body.Paragraphs))
	for _, para := range doc.Body.Paragraphs {
		var b strings.Builder
		allBold, allItalic := true, true
		hasRun := false
		for _, run := range para.Runs {
			var runText strings.Builder
			for _, t := range run.Text {
				runText.WriteString(t.Content)
			}
			if strings.TrimSpace(runText.String()) != "" {
				hasRun = true
				if run.Props == nil || run.Props.Bold == nil {
					allBold = false
				}
				if run.Props == nil || run.Props.Italic == nil {
					allItalic = false
				}
			}
			b.WriteString(runText.String())
		}

		p := domain.Paragraph{Text: strings.TrimSpace(b.String())}
		if hasRun {
			p.Bold = allBold
			p.Italic = allItalic
		}
		if para.Props != nil && para.Props.Justification != nil &&
			para.Props.Justification.Val == "center" {
			p.Centered = true
		}
		paragraphs = append(paragraphs, p)
	}
	return paragraphs, nil
}

// coreXML mirrors docProps/core.xml.
type coreXML struct {
	Title string `xml:"title"`
}

// extractTitle reads the title from docProps/core.xml, empty when the
// entry is missing or untitled.
func extractTitle(zr *zip.Reader) string {
	for _, file := range zr.File {
		if file.Name != "docProps/core.xml" {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return ""
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return ""
		}

		var core coreXML
		if err := xml.Unmarshal(content, &core); err == nil {
			return strings.TrimSpace(core.Title)
		}
		return ""
	}
	return ""
}
