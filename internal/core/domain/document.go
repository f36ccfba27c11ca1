package domain

import "time"

// Headings is the title quadruple attached to a converted document.
// H1/H2 come from directory names or explicit overrides; H3/H4 are
// derived from the source filename.
type Headings struct {
	H1 string
	H2 string
	H3 string
	H4 string
}

// Paragraph is the unit handed to document writers. Style hints are
// passed through unmodified from the source format where available.
type Paragraph struct {
	// Text is the paragraph content after normalisation.
	Text string

	// Bold and Italic are run-level hints collapsed to paragraph level.
	Bold   bool
	Italic bool

	// Centered marks deliberately centered paragraphs (section breaks,
	// asterisk separators). Everything else renders right-aligned RTL.
	Centered bool
}

// Blank reports whether the paragraph carries no content and exists
// only to preserve spacing between paragraphs.
func (p Paragraph) Blank() bool {
	return p.Text == ""
}

// Document is the canonical in-memory representation every reader
// produces, regardless of source format.
type Document struct {
	// ID is the unique identifier for the document.
	ID string

	// SourcePath is the file the document was extracted from.
	SourcePath string

	// Format is the detected source format.
	Format Format

	// Headings is the title quadruple for the converted output.
	Headings Headings

	// Paragraphs is the ordered content, blanks included.
	Paragraphs []Paragraph

	// Metadata contains reader-specific key-value pairs.
	Metadata map[string]any

	// CreatedAt is when the document was converted.
	CreatedAt time.Time
}

// AddParagraph appends a plain paragraph and returns its index.
func (d *Document) AddParagraph(text string) int {
	d.Paragraphs = append(d.Paragraphs, Paragraph{Text: text})
	return len(d.Paragraphs) - 1
}

// ContentParagraphs returns the non-blank paragraphs in order.
func (d *Document) ContentParagraphs() []Paragraph {
	out := make([]Paragraph, 0, len(d.Paragraphs))
	for _, p := range d.Paragraphs {
		if !p.Blank() {
			out = append(out, p)
		}
	}
	return out
}
