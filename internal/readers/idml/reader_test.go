package idml

import (
	"archive/zip"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otzar-labs/ketav-cli/internal/core/domain"
)

// createTestIDML creates a minimal IDML archive in memory with the
// given story files.
func createTestIDML(stories map[string]string) []byte {
	buf := new(bytes.Buffer)
	w := zip.NewWriter(buf)

	mime, _ := w.Create("mimetype")
	mime.Write([]byte("application/vnd.adobe.indesign-idml-package"))

	for name, content := range stories {
		f, _ := w.Create(name)
		f.Write([]byte(content))
	}

	w.Close()
	return buf.Bytes()
}

func writeIDML(t *testing.T, stories map[string]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "book.idml")
	require.NoError(t, os.WriteFile(path, createTestIDML(stories), 0o644))
	return path
}

const storyXML = `<?xml version="1.0" encoding="UTF-8"?>
<idPkg:Story xmlns:idPkg="http://ns.adobe.com/AdobeInDesign/idml/1.0/packaging">
<Story Self="u123">
<ParagraphStyleRange>
<CharacterStyleRange><Content>שלום עולם</Content><Br/><Content>פסקה שניה</Content></CharacterStyleRange>
</ParagraphStyleRange>
</Story>
</idPkg:Story>`

func TestReader_Metadata(t *testing.T) {
	r := New()
	assert.Equal(t, domain.FormatIDML, r.Format())
	assert.Equal(t, []string{".idml"}, r.Extensions())
	assert.Equal(t, domain.FormatIDML.Priority(), r.Priority())
}

func TestReader_Supports(t *testing.T) {
	r := New()

	withStories := writeIDML(t, map[string]string{"Stories/Story_u123.xml": storyXML})
	assert.True(t, r.Supports(withStories))

	// A renamed zip with no story entries is not claimed.
	empty := writeIDML(t, nil)
	assert.False(t, r.Supports(empty))

	assert.False(t, r.Supports("book.docx"))
	assert.False(t, r.Supports(filepath.Join(t.TempDir(), "missing.idml")))
}

func TestReader_Read(t *testing.T) {
	path := writeIDML(t, map[string]string{"Stories/Story_u123.xml": storyXML})

	doc, err := New().Read(context.Background(), path)
	require.NoError(t, err)

	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, domain.FormatIDML, doc.Format)

	paragraphs := doc.ContentParagraphs()
	require.Len(t, paragraphs, 2)
	assert.Equal(t, "שלום עולם", paragraphs[0].Text)
	assert.Equal(t, "פסקה שניה", paragraphs[1].Text)
}

func TestReader_Read_NoiseTokenFiltered(t *testing.T) {
	story := `<?xml version="1.0"?>
<Story><Content>0</Content><Content>תוכן אמיתי</Content><Content>  </Content></Story>`
	path := writeIDML(t, map[string]string{"Stories/Story_a.xml": story})

	doc, err := New().Read(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, doc.Paragraphs, 1)
	assert.Equal(t, "תוכן אמיתי", doc.Paragraphs[0].Text)
}

func TestReader_Read_MultipleStories(t *testing.T) {
	path := writeIDML(t, map[string]string{
		"Stories/Story_a.xml": `<Story><Content>ראשון</Content></Story>`,
		"Stories/Story_b.xml": `<Story><Content>שני</Content></Story>`,
	})

	doc, err := New().Read(context.Background(), path)
	require.NoError(t, err)
	assert.Len(t, doc.Paragraphs, 2)
}

func TestReader_Read_NoStories(t *testing.T) {
	path := writeIDML(t, nil)
	_, err := New().Read(context.Background(), path)
	assert.ErrorIs(t, err, domain.ErrArchiveFormat)
}

func TestReader_Read_EmptyStories(t *testing.T) {
	path := writeIDML(t, map[string]string{
		"Stories/Story_a.xml": `<Story></Story>`,
	})
	_, err := New().Read(context.Background(), path)
	assert.ErrorIs(t, err, domain.ErrArchiveFormat)
}

func TestReader_Read_NotAZip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.idml")
	require.NoError(t, os.WriteFile(path, []byte("not a zip"), 0o644))

	_, err := New().Read(context.Background(), path)
	assert.ErrorIs(t, err, domain.ErrArchiveFormat)
}
