package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otzar-labs/ketav-cli/internal/core/domain"
)

func TestReaderRegistry_PriorityOrder(t *testing.T) {
	reg := NewReaderRegistry()
	low := &fakeReader{format: domain.FormatDOSText, priority: 50}
	high := &fakeReader{format: domain.FormatDocx, priority: 100, exts: []string{".docx"}}
	mid := &fakeReader{format: domain.FormatIDML, priority: 80, exts: []string{".idml"}}

	// Registration order must not matter.
	reg.Register(low)
	reg.Register(high)
	reg.Register(mid)

	readers := reg.Readers()
	require.Len(t, readers, 3)
	assert.Equal(t, domain.FormatDocx, readers[0].Format())
	assert.Equal(t, domain.FormatIDML, readers[1].Format())
	assert.Equal(t, domain.FormatDOSText, readers[2].Format())
}

func TestReaderRegistry_ReaderFor(t *testing.T) {
	reg := NewReaderRegistry()
	docx := &fakeReader{format: domain.FormatDocx, priority: 100, exts: []string{".docx"}}
	idml := &fakeReader{format: domain.FormatIDML, priority: 80, exts: []string{".idml"}}
	reg.Register(idml)
	reg.Register(docx)

	got := reg.ReaderFor("book.docx")
	require.NotNil(t, got)
	assert.Equal(t, domain.FormatDocx, got.Format())

	assert.Nil(t, reg.ReaderFor("book.pdf"))
}

func TestReaderRegistry_TieBrokenByRegistration(t *testing.T) {
	reg := NewReaderRegistry()
	first := &fakeReader{format: domain.FormatDocx, priority: 100, exts: []string{".docx"}}
	second := &fakeReader{format: domain.FormatDoc, priority: 100, exts: []string{".docx"}}
	reg.Register(first)
	reg.Register(second)

	got := reg.ReaderFor("book.docx")
	require.NotNil(t, got)
	assert.Same(t, first, got.(*fakeReader))
}

func TestReaderRegistry_ReadersIsACopy(t *testing.T) {
	reg := NewReaderRegistry()
	reg.Register(&fakeReader{format: domain.FormatDocx, priority: 100})

	readers := reg.Readers()
	readers[0] = nil
	assert.NotNil(t, reg.Readers()[0])
}
