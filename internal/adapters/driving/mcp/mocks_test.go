package mcp

import (
	"context"

	"github.com/otzar-labs/ketav-cli/internal/core/domain"
	"github.com/otzar-labs/ketav-cli/internal/core/ports/driven"
	"github.com/otzar-labs/ketav-cli/internal/core/ports/driving"
)

// mockConverter implements driving.Converter with canned results.
type mockConverter struct {
	fileResult *driving.FileResult
	treeResult *driving.TreeResult
	err        error
	lastPath   string
	lastOpts   driving.ConvertOptions
}

func (m *mockConverter) ConvertFile(_ context.Context, path string, opts driving.ConvertOptions) (*driving.FileResult, error) {
	m.lastPath, m.lastOpts = path, opts
	return m.fileResult, m.err
}

func (m *mockConverter) ConvertDir(_ context.Context, dir string, opts driving.ConvertOptions) (*driving.FileResult, error) {
	m.lastPath, m.lastOpts = dir, opts
	return m.fileResult, m.err
}

func (m *mockConverter) ConvertTree(_ context.Context, root string, opts driving.ConvertOptions) (*driving.TreeResult, error) {
	m.lastPath, m.lastOpts = root, opts
	return m.treeResult, m.err
}

// mockReader is a minimal driven.Reader for registry listings.
type mockReader struct {
	format   domain.Format
	exts     []string
	priority int
}

func (m *mockReader) Format() domain.Format { return m.format }
func (m *mockReader) Extensions() []string  { return m.exts }
func (m *mockReader) Supports(string) bool  { return false }
func (m *mockReader) Priority() int         { return m.priority }
func (m *mockReader) Read(context.Context, string) (*domain.Document, error) {
	return nil, nil
}

// mockRegistry returns a fixed reader list.
type mockRegistry struct {
	readers []driven.Reader
}

func (m *mockRegistry) Register(r driven.Reader)      { m.readers = append(m.readers, r) }
func (m *mockRegistry) ReaderFor(string) driven.Reader { return nil }
func (m *mockRegistry) Readers() []driven.Reader       { return m.readers }

// mockStore serves canned documents.
type mockStore struct {
	docs []domain.Document
	err  error
}

func (m *mockStore) Save(context.Context, *domain.Document) error { return m.err }

func (m *mockStore) Get(_ context.Context, id string) (*domain.Document, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.docs {
		if m.docs[i].ID == id {
			return &m.docs[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockStore) GetBySourcePath(context.Context, string) (*domain.Document, error) {
	return nil, domain.ErrNotFound
}

func (m *mockStore) List(context.Context) ([]domain.Document, error) {
	return m.docs, m.err
}

func (m *mockStore) Delete(context.Context, string) error { return m.err }

func (m *mockStore) Close() error { return nil }
