package cli

import (
	"bytes"
	"context"

	"github.com/otzar-labs/ketav-cli/internal/core/domain"
	"github.com/otzar-labs/ketav-cli/internal/core/ports/driven"
	"github.com/otzar-labs/ketav-cli/internal/core/ports/driving"
)

// execute runs the root command with args, capturing output.
func execute(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

// mockConverter implements driving.Converter with canned results.
type mockConverter struct {
	fileResult *driving.FileResult
	treeResult *driving.TreeResult
	err        error
	lastOpts   driving.ConvertOptions
}

func (m *mockConverter) ConvertFile(_ context.Context, path string, opts driving.ConvertOptions) (*driving.FileResult, error) {
	m.lastOpts = opts
	return m.fileResult, m.err
}

func (m *mockConverter) ConvertDir(_ context.Context, dir string, opts driving.ConvertOptions) (*driving.FileResult, error) {
	m.lastOpts = opts
	return m.fileResult, m.err
}

func (m *mockConverter) ConvertTree(_ context.Context, root string, opts driving.ConvertOptions) (*driving.TreeResult, error) {
	m.lastOpts = opts
	return m.treeResult, m.err
}

// mockReader backs the formats listing.
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

func (m *mockRegistry) Register(r driven.Reader)       { m.readers = append(m.readers, r) }
func (m *mockRegistry) ReaderFor(string) driven.Reader { return nil }
func (m *mockRegistry) Readers() []driven.Reader       { return m.readers }

// mockDocStore serves a canned document list.
type mockDocStore struct {
	docs []domain.Document
	err  error
}

func (m *mockDocStore) Save(context.Context, *domain.Document) error { return m.err }
func (m *mockDocStore) Get(context.Context, string) (*domain.Document, error) {
	return nil, domain.ErrNotFound
}
func (m *mockDocStore) GetBySourcePath(context.Context, string) (*domain.Document, error) {
	return nil, domain.ErrNotFound
}
func (m *mockDocStore) List(context.Context) ([]domain.Document, error) {
	return m.docs, m.err
}
func (m *mockDocStore) Delete(context.Context, string) error { return m.err }
func (m *mockDocStore) Close() error                         { return nil }
