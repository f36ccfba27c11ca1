package services

import (
	"context"
	"path/filepath"
	"strings"
	"sync"

	"github.com/otzar-labs/ketav-cli/internal/core/domain"
)

// fakeReader claims files by extension (or by a custom func) and
// returns a canned document.
type fakeReader struct {
	format   domain.Format
	exts     []string
	priority int
	supports func(path string) bool
	doc      *domain.Document
	err      error
	reads    []string
}

func (f *fakeReader) Format() domain.Format { return f.format }

func (f *fakeReader) Extensions() []string { return f.exts }

func (f *fakeReader) Supports(path string) bool {
	if f.supports != nil {
		return f.supports(path)
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range f.exts {
		if ext == e {
			return true
		}
	}
	return false
}

func (f *fakeReader) Priority() int { return f.priority }

func (f *fakeReader) Read(_ context.Context, path string) (*domain.Document, error) {
	f.reads = append(f.reads, path)
	if f.err != nil {
		return nil, f.err
	}
	if f.doc != nil {
		doc := *f.doc
		doc.SourcePath = path
		return &doc, nil
	}
	return &domain.Document{
		ID:         "fake-id",
		SourcePath: path,
		Format:     f.format,
		Paragraphs: []domain.Paragraph{{Text: "תוכן"}},
		Metadata:   map[string]any{},
	}, nil
}

// fakeWriter records every write instead of touching the filesystem.
type fakeWriter struct {
	ext    string
	err    error
	writes map[string]*domain.Document
}

func newFakeWriter() *fakeWriter {
	return &fakeWriter{ext: ".json", writes: make(map[string]*domain.Document)}
}

func (f *fakeWriter) Write(_ context.Context, doc *domain.Document, outPath string) error {
	if f.err != nil {
		return f.err
	}
	f.writes[outPath] = doc
	return nil
}

func (f *fakeWriter) Extension() string { return f.ext }

// fakeStore is an in-memory DocumentStore.
type fakeStore struct {
	mu   sync.Mutex
	docs map[string]*domain.Document
	err  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{docs: make(map[string]*domain.Document)}
}

func (f *fakeStore) Save(_ context.Context, doc *domain.Document) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.docs[doc.ID] = doc
	return nil
}

func (f *fakeStore) Get(_ context.Context, id string) (*domain.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, ok := f.docs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return doc, nil
}

func (f *fakeStore) GetBySourcePath(_ context.Context, path string) (*domain.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, doc := range f.docs {
		if doc.SourcePath == path {
			return doc, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeStore) List(_ context.Context) ([]domain.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Document, 0, len(f.docs))
	for _, doc := range f.docs {
		out = append(out, *doc)
	}
	return out, nil
}

func (f *fakeStore) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.docs, id)
	return nil
}

func (f *fakeStore) Close() error { return nil }
