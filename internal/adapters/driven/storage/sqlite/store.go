// Package sqlite implements the document catalog on SQLite.
// Every successful conversion is recorded so exports can be listed
// and inspected without re-reading the legacy sources.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/otzar-labs/ketav-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/otzar-labs/ketav-cli/internal/core/domain"
	"github.com/otzar-labs/ketav-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.DocumentStore = (*Store)(nil)

// Store is the SQLite-backed document catalog.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a catalog at the specified data directory.
// If dataDir is empty, defaults to ~/.ketav/data/catalog.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".ketav", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "catalog.db")

	// WAL keeps the CLI responsive when a watch run and a list run
	// overlap.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{db: db, path: dbPath}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate applies every embedded migration in filename order.
func (s *Store) migrate(migrationsFS embed.FS) error {
	entries, err := fs.ReadDir(migrationsFS, ".")
	if err != nil {
		return err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".sql" {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		script, err := fs.ReadFile(migrationsFS, name)
		if err != nil {
			return err
		}
		if _, err := s.db.Exec(string(script)); err != nil {
			return fmt.Errorf("migration %s: %w", name, err)
		}
	}
	return nil
}

// Save inserts or replaces a document and its paragraphs.
func (s *Store) Save(ctx context.Context, doc *domain.Document) error {
	if doc == nil || doc.ID == "" {
		return domain.ErrInvalidInput
	}

	meta, err := json.Marshal(doc.Metadata)
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	_, err = tx.ExecContext(ctx, `
		INSERT OR REPLACE INTO documents
			(id, source_path, format, h1, h2, h3, h4, metadata, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		doc.ID, doc.SourcePath, doc.Format.String(),
		doc.Headings.H1, doc.Headings.H2, doc.Headings.H3, doc.Headings.H4,
		string(meta), doc.CreatedAt)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM paragraphs WHERE document_id = ?`, doc.ID); err != nil {
		return err
	}

	for i, p := range doc.Paragraphs {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO paragraphs
				(document_id, position, text, bold, italic, centered)
			VALUES (?, ?, ?, ?, ?, ?)`,
			doc.ID, i, p.Text, p.Bold, p.Italic, p.Centered)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Get retrieves a document with its paragraphs.
func (s *Store) Get(ctx context.Context, id string) (*domain.Document, error) {
	doc, err := s.scanDocument(s.db.QueryRowContext(ctx, `
		SELECT id, source_path, format, h1, h2, h3, h4, metadata, created_at
		FROM documents WHERE id = ?`, id))
	if err != nil {
		return nil, err
	}
	if err := s.loadParagraphs(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// GetBySourcePath retrieves the latest conversion of a source file.
func (s *Store) GetBySourcePath(ctx context.Context, path string) (*domain.Document, error) {
	doc, err := s.scanDocument(s.db.QueryRowContext(ctx, `
		SELECT id, source_path, format, h1, h2, h3, h4, metadata, created_at
		FROM documents WHERE source_path = ?
		ORDER BY created_at DESC LIMIT 1`, path))
	if err != nil {
		return nil, err
	}
	if err := s.loadParagraphs(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// List returns all documents, newest first, without paragraphs.
func (s *Store) List(ctx context.Context) ([]domain.Document, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, source_path, format, h1, h2, h3, h4, metadata, created_at
		FROM documents ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []domain.Document
	for rows.Next() {
		doc, err := s.scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, *doc)
	}
	return docs, rows.Err()
}

// Delete removes a document and its paragraphs.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func (s *Store) scanDocument(row rowScanner) (*domain.Document, error) {
	var (
		doc       domain.Document
		format    string
		meta      string
		createdAt time.Time
	)
	err := row.Scan(&doc.ID, &doc.SourcePath, &format,
		&doc.Headings.H1, &doc.Headings.H2, &doc.Headings.H3, &doc.Headings.H4,
		&meta, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	doc.Format = parseFormat(format)
	doc.CreatedAt = createdAt
	if meta != "" && meta != "null" {
		if err := json.Unmarshal([]byte(meta), &doc.Metadata); err != nil {
			return nil, fmt.Errorf("unmarshal metadata: %w", err)
		}
	}
	return &doc, nil
}

func (s *Store) loadParagraphs(ctx context.Context, doc *domain.Document) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT text, bold, italic, centered
		FROM paragraphs WHERE document_id = ?
		ORDER BY position`, doc.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var p domain.Paragraph
		if err := rows.Scan(&p.Text, &p.Bold, &p.Italic, &p.Centered); err != nil {
			return err
		}
		doc.Paragraphs = append(doc.Paragraphs, p)
	}
	return rows.Err()
}

func parseFormat(s string) domain.Format {
	for _, f := range []domain.Format{
		domain.FormatDocx, domain.FormatDoc,
		domain.FormatIDML, domain.FormatDOSText,
	} {
		if f.String() == s {
			return f
		}
	}
	return domain.FormatUnknown
}
