// Package storage keeps fetched ontology documents in a local SQLite library
// so that imports can be resolved without network access.
package storage

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS ontologies (
	iri        TEXT PRIMARY KEY,
	checksum   TEXT NOT NULL,
	content    BLOB NOT NULL,
	fetched_at INTEGER NOT NULL
)`

// Entry is one stored ontology document.
type Entry struct {
	IRI       string
	Checksum  string
	Content   []byte
	FetchedAt time.Time
}

// Library is an ontology document store backed by SQLite.
type Library struct {
	db   *sql.DB
	path string
	now  func() time.Time
}

// Open opens or creates the library database at path. Parent directories are
// created as needed.
func Open(path string) (*Library, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create library directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open library: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create library schema: %w", err)
	}

	return &Library{db: db, path: path, now: time.Now}, nil
}

// Close closes the database connection.
func (l *Library) Close() error {
	return l.db.Close()
}

// Path returns the database file path.
func (l *Library) Path() string {
	return l.path
}

// Checksum returns the hex SHA-256 digest of content.
func Checksum(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// Put stores content under iri, replacing any earlier document.
func (l *Library) Put(ctx context.Context, iri string, content []byte) (*Entry, error) {
	entry := &Entry{
		IRI:       iri,
		Checksum:  Checksum(content),
		Content:   content,
		FetchedAt: l.now().UTC().Truncate(time.Second),
	}

	_, err := l.db.ExecContext(ctx, `
		INSERT INTO ontologies (iri, checksum, content, fetched_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(iri) DO UPDATE SET
			checksum = excluded.checksum,
			content = excluded.content,
			fetched_at = excluded.fetched_at
	`, entry.IRI, entry.Checksum, entry.Content, entry.FetchedAt.Unix())
	if err != nil {
		return nil, fmt.Errorf("store ontology %s: %w", iri, err)
	}
	return entry, nil
}

// Get returns the document stored under iri. It returns ErrNotFound when
// there is none and ErrChecksumMismatch when the content was altered.
func (l *Library) Get(ctx context.Context, iri string) (*Entry, error) {
	row := l.db.QueryRowContext(ctx,
		`SELECT iri, checksum, content, fetched_at FROM ontologies WHERE iri = ?`, iri)

	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get ontology %s: %w", iri, err)
	}
	if Checksum(entry.Content) != entry.Checksum {
		return nil, fmt.Errorf("%w: %s", ErrChecksumMismatch, iri)
	}
	return entry, nil
}

// List returns every stored document without its content, ordered by IRI.
func (l *Library) List(ctx context.Context) ([]*Entry, error) {
	rows, err := l.db.QueryContext(ctx,
		`SELECT iri, checksum, fetched_at FROM ontologies ORDER BY iri`)
	if err != nil {
		return nil, fmt.Errorf("list ontologies: %w", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		var (
			entry     Entry
			fetchedAt int64
		)
		if err := rows.Scan(&entry.IRI, &entry.Checksum, &fetchedAt); err != nil {
			return nil, fmt.Errorf("scan ontology: %w", err)
		}
		entry.FetchedAt = time.Unix(fetchedAt, 0).UTC()
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list ontologies: %w", err)
	}
	return entries, nil
}

// Delete removes the document stored under iri. It returns ErrNotFound when
// there is none.
func (l *Library) Delete(ctx context.Context, iri string) error {
	res, err := l.db.ExecContext(ctx, `DELETE FROM ontologies WHERE iri = ?`, iri)
	if err != nil {
		return fmt.Errorf("delete ontology %s: %w", iri, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete ontology %s: %w", iri, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanEntry(s *sql.Row) (*Entry, error) {
	var (
		entry     Entry
		fetchedAt int64
	)
	if err := s.Scan(&entry.IRI, &entry.Checksum, &entry.Content, &fetchedAt); err != nil {
		return nil, err
	}
	entry.FetchedAt = time.Unix(fetchedAt, 0).UTC()
	return &entry, nil
}
