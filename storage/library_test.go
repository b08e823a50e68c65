package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseIRI = "http://example.org/base"

// setupTestLibrary opens a library in a temporary directory.
func setupTestLibrary(t *testing.T) *Library {
	t.Helper()

	lib, err := Open(filepath.Join(t.TempDir(), "nested", "library.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, lib.Close())
	})
	return lib
}

func TestChecksum(t *testing.T) {
	// SHA-256 of the empty input.
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", Checksum(nil))
	assert.NotEqual(t, Checksum([]byte("a")), Checksum([]byte("b")))
}

func TestLibraryPutGet(t *testing.T) {
	lib := setupTestLibrary(t)
	ctx := context.Background()
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	lib.now = func() time.Time { return fixed }

	content := []byte("<http://example.org/base> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://www.w3.org/2002/07/owl#Ontology> .\n")
	put, err := lib.Put(ctx, baseIRI, content)
	require.NoError(t, err)
	assert.Equal(t, Checksum(content), put.Checksum)

	got, err := lib.Get(ctx, baseIRI)
	require.NoError(t, err)
	assert.Equal(t, baseIRI, got.IRI)
	assert.Equal(t, content, got.Content)
	assert.Equal(t, put.Checksum, got.Checksum)
	assert.True(t, fixed.Equal(got.FetchedAt))
}

func TestLibraryPutReplaces(t *testing.T) {
	lib := setupTestLibrary(t)
	ctx := context.Background()

	_, err := lib.Put(ctx, baseIRI, []byte("first"))
	require.NoError(t, err)
	_, err = lib.Put(ctx, baseIRI, []byte("second"))
	require.NoError(t, err)

	got, err := lib.Get(ctx, baseIRI)
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), got.Content)

	entries, err := lib.List(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestLibraryNotFound(t *testing.T) {
	lib := setupTestLibrary(t)
	ctx := context.Background()

	_, err := lib.Get(ctx, "http://example.org/missing")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, lib.Delete(ctx, "http://example.org/missing"), ErrNotFound)
}

func TestLibraryListAndDelete(t *testing.T) {
	lib := setupTestLibrary(t)
	ctx := context.Background()

	for _, iri := range []string{"http://example.org/c", "http://example.org/a", "http://example.org/b"} {
		_, err := lib.Put(ctx, iri, []byte(iri))
		require.NoError(t, err)
	}

	entries, err := lib.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "http://example.org/a", entries[0].IRI)
	assert.Equal(t, "http://example.org/c", entries[2].IRI)
	assert.Nil(t, entries[0].Content, "listing leaves content out")

	require.NoError(t, lib.Delete(ctx, "http://example.org/b"))
	entries, err = lib.List(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestLibraryDetectsTampering(t *testing.T) {
	lib := setupTestLibrary(t)
	ctx := context.Background()

	_, err := lib.Put(ctx, baseIRI, []byte("original"))
	require.NoError(t, err)
	_, err = lib.db.ExecContext(ctx, `UPDATE ontologies SET content = ? WHERE iri = ?`, []byte("altered"), baseIRI)
	require.NoError(t, err)

	_, err = lib.Get(ctx, baseIRI)
	assert.ErrorIs(t, err, ErrChecksumMismatch)
}

func TestLibraryPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.db")
	ctx := context.Background()

	lib, err := Open(path)
	require.NoError(t, err)
	_, err = lib.Put(ctx, baseIRI, []byte("kept"))
	require.NoError(t, err)
	require.NoError(t, lib.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()
	assert.Equal(t, path, reopened.Path())

	got, err := reopened.Get(ctx, baseIRI)
	require.NoError(t, err)
	assert.Equal(t, []byte("kept"), got.Content)
}
