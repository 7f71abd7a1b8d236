package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/sitesearch"
	"github.com/fwojciec/sitesearch/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: Atomic Site Export
// The store uses a temp directory so a failed export never leaves a
// half-written site behind.

func TestSiteStore_SaveWritesToTempDirectory(t *testing.T) {
	t.Parallel()

	// Given a store targeting a directory
	base := t.TempDir()
	store := fs.NewSiteStore(base, "public")

	// When I save a page
	err := store.Save(context.Background(), "en/index.html", []byte("<html></html>"))

	// Then no error occurs
	require.NoError(t, err)

	// And the file exists in the temp directory (not final)
	_, err = os.Stat(filepath.Join(base, "public.tmp", "en", "index.html"))
	require.NoError(t, err, "file should exist in temp directory")

	// And final directory does not exist yet
	_, err = os.Stat(filepath.Join(base, "public"))
	assert.True(t, os.IsNotExist(err), "final directory should not exist before commit")
}

func TestSiteStore_CommitReplacesFinalDirectory(t *testing.T) {
	t.Parallel()

	// Given a previous export
	base := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(base, "public"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(base, "public", "old.html"), []byte("old"), 0644))

	// When I save and commit a new export
	store := fs.NewSiteStore(base, "public")
	require.NoError(t, store.Save(context.Background(), "es/index.html", []byte("nuevo")))
	require.NoError(t, store.Commit())

	// Then the new file is in place
	data, err := os.ReadFile(filepath.Join(store.Dir(), "es", "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "nuevo", string(data))

	// And the old export is gone, as are the temp and backup directories
	_, err = os.Stat(filepath.Join(base, "public", "old.html"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(base, "public.tmp"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(base, "public.old"))
	assert.True(t, os.IsNotExist(err))
}

func TestSiteStore_FailedCommitKeepsPreviousExport(t *testing.T) {
	t.Parallel()

	// Given a previous export
	base := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(base, "public"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(base, "public", "old.html"), []byte("old"), 0644))

	// When I commit with nothing saved, so there is no temp directory to move
	store := fs.NewSiteStore(base, "public")
	err := store.Commit()

	// Then the commit fails
	require.Error(t, err)

	// And the previous export is still in place, with no backup left over
	data, err := os.ReadFile(filepath.Join(base, "public", "old.html"))
	require.NoError(t, err)
	assert.Equal(t, "old", string(data))
	_, err = os.Stat(filepath.Join(base, "public.old"))
	assert.True(t, os.IsNotExist(err))
}

func TestSiteStore_CommitCreatesFinalDirectory(t *testing.T) {
	t.Parallel()

	// Given no previous export
	base := t.TempDir()
	store := fs.NewSiteStore(base, "public")
	require.NoError(t, store.Save(context.Background(), "index.html", []byte("hola")))

	// When I commit
	require.NoError(t, store.Commit())

	// Then the site is in place
	data, err := os.ReadFile(filepath.Join(base, "public", "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "hola", string(data))
}

func TestSiteStore_AbortDiscardsTempDirectory(t *testing.T) {
	t.Parallel()

	// Given a partly saved export
	base := t.TempDir()
	store := fs.NewSiteStore(base, "public")
	require.NoError(t, store.Save(context.Background(), "index.html", []byte("x")))

	// When I abort
	require.NoError(t, store.Abort())

	// Then nothing remains
	_, err := os.Stat(filepath.Join(base, "public.tmp"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(base, "public"))
	assert.True(t, os.IsNotExist(err))
}

func TestSiteStore_SaveRejectsEscapingPaths(t *testing.T) {
	t.Parallel()

	store := fs.NewSiteStore(t.TempDir(), "public")

	err := store.Save(context.Background(), "../fuera.html", []byte("x"))

	assert.Equal(t, sitesearch.EINVALID, sitesearch.ErrorCode(err))
}
