package fs

import (
	"context"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/fwojciec/sitesearch"
)

// SiteStore writes an exported site with atomic update semantics.
// Files are saved to a temporary directory, then moved atomically on Commit.
type SiteStore struct {
	baseDir string
	name    string
}

// NewSiteStore creates a new SiteStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewSiteStore(baseDir, name string) *SiteStore {
	return &SiteStore{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *SiteStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *SiteStore) backupDir() string {
	return filepath.Join(s.baseDir, s.name+".old")
}

func (s *SiteStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Dir returns the directory the site ends up in after Commit.
func (s *SiteStore) Dir() string {
	return s.finalDir()
}

// Save writes content to the slash-separated path name inside the site.
func (s *SiteStore) Save(ctx context.Context, name string, content []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !iofs.ValidPath(name) || name == "." {
		return sitesearch.Errorf(sitesearch.EINVALID, "invalid file path %q", name)
	}

	fullPath := filepath.Join(s.tempDir(), filepath.FromSlash(name))

	// Create parent directories
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, content, 0644)
}

// Commit replaces the final directory with everything saved so far.
// The previous export is kept aside until the new one is in place, and is
// restored when the swap fails.
func (s *SiteStore) Commit() error {
	// Clear a backup left by an interrupted commit
	if err := os.RemoveAll(s.backupDir()); err != nil {
		return err
	}

	hadPrevious := true
	if err := os.Rename(s.finalDir(), s.backupDir()); err != nil {
		if !errors.Is(err, iofs.ErrNotExist) {
			return err
		}
		hadPrevious = false
	}

	if err := os.Rename(s.tempDir(), s.finalDir()); err != nil {
		if hadPrevious {
			if rerr := os.Rename(s.backupDir(), s.finalDir()); rerr != nil {
				return errors.Join(err, rerr)
			}
		}
		return err
	}

	return os.RemoveAll(s.backupDir())
}

// Abort discards everything saved since the last Commit.
func (s *SiteStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}
