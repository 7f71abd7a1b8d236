// Package fs reads site pages from a directory and writes exported sites
// to disk with atomic update semantics.
package fs

import (
	"context"
	"errors"
	"io/fs"
	"strings"

	"github.com/fwojciec/sitesearch"
)

// Ensure Fetcher implements sitesearch.Fetcher at compile time.
var _ sitesearch.Fetcher = (*Fetcher)(nil)

// Fetcher reads page HTML from a file system holding the site's files.
type Fetcher struct {
	fsys fs.FS
}

// NewFetcher returns a fetcher reading pages from fsys.
func NewFetcher(fsys fs.FS) *Fetcher {
	return &Fetcher{fsys: fsys}
}

// Fetch returns the content of the file named by page, relative to the
// site root. The root and paths ending in "/" name the directory's
// index page. Missing files return ENOTFOUND.
func (f *Fetcher) Fetch(ctx context.Context, page string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := strings.TrimPrefix(page, "/")
	if i := strings.IndexAny(name, "?#"); i >= 0 {
		name = name[:i]
	}
	if name == "" || strings.HasSuffix(name, "/") {
		name += sitesearch.IndexPage
	}
	if !fs.ValidPath(name) {
		return "", sitesearch.Errorf(sitesearch.EINVALID, "invalid page path %q", page)
	}

	data, err := fs.ReadFile(f.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", sitesearch.Errorf(sitesearch.ENOTFOUND, "page %q not found", page)
		}
		return "", err
	}
	return string(data), nil
}
