package main

import (
	"encoding/json"
	"fmt"
	"path"
	"path/filepath"

	"github.com/fwojciec/sitesearch"
	sitefs "github.com/fwojciec/sitesearch/fs"
	"github.com/fwojciec/sitesearch/goquery"
)

// IndexFile holds the exported fragments of every page.
const IndexFile = "index.json"

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	out := filepath.Clean(c.Out)
	store := sitefs.NewSiteStore(filepath.Dir(out), filepath.Base(out))

	if err := c.export(deps, store); err != nil {
		_ = store.Abort()
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitesearch.ErrorMessage(err))
		return err
	}
	if err := store.Commit(); err != nil {
		_ = store.Abort()
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitesearch.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d pages in %d languages to %s\n",
		len(deps.Config.Pages), len(deps.Catalog.Languages()), store.Dir())
	return nil
}

func (c *ExportCmd) export(deps *Dependencies, store *sitefs.SiteStore) error {
	index := make(map[string][]sitesearch.Fragment, len(deps.Config.Pages))

	for _, p := range deps.Config.Pages {
		body, err := deps.Fetcher.Fetch(deps.Ctx, p.URL)
		if err != nil {
			return fmt.Errorf("fetching %s: %w", p.URL, err)
		}

		fragments := deps.Loader.LoadPage(deps.Ctx, p.URL)
		if fragments == nil {
			fragments = []sitesearch.Fragment{}
		}
		index[p.URL] = fragments

		for _, lang := range deps.Catalog.Languages() {
			enhanced, err := goquery.EnhancePage(body, deps.Catalog.Dictionary(lang))
			if err != nil {
				return fmt.Errorf("enhancing %s: %w", p.URL, err)
			}
			if err := store.Save(deps.Ctx, path.Join(lang, p.URL), []byte(enhanced)); err != nil {
				return fmt.Errorf("saving %s/%s: %w", lang, p.URL, err)
			}
		}
	}

	data, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return err
	}
	return store.Save(deps.Ctx, IndexFile, data)
}
