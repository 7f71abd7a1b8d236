package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/sitesearch"
)

// pageFragments is one page of the index as printed by --json.
type pageFragments struct {
	URL       string                `json:"url"`
	Fragments []sitesearch.Fragment `json:"fragments"`
}

// Run executes the index command.
func (c *IndexCmd) Run(deps *Dependencies) error {
	pages := deps.Loader.Pages()
	if c.Page != "" {
		pages = nil
		for _, p := range deps.Loader.Pages() {
			if p.URL == c.Page {
				pages = append(pages, p)
			}
		}
		if len(pages) == 0 {
			err := sitesearch.Errorf(sitesearch.ENOTFOUND, "page %q is not configured (pages: %s)", c.Page, strings.Join(deps.Config.PageURLs(), ", "))
			fmt.Fprintf(deps.Stderr, "error: %s\n", sitesearch.ErrorMessage(err))
			return err
		}
	}

	if err := deps.Loader.LoadAll(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitesearch.ErrorMessage(err))
		return err
	}

	var out []pageFragments
	for _, p := range pages {
		fragments, _ := deps.Loader.Fragments(p.URL)
		if fragments == nil {
			fragments = []sitesearch.Fragment{}
		}
		out = append(out, pageFragments{URL: p.URL, Fragments: fragments})
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	for i, p := range out {
		if i > 0 {
			fmt.Fprintln(deps.Stdout)
		}
		fmt.Fprintf(deps.Stdout, "# %s (%d fragments)\n", p.URL, len(p.Fragments))
		if len(p.Fragments) > 0 {
			fmt.Fprintln(deps.Stdout, sitesearch.FormatFragments(p.URL, p.Fragments))
		}
	}
	return nil
}
