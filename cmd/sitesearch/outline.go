package main

import (
	"fmt"

	gq "github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sitesearch"
	"github.com/fwojciec/sitesearch/goquery"
)

// Run executes the outline command.
func (c *OutlineCmd) Run(deps *Dependencies) error {
	page, err := fetchPage(deps, c.Page)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitesearch.ErrorMessage(err))
		return err
	}

	var entries []sitesearch.OutlineEntry
	page.Do(func(doc *gq.Document) {
		entries = goquery.BuildOutline(doc)
	})

	if len(entries) == 0 {
		fmt.Fprintf(deps.Stdout, "%s has no headings.\n", c.Page)
		return nil
	}
	fmt.Fprintln(deps.Stdout, sitesearch.FormatOutline(entries))
	return nil
}

// fetchPage fetches and parses one page of the site.
func fetchPage(deps *Dependencies, name string) (*goquery.Page, error) {
	body, err := deps.Fetcher.Fetch(deps.Ctx, name)
	if err != nil {
		return nil, err
	}
	return goquery.NewPage(body)
}
