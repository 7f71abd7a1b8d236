package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/sitesearch"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	query, ok := sitesearch.NormalizeQuery(c.Query)
	if !ok {
		err := sitesearch.Errorf(sitesearch.EINVALID, "query must be at least %d characters", sitesearch.MinQueryLength)
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitesearch.ErrorMessage(err))
		return err
	}

	results, err := deps.Loader.Search(deps.Ctx, deps.Translator, query)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitesearch.ErrorMessage(err))
		return err
	}

	switch c.Format {
	case "json":
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		if results == nil {
			results = []sitesearch.SearchResult{}
		}
		return enc.Encode(results)
	case "html":
		fmt.Fprintln(deps.Stdout, deps.Renderer.Render(results, query, deps.Translator))
		return nil
	case "markdown":
		md, err := deps.Converter.Convert(deps.Renderer.Render(results, query, deps.Translator))
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", sitesearch.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stdout, md)
		return nil
	}

	if len(results) == 0 {
		fmt.Fprintf(deps.Stdout, "No results for %q.\n", query)
		return nil
	}
	fmt.Fprintln(deps.Stdout, sitesearch.FormatResults(results, query))
	return nil
}
