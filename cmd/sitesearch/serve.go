package main

import (
	"fmt"
	"net/http"

	"github.com/fwojciec/sitesearch"
	sitehttp "github.com/fwojciec/sitesearch/http"
	"github.com/fwojciec/sitesearch/prometheus"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	if deps.Site == nil {
		err := sitesearch.Errorf(sitesearch.EINVALID, "serve needs a local site: pass --dir")
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitesearch.ErrorMessage(err))
		return err
	}

	srv := &sitehttp.Server{
		Site:       deps.Site,
		Searcher:   prometheus.NewInstrumentedSearcher(deps.Loader, deps.Metrics),
		Catalog:    deps.Catalog,
		Renderer:   deps.Renderer,
		Metrics:    deps.Metrics.Handler(),
		Middleware: []func(http.Handler) http.Handler{deps.Metrics.Middleware},
		Logger:     deps.Logger,
	}

	// Warm the index so the first search does not wait on every page.
	go func() { _ = deps.Loader.LoadAll(deps.Ctx) }()

	fmt.Fprintf(deps.Stdout, "Serving %d pages on %s\n", len(deps.Config.Pages), c.Addr)
	if err := srv.ListenAndServe(deps.Ctx, c.Addr); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitesearch.ErrorMessage(err))
		return err
	}
	return nil
}
