package mock

import "github.com/fwojciec/sitesearch"

var _ sitesearch.ResultRenderer = (*ResultRenderer)(nil)

// ResultRenderer is a mock implementation of sitesearch.ResultRenderer.
type ResultRenderer struct {
	RenderFn func(results []sitesearch.SearchResult, query string, tr sitesearch.Translator) string
}

func (r *ResultRenderer) Render(results []sitesearch.SearchResult, query string, tr sitesearch.Translator) string {
	return r.RenderFn(results, query, tr)
}
