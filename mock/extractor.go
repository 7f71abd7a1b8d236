package mock

import "github.com/fwojciec/sitesearch"

var _ sitesearch.FragmentExtractor = (*FragmentExtractor)(nil)

// FragmentExtractor is a mock implementation of sitesearch.FragmentExtractor.
type FragmentExtractor struct {
	ExtractFn func(html string) ([]sitesearch.Fragment, error)
}

func (e *FragmentExtractor) Extract(html string) ([]sitesearch.Fragment, error) {
	return e.ExtractFn(html)
}
