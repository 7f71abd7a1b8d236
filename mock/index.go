package mock

import "github.com/fwojciec/sitesearch"

var _ sitesearch.FragmentIndex = (*FragmentIndex)(nil)

// FragmentIndex is a mock implementation of sitesearch.FragmentIndex.
type FragmentIndex struct {
	FragmentsFn func(url string) ([]sitesearch.Fragment, bool)
}

func (i *FragmentIndex) Fragments(url string) ([]sitesearch.Fragment, bool) {
	return i.FragmentsFn(url)
}
