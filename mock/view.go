package mock

import (
	"sync"

	"github.com/fwojciec/sitesearch"
)

// Compile-time interface verification.
var (
	_ sitesearch.SearchView     = (*SearchView)(nil)
	_ sitesearch.DeepLinkTarget = (*DeepLinkTarget)(nil)
)

// SearchView is a recording implementation of sitesearch.SearchView.
// It keeps the state a real view would show so tests can inspect it.
type SearchView struct {
	mu sync.Mutex

	Input          string
	SearchVisible  bool
	Expanded       bool
	Focused        bool
	ResultsVisible bool
	Results        string

	// Rendered records every markup passed to ShowResults, in order.
	Rendered []string
}

func (v *SearchView) Query() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.Input
}

// SetQuery replaces the input text, as typing would.
func (v *SearchView) SetQuery(q string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.Input = q
}

func (v *SearchView) ShowSearch() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.SearchVisible = true
}

func (v *SearchView) HideSearch() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.SearchVisible = false
}

func (v *SearchView) SetExpanded(expanded bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.Expanded = expanded
}

func (v *SearchView) FocusInput() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.Focused = true
}

func (v *SearchView) ClearInput() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.Input = ""
}

func (v *SearchView) ShowResults(markup string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.Results = markup
	v.ResultsVisible = true
	v.Rendered = append(v.Rendered, markup)
}

func (v *SearchView) HideResults() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.Results = ""
	v.ResultsVisible = false
}

// Snapshot returns the visible results state under the lock.
func (v *SearchView) Snapshot() (results string, visible bool, rendered []string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.Results, v.ResultsVisible, append([]string(nil), v.Rendered...)
}

// DeepLinkTarget is a mock implementation of sitesearch.DeepLinkTarget.
type DeepLinkTarget struct {
	MaterializeAnchorFn func(fragment string) bool
	ScrollIntoViewFn    func(id string)
	SetHighlightedFn    func(id string, highlighted bool)
}

func (t *DeepLinkTarget) MaterializeAnchor(fragment string) bool {
	return t.MaterializeAnchorFn(fragment)
}

func (t *DeepLinkTarget) ScrollIntoView(id string) {
	t.ScrollIntoViewFn(id)
}

func (t *DeepLinkTarget) SetHighlighted(id string, highlighted bool) {
	t.SetHighlightedFn(id, highlighted)
}
