package sitesearch

import "time"

// SearchView is the search user interface driven by the search controller.
// Adapters wire it to a real document, a terminal or a test double.
type SearchView interface {
	// Query returns the current text of the search input.
	Query() string

	ShowSearch()
	HideSearch()
	SetExpanded(expanded bool)
	FocusInput()
	ClearInput()

	// ShowResults replaces the results container with markup and reveals it.
	ShowResults(markup string)

	// HideResults empties and hides the results container.
	HideResults()
}

// DeepLinkTarget is the live document an incoming URL fragment refers to.
type DeepLinkTarget interface {
	// MaterializeAnchor finds the element a fragment identifier refers to
	// when no element carries that identifier yet, and assigns it.
	// Returns false when the identifier already exists or nothing matches.
	MaterializeAnchor(fragment string) bool

	ScrollIntoView(id string)
	SetHighlighted(id string, highlighted bool)
}

// DefaultHighlightDuration is how long a deep-linked element stays highlighted.
const DefaultHighlightDuration = 2 * time.Second

// DefaultDebounce is the delay after the last keystroke before a search runs.
const DefaultDebounce = 400 * time.Millisecond
