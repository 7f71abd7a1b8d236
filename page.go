package sitesearch

import (
	"context"
	"path"
	"strings"
)

// Display languages known to the site.
const (
	DefaultLanguage = "es"
	AltLanguage     = "en"
)

// IndexPage is the page served for an empty path.
const IndexPage = "index.html"

// PageDescriptor describes one page of the site. Descriptors are static
// configuration and are never modified after startup.
type PageDescriptor struct {
	URL      string `json:"url" koanf:"url"`
	Title    string `json:"title" koanf:"title"`
	TitleAlt string `json:"titleAlt" koanf:"title_alt"`
}

// DisplayTitle returns the title shown for the page in the given language.
// The alternate title is used only for AltLanguage and only when set.
func (p PageDescriptor) DisplayTitle(lang string) string {
	if lang == AltLanguage && p.TitleAlt != "" {
		return p.TitleAlt
	}
	return p.Title
}

// Fragment is one independently searchable unit of page text.
type Fragment struct {
	// Text is the source-language text as it appears in the markup.
	Text string `json:"text"`

	// TranslationKey looks up a display-language variant of Text.
	// Empty when the element carries no translation key.
	TranslationKey string `json:"translationKey,omitempty"`

	// Anchor is a stable in-page identifier.
	// Empty means the fragment can only be reached by opening the page.
	Anchor string `json:"anchor,omitempty"`
}

// Fetcher retrieves the HTML of a page.
type Fetcher interface {
	// Fetch returns the raw HTML body for the page URL.
	// Any non-success response is an error.
	Fetch(ctx context.Context, url string) (html string, err error)
}

// FragmentExtractor turns an HTML document into searchable fragments.
type FragmentExtractor interface {
	// Extract parses HTML and returns fragments in extraction order.
	// A document without a main-content root yields no fragments.
	Extract(html string) ([]Fragment, error)
}

// FragmentIndex exposes the fragments cached per page.
type FragmentIndex interface {
	// Fragments returns the cached fragments for a page URL.
	// The boolean is false when the page has not been loaded yet;
	// a loaded page may still have zero fragments.
	Fragments(url string) ([]Fragment, bool)
}

// CurrentPage returns the file name of the page at the given URL path.
// An empty path or a directory maps to IndexPage.
func CurrentPage(urlPath string) string {
	if urlPath == "" || strings.HasSuffix(urlPath, "/") {
		return IndexPage
	}
	name := path.Base(urlPath)
	if name == "." || name == "/" {
		return IndexPage
	}
	return name
}
