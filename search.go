package sitesearch

import (
	"strings"
	"unicode/utf8"
)

// MinQueryLength is the shortest query, in characters, that runs a search.
const MinQueryLength = 2

// Match is one matching fragment of a page.
type Match struct {
	// Text is the fragment's display text in the active language.
	Text   string `json:"text"`
	Anchor string `json:"anchor,omitempty"`
}

// SearchResult groups the matches found on one page.
type SearchResult struct {
	Page         PageDescriptor `json:"page"`
	DisplayTitle string         `json:"displayTitle"`
	Matches      []Match        `json:"matches"`
}

// Link returns the deep link of the result's first match.
func (r SearchResult) Link() string {
	if len(r.Matches) == 0 {
		return r.Page.URL
	}
	return PageLink(r.Page.URL, r.Matches[0].Anchor)
}

// PageLink returns "page#anchor", or the page alone when anchor is empty.
func PageLink(page, anchor string) string {
	if anchor == "" {
		return page
	}
	return page + "#" + anchor
}

// NormalizeQuery trims and case-folds raw user input.
// The boolean is false when the result is too short to search,
// in which case callers must hide any results instead of searching.
func NormalizeQuery(raw string) (string, bool) {
	q := strings.ToLower(strings.TrimSpace(raw))
	return q, utf8.RuneCountInString(q) >= MinQueryLength
}

// Search matches query against every loaded page of the index.
// Pages are visited in configuration order and pages missing from the index
// are skipped. A page appears in the results only when at least one of its
// fragments contains the query, compared case-insensitively against the
// fragment's display text. Matches keep extraction order.
func Search(pages []PageDescriptor, index FragmentIndex, tr Translator, query string) []SearchResult {
	query = strings.ToLower(query)
	lang := LanguageOf(tr)

	var results []SearchResult
	for _, page := range pages {
		fragments, ok := index.Fragments(page.URL)
		if !ok {
			continue
		}

		var matches []Match
		for _, f := range fragments {
			text := DisplayText(f, tr)
			if IndexFold(text, query) < 0 {
				continue
			}
			matches = append(matches, Match{Text: text, Anchor: f.Anchor})
		}

		if len(matches) > 0 {
			results = append(results, SearchResult{
				Page:         page,
				DisplayTitle: page.DisplayTitle(lang),
				Matches:      matches,
			})
		}
	}
	return results
}

// TotalMatches counts the matches across all results.
func TotalMatches(results []SearchResult) int {
	total := 0
	for _, r := range results {
		total += len(r.Matches)
	}
	return total
}
