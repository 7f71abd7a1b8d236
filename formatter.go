package sitesearch

import "strings"

// FormatResults formats results as plain text for terminal display.
// Each page is a header line with its deep link, followed by the excerpt of
// the first match and up to MaxSecondaryMatches further matches.
// Pages are separated by blank lines. No results format as an empty string.
func FormatResults(results []SearchResult, query string) string {
	if len(results) == 0 {
		return ""
	}

	parts := make([]string, 0, len(results))
	for _, r := range results {
		var b strings.Builder
		b.WriteString(r.DisplayTitle + "  " + r.Link())
		if len(r.Matches) > 0 {
			b.WriteString("\n  " + Excerpt(r.Matches[0].Text, query))
		}
		for i, m := range r.Matches[1:] {
			if i == MaxSecondaryMatches {
				break
			}
			b.WriteString("\n  - " + Truncate(m.Text, SecondaryLength) + "  " + PageLink(r.Page.URL, m.Anchor))
		}
		parts = append(parts, b.String())
	}

	return strings.Join(parts, "\n\n")
}

// FormatFragments formats the fragments of one page, one per line, as the
// deep link followed by a tab and the text. Fragments without an anchor
// link to the page alone.
func FormatFragments(page string, fragments []Fragment) string {
	lines := make([]string, 0, len(fragments))
	for _, f := range fragments {
		lines = append(lines, PageLink(page, f.Anchor)+"\t"+f.Text)
	}
	return strings.Join(lines, "\n")
}

// FormatOutline formats a page map as an indented list, two spaces per
// nesting level.
func FormatOutline(entries []OutlineEntry) string {
	var lines []string
	var walk func(entries []OutlineEntry, depth int)
	walk = func(entries []OutlineEntry, depth int) {
		for _, e := range entries {
			lines = append(lines, strings.Repeat("  ", depth)+"- "+e.Title+" (#"+e.Anchor+")")
			walk(e.Children, depth+1)
		}
	}
	walk(entries, 0)
	return strings.Join(lines, "\n")
}
