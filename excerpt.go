package sitesearch

import (
	"slices"
	"unicode"
)

// Excerpt and highlight limits, in characters.
const (
	ExcerptThreshold    = 100
	ExcerptRadius       = 40
	SecondaryLength     = 60
	MaxSecondaryMatches = 3
)

// Ellipsis marks text cut off at an excerpt boundary.
const Ellipsis = "..."

// Highlighted is text split around the first occurrence of a query.
// Match is empty when the query does not occur.
type Highlighted struct {
	Before string
	Match  string
	After  string
}

// String returns the text without highlight markers.
func (h Highlighted) String() string {
	return h.Before + h.Match + h.After
}

// IndexFold returns the character offset of the first case-insensitive
// occurrence of query in text, or -1 if there is none.
func IndexFold(text, query string) int {
	t, q := foldRunes(text), foldRunes(query)
	if len(q) == 0 {
		return 0
	}
	for i := 0; i+len(q) <= len(t); i++ {
		if slices.Equal(t[i:i+len(q)], q) {
			return i
		}
	}
	return -1
}

func foldRunes(s string) []rune {
	r := []rune(s)
	for i, c := range r {
		r[i] = unicode.ToLower(c)
	}
	return r
}

// Excerpt shortens text longer than ExcerptThreshold to a window of
// ExcerptRadius characters on either side of the first occurrence of query.
// An ellipsis marks each side where the window stops short of the text.
func Excerpt(text, query string) string {
	r := []rune(text)
	if len(r) <= ExcerptThreshold {
		return text
	}

	idx := IndexFold(text, query)
	if idx < 0 {
		return Truncate(text, ExcerptThreshold)
	}

	start := max(0, idx-ExcerptRadius)
	end := min(len(r), idx+len([]rune(query))+ExcerptRadius)

	excerpt := string(r[start:end])
	if start > 0 {
		excerpt = Ellipsis + excerpt
	}
	if end < len(r) {
		excerpt += Ellipsis
	}
	return excerpt
}

// Truncate cuts text to n characters, appending an ellipsis when it was longer.
func Truncate(text string, n int) string {
	r := []rune(text)
	if len(r) <= n {
		return text
	}
	return string(r[:n]) + Ellipsis
}

// Highlight splits text around the first case-insensitive occurrence of query.
// Only the first occurrence is marked.
func Highlight(text, query string) Highlighted {
	idx := IndexFold(text, query)
	if idx < 0 || query == "" {
		return Highlighted{Before: text}
	}
	r := []rune(text)
	end := idx + len([]rune(query))
	return Highlighted{
		Before: string(r[:idx]),
		Match:  string(r[idx:end]),
		After:  string(r[end:]),
	}
}
