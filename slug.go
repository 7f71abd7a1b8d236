package sitesearch

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxSlugLength is the maximum length of a slug before its counter suffix.
const MaxSlugLength = 40

var disambiguatorRe = regexp.MustCompile(`-\d+$`)

// Slugify creates a URL-safe slug from arbitrary text.
// The text is lowercased and stripped of diacritics; runs of characters
// outside [a-z0-9] collapse into a single hyphen, leading and trailing
// hyphens are dropped and the result is cut to MaxSlugLength, without
// leaving a hyphen at the cut.
func Slugify(text string) string {
	lower := strings.ToLower(text)
	stripped, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn))), lower)
	if err != nil {
		stripped = lower
	}

	var sb strings.Builder
	pendingHyphen := false
	for _, r := range stripped {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && sb.Len() > 0 {
				sb.WriteByte('-')
			}
			pendingHyphen = false
			sb.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}

	slug := sb.String()
	if len(slug) > MaxSlugLength {
		slug = strings.TrimRight(slug[:MaxSlugLength], "-")
	}
	return slug
}

// SynthesizedAnchor appends the per-page counter to a base slug.
func SynthesizedAnchor(base string, n int) string {
	return base + "-" + strconv.Itoa(n)
}

// StripDisambiguator removes a trailing "-<digits>" counter from an anchor.
func StripDisambiguator(anchor string) string {
	return disambiguatorRe.ReplaceAllString(anchor, "")
}

// SlugMatches reports whether a freshly computed slug refers to the same
// content as a base slug taken from a deep link. Equal slugs match, and so
// do slugs where either one is a prefix of the other. Empty slugs never match.
func SlugMatches(slug, base string) bool {
	if slug == "" || base == "" {
		return false
	}
	return slug == base || strings.HasPrefix(slug, base) || strings.HasPrefix(base, slug)
}
