package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// MatchLanguage picks the supported language that best fits an
// Accept-Language header or a POSIX locale such as "en_US.UTF-8".
// Returns "" when nothing in supported is acceptable.
func MatchLanguage(preferred string, supported []string) string {
	if preferred == "" || len(supported) == 0 {
		return ""
	}

	var (
		tags  []language.Tag
		codes []string
	)
	for _, s := range supported {
		tag, err := language.Parse(s)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		codes = append(codes, s)
	}
	if len(tags) == 0 {
		return ""
	}

	wanted, _, err := language.ParseAcceptLanguage(normalizeLocale(preferred))
	if err != nil || len(wanted) == 0 {
		return ""
	}

	_, idx, conf := language.NewMatcher(tags).Match(wanted...)
	if conf == language.No {
		return ""
	}
	return codes[idx]
}

// normalizeLocale turns "en_US.UTF-8@euro" into "en-US".
func normalizeLocale(s string) string {
	if strings.ContainsAny(s, ",;") {
		return s
	}
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	return strings.ReplaceAll(s, "_", "-")
}
