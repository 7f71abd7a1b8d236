package sitesearch

// OutlineEntry is one heading of the page map.
type OutlineEntry struct {
	Level          int            `json:"level"`
	Title          string         `json:"title"`
	Anchor         string         `json:"anchor"`
	TranslationKey string         `json:"translationKey,omitempty"`
	Children       []OutlineEntry `json:"children,omitempty"`
}

// OutlineAnchorPrefix prefixes identifiers assigned to headings that have
// no identifier of their own and no identified section.
const OutlineAnchorPrefix = "seccion-"
