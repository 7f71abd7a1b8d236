package sitesearch

// ResultRenderer turns search results into presentation markup.
type ResultRenderer interface {
	// Render returns the markup for results of query.
	// Zero results render a message embedding the literal query.
	Render(results []SearchResult, query string, tr Translator) string
}

// Converter transforms HTML content into another textual format.
type Converter interface {
	Convert(html string) (string, error)
}
