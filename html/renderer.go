// Package html renders search results as HTML built from x/net/html nodes.
package html

import (
	"strconv"
	"strings"

	"github.com/fwojciec/sitesearch"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Translation keys and their Spanish fallbacks used in result summaries.
const (
	NoResultsKey = "buscar.sin-resultados"
	ResultsKey   = "buscar.resultados"
	InKey        = "buscar.en"
	PagesKey     = "buscar.paginas"

	noResultsText = "No se encontraron resultados para"
	resultsText   = "resultados encontrados"
	inText        = "en"
	pagesText     = "páginas"
)

// SecondaryClass marks the list of additional matches of a page.
const SecondaryClass = "coincidencias"

var _ sitesearch.ResultRenderer = (*Renderer)(nil)

// Renderer renders search results into the markup of the results container.
type Renderer struct{}

// NewRenderer returns a result renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render returns the markup for results of query.
func (r *Renderer) Render(results []sitesearch.SearchResult, query string, tr sitesearch.Translator) string {
	var nodes []*html.Node
	if len(results) == 0 {
		nodes = []*html.Node{noResults(query, tr)}
	} else {
		nodes = []*html.Node{summary(results, tr), resultList(results, query)}
	}

	var b strings.Builder
	for _, n := range nodes {
		// Rendering into a strings.Builder cannot fail.
		_ = html.Render(&b, n)
	}
	return b.String()
}

func noResults(query string, tr sitesearch.Translator) *html.Node {
	p := element(atom.P)
	p.AppendChild(text(sitesearch.TranslateOr(tr, NoResultsKey, noResultsText) + ` "` + query + `"`))
	return p
}

func summary(results []sitesearch.SearchResult, tr sitesearch.Translator) *html.Node {
	strong := element(atom.Strong)
	strong.AppendChild(text(strconv.Itoa(sitesearch.TotalMatches(results))))

	p := element(atom.P)
	p.AppendChild(strong)
	p.AppendChild(text(" " +
		sitesearch.TranslateOr(tr, ResultsKey, resultsText) + " " +
		sitesearch.TranslateOr(tr, InKey, inText) + " " +
		strconv.Itoa(len(results)) + " " +
		sitesearch.TranslateOr(tr, PagesKey, pagesText)))
	return p
}

func resultList(results []sitesearch.SearchResult, query string) *html.Node {
	ul := element(atom.Ul)
	for _, res := range results {
		ul.AppendChild(resultItem(res, query))
	}
	return ul
}

func resultItem(res sitesearch.SearchResult, query string) *html.Node {
	li := element(atom.Li)

	a := element(atom.A, "href", res.Link())
	a.AppendChild(text(res.DisplayTitle))
	li.AppendChild(a)

	if len(res.Matches) == 0 {
		return li
	}

	excerpt := element(atom.P)
	appendHighlighted(excerpt, sitesearch.Highlight(sitesearch.Excerpt(res.Matches[0].Text, query), query))
	li.AppendChild(excerpt)

	secondary := res.Matches[1:]
	if len(secondary) > sitesearch.MaxSecondaryMatches {
		secondary = secondary[:sitesearch.MaxSecondaryMatches]
	}
	if len(secondary) == 0 {
		return li
	}

	more := element(atom.Ul, "class", SecondaryClass)
	for _, m := range secondary {
		link := element(atom.A, "href", sitesearch.PageLink(res.Page.URL, m.Anchor))
		appendHighlighted(link, sitesearch.Highlight(sitesearch.Truncate(m.Text, sitesearch.SecondaryLength), query))
		item := element(atom.Li)
		item.AppendChild(link)
		more.AppendChild(item)
	}
	li.AppendChild(more)
	return li
}

// appendHighlighted appends h to parent, wrapping the match in <mark>.
func appendHighlighted(parent *html.Node, h sitesearch.Highlighted) {
	if h.Before != "" {
		parent.AppendChild(text(h.Before))
	}
	if h.Match != "" {
		mark := element(atom.Mark)
		mark.AppendChild(text(h.Match))
		parent.AppendChild(mark)
	}
	if h.After != "" {
		parent.AppendChild(text(h.After))
	}
}

func element(a atom.Atom, attrs ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
