package goquery

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sitesearch"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Page map labels, replaced by the translation pass.
const (
	OutlineTitleKey   = "mapa.titulo"
	OutlineTitle      = "Índice de contenido"
	OutlineNavigation = "Índice de contenidos"
)

// BuildOutline returns the h2/h3 headings of the main content as a tree.
// Each heading links to its own id, else to the id of its section or
// article. Headings with neither are assigned "seccion-<n>", n being the
// heading's position among all scanned headings. An h3 nests under the
// preceding h2; an h3 before any h2 stays at the top level.
func BuildOutline(doc *goquery.Document) []sitesearch.OutlineEntry {
	var entries []sitesearch.OutlineEntry
	parent := -1

	doc.Find("main h2, main h3").Each(func(i int, h *goquery.Selection) {
		anchor := idOf(h)
		if anchor == "" {
			if section := h.Closest(sectionSelector); section.Length() > 0 {
				anchor = idOf(section)
			}
		}
		if anchor == "" {
			anchor = sitesearch.OutlineAnchorPrefix + strconv.Itoa(i)
			h.SetAttr("id", anchor)
		}

		key, _ := h.Attr(TranslationAttr)
		entry := sitesearch.OutlineEntry{
			Title:          strings.TrimSpace(h.Text()),
			Anchor:         anchor,
			TranslationKey: key,
		}

		if goquery.NodeName(h) == "h2" {
			entry.Level = 2
			entries = append(entries, entry)
			parent = len(entries) - 1
			return
		}

		entry.Level = 3
		if parent < 0 {
			entries = append(entries, entry)
			return
		}
		entries[parent].Children = append(entries[parent].Children, entry)
	})

	return entries
}

// RenderOutline appends the page map to the document's aside.
// The aside is hidden when the main content has no h2/h3 headings.
// Documents without an aside are left untouched.
func RenderOutline(doc *goquery.Document) []sitesearch.OutlineEntry {
	aside := doc.Find("aside").First()
	if aside.Length() == 0 {
		return nil
	}

	title := element(atom.H2, TranslationAttr, OutlineTitleKey)
	title.AppendChild(textNode(OutlineTitle))
	aside.AppendNodes(title)

	entries := BuildOutline(doc)
	if len(entries) == 0 {
		aside.SetAttr("hidden", "")
		return nil
	}

	nav := element(atom.Nav, "aria-label", OutlineNavigation)
	nav.AppendChild(outlineList(entries))
	aside.AppendNodes(nav)
	return entries
}

func outlineList(entries []sitesearch.OutlineEntry) *html.Node {
	ul := element(atom.Ul)
	for _, e := range entries {
		a := element(atom.A, "href", "#"+e.Anchor)
		if e.TranslationKey != "" {
			a.Attr = append(a.Attr, html.Attribute{Key: TranslationAttr, Val: e.TranslationKey})
		}
		a.AppendChild(textNode(e.Title))

		li := element(atom.Li)
		li.AppendChild(a)
		if len(e.Children) > 0 {
			li.AppendChild(outlineList(e.Children))
		}
		ul.AppendChild(li)
	}
	return ul
}

// element creates an element node; attrs alternate keys and values.
func element(a atom.Atom, attrs ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
