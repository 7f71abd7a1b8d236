package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// ResolveAnchor returns a stable identifier for navigating to sel.
// The first of these wins:
//   - the element's own id
//   - the id of the nearest enclosing section or article
//   - the id of the nearest plain ancestor below root
//   - the id of the first identified heading inside the nearest section or article
//
// Returns an empty string when none applies. root may be empty, in which
// case ancestors are walked up to the document element.
func ResolveAnchor(sel, root *goquery.Selection) string {
	if id := idOf(sel); id != "" {
		return id
	}

	for p := sel.Parent(); p.Length() > 0; p = p.Parent() {
		if p.Is(sectionSelector) {
			if id := idOf(p); id != "" {
				return id
			}
		}
	}

	var stop *html.Node
	if root != nil && root.Length() > 0 {
		stop = root.Get(0)
	}
	for p := sel.Parent(); p.Length() > 0 && p.Get(0) != stop; p = p.Parent() {
		if id := idOf(p); id != "" {
			return id
		}
	}

	if container := sel.Closest(sectionSelector); container.Length() > 0 {
		var found string
		container.Find(headingSelector).EachWithBreak(func(_ int, h *goquery.Selection) bool {
			found = idOf(h)
			return found == ""
		})
		return found
	}

	return ""
}

func idOf(sel *goquery.Selection) string {
	id, _ := sel.Attr("id")
	return id
}

// findByID returns the element carrying id, compared verbatim so that
// identifiers which are not valid CSS selectors still resolve.
func findByID(doc *goquery.Document, id string) *goquery.Selection {
	return doc.Find("[id]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return idOf(s) == id
	}).First()
}
